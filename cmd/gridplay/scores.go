package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ndolgikh/gridplay/internal/registry"
	"github.com/ndolgikh/gridplay/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores <game>",
	Short: "Show recorded results for a game",
	Long: `Display recorded results for the specified game: the top 10 high
scores for snake, or the match summary and recent matches for the
tic-tac-toe simulator.

Note that the default database lives in memory, so this command only
shows anything when --db points at a file a previous run wrote to.

Examples:
  gridplay scores snake --db ~/.gridplay/scores.db
  gridplay scores tictactoe --db ~/.gridplay/scores.db`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func runScores(cmd *cobra.Command, args []string) {
	gameID := args[0]

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'gridplay list' to see available games.")
		os.Exit(1)
	}

	// Get game title
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	// Open result storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if gameID == "tictactoe" {
		printMatches(store, gameID, title)
		return
	}
	printScores(store, gameID, title)
}

// printScores shows the top-10 table for a scoring game.
func printScores(store *storage.Store, gameID, title string) {
	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'gridplay play %s' to set the first high score!\n", gameID)
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")

	// Print scores
	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, dateStr)
	}

	// Show high score
	fmt.Println()
	highScore, err := store.HighScore(gameID)
	if err == nil {
		fmt.Printf("Best: %d\n", highScore)
	}
}

// printMatches shows the aggregated summary and recent matches for the
// match simulator.
func printMatches(store *storage.Store, gameID, title string) {
	summary, err := store.MatchStats(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving match stats: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Match Results - %s\n", title)
	fmt.Println()

	if summary.GamesPlayed == 0 {
		fmt.Println("No matches recorded yet.")
		fmt.Println()
		fmt.Printf("Run 'gridplay play %s' and let the simulator play a while.\n", gameID)
		return
	}

	fmt.Printf("  X wins: %d   O wins: %d   Draws: %d   Games: %d\n",
		summary.XWins, summary.OWins, summary.Draws, summary.GamesPlayed)
	fmt.Println()

	matches, err := store.RecentMatches(gameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving matches: %v\n", err)
		os.Exit(1)
	}

	// Print header
	fmt.Printf("  %-8s  %-6s  %-8s  %s\n", "Result", "Moves", "Ticks", "Date")
	fmt.Printf("  %-8s  %-6s  %-8s  %s\n", "------", "-----", "-----", "----")

	// Print matches, newest first
	for _, m := range matches {
		dateStr := m.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-8s  %-6d  %-8d  %s\n", resultWord(m.Result), m.Moves, m.DurationTicks, dateStr)
	}
}

// resultWord renders a stored result column value for terminal output.
func resultWord(result string) string {
	switch result {
	case "X":
		return "X wins"
	case "O":
		return "O wins"
	default:
		return "draw"
	}
}
