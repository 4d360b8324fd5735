// gridplay is a TUI platform for grid games in the terminal: a playable
// Snake and a self-running Tic-Tac-Toe match simulator.
//
// Usage:
//
//	gridplay list              - List available games
//	gridplay play <game>       - Play a game
//	gridplay menu              - Start menu to pick games interactively
//	gridplay serve             - Start SSH server for remote play
//	gridplay scores <game>     - Show recorded results for a game
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: in-memory, gone at exit)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/ndolgikh/gridplay/internal/games/snake"
	_ "github.com/ndolgikh/gridplay/internal/games/tictactoe"
	"github.com/ndolgikh/gridplay/internal/storage"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gridplay",
	Short: "Gridplay - grid games in your terminal",
	Long: `Gridplay is a terminal-based gaming platform built around grid games:
steer a snake around a 20x20 field, or sit back and watch two fixed
policies fight out tic-tac-toe matches.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  scores   - View recorded results

Examples:
  gridplay list
  gridplay play snake
  gridplay play tictactoe --speed fast
  gridplay menu
  gridplay serve --ssh :2222
  gridplay scores snake --db ~/.gridplay/scores.db`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (ticks per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.InMemory,
		"Path to results database (default keeps results in memory for this run only)")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
