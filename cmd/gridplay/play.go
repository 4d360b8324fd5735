package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ndolgikh/gridplay/internal/core"
	"github.com/ndolgikh/gridplay/internal/games/snake"
	"github.com/ndolgikh/gridplay/internal/games/tictactoe"
	"github.com/ndolgikh/gridplay/internal/platform/tui"
	"github.com/ndolgikh/gridplay/internal/registry"
	"github.com/ndolgikh/gridplay/internal/storage"
)

var (
	flagConfig string
	flagSpeed  string
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Snake controls:
  WASD/Arrows - Steer the snake
  Space/P     - Pause
  R           - Restart (after game over)

Tic-tac-toe controls:
  Space/P     - Toggle autoplay
  +/-         - Faster / slower playback
  R           - Restart the current match
  X           - Reset session stats

Everywhere:
  Q/Ctrl+C    - Quit
  B/Esc       - Back (while paused or after game over)

Examples:
  gridplay play snake
  gridplay play snake --config ./my-snake.yaml
  gridplay play tictactoe
  gridplay play tictactoe --speed turbo`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagSpeed, "speed", "", "Initial tic-tac-toe speed preset (slow, normal, fast, turbo)")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'gridplay list' to see available games.")
		os.Exit(1)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Create runtime config
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Set config path and options before the game instance is created
	switch gameID {
	case "snake":
		snake.SetConfigPath(flagConfig)
	case "tictactoe":
		tictactoe.SetConfigPath(flagConfig)
		tictactoe.SetSpeed(flagSpeed)
	}

	// Create game instance
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open result storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open results database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	// Run the game
	runErr := tui.Run(game, store, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
