package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

//go:embed defaults/tictactoe.yaml
var defaultTicTacToeYAML []byte

// DefaultSnakeConfig returns the default snake configuration.
// Used as the last-resort fallback if the embedded YAML fails to parse.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Theme: SnakeTheme{
			HeadGlyph:   "O",
			BodyGlyph:   "o",
			FoodGlyph:   "*",
			HeadColor:   "bright_green",
			BodyColor:   "green",
			FoodColor:   "bright_red",
			BorderColor: "gray",
		},
	}
}

// DefaultTicTacToeConfig returns the default tic-tac-toe configuration.
// Used as the last-resort fallback if the embedded YAML fails to parse.
func DefaultTicTacToeConfig() TicTacToeConfig {
	return TicTacToeConfig{
		Speeds: []SpeedPreset{
			{Name: "slow", MoveEveryTicks: 60},
			{Name: "normal", MoveEveryTicks: 30},
			{Name: "fast", MoveEveryTicks: 12},
			{Name: "turbo", MoveEveryTicks: 6},
		},
		DefaultSpeed: "normal",
		Restart: RestartDelay{
			MinTicks: 90,
			MaxTicks: 210,
		},
		Theme: TicTacToeTheme{
			XColor:    "bright_red",
			OColor:    "bright_blue",
			WinColor:  "bright_yellow",
			GridColor: "gray",
		},
	}
}
