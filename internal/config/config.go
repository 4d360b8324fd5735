// Package config provides YAML-based presentation and playback configuration
// for the gridplay platform. Game rules and board sizes are compile-time
// constants in the game packages; config covers themes and pacing only.
package config

// SnakeConfig contains all configuration for the snake game.
type SnakeConfig struct {
	Theme SnakeTheme `yaml:"theme"`
}

// SnakeTheme defines the glyphs and colors used to draw the snake game.
// Glyphs are single-character strings; color names resolve via core.ColorByName.
type SnakeTheme struct {
	HeadGlyph   string `yaml:"head_glyph"`
	BodyGlyph   string `yaml:"body_glyph"`
	FoodGlyph   string `yaml:"food_glyph"`
	HeadColor   string `yaml:"head_color"`
	BodyColor   string `yaml:"body_color"`
	FoodColor   string `yaml:"food_color"`
	BorderColor string `yaml:"border_color"`
}

// TicTacToeConfig contains all configuration for the tic-tac-toe simulator.
type TicTacToeConfig struct {
	Speeds       []SpeedPreset  `yaml:"speeds"`
	DefaultSpeed string         `yaml:"default_speed"`
	Restart      RestartDelay   `yaml:"restart"`
	Theme        TicTacToeTheme `yaml:"theme"`
}

// SpeedPreset is one entry of the user-selectable playback speed set.
type SpeedPreset struct {
	Name           string `yaml:"name"`
	MoveEveryTicks int    `yaml:"move_every_ticks"`
}

// RestartDelay bounds the randomized pause (in ticks) before a finished
// match automatically restarts.
type RestartDelay struct {
	MinTicks int `yaml:"min_ticks"`
	MaxTicks int `yaml:"max_ticks"`
}

// TicTacToeTheme defines the colors used to draw the board and marks.
type TicTacToeTheme struct {
	XColor    string `yaml:"x_color"`
	OColor    string `yaml:"o_color"`
	WinColor  string `yaml:"win_color"`
	GridColor string `yaml:"grid_color"`
}

// SpeedIndex returns the index of the named preset in Speeds, or 0 if the
// name is unknown or Speeds is empty.
func (c TicTacToeConfig) SpeedIndex(name string) int {
	for i, s := range c.Speeds {
		if s.Name == name {
			return i
		}
	}
	return 0
}
