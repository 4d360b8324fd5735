package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadSnake loads the snake configuration.
// Search order: customPath -> ~/.gridplay/configs/snake.yaml -> ./configs/snake.yaml -> embedded default
func LoadSnake(customPath string) (SnakeConfig, error) {
	var cfg SnakeConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("snake.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/snake.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultSnakeYAML, &cfg); err != nil {
		return DefaultSnakeConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// LoadTicTacToe loads the tic-tac-toe configuration.
// Search order: customPath -> ~/.gridplay/configs/tictactoe.yaml -> ./configs/tictactoe.yaml -> embedded default
func LoadTicTacToe(customPath string) (TicTacToeConfig, error) {
	var cfg TicTacToeConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return normalizeTicTacToe(cfg), nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("tictactoe.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return normalizeTicTacToe(cfg), nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/tictactoe.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return normalizeTicTacToe(cfg), nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultTicTacToeYAML, &cfg); err != nil {
		return DefaultTicTacToeConfig(), nil // Fallback to hardcoded if embed fails
	}
	return normalizeTicTacToe(cfg), nil
}

// normalizeTicTacToe backfills fields a partial user config may omit.
// The engine requires at least one speed preset and a sane restart window.
func normalizeTicTacToe(cfg TicTacToeConfig) TicTacToeConfig {
	def := DefaultTicTacToeConfig()

	if len(cfg.Speeds) == 0 {
		cfg.Speeds = def.Speeds
	}
	for i := range cfg.Speeds {
		if cfg.Speeds[i].MoveEveryTicks < 1 {
			cfg.Speeds[i].MoveEveryTicks = 1
		}
	}
	if cfg.DefaultSpeed == "" {
		cfg.DefaultSpeed = def.DefaultSpeed
	}
	if cfg.Restart.MinTicks < 1 {
		cfg.Restart.MinTicks = def.Restart.MinTicks
	}
	if cfg.Restart.MaxTicks < cfg.Restart.MinTicks {
		cfg.Restart.MaxTicks = cfg.Restart.MinTicks
	}
	return cfg
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".gridplay", "configs", filename)
}
