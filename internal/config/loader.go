package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// load reads a game config with the standard search order:
// customPath -> ~/.termgames/configs/<filename> -> ./configs/<filename> ->
// embedded default. A custom path that fails to read or parse is an error;
// the fallback locations are best-effort.
func load(customPath, filename string, embedded []byte, out any) error {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, out); err != nil {
			return fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return nil
	}

	if userPath := userConfigPath(filename); userPath != "" {
		if data, err := os.ReadFile(userPath); err == nil {
			if err := yaml.Unmarshal(data, out); err == nil {
				return nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", filename)); err == nil {
		if err := yaml.Unmarshal(data, out); err == nil {
			return nil
		}
	}

	return yaml.Unmarshal(embedded, out)
}

// userConfigPath returns the path to a user config file, or empty if the
// home directory is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".termgames", "configs", filename)
}

// LoadG2048 loads the 2048 configuration and clamps it to sane bounds.
func LoadG2048(customPath string) (G2048Config, error) {
	cfg := DefaultG2048Config()
	if err := load(customPath, "g2048.yaml", defaultG2048YAML, &cfg); err != nil {
		return DefaultG2048Config(), err
	}

	// Board sizes outside 3-8 render badly or trivialize the game.
	if cfg.Board.Size < 3 {
		cfg.Board.Size = 3
	}
	if cfg.Board.Size > 8 {
		cfg.Board.Size = 8
	}
	if cfg.Board.Spawn4Prob < 0 || cfg.Board.Spawn4Prob > 1 {
		cfg.Board.Spawn4Prob = DefaultG2048Config().Board.Spawn4Prob
	}
	if cfg.Board.WinTarget < 0 {
		cfg.Board.WinTarget = 0
	}
	if cfg.Input.SwipeThreshold <= 0 {
		cfg.Input.SwipeThreshold = DefaultG2048Config().Input.SwipeThreshold
	}

	return cfg, nil
}

// LoadSnake loads the Snake configuration.
func LoadSnake(customPath string) (SnakeConfig, error) {
	cfg := DefaultSnakeConfig()
	if err := load(customPath, "snake.yaml", defaultSnakeYAML, &cfg); err != nil {
		return DefaultSnakeConfig(), err
	}
	return cfg, nil
}

// LoadTetris loads the Tetris configuration and clamps it to sane bounds.
func LoadTetris(customPath string) (TetrisConfig, error) {
	cfg := DefaultTetrisConfig()
	if err := load(customPath, "tetris.yaml", defaultTetrisYAML, &cfg); err != nil {
		return DefaultTetrisConfig(), err
	}

	// A well narrower than a piece box or shorter than a few drops is
	// unplayable.
	if cfg.Map.Width < 6 {
		cfg.Map.Width = 6
	}
	if cfg.Map.Height < 8 {
		cfg.Map.Height = 8
	}
	if cfg.Speed.MinEveryTicks < 1 {
		cfg.Speed.MinEveryTicks = 1
	}
	if cfg.Speed.FallEveryTicks < cfg.Speed.MinEveryTicks {
		cfg.Speed.FallEveryTicks = cfg.Speed.MinEveryTicks
	}

	return cfg, nil
}

// LoadFlappy loads the Flappy Bird configuration.
func LoadFlappy(customPath string) (FlappyConfig, error) {
	cfg := DefaultFlappyConfig()
	if err := load(customPath, "flappy.yaml", defaultFlappyYAML, &cfg); err != nil {
		return DefaultFlappyConfig(), err
	}
	return cfg, nil
}

// LoadRacer loads the Car Racing configuration.
func LoadRacer(customPath string) (RacerConfig, error) {
	cfg := DefaultRacerConfig()
	if err := load(customPath, "racer.yaml", defaultRacerYAML, &cfg); err != nil {
		return DefaultRacerConfig(), err
	}
	return cfg, nil
}
