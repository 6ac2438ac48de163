package config

import (
	_ "embed"
)

//go:embed defaults/g2048.yaml
var defaultG2048YAML []byte

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

//go:embed defaults/racer.yaml
var defaultRacerYAML []byte

// DefaultG2048Config returns the default 2048 configuration.
func DefaultG2048Config() G2048Config {
	return G2048Config{
		Board: G2048Board{
			Size:       4,
			WinTarget:  2048,
			Spawn4Prob: 0.10,
		},
		Input: G2048Input{
			SwipeThreshold: 3,
		},
	}
}

// DefaultSnakeConfig returns the default Snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Speed: SnakeSpeed{
			MoveEveryTicks: 8,
			SpeedUpEvery:   5,
			MinEveryTicks:  3,
		},
		Map: SnakeMap{
			Width:  40,
			Height: 18,
		},
	}
}

// DefaultTetrisConfig returns the default Tetris configuration.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Map: TetrisMap{
			Width:  10,
			Height: 18,
		},
		Speed: TetrisSpeed{
			FallEveryTicks: 30,
			SpeedUpEvery:   10,
			MinEveryTicks:  5,
		},
	}
}

// DefaultFlappyConfig returns the default Flappy Bird configuration.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Physics: FlappyPhysics{
			Gravity:      0.25,
			JumpImpulse:  -1.8,
			MaxFallSpeed: 3.0,
		},
		Obstacles: FlappyObstacles{
			PipeWidth:   5,
			PipeSpacing: 40,
			GapSize:     10,
			MoveEvery:   2,
		},
	}
}

// DefaultRacerConfig returns the default Car Racing configuration.
func DefaultRacerConfig() RacerConfig {
	return RacerConfig{
		Lanes:     3,
		SpawnGap:  6,
		MoveEvery: 4,
		MinEvery:  1,
		SpeedStep: 10,
	}
}
