// Package config provides YAML-based game configuration loading for the
// arcade platform.
package config

// G2048Config contains all configuration for the 2048 game.
type G2048Config struct {
	Board G2048Board `yaml:"board"`
	Input G2048Input `yaml:"input"`
}

// G2048Board defines board parameters for 2048.
type G2048Board struct {
	Size       int     `yaml:"size"`        // Grid dimension N (3-8)
	WinTarget  int     `yaml:"win_target"`  // Tile value that triggers the win notification
	Spawn4Prob float64 `yaml:"spawn4_prob"` // Probability of spawning 4 instead of 2
}

// G2048Input defines input parameters for 2048.
type G2048Input struct {
	SwipeThreshold int `yaml:"swipe_threshold"` // Minimum drag displacement in cells
}

// SnakeConfig contains all configuration for the Snake game.
type SnakeConfig struct {
	Speed SnakeSpeed `yaml:"speed"`
	Map   SnakeMap   `yaml:"map"`
}

// SnakeSpeed defines movement pacing for Snake.
type SnakeSpeed struct {
	MoveEveryTicks int `yaml:"move_every_ticks"` // Ticks between snake steps
	SpeedUpEvery   int `yaml:"speed_up_every"`   // Food count per speed-up, 0 disables
	MinEveryTicks  int `yaml:"min_every_ticks"`  // Fastest allowed pacing
}

// SnakeMap defines playfield parameters for Snake.
type SnakeMap struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// TetrisConfig contains all configuration for the Tetris game.
type TetrisConfig struct {
	Map   TetrisMap   `yaml:"map"`
	Speed TetrisSpeed `yaml:"speed"`
}

// TetrisMap defines well dimensions for Tetris.
type TetrisMap struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// TetrisSpeed defines gravity pacing for Tetris.
type TetrisSpeed struct {
	FallEveryTicks int `yaml:"fall_every_ticks"` // Ticks between gravity steps at start
	SpeedUpEvery   int `yaml:"speed_up_every"`   // Cleared lines per speed-up, 0 disables
	MinEveryTicks  int `yaml:"min_every_ticks"`  // Fastest allowed gravity
}

// FlappyConfig contains all configuration for the Flappy Bird game.
type FlappyConfig struct {
	Physics   FlappyPhysics   `yaml:"physics"`
	Obstacles FlappyObstacles `yaml:"obstacles"`
}

// FlappyPhysics defines physics parameters for Flappy Bird.
type FlappyPhysics struct {
	Gravity      float64 `yaml:"gravity"`
	JumpImpulse  float64 `yaml:"jump_impulse"`
	MaxFallSpeed float64 `yaml:"max_fall_speed"`
}

// FlappyObstacles defines obstacle parameters for Flappy Bird.
type FlappyObstacles struct {
	PipeWidth   int `yaml:"pipe_width"`
	PipeSpacing int `yaml:"pipe_spacing"`
	GapSize     int `yaml:"gap_size"`
	MoveEvery   int `yaml:"move_every"` // Ticks between pipe scroll steps
}

// RacerConfig contains all configuration for the Car Racing game.
type RacerConfig struct {
	Lanes     int `yaml:"lanes"`      // Number of traffic lanes
	SpawnGap  int `yaml:"spawn_gap"`  // Minimum vertical gap between cars
	MoveEvery int `yaml:"move_every"` // Ticks between traffic steps at start
	MinEvery  int `yaml:"min_every"`  // Fastest traffic pacing
	SpeedStep int `yaml:"speed_step"` // Dodged cars per speed-up
}
