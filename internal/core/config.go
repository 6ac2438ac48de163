package core

// RuntimeConfig is handed to a game's Reset and never changes mid-session.
// Games size their playfield from the screen dimensions and seed their rng
// from Seed, so a session is fully reproducible from this struct.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed; restarts re-Reset with a fresh wall-clock seed
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState is what a game reports back to the platform each tick.
// GameOver means a loss: games that can be "won" (2048 reaching its
// target) keep playing and surface the win in their own render instead.
type GameState struct {
	Score    int  // Current score
	GameOver bool // The session is lost; the platform saves the score once
	Paused   bool // Paused by the player or waiting on a too-small window
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
