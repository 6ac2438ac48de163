package g2048

// Phase labels the coarse state a session is in.
type Phase string

const (
	PhasePlaying     Phase = "playing"
	PhaseGameOver    Phase = "game_over"
	PhaseWon         Phase = "won_playing" // Win reached, still playing
	PhasePausedSmall Phase = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Tick    uint64
	Score   int
	Grid    Grid
	MaxTile int
	Won     bool
	Phase   Phase
}

// Snapshot returns the current game snapshot. The grid is a copy; holding
// a snapshot never aliases live state.
func (g *Game) Snapshot() Snapshot {
	phase := PhasePlaying
	switch {
	case g.tooSmall:
		phase = PhasePausedSmall
	case g.gameOver:
		phase = PhaseGameOver
	case g.won:
		phase = PhaseWon
	}

	return Snapshot{
		Tick:    g.tick,
		Score:   g.score,
		Grid:    g.grid.Clone(),
		MaxTile: MaxTile(g.grid),
		Won:     g.won,
		Phase:   phase,
	}
}
