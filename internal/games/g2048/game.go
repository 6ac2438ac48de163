package g2048

import (
	"math/rand"

	"github.com/pkazakov/termgames/internal/config"
	"github.com/pkazakov/termgames/internal/core"
	"github.com/pkazakov/termgames/internal/registry"
)

// winBannerDuration is how many ticks the "you won" banner stays up.
// The game keeps accepting moves underneath it.
const winBannerDuration = 120

// Game implements the 2048 puzzle game. It owns the only mutable grid
// reference of a session and drives the pure board engine: move, then
// spawn, then terminal check. The engine itself never retains the grid.
type Game struct {
	cfg  config.G2048Config
	rng  *rand.Rand
	tick uint64

	score     int
	grid      Grid
	winTarget int

	// Screen dimensions
	screenW int
	screenH int

	// Game state flags
	gameOver       bool // No legal move remains; restart required
	won            bool // Win target reached at least once; play continues
	paused         bool
	tooSmall       bool
	moveProcessed  bool // At most one move per tick
	winBannerTicks int
}

// Package-level variables for config, set by the CLI before creation.
var (
	configPath string
)

// SetConfigPath sets the config file path used on the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// New creates a new 2048 game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("2048", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "2048"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "2048"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	gameCfg, err := config.LoadG2048(configPath)
	if err != nil {
		gameCfg = config.DefaultG2048Config()
	}
	g.cfg = gameCfg

	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.score = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.gameOver = false
	g.won = false
	g.paused = false
	g.moveProcessed = false
	g.winBannerTicks = 0
	g.winTarget = g.cfg.Board.WinTarget

	g.grid = NewGrid(g.cfg.Board.Size)

	// A session starts with exactly two spawned tiles.
	g.spawnTile()
	g.spawnTile()

	g.checkScreenSize()
}

// spawnTile places a new tile in a uniformly random empty cell: 2 with
// probability 0.9, 4 with the configured probability (default 0.1).
func (g *Game) spawnTile() {
	empty := EmptyCells(g.grid)
	if len(empty) == 0 {
		return
	}

	cell := empty[g.rng.Intn(len(empty))]

	value := 2
	if g.rng.Float64() < g.cfg.Board.Spawn4Prob {
		value = 4
	}

	g.grid[cell.Y][cell.X] = value
}

// checkScreenSize checks if the screen is large enough for the board.
func (g *Game) checkScreenSize() {
	minW := g.grid.Size()*cellWidth + 5
	minH := g.grid.Size()*cellHeight + 6
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	g.moveProcessed = false

	if g.winBannerTicks > 0 {
		g.winBannerTicks--
	}

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	// Paused or lost sessions ignore moves; this is policy, not an error.
	if g.paused || g.gameOver {
		return core.StepResult{State: g.State()}
	}

	if dir, ok := in.Direction(); ok && !g.moveProcessed {
		g.processMove(actionToDirection(dir))
		g.moveProcessed = true
	}

	return core.StepResult{State: g.State()}
}

func actionToDirection(a core.Action) Direction {
	switch a {
	case core.ActionUp:
		return DirUp
	case core.ActionDown:
		return DirDown
	case core.ActionRight:
		return DirRight
	default:
		return DirLeft
	}
}

// processMove handles one accepted directional input: engine move, then
// spawn, then terminal check. A move that changes nothing spawns nothing.
func (g *Game) processMove(dir Direction) {
	res := Move(g.grid, dir)
	if !res.Changed {
		return
	}

	g.grid = res.Grid
	g.score += res.ScoreDelta

	// One-time win notification; the session keeps going.
	if !g.won && g.winTarget > 0 && MaxTile(g.grid) >= g.winTarget {
		g.won = true
		g.winBannerTicks = winBannerDuration
	}

	g.spawnTile()

	if IsTerminal(g.grid) {
		g.gameOver = true
	}
}

// Won reports whether the win target has been reached this session.
func (g *Game) Won() bool {
	return g.won
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Paused:   g.paused || g.tooSmall,
	}
}
