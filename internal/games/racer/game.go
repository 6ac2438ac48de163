// Package racer implements a lane-dodging racer: traffic streams down
// the road, switch lanes to survive.
package racer

import (
	"fmt"
	"math/rand"

	"github.com/pkazakov/termgames/internal/config"
	"github.com/pkazakov/termgames/internal/core"
	"github.com/pkazakov/termgames/internal/registry"
)

const (
	laneWidth  = 7
	roadHeight = 18
	carGlyph   = '▲'
	trafGlyph  = '▼'
)

// Obstacle is an oncoming car occupying one lane.
type Obstacle struct {
	Lane   int
	Y      int // Row on the road; the player sits at the bottom
	Passed bool
}

// Game implements the lane racer.
type Game struct {
	cfg  config.RacerConfig
	rng  *rand.Rand
	tick uint64

	score int

	playerLane int
	obstacles  []Obstacle

	moveEvery    int
	moveTicker   int
	sinceSpawn   int
	laneCooldown int

	screenW int
	screenH int

	gameOver bool
	paused   bool
	tooSmall bool
}

var configPath string

// SetConfigPath sets the config file path used on the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// New creates a new racer game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("racer", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "racer"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Lane Racer"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	gameCfg, err := config.LoadRacer(configPath)
	if err != nil {
		gameCfg = config.DefaultRacerConfig()
	}
	g.cfg = gameCfg

	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.score = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.gameOver = false
	g.paused = false

	g.playerLane = g.cfg.Lanes / 2
	g.obstacles = nil
	g.moveEvery = g.cfg.MoveEvery
	g.moveTicker = 0
	g.sinceSpawn = 0
	g.laneCooldown = 0

	minW := g.cfg.Lanes*laneWidth + 6
	minH := roadHeight + 4
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if g.paused || g.gameOver {
		return core.StepResult{State: g.State()}
	}

	if g.laneCooldown > 0 {
		g.laneCooldown--
	}
	g.steer(in)

	g.moveTicker++
	if g.moveTicker >= g.moveEvery {
		g.moveTicker = 0
		g.advanceTraffic()
	}

	return core.StepResult{State: g.State()}
}

// steer switches the player lane on left/right input. A short cooldown
// keeps a held key from skipping across all lanes at tick rate.
func (g *Game) steer(in core.InputFrame) {
	if g.laneCooldown > 0 {
		return
	}
	switch {
	case in.Has(core.ActionLeft) && g.playerLane > 0:
		g.playerLane--
		g.laneCooldown = 3
	case in.Has(core.ActionRight) && g.playerLane < g.cfg.Lanes-1:
		g.playerLane++
		g.laneCooldown = 3
	}
}

// advanceTraffic moves all obstacles one row down and spawns new ones.
func (g *Game) advanceTraffic() {
	playerY := roadHeight - 1

	kept := g.obstacles[:0]
	for _, o := range g.obstacles {
		o.Y++

		if o.Y == playerY && o.Lane == g.playerLane {
			g.gameOver = true
			g.obstacles = append(kept, o)
			return
		}

		if !o.Passed && o.Y > playerY {
			o.Passed = true
			g.score++
			g.speedUp()
		}

		if o.Y < roadHeight+1 {
			kept = append(kept, o)
		}
	}
	g.obstacles = kept

	g.sinceSpawn++
	if g.sinceSpawn >= g.cfg.SpawnGap {
		g.sinceSpawn = 0
		g.spawnObstacle()
	}
}

// spawnObstacle adds one oncoming car at the top, always leaving at
// least one open lane in the spawn row.
func (g *Game) spawnObstacle() {
	blocked := make(map[int]bool)
	for _, o := range g.obstacles {
		if o.Y <= 1 {
			blocked[o.Lane] = true
		}
	}

	free := make([]int, 0, g.cfg.Lanes)
	for lane := 0; lane < g.cfg.Lanes; lane++ {
		if !blocked[lane] {
			free = append(free, lane)
		}
	}
	if len(free) <= 1 {
		return
	}

	g.obstacles = append(g.obstacles, Obstacle{
		Lane: free[g.rng.Intn(len(free))],
		Y:    0,
	})
}

// speedUp tightens the scroll interval every few cars dodged.
func (g *Game) speedUp() {
	if g.cfg.SpeedStep <= 0 {
		return
	}
	if g.score%g.cfg.SpeedStep == 0 && g.moveEvery > g.cfg.MinEvery {
		g.moveEvery--
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Paused:   g.paused || g.tooSmall,
	}
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		dst.DrawTextCentered(g.screenH/2, "Window too small")
		return
	}

	roadW := g.cfg.Lanes * laneWidth
	offX := (g.screenW - roadW - 2) / 2
	offY := 2

	dst.DrawText(offX, 0, fmt.Sprintf("Lane Racer  Score: %d", g.score))

	// Road edges and lane separators
	dst.DrawVLine(offX, offY, roadHeight, '║')
	dst.DrawVLine(offX+roadW+1, offY, roadHeight, '║')
	for lane := 1; lane < g.cfg.Lanes; lane++ {
		x := offX + lane*laneWidth
		for y := 0; y < roadHeight; y++ {
			// Dashed separators, animated by tick for motion feel
			if (y+int(g.tick/4))%2 == 0 {
				dst.SetCell(x, offY+y, '┆', core.ColorGray)
			}
		}
	}

	laneCenter := func(lane int) int {
		return offX + 1 + lane*laneWidth + laneWidth/2
	}

	for _, o := range g.obstacles {
		if o.Y >= 0 && o.Y < roadHeight {
			dst.SetCell(laneCenter(o.Lane), offY+o.Y, trafGlyph, core.ColorBrightRed)
		}
	}

	dst.SetCell(laneCenter(g.playerLane), offY+roadHeight-1, carGlyph, core.ColorBrightCyan)

	if g.paused {
		dst.DrawTextCentered(offY+roadHeight/2, " PAUSED ")
	}
	if g.gameOver {
		dst.DrawTextCentered(offY+roadHeight/2, " CRASH - Press R to restart ")
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Left/Right: Change lane | P: Pause | R: Restart | Q: Quit"
}
