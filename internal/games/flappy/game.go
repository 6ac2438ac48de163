// Package flappy implements a side-scrolling flap game: hold altitude
// through the gaps, one point per pipe cleared.
package flappy

import (
	"fmt"
	"math/rand"

	"github.com/pkazakov/termgames/internal/config"
	"github.com/pkazakov/termgames/internal/core"
	"github.com/pkazakov/termgames/internal/registry"
)

// Pipe is a vertical obstacle with a gap the bird must pass through.
type Pipe struct {
	X      int // Left edge in world columns
	GapY   int // Top row of the gap
	Scored bool
}

// Game implements the Flappy game.
type Game struct {
	cfg  config.FlappyConfig
	rng  *rand.Rand
	tick uint64

	score int

	// Bird state; Y is float for sub-cell physics
	birdX int
	birdY float64
	velY  float64

	pipes      []Pipe
	moveTicker int

	// Playfield
	fieldW int
	fieldH int

	screenW int
	screenH int

	gameOver bool
	started  bool // Physics is frozen until the first jump
	paused   bool
	tooSmall bool
}

var configPath string

// SetConfigPath sets the config file path used on the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// New creates a new Flappy game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("flappy", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "flappy"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Flappy"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	gameCfg, err := config.LoadFlappy(configPath)
	if err != nil {
		gameCfg = config.DefaultFlappyConfig()
	}
	g.cfg = gameCfg

	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.score = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.gameOver = false
	g.started = false
	g.paused = false
	g.moveTicker = 0

	g.fieldW = g.screenW
	g.fieldH = g.screenH - 3 // HUD takes the top rows

	g.birdX = g.fieldW / 4
	g.birdY = float64(g.fieldH) / 2
	g.velY = 0

	g.pipes = nil
	x := g.fieldW
	for i := 0; i < 3; i++ {
		g.pipes = append(g.pipes, g.makePipe(x))
		x += g.cfg.Obstacles.PipeSpacing
	}

	g.tooSmall = g.screenW < 40 || g.screenH < 15
}

// makePipe builds a pipe at the given column with a random gap.
func (g *Game) makePipe(x int) Pipe {
	gap := g.cfg.Obstacles.GapSize
	maxTop := g.fieldH - gap - 2
	if maxTop < 1 {
		maxTop = 1
	}
	return Pipe{X: x, GapY: 1 + g.rng.Intn(maxTop)}
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

	if in.Has(core.ActionJump) || in.Has(core.ActionUp) {
		g.started = true
		g.velY = g.cfg.Physics.JumpImpulse
	}

	if !g.started {
		return core.StepResult{State: g.State()}
	}

	// Physics
	g.velY += g.cfg.Physics.Gravity
	if g.velY > g.cfg.Physics.MaxFallSpeed {
		g.velY = g.cfg.Physics.MaxFallSpeed
	}
	g.birdY += g.velY

	// Ceiling is soft, ground is lethal
	if g.birdY < 0 {
		g.birdY = 0
		g.velY = 0
	}
	if int(g.birdY) >= g.fieldH {
		g.gameOver = true
		return core.StepResult{State: g.State()}
	}

	// Pipes scroll at a fixed cadence
	g.moveTicker++
	if g.moveTicker >= g.cfg.Obstacles.MoveEvery {
		g.moveTicker = 0
		g.scrollPipes()
	}

	g.checkCollision()

	return core.StepResult{State: g.State()}
}

// scrollPipes shifts all pipes left, scoring and recycling as they pass.
func (g *Game) scrollPipes() {
	for i := range g.pipes {
		g.pipes[i].X--

		if !g.pipes[i].Scored && g.pipes[i].X+g.cfg.Obstacles.PipeWidth < g.birdX {
			g.pipes[i].Scored = true
			g.score++
		}
	}

	// Recycle pipes that scrolled off the left edge
	for i := range g.pipes {
		if g.pipes[i].X+g.cfg.Obstacles.PipeWidth < 0 {
			maxX := 0
			for _, p := range g.pipes {
				if p.X > maxX {
					maxX = p.X
				}
			}
			g.pipes[i] = g.makePipe(maxX + g.cfg.Obstacles.PipeSpacing)
		}
	}
}

// checkCollision ends the game if the bird overlaps a pipe body.
func (g *Game) checkCollision() {
	by := int(g.birdY)
	for _, p := range g.pipes {
		if g.birdX < p.X || g.birdX >= p.X+g.cfg.Obstacles.PipeWidth {
			continue
		}
		if by < p.GapY || by >= p.GapY+g.cfg.Obstacles.GapSize {
			g.gameOver = true
			return
		}
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

	offY := 2

	dst.DrawText(1, 0, fmt.Sprintf("Flappy  Score: %d", g.score))
	dst.DrawHLine(0, offY-1, g.fieldW, '─')

	// Pipes
	for _, p := range g.pipes {
		for dx := 0; dx < g.cfg.Obstacles.PipeWidth; dx++ {
			x := p.X + dx
			if x < 0 || x >= g.fieldW {
				continue
			}
			for y := 0; y < g.fieldH; y++ {
				if y >= p.GapY && y < p.GapY+g.cfg.Obstacles.GapSize {
					continue
				}
				dst.SetCell(x, offY+y, '█', core.ColorGreen)
			}
		}
	}

	// Bird
	dst.SetCell(g.birdX, offY+int(g.birdY), '◆', core.ColorBrightYellow)

	// Ground
	dst.DrawHLine(0, offY+g.fieldH, g.fieldW, '═')

	if !g.started && !g.gameOver {
		dst.DrawTextCentered(offY+g.fieldH/2, " Press SPACE to flap ")
	}
	if g.paused {
		dst.DrawTextCentered(offY+g.fieldH/2, " PAUSED ")
	}
	if g.gameOver {
		dst.DrawTextCentered(offY+g.fieldH/2, " GAME OVER - Press R to restart ")
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Space/Up: Flap | P: Pause | R: Restart | Q: Quit"
}
