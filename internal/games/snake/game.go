// Package snake implements a classic grid snake: eat food, grow, avoid
// walls and your own tail.
package snake

import (
	"fmt"
	"math/rand"

	"github.com/pkazakov/termgames/internal/config"
	"github.com/pkazakov/termgames/internal/core"
	"github.com/pkazakov/termgames/internal/registry"
)

// Direction represents the snake's movement direction.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// Point represents a 2D coordinate on the playfield.
type Point struct {
	X, Y int
}

// Game implements the Snake game.
type Game struct {
	cfg  config.SnakeConfig
	rng  *rand.Rand
	tick uint64

	score          int
	moveEveryTicks int
	moveTicker     int

	// Snake state: head at index 0
	snake     []Point
	direction Direction
	nextDir   Direction
	growing   bool

	// Playfield
	mapWidth  int
	mapHeight int
	food      Point

	// Screen dimensions
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

// New creates a new Snake game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("snake", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "snake"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Snake"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	gameCfg, err := config.LoadSnake(configPath)
	if err != nil {
		gameCfg = config.DefaultSnakeConfig()
	}
	g.cfg = gameCfg

	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.score = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.gameOver = false
	g.paused = false
	g.moveEveryTicks = g.cfg.Speed.MoveEveryTicks
	g.moveTicker = 0
	g.growing = false

	g.mapWidth = g.cfg.Map.Width
	g.mapHeight = g.cfg.Map.Height

	// Start in the middle heading right, three segments long
	cx, cy := g.mapWidth/2, g.mapHeight/2
	g.snake = []Point{{cx, cy}, {cx - 1, cy}, {cx - 2, cy}}
	g.direction = DirRight
	g.nextDir = DirRight

	g.spawnFood()

	minW := g.mapWidth + 4
	minH := g.mapHeight + 5
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// spawnFood places food in a random cell not occupied by the snake.
func (g *Game) spawnFood() {
	occupied := make(map[Point]bool, len(g.snake))
	for _, p := range g.snake {
		occupied[p] = true
	}

	free := make([]Point, 0, g.mapWidth*g.mapHeight-len(g.snake))
	for y := 0; y < g.mapHeight; y++ {
		for x := 0; x < g.mapWidth; x++ {
			p := Point{x, y}
			if !occupied[p] {
				free = append(free, p)
			}
		}
	}

	if len(free) == 0 {
		// Snake fills the board; nothing left to eat.
		g.gameOver = true
		return
	}

	g.food = free[g.rng.Intn(len(free))]
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

	g.bufferDirection(in)

	g.moveTicker++
	if g.moveTicker >= g.moveEveryTicks {
		g.moveTicker = 0
		g.advance()
	}

	return core.StepResult{State: g.State()}
}

// bufferDirection records the next direction, refusing 180-degree turns.
func (g *Game) bufferDirection(in core.InputFrame) {
	var want Direction
	switch {
	case in.Has(core.ActionUp):
		want = DirUp
	case in.Has(core.ActionDown):
		want = DirDown
	case in.Has(core.ActionLeft):
		want = DirLeft
	case in.Has(core.ActionRight):
		want = DirRight
	default:
		return
	}

	if isOpposite(want, g.direction) {
		return
	}
	g.nextDir = want
}

func isOpposite(a, b Direction) bool {
	switch a {
	case DirUp:
		return b == DirDown
	case DirDown:
		return b == DirUp
	case DirLeft:
		return b == DirRight
	case DirRight:
		return b == DirLeft
	}
	return false
}

// advance moves the snake one cell and resolves collisions.
func (g *Game) advance() {
	g.direction = g.nextDir

	head := g.snake[0]
	switch g.direction {
	case DirRight:
		head.X++
	case DirLeft:
		head.X--
	case DirDown:
		head.Y++
	case DirUp:
		head.Y--
	}

	// Wall collision
	if head.X < 0 || head.X >= g.mapWidth || head.Y < 0 || head.Y >= g.mapHeight {
		g.gameOver = true
		return
	}

	// Self collision; the tail cell vacates this step unless growing
	body := g.snake
	if !g.growing {
		body = g.snake[:len(g.snake)-1]
	}
	for _, p := range body {
		if p == head {
			g.gameOver = true
			return
		}
	}

	// Move
	g.snake = append([]Point{head}, g.snake...)
	if g.growing {
		g.growing = false
	} else {
		g.snake = g.snake[:len(g.snake)-1]
	}

	// Food
	if head == g.food {
		g.score++
		g.growing = true
		g.speedUp()
		g.spawnFood()
	}
}

// speedUp tightens the move interval every few foods eaten.
func (g *Game) speedUp() {
	if g.cfg.Speed.SpeedUpEvery <= 0 {
		return
	}
	if g.score%g.cfg.Speed.SpeedUpEvery == 0 && g.moveEveryTicks > g.cfg.Speed.MinEveryTicks {
		g.moveEveryTicks--
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
		msg := "Window too small"
		dst.DrawTextCentered(g.screenH/2, msg)
		return
	}

	offX := (g.screenW - g.mapWidth - 2) / 2
	offY := 2

	// HUD
	dst.DrawText(offX, 0, fmt.Sprintf("Snake  Score: %d  Length: %d", g.score, len(g.snake)))

	// Border
	dst.DrawBox(core.Rect{X: offX, Y: offY, W: g.mapWidth + 2, H: g.mapHeight + 2})

	// Food
	dst.SetCell(offX+1+g.food.X, offY+1+g.food.Y, '●', core.ColorBrightRed)

	// Snake
	for i, p := range g.snake {
		ch := '█'
		color := core.ColorBrightGreen
		if i > 0 {
			ch = '▓'
			color = core.ColorGreen
		}
		dst.SetCell(offX+1+p.X, offY+1+p.Y, ch, color)
	}

	if g.paused {
		dst.DrawTextCentered(offY+g.mapHeight/2, " PAUSED ")
	}
	if g.gameOver {
		dst.DrawTextCentered(offY+g.mapHeight/2, " GAME OVER - Press R to restart ")
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows/WASD: Turn | P: Pause | R: Restart | Q: Quit"
}
