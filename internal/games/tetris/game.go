// Package tetris implements falling tetrominoes: stack pieces, clear
// lines, survive the speed-up.
package tetris

import (
	"fmt"
	"math/rand"

	"github.com/pkazakov/termgames/internal/config"
	"github.com/pkazakov/termgames/internal/core"
	"github.com/pkazakov/termgames/internal/registry"
)

// Point represents a 2D coordinate on the playfield.
type Point struct {
	X, Y int
}

// The seven tetrominoes, each rotation drawn in a 4x4 box. Rotations are
// listed clockwise; shapes with rotational symmetry list only the
// distinct ones.
var shapes = [7][][]string{
	// I
	{
		{"....", "XXXX", "....", "...."},
		{"..X.", "..X.", "..X.", "..X."},
	},
	// O
	{
		{".XX.", ".XX.", "....", "...."},
	},
	// T
	{
		{".X..", "XXX.", "....", "...."},
		{".X..", ".XX.", ".X..", "...."},
		{"....", "XXX.", ".X..", "...."},
		{".X..", "XX..", ".X..", "...."},
	},
	// S
	{
		{".XX.", "XX..", "....", "...."},
		{"X...", "XX..", ".X..", "...."},
	},
	// Z
	{
		{"XX..", ".XX.", "....", "...."},
		{".X..", "XX..", "X...", "...."},
	},
	// J
	{
		{"X...", "XXX.", "....", "...."},
		{".XX.", ".X..", ".X..", "...."},
		{"....", "XXX.", "..X.", "...."},
		{".X..", ".X..", "XX..", "...."},
	},
	// L
	{
		{"..X.", "XXX.", "....", "...."},
		{".X..", ".X..", ".XX.", "...."},
		{"....", "XXX.", "X...", "...."},
		{"XX..", ".X..", ".X..", "...."},
	},
}

var shapeColors = [7]core.Color{
	core.ColorBrightCyan,    // I
	core.ColorBrightYellow,  // O
	core.ColorBrightMagenta, // T
	core.ColorBrightGreen,   // S
	core.ColorBrightRed,     // Z
	core.ColorBrightBlue,    // J
	core.ColorOrange,        // L
}

// Clearing more lines with one piece scores disproportionately more.
var lineScores = [5]int{0, 100, 300, 500, 800}

// cells returns the occupied box offsets of a shape rotation.
func cells(shape, rot int) []Point {
	pts := make([]Point, 0, 4)
	for y, row := range shapes[shape][rot] {
		for x, c := range row {
			if c == 'X' {
				pts = append(pts, Point{x, y})
			}
		}
	}
	return pts
}

// Game implements the Tetris game.
type Game struct {
	cfg  config.TetrisConfig
	rng  *rand.Rand
	tick uint64

	score          int
	lines          int
	fallEveryTicks int
	fallTicker     int

	// Well state: 0 empty, otherwise shape index + 1
	board [][]int

	// Falling piece: shape index, rotation, box top-left in well coords
	cur        int
	rot        int
	curX, curY int

	fieldW int
	fieldH int

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

// New creates a new Tetris game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("tetris", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "tetris"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Tetris"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	gameCfg, err := config.LoadTetris(configPath)
	if err != nil {
		gameCfg = config.DefaultTetrisConfig()
	}
	g.cfg = gameCfg

	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.score = 0
	g.lines = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.gameOver = false
	g.paused = false
	g.fallEveryTicks = g.cfg.Speed.FallEveryTicks
	g.fallTicker = 0

	g.fieldW = g.cfg.Map.Width
	g.fieldH = g.cfg.Map.Height

	g.board = make([][]int, g.fieldH)
	for y := range g.board {
		g.board[y] = make([]int, g.fieldW)
	}

	g.spawnPiece()

	// Cells render two characters wide so the well is not squashed.
	minW := g.fieldW*2 + 4
	minH := g.fieldH + 5
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// spawnPiece drops the next random piece at the top center of the well.
// A spawn that collides with the stack ends the game.
func (g *Game) spawnPiece() {
	g.cur = g.rng.Intn(len(shapes))
	g.rot = 0
	g.curX = (g.fieldW - 4) / 2
	g.curY = 0

	if g.collides(g.cur, g.rot, g.curX, g.curY) {
		g.gameOver = true
	}
}

// collides reports whether a shape placement leaves the well or overlaps
// the stack.
func (g *Game) collides(shape, rot, x, y int) bool {
	for _, p := range cells(shape, rot) {
		bx, by := x+p.X, y+p.Y
		if bx < 0 || bx >= g.fieldW || by < 0 || by >= g.fieldH {
			return true
		}
		if g.board[by][bx] != 0 {
			return true
		}
	}
	return false
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

	// One piece action per tick; rotation and drops win over lateral moves
	// so a frame carrying both stays predictable.
	switch {
	case in.Has(core.ActionJump):
		g.hardDrop()
	case in.Has(core.ActionUp):
		g.tryRotate()
	case in.Has(core.ActionDown):
		g.descendOrLock()
	case in.Has(core.ActionLeft):
		g.tryShift(-1)
	case in.Has(core.ActionRight):
		g.tryShift(1)
	}

	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	g.fallTicker++
	if g.fallTicker >= g.fallEveryTicks {
		g.fallTicker = 0
		g.descendOrLock()
	}

	return core.StepResult{State: g.State()}
}

// tryShift moves the falling piece sideways if the well allows it.
func (g *Game) tryShift(dx int) {
	if !g.collides(g.cur, g.rot, g.curX+dx, g.curY) {
		g.curX += dx
	}
}

// tryRotate turns the piece clockwise; a blocked rotation is refused
// rather than kicked off the wall.
func (g *Game) tryRotate() {
	next := (g.rot + 1) % len(shapes[g.cur])
	if !g.collides(g.cur, next, g.curX, g.curY) {
		g.rot = next
	}
}

// descendOrLock moves the piece down one row, locking it into the stack
// when it rests on the floor or on locked cells.
func (g *Game) descendOrLock() {
	if !g.collides(g.cur, g.rot, g.curX, g.curY+1) {
		g.curY++
		return
	}
	g.lockPiece()
}

// hardDrop slams the piece to its resting row and locks it immediately.
func (g *Game) hardDrop() {
	for !g.collides(g.cur, g.rot, g.curX, g.curY+1) {
		g.curY++
	}
	g.lockPiece()
	g.fallTicker = 0
}

// lockPiece writes the piece into the stack, clears lines, and spawns
// the next piece.
func (g *Game) lockPiece() {
	for _, p := range cells(g.cur, g.rot) {
		g.board[g.curY+p.Y][g.curX+p.X] = g.cur + 1
	}

	g.clearLines()
	g.spawnPiece()
}

// clearLines removes full rows, shifting the stack down, and scores them.
func (g *Game) clearLines() {
	kept := make([][]int, 0, g.fieldH)
	cleared := 0
	for _, row := range g.board {
		full := true
		for _, v := range row {
			if v == 0 {
				full = false
				break
			}
		}
		if full {
			cleared++
		} else {
			kept = append(kept, row)
		}
	}

	if cleared == 0 {
		return
	}

	for len(kept) < g.fieldH {
		kept = append([][]int{make([]int, g.fieldW)}, kept...)
	}
	g.board = kept

	g.lines += cleared
	g.score += lineScores[cleared]
	g.speedUp()
}

// speedUp tightens gravity as lines accumulate.
func (g *Game) speedUp() {
	if g.cfg.Speed.SpeedUpEvery <= 0 {
		return
	}
	every := g.cfg.Speed.FallEveryTicks - g.lines/g.cfg.Speed.SpeedUpEvery
	if every < g.cfg.Speed.MinEveryTicks {
		every = g.cfg.Speed.MinEveryTicks
	}
	g.fallEveryTicks = every
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

	offX := (g.screenW - g.fieldW*2 - 2) / 2
	offY := 2

	// HUD
	dst.DrawText(offX, 0, fmt.Sprintf("Tetris  Score: %d  Lines: %d", g.score, g.lines))

	// Well border
	dst.DrawBox(core.Rect{X: offX, Y: offY, W: g.fieldW*2 + 2, H: g.fieldH + 2})

	// Stack
	for y, row := range g.board {
		for x, v := range row {
			if v != 0 {
				g.drawCell(dst, offX, offY, x, y, shapeColors[v-1])
			}
		}
	}

	// Falling piece
	if !g.gameOver {
		for _, p := range cells(g.cur, g.rot) {
			g.drawCell(dst, offX, offY, g.curX+p.X, g.curY+p.Y, shapeColors[g.cur])
		}
	}

	if g.paused {
		dst.DrawTextCentered(offY+g.fieldH/2, " PAUSED ")
	}
	if g.gameOver {
		dst.DrawTextCentered(offY+g.fieldH/2, " GAME OVER - Press R to restart ")
	}
}

// drawCell paints one well cell as a two-character block.
func (g *Game) drawCell(dst *core.Screen, offX, offY, x, y int, color core.Color) {
	dst.SetCell(offX+1+x*2, offY+1+y, '█', color)
	dst.SetCell(offX+2+x*2, offY+1+y, '█', color)
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Left/Right: Move | Up/W: Rotate | Down: Soft drop | Space: Hard drop | P: Pause | R: Restart | Q: Quit"
}
