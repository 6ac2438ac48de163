// Package g2048 implements the 2048 puzzle game: a pure board engine for
// sliding and merging tiles, and a game controller that owns the session
// state around it.
package g2048

import (
	"fmt"
)

// Direction represents a move direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// DefaultBoardSize is the classic board dimension.
const DefaultBoardSize = 4

// Grid is a square board of tile values. 0 denotes an empty cell; every
// other value is a positive power of two. The engine treats grids as
// immutable: Move returns a fresh grid and never touches its input.
type Grid [][]int

// NewGrid creates an empty n×n grid.
func NewGrid(n int) Grid {
	g := make(Grid, n)
	for y := range g {
		g[y] = make([]int, n)
	}
	return g
}

// Size returns the grid dimension.
func (g Grid) Size() int {
	return len(g)
}

// Clone returns a deep copy of the grid.
func (g Grid) Clone() Grid {
	c := make(Grid, len(g))
	for y, row := range g {
		c[y] = make([]int, len(row))
		copy(c[y], row)
	}
	return c
}

// Equal reports whether two grids are cell-wise identical.
func (g Grid) Equal(other Grid) bool {
	if len(g) != len(other) {
		return false
	}
	for y := range g {
		if len(g[y]) != len(other[y]) {
			return false
		}
		for x := range g[y] {
			if g[y][x] != other[y][x] {
				return false
			}
		}
	}
	return true
}

// Sum returns the sum of all tile values.
func (g Grid) Sum() int {
	total := 0
	for _, row := range g {
		for _, v := range row {
			total += v
		}
	}
	return total
}

// Validate checks the grid invariants: the grid must be square and every
// cell must hold 0 or a positive power of two. No caller in the game passes
// malformed grids; this guards session construction and external input.
func Validate(g Grid) error {
	n := len(g)
	if n == 0 {
		return fmt.Errorf("g2048: empty grid")
	}
	for y, row := range g {
		if len(row) != n {
			return fmt.Errorf("g2048: grid is not square: row %d has %d cells, want %d", y, len(row), n)
		}
		for x, v := range row {
			if v == 0 {
				continue
			}
			if v < 0 || v&(v-1) != 0 {
				return fmt.Errorf("g2048: cell (%d,%d) holds %d, want 0 or a positive power of two", x, y, v)
			}
		}
	}
	return nil
}

// MoveResult is the outcome of applying one directional move to a grid.
type MoveResult struct {
	Grid       Grid // The transformed grid; the input is left untouched
	ScoreDelta int  // Sum of merged tile values produced by this move
	Changed    bool // False iff the grid is cell-wise identical to the input
}

// Move applies the sliding-and-merging transformation for one direction
// and returns the result. It is a pure function: deterministic, no side
// effects, no randomness. Panics if the grid is not square, which only a
// programming error can produce.
func Move(g Grid, dir Direction) MoveResult {
	mustBeSquare(g)

	n := len(g)
	out := NewGrid(n)
	score := 0

	for i := 0; i < n; i++ {
		line := extractLine(g, dir, i)
		compacted, gained := compactLine(line)
		score += gained
		writeLine(out, dir, i, compacted)
	}

	return MoveResult{
		Grid:       out,
		ScoreDelta: score,
		Changed:    !g.Equal(out),
	}
}

func mustBeSquare(g Grid) {
	n := len(g)
	for _, row := range g {
		if len(row) != n {
			panic(fmt.Sprintf("g2048: Move on non-square grid (%dx%d row)", n, len(row)))
		}
	}
}

// extractLine reads one line of the grid ordered from the leading edge of
// the given direction: for Left a row left-to-right, for Right a row
// right-to-left, for Up a column top-to-bottom, for Down bottom-to-top.
func extractLine(g Grid, dir Direction, i int) []int {
	n := len(g)
	line := make([]int, n)
	for j := 0; j < n; j++ {
		switch dir {
		case DirLeft:
			line[j] = g[i][j]
		case DirRight:
			line[j] = g[i][n-1-j]
		case DirUp:
			line[j] = g[j][i]
		case DirDown:
			line[j] = g[n-1-j][i]
		}
	}
	return line
}

// writeLine stores a compacted line back into the grid in the orientation
// implied by the direction's leading edge.
func writeLine(g Grid, dir Direction, i int, line []int) {
	n := len(g)
	for j := 0; j < n; j++ {
		switch dir {
		case DirLeft:
			g[i][j] = line[j]
		case DirRight:
			g[i][n-1-j] = line[j]
		case DirUp:
			g[j][i] = line[j]
		case DirDown:
			g[n-1-j][i] = line[j]
		}
	}
}

// compactLine slides a line toward index 0 and merges adjacent equal tiles.
// A cell produced by a merge is not eligible to merge again within the same
// move: [2 2 4 4] becomes [4 8 0 0], never [8 8 0 0] chained into [16 ...].
// Returns the compacted line (zero-padded at the trailing edge) and the
// score gained from merges.
func compactLine(line []int) (result []int, score int) {
	result = make([]int, len(line))
	writePos := 0
	lastMerged := -1

	for _, v := range line {
		if v == 0 {
			continue
		}

		if writePos > 0 && result[writePos-1] == v && lastMerged != writePos-1 {
			result[writePos-1] *= 2
			score += result[writePos-1]
			lastMerged = writePos - 1
		} else {
			result[writePos] = v
			writePos++
		}
	}

	return result, score
}

// IsTerminal reports whether no further move can change the grid: the board
// is full and no two orthogonally adjacent cells hold equal values.
func IsTerminal(g Grid) bool {
	n := len(g)
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			v := g[y][x]
			if v == 0 {
				return false
			}
			if x < n-1 && g[y][x+1] == v {
				return false
			}
			if y < n-1 && g[y+1][x] == v {
				return false
			}
		}
	}
	return true
}

// CellPos is a grid coordinate.
type CellPos struct {
	X, Y int
}

// EmptyCells returns coordinates of all empty cells in row-major order.
func EmptyCells(g Grid) []CellPos {
	var cells []CellPos
	for y, row := range g {
		for x, v := range row {
			if v == 0 {
				cells = append(cells, CellPos{X: x, Y: y})
			}
		}
	}
	return cells
}

// MaxTile returns the maximum tile value on the grid.
func MaxTile(g Grid) int {
	maxVal := 0
	for _, row := range g {
		for _, v := range row {
			if v > maxVal {
				maxVal = v
			}
		}
	}
	return maxVal
}

// CountTiles returns the number of nonzero cells.
func CountTiles(g Grid) int {
	count := 0
	for _, row := range g {
		for _, v := range row {
			if v != 0 {
				count++
			}
		}
	}
	return count
}
