package core

import (
	"strings"
	"testing"
)

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.Set(3, 2, 'X')
	if got := s.Get(3, 2); got != 'X' {
		t.Errorf("Get(3,2) = %q, want 'X'", got)
	}

	// Untouched cells are spaces
	if got := s.Get(0, 0); got != ' ' {
		t.Errorf("Get(0,0) = %q, want space", got)
	}
}

func TestScreenOutOfBounds(t *testing.T) {
	s := NewScreen(4, 4)

	// Writes outside the buffer must be ignored, not panic
	s.Set(-1, 0, 'X')
	s.Set(0, -1, 'X')
	s.Set(4, 0, 'X')
	s.Set(0, 4, 'X')

	if got := s.Get(-1, 0); got != ' ' {
		t.Errorf("Get out of bounds = %q, want space", got)
	}
}

func TestScreenSetCellColor(t *testing.T) {
	s := NewScreen(4, 4)

	s.SetCell(1, 1, '#', ColorYellow)

	cell := s.GetCell(1, 1)
	if cell.Rune != '#' {
		t.Errorf("GetCell rune = %q, want '#'", cell.Rune)
	}
	if cell.Color != ColorYellow {
		t.Errorf("GetCell color = %d, want ColorYellow", cell.Color)
	}

	// Clear resets color too
	s.Clear()
	if cell := s.GetCell(1, 1); cell.Color != ColorDefault {
		t.Errorf("color after Clear = %d, want ColorDefault", cell.Color)
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 3)

	s.DrawText(2, 1, "hi")

	if row := s.Row(1); row != "  hi      " {
		t.Errorf("Row(1) = %q, want %q", row, "  hi      ")
	}
}

func TestScreenDrawTextClipped(t *testing.T) {
	s := NewScreen(5, 1)

	s.DrawText(3, 0, "abcdef")

	if row := s.Row(0); row != "   ab" {
		t.Errorf("Row(0) = %q, want %q", row, "   ab")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	want := "a  \n  b"
	if got := s.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestScreenResizePreservesContent(t *testing.T) {
	s := NewScreen(6, 4)
	s.Set(1, 1, 'x')
	s.Set(5, 3, 'y')

	s.Resize(3, 2)

	if got := s.Get(1, 1); got != 'x' {
		t.Errorf("after shrink Get(1,1) = %q, want 'x'", got)
	}

	s.Resize(8, 6)

	if got := s.Get(1, 1); got != 'x' {
		t.Errorf("after grow Get(1,1) = %q, want 'x'", got)
	}
	// Cell dropped during the shrink stays gone
	if got := s.Get(5, 3); got != ' ' {
		t.Errorf("after grow Get(5,3) = %q, want space", got)
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(6, 4)
	s.DrawBox(Rect{X: 0, Y: 0, W: 6, H: 4})

	if got := s.Get(0, 0); got != '┌' {
		t.Errorf("top-left = %q, want '┌'", got)
	}
	if got := s.Get(5, 3); got != '┘' {
		t.Errorf("bottom-right = %q, want '┘'", got)
	}
	if got := s.Get(3, 0); got != '─' {
		t.Errorf("top edge = %q, want '─'", got)
	}
	if got := s.Get(0, 2); got != '│' {
		t.Errorf("left edge = %q, want '│'", got)
	}
}

func TestScreenRowOutOfRange(t *testing.T) {
	s := NewScreen(4, 2)

	if row := s.Row(5); row != strings.Repeat(" ", 4) {
		t.Errorf("Row(5) = %q, want blank row", row)
	}
}
