package core

import "testing"

func TestResolveSwipe(t *testing.T) {
	tests := []struct {
		name                       string
		startX, startY, endX, endY int
		want                       Action
	}{
		{"right swipe", 10, 5, 20, 6, ActionRight},
		{"left swipe", 20, 5, 10, 4, ActionLeft},
		{"down swipe", 10, 2, 11, 12, ActionDown},
		{"up swipe", 10, 12, 9, 2, ActionUp},
		{"below threshold horizontal", 10, 5, 12, 5, ActionNone},
		{"below threshold vertical", 10, 5, 10, 7, ActionNone},
		{"click in place", 10, 5, 10, 5, ActionNone},
		{"horizontal wins ties", 0, 0, 6, 6, ActionRight},
		{"exactly at threshold", 0, 0, 3, 0, ActionRight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveSwipe(tt.startX, tt.startY, tt.endX, tt.endY, DefaultSwipeThreshold)
			if got != tt.want {
				t.Errorf("ResolveSwipe(%d,%d -> %d,%d) = %v, want %v",
					tt.startX, tt.startY, tt.endX, tt.endY, got, tt.want)
			}
		})
	}
}

func TestResolveSwipeCustomThreshold(t *testing.T) {
	// A short drag counts with a small threshold
	if got := ResolveSwipe(0, 0, 2, 0, 1); got != ActionRight {
		t.Errorf("threshold 1: got %v, want ActionRight", got)
	}
	// The same drag is ignored with a bigger one
	if got := ResolveSwipe(0, 0, 2, 0, 5); got != ActionNone {
		t.Errorf("threshold 5: got %v, want ActionNone", got)
	}
	// Non-positive thresholds fall back to the default
	if got := ResolveSwipe(0, 0, 2, 0, 0); got != ActionNone {
		t.Errorf("threshold 0: got %v, want ActionNone", got)
	}
}

func TestInputFrameDirection(t *testing.T) {
	f := NewInputFrame()

	if _, ok := f.Direction(); ok {
		t.Error("empty frame should report no direction")
	}

	f.Set(ActionLeft)
	dir, ok := f.Direction()
	if !ok || dir != ActionLeft {
		t.Errorf("Direction() = %v, %v; want ActionLeft, true", dir, ok)
	}

	// Up takes priority when several directions land in one frame
	f.Set(ActionUp)
	dir, _ = f.Direction()
	if dir != ActionUp {
		t.Errorf("Direction() with Up+Left = %v, want ActionUp", dir)
	}
}
