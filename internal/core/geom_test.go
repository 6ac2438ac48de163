package core

import "testing"

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want bool
	}{
		{"overlapping", NewRect(0, 0, 4, 4), NewRect(2, 2, 4, 4), true},
		{"touching edges", NewRect(0, 0, 4, 4), NewRect(4, 0, 4, 4), false},
		{"disjoint", NewRect(0, 0, 2, 2), NewRect(5, 5, 2, 2), false},
		{"contained", NewRect(0, 0, 10, 10), NewRect(3, 3, 2, 2), true},
		{"same rect", NewRect(1, 1, 3, 3), NewRect(1, 1, 3, 3), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Intersects(tt.b); got != tt.want {
				t.Errorf("Intersects(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
			// Intersection is symmetric
			if got := tt.b.Intersects(tt.a); got != tt.want {
				t.Errorf("Intersects(%v, %v) = %v, want %v", tt.b, tt.a, got, tt.want)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(2, 2, 3, 3)

	if !r.Contains(2, 2) {
		t.Error("Contains(2,2) should be true (inclusive top-left)")
	}
	if r.Contains(5, 5) {
		t.Error("Contains(5,5) should be false (exclusive bottom-right)")
	}
	if r.Contains(1, 3) {
		t.Error("Contains(1,3) should be false")
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(5, 0, 10); got != 5 {
		t.Errorf("Clamp(5,0,10) = %d, want 5", got)
	}
	if got := Clamp(-3, 0, 10); got != 0 {
		t.Errorf("Clamp(-3,0,10) = %d, want 0", got)
	}
	if got := Clamp(42, 0, 10); got != 10 {
		t.Errorf("Clamp(42,0,10) = %d, want 10", got)
	}
}
