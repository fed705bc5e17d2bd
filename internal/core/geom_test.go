package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(2, 1, 5, 3)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"top-left cell", 2, 1, true},
		{"last cell", 6, 3, true},
		{"right edge is exclusive", 7, 2, false},
		{"bottom edge is exclusive", 4, 4, false},
		{"left of rect", 1, 2, false},
		{"above rect", 3, 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestRectFits(t *testing.T) {
	r := NewRect(0, 0, 63, 20)

	if !r.Fits(63, 20) {
		t.Error("expected an exact fit")
	}
	if r.Fits(64, 10) || r.Fits(10, 21) {
		t.Error("expected oversize areas not to fit")
	}
}

func TestCenteredRect(t *testing.T) {
	r := CenteredRect(80, 24, 23, 11)

	if r.X != 28 || r.Y != 6 || r.Right() != 51 || r.Bottom() != 17 {
		t.Errorf("CenteredRect = %+v, expected origin (28, 6) and edges (51, 17)", r)
	}
}

func TestScreenBounds(t *testing.T) {
	s := NewScreen(10, 4)
	b := s.Bounds()

	if b != NewRect(0, 0, 10, 4) {
		t.Errorf("Bounds() = %+v", b)
	}
	s.Set(10, 0, 'x') // ignored
	s.Set(9, 3, 'y')
	if s.Get(9, 3) != 'y' {
		t.Error("expected last cell to be writable")
	}
}
