package core_test

import (
	"testing"

	"github.com/vovakirdan/tui-minesweeper/internal/games/minesweeper/core"
)

func TestRenderBoardMasked(t *testing.T) {
	f := emptyField(t, 3, 3, core.At(0, 0))
	f.ToggleFlag(core.At(2, 2))
	f.Open(core.At(1, 1))

	want := "...\n.1.\n..F\n"
	if got := core.RenderBoard(f); got != want {
		t.Errorf("expected board %q, got %q", want, got)
	}
}

func TestRenderBoardRevealAll(t *testing.T) {
	f := emptyField(t, 3, 3, core.At(0, 0))
	f.ToggleFlag(core.At(2, 2))
	f.SetRevealAll(true)

	want := "X1 \n11 \n   \n"
	if got := core.RenderBoard(f); got != want {
		t.Errorf("expected board %q, got %q", want, got)
	}
}

func TestRenderGlyphs(t *testing.T) {
	f := emptyField(t, 3, 3,
		core.At(0, 0), core.At(0, 1), core.At(0, 2),
		core.At(1, 0), core.At(1, 2),
		core.At(2, 0), core.At(2, 1), core.At(2, 2),
	)
	f.Open(core.At(1, 1))

	tests := []struct {
		name string
		at   core.Coordinate
		want string
	}{
		{"eight", core.At(1, 1), "8"},
		{"hidden mine", core.At(0, 0), core.GlyphHidden},
		{"out of bounds", core.At(3, 3), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := core.Render(f, tt.at); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestRenderOpenedMine(t *testing.T) {
	f := emptyField(t, 1, 2, core.At(0, 0))
	f.SetOpened(core.At(0, 0))

	if got := core.Render(f, core.At(0, 0)); got != core.GlyphMine {
		t.Errorf("expected %q, got %q", core.GlyphMine, got)
	}
	if got := core.Render(f, core.At(0, 1)); got != core.GlyphHidden {
		t.Errorf("expected %q, got %q", core.GlyphHidden, got)
	}
}
