package core_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-minesweeper/internal/games/minesweeper/core"
)

// scriptedRand returns the queued values in order, then zeros.
type scriptedRand struct {
	vals []int
	pos  int
}

func (r *scriptedRand) Intn(n int) int {
	if r.pos >= len(r.vals) {
		return 0
	}
	v := r.vals[r.pos]
	r.pos++
	return v % n
}

func emptyField(t *testing.T, height, width int, mines ...core.Coordinate) *core.Field {
	t.Helper()
	f, err := core.NewEmptyField(height, width)
	if err != nil {
		t.Fatalf("NewEmptyField(%d, %d): %v", height, width, err)
	}
	for _, m := range mines {
		if !f.AddMine(m) {
			t.Fatalf("AddMine(%v) failed", m)
		}
	}
	return f
}

func TestNewFieldClampsMines(t *testing.T) {
	tests := []struct {
		name   string
		height int
		width  int
		mines  int
		want   int
	}{
		{"classic", 10, 10, 10, 10},
		{"no mines", 3, 3, 0, 0},
		{"exactly full", 2, 2, 4, 4},
		{"over requested", 2, 2, 10, 4},
		{"single cell over", 1, 1, 5, 1},
		{"wide board over", 3, 4, 100, 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := core.NewField(tt.height, tt.width, tt.mines, rand.New(rand.NewSource(42)))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := f.CountMines(); got != tt.want {
				t.Errorf("expected %d mines on board, got %d", tt.want, got)
			}
			if got := f.MineCount(); got != tt.want {
				t.Errorf("expected configured mine count %d, got %d", tt.want, got)
			}
		})
	}
}

func TestNewFieldInvalidConfiguration(t *testing.T) {
	tests := []struct {
		name   string
		height int
		width  int
		mines  int
	}{
		{"zero height", 0, 5, 1},
		{"zero width", 5, 0, 1},
		{"negative height", -1, 5, 1},
		{"negative mines", 5, 5, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := core.NewField(tt.height, tt.width, tt.mines, rand.New(rand.NewSource(1)))
			if !errors.Is(err, core.ErrInvalidConfiguration) {
				t.Errorf("expected ErrInvalidConfiguration, got %v", err)
			}
			if f != nil {
				t.Error("expected nil field on error")
			}
		})
	}
}

func TestNewFieldDeterministic(t *testing.T) {
	a, _ := core.NewField(9, 9, 10, rand.New(rand.NewSource(7)))
	b, _ := core.NewField(9, 9, 10, rand.New(rand.NewSource(7)))
	if core.RenderBoard(revealed(a)) != core.RenderBoard(revealed(b)) {
		t.Error("same seed produced different layouts")
	}
}

func revealed(f *core.Field) *core.Field {
	f.SetRevealAll(true)
	return f
}

func TestToggleFlagIsOwnInverse(t *testing.T) {
	f := emptyField(t, 3, 3, core.At(0, 0))

	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			at := core.At(r, c)
			before := f.IsFlagged(at)
			if !f.ToggleFlag(at) {
				t.Fatalf("first toggle at %v reported no change", at)
			}
			if f.IsFlagged(at) == before {
				t.Errorf("at %v: first toggle did not change flag", at)
			}
			f.ToggleFlag(at)
			if f.IsFlagged(at) != before {
				t.Errorf("at %v: expected flag %v after two toggles, got %v", at, before, f.IsFlagged(at))
			}
		}
	}
}

func TestToggleFlagOnOpenedCell(t *testing.T) {
	f := emptyField(t, 2, 2)
	f.SetOpened(core.At(0, 0))

	if f.ToggleFlag(core.At(0, 0)) {
		t.Error("expected ToggleFlag on opened cell to be a no-op")
	}
	if f.IsFlagged(core.At(0, 0)) {
		t.Error("opened cell must not be flagged")
	}
}

func TestSetOpenedIdempotence(t *testing.T) {
	f := emptyField(t, 2, 2)
	at := core.At(1, 1)

	f.ToggleFlag(at)
	if !f.SetOpened(at) {
		t.Error("expected first SetOpened to report a change")
	}
	if f.SetOpened(at) {
		t.Error("expected second SetOpened to report no change")
	}
	if f.IsFlagged(at) {
		t.Error("opening a cell should drop its flag")
	}
}

func TestAddRemoveMine(t *testing.T) {
	f := emptyField(t, 2, 2)
	at := core.At(0, 1)

	if !f.AddMine(at) {
		t.Error("expected AddMine on empty cell to succeed")
	}
	if f.AddMine(at) {
		t.Error("expected AddMine on mined cell to be a no-op")
	}
	if !f.RemoveMine(at) {
		t.Error("expected RemoveMine to succeed")
	}
	if f.RemoveMine(at) {
		t.Error("expected RemoveMine on empty cell to be a no-op")
	}
}

func TestCountMinedNeighbors(t *testing.T) {
	f := emptyField(t, 3, 3, core.At(0, 0), core.At(0, 1), core.At(1, 1), core.At(2, 2))

	tests := []struct {
		at   core.Coordinate
		want int
	}{
		{core.At(1, 1), 3}, // origin is mined but excluded
		{core.At(0, 0), 2},
		{core.At(2, 0), 1},
		{core.At(1, 2), 3},
		{core.At(2, 1), 2},
	}

	for _, tt := range tests {
		if got := f.CountMinedNeighbors(tt.at); got != tt.want {
			t.Errorf("CountMinedNeighbors(%v) = %d, want %d", tt.at, got, tt.want)
		}
	}
}

func TestNeighbors(t *testing.T) {
	f := emptyField(t, 4, 5)

	tests := []struct {
		name string
		at   core.Coordinate
		want int
	}{
		{"corner", core.At(0, 0), 3},
		{"edge", core.At(0, 2), 5},
		{"interior", core.At(2, 2), 8},
		{"far corner", core.At(3, 4), 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := f.Neighbors(tt.at)
			if len(got) != tt.want {
				t.Errorf("expected %d neighbors, got %d", tt.want, len(got))
			}
			for _, n := range got {
				if n == tt.at {
					t.Error("origin must not be its own neighbor")
				}
			}
		})
	}
}

func TestOutOfBoundsIsNoop(t *testing.T) {
	f := emptyField(t, 2, 2)
	outside := []core.Coordinate{core.At(-1, 0), core.At(0, -1), core.At(2, 0), core.At(0, 2)}

	for _, at := range outside {
		if f.HasMine(at) || f.IsOpened(at) || f.IsFlagged(at) {
			t.Errorf("%v: expected empty queries", at)
		}
		if f.AddMine(at) || f.SetOpened(at) || f.ToggleFlag(at) || f.RemoveMine(at) {
			t.Errorf("%v: expected mutations to be no-ops", at)
		}
	}
	if f.CountMines() != 0 || f.OpenedCount() != 0 || f.FlagCount() != 0 {
		t.Error("out-of-bounds calls changed the field")
	}
}

func TestInBounds(t *testing.T) {
	tests := []struct {
		row, col int
		want     bool
	}{
		{0, 0, true},
		{2, 3, true},
		{3, 0, false},
		{0, 4, false},
		{-1, 0, false},
	}

	for _, tt := range tests {
		if got := core.InBounds(tt.row, tt.col, 3, 4); got != tt.want {
			t.Errorf("InBounds(%d, %d, 3, 4) = %v, want %v", tt.row, tt.col, got, tt.want)
		}
	}
}
