package core_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-minesweeper/internal/games/minesweeper/core"
)

func TestRelocateMineClearsClickedCell(t *testing.T) {
	for seed := int64(1); seed <= 50; seed++ {
		rng := rand.New(rand.NewSource(seed))
		f, err := core.NewField(5, 5, 24, rng)
		require.NoError(t, err)

		var clicked core.Coordinate
		for r := 0; r < 5; r++ {
			for c := 0; c < 5; c++ {
				if f.HasMine(core.At(r, c)) {
					clicked = core.At(r, c)
				}
			}
		}

		dest := f.RelocateMine(clicked, rng, core.RelocateLiteral)
		assert.False(t, f.HasMine(clicked), "seed %d: clicked cell still mined", seed)
		assert.True(t, f.HasMine(dest), "seed %d: destination not mined", seed)
		assert.NotEqual(t, clicked, dest)
		assert.Equal(t, 24, f.CountMines(), "seed %d: mine count changed", seed)
	}
}

func TestRelocateMineResamples(t *testing.T) {
	f := emptyField(t, 3, 3, core.At(0, 0), core.At(0, 1))

	// 0 is the clicked cell, 1 is mined, 4 is the free center.
	rng := &scriptedRand{vals: []int{0, 1, 4}}
	dest := f.RelocateMine(core.At(0, 0), rng, core.RelocateLiteral)

	assert.Equal(t, core.At(1, 1), dest)
	assert.False(t, f.HasMine(core.At(0, 0)))
	assert.True(t, f.HasMine(core.At(1, 1)))
	assert.Equal(t, 2, f.CountMines())
}

func TestRelocateMineSaturated(t *testing.T) {
	tests := []struct {
		name      string
		policy    core.RelocationPolicy
		candidate int
		wantDest  core.Coordinate
		wantMined bool
		wantMines int
	}{
		{"literal other cell", core.RelocateLiteral, 3, core.At(1, 1), false, 3},
		{"literal same cell", core.RelocateLiteral, 0, core.At(0, 0), true, 4},
		{"clear", core.RelocateClear, 3, core.At(0, 0), false, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := core.NewField(2, 2, 4, rand.New(rand.NewSource(1)))
			require.NoError(t, err)
			require.True(t, f.Saturated())

			dest := f.RelocateMine(core.At(0, 0), &scriptedRand{vals: []int{tt.candidate}}, tt.policy)

			assert.Equal(t, tt.wantDest, dest)
			assert.Equal(t, tt.wantMined, f.HasMine(core.At(0, 0)))
			assert.Equal(t, tt.wantMines, f.CountMines())
		})
	}
}

func TestRelocateMineWithoutMine(t *testing.T) {
	f := emptyField(t, 2, 2, core.At(1, 1))

	dest := f.RelocateMine(core.At(0, 0), &scriptedRand{}, core.RelocateLiteral)
	assert.Equal(t, core.At(0, 0), dest)
	assert.Equal(t, 1, f.CountMines())
	assert.True(t, f.HasMine(core.At(1, 1)))
}

func TestParseRelocationPolicy(t *testing.T) {
	tests := []struct {
		in   string
		want core.RelocationPolicy
		ok   bool
	}{
		{"literal", core.RelocateLiteral, true},
		{"", core.RelocateLiteral, true},
		{"clear", core.RelocateClear, true},
		{"bogus", core.RelocateLiteral, false},
	}

	for _, tt := range tests {
		got, ok := core.ParseRelocationPolicy(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseRelocationPolicy(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
		if ok && tt.in != "" && got.String() != tt.in {
			t.Errorf("expected %q to round-trip, got %q", tt.in, got.String())
		}
	}
}
