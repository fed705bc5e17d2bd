package tui

import (
	"fmt"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-minesweeper/internal/core"
	"github.com/vovakirdan/tui-minesweeper/internal/registry"
)

func TestStatsScreenTotals(t *testing.T) {
	store := openStore(t)
	for i, won := range []bool{true, false, true, true} {
		_, err := store.SaveResult(core.GameResult{
			SessionID: fmt.Sprintf("s%d", i),
			GameID:    "minesweeper",
			Won:       won,
			Height:    9,
			Width:     9,
			Mines:     10,
			Moves:     5,
			Duration:  time.Duration(30+i) * time.Second,
		})
		require.NoError(t, err)
	}

	m := NewStatsModel(store, 100, 40)
	require.Len(t, m.recent, 4)

	cards := m.cards()
	for _, want := range []string{"Games", "4", "Wins", "3", "0.75", "0:30"} {
		assert.Contains(t, cards, want)
	}

	view := m.View()
	assert.Contains(t, view, "Statistics - All boards")
	assert.Contains(t, view, "9x9/10")
}

// registerFakeBoard makes sure at least one board tab exists next to "All boards".
func registerFakeBoard(t *testing.T) {
	t.Helper()
	if !registry.Exists("fake") {
		registry.Register("fake", func() registry.Game { return &fakeGame{} })
	}
}

func TestStatsScreenTabs(t *testing.T) {
	registerFakeBoard(t)
	store := openStore(t)
	for i, id := range []string{"fake", "fake", "elsewhere"} {
		_, err := store.SaveResult(core.GameResult{
			SessionID: fmt.Sprintf("tab-%d", i),
			GameID:    id,
			Won:       i == 0,
			Height:    3,
			Width:     3,
			Mines:     1,
			Moves:     2,
		})
		require.NoError(t, err)
	}

	m := NewStatsModel(store, 100, 40)
	n := len(m.tabs)
	require.Greater(t, n, 1)
	require.Len(t, m.recent, 3, "overall tab covers every board")

	fake := -1
	for i, tab := range m.tabs {
		if tab.ID == "fake" {
			fake = i
		}
	}
	require.NotEqual(t, -1, fake)

	var next tea.Model = m
	for range fake {
		next, _ = next.Update(tea.KeyMsg{Type: tea.KeyTab})
	}
	m = next.(StatsModel)
	assert.Equal(t, fake, m.tab)
	assert.Len(t, m.recent, 2, "board tab only shows its own games")
	assert.Contains(t, m.View(), "Statistics - Fake")

	next, _ = NewStatsModel(store, 100, 40).Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, n-1, next.(StatsModel).tab, "tabs should wrap around")

	for range n {
		next, _ = next.Update(tea.KeyMsg{Type: tea.KeyTab})
	}
	assert.Equal(t, n-1, next.(StatsModel).tab, "a full cycle returns to the same tab")
}

func TestStatsScreenWithoutStore(t *testing.T) {
	m := NewStatsModel(nil, 60, 20)
	assert.Empty(t, m.cards())
	assert.True(t, strings.Contains(m.View(), "No games recorded yet"))

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, next.(StatsModel).WentBack())

	next, _ = m.Update(runeKey("q"))
	assert.False(t, next.(StatsModel).WentBack())
	assert.Empty(t, next.View())
}

func TestFormatDuration(t *testing.T) {
	for d, want := range map[time.Duration]string{
		0:                                     "0:00",
		59 * time.Second:                      "0:59",
		61*time.Second + 600*time.Millisecond: "1:02",
		10 * time.Minute:                      "10:00",
	} {
		assert.Equal(t, want, formatDuration(d), "formatDuration(%v)", d)
	}
}

func TestShortTitle(t *testing.T) {
	assert.Equal(t, "Intermediate", shortTitle("Minesweeper (Intermediate)", 20))
	assert.Equal(t, "Default", shortTitle("Minesweeper", 20))
	assert.Equal(t, "All .", shortTitle("All boards", 5))
}
