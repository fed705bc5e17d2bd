package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-minesweeper/internal/config"
	"github.com/vovakirdan/tui-minesweeper/internal/core"
)

func sendKeys(m tea.Model, keys ...tea.KeyMsg) tea.Model {
	for _, k := range keys {
		m, _ = m.Update(k)
	}
	return m
}

func TestMenuEndsWithCustomBoard(t *testing.T) {
	m := NewMenuModel(core.RuntimeConfig{ScreenW: 80, ScreenH: 24})

	last := m.items[len(m.items)-1]
	if !last.Custom {
		t.Fatal("expected the last entry to open the board editor")
	}

	down := make([]tea.KeyMsg, len(m.items)+2)
	for i := range down {
		down[i] = tea.KeyMsg{Type: tea.KeyDown}
	}
	final := sendKeys(m, append(down, tea.KeyMsg{Type: tea.KeyEnter})...).(MenuModel)

	res := final.result()
	if !res.Custom || res.Quit {
		t.Errorf("expected a custom selection, got %+v", res)
	}
}

func TestMenuStatsAndQuit(t *testing.T) {
	m := NewMenuModel(core.RuntimeConfig{ScreenW: 80, ScreenH: 24})

	sb := sendKeys(m, tea.KeyMsg{Type: tea.KeyTab}).(MenuModel)
	if !sb.result().WantsStats {
		t.Error("expected tab to open statistics")
	}

	q := sendKeys(m, runeKey("q")).(MenuModel)
	if !q.result().Quit {
		t.Error("expected q to quit")
	}
}

func TestMenuResizeUpdatesConfig(t *testing.T) {
	m := NewMenuModel(core.RuntimeConfig{ScreenW: 80, ScreenH: 24})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	cfg := next.(MenuModel).Config()
	if cfg.ScreenW != 120 || cfg.ScreenH != 40 {
		t.Errorf("expected 120x40, got %dx%d", cfg.ScreenW, cfg.ScreenH)
	}
}

func TestCenterText(t *testing.T) {
	if got := centerText("ab", 6); got != "  ab" {
		t.Errorf("centerText = %q", got)
	}
	if got := centerText("abcdef", 4); got != "abcdef" {
		t.Errorf("long text changed: %q", got)
	}
}

func TestBoardEditorClampsMines(t *testing.T) {
	m := NewBoardModel(config.BoardConfig{Height: 2, Width: 2, Mines: 4}, "clear", 80, 24)
	if m.relocation != 1 {
		t.Fatalf("expected clear policy selected, got %d", m.relocation)
	}

	// Move to mines and try to go past height*width.
	final := sendKeys(m,
		tea.KeyMsg{Type: tea.KeyDown},
		tea.KeyMsg{Type: tea.KeyDown},
		tea.KeyMsg{Type: tea.KeyRight},
		tea.KeyMsg{Type: tea.KeyRight},
	).(BoardModel)
	if final.board.Mines != 4 {
		t.Errorf("expected mines clamped to 4, got %d", final.board.Mines)
	}

	// Shrinking the board pulls the mine count down with it.
	final = sendKeys(final,
		tea.KeyMsg{Type: tea.KeyUp},
		tea.KeyMsg{Type: tea.KeyLeft},
	).(BoardModel)
	if final.board != (config.BoardConfig{Height: 2, Width: 1, Mines: 2}) {
		t.Errorf("unexpected board %v", final.board)
	}
}

func TestBoardEditorSelection(t *testing.T) {
	m := NewBoardModel(config.BoardConfig{Height: 9, Width: 9, Mines: 10}, "literal", 80, 24)
	if m.Selected() != nil {
		t.Fatal("expected no selection while choosing")
	}

	final := sendKeys(m,
		tea.KeyMsg{Type: tea.KeyRight}, // height 10
		tea.KeyMsg{Type: tea.KeyDown},
		tea.KeyMsg{Type: tea.KeyDown},
		tea.KeyMsg{Type: tea.KeyDown},
		tea.KeyMsg{Type: tea.KeyEnter}, // toggles relocation
		tea.KeyMsg{Type: tea.KeyDown},
		tea.KeyMsg{Type: tea.KeyEnter}, // start
	).(BoardModel)

	sel := final.Selected()
	if sel == nil {
		t.Fatal("expected a selection")
	}
	if sel.Board != (config.BoardConfig{Height: 10, Width: 9, Mines: 10}) || sel.Relocation != "clear" {
		t.Errorf("unexpected selection %+v", *sel)
	}
}

func TestBoardEditorBack(t *testing.T) {
	m := NewBoardModel(config.BoardConfig{Height: 9, Width: 9, Mines: 10}, "", 80, 24)
	final := sendKeys(m, tea.KeyMsg{Type: tea.KeyEsc}).(BoardModel)

	if !final.WantsBack() || final.Selected() != nil {
		t.Error("expected back without a selection")
	}
	if final.View() != "" {
		t.Error("expected empty view after leaving")
	}
}

func TestBoardEditorView(t *testing.T) {
	m := NewBoardModel(config.BoardConfig{Height: 16, Width: 30, Mines: 99}, "literal", 80, 24)
	view := m.View()

	for _, want := range []string{"Height:     < 16 >", "Width:      < 30 >", "Mines:      <   99 >", "Relocation: < literal >"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}
