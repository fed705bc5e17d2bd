// Package tui provides the Bubble Tea integration for the minesweeper platform.
// It handles the terminal UI loop, input mapping, menus, and the statistics screen.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-minesweeper/internal/core"
)

// TickMsg drives one game step. The board only changes on input, but the
// HUD clock and key handling run on the tick.
type TickMsg time.Time

// tickInterval returns the delay between ticks; non-positive rates use the default.
func tickInterval(tickRate int) time.Duration {
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}
	return time.Second / time.Duration(tickRate)
}

// tickCmd schedules the next TickMsg.
func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(tickInterval(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
