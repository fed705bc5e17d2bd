package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-minesweeper/internal/core"
)

// boardKeys binds keys to actions during play. WASD, vim keys, and arrows
// all move the cursor.
var boardKeys = map[string]core.Action{
	"w": core.ActionUp, "k": core.ActionUp, "up": core.ActionUp,
	"s": core.ActionDown, "j": core.ActionDown, "down": core.ActionDown,
	"a": core.ActionLeft, "h": core.ActionLeft, "left": core.ActionLeft,
	"d": core.ActionRight, "l": core.ActionRight, "right": core.ActionRight,
	" ": core.ActionReveal, "enter": core.ActionReveal,
	"f": core.ActionFlag, "x": core.ActionFlag,
	"b": core.ActionBack, "esc": core.ActionBack,
	"p": core.ActionPause,
	"r": core.ActionRestart,
	"q": core.ActionQuit, "ctrl+c": core.ActionQuit,
}

// KeyMapper turns Bubble Tea key messages into actions.
type KeyMapper struct {
	board map[string]core.Action
	menu  map[string]MenuAction
}

// NewKeyMapper returns a mapper with the default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{board: boardKeys, menu: menuKeys}
}

// MapKey returns the action bound to msg, and whether it asks to quit.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	action = km.board[msg.String()]
	return action, action == core.ActionQuit
}

// MapKeyToFrame records the action bound to msg in frame. Quit is reported
// instead of recorded.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if !isQuit {
		frame.Set(action)
	}
	return isQuit
}

// MenuAction is an intent on a menu or editor screen.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionLeft  // Also decreases a value
	MenuActionRight // Also increases a value
	MenuActionSelect
	MenuActionBack
	MenuActionStats
	MenuActionQuit
)

var menuKeys = map[string]MenuAction{
	"w": MenuActionUp, "k": MenuActionUp, "up": MenuActionUp,
	"s": MenuActionDown, "j": MenuActionDown, "down": MenuActionDown,
	"a": MenuActionLeft, "h": MenuActionLeft, "left": MenuActionLeft, "-": MenuActionLeft,
	"d": MenuActionRight, "l": MenuActionRight, "right": MenuActionRight, "+": MenuActionRight, "=": MenuActionRight,
	"enter": MenuActionSelect, " ": MenuActionSelect,
	"b": MenuActionBack, "esc": MenuActionBack,
	"tab": MenuActionStats,
	"q": MenuActionQuit, "ctrl+c": MenuActionQuit,
}

// MapKeyToMenuAction returns the menu action bound to msg.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	return km.menu[msg.String()]
}
