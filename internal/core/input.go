package core

// Action is a player intent decoded from a key press. Games react to
// actions, never to raw keys.
type Action uint8

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionReveal  // Open the cell under the cursor
	ActionFlag    // Toggle the flag under the cursor
	ActionBack    // Leave to the menu
	ActionRestart // Discard the board and deal a new one
	ActionQuit
	ActionPause
	actionCount
)

var actionNames = [actionCount]string{
	"None", "Up", "Down", "Left", "Right", "Reveal", "Flag", "Back", "Restart", "Quit", "Pause",
}

func (a Action) String() string {
	if a >= actionCount {
		return "Unknown"
	}
	return actionNames[a]
}

// InputFrame collects the actions pressed between two ticks.
type InputFrame struct {
	bits uint32
}

// NewInputFrame returns an empty frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set records a.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone || a >= actionCount {
		return
	}
	f.bits |= 1 << a
}

// Has reports whether a was pressed this frame.
func (f InputFrame) Has(a Action) bool {
	return a < actionCount && f.bits&(1<<a) != 0
}

// Clear forgets every action.
func (f *InputFrame) Clear() {
	f.bits = 0
}
