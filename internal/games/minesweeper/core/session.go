package core

import (
	"math/rand"

	"github.com/google/uuid"
)

// RunState is the lifecycle state of a session.
type RunState uint8

const (
	Running RunState = iota
	Won
	Lost
)

// String returns the string representation of a run state.
func (s RunState) String() string {
	switch s {
	case Running:
		return "Running"
	case Won:
		return "Won"
	case Lost:
		return "Lost"
	default:
		return "Unknown"
	}
}

// MoveResult describes the effect of a single click.
type MoveResult uint8

const (
	MoveIgnored MoveResult = iota
	MoveOpened
	MoveFlagged
	MoveUnflagged
	MoveWon
	MoveLost
)

// String returns the string representation of a move result.
func (r MoveResult) String() string {
	switch r {
	case MoveIgnored:
		return "ignored"
	case MoveOpened:
		return "opened"
	case MoveFlagged:
		return "flagged"
	case MoveUnflagged:
		return "unflagged"
	case MoveWon:
		return "won"
	case MoveLost:
		return "lost"
	default:
		return "unknown"
	}
}

// SessionOptions configures a new game.
type SessionOptions struct {
	Height     int
	Width      int
	Mines      int
	Relocation RelocationPolicy
}

// Session is one game from the first click to a win or a loss.
// A session is not safe for concurrent use; only the shared Stats are.
type Session struct {
	id         string
	field      *Field
	rng        Rand
	policy     RelocationPolicy
	stats      *Stats
	state      RunState
	firstClick bool
	lossAt     Coordinate
	moves      int
}

// NewSession builds a field from opts and starts a game on it.
// stats may be nil, in which case the outcome is not counted.
func NewSession(opts SessionOptions, rng Rand, stats *Stats) (*Session, error) {
	f, err := NewField(opts.Height, opts.Width, opts.Mines, rng)
	if err != nil {
		return nil, err
	}
	return NewSessionWithField(f, opts.Relocation, rng, stats), nil
}

// NewSessionWithField starts a game on an existing field, typically one whose
// mines were injected with AddMine. A nil rng falls back to a fixed seed.
func NewSessionWithField(f *Field, policy RelocationPolicy, rng Rand, stats *Stats) *Session {
	if rng == nil {
		rng = rand.New(rand.NewSource(0))
	}
	return &Session{
		id:         uuid.NewString(),
		field:      f,
		rng:        rng,
		policy:     policy,
		stats:      stats,
		state:      Running,
		firstClick: true,
	}
}

// SetFirstClick enables or disables first-click protection for the next left click.
func (s *Session) SetFirstClick(on bool) {
	s.firstClick = on
}

// ID returns the unique identifier assigned at creation.
func (s *Session) ID() string {
	return s.id
}

// Field returns the underlying field for read access.
func (s *Session) Field() *Field {
	return s.field
}

// State returns the current run state.
func (s *Session) State() RunState {
	return s.state
}

// IsRunning reports whether the game still accepts clicks.
func (s *Session) IsRunning() bool { return s.state == Running }

// IsWon reports whether the game ended in a win.
func (s *Session) IsWon() bool { return s.state == Won }

// IsLost reports whether the game ended in a loss.
func (s *Session) IsLost() bool { return s.state == Lost }

// LastLoss returns the cell that ended the game. ok is false unless the game is lost.
func (s *Session) LastLoss() (c Coordinate, ok bool) {
	if s.state != Lost {
		return Coordinate{}, false
	}
	return s.lossAt, true
}

// Moves returns the number of clicks that changed the board.
func (s *Session) Moves() int {
	return s.moves
}

// LeftClick opens the cell at (row, col).
func (s *Session) LeftClick(row, col int) MoveResult {
	c := At(row, col)
	if s.state != Running || !s.field.InBounds(c) || s.field.IsFlagged(c) {
		return MoveIgnored
	}

	if s.firstClick && s.field.HasMine(c) {
		s.field.RelocateMine(c, s.rng, s.policy)
		s.firstClick = false
	}

	// A saturated board can keep the mine under the literal policy.
	if s.field.HasMine(c) {
		s.field.SetOpened(c)
		s.lossAt = c
		s.moves++
		s.finish(Lost)
		return MoveLost
	}

	res := s.field.Open(c)
	s.firstClick = false
	if res == AlreadyOpenOrMined {
		return MoveIgnored
	}
	s.moves++

	if s.field.IsDone() {
		s.finish(Won)
		return MoveWon
	}
	return MoveOpened
}

// RightClick toggles the flag on a cell that is not opened.
func (s *Session) RightClick(row, col int) MoveResult {
	c := At(row, col)
	if s.state != Running || !s.field.InBounds(c) || s.field.IsOpened(c) {
		return MoveIgnored
	}

	s.field.ToggleFlag(c)
	s.moves++
	if s.field.IsFlagged(c) {
		return MoveFlagged
	}
	return MoveUnflagged
}

// Glyph renders one cell.
func (s *Session) Glyph(row, col int) string {
	return Render(s.field, At(row, col))
}

// Board renders the whole field.
func (s *Session) Board() string {
	return RenderBoard(s.field)
}

func (s *Session) finish(state RunState) {
	s.state = state
	s.field.SetRevealAll(true)
	s.stats.Record(state == Won)
}
