package core

import "fmt"

// CellStatus is the player-visible state of a cell.
// Mine presence is tracked separately and is independent of the status.
type CellStatus uint8

const (
	Hidden CellStatus = iota
	Opened
	Flagged
)

// String returns the string representation of a cell status.
func (s CellStatus) String() string {
	switch s {
	case Hidden:
		return "Hidden"
	case Opened:
		return "Opened"
	case Flagged:
		return "Flagged"
	default:
		return "Unknown"
	}
}

// cell is the per-coordinate state record.
type cell struct {
	mine   bool
	status CellStatus
}

// Field holds the mines, opened cells and flags of one board.
// Cells are stored as a 2D array indexed [row][col].
type Field struct {
	height    int
	width     int
	mineCount int // requested mines after clamping to height*width
	cells     [][]cell
	revealAll bool
}

// NewField creates a height x width field and places min(mines, height*width)
// mines uniformly at random using rng.
func NewField(height, width, mines int, rng Rand) (*Field, error) {
	f, err := newField(height, width, mines)
	if err != nil {
		return nil, err
	}
	f.place(rng)
	return f, nil
}

// NewEmptyField creates a field with no mines. Mines can be injected with AddMine.
// The configured mine count is zero, so relocation treats it as unsaturated.
func NewEmptyField(height, width int) (*Field, error) {
	return newField(height, width, 0)
}

// newField validates dimensions and allocates the cell array.
func newField(height, width, mines int) (*Field, error) {
	if height <= 0 || width <= 0 {
		return nil, fmt.Errorf("%w: board size %dx%d", ErrInvalidConfiguration, height, width)
	}
	if mines < 0 {
		return nil, fmt.Errorf("%w: negative mine count %d", ErrInvalidConfiguration, mines)
	}

	if mines > height*width {
		mines = height * width
	}

	cells := make([][]cell, height)
	for r := range cells {
		cells[r] = make([]cell, width)
	}

	return &Field{
		height:    height,
		width:     width,
		mineCount: mines,
		cells:     cells,
	}, nil
}

// Height returns the number of rows.
func (f *Field) Height() int {
	return f.height
}

// Width returns the number of columns.
func (f *Field) Width() int {
	return f.width
}

// MineCount returns the configured mine count after clamping.
// It can differ from CountMines after a relocation on a saturated board
// or after mines were injected into an empty field.
func (f *Field) MineCount() int {
	return f.mineCount
}

// Saturated reports whether the configured mine count covers every cell.
func (f *Field) Saturated() bool {
	return f.mineCount >= f.height*f.width
}

// InBounds returns true if the coordinate is on the board.
func (f *Field) InBounds(c Coordinate) bool {
	return InBounds(c.Row, c.Col, f.height, f.width)
}

// Neighbors returns the in-bounds coordinates around c, excluding c itself.
func (f *Field) Neighbors(c Coordinate) []Coordinate {
	out := make([]Coordinate, 0, len(neighborOffsets))
	for _, d := range neighborOffsets {
		n := At(c.Row+d[0], c.Col+d[1])
		if f.InBounds(n) {
			out = append(out, n)
		}
	}
	return out
}

// HasMine reports whether c holds a mine.
func (f *Field) HasMine(c Coordinate) bool {
	return f.InBounds(c) && f.cells[c.Row][c.Col].mine
}

// IsOpened reports whether c has been opened.
func (f *Field) IsOpened(c Coordinate) bool {
	return f.Status(c) == Opened
}

// IsFlagged reports whether c carries a flag.
func (f *Field) IsFlagged(c Coordinate) bool {
	return f.Status(c) == Flagged
}

// Status returns the cell status. Out-of-bounds coordinates read as Hidden.
func (f *Field) Status(c Coordinate) CellStatus {
	if !f.InBounds(c) {
		return Hidden
	}
	return f.cells[c.Row][c.Col].status
}

// AddMine places a mine at c. Returns false if c is already mined or off the board.
func (f *Field) AddMine(c Coordinate) bool {
	if !f.InBounds(c) || f.cells[c.Row][c.Col].mine {
		return false
	}
	f.cells[c.Row][c.Col].mine = true
	return true
}

// RemoveMine clears the mine at c. Returns false if there was none.
func (f *Field) RemoveMine(c Coordinate) bool {
	if !f.HasMine(c) {
		return false
	}
	f.cells[c.Row][c.Col].mine = false
	return true
}

// SetOpened marks c as opened, dropping any flag.
// Returns false if c was already opened or is off the board.
func (f *Field) SetOpened(c Coordinate) bool {
	if !f.InBounds(c) || f.cells[c.Row][c.Col].status == Opened {
		return false
	}
	f.cells[c.Row][c.Col].status = Opened
	return true
}

// ToggleFlag flags a hidden cell or unflags a flagged one.
// Opened cells cannot carry a flag, so the call is a no-op for them.
// Returns true if the status changed.
func (f *Field) ToggleFlag(c Coordinate) bool {
	if !f.InBounds(c) {
		return false
	}
	cl := &f.cells[c.Row][c.Col]
	switch cl.status {
	case Hidden:
		cl.status = Flagged
	case Flagged:
		cl.status = Hidden
	default:
		return false
	}
	return true
}

// CountMinedNeighbors returns how many of the up-to-8 cells around c are mined.
// The cell itself is never counted.
func (f *Field) CountMinedNeighbors(c Coordinate) int {
	count := 0
	for _, d := range neighborOffsets {
		if f.HasMine(At(c.Row+d[0], c.Col+d[1])) {
			count++
		}
	}
	return count
}

// CountMines returns the number of mined cells currently on the board.
func (f *Field) CountMines() int {
	return f.count(func(cl cell) bool { return cl.mine })
}

// OpenedCount returns the number of opened cells.
func (f *Field) OpenedCount() int {
	return f.count(func(cl cell) bool { return cl.status == Opened })
}

// FlagCount returns the number of flagged cells.
func (f *Field) FlagCount() int {
	return f.count(func(cl cell) bool { return cl.status == Flagged })
}

func (f *Field) count(pred func(cell) bool) int {
	n := 0
	for r := range f.cells {
		for _, cl := range f.cells[r] {
			if pred(cl) {
				n++
			}
		}
	}
	return n
}

// SetRevealAll switches the display to show every cell regardless of status.
func (f *Field) SetRevealAll(on bool) {
	f.revealAll = on
}

// RevealAll reports whether reveal-all mode is active.
func (f *Field) RevealAll() bool {
	return f.revealAll
}
