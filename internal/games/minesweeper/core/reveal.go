package core

// OpenResult reports what Open did.
type OpenResult uint8

const (
	// AlreadyOpenOrMined means nothing changed: the cell was opened before,
	// holds a mine, or is off the board.
	AlreadyOpenOrMined OpenResult = iota
	// OpenedCells means at least the target cell was opened.
	OpenedCells
)

// Open uncovers c. If c has no mined neighbors, the surrounding cells are opened
// as well, spreading through the connected zero region; the first ring of
// numbered cells is opened but does not spread further. Flagged cells reached
// by the cascade are opened and lose their flag.
func (f *Field) Open(c Coordinate) OpenResult {
	if !f.openable(c) {
		return AlreadyOpenOrMined
	}

	stack := []Coordinate{c}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !f.openable(cur) {
			continue
		}
		f.SetOpened(cur)

		if f.CountMinedNeighbors(cur) != 0 {
			continue
		}
		for _, d := range neighborOffsets {
			n := At(cur.Row+d[0], cur.Col+d[1])
			if f.openable(n) {
				stack = append(stack, n)
			}
		}
	}

	return OpenedCells
}

func (f *Field) openable(c Coordinate) bool {
	if !f.InBounds(c) {
		return false
	}
	cl := f.cells[c.Row][c.Col]
	return !cl.mine && cl.status != Opened
}

// IsDone reports whether every mine-free cell is opened.
// Opened mines do not count toward completion.
func (f *Field) IsDone() bool {
	for r := range f.cells {
		for _, cl := range f.cells[r] {
			if !cl.mine && cl.status != Opened {
				return false
			}
		}
	}
	return true
}
