package core

import "strings"

// Cell is one character position and its foreground color.
type Cell struct {
	Rune  rune
	Color Color
}

var blankCell = Cell{Rune: ' '}

// Screen is a character buffer games draw into. The host turns it into
// styled terminal output; String drops the colors for plain-text dumps.
type Screen struct {
	w, h  int
	cells []Cell // Row-major
}

// NewScreen returns a blank w x h buffer.
func NewScreen(w, h int) *Screen {
	s := &Screen{w: max(w, 0), h: max(h, 0)}
	s.cells = make([]Cell, s.w*s.h)
	s.Clear()
	return s
}

func (s *Screen) Width() int  { return s.w }
func (s *Screen) Height() int { return s.h }

// Bounds returns the whole buffer as a rectangle.
func (s *Screen) Bounds() Rect {
	return NewRect(0, 0, s.w, s.h)
}

// Resize changes the buffer size and keeps the overlapping top-left area.
func (s *Screen) Resize(w, h int) {
	if w == s.w && h == s.h {
		return
	}
	old := *s
	*s = *NewScreen(w, h)
	for y := range min(old.h, s.h) {
		copy(s.cells[y*s.w:y*s.w+min(old.w, s.w)], old.cells[y*old.w:])
	}
}

// Clear blanks every cell.
func (s *Screen) Clear() {
	for i := range s.cells {
		s.cells[i] = blankCell
	}
}

// Set writes r in the default color. Writes outside the buffer are dropped.
func (s *Screen) Set(x, y int, r rune) {
	s.SetWithColor(x, y, r, ColorDefault)
}

// SetWithColor writes r in color c.
func (s *Screen) SetWithColor(x, y int, r rune, c Color) {
	if s.Bounds().Contains(x, y) {
		s.cells[y*s.w+x] = Cell{Rune: r, Color: c}
	}
}

// Get returns the rune at (x, y), or a space outside the buffer.
func (s *Screen) Get(x, y int) rune {
	return s.GetCell(x, y).Rune
}

// GetCell returns the cell at (x, y), or a blank cell outside the buffer.
func (s *Screen) GetCell(x, y int) Cell {
	if !s.Bounds().Contains(x, y) {
		return blankCell
	}
	return s.cells[y*s.w+x]
}

// DrawText writes text from (x, y) rightwards, clipped at the edge.
func (s *Screen) DrawText(x, y int, text string) {
	s.DrawTextWithColor(x, y, text, ColorDefault)
}

// DrawTextWithColor writes text in color c.
func (s *Screen) DrawTextWithColor(x, y int, text string, c Color) {
	for _, r := range text {
		s.SetWithColor(x, y, r, c)
		x++
	}
}

// DrawTextCentered writes text centered on row y.
func (s *Screen) DrawTextCentered(y int, text string) {
	s.DrawText((s.w-len([]rune(text)))/2, y, text)
}

// DrawRect fills r with fill.
func (s *Screen) DrawRect(r Rect, fill rune) {
	for y := r.Y; y < r.Bottom(); y++ {
		s.DrawHLine(r.X, y, r.W, fill)
	}
}

// DrawBox outlines r with box-drawing characters.
func (s *Screen) DrawBox(r Rect) {
	right, bottom := r.Right()-1, r.Bottom()-1

	s.DrawHLine(r.X+1, r.Y, r.W-2, '─')
	s.DrawHLine(r.X+1, bottom, r.W-2, '─')
	s.DrawVLine(r.X, r.Y+1, r.H-2, '│')
	s.DrawVLine(right, r.Y+1, r.H-2, '│')

	s.Set(r.X, r.Y, '┌')
	s.Set(right, r.Y, '┐')
	s.Set(r.X, bottom, '└')
	s.Set(right, bottom, '┘')
}

// DrawHLine draws n copies of r rightwards from (x, y).
func (s *Screen) DrawHLine(x, y, n int, r rune) {
	for i := range max(n, 0) {
		s.Set(x+i, y, r)
	}
}

// DrawVLine draws n copies of r downwards from (x, y).
func (s *Screen) DrawVLine(x, y, n int, r rune) {
	for i := range max(n, 0) {
		s.Set(x, y+i, r)
	}
}

// Row returns row y as plain text; rows outside the buffer are blank.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.h {
		return strings.Repeat(" ", s.w)
	}
	var sb strings.Builder
	for _, c := range s.cells[y*s.w : (y+1)*s.w] {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}

// String returns the buffer as plain text, one line per row.
func (s *Screen) String() string {
	rows := make([]string, s.h)
	for y := range rows {
		rows[y] = s.Row(y)
	}
	return strings.Join(rows, "\n")
}
