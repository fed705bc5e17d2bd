package core

import (
	"strconv"
	"strings"
)

// Glyphs used by the text view.
const (
	GlyphHidden = "."
	GlyphFlag   = "F"
	GlyphMine   = "X"
	GlyphEmpty  = " "
)

// Render returns the glyph for c. Hidden cells show as "." or "F" until they
// are opened or the field is in reveal-all mode; then mines show as "X" and
// other cells show their neighbor count, blank for zero.
// Off-board coordinates render as the empty string.
func Render(f *Field, c Coordinate) string {
	if !f.InBounds(c) {
		return ""
	}

	if f.RevealAll() || f.IsOpened(c) {
		if f.HasMine(c) {
			return GlyphMine
		}
		n := f.CountMinedNeighbors(c)
		if n == 0 {
			return GlyphEmpty
		}
		return strconv.Itoa(n)
	}

	if f.IsFlagged(c) {
		return GlyphFlag
	}
	return GlyphHidden
}

// RenderBoard renders the whole field row by row, each row followed by a newline.
func RenderBoard(f *Field) string {
	var sb strings.Builder
	sb.Grow(f.height * (f.width + 1))
	for r := 0; r < f.height; r++ {
		for c := 0; c < f.width; c++ {
			sb.WriteString(Render(f, At(r, c)))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
