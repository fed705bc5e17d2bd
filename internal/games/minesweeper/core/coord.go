// Package core provides the minefield engine for the Minesweeper game.
// It is UI-agnostic and deterministic for a given random source: the platform
// layer turns key presses into clicks and draws the glyphs this package returns.
package core

import "fmt"

// Coordinate identifies a single cell by row and column.
// Row increases downward, Col increases to the right.
type Coordinate struct {
	Row int
	Col int
}

// At is a convenience constructor for Coordinate.
func At(row, col int) Coordinate {
	return Coordinate{Row: row, Col: col}
}

// String returns a string representation of the coordinate.
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// InBounds reports whether (row, col) lies on a height x width board.
func InBounds(row, col, height, width int) bool {
	return row >= 0 && row < height && col >= 0 && col < width
}

// neighborOffsets lists the 8 surrounding offsets in row-major order.
var neighborOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}
