package core

// Color represents a foreground color for a screen cell.
// The platform maps each value to an ANSI 256-color code.
type Color uint8

// Predefined colors for board elements.
const (
	ColorDefault    Color = iota
	ColorBlue             // 1
	ColorGreen            // 2
	ColorRed              // 3
	ColorDarkBlue         // 4
	ColorDarkRed          // 5
	ColorDarkOrange       // 6
	ColorBrown            // 7
	ColorBlack            // 8
	ColorGray             // hidden cells
	ColorYellow           // flags
	ColorWheat            // mines after a win
	ColorViolet           // mines after a loss
	ColorBrightRed        // the mine that lost the game
	ColorLightBlue        // HUD accents
)

// digitColors holds the neighbor-count colors for 1 through 8.
var digitColors = [8]Color{
	ColorBlue, ColorGreen, ColorRed, ColorDarkBlue,
	ColorDarkRed, ColorDarkOrange, ColorBrown, ColorBlack,
}

// DigitColor returns the color used for a neighbor count of n.
// Counts outside 1..8 use the default color.
func DigitColor(n int) Color {
	if n < 1 || n > len(digitColors) {
		return ColorDefault
	}
	return digitColors[n-1]
}
