package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-minesweeper/internal/core"
)

// colorStyles maps core.Color to lipgloss styles (ANSI 256-color codes).
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:    lipgloss.NewStyle(),
	core.ColorBlue:       lipgloss.NewStyle().Foreground(lipgloss.Color("21")),
	core.ColorGreen:      lipgloss.NewStyle().Foreground(lipgloss.Color("28")),
	core.ColorRed:        lipgloss.NewStyle().Foreground(lipgloss.Color("160")),
	core.ColorDarkBlue:   lipgloss.NewStyle().Foreground(lipgloss.Color("18")),
	core.ColorDarkRed:    lipgloss.NewStyle().Foreground(lipgloss.Color("88")),
	core.ColorDarkOrange: lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorBrown:      lipgloss.NewStyle().Foreground(lipgloss.Color("94")),
	core.ColorBlack:      lipgloss.NewStyle().Foreground(lipgloss.Color("16")).Background(lipgloss.Color("250")),
	core.ColorGray:       lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorYellow:     lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
	core.ColorWheat:      lipgloss.NewStyle().Foreground(lipgloss.Color("223")),
	core.ColorViolet:     lipgloss.NewStyle().Foreground(lipgloss.Color("162")),
	core.ColorBrightRed:  lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	core.ColorLightBlue:  lipgloss.NewStyle().Foreground(lipgloss.Color("117")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styleFor(startColor).Render(run.String()))
		}
	}
	return sb.String()
}

// styleFor returns the style for a color, falling back to the default style.
func styleFor(c core.Color) lipgloss.Style {
	if style, ok := colorStyles[c]; ok {
		return style
	}
	return colorStyles[core.ColorDefault]
}
