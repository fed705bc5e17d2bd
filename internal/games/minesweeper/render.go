package minesweeper

import (
	"fmt"

	platformcore "github.com/vovakirdan/tui-minesweeper/internal/core"
	"github.com/vovakirdan/tui-minesweeper/internal/games/minesweeper/core"
)

const helpLine = "arrows/hjkl move  space reveal  f flag  r new game  p pause  q quit"

// Render draws the game to the screen.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()
	g.renderHUD(dst)

	if g.session == nil {
		g.renderMessage(dst, "Cannot start game", fmt.Sprint(g.err))
		return
	}
	if g.tooSmall {
		w, h := g.boardSize()
		g.renderMessage(dst, "Window too small", fmt.Sprintf("Need %dx%d, resize or pick a smaller board", w, h+hudHeight+footer))
		return
	}

	ox, oy := g.boardOrigin(dst)
	g.renderBoard(dst, ox, oy)

	_, bh := g.boardSize()
	dst.DrawTextCentered(oy+bh, g.statusLine())
	dst.DrawTextCentered(oy+bh+1, helpLine)
}

// boardOrigin returns the top-left corner of the framed board.
func (g *Game) boardOrigin(dst *platformcore.Screen) (x, y int) {
	bw, _ := g.boardSize()
	return (dst.Width() - bw) / 2, hudHeight
}

// cellPos returns the screen position of a cell's glyph.
func cellPos(ox, oy int, c core.Coordinate) (x, y int) {
	return ox + borderWidth + 1 + c.Col*cellWidth, oy + borderWidth + c.Row
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *platformcore.Screen) {
	hud := " " + g.title
	if g.session != nil {
		f := g.session.Field()
		hud = fmt.Sprintf(" %s | %dx%d | Mines: %d | Flags: %d | Time: %ds",
			g.title, f.Height(), f.Width(), f.MineCount(), f.FlagCount(), int(g.elapsed().Seconds()))
	}
	dst.DrawTextWithColor(0, 0, hud, platformcore.ColorLightBlue)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderBoard draws the frame, every cell, and the cursor.
func (g *Game) renderBoard(dst *platformcore.Screen, ox, oy int) {
	bw, bh := g.boardSize()
	dst.DrawBox(platformcore.NewRect(ox, oy, bw, bh))

	for r := 0; r < g.board.Height; r++ {
		for c := 0; c < g.board.Width; c++ {
			at := core.At(r, c)
			x, y := cellPos(ox, oy, at)
			glyph, color := g.cellLook(at)
			dst.SetWithColor(x, y, glyph, color)
		}
	}

	if g.session.IsRunning() {
		x, y := cellPos(ox, oy, g.cursor)
		dst.SetWithColor(x-1, y, '[', platformcore.ColorLightBlue)
		dst.SetWithColor(x+1, y, ']', platformcore.ColorLightBlue)
	}
}

// cellLook maps the engine glyph of a cell to a rune and color.
// After a win mines are drawn as a harmless 'M'; after a loss the mine that
// ended the game stands out from the others.
func (g *Game) cellLook(at core.Coordinate) (rune, platformcore.Color) {
	glyph := g.session.Glyph(at.Row, at.Col)

	switch glyph {
	case core.GlyphHidden:
		return '.', platformcore.ColorGray
	case core.GlyphFlag:
		return 'F', platformcore.ColorYellow
	case core.GlyphEmpty:
		return ' ', platformcore.ColorDefault
	case core.GlyphMine:
		if g.session.IsWon() {
			return 'M', platformcore.ColorWheat
		}
		if loss, ok := g.session.LastLoss(); ok && loss == at {
			return 'X', platformcore.ColorBrightRed
		}
		return 'X', platformcore.ColorViolet
	}

	d := rune(glyph[0])
	return d, platformcore.DigitColor(int(d - '0'))
}

// statusLine describes the game state below the board.
func (g *Game) statusLine() string {
	switch {
	case g.session.IsWon():
		return fmt.Sprintf("You win! %s  Press R for a new game", g.ratioText())
	case g.session.IsLost():
		loss, _ := g.session.LastLoss()
		return fmt.Sprintf("Boom! Mine at %s. %s  Press R for a new game", loss, g.ratioText())
	case g.paused:
		return "Paused - press P to continue"
	case g.lastMove != core.MoveIgnored:
		return fmt.Sprintf("Moves: %d  Last: %s", g.session.Moves(), g.lastMove)
	default:
		return fmt.Sprintf("Moves: %d", g.session.Moves())
	}
}

// ratioText formats the cumulative win ratio with two decimals.
func (g *Game) ratioText() string {
	ratio, ok := g.stats.WinRatio()
	if !ok {
		return "Win/Loss: -"
	}
	return fmt.Sprintf("Win/Loss: %.2f", ratio)
}

// renderMessage draws a centered two-line message box.
func (g *Game) renderMessage(dst *platformcore.Screen, line1, line2 string) {
	w := max(len(line1), len(line2)) + 4
	box := platformcore.CenteredRect(dst.Width(), dst.Height(), w, 5)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}
