package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-minesweeper/internal/config"
	"github.com/vovakirdan/tui-minesweeper/internal/core"
)

// Relocation policy names offered by the board editor.
var relocationNames = []string{"literal", "clear"}

// Rows of the board editor.
const (
	boardRowHeight = iota
	boardRowWidth
	boardRowMines
	boardRowRelocation
	boardRowStart
	boardRowCount
)

// BoardSelection holds a custom board picked in the editor.
type BoardSelection struct {
	Board      config.BoardConfig
	Relocation string
}

// BoardModel lets users pick the height, width, mine count, and relocation
// policy of a custom board.
type BoardModel struct {
	cursor     int
	board      config.BoardConfig
	relocation int // Index into relocationNames
	width      int
	height     int
	keyMapper  *KeyMapper
	choosing   bool
	quitting   bool
	back       bool
}

// NewBoardModel creates an editor starting from the given board.
func NewBoardModel(start config.BoardConfig, relocation string, width, height int) BoardModel {
	m := BoardModel{
		board:     config.Sanitize(start),
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		choosing:  true,
	}
	for i, name := range relocationNames {
		if name == relocation {
			m.relocation = i
		}
	}
	return m
}

// Init initializes the model.
func (m BoardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m BoardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m BoardModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < boardRowCount-1 {
			m.cursor++
		}
	case MenuActionLeft:
		m.adjust(-1)
	case MenuActionRight:
		m.adjust(1)
	case MenuActionSelect:
		if m.cursor == boardRowRelocation {
			m.adjust(1)
			return m, nil
		}
		m.choosing = false
		return m, tea.Quit
	}

	return m, nil
}

// adjust changes the value on the current row and re-sanitizes the board,
// so the mine count never exceeds the cell count.
func (m *BoardModel) adjust(delta int) {
	switch m.cursor {
	case boardRowHeight:
		m.board.Height += delta
	case boardRowWidth:
		m.board.Width += delta
	case boardRowMines:
		m.board.Mines += delta
	case boardRowRelocation:
		n := len(relocationNames)
		m.relocation = (m.relocation + delta + n) % n
	}
	m.board = config.Sanitize(m.board)
}

// View renders the editor.
func (m BoardModel) View() string {
	if m.quitting || m.back {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("C U S T O M   B O A R D", m.width))
	b.WriteString("\n\n")

	rows := []string{
		fmt.Sprintf("Height:     < %2d >", m.board.Height),
		fmt.Sprintf("Width:      < %2d >", m.board.Width),
		fmt.Sprintf("Mines:      < %4d >", m.board.Mines),
		fmt.Sprintf("Relocation: < %s >", relocationNames[m.relocation]),
		"Start",
	}

	for i, row := range rows {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(cursor+row, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(fmt.Sprintf("Sides %d-%d, mines up to height x width", config.MinSide, config.MaxSide), m.width))
	b.WriteString("\n")
	b.WriteString(centerText("Left/Right: Change  |  Enter: Start  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

// Selected returns the selection, or nil if still choosing.
func (m BoardModel) Selected() *BoardSelection {
	if m.choosing {
		return nil
	}
	return &BoardSelection{
		Board:      m.board,
		Relocation: relocationNames[m.relocation],
	}
}

// IsQuitting returns true if user wants to quit.
func (m BoardModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m BoardModel) WantsBack() bool {
	return m.back
}

// RunBoardSelector runs the custom board editor and returns the selection,
// or nil when the user backed out.
func RunBoardSelector(start config.BoardConfig, relocation string, cfg core.RuntimeConfig) (*BoardSelection, core.RuntimeConfig, error) {
	model := NewBoardModel(start, relocation, cfg.ScreenW, cfg.ScreenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, cfg, err
	}

	m, ok := finalModel.(BoardModel)
	if !ok || m.IsQuitting() || m.WantsBack() {
		return nil, cfg, nil
	}

	cfg.ScreenW = m.width
	cfg.ScreenH = m.height
	return m.Selected(), cfg, nil
}
