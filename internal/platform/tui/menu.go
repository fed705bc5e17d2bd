package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-minesweeper/internal/core"
	"github.com/vovakirdan/tui-minesweeper/internal/registry"
)

var (
	menuTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("226"))
	menuActiveStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("117"))
	menuHintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// MenuItem is one line of the board picker.
type MenuItem struct {
	GameID string
	Title  string
	Custom bool // Opens the board editor instead of a registered variant
}

// MenuResult is what the player picked.
type MenuResult struct {
	GameID     string
	Custom     bool
	Config     core.RuntimeConfig
	WantsStats bool
	Quit       bool
}

// MenuModel lists the registered boards plus a custom board entry.
type MenuModel struct {
	items     []MenuItem
	cursor    int
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	done      bool
	res       MenuResult
}

// NewMenuModel builds the picker from the registry.
func NewMenuModel(cfg core.RuntimeConfig) MenuModel {
	var items []MenuItem
	for _, g := range registry.List() {
		items = append(items, MenuItem{GameID: g.ID, Title: g.Title})
	}
	items = append(items, MenuItem{Title: "Custom board...", Custom: true})

	return MenuModel{items: items, config: cfg, keyMapper: NewKeyMapper()}
}

// Init implements tea.Model.
func (m MenuModel) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.config.ScreenW, m.config.ScreenH = msg.Width, msg.Height

	case tea.KeyMsg:
		switch m.keyMapper.MapKeyToMenuAction(msg) {
		case MenuActionUp:
			m.cursor = max(m.cursor-1, 0)
		case MenuActionDown:
			m.cursor = min(m.cursor+1, len(m.items)-1)
		case MenuActionSelect:
			item := m.items[m.cursor]
			return m.finish(MenuResult{GameID: item.GameID, Custom: item.Custom})
		case MenuActionStats:
			return m.finish(MenuResult{WantsStats: true})
		case MenuActionQuit:
			return m.finish(MenuResult{Quit: true})
		}
	}
	return m, nil
}

func (m MenuModel) finish(res MenuResult) (tea.Model, tea.Cmd) {
	m.done = true
	m.res = res
	return m, tea.Quit
}

// View implements tea.Model.
func (m MenuModel) View() string {
	if m.done {
		return ""
	}
	w := m.config.ScreenW

	lines := []string{
		"",
		menuTitleStyle.Render(centerText("* M I N E S W E E P E R *", w)),
		"",
		centerText("Pick a board", w),
		"",
	}
	for i, item := range m.items {
		if i == m.cursor {
			lines = append(lines, menuActiveStyle.Render(centerText("> "+item.Title+" <", w)))
			continue
		}
		lines = append(lines, centerText(item.Title, w))
	}
	lines = append(lines, "",
		menuHintStyle.Render(centerText("↑/↓ move   Enter play   Tab statistics   Q quit", w)))

	return strings.Join(lines, "\n") + "\n"
}

// Config returns the runtime config, including the latest terminal size.
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// result returns the pick. A menu closed without a pick counts as quitting.
func (m MenuModel) result() MenuResult {
	res := m.res
	if !m.done {
		res = MenuResult{Quit: true}
	}
	res.Config = m.config
	return res
}

// centerText left-pads text to center it in width columns.
func centerText(text string, width int) string {
	n := lipgloss.Width(text)
	if n >= width {
		return text
	}
	return strings.Repeat(" ", (width-n)/2) + text
}

// RunMenu shows the board picker.
func RunMenu(cfg core.RuntimeConfig) (MenuResult, error) {
	final, err := tea.NewProgram(NewMenuModel(cfg), tea.WithAltScreen()).Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}
	m, ok := final.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}
	return m.result(), nil
}
