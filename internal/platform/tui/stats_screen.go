package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-minesweeper/internal/registry"
	"github.com/vovakirdan/tui-minesweeper/internal/storage"
)

const recentLimit = 100

var (
	statsTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("117"))
	statsTabStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Padding(0, 1)
	statsActiveTab  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("16")).
			Background(lipgloss.Color("117")).Padding(0, 1)
	statsCardStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).Width(12).Align(lipgloss.Center)
	statsNoteStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true).Padding(1, 2)
)

type statsKeys struct {
	Up   key.Binding
	Down key.Binding
	Next key.Binding
	Prev key.Binding
	Back key.Binding
	Quit key.Binding
}

func (k statsKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Next, k.Prev, k.Back, k.Quit}
}

func (k statsKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Next, k.Prev}, {k.Back, k.Quit}}
}

func newStatsKeys() statsKeys {
	return statsKeys{
		Up:   key.NewBinding(key.WithKeys("up", "k", "w"), key.WithHelp("↑", "older")),
		Down: key.NewBinding(key.WithKeys("down", "j", "s"), key.WithHelp("↓", "newer")),
		Next: key.NewBinding(key.WithKeys("tab", "right", "l", "d"), key.WithHelp("tab/→", "next board")),
		Prev: key.NewBinding(key.WithKeys("shift+tab", "left", "h", "a"), key.WithHelp("←", "prev board")),
		Back: key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "menu")),
		Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// StatsModel shows stored results. Tab 0 covers every board, the rest one
// registered variant each.
type StatsModel struct {
	tabs  []registry.GameInfo
	tab   int
	store *storage.Store

	summary *storage.Summary
	recent  []storage.ResultEntry
	loadErr error

	table table.Model
	help  help.Model
	keys  statsKeys

	width, height int
	quitting      bool
	back          bool
}

// NewStatsModel builds the screen and loads the overall tab. A nil store shows
// an empty history.
func NewStatsModel(store *storage.Store, width, height int) StatsModel {
	m := StatsModel{
		tabs:   append([]registry.GameInfo{{Title: "All boards"}}, registry.List()...),
		store:  store,
		help:   help.New(),
		keys:   newStatsKeys(),
		width:  width,
		height: height,
	}
	m.table = table.New(
		table.WithColumns([]table.Column{
			{Title: "Result", Width: 6},
			{Title: "Board", Width: 9},
			{Title: "Moves", Width: 5},
			{Title: "Time", Width: 6},
			{Title: "Played", Width: 12},
		}),
		table.WithFocused(true),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.Bold(true).BorderStyle(lipgloss.NormalBorder()).BorderBottom(true)
	styles.Selected = styles.Selected.Foreground(lipgloss.Color("223")).Background(lipgloss.Color("18"))
	m.table.SetStyles(styles)
	m.fitTable()
	m.load()
	return m
}

// fitTable leaves room for the title, tabs, cards, and help line.
func (m *StatsModel) fitTable() {
	m.table.SetHeight(max(m.height-14, 3))
	m.help.Width = m.width
}

// load refreshes the summary and recent games of the current tab.
func (m *StatsModel) load() {
	m.summary, m.recent, m.loadErr = nil, nil, nil
	if m.store != nil {
		id := m.tabs[m.tab].ID
		if m.summary, m.loadErr = m.store.Summary(id); m.loadErr == nil {
			m.recent, m.loadErr = m.store.RecentResults(id, recentLimit)
		}
	}

	rows := make([]table.Row, 0, len(m.recent))
	for _, r := range m.recent {
		outcome := "Loss"
		if r.Won {
			outcome = "Win"
		}
		rows = append(rows, table.Row{
			outcome,
			fmt.Sprintf("%dx%d/%d", r.Height, r.Width, r.Mines),
			fmt.Sprint(r.Moves),
			formatDuration(r.Duration),
			r.CreatedAt.Format("Jan 02 15:04"),
		})
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func (m *StatsModel) switchTab(delta int) {
	n := len(m.tabs)
	m.tab = (m.tab + delta + n) % n
	m.load()
}

// Init implements tea.Model.
func (m StatsModel) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m StatsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.fitTable()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.back = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			m.switchTab(1)
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			m.switchTab(-1)
			return m, nil
		case key.Matches(msg, m.keys.Up):
			m.table.MoveUp(1)
			return m, nil
		case key.Matches(msg, m.keys.Down):
			m.table.MoveDown(1)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m StatsModel) View() string {
	if m.quitting || m.back {
		return ""
	}

	sections := []string{
		statsTitleStyle.Render("Statistics - " + m.tabs[m.tab].Title),
		m.tabBar(),
		m.cards(),
		m.history(),
		m.help.View(m.keys),
	}
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center, sections...))
}

// tabBar lists the boards, or only the current one when they do not fit.
func (m StatsModel) tabBar() string {
	parts := make([]string, len(m.tabs))
	for i, t := range m.tabs {
		style := statsTabStyle
		if i == m.tab {
			style = statsActiveTab
		}
		parts[i] = style.Render(shortTitle(t.Title, 12))
	}
	bar := lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	if lipgloss.Width(bar) > m.width {
		bar = statsActiveTab.Render("< " + m.tabs[m.tab].Title + " >")
	}
	return "\n" + bar + "\n"
}

// cards renders the totals of the current tab.
func (m StatsModel) cards() string {
	if m.summary == nil || m.summary.Total == 0 {
		return ""
	}
	ratio := "-"
	if r, ok := m.summary.WinRatio(); ok {
		ratio = fmt.Sprintf("%.2f", r)
	}
	best := "-"
	if m.summary.BestTime > 0 {
		best = formatDuration(m.summary.BestTime)
	}

	card := func(label, value string) string {
		return statsCardStyle.Render(label + "\n" + lipgloss.NewStyle().Bold(true).Render(value))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		card("Games", fmt.Sprint(m.summary.Total)),
		card("Wins", fmt.Sprint(m.summary.Wins)),
		card("Win/Loss", ratio),
		card("Best win", best),
	)
}

func (m StatsModel) history() string {
	switch {
	case m.loadErr != nil:
		return statsNoteStyle.Render("Could not load history: " + m.loadErr.Error())
	case len(m.recent) == 0:
		return statsNoteStyle.Render("No games recorded yet.")
	}
	return "\n" + m.table.View() + "\n"
}

// WentBack reports whether the player asked for the menu.
func (m StatsModel) WentBack() bool { return m.back }

// formatDuration renders a duration as m:ss.
func formatDuration(d time.Duration) string {
	secs := int(d.Round(time.Second) / time.Second)
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

// shortTitle strips the "Minesweeper (...)" wrapper from a board title and
// cuts it to n bytes.
func shortTitle(title string, n int) string {
	switch {
	case title == "Minesweeper":
		title = "Default"
	case strings.HasPrefix(title, "Minesweeper ("):
		title = strings.TrimSuffix(strings.TrimPrefix(title, "Minesweeper ("), ")")
	}
	if len(title) > n {
		title = title[:n-1] + "."
	}
	return title
}

// RunStats shows the statistics screen. back is true when the player returns
// to the menu instead of quitting.
func RunStats(store *storage.Store, width, height int) (back bool, err error) {
	final, err := tea.NewProgram(NewStatsModel(store, width, height), tea.WithAltScreen()).Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(StatsModel)
	return ok && m.WentBack(), nil
}
