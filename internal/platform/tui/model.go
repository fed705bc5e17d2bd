package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-minesweeper/internal/config"
	"github.com/vovakirdan/tui-minesweeper/internal/core"
	"github.com/vovakirdan/tui-minesweeper/internal/logging"
	"github.com/vovakirdan/tui-minesweeper/internal/registry"
	"github.com/vovakirdan/tui-minesweeper/internal/storage"
)

// ScreenshotDir is where Ctrl+S dumps the board as plain text.
const ScreenshotDir = "~/.minesweeper/screenshots"

// resizer is implemented by games that keep their board across terminal resizes.
type resizer interface {
	Resize(width, height int)
}

// Model runs one game: keys fill an input frame, each tick steps the game
// with it, and finished games are written to the store.
type Model struct {
	game   registry.Game
	store  *storage.Store
	logger *log.Logger
	config core.RuntimeConfig

	screen *core.Screen
	keys   *KeyMapper
	input  core.InputFrame
	state  core.GameState

	saved map[string]bool // Session IDs already recorded
	quit  bool
	back  bool
}

// NewModel prepares a game for Run. A nil store skips history and a nil
// logger discards log output.
func NewModel(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = logging.Discard()
	}
	return Model{
		game:   game,
		store:  store,
		logger: logger,
		config: cfg,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		keys:   NewKeyMapper(),
		input:  core.NewInputFrame(),
		saved:  map[string]bool{},
	}
}

// Init deals the first board and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("game started", "game", m.game.ID(), "seed", m.config.Seed)
	return tickCmd(m.config.TickRate)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickMsg:
		m.state = m.game.Step(m.input).State
		m.input.Clear()
		if m.state.GameOver {
			m.record()
		}
		return m, tickCmd(m.config.TickRate)

	case tea.WindowSizeMsg:
		m.config.ScreenW, m.config.ScreenH = msg.Width, msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		if r, ok := m.game.(resizer); ok {
			r.Resize(msg.Width, msg.Height)
		}

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlS {
			m.screenshot()
			return m, nil
		}
		if m.keys.MapKeyToFrame(msg, &m.input) {
			m.quit = true
			return m, tea.Quit
		}
		if m.input.Has(core.ActionBack) {
			m.back = true
			return m, tea.Quit
		}
	}
	return m, nil
}

// record stores the finished game once per session.
func (m *Model) record() {
	reporter, ok := m.game.(registry.Reporter)
	if !ok {
		return
	}
	res, ok := reporter.Result()
	if !ok || m.saved[res.SessionID] {
		return
	}
	m.saved[res.SessionID] = true

	m.logger.Info("game finished", "game", res.GameID, "session", res.SessionID,
		"won", res.Won, "moves", res.Moves, "duration", res.Duration)

	if m.store == nil {
		return
	}
	if _, err := m.store.SaveResult(res); err != nil {
		m.logger.Warn("could not save result", "session", res.SessionID, "error", err)
	}
}

func (m *Model) screenshot() {
	m.game.Render(m.screen)
	path, err := writeScreenshot(ScreenshotDir, m.game.ID(), m.screen, time.Now())
	if err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.logger.Debug("screenshot saved", "path", path)
}

// writeScreenshot saves the plain text of s as <dir>/<id>_<timestamp>.txt.
func writeScreenshot(dir, id string, s *core.Screen, at time.Time) (string, error) {
	dir, err := config.ExpandPath(dir)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", id, at.Format("20060102_150405")))
	return path, os.WriteFile(path, []byte(s.String()+"\n"), 0o600)
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quit || m.back {
		return ""
	}
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// WentBack reports whether the player left with the back key instead of quitting.
func (m Model) WentBack() bool {
	return m.back
}

// Run plays game in the alternate screen until the player leaves.
// back is true when they asked for the menu.
func Run(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) (back bool, err error) {
	final, err := tea.NewProgram(NewModel(game, store, logger, cfg), tea.WithAltScreen()).Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(Model)
	return ok && m.WentBack(), nil
}
