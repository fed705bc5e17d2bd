// Package minesweeper adapts the minefield engine to the platform's Game interface:
// it owns the cursor, turns actions into clicks, and draws the board with colors.
package minesweeper

import (
	"math/rand"
	"time"

	"github.com/samber/lo"

	"github.com/vovakirdan/tui-minesweeper/internal/config"
	platformcore "github.com/vovakirdan/tui-minesweeper/internal/core"
	"github.com/vovakirdan/tui-minesweeper/internal/games/minesweeper/core"
	"github.com/vovakirdan/tui-minesweeper/internal/registry"
)

// Registered game IDs. The plain ID uses the configured board.
const (
	IDDefault      = "minesweeper"
	IDBeginner     = "minesweeper_beginner"
	IDIntermediate = "minesweeper_intermediate"
	IDExpert       = "minesweeper_expert"
)

// Layout constants in terminal cells.
const (
	hudHeight   = 2 // Title line plus separator
	footer      = 2 // Status line plus help line
	cellWidth   = 2 // Glyph plus spacing
	borderWidth = 1
)

// Package-level configuration set by the CLI before Reset.
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	boardOverride    *config.BoardConfig
	relocation       string
	sharedStats      = core.NewStats()
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty used by the plain "minesweeper" ID.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.DifficultyPreset(preset)
}

// SetBoard overrides the board for every following Reset. A nil board clears the override.
func SetBoard(b *config.BoardConfig) {
	if b == nil {
		boardOverride = nil
		return
	}
	sanitized := config.Sanitize(*b)
	boardOverride = &sanitized
}

// SetRelocation overrides the configured relocation policy ("literal" or "clear").
// An empty name restores the configured one.
func SetRelocation(name string) {
	relocation = name
}

// SetStats replaces the counters shared by every game in this process.
func SetStats(s *core.Stats) {
	sharedStats = s
}

// Stats returns the counters shared by every game in this process.
func Stats() *core.Stats {
	return sharedStats
}

func init() {
	register := func(id, preset, title string) {
		registry.Register(id, func() registry.Game {
			return New(id, preset, title)
		})
	}
	register(IDDefault, "", "Minesweeper")
	register(IDBeginner, config.PresetBeginner, "Minesweeper (Beginner)")
	register(IDIntermediate, config.PresetIntermediate, "Minesweeper (Intermediate)")
	register(IDExpert, config.PresetExpert, "Minesweeper (Expert)")
}

// Game implements registry.Game for one board variant.
type Game struct {
	id     string
	preset string
	title  string

	rng     *rand.Rand
	board   config.BoardConfig
	policy  core.RelocationPolicy
	session *core.Session
	stats   *core.Stats
	cursor  core.Coordinate

	// Screen dimensions
	screenW  int
	screenH  int
	tickRate int

	// Status
	playTicks int // Ticks spent running after the first move
	paused    bool
	tooSmall  bool
	lastMove  core.MoveResult
	err       error
}

// New creates a game for a preset. An empty preset uses the configured board.
func New(id, preset, title string) *Game {
	return &Game{
		id:     id,
		preset: preset,
		title:  title,
	}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.title
}

// Reset starts a new game with a fresh session.
func (g *Game) Reset(cfg platformcore.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = platformcore.DefaultConfig().TickRate
	}
	g.stats = sharedStats
	g.err = nil

	fileCfg, err := config.LoadMinesweeper(configPath)
	if err != nil {
		g.err = err
	}

	name := fileCfg.Relocation
	if relocation != "" {
		name = relocation
	}
	g.policy, _ = core.ParseRelocationPolicy(name)
	g.board = g.resolveBoard(fileCfg)

	g.newSession()
}

// resolveBoard applies the override, the preset, then the difficulty.
func (g *Game) resolveBoard(cfg config.MinesweeperConfig) config.BoardConfig {
	if boardOverride != nil {
		return *boardOverride
	}

	sel := config.Selection{Preset: g.preset, Mines: -1}
	if g.preset == "" {
		sel.Difficulty = difficultyPreset
	}
	board, err := cfg.ResolveBoard(sel)
	if err != nil {
		g.err = err
		return config.Sanitize(config.DefaultMinesweeperConfig().Board)
	}
	return board
}

// newSession discards the current session and starts another on the same board.
func (g *Game) newSession() {
	s, err := core.NewSession(core.SessionOptions{
		Height:     g.board.Height,
		Width:      g.board.Width,
		Mines:      g.board.Mines,
		Relocation: g.policy,
	}, g.rng, g.stats)
	if err != nil {
		// Boards are sanitized, so this only happens on a programming error.
		g.err = err
		return
	}

	g.session = s
	g.cursor = core.At(g.board.Height/2, g.board.Width/2)
	g.playTicks = 0
	g.paused = false
	g.lastMove = core.MoveIgnored
	g.tooSmall = !g.fits()
}

// fits reports whether the board and HUD fit on screen.
func (g *Game) fits() bool {
	w, h := g.boardSize()
	return platformcore.NewRect(0, 0, g.screenW, g.screenH).Fits(w, h+hudHeight+footer)
}

// Resize records a new terminal size and keeps the board in progress.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	g.tooSmall = !g.fits()
}

// boardSize returns the framed board size in terminal cells.
func (g *Game) boardSize() (w, h int) {
	return g.board.Width*cellWidth + 1 + 2*borderWidth, g.board.Height + 2*borderWidth
}

// Step applies one tick of input.
func (g *Game) Step(in platformcore.InputFrame) platformcore.StepResult {
	if g.session == nil {
		return platformcore.StepResult{State: g.State()}
	}

	if in.Has(platformcore.ActionRestart) {
		g.newSession()
		return platformcore.StepResult{State: g.State()}
	}

	if !g.session.IsRunning() || g.tooSmall {
		return platformcore.StepResult{State: g.State()}
	}

	if in.Has(platformcore.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return platformcore.StepResult{State: g.State()}
	}

	g.moveCursor(in)

	switch {
	case in.Has(platformcore.ActionReveal):
		g.lastMove = g.session.LeftClick(g.cursor.Row, g.cursor.Col)
	case in.Has(platformcore.ActionFlag):
		g.lastMove = g.session.RightClick(g.cursor.Row, g.cursor.Col)
	}

	if g.session.Moves() > 0 && g.session.IsRunning() {
		g.playTicks++
	}

	return platformcore.StepResult{State: g.State()}
}

// moveCursor moves the cursor one cell, clamped to the board.
func (g *Game) moveCursor(in platformcore.InputFrame) {
	row, col := g.cursor.Row, g.cursor.Col
	switch {
	case in.Has(platformcore.ActionUp):
		row--
	case in.Has(platformcore.ActionDown):
		row++
	case in.Has(platformcore.ActionLeft):
		col--
	case in.Has(platformcore.ActionRight):
		col++
	}
	g.cursor = core.At(
		lo.Clamp(row, 0, g.board.Height-1),
		lo.Clamp(col, 0, g.board.Width-1),
	)
}

// State returns the current game state.
func (g *Game) State() platformcore.GameState {
	if g.session == nil {
		return platformcore.GameState{GameOver: true}
	}
	return platformcore.GameState{
		Score:    g.safeOpened(),
		GameOver: !g.session.IsRunning(),
		Won:      g.session.IsWon(),
		Paused:   g.paused,
	}
}

// safeOpened counts opened cells without the mine that lost the game.
func (g *Game) safeOpened() int {
	n := g.session.Field().OpenedCount()
	if _, lost := g.session.LastLoss(); lost {
		n--
	}
	return n
}

// Result summarizes the finished game. ok is false while it is running.
func (g *Game) Result() (platformcore.GameResult, bool) {
	if g.session == nil || g.session.IsRunning() {
		return platformcore.GameResult{}, false
	}
	return platformcore.GameResult{
		SessionID: g.session.ID(),
		GameID:    g.id,
		Won:       g.session.IsWon(),
		Height:    g.board.Height,
		Width:     g.board.Width,
		Mines:     g.session.Field().MineCount(),
		Moves:     g.session.Moves(),
		Duration:  g.elapsed(),
	}, true
}

// elapsed converts play ticks to wall time at the configured tick rate.
func (g *Game) elapsed() time.Duration {
	return time.Duration(g.playTicks) * time.Second / time.Duration(g.tickRate)
}

// Session returns the running session.
func (g *Game) Session() *core.Session {
	return g.session
}

// Board returns the board in use.
func (g *Game) Board() config.BoardConfig {
	return g.board
}

// Policy returns the relocation policy in use.
func (g *Game) Policy() core.RelocationPolicy {
	return g.policy
}

// Cursor returns the cell under the cursor.
func (g *Game) Cursor() core.Coordinate {
	return g.cursor
}

// Err returns the last configuration problem, if any. The game still runs
// on defaults when it is set.
func (g *Game) Err() error {
	return g.err
}

var _ registry.Reporter = (*Game)(nil)
