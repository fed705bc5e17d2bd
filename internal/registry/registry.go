// Package registry maps board IDs to game constructors. Variants register
// in init(), so the CLI and menus can list and build them by ID.
package registry

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/vovakirdan/tui-minesweeper/internal/core"
)

// Game is what the terminal host drives once per tick. Implementations hold
// pure game logic and know nothing about Bubble Tea.
type Game interface {
	ID() string
	Title() string

	// Reset deals a new board, discarding any game in progress.
	Reset(cfg core.RuntimeConfig)

	// Step applies the actions pressed since the previous tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the board and HUD into dst.
	Render(dst *core.Screen)

	State() core.GameState
}

// Reporter is implemented by games that summarize a finished game for the
// results store. ok is false while the game is running.
type Reporter interface {
	Result() (res core.GameResult, ok bool)
}

// GameInfo describes a registered variant.
type GameInfo struct {
	ID    string
	Title string
}

// Factory builds a fresh game.
type Factory func() Game

type entry struct {
	title   string
	factory Factory
}

var (
	mu      sync.RWMutex
	entries = map[string]entry{}
)

// Register adds a variant. Registering an ID twice panics.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, dup := entries[id]; dup {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	entries[id] = entry{title: f().Title(), factory: f}
}

// List returns every registered variant ordered by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	infos := make([]GameInfo, 0, len(entries))
	for id, e := range entries {
		infos = append(infos, GameInfo{ID: id, Title: e.title})
	}
	slices.SortFunc(infos, func(a, b GameInfo) int { return strings.Compare(a.ID, b.ID) })
	return infos
}

// Create builds a new game for id.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return e.factory(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()
	_, ok := entries[id]
	return ok
}
