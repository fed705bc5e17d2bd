package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-minesweeper/internal/config"
	"github.com/vovakirdan/tui-minesweeper/internal/core"
	"github.com/vovakirdan/tui-minesweeper/internal/games/minesweeper"
	mscore "github.com/vovakirdan/tui-minesweeper/internal/games/minesweeper/core"
	"github.com/vovakirdan/tui-minesweeper/internal/platform/tui"
	"github.com/vovakirdan/tui-minesweeper/internal/registry"
	"github.com/vovakirdan/tui-minesweeper/internal/storage"
)

var (
	flagHeight int
	flagWidth  int
	flagMines  int
)

var playCmd = &cobra.Command{
	Use:   "play [board]",
	Short: "Play a board",
	Long: `Start playing the given board (default: minesweeper).

Controls:
  Arrows/hjkl/wasd  - Move cursor
  Space/Enter       - Open cell
  F/X               - Toggle flag
  P                 - Pause
  R                 - New game
  Esc/B             - Leave
  Q/Ctrl+C          - Quit
  Ctrl+S            - Save a screenshot

Board options:
  --height, --width, --mines override the board of any variant.
  Sides are clamped to 1-99 and mines to height x width.

Examples:
  minesweeper play
  minesweeper play minesweeper_expert
  minesweeper play --difficulty hard
  minesweeper play --height 5 --width 5 --mines 25 --relocation clear
  minesweeper play --config ./my-minesweeper.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagHeight, "height", 0, "Board height (overrides preset)")
	playCmd.Flags().IntVar(&flagWidth, "width", 0, "Board width (overrides preset)")
	playCmd.Flags().IntVar(&flagMines, "mines", -1, "Mine count (overrides preset)")
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := minesweeper.IDDefault
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown board %q, run 'minesweeper list' to see available boards", gameID)
	}

	if err := applyBoardFlags(cmd, gameID); err != nil {
		return err
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	closeLog := useFileLogger()
	defer closeLog()

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	if _, err := tui.Run(game, store, logger, runtimeConfig()); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// applyBoardFlags turns --height/--width/--mines into a board override.
// Unset sides come from the variant's preset.
func applyBoardFlags(cmd *cobra.Command, gameID string) error {
	flags := cmd.Flags()
	if !flags.Changed("height") && !flags.Changed("width") && !flags.Changed("mines") {
		minesweeper.SetBoard(nil)
		return nil
	}

	board, err := loadConfig().ResolveBoard(boardSelection(gameID))
	if err != nil {
		return err
	}
	logger.Debug("board override", "board", board.String())
	minesweeper.SetBoard(&board)
	return nil
}

// boardSelection describes the board asked for by the variant and the board flags.
func boardSelection(gameID string) config.Selection {
	sel := config.Selection{
		Preset: presetFor(gameID),
		Height: flagHeight,
		Width:  flagWidth,
		Mines:  flagMines,
	}
	if sel.Preset == "" {
		sel.Difficulty = config.DifficultyPreset(flagDifficulty)
	}
	return sel
}

// presetFor returns the preset behind a registered variant ID.
func presetFor(gameID string) string {
	switch gameID {
	case minesweeper.IDBeginner:
		return config.PresetBeginner
	case minesweeper.IDIntermediate:
		return config.PresetIntermediate
	case minesweeper.IDExpert:
		return config.PresetExpert
	default:
		return ""
	}
}

// runtimeConfig builds the runtime config from flags and the terminal size.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens result storage and seeds the shared win/loss counters from
// its history. Games still run without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open results database", "path", flagDBPath, "error", err)
		return nil
	}

	sum, err := store.Summary("")
	if err != nil {
		logger.Warn("could not read history", "error", err)
		return store
	}
	minesweeper.SetStats(mscore.NewStatsFrom(sum.Wins, sum.Total))
	logger.Debug("history loaded", "wins", sum.Wins, "total", sum.Total)
	return store
}
