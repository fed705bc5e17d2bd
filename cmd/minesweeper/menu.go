package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-minesweeper/internal/games/minesweeper"
	"github.com/vovakirdan/tui-minesweeper/internal/platform/tui"
	"github.com/vovakirdan/tui-minesweeper/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a board picker menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a board.
"Custom board..." opens an editor for height, width, mines, and the
first-click relocation policy. Leave a game with Esc to return here.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select board
  Tab          - Statistics
  Q            - Quit

Examples:
  minesweeper menu
  minesweeper menu --db ./results.db`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	closeLog := useFileLogger()
	defer closeLog()

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()
	fileCfg := loadConfig()
	custom := fileCfg.Board
	relocation := fileCfg.Relocation
	if flagRelocation != "" {
		relocation = flagRelocation
	}

	for {
		menuResult, err := tui.RunMenu(cfg)
		if err != nil {
			return err
		}
		cfg = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsStats {
			goBack, err := tui.RunStats(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				logger.Error("statistics screen failed", "error", err)
			}
			if goBack {
				continue
			}
			return nil
		}

		gameID := menuResult.GameID
		minesweeper.SetBoard(nil)
		minesweeper.SetRelocation(flagRelocation)

		if menuResult.Custom {
			sel, updated, err := tui.RunBoardSelector(custom, relocation, cfg)
			if err != nil {
				logger.Error("board editor failed", "error", err)
				continue
			}
			cfg = updated
			if sel == nil {
				continue
			}

			custom, relocation = sel.Board, sel.Relocation
			minesweeper.SetBoard(&sel.Board)
			minesweeper.SetRelocation(sel.Relocation)
			gameID = minesweeper.IDDefault
		}

		game, err := registry.Create(gameID)
		if err != nil {
			logger.Error("creating game", "game", gameID, "error", err)
			continue
		}

		// New seed for each game unless one was pinned
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		back, err := tui.Run(game, store, logger, cfg)
		if err != nil {
			logger.Error("running game", "game", gameID, "error", err)
		}
		if !back {
			return nil
		}
	}
}
