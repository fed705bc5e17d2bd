// minesweeper is a terminal minesweeper with presets, custom boards, and result history.
//
// Usage:
//
//	minesweeper list               - List boards and presets
//	minesweeper play [board]       - Play a board
//	minesweeper menu               - Start menu to pick boards interactively
//	minesweeper run [file]         - Replay scripted moves without a TUI
//	minesweeper stats [board]      - Show win statistics and recent games
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 30)
//	--seed <value>        - Set RNG seed for reproducible boards
//	--db <path>           - Set database path (default: ~/.minesweeper/results.db)
//	--config <path>       - Custom minesweeper YAML config
//	--difficulty <name>   - easy, normal, or hard for the default board
//	--relocation <name>   - literal or clear, for a first click on a full board
//	--log-level <level>   - debug, info, warn, or error
//
// Each flag falls back to a MINESWEEPER_* environment variable, which may
// also be set in a .env file in the working directory.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-minesweeper/internal/config"
	"github.com/vovakirdan/tui-minesweeper/internal/core"
	"github.com/vovakirdan/tui-minesweeper/internal/games/minesweeper"
	"github.com/vovakirdan/tui-minesweeper/internal/logging"
)

const defaultDBPath = "~/.minesweeper/results.db"

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagRelocation string
	flagLogLevel   string

	// logger writes to stderr for plain commands; TUI commands switch to a file.
	logger *log.Logger = logging.Discard()
)

// envFlags binds persistent flags to environment variables.
var envFlags = map[string]string{
	"db":         "MINESWEEPER_DB",
	"config":     "MINESWEEPER_CONFIG",
	"difficulty": "MINESWEEPER_DIFFICULTY",
	"relocation": "MINESWEEPER_RELOCATION",
	"log-level":  "MINESWEEPER_LOG_LEVEL",
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "minesweeper",
	Short: "Minesweeper - clear the minefield in your terminal",
	Long: `Minesweeper is a terminal game: open every safe cell without
stepping on a mine. The first click never loses.

Available commands:
  list     - Show boards and presets
  play     - Play a board directly
  menu     - Interactive board picker
  run      - Replay scripted moves and print the board
  stats    - View win statistics

Examples:
  minesweeper play
  minesweeper play minesweeper_expert
  minesweeper play --height 20 --width 40 --mines 150
  minesweeper menu
  echo "L 4 4" | minesweeper run --seed 7
  minesweeper stats`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	// Global persistent flags
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", core.DefaultConfig().TickRate, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", defaultDBPath, "Path to results database")
	pf.StringVar(&flagConfig, "config", "", "Path to custom minesweeper config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	pf.StringVar(&flagRelocation, "relocation", "", "First-click relocation on a full board: literal, clear")
	pf.StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(statsCmd)
}

// setup loads .env, applies environment fallbacks, and configures the game package.
func setup(cmd *cobra.Command, _ []string) error {
	_ = godotenv.Load()

	for name, env := range envFlags {
		f := cmd.Flags().Lookup(name)
		if f == nil || f.Changed {
			continue
		}
		if v, ok := os.LookupEnv(env); ok && v != "" {
			if err := f.Value.Set(v); err != nil {
				return fmt.Errorf("invalid %s: %w", env, err)
			}
		}
	}

	l, err := logging.New(os.Stderr, flagLogLevel)
	if err != nil {
		return err
	}
	logger = l

	if flagDifficulty != "" && config.PresetForDifficulty(config.DifficultyPreset(flagDifficulty)) == "" {
		return fmt.Errorf("unknown difficulty %q (use easy, normal, or hard)", flagDifficulty)
	}
	if flagRelocation != "" && flagRelocation != "literal" && flagRelocation != "clear" {
		return fmt.Errorf("unknown relocation %q (use literal or clear)", flagRelocation)
	}

	minesweeper.SetConfigPath(flagConfig)
	minesweeper.SetDifficultyPreset(flagDifficulty)
	minesweeper.SetRelocation(flagRelocation)
	return nil
}

// useFileLogger redirects logging to the log file while a TUI owns the terminal.
// The returned func closes the file.
func useFileLogger() func() {
	l, closer, err := logging.OpenFile(logging.DefaultFile, flagLogLevel)
	if err != nil {
		logger.Warn("could not open log file, logging disabled", "error", err)
		logger = logging.Discard()
		return func() {}
	}
	logger = l
	return func() { closer.Close() }
}

// loadConfig loads the minesweeper config, logging a broken custom file.
func loadConfig() config.MinesweeperConfig {
	cfg, err := config.LoadMinesweeper(flagConfig)
	if err != nil {
		logger.Warn("using default config", "path", flagConfig, "error", err)
	}
	return cfg
}
