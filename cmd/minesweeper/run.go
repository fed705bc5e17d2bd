package main

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	platformcore "github.com/vovakirdan/tui-minesweeper/internal/core"
	"github.com/vovakirdan/tui-minesweeper/internal/games/minesweeper"
	"github.com/vovakirdan/tui-minesweeper/internal/games/minesweeper/core"
	"github.com/vovakirdan/tui-minesweeper/internal/registry"
)

var (
	flagRunBoard string
	flagRunSave  bool
	flagRunQuiet bool
)

var runCmd = &cobra.Command{
	Use:   "run [script]",
	Short: "Replay scripted moves and print the board",
	Long: `Play a game without the TUI. Moves are read from the script file,
or from stdin when no file is given, one per line:

  L <row> <col>   - left click (open)
  R <row> <col>   - right click (toggle flag)

Rows and columns start at 0. Blank lines and lines starting with # are
skipped. The masked board is printed after every move, and the full
board once the game ends.

Examples:
  printf 'L 0 0\nR 1 2\n' | minesweeper run --seed 3
  minesweeper run moves.txt --board minesweeper_beginner --save`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScript,
}

func init() {
	runCmd.Flags().StringVar(&flagRunBoard, "board", minesweeper.IDDefault, "Board variant to play")
	runCmd.Flags().IntVar(&flagHeight, "height", 0, "Board height (overrides preset)")
	runCmd.Flags().IntVar(&flagWidth, "width", 0, "Board width (overrides preset)")
	runCmd.Flags().IntVar(&flagMines, "mines", -1, "Mine count (overrides preset)")
	runCmd.Flags().BoolVar(&flagRunSave, "save", false, "Record the finished game in the results database")
	runCmd.Flags().BoolVarP(&flagRunQuiet, "quiet", "q", false, "Only print the final board")
}

// scriptMove is one parsed line of a move script.
type scriptMove struct {
	Left     bool
	Row, Col int
}

func (m scriptMove) String() string {
	kind := "R"
	if m.Left {
		kind = "L"
	}
	return fmt.Sprintf("%s %d %d", kind, m.Row, m.Col)
}

// parseMoves reads a move script. Errors name the offending line.
func parseMoves(r io.Reader) ([]scriptMove, error) {
	var moves []scriptMove
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		fields := strings.Fields(text)
		if len(fields) != 3 {
			return nil, fmt.Errorf("line %d: expected '<L|R> <row> <col>', got %q", line, text)
		}

		var m scriptMove
		switch strings.ToUpper(fields[0]) {
		case "L":
			m.Left = true
		case "R":
		default:
			return nil, fmt.Errorf("line %d: unknown click %q", line, fields[0])
		}

		var err error
		if m.Row, err = strconv.Atoi(fields[1]); err != nil {
			return nil, fmt.Errorf("line %d: bad row: %w", line, err)
		}
		if m.Col, err = strconv.Atoi(fields[2]); err != nil {
			return nil, fmt.Errorf("line %d: bad column: %w", line, err)
		}
		moves = append(moves, m)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading moves: %w", err)
	}
	return moves, nil
}

// playScript applies moves to a session and writes the board after each one.
// Moves after the game ends are skipped.
func playScript(w io.Writer, s *core.Session, stats *core.Stats, moves []scriptMove, quiet bool) {
	for _, m := range moves {
		if !s.IsRunning() {
			break
		}

		var res core.MoveResult
		if m.Left {
			res = s.LeftClick(m.Row, m.Col)
		} else {
			res = s.RightClick(m.Row, m.Col)
		}

		if !quiet {
			fmt.Fprintf(w, "> %s: %s\n%s\n", m, res, s.Board())
		}
	}

	if quiet || !s.IsRunning() {
		fmt.Fprint(w, s.Board())
	}
	fmt.Fprintf(w, "State: %s  Moves: %d  %s\n", s.State(), s.Moves(), ratioText(stats))
	if loss, ok := s.LastLoss(); ok {
		fmt.Fprintf(w, "Mine hit at %s\n", loss)
	}
}

// ratioText formats the win ratio with two decimals.
func ratioText(stats *core.Stats) string {
	ratio, ok := stats.WinRatio()
	if !ok {
		return "Win/Loss: -"
	}
	return fmt.Sprintf("Win/Loss: %.2f", ratio)
}

func runScript(cmd *cobra.Command, args []string) error {
	if !registry.Exists(flagRunBoard) {
		return fmt.Errorf("unknown board %q, run 'minesweeper list' to see available boards", flagRunBoard)
	}

	in := io.Reader(os.Stdin)
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("opening script: %w", err)
		}
		defer f.Close()
		in = f
	}

	moves, err := parseMoves(in)
	if err != nil {
		return err
	}

	fileCfg := loadConfig()
	board, err := fileCfg.ResolveBoard(boardSelection(flagRunBoard))
	if err != nil {
		return err
	}

	relocation := fileCfg.Relocation
	if flagRelocation != "" {
		relocation = flagRelocation
	}
	policy, _ := core.ParseRelocationPolicy(relocation)

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	// Opened before the session so the printed ratio covers earlier games.
	store := openStore()
	if store != nil {
		defer store.Close()
	}
	stats := minesweeper.Stats()

	s, err := core.NewSession(core.SessionOptions{
		Height:     board.Height,
		Width:      board.Width,
		Mines:      board.Mines,
		Relocation: policy,
	}, rand.New(rand.NewSource(seed)), stats)
	if err != nil {
		return err
	}
	logger.Debug("scripted game", "board", board.String(), "relocation", policy, "seed", seed, "moves", len(moves))

	start := time.Now()
	playScript(cmd.OutOrStdout(), s, stats, moves, flagRunQuiet)

	if flagRunSave && !s.IsRunning() {
		if store == nil {
			return fmt.Errorf("cannot save result: database unavailable")
		}
		if _, err := store.SaveResult(platformcore.GameResult{
			SessionID: s.ID(),
			GameID:    flagRunBoard,
			Won:       s.IsWon(),
			Height:    board.Height,
			Width:     board.Width,
			Mines:     s.Field().MineCount(),
			Moves:     s.Moves(),
			Duration:  time.Since(start),
		}); err != nil {
			return err
		}
		logger.Info("result saved", "session", s.ID())
	}
	return nil
}
