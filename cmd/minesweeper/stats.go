package main

import (
	"fmt"
	"sort"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-minesweeper/internal/registry"
	"github.com/vovakirdan/tui-minesweeper/internal/storage"
)

var (
	flagStatsLimit int
	flagStatsClear bool
)

var statsCmd = &cobra.Command{
	Use:   "stats [board]",
	Short: "Show win statistics and recent games",
	Long: `Display the win ratio, best time, and recent games for a board,
or for every board when none is given.

Examples:
  minesweeper stats
  minesweeper stats minesweeper_expert --limit 20
  minesweeper stats --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runStats,
}

func init() {
	statsCmd.Flags().IntVar(&flagStatsLimit, "limit", 10, "Number of recent games to show")
	statsCmd.Flags().BoolVar(&flagStatsClear, "clear", false, "Delete recorded results instead of showing them")
}

func runStats(cmd *cobra.Command, args []string) error {
	gameID := ""
	if len(args) == 1 {
		gameID = args[0]
		if !registry.Exists(gameID) {
			return fmt.Errorf("unknown board %q, run 'minesweeper list' to see available boards", gameID)
		}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening results database: %w", err)
	}
	defer store.Close()

	out := cmd.OutOrStdout()

	if flagStatsClear {
		if err := store.ClearResults(gameID); err != nil {
			return err
		}
		logger.Info("results cleared", "board", gameID)
		fmt.Fprintln(out, "Results cleared.")
		return nil
	}

	sum, err := store.Summary(gameID)
	if err != nil {
		return err
	}

	title := "All boards"
	if gameID != "" {
		game, err := registry.Create(gameID)
		if err != nil {
			return err
		}
		title = game.Title()
	}

	fmt.Fprintf(out, "Statistics - %s\n\n", title)
	if sum.Total == 0 {
		fmt.Fprintln(out, "No games recorded yet.")
		return nil
	}

	ratio, _ := sum.WinRatio()
	fmt.Fprintf(out, "  Games:     %d\n", sum.Total)
	fmt.Fprintf(out, "  Wins:      %d\n", sum.Wins)
	fmt.Fprintf(out, "  Win/Loss:  %.2f\n", ratio)
	if sum.BestTime > 0 {
		fmt.Fprintf(out, "  Best time: %s\n", sum.BestTime)
	}

	if gameID == "" {
		if err := printPerBoard(cmd, store); err != nil {
			return err
		}
	}

	recent, err := store.RecentResults(gameID, flagStatsLimit)
	if err != nil {
		return err
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "  %-6s  %-24s  %-9s  %-5s  %-9s  %s\n", "Result", "Board", "Size", "Moves", "Time", "Date")
	fmt.Fprintf(out, "  %-6s  %-24s  %-9s  %-5s  %-9s  %s\n", "------", "-----", "----", "-----", "----", "----")
	for _, r := range recent {
		outcome := "Loss"
		if r.Won {
			outcome = "Win"
		}
		fmt.Fprintf(out, "  %-6s  %-24s  %-9s  %-5d  %-9s  %s\n",
			outcome, r.GameID, fmt.Sprintf("%dx%d/%d", r.Height, r.Width, r.Mines),
			r.Moves, r.Duration, r.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

// printPerBoard prints one ratio line per board that has results.
func printPerBoard(cmd *cobra.Command, store *storage.Store) error {
	all, err := store.AllSummaries()
	if err != nil {
		return err
	}

	ids := lo.Keys(all)
	sort.Strings(ids)

	out := cmd.OutOrStdout()
	fmt.Fprintln(out)
	for _, id := range ids {
		s := all[id]
		ratio, _ := s.WinRatio()
		fmt.Fprintf(out, "  %-24s  %d/%d  %.2f\n", id, s.Wins, s.Total, ratio)
	}
	return nil
}
