package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-minesweeper/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List boards and presets",
	Long:  `Shows the registered board variants and the presets from the config.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, _ []string) {
	out := cmd.OutOrStdout()
	games := registry.List()

	fmt.Fprintln(out, "Available boards:")
	fmt.Fprintln(out)

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, g := range games {
		fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, g.ID, g.Title)
	}

	cfg := loadConfig()

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Presets:")
	fmt.Fprintln(out)
	for _, p := range cfg.Presets {
		fmt.Fprintf(out, "  %-14s  %-24s  %s\n", p.Name, p.Title, p.Board)
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "Default board: %s, relocation: %s\n", cfg.Board, cfg.Relocation)
	fmt.Fprintln(out, "Run 'minesweeper play <id>' to play a board.")
}
