package config

import (
	_ "embed"
)

//go:embed defaults/minesweeper.yaml
var defaultMinesweeperYAML []byte

// Preset names shipped with the default configuration.
const (
	PresetClassic      = "classic"
	PresetBeginner     = "beginner"
	PresetIntermediate = "intermediate"
	PresetExpert       = "expert"
)

// DefaultMinesweeperConfig returns the hardcoded configuration used when the
// embedded YAML cannot be parsed.
func DefaultMinesweeperConfig() MinesweeperConfig {
	return MinesweeperConfig{
		Board:      BoardConfig{Height: 10, Width: 10, Mines: 10},
		Relocation: "literal",
		Presets: []Preset{
			{Name: PresetClassic, Title: "Classic", Board: BoardConfig{Height: 10, Width: 10, Mines: 10}},
			{Name: PresetBeginner, Title: "Beginner", Board: BoardConfig{Height: 9, Width: 9, Mines: 10}},
			{Name: PresetIntermediate, Title: "Intermediate", Board: BoardConfig{Height: 16, Width: 16, Mines: 40}},
			{Name: PresetExpert, Title: "Expert", Board: BoardConfig{Height: 16, Width: 30, Mines: 99}},
		},
	}
}
