package config

import "fmt"

// DifficultyPreset represents a named difficulty level from the --difficulty flag.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// PresetForDifficulty maps a difficulty to the preset it selects.
// Unknown or empty difficulties yield "".
func PresetForDifficulty(d DifficultyPreset) string {
	switch d {
	case DifficultyEasy:
		return PresetBeginner
	case DifficultyNormal:
		return PresetIntermediate
	case DifficultyHard:
		return PresetExpert
	default:
		return ""
	}
}

// Selection describes how the caller asked for a board.
// Explicit fields win over Preset, which wins over Difficulty.
type Selection struct {
	Preset     string
	Difficulty DifficultyPreset
	Height     int // 0 means unset
	Width      int // 0 means unset
	Mines      int // negative means unset
}

// ResolveBoard picks the board for a selection and sanitizes it.
func (c MinesweeperConfig) ResolveBoard(sel Selection) (BoardConfig, error) {
	board := c.Board

	name := sel.Preset
	if name == "" {
		name = PresetForDifficulty(sel.Difficulty)
	}
	if name != "" {
		p, ok := c.Preset(name)
		if !ok {
			return board, fmt.Errorf("config: unknown preset %q", name)
		}
		board = p.Board
	}

	if sel.Height != 0 {
		board.Height = sel.Height
	}
	if sel.Width != 0 {
		board.Width = sel.Width
	}
	if sel.Mines >= 0 {
		board.Mines = sel.Mines
	}

	return Sanitize(board), nil
}
