// Package config provides YAML-based configuration loading and board presets
// for the minesweeper platform.
package config

import (
	"fmt"

	"github.com/samber/lo"
)

// Board size limits applied by Sanitize.
const (
	MinSide = 1
	MaxSide = 99
)

// MinesweeperConfig contains all configuration for the Minesweeper game.
type MinesweeperConfig struct {
	Board      BoardConfig `yaml:"board"`      // Board used when no preset is selected
	Relocation string      `yaml:"relocation"` // "literal" or "clear"
	Presets    []Preset    `yaml:"presets"`
}

// BoardConfig is the size and mine count of a board.
type BoardConfig struct {
	Height int `yaml:"height"`
	Width  int `yaml:"width"`
	Mines  int `yaml:"mines"`
}

// String returns the board as "HxW/M".
func (b BoardConfig) String() string {
	return fmt.Sprintf("%dx%d/%d", b.Height, b.Width, b.Mines)
}

// Preset is a named board.
type Preset struct {
	Name  string      `yaml:"name"`
	Title string      `yaml:"title"`
	Board BoardConfig `yaml:"board"`
}

// Sanitize clamps a user supplied board to playable values:
// sides to [MinSide, MaxSide] and mines to [0, height*width].
func Sanitize(b BoardConfig) BoardConfig {
	b.Height = lo.Clamp(b.Height, MinSide, MaxSide)
	b.Width = lo.Clamp(b.Width, MinSide, MaxSide)
	b.Mines = lo.Clamp(b.Mines, 0, b.Height*b.Width)
	return b
}

// Preset looks up a preset by name.
func (c MinesweeperConfig) Preset(name string) (Preset, bool) {
	return lo.Find(c.Presets, func(p Preset) bool {
		return p.Name == name
	})
}

// PresetNames returns the preset names in file order.
func (c MinesweeperConfig) PresetNames() []string {
	return lo.Map(c.Presets, func(p Preset, _ int) string {
		return p.Name
	})
}

// Validate checks the fields a loaded file may get wrong.
func (c MinesweeperConfig) Validate() error {
	switch c.Relocation {
	case "", "literal", "clear":
	default:
		return fmt.Errorf("config: unknown relocation policy %q", c.Relocation)
	}

	names := c.PresetNames()
	if dup := lo.FindDuplicates(names); len(dup) > 0 {
		return fmt.Errorf("config: duplicate preset %q", dup[0])
	}
	for _, p := range c.Presets {
		if p.Name == "" {
			return fmt.Errorf("config: preset without a name")
		}
	}
	return nil
}
