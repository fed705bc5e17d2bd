package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFile = "minesweeper.yaml"

// LoadMinesweeper loads Minesweeper configuration.
// Search order: customPath -> ~/.minesweeper/configs/minesweeper.yaml ->
// ./configs/minesweeper.yaml -> embedded default -> hardcoded default.
// Only a broken customPath is reported as an error.
func LoadMinesweeper(customPath string) (MinesweeperConfig, error) {
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return DefaultMinesweeperConfig(), err
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath(configFile); userCfgPath != "" {
		if cfg, err := loadFile(userCfgPath); err == nil {
			return cfg, nil
		}
	}

	if cfg, err := loadFile(filepath.Join("configs", configFile)); err == nil {
		return cfg, nil
	}

	var cfg MinesweeperConfig
	if err := yaml.Unmarshal(defaultMinesweeperYAML, &cfg); err != nil || cfg.Validate() != nil {
		return DefaultMinesweeperConfig(), nil
	}
	return cfg, nil
}

// loadFile reads and validates one YAML file. Missing sections fall back to defaults.
func loadFile(path string) (MinesweeperConfig, error) {
	cfg := DefaultMinesweeperConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	var file MinesweeperConfig
	if err := yaml.Unmarshal(data, &file); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := file.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}

	if file.Board != (BoardConfig{}) {
		cfg.Board = file.Board
	}
	if file.Relocation != "" {
		cfg.Relocation = file.Relocation
	}
	if len(file.Presets) > 0 {
		cfg.Presets = file.Presets
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".minesweeper", "configs", filename)
}
