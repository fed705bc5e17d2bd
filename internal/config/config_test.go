package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name string
		in   BoardConfig
		want BoardConfig
	}{
		{"unchanged", BoardConfig{10, 10, 10}, BoardConfig{10, 10, 10}},
		{"zero sides", BoardConfig{0, 0, 3}, BoardConfig{1, 1, 1}},
		{"negative mines", BoardConfig{5, 5, -4}, BoardConfig{5, 5, 0}},
		{"too many mines", BoardConfig{3, 3, 50}, BoardConfig{3, 3, 9}},
		{"oversized", BoardConfig{500, 120, 10}, BoardConfig{99, 99, 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sanitize(tt.in); got != tt.want {
				t.Errorf("Sanitize(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	cfg, err := LoadMinesweeper("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := DefaultMinesweeperConfig()
	if cfg.Board != want.Board {
		t.Errorf("expected board %v, got %v", want.Board, cfg.Board)
	}
	if cfg.Relocation != want.Relocation {
		t.Errorf("expected relocation %q, got %q", want.Relocation, cfg.Relocation)
	}
	if len(cfg.Presets) != len(want.Presets) {
		t.Fatalf("expected %d presets, got %d", len(want.Presets), len(cfg.Presets))
	}
	for i, p := range want.Presets {
		if cfg.Presets[i] != p {
			t.Errorf("preset %d: expected %+v, got %+v", i, p, cfg.Presets[i])
		}
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	data := []byte("relocation: clear\npresets:\n  - name: tiny\n    title: Tiny\n    board: { height: 2, width: 3, mines: 1 }\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := LoadMinesweeper(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Relocation != "clear" {
		t.Errorf("expected relocation clear, got %q", cfg.Relocation)
	}
	if cfg.Board != DefaultMinesweeperConfig().Board {
		t.Errorf("missing board section should keep the default, got %v", cfg.Board)
	}
	p, ok := cfg.Preset("tiny")
	if !ok {
		t.Fatal("expected preset tiny")
	}
	if p.Board != (BoardConfig{2, 3, 1}) {
		t.Errorf("unexpected tiny board %v", p.Board)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name string
		data string
	}{
		{"bad yaml", "board: [1, 2"},
		{"bad relocation", "relocation: teleport\n"},
		{"duplicate preset", "presets:\n  - name: a\n  - name: a\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name+".yaml")
			if err := os.WriteFile(path, []byte(tt.data), 0o600); err != nil {
				t.Fatalf("failed to write config: %v", err)
			}
			if _, err := LoadMinesweeper(path); err == nil {
				t.Error("expected an error")
			}
		})
	}

	if _, err := LoadMinesweeper(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestResolveBoard(t *testing.T) {
	cfg := DefaultMinesweeperConfig()

	tests := []struct {
		name    string
		sel     Selection
		want    BoardConfig
		wantErr bool
	}{
		{"default board", Selection{Mines: -1}, BoardConfig{10, 10, 10}, false},
		{"preset", Selection{Preset: PresetExpert, Mines: -1}, BoardConfig{16, 30, 99}, false},
		{"difficulty", Selection{Difficulty: DifficultyEasy, Mines: -1}, BoardConfig{9, 9, 10}, false},
		{"preset beats difficulty", Selection{Preset: PresetClassic, Difficulty: DifficultyHard, Mines: -1}, BoardConfig{10, 10, 10}, false},
		{"explicit override", Selection{Preset: PresetBeginner, Height: 4, Mines: 0}, BoardConfig{4, 9, 0}, false},
		{"override sanitized", Selection{Height: 2, Width: 2, Mines: 9}, BoardConfig{2, 2, 4}, false},
		{"unknown preset", Selection{Preset: "nope", Mines: -1}, BoardConfig{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := cfg.ResolveBoard(tt.sel)
			if tt.wantErr {
				if err == nil {
					t.Error("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestPresetForDifficulty(t *testing.T) {
	tests := []struct {
		in   DifficultyPreset
		want string
	}{
		{DifficultyEasy, PresetBeginner},
		{DifficultyNormal, PresetIntermediate},
		{DifficultyHard, PresetExpert},
		{"", ""},
		{"insane", ""},
	}

	for _, tt := range tests {
		if got := PresetForDifficulty(tt.in); got != tt.want {
			t.Errorf("PresetForDifficulty(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	got, err := ExpandPath("~/.minesweeper/results.db")
	if err != nil {
		t.Fatalf("ExpandPath() failed: %v", err)
	}
	if want := filepath.Join(home, ".minesweeper", "results.db"); got != want {
		t.Errorf("ExpandPath() = %q, want %q", got, want)
	}

	if got, _ := ExpandPath("/tmp/x.db"); got != "/tmp/x.db" {
		t.Errorf("absolute path changed: %q", got)
	}
}
