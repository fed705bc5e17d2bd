// Package core holds the types shared by the terminal host and the games:
// runtime settings, input frames, and the screen buffer games draw into.
package core

import "time"

// RuntimeConfig is handed to a game on every Reset.
type RuntimeConfig struct {
	ScreenW  int
	ScreenH  int
	TickRate int   // Ticks per second
	Seed     int64 // Mine placement seed; 0 lets the host pick one from the clock
}

// DefaultConfig returns an 80x24 terminal ticking 30 times a second.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30}
}

// GameState is the status a game reports after each tick.
type GameState struct {
	Score    int // Safe cells opened
	GameOver bool
	Won      bool
	Paused   bool
}

// StepResult wraps the state returned by Game.Step.
type StepResult struct {
	State GameState
}

// GameResult describes a finished game for the results store.
type GameResult struct {
	SessionID string
	GameID    string
	Won       bool
	Height    int
	Width     int
	Mines     int
	Moves     int
	Duration  time.Duration
}
