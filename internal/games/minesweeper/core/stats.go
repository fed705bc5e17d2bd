package core

import "sync"

// Stats holds the win/loss counters shared by every session of a host.
// Both counters move together under one lock so the ratio is always consistent.
type Stats struct {
	mu         sync.Mutex
	victories  int
	totalGames int
}

// NewStats returns zeroed counters.
func NewStats() *Stats {
	return &Stats{}
}

// NewStatsFrom seeds the counters, e.g. from stored history.
func NewStatsFrom(victories, total int) *Stats {
	return &Stats{victories: victories, totalGames: total}
}

// Record counts one finished game.
func (s *Stats) Record(won bool) {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if won {
		s.victories++
	}
	s.totalGames++
}

// Snapshot returns both counters read under the same lock.
func (s *Stats) Snapshot() (victories, total int) {
	if s == nil {
		return 0, 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.victories, s.totalGames
}

// WinRatio returns victories/totalGames. ok is false before any game finished.
func (s *Stats) WinRatio() (ratio float64, ok bool) {
	v, t := s.Snapshot()
	if t == 0 {
		return 0, false
	}
	return float64(v) / float64(t), true
}
