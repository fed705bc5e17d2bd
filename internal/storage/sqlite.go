// Package storage provides SQLite-based history of finished minesweeper games.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
// Only outcomes are stored; a game in progress is never persisted.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-minesweeper/internal/config"
	"github.com/vovakirdan/tui-minesweeper/internal/core"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("storage: not found")

// Store manages the SQLite database connection for result history.
type Store struct {
	db *sql.DB
}

// ResultEntry is one stored game outcome.
type ResultEntry struct {
	ID        int64
	SessionID string
	GameID    string
	Won       bool
	Height    int
	Width     int
	Mines     int
	Moves     int
	Duration  time.Duration
	CreatedAt time.Time
}

// Summary aggregates results for one game ID, or for all games when GameID is empty.
type Summary struct {
	GameID     string
	Wins       int
	Total      int
	BestTime   time.Duration // Fastest win, 0 if none
	LastPlayed time.Time
}

// WinRatio returns Wins/Total. ok is false when nothing was played.
func (s Summary) WinRatio() (ratio float64, ok bool) {
	if s.Total == 0 {
		return 0, false
	}
	return float64(s.Wins) / float64(s.Total), true
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	path, err := config.ExpandPath(dbPath)
	if err != nil {
		return nil, err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL UNIQUE,
			game_id TEXT NOT NULL,
			won INTEGER NOT NULL,
			height INTEGER NOT NULL,
			width INTEGER NOT NULL,
			mines INTEGER NOT NULL,
			moves INTEGER NOT NULL DEFAULT 0,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_results_game_id ON results(game_id);
		CREATE INDEX IF NOT EXISTS idx_results_created ON results(created_at DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveResult records a finished game.
// Returns the ID of the inserted record.
func (s *Store) SaveResult(r core.GameResult) (int64, error) {
	if r.SessionID == "" || r.GameID == "" {
		return 0, fmt.Errorf("storage: result needs a session and game ID")
	}

	result, err := s.db.Exec(
		`INSERT INTO results (session_id, game_id, won, height, width, mines, moves, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		r.SessionID, r.GameID, boolToInt(r.Won), r.Height, r.Width, r.Mines, r.Moves, r.Duration.Milliseconds(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save result: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

const resultColumns = `id, session_id, game_id, won, height, width, mines, moves, duration_ms, created_at`

// RecentResults returns the newest results first.
// An empty gameID returns results for every game.
func (s *Store) RecentResults(gameID string, limit int) ([]ResultEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT `+resultColumns+`
		 FROM results
		 WHERE ? = '' OR game_id = ?
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		gameID, gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	var entries []ResultEntry
	for rows.Next() {
		e, err := scanResult(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// ResultBySession retrieves the result recorded for a session.
// Returns ErrNotFound if the session has no result.
func (s *Store) ResultBySession(sessionID string) (*ResultEntry, error) {
	row := s.db.QueryRow(
		`SELECT `+resultColumns+` FROM results WHERE session_id = ?`,
		sessionID,
	)

	e, err := scanResult(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanResult(r rowScanner) (ResultEntry, error) {
	var (
		e          ResultEntry
		durationMS int64
		createdAt  any
	)
	if err := r.Scan(&e.ID, &e.SessionID, &e.GameID, &e.Won, &e.Height, &e.Width,
		&e.Mines, &e.Moves, &durationMS, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return e, err
		}
		return e, fmt.Errorf("storage: cannot scan row: %w", err)
	}
	e.Duration = time.Duration(durationMS) * time.Millisecond
	e.CreatedAt = parseTime(createdAt)
	return e, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// parseTime handles both time.Time and string datetime values from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// Summary aggregates results for a game. An empty gameID covers every game.
func (s *Store) Summary(gameID string) (*Summary, error) {
	sum := &Summary{GameID: gameID}

	var bestMS int64
	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COALESCE(SUM(won), 0), COUNT(*),
		        COALESCE(MIN(CASE WHEN won = 1 THEN duration_ms END), 0),
		        MAX(created_at)
		 FROM results
		 WHERE ? = '' OR game_id = ?`,
		gameID, gameID,
	).Scan(&sum.Wins, &sum.Total, &bestMS, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get summary: %w", err)
	}

	sum.BestTime = time.Duration(bestMS) * time.Millisecond
	sum.LastPlayed = parseTime(lastPlayed)
	return sum, nil
}

// AllSummaries returns one summary per game ID that has results.
func (s *Store) AllSummaries() (map[string]*Summary, error) {
	rows, err := s.db.Query(
		`SELECT game_id, SUM(won), COUNT(*),
		        COALESCE(MIN(CASE WHEN won = 1 THEN duration_ms END), 0),
		        MAX(created_at)
		 FROM results
		 GROUP BY game_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get summaries: %w", err)
	}
	defer rows.Close()

	out := make(map[string]*Summary)
	for rows.Next() {
		var sum Summary
		var bestMS int64
		var lastPlayed any
		if err := rows.Scan(&sum.GameID, &sum.Wins, &sum.Total, &bestMS, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan summary row: %w", err)
		}
		sum.BestTime = time.Duration(bestMS) * time.Millisecond
		sum.LastPlayed = parseTime(lastPlayed)
		out[sum.GameID] = &sum
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return out, nil
}

// ClearResults deletes all results for the given game. An empty gameID clears everything.
func (s *Store) ClearResults(gameID string) error {
	_, err := s.db.Exec("DELETE FROM results WHERE ? = '' OR game_id = ?", gameID, gameID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear results: %w", err)
	}
	return nil
}
