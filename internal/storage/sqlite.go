// Package storage provides SQLite-based persistence for finished runs.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// timestampLayout is the format SQLite uses for CURRENT_TIMESTAMP.
const timestampLayout = "2006-01-02 15:04:05"

// Store manages the SQLite database connection for run history.
type Store struct {
	db *sql.DB
}

// Run is a single finished run.
type Run struct {
	ID          int64
	Player      string
	Score       int
	Discoveries int
	Frames      int
	Duration    time.Duration
	CreatedAt   time.Time
}

// Stats contains aggregated statistics over all runs.
type Stats struct {
	Runs             int
	HighScore        int
	AvgScore         float64
	TotalDiscoveries int64
	LastPlayed       time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
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
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			player TEXT NOT NULL,
			score INTEGER NOT NULL,
			discoveries INTEGER NOT NULL DEFAULT 0,
			frames INTEGER NOT NULL DEFAULT 0,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(score DESC);
		CREATE INDEX IF NOT EXISTS idx_runs_player ON runs(player, score DESC);
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

// SaveRun records a finished run.
// Returns the ID of the inserted record.
func (s *Store) SaveRun(r Run) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO runs (player, score, discoveries, frames, duration_ms) VALUES (?, ?, ?, ?, ?)",
		r.Player, r.Score, r.Discoveries, r.Frames, r.Duration.Milliseconds(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopRuns retrieves the best N runs across all players.
// Results are ordered by score descending, oldest first on ties.
func (s *Store) TopRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, player, score, discoveries, frames, duration_ms, created_at
		 FROM runs
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	return scanRuns(rows)
}

// PlayerRuns retrieves the best N runs of one player.
func (s *Store) PlayerRuns(player string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, player, score, discoveries, frames, duration_ms, created_at
		 FROM runs
		 WHERE player = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		player, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query player runs: %w", err)
	}
	defer rows.Close()

	return scanRuns(rows)
}

// scanRuns reads every row of a runs query.
func scanRuns(rows *sql.Rows) ([]Run, error) {
	var runs []Run
	for rows.Next() {
		var r Run
		var durationMS int64
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Player, &r.Score, &r.Discoveries, &r.Frames, &durationMS, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Duration = time.Duration(durationMS) * time.Millisecond
		r.CreatedAt = parseTimestamp(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// HighScore returns the highest score across all runs.
// Returns 0 if no runs exist.
func (s *Store) HighScore() (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow("SELECT MAX(score) FROM runs").Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// PlayerBest returns the highest score of one player, or 0 if they have no runs.
func (s *Store) PlayerBest(player string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow("SELECT MAX(score) FROM runs WHERE player = ?", player).Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query player best: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// Stats retrieves aggregated statistics over all runs.
func (s *Store) Stats() (*Stats, error) {
	stats := &Stats{}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0), COALESCE(SUM(discoveries), 0)
		 FROM runs`,
	).Scan(&stats.Runs, &stats.HighScore, &stats.AvgScore, &stats.TotalDiscoveries)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(`SELECT created_at FROM runs ORDER BY id DESC LIMIT 1`).Scan(&lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTimestamp(lastPlayed)
	}

	return stats, nil
}

// ClearRuns deletes all recorded runs.
func (s *Store) ClearRuns() error {
	if _, err := s.db.Exec("DELETE FROM runs"); err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// parseTimestamp handles both time.Time and string values from the driver.
func parseTimestamp(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(timestampLayout, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
