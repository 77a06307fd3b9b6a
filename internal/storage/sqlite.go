// Package storage provides an in-memory SQLite ledger of finished runs.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
// The database lives only as long as the process; nothing is written to disk.
package storage

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite connection for the run ledger.
// It is safe for concurrent use by multiple sessions.
type Store struct {
	db *sql.DB
}

// Run is one finished game.
type Run struct {
	ID      int64
	Player  string
	Score   int
	Rows    int
	Level   int
	EndedAt time.Time
}

// OpenMemory creates an empty in-memory ledger and runs migrations.
func OpenMemory() (*Store, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Every connection to :memory: is a separate database, so pin one.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	// Run migrations
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
			rows_cleared INTEGER NOT NULL DEFAULT 0,
			level INTEGER NOT NULL DEFAULT 0,
			ended_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(score DESC, ended_at);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection and discards the ledger.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// RecordRun stores a finished run. A zero EndedAt is set to now.
// Returns the ID of the inserted record.
func (s *Store) RecordRun(r Run) (int64, error) {
	if r.EndedAt.IsZero() {
		r.EndedAt = time.Now()
	}

	result, err := s.db.Exec(
		"INSERT INTO runs (player, score, rows_cleared, level, ended_at) VALUES (?, ?, ?, ?, ?)",
		r.Player, r.Score, r.Rows, r.Level, r.EndedAt.UnixMilli(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot record run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopRuns retrieves the best N runs, highest score first.
// Ties go to the run that finished earlier.
func (s *Store) TopRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, player, score, rows_cleared, level, ended_at
		 FROM runs
		 ORDER BY score DESC, ended_at ASC, id ASC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var endedAt int64
		if err := rows.Scan(&r.ID, &r.Player, &r.Score, &r.Rows, &r.Level, &endedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.EndedAt = time.UnixMilli(endedAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// Best returns the highest recorded score.
// Returns 0 if no runs exist.
func (s *Store) Best() (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow("SELECT MAX(score) FROM runs").Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// RunCount returns how many runs have been recorded.
func (s *Store) RunCount() (int, error) {
	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM runs").Scan(&n); err != nil {
		return 0, fmt.Errorf("storage: cannot count runs: %w", err)
	}
	return n, nil
}
