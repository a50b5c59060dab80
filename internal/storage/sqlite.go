// Package storage provides SQLite-based persistence for visualization run
// history. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for run persistence.
type Store struct {
	db *sql.DB
}

// RunRecord is one completed (or stopped) visualization run.
type RunRecord struct {
	ID         int64
	Algorithm  string
	Rows       int
	Cols       int
	Walls      int
	Visited    int
	PathLen    int
	Success    bool
	DurationMs int64
	CreatedAt  time.Time
}

// AlgorithmStats contains aggregated statistics for one algorithm.
type AlgorithmStats struct {
	Algorithm  string
	Runs       int
	Successes  int
	AvgVisited float64
	AvgPathLen float64
	LastRun    time.Time
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

	// Create parent directories
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
			algorithm TEXT NOT NULL,
			rows INTEGER NOT NULL,
			cols INTEGER NOT NULL,
			walls INTEGER NOT NULL,
			visited INTEGER NOT NULL,
			path_len INTEGER NOT NULL,
			success INTEGER NOT NULL,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_algorithm ON runs(algorithm);
		CREATE INDEX IF NOT EXISTS idx_runs_recent ON runs(created_at DESC);
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

// SaveRun records a completed run. Returns the ID of the inserted record.
func (s *Store) SaveRun(r RunRecord) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO runs (algorithm, rows, cols, walls, visited, path_len, success, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		r.Algorithm, r.Rows, r.Cols, r.Walls, r.Visited, r.PathLen, boolToInt(r.Success), r.DurationMs,
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

// RecentRuns retrieves the most recent runs, newest first. An empty
// algorithm matches all algorithms.
func (s *Store) RecentRuns(algorithm string, limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `SELECT id, algorithm, rows, cols, walls, visited, path_len, success, duration_ms, created_at
		 FROM runs`
	args := []any{}
	if algorithm != "" {
		query += ` WHERE algorithm = ?`
		args = append(args, algorithm)
	}
	query += ` ORDER BY id DESC LIMIT ?`
	args = append(args, limit)

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var records []RunRecord
	for rows.Next() {
		var r RunRecord
		var success int
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Algorithm, &r.Rows, &r.Cols, &r.Walls,
			&r.Visited, &r.PathLen, &success, &r.DurationMs, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Success = success != 0
		r.CreatedAt = parseTimestamp(createdAt)
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// Stats retrieves aggregated statistics for one algorithm.
func (s *Store) Stats(algorithm string) (*AlgorithmStats, error) {
	stats := &AlgorithmStats{Algorithm: algorithm}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(success), 0), COALESCE(AVG(visited), 0), COALESCE(AVG(path_len), 0)
		 FROM runs WHERE algorithm = ?`,
		algorithm,
	).Scan(&stats.Runs, &stats.Successes, &stats.AvgVisited, &stats.AvgPathLen)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}

	var lastRun any
	err = s.db.QueryRow(
		`SELECT created_at FROM runs WHERE algorithm = ? ORDER BY id DESC LIMIT 1`,
		algorithm,
	).Scan(&lastRun)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("storage: cannot get last run: %w", err)
	}
	if err == nil {
		stats.LastRun = parseTimestamp(lastRun)
	}

	return stats, nil
}

// AllStats retrieves statistics for every algorithm that has been run.
func (s *Store) AllStats() (map[string]*AlgorithmStats, error) {
	rows, err := s.db.Query(
		`SELECT algorithm, COUNT(*), COALESCE(SUM(success), 0), COALESCE(AVG(visited), 0), COALESCE(AVG(path_len), 0), MAX(created_at)
		 FROM runs
		 GROUP BY algorithm`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*AlgorithmStats)
	for rows.Next() {
		var st AlgorithmStats
		var lastRun any
		if err := rows.Scan(&st.Algorithm, &st.Runs, &st.Successes, &st.AvgVisited, &st.AvgPathLen, &lastRun); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.LastRun = parseTimestamp(lastRun)
		stats[st.Algorithm] = &st
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

// ClearRuns deletes all runs for the given algorithm, or every run when
// algorithm is empty.
func (s *Store) ClearRuns(algorithm string) error {
	var err error
	if algorithm == "" {
		_, err = s.db.Exec("DELETE FROM runs")
	} else {
		_, err = s.db.Exec("DELETE FROM runs WHERE algorithm = ?", algorithm)
	}
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// parseTimestamp handles the driver returning DATETIME columns as either
// time.Time or string.
func parseTimestamp(v any) time.Time {
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

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
