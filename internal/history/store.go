// Package history persists comparison results so past runs can be
// reviewed from the CLI.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"profdemo/internal/runner"
)

// Row is one stored comparison entry.
type Row struct {
	ID          int64
	Benchmark   string
	Best        time.Duration
	Repetitions int
	CreatedAt   time.Time
}

// Store keeps comparison history in a local SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the database at path and applies migrations.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return s, nil
}

func (s *Store) migrate() error {
	query := `
	CREATE TABLE IF NOT EXISTS comparisons (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		benchmark TEXT NOT NULL,
		best_ns INTEGER NOT NULL,
		repetitions INTEGER NOT NULL,
		created_at DATETIME NOT NULL
	);
	`
	_, err := s.db.Exec(query)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save stores every entry of a report with a shared timestamp.
func (s *Store) Save(report runner.Report) error {
	now := time.Now().UTC()
	for _, e := range report.Entries {
		_, err := s.db.Exec(
			`INSERT INTO comparisons (benchmark, best_ns, repetitions, created_at) VALUES (?, ?, ?, ?)`,
			e.Benchmark, e.Best.Nanoseconds(), e.Repetitions, now,
		)
		if err != nil {
			return fmt.Errorf("failed to save entry %s: %w", e.Benchmark, err)
		}
	}
	return nil
}

// Recent returns the most recent rows, newest first.
func (s *Store) Recent(limit int) ([]Row, error) {
	rows, err := s.db.Query(
		`SELECT id, benchmark, best_ns, repetitions, created_at
		 FROM comparisons ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Row
	for rows.Next() {
		var (
			r      Row
			bestNs int64
		)
		if err := rows.Scan(&r.ID, &r.Benchmark, &bestNs, &r.Repetitions, &r.CreatedAt); err != nil {
			return nil, err
		}
		r.Best = time.Duration(bestNs)
		out = append(out, r)
	}
	return out, rows.Err()
}
