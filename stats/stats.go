// Package stats persists per-render wall-clock timings so later batches can
// estimate how long they will take before committing to them.
package stats

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS renders (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	seconds     REAL NOT NULL,
	recorded_at TEXT NOT NULL DEFAULT (datetime('now'))
);`

// Store records render timings in a SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the timing database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open stats database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize stats database: %w", err)
	}
	return &Store{db: db}, nil
}

// Record stores one render's duration in seconds.
func (s *Store) Record(seconds float64) error {
	if _, err := s.db.Exec("INSERT INTO renders (seconds) VALUES (?)", seconds); err != nil {
		return fmt.Errorf("failed to record render time: %w", err)
	}
	return nil
}

// Average returns the mean render time across all recorded renders. The
// second return is false when nothing has been recorded yet.
func (s *Store) Average() (float64, bool, error) {
	var avg sql.NullFloat64
	if err := s.db.QueryRow("SELECT AVG(seconds) FROM renders").Scan(&avg); err != nil {
		return 0, false, fmt.Errorf("failed to read average render time: %w", err)
	}
	if !avg.Valid {
		return 0, false, nil
	}
	return avg.Float64, true, nil
}

// Count returns how many renders have been recorded.
func (s *Store) Count() (int, error) {
	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM renders").Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count renders: %w", err)
	}
	return n, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
