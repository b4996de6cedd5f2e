package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// Log records sessions computed by the report CLI so repeated runs over
// the same export do not double-count them.
type Log struct {
	db *sql.DB
}

// Open opens (or creates) the SQLite history database at dir/history.db.
func Open(dir string) (*Log, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating history dir %s: %w", dir, err)
	}

	dbPath := filepath.Join(dir, "history.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening history db: %w", err)
	}

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS computed_sessions (
		package_hash  TEXT PRIMARY KEY,
		activity      TEXT NOT NULL,
		summary       TEXT NOT NULL,
		calories_kcal REAL NOT NULL,
		computed_at   TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating history table: %w", err)
	}

	return &Log{db: db}, nil
}

// Seen checks whether a package with this hash has been recorded before.
func (l *Log) Seen(packageHash string) (bool, error) {
	var count int
	err := l.db.QueryRow(
		`SELECT COUNT(*) FROM computed_sessions WHERE package_hash = ?`, packageHash,
	).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Record stores a computed session keyed by its package hash.
func (l *Log) Record(packageHash, activity, summary string, calories float64) error {
	_, err := l.db.Exec(
		`INSERT OR REPLACE INTO computed_sessions (package_hash, activity, summary, calories_kcal)
		 VALUES (?, ?, ?, ?)`,
		packageHash, activity, summary, calories,
	)
	return err
}

// Close closes the history database.
func (l *Log) Close() error {
	return l.db.Close()
}
