package db

import (
	"database/sql"
	"log"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Comparison is one recorded diff run.
type Comparison struct {
	ID         int64
	LeftPath   string
	RightPath  string
	Format     string
	Outcome    string
	Added      int
	Removed    int
	Changed    int
	ComparedAt time.Time
}

const schema = `
CREATE TABLE IF NOT EXISTS comparisons (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	left_path TEXT NOT NULL,
	right_path TEXT NOT NULL,
	format TEXT DEFAULT 'auto',
	outcome TEXT NOT NULL,
	added INTEGER DEFAULT 0,
	removed INTEGER DEFAULT 0,
	changed INTEGER DEFAULT 0,
	compared_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_comparisons_time ON comparisons(compared_at);
`

// DB wraps a SQLite database connection
type DB struct {
	*sql.DB
}

// Open opens or creates the SQLite database at the given path
func Open(path string) (*DB, error) {
	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// Create schema (for new DBs)
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, err
	}

	// Run migrations (for existing DBs)
	if err := migrate(db); err != nil {
		db.Close()
		return nil, err
	}

	return &DB{db}, nil
}

// migrate runs schema migrations for existing databases
func migrate(db *sql.DB) error {
	// Check if format column exists and add if missing
	var formatCount int
	err := db.QueryRow(`SELECT COUNT(*) FROM pragma_table_info('comparisons') WHERE name='format'`).Scan(&formatCount)
	if err != nil {
		return err
	}
	if formatCount == 0 {
		if _, err := db.Exec(`ALTER TABLE comparisons ADD COLUMN format TEXT DEFAULT 'auto'`); err != nil {
			return err
		}
	}

	return nil
}

// RecordComparison inserts a comparison record
func (db *DB) RecordComparison(c Comparison) error {
	_, err := db.Exec(
		`INSERT INTO comparisons (left_path, right_path, format, outcome, added, removed, changed, compared_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		c.LeftPath, c.RightPath, c.Format, c.Outcome, c.Added, c.Removed, c.Changed,
		time.Now().UTC().Format(time.RFC3339),
	)
	return err
}

// ListComparisons returns the most recent comparisons, newest first
func (db *DB) ListComparisons(limit int) ([]Comparison, error) {
	rows, err := db.Query(
		`SELECT id, left_path, right_path, format, outcome, added, removed, changed, compared_at
		 FROM comparisons ORDER BY compared_at DESC, id DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comparisons []Comparison
	for rows.Next() {
		var c Comparison
		var comparedAt string
		if err := rows.Scan(&c.ID, &c.LeftPath, &c.RightPath, &c.Format, &c.Outcome,
			&c.Added, &c.Removed, &c.Changed, &comparedAt); err != nil {
			return nil, err
		}
		var parseErr error
		c.ComparedAt, parseErr = time.Parse(time.RFC3339, comparedAt)
		if parseErr != nil {
			log.Printf("warning: failed to parse compared_at for comparison %d: %v", c.ID, parseErr)
		}
		comparisons = append(comparisons, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return comparisons, nil
}
