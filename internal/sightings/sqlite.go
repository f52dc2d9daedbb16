package sightings

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

const sqliteSchema = `
	CREATE TABLE IF NOT EXISTS sightings (
		position   INTEGER PRIMARY KEY,
		species    TEXT    NOT NULL,
		location   TEXT    NOT NULL,
		bird_count INTEGER NOT NULL DEFAULT 1,
		notes      TEXT    NOT NULL DEFAULT ''
	);
`

// SQLiteStore keeps the Collection in a SQLite table, one row per record
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLiteStore opens or creates the database at dbPath
func OpenSQLiteStore(dbPath string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database connection
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Load returns every stored sighting in insertion order
func (s *SQLiteStore) Load() (Collection, error) {
	rows, err := s.db.Query(`SELECT species, location, bird_count, notes FROM sightings ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("failed to query sightings: %w", err)
	}
	defer rows.Close()

	c := Collection{}
	for rows.Next() {
		var sg Sighting
		if err := rows.Scan(&sg.Species, &sg.Location, &sg.Count, &sg.Notes); err != nil {
			return nil, fmt.Errorf("failed to scan sighting: %w", err)
		}
		c = append(c, sg)
	}

	return c, rows.Err()
}

// Save replaces the table contents with c in a single transaction
func (s *SQLiteStore) Save(c Collection) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM sightings`); err != nil {
		return fmt.Errorf("failed to clear sightings: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT INTO sightings (position, species, location, bird_count, notes) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, sg := range c {
		if _, err := stmt.Exec(i+1, sg.Species, sg.Location, sg.Count, sg.Notes); err != nil {
			return fmt.Errorf("failed to insert sighting %d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit sightings: %w", err)
	}
	return nil
}
