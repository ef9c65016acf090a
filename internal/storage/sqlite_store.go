package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/wrenhold/commute/internal/models"
)

const schema = `
CREATE TABLE IF NOT EXISTS entries (
	id             TEXT PRIMARY KEY,
	name           TEXT NOT NULL,
	departure_time TEXT NOT NULL,
	active_days    TEXT NOT NULL,
	active         INTEGER NOT NULL DEFAULT 1,
	reminder_min   INTEGER NOT NULL DEFAULT 5
);
`

// SQLiteStore persists the collection in a single-table SQLite database.
type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{
		path: path,
	}
}

func (s *SQLiteStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := s.open(); err != nil {
		return err
	}

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

func (s *SQLiteStore) open() error {
	if s.db != nil {
		return nil
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db
	return nil
}

func (s *SQLiteStore) Load() ([]models.CommuteEntry, error) {
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		// Nothing stored yet
		return []models.CommuteEntry{}, nil
	}

	if err := s.open(); err != nil {
		return nil, err
	}

	// Init may not have run against an older database file
	if _, err := s.db.Exec(schema); err != nil {
		return nil, fmt.Errorf("failed to ensure schema: %w", err)
	}

	rows, err := s.db.Query(`
		SELECT id, name, departure_time, active_days, active, reminder_min
		FROM entries
		ORDER BY departure_time ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query entries: %w", err)
	}
	defer rows.Close()

	entries := []models.CommuteEntry{}
	for rows.Next() {
		var e models.CommuteEntry
		var daysJSON string

		if err := rows.Scan(&e.ID, &e.Name, &e.DepartureTime, &daysJSON, &e.IsActive, &e.ReminderMin); err != nil {
			return nil, fmt.Errorf("failed to scan entry: %w", err)
		}

		if err := json.Unmarshal([]byte(daysJSON), &e.ActiveDays); err != nil {
			return nil, fmt.Errorf("failed to unmarshal active days: %w", err)
		}

		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating entries: %w", err)
	}

	return entries, nil
}

// Save replaces the stored collection in one transaction.
func (s *SQLiteStore) Save(entries []models.CommuteEntry) error {
	if err := s.open(); err != nil {
		return err
	}
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM entries`); err != nil {
		return fmt.Errorf("failed to clear entries: %w", err)
	}

	for _, e := range entries {
		daysJSON, err := json.Marshal(e.ActiveDays)
		if err != nil {
			return fmt.Errorf("failed to marshal active days: %w", err)
		}

		_, err = tx.Exec(`
			INSERT INTO entries (id, name, departure_time, active_days, active, reminder_min)
			VALUES (?, ?, ?, ?, ?, ?)
		`, e.ID, e.Name, e.DepartureTime, string(daysJSON), e.IsActive, e.ReminderMin)
		if err != nil {
			return fmt.Errorf("failed to insert entry: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit entries: %w", err)
	}

	return nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}
