package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/wrenhold/commute/internal/models"
)

// JSONStore persists the collection as a pretty-printed JSON array, the same
// shape the import/export files use.
type JSONStore struct {
	path string
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func (s *JSONStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Check if file already exists
	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	return s.write([]models.CommuteEntry{})
}

func (s *JSONStore) Load() ([]models.CommuteEntry, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			// Nothing stored yet
			return []models.CommuteEntry{}, nil
		}
		return nil, fmt.Errorf("failed to read storage: %w", err)
	}

	var entries []models.CommuteEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse storage: %w", err)
	}
	if entries == nil {
		entries = []models.CommuteEntry{}
	}

	return entries, nil
}

func (s *JSONStore) Save(entries []models.CommuteEntry) error {
	return s.write(entries)
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) write(entries []models.CommuteEntry) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}
