// Package schedule owns the canonical entry collection. Every mutation is
// mirrored to the persistence collaborator before it returns.
package schedule

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/wrenhold/commute/internal/constants"
	"github.com/wrenhold/commute/internal/models"
	"github.com/wrenhold/commute/internal/storage"
)

type Store struct {
	provider storage.Provider
	entries  []models.CommuteEntry
	loaded   bool
}

func NewStore(provider storage.Provider) *Store {
	return &Store{
		provider: provider,
	}
}

func (s *Store) Init() error {
	return s.provider.Init()
}

func (s *Store) Load() error {
	entries, err := s.provider.Load()
	if err != nil {
		return err
	}
	s.entries = entries
	s.loaded = true
	return nil
}

func (s *Store) Close() error {
	return s.provider.Close()
}

func (s *Store) GetConfigPath() string {
	return s.provider.GetConfigPath()
}

// Entries returns a snapshot copy of the collection.
func (s *Store) Entries() []models.CommuteEntry {
	out := make([]models.CommuteEntry, len(s.entries))
	for i, e := range s.entries {
		out[i] = e.Clone()
	}
	return out
}

func (s *Store) Get(id string) (models.CommuteEntry, bool) {
	for _, e := range s.entries {
		if e.ID == id {
			return e.Clone(), true
		}
	}
	return models.CommuteEntry{}, false
}

// Create assigns a fresh id, defaults the reminder lead time to 5 minutes
// when unset, validates, appends, and persists.
func (s *Store) Create(draft models.CommuteEntry) (models.CommuteEntry, error) {
	if !s.loaded {
		return models.CommuteEntry{}, fmt.Errorf("store not loaded")
	}

	entry := draft.Clone()
	entry.ID = uuid.New().String()
	if entry.ReminderMin == 0 {
		entry.ReminderMin = constants.DefaultReminderMin
	}

	if err := entry.Validate(); err != nil {
		return models.CommuteEntry{}, err
	}

	s.entries = append(s.entries, entry)
	if err := s.persist(); err != nil {
		return models.CommuteEntry{}, err
	}
	return entry.Clone(), nil
}

// Update merges the patch into the matching entry. An unknown id is a
// silent no-op.
func (s *Store) Update(id string, patch models.EntryPatch) error {
	if !s.loaded {
		return fmt.Errorf("store not loaded")
	}

	for i := range s.entries {
		if s.entries[i].ID != id {
			continue
		}
		updated := s.entries[i].Clone()
		patch.Apply(&updated)
		if err := updated.Validate(); err != nil {
			return err
		}
		s.entries[i] = updated
		break
	}

	return s.persist()
}

// Remove deletes the matching entry if present.
func (s *Store) Remove(id string) error {
	if !s.loaded {
		return fmt.Errorf("store not loaded")
	}

	for i := range s.entries {
		if s.entries[i].ID == id {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			break
		}
	}

	return s.persist()
}

// ToggleActive flips the active flag of the matching entry.
func (s *Store) ToggleActive(id string) error {
	if !s.loaded {
		return fmt.Errorf("store not loaded")
	}

	for i := range s.entries {
		if s.entries[i].ID == id {
			s.entries[i].IsActive = !s.entries[i].IsActive
			break
		}
	}

	return s.persist()
}

// ImportMerge appends candidates that carry an id, name, and departure time
// and whose id does not collide with an existing entry. Existing entries are
// never overwritten. Returns how many candidates were added and how many
// were skipped.
func (s *Store) ImportMerge(candidates []models.CommuteEntry) (added, skipped int, err error) {
	if !s.loaded {
		return 0, 0, fmt.Errorf("store not loaded")
	}

	existing := make(map[string]struct{}, len(s.entries))
	for _, e := range s.entries {
		existing[e.ID] = struct{}{}
	}

	for _, c := range candidates {
		if c.ID == "" || c.Name == "" || c.DepartureTime == "" {
			skipped++
			continue
		}
		if _, ok := existing[c.ID]; ok {
			skipped++
			continue
		}
		existing[c.ID] = struct{}{}
		s.entries = append(s.entries, c.Clone())
		added++
	}

	if added > 0 {
		if err := s.persist(); err != nil {
			return 0, 0, err
		}
	}

	return added, skipped, nil
}

// ExportSnapshot returns a serializable copy of the full collection.
func (s *Store) ExportSnapshot() []models.CommuteEntry {
	return s.Entries()
}

func (s *Store) persist() error {
	if err := s.provider.Save(s.entries); err != nil {
		return fmt.Errorf("failed to persist schedule: %w", err)
	}
	return nil
}
