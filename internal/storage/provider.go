package storage

import "github.com/wrenhold/commute/internal/models"

// Provider is the persistence collaborator: one namespaced slot holding the
// full entry collection. Load returns an empty collection when nothing has
// been stored yet; Save overwrites the slot after every mutation.
type Provider interface {
	// Lifecycle
	Init() error
	Load() ([]models.CommuteEntry, error)
	Close() error

	// Collection
	Save([]models.CommuteEntry) error

	// Utils
	GetConfigPath() string
}
