package storage

import (
	"github.com/mtreplays/extractor/internal/catalog"
	"github.com/mtreplays/extractor/internal/model"
)

// Backend is the interface all storage implementations must satisfy.
// Backends also serve as the reference-data catalogs the normalizer
// consults, including the create-placeholder-on-miss policy for
// unknown vehicle tags.
type Backend interface {
	// Lifecycle
	Init() error
	Close() error

	// Replay persistence
	SaveReplay(r *model.SavedReplay) error

	// Reference data lookups
	catalog.Vehicles
	catalog.Achievements
}
