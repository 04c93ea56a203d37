// Package memory stores processed replays in memory and exports them
// to JSON files on demand. It is the backend of choice for tests and
// for one-shot extraction runs that feed another tool.
package memory

import (
	"sync"

	"github.com/mtreplays/extractor/internal/catalog"
	"github.com/mtreplays/extractor/internal/config"
	"github.com/mtreplays/extractor/internal/model"
)

// Backend keeps replays in memory, keyed by file name.
type Backend struct {
	cfg config.MemoryConfig

	replays map[string]*model.SavedReplay
	catalog *catalog.Memory
	mu      sync.RWMutex
}

// New creates a new memory backend.
func New(cfg config.MemoryConfig) *Backend {
	return &Backend{
		cfg:     cfg,
		replays: make(map[string]*model.SavedReplay),
		catalog: catalog.NewMemory(),
	}
}

// Init initializes the backend.
func (b *Backend) Init() error {
	return nil
}

// Close exports collected replays to the configured output directory.
func (b *Backend) Close() error {
	if b.cfg.OutputDir == "" {
		return nil
	}
	return b.exportJSON()
}

// SaveReplay stores one processed replay. Re-saving a file name
// replaces the previous entry.
func (b *Backend) SaveReplay(r *model.SavedReplay) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.replays[r.FileName] = r
	return nil
}

// Replays returns a snapshot of the stored replays.
func (b *Backend) Replays() []*model.SavedReplay {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]*model.SavedReplay, 0, len(b.replays))
	for _, r := range b.replays {
		out = append(out, r)
	}
	return out
}

// Catalog exposes the mutable in-memory catalog for seeding.
func (b *Backend) Catalog() *catalog.Memory {
	return b.catalog
}

func (b *Backend) LookupVehicle(tag string) (catalog.VehicleInfo, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.catalog.LookupVehicle(tag)
}

func (b *Backend) LookupAchievements(ids []int64, activeOnly bool) ([]catalog.AchievementInfo, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.catalog.LookupAchievements(ids, activeOnly)
}
