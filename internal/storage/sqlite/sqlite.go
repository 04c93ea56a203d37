// Package sqlitestorage implements replay storage on a local SQLite
// database. It wraps the GORM backend via composition; the only
// SQLite-specific concern is dumping an in-memory database to disk on
// close when no file path was configured.
package sqlitestorage

import (
	"gorm.io/gorm"

	"github.com/mtreplays/extractor/internal/config"
	"github.com/mtreplays/extractor/internal/database"
	gormstorage "github.com/mtreplays/extractor/internal/storage/gorm"
)

// Backend wraps the GORM backend for SQLite-specific behavior.
type Backend struct {
	*gormstorage.Backend
	cfg config.SQLiteConfig
	db  *gorm.DB
}

// New creates a new SQLite storage backend over an already-opened
// database handle.
func New(cfg config.SQLiteConfig, deps gormstorage.Dependencies) *Backend {
	return &Backend{
		Backend: gormstorage.New(deps),
		cfg:     cfg,
		db:      deps.DB,
	}
}

// Close dumps an in-memory database to disk when a dump path is
// configured, then closes the embedded GORM backend.
func (b *Backend) Close() error {
	if b.cfg.Path == "" && b.cfg.DumpPath != "" {
		if err := database.DumpMemoryDBToDisk(b.db, b.cfg.DumpPath); err != nil {
			return err
		}
	}
	return b.Backend.Close()
}

// Open is a convenience constructor that opens the database at the
// configured path (in-memory when empty) and wraps it.
func Open(cfg config.SQLiteConfig, deps gormstorage.Dependencies) (*Backend, error) {
	db, err := database.GetSqliteDBStandalone(cfg.Path)
	if err != nil {
		return nil, err
	}
	deps.DB = db
	return New(cfg, deps), nil
}
