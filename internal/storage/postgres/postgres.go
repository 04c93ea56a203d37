// Package postgres implements replay storage on GORM/PostgreSQL. All
// persistence logic lives in the embedded GORM backend; this package
// only carries the driver-specific connection concerns.
package postgres

import (
	"gorm.io/gorm"

	"github.com/mtreplays/extractor/internal/database"
	gormstorage "github.com/mtreplays/extractor/internal/storage/gorm"
)

// Backend wraps the GORM backend for PostgreSQL.
type Backend struct {
	*gormstorage.Backend
}

// New creates a new PostgreSQL storage backend over an already-opened
// database handle.
func New(db *gorm.DB, deps gormstorage.Dependencies) *Backend {
	deps.DB = db
	return &Backend{Backend: gormstorage.New(deps)}
}

// Open is a convenience constructor that connects using the viper
// configuration and wraps the handle.
func Open(deps gormstorage.Dependencies) (*Backend, error) {
	db, err := database.GetPostgresDBStandalone()
	if err != nil {
		return nil, err
	}
	return New(db, deps), nil
}
