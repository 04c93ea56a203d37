package storage

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/rs/zerolog"

	"github.com/mtreplays/extractor/internal/config"
	"github.com/mtreplays/extractor/internal/database"
	gormstorage "github.com/mtreplays/extractor/internal/storage/gorm"
	"github.com/mtreplays/extractor/internal/storage/memory"
	"github.com/mtreplays/extractor/internal/storage/postgres"
	sqlitestorage "github.com/mtreplays/extractor/internal/storage/sqlite"
)

// NewBackend creates a storage backend based on configuration. The
// postgres backend degrades to the configured SQLite database when the
// server is unreachable, so batch runs survive an offline database.
func NewBackend(cfg config.StorageConfig, logger *slog.Logger) (Backend, error) {
	switch cfg.Type {
	case "postgres":
		mgr := database.NewManager(zerolog.New(os.Stdout).With().Timestamp().Logger())
		mgr.SqliteFilePath = cfg.SQLite.Path
		if err := mgr.Connect(); err != nil {
			return nil, fmt.Errorf("connecting to database: %w", err)
		}
		deps := gormstorage.Dependencies{DB: mgr.DB, Logger: logger}
		if mgr.ShouldSaveLocal {
			logger.Warn("Postgres unavailable, falling back to SQLite", "path", cfg.SQLite.Path)
			return sqlitestorage.New(cfg.SQLite, deps), nil
		}
		return postgres.New(mgr.DB, deps), nil
	case "sqlite":
		db, err := database.GetSqliteDBStandalone(cfg.SQLite.Path)
		if err != nil {
			return nil, fmt.Errorf("opening sqlite db: %w", err)
		}
		return sqlitestorage.New(cfg.SQLite, gormstorage.Dependencies{DB: db, Logger: logger}), nil
	case "memory":
		return memory.New(cfg.Memory), nil
	default:
		return nil, fmt.Errorf("unknown storage type: %s", cfg.Type)
	}
}
