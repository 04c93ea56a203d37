package database

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mtreplays/extractor/internal/model"
)

func TestManager_SqliteSetup(t *testing.T) {
	m := NewManager(zerolog.New(io.Discard))

	db, err := m.GetSqliteDB(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	m.DB = db

	require.NoError(t, m.Setup())

	// Migrated schema accepts a row for every model.
	require.NoError(t, db.Create(&model.Tank{VehicleID: "R01_IS", Name: "IS"}).Error)

	var count int64
	require.NoError(t, db.Model(&model.Tank{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestDumpMemoryDBToDisk(t *testing.T) {
	db, err := GetSqliteDBStandalone("")
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.Tank{}))
	require.NoError(t, db.Create(&model.Tank{VehicleID: "G01_Tiger", Name: "Tiger I"}).Error)

	path := filepath.Join(t.TempDir(), "dump.db")
	require.NoError(t, DumpMemoryDBToDisk(db, path))

	dumped, err := GetSqliteDBStandalone(path)
	require.NoError(t, err)

	var count int64
	require.NoError(t, dumped.Model(&model.Tank{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestDumpMemoryDBToDisk_EmptyPath(t *testing.T) {
	db, err := GetSqliteDBStandalone("")
	require.NoError(t, err)
	assert.Error(t, DumpMemoryDBToDisk(db, ""))
}
