// Package gormstorage implements replay persistence and catalog
// lookups on top of a GORM database handle. The SQLite and Postgres
// backends wrap it via composition; the only driver-specific concerns
// live in those packages.
package gormstorage

import (
	"errors"
	"fmt"
	"log/slog"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mtreplays/extractor/internal/catalog"
	"github.com/mtreplays/extractor/internal/model"
)

// Dependencies holds everything the GORM backend needs.
type Dependencies struct {
	DB     *gorm.DB
	Logger *slog.Logger
}

// Backend persists replays through GORM.
type Backend struct {
	db  *gorm.DB
	log *slog.Logger
}

// New creates a new GORM backend.
func New(deps Dependencies) *Backend {
	log := deps.Logger
	if log == nil {
		log = slog.Default()
	}
	return &Backend{db: deps.DB, log: log}
}

// Init migrates the schema.
func (b *Backend) Init() error {
	if err := b.db.AutoMigrate(model.DatabaseModels...); err != nil {
		return fmt.Errorf("migrating schema: %w", err)
	}
	return nil
}

// Close closes the underlying connection.
func (b *Backend) Close() error {
	sqlDB, err := b.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// SaveReplay stores one processed replay: the tank row is created on
// first sight (placeholder if the catalog has never seen the tag), the
// replay row carries the normalized facts plus the raw payload, and
// owner achievements are linked by id. Re-saving the same file name
// updates the existing row instead of duplicating it.
func (b *Backend) SaveReplay(r *model.SavedReplay) error {
	return b.db.Transaction(func(tx *gorm.DB) error {
		tank, err := ensureTank(tx, r.Record.VehicleNation, r.Record.VehicleTag)
		if err != nil {
			return err
		}

		replay := model.Replay{
			FileName:       r.FileName,
			Payload:        datatypes.JSON(r.Payload),
			TankID:         tank.ID,
			OwnerID:        r.Record.OwnerID,
			PlayerName:     r.Record.PlayerName,
			BattleDate:     r.Record.BattleTime,
			MapName:        r.Record.MapName,
			MapDisplayName: r.Record.MapDisplayName,
			GameplayID:     r.Record.GameplayID,
			BattleType:     r.Record.BattleType,
			ArenaUniqueID:  r.Record.ArenaUniqueID,
			Outcome:        r.Record.Outcome.Status,
			Mastery:        r.Record.Mastery,
			Credits:        r.Record.Credits,
			XP:             r.Record.XP,
			Kills:          r.Record.Kills,
			Damage:         r.Record.Damage,
			Assist:         r.Record.Assist,
			Block:          r.Record.Blocked,
		}

		var existing model.Replay
		err = tx.Where("file_name = ?", r.FileName).First(&existing).Error
		switch {
		case err == nil:
			replay.ID = existing.ID
			replay.CreatedAt = existing.CreatedAt
			if err := tx.Save(&replay).Error; err != nil {
				return fmt.Errorf("updating replay: %w", err)
			}
			b.log.Debug("replaced existing replay", "fileName", r.FileName)
		case errors.Is(err, gorm.ErrRecordNotFound):
			if err := tx.Create(&replay).Error; err != nil {
				return fmt.Errorf("creating replay: %w", err)
			}
		default:
			return fmt.Errorf("looking up replay: %w", err)
		}

		if err := tx.Where("replay_id = ?", replay.ID).Delete(&model.ReplayAchievement{}).Error; err != nil {
			return fmt.Errorf("clearing replay achievements: %w", err)
		}
		for _, id := range r.Record.Achievements {
			link := model.ReplayAchievement{ReplayID: replay.ID, AchievementID: id}
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&link).Error; err != nil {
				return fmt.Errorf("linking achievement %d: %w", id, err)
			}
		}
		return nil
	})
}

// ensureTank fetches or creates the tank row for a vehicle tag. A tag
// the catalog has never seen gets the standard placeholder record.
func ensureTank(tx *gorm.DB, nation, tag string) (model.Tank, error) {
	placeholder := catalog.PlaceholderVehicle(tag)
	tank := model.Tank{
		VehicleID: tag,
		Name:      placeholder.Name,
		Nation:    nation,
		Level:     placeholder.Level,
		Type:      placeholder.Type,
	}
	if err := tx.Where(model.Tank{VehicleID: tag}).FirstOrCreate(&tank).Error; err != nil {
		return model.Tank{}, fmt.Errorf("ensuring tank %q: %w", tag, err)
	}
	return tank, nil
}

// LookupVehicle resolves a vehicle tag against the tanks table.
func (b *Backend) LookupVehicle(tag string) (catalog.VehicleInfo, error) {
	var tank model.Tank
	err := b.db.Where("vehicle_id = ?", tag).First(&tank).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return catalog.VehicleInfo{}, catalog.ErrNotFound
	}
	if err != nil {
		return catalog.VehicleInfo{}, fmt.Errorf("looking up vehicle %q: %w", tag, err)
	}
	return catalog.VehicleInfo{
		Tag:    tank.VehicleID,
		Name:   tank.Name,
		Nation: tank.Nation,
		Level:  tank.Level,
		Type:   tank.Type,
	}, nil
}

// LookupAchievements resolves achievement ids against the achievements
// table, ordered by section then in-section order. Unknown ids are
// omitted.
func (b *Backend) LookupAchievements(ids []int64, activeOnly bool) ([]catalog.AchievementInfo, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	q := b.db.Where("achievement_id IN ?", ids)
	if activeOnly {
		q = q.Where("active = ?", true)
	}

	var rows []model.Achievement
	if err := q.Order("section, \"order\"").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("looking up achievements: %w", err)
	}

	out := make([]catalog.AchievementInfo, 0, len(rows))
	for _, row := range rows {
		out = append(out, catalog.AchievementInfo{
			ID:      row.AchievementID,
			Token:   row.Token,
			Name:    row.Name,
			Section: row.Section,
			Order:   row.Order,
			Active:  row.Active,
		})
	}
	return out, nil
}

// SeedTanks inserts or refreshes vehicle catalog rows.
func (b *Backend) SeedTanks(tanks []model.Tank) error {
	if len(tanks) == 0 {
		return nil
	}
	return b.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "vehicle_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "nation", "level", "type"}),
	}).Create(&tanks).Error
}

// SeedAchievements inserts or refreshes achievement catalog rows.
func (b *Backend) SeedAchievements(rows []model.Achievement) error {
	if len(rows) == 0 {
		return nil
	}
	return b.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "achievement_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"token", "name", "description", "section", "order", "section_order", "active"}),
	}).Create(&rows).Error
}
