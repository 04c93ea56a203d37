package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/mtreplays/extractor/internal/stats"
)

// SavedReplay is one fully processed replay handed to a storage
// backend: the normalized fact record plus the raw extracted JSON pair.
type SavedReplay struct {
	FileName string
	Payload  []byte // the "[first,second]" JSON pair
	Record   stats.Record
}

// DatabaseModels is a list of all the structs exported here which
// represent tables in the database schema.
var DatabaseModels = []interface{}{
	&Tank{},
	&Achievement{},
	&Replay{},
	&ReplayAchievement{},
}

// Tank is one entry of the vehicle catalog, keyed by the
// nation-stripped identifier from the client.
type Tank struct {
	gorm.Model
	VehicleID string `json:"vehicleId" gorm:"size:64;uniqueIndex"`
	Name      string `json:"name" gorm:"size:128"`
	Nation    string `json:"nation" gorm:"size:32"`
	Level     int    `json:"level"`
	Type      string `json:"type" gorm:"size:64"`
}

// Achievement is one entry of the achievement catalog. The primary key
// is the numeric id the client reports in replays.
type Achievement struct {
	AchievementID int64  `json:"achievementId" gorm:"primaryKey;autoIncrement:false"`
	Token         string `json:"token" gorm:"size:100;index"`
	Name          string `json:"name" gorm:"size:200"`
	Description   string `json:"description"`
	Section       string `json:"section" gorm:"size:50;index"`
	Order         int    `json:"order"`
	SectionOrder  int    `json:"sectionOrder"`
	Active        bool   `json:"active" gorm:"default:true"`
	CreatedAt     time.Time
}

// Replay is one processed replay file with its normalized facts and the
// raw extracted payload.
type Replay struct {
	gorm.Model
	FileName string         `json:"fileName" gorm:"size:255;uniqueIndex"`
	Payload  datatypes.JSON `json:"payload"`

	TankID uint `json:"tankId" gorm:"index:idx_replays_tank_battle"`
	Tank   Tank `json:"-"`

	OwnerID    int64  `json:"ownerId" gorm:"index"`
	PlayerName string `json:"playerName" gorm:"size:128"`

	BattleDate     time.Time `json:"battleDate" gorm:"index:idx_replays_battle_damage;index:idx_replays_tank_battle"`
	MapName        string    `json:"mapName" gorm:"size:128"`
	MapDisplayName string    `json:"mapDisplayName" gorm:"size:128"`
	GameplayID     string    `json:"gameplayId" gorm:"size:64"`
	BattleType     int64     `json:"battleType"`
	ArenaUniqueID  int64     `json:"arenaUniqueId" gorm:"index"`
	Outcome        string    `json:"outcome" gorm:"size:8"`

	Mastery int64 `json:"mastery"`
	Credits int64 `json:"credits"`
	XP      int64 `json:"xp"`
	Kills   int64 `json:"kills"`
	Damage  int64 `json:"damage" gorm:"index:idx_replays_battle_damage"`
	Assist  int64 `json:"assist"`
	Block   int64 `json:"block"`
}

// ReplayAchievement links a replay to an achievement the owner earned
// in that battle.
type ReplayAchievement struct {
	ReplayID      uint  `json:"replayId" gorm:"primaryKey;autoIncrement:false"`
	AchievementID int64 `json:"achievementId" gorm:"primaryKey;autoIncrement:false"`
}
