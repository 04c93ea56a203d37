package stats

import (
	"time"
)

// EconomyVariant holds the credit and experience figures for one account
// tier. Base and premium variants are always computed independently so
// that NetResult = BattleEarnings - expenses holds for each on its own.
type EconomyVariant struct {
	Credits              int64 `json:"credits"`
	AchievementCredits   int64 `json:"achievementCredits"`
	BoosterCredits       int64 `json:"boosterCredits"`
	TeamSubsBonusCredits int64 `json:"teamSubsBonusCredits"`
	BattleEarnings       int64 `json:"battleEarnings"`
	NetResult            int64 `json:"netResult"`

	XP             int64 `json:"xp"`
	FreeXP         int64 `json:"freeXP"`
	XPWithFirstWin int64 `json:"xpWithFirstWin"`
}

// EconomyReport is the itemized income and expense breakdown for the
// replay owner's battle.
type EconomyReport struct {
	Base    EconomyVariant `json:"base"`
	Premium EconomyVariant `json:"premium"`

	AutoRepairCost int64 `json:"autoRepairCost"`
	AmmoCost       int64 `json:"ammoCost"`
	EquipmentCost  int64 `json:"equipmentCost"`
	TotalExpenses  int64 `json:"totalExpenses"`

	// Gold-denominated amounts are tracked apart from the credit flow.
	GoldAmmoCost int64 `json:"goldAmmoCost"`
	GoldSpent    int64 `json:"goldSpent"`

	CreditsPenalty    int64 `json:"creditsPenalty"`
	TeamDamagePenalty int64 `json:"teamDamagePenalty"`

	// Bonds (crystal in the payload) flow outside the credit economy.
	// The achievement share is whatever the battle total adds on top of
	// the vehicle's own earning rate.
	Crystal               int64 `json:"crystal"`
	EventCrystal          int64 `json:"eventCrystal"`
	AchievementCrystal    int64 `json:"achievementCrystal"`
	SpecialVehicleCrystal int64 `json:"specialVehicleCrystal"`

	DailyXPFactor10 int64 `json:"dailyXPFactor10"`
	FirstWin        bool  `json:"firstWin"`
	IsPremium       bool  `json:"isPremium"`
}

// Interaction is the owner's aggregate against one opposing vehicle,
// keyed by the opponent's battle-local avatar id.
type Interaction struct {
	AvatarID    int64 `json:"avatarId"`
	Spotted     int64 `json:"spotted"`
	Assist      int64 `json:"assist"`
	Blocked     int64 `json:"blocked"`
	Crits       int64 `json:"crits"`
	Piercings   int64 `json:"piercings"`
	DamageDealt int64 `json:"damageDealt"`
	Kills       int64 `json:"kills"`
}

// InteractionSummary counts opponents per interaction kind plus the
// number of detail keys skipped because they did not parse.
type InteractionSummary struct {
	SpottedTanks   int `json:"spottedTanks"`
	AssistTanks    int `json:"assistTanks"`
	BlockedTanks   int `json:"blockedTanks"`
	CritsTotal     int `json:"critsTotal"`
	PiercingsTotal int `json:"piercingsTotal"`
	DestroyedTanks int `json:"destroyedTanks"`
	SkippedKeys    int `json:"skippedKeys"`
}

// Battle outcome statuses.
const (
	StatusWin  = "win"
	StatusLoss = "loss"
	StatusDraw = "draw"
)

// Outcome is the battle result from the owner's point of view.
type Outcome struct {
	Status       string `json:"status"`
	WinnerTeam   int64  `json:"winnerTeam"`
	OwnerTeam    int64  `json:"ownerTeam"`
	FinishReason int64  `json:"finishReason"`
	Reason       string `json:"reason"`
}

// ParticipantStats is the per-battle statistics shape shared by the
// owner's personal record and the vehicle-stats fallback source.
type ParticipantStats struct {
	Shots         int64   `json:"shots"`
	DirectHits    int64   `json:"directHits"`
	Piercings     int64   `json:"piercings"`
	DamageDealt   int64   `json:"damageDealt"`
	DamageBlocked int64   `json:"damageBlocked"`
	Spotted       int64   `json:"spotted"`
	Kills         int64   `json:"kills"`
	Assist        int64   `json:"assist"`
	XP            int64   `json:"xp"`
	Credits       int64   `json:"credits"`
	Achievements  []int64 `json:"achievements,omitempty"`
}

// Participant is one combatant of the battle. AvatarID is the
// battle-local identity, not the persistent account id.
type Participant struct {
	AvatarID      string           `json:"avatarId"`
	Name          string           `json:"name"`
	ClanTag       string           `json:"clanTag,omitempty"`
	Team          int64            `json:"team"`
	VehicleNation string           `json:"vehicleNation"`
	VehicleTag    string           `json:"vehicleTag"`
	VehicleName   string           `json:"vehicleName"`
	VehicleLevel  int              `json:"vehicleLevel"`
	VehicleType   string           `json:"vehicleType"`
	IsAlive       bool             `json:"isAlive"`
	IsOwner       bool             `json:"isOwner"`
	DeathText     string           `json:"deathText"`
	Stats         ParticipantStats `json:"stats"`
}

// Record is the flat fact record handed to the storage boundary. The
// richer economy and interaction reports stay available on demand
// through the normalizer rather than being embedded here.
type Record struct {
	OwnerID         int64     `json:"ownerId"`
	PlayerName      string    `json:"playerName"`
	RealName        string    `json:"realName,omitempty"`
	VehicleNation   string    `json:"vehicleNation"`
	VehicleTag      string    `json:"vehicleTag"`
	BattleTime      time.Time `json:"battleTime"`
	MapName         string    `json:"mapName"`
	MapDisplayName  string    `json:"mapDisplayName"`
	GameplayID      string    `json:"gameplayId"`
	BattleType      int64     `json:"battleType"`
	BattleTypeLabel string    `json:"battleTypeLabel"`
	ArenaUniqueID   int64     `json:"arenaUniqueId"`
	Mastery         int64     `json:"mastery"`

	Credits      int64   `json:"credits"`
	XP           int64   `json:"xp"`
	Kills        int64   `json:"kills"`
	Damage       int64   `json:"damage"`
	Assist       int64   `json:"assist"`
	Blocked      int64   `json:"blocked"`
	Achievements []int64 `json:"achievements,omitempty"`

	CapturePoints int64 `json:"capturePoints"`
	DefensePoints int64 `json:"defensePoints"`
	StunDamage    int64 `json:"stunDamage"`
	StunCount     int64 `json:"stunCount"`

	// DistanceKm is the odometer reading, reported in meters by the
	// client and rounded to hundredths of a kilometer here.
	DistanceKm float64 `json:"distanceKm"`

	Outcome Outcome `json:"outcome"`
}
