package stats

import (
	"fmt"
	"math"

	"github.com/mtreplays/extractor/internal/payload"
)

// ExtractFields builds the flat fact record for the storage boundary.
// A missing owner personal record is fatal here: without it the record
// would be hollow and the file is better rejected whole.
func (n *Normalizer) ExtractFields(c *payload.FactCache) (Record, error) {
	p, ownerID, err := c.Owner()
	if err != nil {
		return Record{}, fmt.Errorf("extract fields: %w", err)
	}
	meta := c.Meta()

	realName := ""
	if info, ok := c.Players()[fmt.Sprint(ownerID)].(map[string]any); ok {
		realName = payload.Str(info, "realName")
	}

	return Record{
		OwnerID:         ownerID,
		PlayerName:      meta.PlayerName,
		RealName:        realName,
		VehicleNation:   meta.Nation,
		VehicleTag:      meta.VehicleTag,
		BattleTime:      meta.BattleTime,
		MapName:         meta.MapName,
		MapDisplayName:  meta.MapDisplayName,
		GameplayID:      meta.GameplayID,
		BattleType:      meta.BattleType,
		BattleTypeLabel: n.BattleTypeLabel(c),
		ArenaUniqueID:   meta.ArenaUniqueID,
		Mastery:         payload.Int(p, "markOfMastery", 0),
		Credits:         payload.Int(p, "originalCredits", 0),
		XP:              payload.Int(p, "originalXP", 0),
		Kills:           payload.Int(p, "kills", 0),
		Damage:          payload.Int(p, "damageDealt", 0),
		Assist:          TotalAssist(p),
		Blocked:         payload.Int(p, "damageBlockedByArmor", 0),
		Achievements:    n.AchievementIDs(c),
		CapturePoints:   payload.Int(p, "capturePoints", 0),
		DefensePoints:   payload.Int(p, "droppedCapturePoints", 0),
		StunDamage:      payload.Int(p, "damageAssistedStun", 0),
		StunCount:       payload.Int(p, "stunNum", 0),
		DistanceKm:      math.Round(float64(payload.Int(p, "mileage", 0))/10.0) / 100.0,
		Outcome:         n.Outcome(c),
	}, nil
}
