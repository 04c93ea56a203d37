package stats

import (
	"math"

	"github.com/mtreplays/extractor/internal/payload"
)

// Economy computes the owner's itemized income and expense report.
// Base and premium variants are computed independently. The payload's
// subtotal fields are already premium-scaled: they feed the premium
// variant and are never mixed into the base one.
func (n *Normalizer) Economy(c *payload.FactCache) EconomyReport {
	p := c.Personal()
	common := c.Common()

	originalCredits := payload.Int(p, "originalCredits", 0)
	achievementCredits := payload.Int(p, "achievementCredits", 0)
	teamSubsBonus := payload.Int(p, "teamSubsBonusCredits", 0)
	creditsPenalty := payload.Int(p, "creditsPenalty", 0)
	teamDamagePenalty := payload.Int(p, "originalCreditsPenalty", 0)

	// The payload reports booster credits already scaled for the
	// premium variant; the base amount is reconstructed from the
	// booster factor applied to the unscaled battle credits.
	premiumBoosterCredits := payload.Int(p, "boosterCredits", 0)
	boosterFactor100 := payload.Int(p, "boosterCreditsFactor100", 0)
	baseBoosterCredits := int64(math.Round(float64(originalCredits) * float64(boosterFactor100) / 100.0))

	// The payload's subtotalCredits is the client's own premium-scaled
	// battle credits; when a replay carries it, it wins over reapplying
	// the factor ourselves.
	premiumCreditFactor := float64(payload.Int(p, "premiumCreditsFactor100", 100)) / 100.0
	premiumCredits, havePremium := payload.AsInt(p["subtotalCredits"])
	if !havePremium {
		premiumCredits = int64(math.Round(float64(originalCredits) * premiumCreditFactor))
	}
	premiumAchievementCredits := achievementCredits
	if achievementCredits > 0 {
		premiumAchievementCredits = int64(math.Round(float64(achievementCredits) * premiumCreditFactor))
	}

	repairCost := payload.Int(p, "autoRepairCost", 0)
	ammoCost, goldAmmoCost := splitLoadCost(p["autoLoadCost"])
	equipmentCost := sumCosts(payload.List(p, "autoEquipCost"))
	totalExpenses := repairCost + ammoCost + equipmentCost

	goldSpent := payload.Int(p, "gold", 0) - payload.Int(p, "originalGold", 0)
	if goldSpent < 0 {
		goldSpent = -goldSpent
	} else {
		goldSpent = 0
	}

	crystal := payload.Int(p, "crystal", 0)
	eventCrystal := payload.Int(p, "eventCrystal", 0)
	originalCrystal := payload.Int(p, "originalCrystal", 0)
	achievementCrystal := int64(0)
	if crystal > originalCrystal {
		achievementCrystal = crystal - originalCrystal
	}
	specialVehicleCrystal := originalCrystal
	if specialVehicleCrystal < 0 {
		specialVehicleCrystal = 0
	}

	ownerTeam := c.OwnerTeam()
	winnerTeam := payload.Int(common, "winnerTeam", 0)
	dailyFactor10 := payload.Int(p, "dailyXPFactor10", 10)
	firstWin := winnerTeam != 0 && ownerTeam == winnerTeam && dailyFactor10 >= 20

	originalXP := payload.Int(p, "originalXP", 0)
	originalFreeXP := payload.Int(p, "originalFreeXP", 0)
	premiumXPFactor := float64(payload.Int(p, "premiumXPFactor100", 100)) / 100.0
	premiumXP := int64(math.Ceil(float64(originalXP) * premiumXPFactor))
	premiumFreeXP := int64(math.Ceil(float64(originalFreeXP) * premiumXPFactor))

	base := EconomyVariant{
		Credits:              originalCredits,
		AchievementCredits:   achievementCredits,
		BoosterCredits:       baseBoosterCredits,
		TeamSubsBonusCredits: teamSubsBonus,
		XP:                   originalXP,
		FreeXP:               originalFreeXP,
		XPWithFirstWin:       originalXP,
	}
	premium := EconomyVariant{
		Credits:              premiumCredits,
		AchievementCredits:   premiumAchievementCredits,
		BoosterCredits:       premiumBoosterCredits,
		TeamSubsBonusCredits: teamSubsBonus,
		XP:                   premiumXP,
		FreeXP:               premiumFreeXP,
		XPWithFirstWin:       premiumXP,
	}
	if firstWin {
		// The first-victory multiplier never applies to free experience.
		base.XPWithFirstWin = originalXP * 2
		premium.XPWithFirstWin = premiumXP * 2
	}

	for _, v := range []*EconomyVariant{&base, &premium} {
		v.BattleEarnings = v.Credits + v.AchievementCredits + v.BoosterCredits + v.TeamSubsBonusCredits - teamDamagePenalty
		v.NetResult = v.BattleEarnings - totalExpenses
	}

	return EconomyReport{
		Base:              base,
		Premium:           premium,
		AutoRepairCost:    repairCost,
		AmmoCost:          ammoCost,
		EquipmentCost:     equipmentCost,
		TotalExpenses:     totalExpenses,
		GoldAmmoCost:      goldAmmoCost,
		GoldSpent:         goldSpent,
		CreditsPenalty:    creditsPenalty,
		TeamDamagePenalty: teamDamagePenalty,

		Crystal:               crystal,
		EventCrystal:          eventCrystal,
		AchievementCrystal:    achievementCrystal,
		SpecialVehicleCrystal: specialVehicleCrystal,

		DailyXPFactor10: dailyFactor10,
		FirstWin:        firstWin,
		IsPremium:       premiumCreditFactor > 1.0,
	}
}

// splitLoadCost reads the two-element autoLoadCost list: credits first,
// gold second. Older payloads collapse it to a single credit number.
func splitLoadCost(v any) (credits, gold int64) {
	costs, ok := v.([]any)
	if !ok {
		credits, _ = payload.AsInt(v)
		return credits, 0
	}
	if len(costs) > 0 {
		credits, _ = payload.AsInt(costs[0])
	}
	if len(costs) > 1 {
		gold, _ = payload.AsInt(costs[1])
	}
	return credits, gold
}

func sumCosts(costs []any) int64 {
	var total int64
	for _, c := range costs {
		v, _ := payload.AsInt(c)
		total += v
	}
	return total
}
