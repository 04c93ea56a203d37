package stats

import (
	"strings"

	"github.com/mtreplays/extractor/internal/payload"
)

const unknownMode = "Unknown mode"

// gameplayLabels maps the gameplayID string from replay metadata to a
// display label. The id is authoritative when present.
var gameplayLabels = map[string]string{
	"ctf":             "Standard battle",
	"ctf2":            "Encounter (capture)",
	"ctf30x30":        "Grand battle",
	"assault":         "Assault",
	"assault2":        "Assault",
	"bootcamp":        "Bootcamp",
	"comp7":           "Onslaught",
	"comp7_1":         "Onslaught (defense)",
	"comp7_2":         "Onslaught (attack)",
	"domination":      "Encounter battle",
	"domination3":     "Confrontation",
	"domination30x30": "Grand battle",
	"epic":            "Frontline",
	"escort":          "Escort",
	"fallout":         "Steel hunt",
	"fallout1":        "Steel hunt",
	"fallout2":        "Steel hunt",
	"fallout3":        "Steel hunt",
	"fallout4":        "Domination",
	"fallout5":        "Domination",
	"fallout6":        "Domination",
	"maps_training":   "Topography",
	"nations":         "Confrontation",
	"rts":             "Art of strategy",
	"rts_bootcamp":    "Art of strategy",
	"winback":         "Warm-up",
}

// battleTypeLabels maps the numeric battleType/bonusType codes used as
// a fallback when metadata carries no gameplayID.
var battleTypeLabels = map[int64]string{
	0:     "Special battle",
	1:     "Random battle",
	2:     "Training battle",
	4:     "Combat training",
	5:     "Team battle",
	6:     "Historical battle",
	7:     "Special game mode",
	8:     "Sorties",
	9:     "Clan battle",
	10:    "Team ladder battle",
	11:    "Training battle",
	12:    "Training battle",
	13:    "Domination",
	14:    "Steel hunt",
	15:    "Sortie",
	16:    "Advance",
	17:    "Ranked battle",
	18:    "Domination",
	19:    "Random battle",
	20:    "Training battle",
	21:    "Frontline",
	22:    "Frontline",
	23:    "Steel hunter",
	24:    "Recon mission",
	25:    "Map training",
	26:    "Art of strategy",
	27:    "Frontline",
	28:    "Strategy basics",
	29:    "Steel hunter",
	30:    "Onslaught",
	31:    "Warm-up",
	32:    "Bloggers' battle",
	33:    "Onslaught",
	37:    "Recon mission",
	38:    "Topography",
	42:    "Field trials",
	43:    "Onslaught",
	44:    "Warm-up",
	50:    "Proving ground",
	61:    "Rift",
	31000: "Proving ground",
}

// BattleTypeLabel returns a display name for the battle mode. The
// metadata gameplayID string wins; numeric battleType and bonusType
// codes are the fallback.
func (n *Normalizer) BattleTypeLabel(c *payload.FactCache) string {
	gameplayID := strings.TrimSpace(payload.Str(c.Root(), "gameplayID"))
	if gameplayID != "" {
		if label, ok := gameplayLabels[gameplayID]; ok {
			return label
		}
		return unknownMode
	}

	for _, code := range []any{c.Root()["battleType"], c.Common()["bonusType"]} {
		v, ok := payload.AsInt(code)
		if !ok {
			continue
		}
		if label, ok := battleTypeLabels[v]; ok {
			return label
		}
	}
	return unknownMode
}
