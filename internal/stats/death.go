package stats

import (
	"fmt"

	"github.com/mtreplays/extractor/internal/payload"
)

const (
	survivedText  = "Survived"
	destroyedText = "Destroyed"
)

// deathReasonText maps the client's deathReason codes. -1 means the
// vehicle survived and is handled by the callers.
var deathReasonText = map[int64]string{
	0: "by shot",
	1: "by ramming",
	2: "by fire",
	3: "by overturn or drowning",
}

// KillerName resolves the nickname of whoever destroyed the owner,
// looked up by the personal killerID in the avatars view. Returns ""
// when the owner survived or the killer is unknown. fakeName covers
// anonymized opponents.
func (n *Normalizer) KillerName(c *payload.FactCache) string {
	killerID := payload.Int(c.Personal(), "killerID", 0)
	if killerID <= 0 {
		return ""
	}
	killer := payload.Map(c.Avatars(), fmt.Sprint(killerID))
	if name := payload.Str(killer, "name"); name != "" {
		return name
	}
	if name := payload.Str(killer, "fakeName"); name != "" {
		return name
	}
	return fmt.Sprint(killerID)
}

// DeathText builds the owner's survival status line, e.g. "Survived"
// or "Destroyed by shot (SomePlayer)".
func (n *Normalizer) DeathText(c *payload.FactCache) string {
	reason := payload.Int(c.Personal(), "deathReason", -1)
	if reason == -1 {
		return survivedText
	}

	text := destroyedText
	if suffix, ok := deathReasonText[reason]; ok {
		text += " " + suffix
	}
	if killer := n.KillerName(c); killer != "" {
		text += " (" + killer + ")"
	}
	return text
}

// deathText builds the survival status line for an arbitrary
// participant from its vehicle stats, same wording as the owner's.
func (n *Normalizer) deathText(c *payload.FactCache, vehicleStats map[string]any) string {
	reason := payload.Int(vehicleStats, "deathReason", -1)
	if reason == -1 {
		return survivedText
	}

	text := destroyedText
	if suffix, ok := deathReasonText[reason]; ok {
		text += " " + suffix
	}
	killerID := payload.Int(vehicleStats, "killerID", 0)
	if killerID > 0 {
		killer := payload.Map(c.Avatars(), fmt.Sprint(killerID))
		name := payload.Str(killer, "name")
		if name == "" {
			name = payload.Str(killer, "fakeName")
		}
		if name != "" {
			text += " (" + name + ")"
		}
	}
	return text
}
