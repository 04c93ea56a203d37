package stats

import (
	"math/bits"
	"sort"
	"strconv"
	"strings"

	"github.com/mtreplays/extractor/internal/payload"
)

// parseTargetAvatarID extracts the avatar id from a details key shaped
// like "(46118422,0)". The second tuple element is a slot index and is
// ignored. Returns false for any other shape.
func parseTargetAvatarID(key string) (int64, bool) {
	s := strings.TrimSpace(key)
	if len(s) < 5 || s[0] != '(' || s[len(s)-1] != ')' {
		return 0, false
	}
	parts := strings.Split(s[1:len(s)-1], ",")
	if len(parts) != 2 {
		return 0, false
	}
	id, err := strconv.ParseInt(strings.TrimSpace(parts[0]), 10, 64)
	if err != nil || id < 0 {
		return 0, false
	}
	if _, err := strconv.ParseInt(strings.TrimSpace(parts[1]), 10, 64); err != nil {
		return 0, false
	}
	return id, true
}

// Interactions folds the owner's per-target details map into one
// Interaction per opposing avatar plus summary counts, in a single
// pass. Keys that do not parse as "(avatarId,slot)" are skipped and
// counted, never fatal.
func (n *Normalizer) Interactions(c *payload.FactCache) ([]Interaction, InteractionSummary) {
	details := c.Details()

	rows := make([]Interaction, 0, len(details))
	var summary InteractionSummary

	for key, raw := range details {
		entry, ok := raw.(map[string]any)
		if !ok {
			summary.SkippedKeys++
			continue
		}
		id, ok := parseTargetAvatarID(key)
		if !ok {
			summary.SkippedKeys++
			continue
		}

		critsMask := uint64(payload.Int(entry, "crits", 0))
		row := Interaction{
			AvatarID:    id,
			Spotted:     payload.Int(entry, "spotted", 0),
			Assist:      TotalAssist(entry),
			Blocked:     payload.Int(entry, "rickochetsReceived", 0) + payload.Int(entry, "noDamageDirectHitsReceived", 0),
			Crits:       int64(bits.OnesCount64(critsMask)),
			Piercings:   payload.Int(entry, "piercings", 0),
			DamageDealt: payload.Int(entry, "damageDealt", 0),
			Kills:       payload.Int(entry, "targetKills", 0),
		}

		if row.Spotted > 0 {
			summary.SpottedTanks++
		}
		if row.Assist > 0 {
			summary.AssistTanks++
		}
		if row.Blocked > 0 {
			summary.BlockedTanks++
		}
		if row.Kills > 0 {
			summary.DestroyedTanks++
		}
		summary.CritsTotal += int(row.Crits)
		summary.PiercingsTotal += int(row.Piercings)

		rows = append(rows, row)
	}

	if summary.SkippedKeys > 0 {
		n.logger.Debug("skipped unparseable details keys", "count", summary.SkippedKeys)
	}

	sort.Slice(rows, func(i, j int) bool { return rows[i].AvatarID < rows[j].AvatarID })
	return rows, summary
}
