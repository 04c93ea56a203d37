package stats

import (
	"github.com/mtreplays/extractor/internal/payload"
)

// AchievementIDs reads the owner's achievements list. Entries that do
// not coerce to an integer are dropped silently, since some client
// versions mix vendor-specific markers into the list.
func (n *Normalizer) AchievementIDs(c *payload.FactCache) []int64 {
	return coerceIDs(payload.List(c.Personal(), "achievements"))
}

func coerceIDs(raw []any) []int64 {
	if len(raw) == 0 {
		return nil
	}
	ids := make([]int64, 0, len(raw))
	for _, v := range raw {
		if id, ok := payload.AsInt(v); ok {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return nil
	}
	return ids
}
