package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBattleTypeLabel(t *testing.T) {
	n := newTestNormalizer()

	cases := []struct {
		name   string
		root   map[string]any
		common map[string]any
		want   string
	}{
		{
			name: "gameplay id wins",
			root: map[string]any{"gameplayID": "ctf", "battleType": 21},
			want: "Standard battle",
		},
		{
			name: "unknown gameplay id does not fall back",
			root: map[string]any{"gameplayID": "mystery_mode", "battleType": 1},
			want: unknownMode,
		},
		{
			name: "numeric battle type fallback",
			root: map[string]any{"battleType": 17},
			want: "Ranked battle",
		},
		{
			name:   "bonus type fallback",
			root:   map[string]any{},
			common: map[string]any{"bonusType": 21},
			want:   "Frontline",
		},
		{
			name: "nothing known",
			root: map[string]any{},
			want: unknownMode,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			root := ownerRoot()
			for k, v := range tc.root {
				root[k] = v
			}
			results := ownerResults(map[string]any{})
			if tc.common != nil {
				results["common"] = tc.common
			}
			cache := newTestCache(t, root, results, map[string]any{})
			assert.Equal(t, tc.want, n.BattleTypeLabel(cache))
		})
	}
}
