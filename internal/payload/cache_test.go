package payload

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resolvedFixture(t *testing.T) *FactCache {
	t.Helper()
	cache, err := newTestResolver().Resolve(ownerFixture(12345))
	require.NoError(t, err)
	return cache
}

func TestFactCache_ViewsAreIdempotent(t *testing.T) {
	cache := resolvedFixture(t)

	first := cache.Common()
	second := cache.Common()
	assert.Equal(t, first, second)
	assert.Equal(t, int64(1), Int(first, "winnerTeam", 0))

	assert.Equal(t, cache.Players(), cache.Players())
	assert.Equal(t, cache.Vehicles(), cache.Vehicles())
	assert.Equal(t, cache.Avatars(), cache.Avatars())
	assert.Equal(t, cache.Personal(), cache.Personal())
}

func TestFactCache_EachViewVisitedOnce(t *testing.T) {
	cache := resolvedFixture(t)

	for i := 0; i < 3; i++ {
		cache.Common()
		cache.Players()
		cache.Vehicles()
		cache.Avatars()
		cache.Personal()
		cache.OwnerID()
		cache.Details()
	}

	for _, view := range []string{"common", "players", "vehicles", "avatars", "personal"} {
		assert.Equal(t, 1, cache.Visits(view), "view %q must be computed exactly once", view)
	}
}

func TestFactCache_MissingSectionsDegradeToEmpty(t *testing.T) {
	fixture := []any{
		map[string]any{"playerID": float64(12345), "playerVehicle": "ussr:R01_IS"},
		[]any{
			map[string]any{}, // no common/personal/players/vehicles at all
			"not an object",  // avatars block malformed
		},
	}

	cache, err := newTestResolver().Resolve(fixture)
	require.NoError(t, err)

	assert.Empty(t, cache.Common())
	assert.Empty(t, cache.Players())
	assert.Empty(t, cache.Vehicles())
	assert.Empty(t, cache.Avatars())
	assert.Empty(t, cache.Details())

	assert.NotNil(t, cache.Common(), "views never return nil maps")
}

func TestFactCache_OwnerTeam(t *testing.T) {
	t.Run("from personal record", func(t *testing.T) {
		cache := resolvedFixture(t)
		assert.Equal(t, int64(1), cache.OwnerTeam())
	})

	t.Run("fallback to player directory", func(t *testing.T) {
		fixture := ownerFixture(12345)
		results := fixture[1].([]any)[0].(map[string]any)
		personal := results["personal"].(map[string]any)["12345"].(map[string]any)
		delete(personal, "team")
		results["players"] = map[string]any{
			"12345": map[string]any{"team": float64(2)},
		}

		cache, err := newTestResolver().Resolve(fixture)
		require.NoError(t, err)
		assert.Equal(t, int64(2), cache.OwnerTeam())
	})

	t.Run("unknown team is zero", func(t *testing.T) {
		fixture := ownerFixture(12345)
		results := fixture[1].([]any)[0].(map[string]any)
		personal := results["personal"].(map[string]any)["12345"].(map[string]any)
		delete(personal, "team")

		cache, err := newTestResolver().Resolve(fixture)
		require.NoError(t, err)
		assert.Equal(t, int64(0), cache.OwnerTeam())
	})
}

func TestFactCache_Meta(t *testing.T) {
	cache := resolvedFixture(t)

	meta := cache.Meta()
	assert.Equal(t, int64(12345), meta.PlayerID)
	assert.Equal(t, "ApTa_KyIIIaeT", meta.PlayerName)
	assert.Equal(t, "ussr", meta.Nation)
	assert.Equal(t, "R01_IS", meta.VehicleTag)
	assert.Equal(t, "map_name", meta.MapName)
	assert.Same(t, meta, cache.Meta())
}
