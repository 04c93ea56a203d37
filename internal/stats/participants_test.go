package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mtreplays/extractor/internal/catalog"
)

func participantFixture(t *testing.T) (*Normalizer, *catalog.Memory, []Participant) {
	t.Helper()
	results := ownerResults(map[string]any{
		"team":        1,
		"damageDealt": 2000,
		"kills":       2,
	})
	results["players"] = map[string]any{
		"12345": map[string]any{"realName": "real_tester", "clanAbbrev": "CLAN"},
	}
	results["vehicles"] = map[string]any{
		// Owner's entry carries the linking account id.
		"1001": []any{map[string]any{"accountDBID": 12345}},
		"1002": []any{map[string]any{
			"accountDBID": 67890,
			"damageDealt": 800,
			"kills":       1,
			"deathReason": 0,
			"shots":       10,
		}},
	}
	avatars := map[string]any{
		"1001": map[string]any{"vehicleType": "ussr:R01_IS", "name": "tester", "team": 1},
		"1002": map[string]any{"vehicleType": "germany:G01_Tiger", "name": "enemy", "team": 2},
		"1003": map[string]any{"vehicleType": "usa:A01_T1", "name": "ghost", "team": 2},
		"1004": map[string]any{"name": "observer", "team": 2},
	}
	cache := newTestCache(t, ownerRoot(), results, avatars)

	vehicles := catalog.NewMemory()
	vehicles.PutVehicle(catalog.VehicleInfo{Tag: "R01_IS", Name: "IS", Nation: "ussr", Level: 7, Type: "heavyTank"})
	vehicles.PutVehicle(catalog.VehicleInfo{Tag: "G01_Tiger", Name: "Tiger I", Nation: "germany", Level: 7, Type: "heavyTank"})

	n := newTestNormalizer()
	out, err := n.Participants(cache, vehicles)
	require.NoError(t, err)
	return n, vehicles, out
}

func TestParticipants_AssemblesEveryAvatarWithVehicle(t *testing.T) {
	_, _, out := participantFixture(t)

	// The observer entry has no vehicleType and is not a participant.
	require.Len(t, out, 3)

	byID := map[string]Participant{}
	for _, p := range out {
		byID[p.AvatarID] = p
	}

	owner := byID["1001"]
	assert.True(t, owner.IsOwner)
	assert.Equal(t, int64(2000), owner.Stats.DamageDealt, "owner stats come from the personal record")
	assert.Equal(t, int64(2), owner.Stats.Kills)
	assert.Equal(t, "IS", owner.VehicleName)
	assert.Equal(t, "CLAN", owner.ClanTag)
	assert.True(t, owner.IsAlive)

	enemy := byID["1002"]
	assert.False(t, enemy.IsOwner)
	assert.Equal(t, int64(800), enemy.Stats.DamageDealt, "fallback to the vehicles table")
	assert.False(t, enemy.IsAlive)
}

func TestParticipants_MissingStatsZeroedNotFatal(t *testing.T) {
	_, _, out := participantFixture(t)

	for _, p := range out {
		if p.AvatarID != "1003" {
			continue
		}
		assert.Equal(t, ParticipantStats{}, p.Stats)
		assert.Equal(t, "Unknown vehicle (A01_T1)", p.VehicleName, "catalog miss yields a placeholder")
		assert.Equal(t, 1, p.VehicleLevel)
		return
	}
	t.Fatal("participant 1003 not assembled")
}

func TestParticipants_OrderedByTeamThenDamage(t *testing.T) {
	_, _, out := participantFixture(t)

	require.Len(t, out, 3)
	assert.Equal(t, "1001", out[0].AvatarID)
	assert.Equal(t, "1002", out[1].AvatarID)
	assert.Equal(t, "1003", out[2].AvatarID)
}
