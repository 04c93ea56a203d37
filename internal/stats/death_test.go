package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeathText_Survived(t *testing.T) {
	cache := newTestCache(t, ownerRoot(), ownerResults(map[string]any{
		"deathReason": -1,
	}), nil)

	n := newTestNormalizer()
	assert.Equal(t, "Survived", n.DeathText(cache))
	assert.Equal(t, "", n.KillerName(cache))
}

func TestDeathText_MissingReasonMeansSurvived(t *testing.T) {
	cache := newTestCache(t, ownerRoot(), ownerResults(map[string]any{}), nil)

	n := newTestNormalizer()
	assert.Equal(t, "Survived", n.DeathText(cache))
}

func TestDeathText_DestroyedByShotWithKiller(t *testing.T) {
	cache := newTestCache(t, ownerRoot(), ownerResults(map[string]any{
		"deathReason": 0,
		"killerID":    1002,
	}), map[string]any{
		"1002": map[string]any{"name": "enemy"},
	})

	n := newTestNormalizer()
	assert.Equal(t, "Destroyed by shot (enemy)", n.DeathText(cache))
	assert.Equal(t, "enemy", n.KillerName(cache))
}

func TestDeathText_FakeNameFallback(t *testing.T) {
	cache := newTestCache(t, ownerRoot(), ownerResults(map[string]any{
		"deathReason": 2,
		"killerID":    1002,
	}), map[string]any{
		"1002": map[string]any{"fakeName": "Anonymized_01"},
	})

	n := newTestNormalizer()
	assert.Equal(t, "Destroyed by fire (Anonymized_01)", n.DeathText(cache))
}

func TestDeathText_UnknownKillerUsesID(t *testing.T) {
	cache := newTestCache(t, ownerRoot(), ownerResults(map[string]any{
		"deathReason": 1,
		"killerID":    9999,
	}), nil)

	n := newTestNormalizer()
	assert.Equal(t, "9999", n.KillerName(cache))
	assert.Equal(t, "Destroyed by ramming (9999)", n.DeathText(cache))
}

func TestDeathText_UnmappedReasonCode(t *testing.T) {
	cache := newTestCache(t, ownerRoot(), ownerResults(map[string]any{
		"deathReason": 7,
	}), nil)

	n := newTestNormalizer()
	assert.Equal(t, "Destroyed", n.DeathText(cache))
}

func TestParticipants_CarryDeathText(t *testing.T) {
	_, _, out := participantFixture(t)

	byID := map[string]Participant{}
	for _, p := range out {
		byID[p.AvatarID] = p
	}
	assert.Equal(t, "Survived", byID["1001"].DeathText)
	// deathReason 0 with no killer id still reads as destroyed by shot.
	assert.Equal(t, "Destroyed by shot", byID["1002"].DeathText)
}

func TestTeamRosters(t *testing.T) {
	_, _, out := participantFixture(t)

	allies, enemies := TeamRosters(out, 1)
	if assert.Len(t, allies, 1) {
		assert.Equal(t, "1001", allies[0].AvatarID)
	}
	if assert.Len(t, enemies, 2) {
		assert.Equal(t, "1002", enemies[0].AvatarID)
		assert.Equal(t, "1003", enemies[1].AvatarID)
	}
}
