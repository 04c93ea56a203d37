package payload

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestResolver() *Resolver {
	return NewResolver(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// ownerFixture mirrors a real replay with a nested personal section.
func ownerFixture(playerID float64) []any {
	return []any{
		map[string]any{
			"playerID":      playerID,
			"playerName":    "ApTa_KyIIIaeT",
			"playerVehicle": "ussr:R01_IS",
			"dateTime":      "20.12.2025 11:18:10",
			"mapName":       "map_name",
		},
		[]any{
			map[string]any{
				"common": map[string]any{"winnerTeam": float64(1)},
				"personal": map[string]any{
					"12345": map[string]any{
						"accountDBID": float64(12345),
						"damageDealt": float64(2000),
						"kills":       float64(2),
						"team":        float64(1),
					},
				},
			},
			map[string]any{},
		},
	}
}

func TestResolve_ShapeErrors(t *testing.T) {
	r := newTestResolver()

	tests := []struct {
		name    string
		input   any
		wantErr error
	}{
		{
			name:    "invalid JSON text",
			input:   `{"broken":`,
			wantErr: ErrInvalidJSON,
		},
		{
			name:    "bare object instead of pair",
			input:   map[string]any{"playerID": float64(1)},
			wantErr: ErrUnexpectedShape,
		},
		{
			name:    "wrong arity",
			input:   []any{map[string]any{}, []any{}, []any{}},
			wantErr: ErrUnexpectedShape,
		},
		{
			name:    "first element not an object",
			input:   []any{[]any{}, []any{map[string]any{}, map[string]any{}}},
			wantErr: ErrUnexpectedShape,
		},
		{
			name:    "second element not an array",
			input:   []any{map[string]any{"playerID": float64(1)}, map[string]any{}},
			wantErr: ErrUnexpectedShape,
		},
		{
			name:    "second element too short",
			input:   []any{map[string]any{"playerID": float64(1)}, []any{map[string]any{}}},
			wantErr: ErrUnexpectedShape,
		},
		{
			name: "missing playerID",
			input: []any{
				map[string]any{"playerVehicle": "ussr:R01_IS"},
				[]any{map[string]any{}, map[string]any{}},
			},
			wantErr: ErrNoPlayerID,
		},
		{
			name: "missing vehicle identifier",
			input: []any{
				map[string]any{"playerID": float64(1)},
				[]any{map[string]any{}, map[string]any{}},
			},
			wantErr: ErrNoVehicle,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := r.Resolve(tt.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestResolve_AcceptsRawText(t *testing.T) {
	r := newTestResolver()

	text := `[{"playerID":7,"playerVehicle":"ussr:R01_IS"},[{"common":{}},{}]]`
	cache, err := r.Resolve(text)
	require.NoError(t, err)
	assert.Equal(t, int64(7), Int(cache.Root(), "playerID", 0))

	cache, err = r.Resolve([]byte(text))
	require.NoError(t, err)
	assert.Equal(t, "R01_IS", cache.Meta().VehicleTag)
}

func TestOwner_FlatRecord(t *testing.T) {
	r := newTestResolver()
	fixture := ownerFixture(12345)
	// flatten: personal is the record itself
	results := fixture[1].([]any)[0].(map[string]any)
	results["personal"] = map[string]any{
		"accountDBID": float64(12345),
		"damageDealt": float64(2000),
	}

	cache, err := r.Resolve(fixture)
	require.NoError(t, err)

	rec, id, err := cache.Owner()
	require.NoError(t, err)
	assert.Equal(t, int64(12345), id)
	assert.Equal(t, int64(2000), Int(rec, "damageDealt", 0))
}

func TestOwner_KeyedByDescriptor(t *testing.T) {
	r := newTestResolver()
	cache, err := r.Resolve(ownerFixture(12345))
	require.NoError(t, err)

	rec, id, err := cache.Owner()
	require.NoError(t, err)
	assert.Equal(t, int64(12345), id)
	assert.Equal(t, int64(2), Int(rec, "kills", 0))
}

func TestOwner_AvatarSubKeyNeverMatches(t *testing.T) {
	r := newTestResolver()
	fixture := ownerFixture(12345)
	results := fixture[1].([]any)[0].(map[string]any)
	results["personal"] = map[string]any{
		// account-level totals also carry accountDBID but are not
		// battle statistics
		"avatar": map[string]any{
			"accountDBID": float64(12345),
			"damageDealt": float64(999999),
		},
		"29441": map[string]any{
			"accountDBID": float64(12345),
			"damageDealt": float64(2000),
		},
	}

	cache, err := r.Resolve(fixture)
	require.NoError(t, err)

	rec, _, err := cache.Owner()
	require.NoError(t, err)
	assert.Equal(t, int64(2000), Int(rec, "damageDealt", 0))
}

func TestOwner_PlayerIDZeroCorrection(t *testing.T) {
	r := newTestResolver()
	cache, err := r.Resolve(ownerFixture(0))
	require.NoError(t, err)

	rec, id, err := cache.Owner()
	require.NoError(t, err)
	assert.Equal(t, int64(12345), id, "owner id must be corrected from the sole personal entry")
	assert.Equal(t, int64(12345), cache.OwnerID())
	assert.Equal(t, int64(2000), Int(rec, "damageDealt", 0))
}

func TestOwner_PlayerIDZeroAmbiguous(t *testing.T) {
	r := newTestResolver()
	fixture := ownerFixture(0)
	results := fixture[1].([]any)[0].(map[string]any)
	results["personal"].(map[string]any)["67890"] = map[string]any{
		"accountDBID": float64(67890),
	}

	cache, err := r.Resolve(fixture)
	require.NoError(t, err)

	_, _, err = cache.Owner()
	assert.ErrorIs(t, err, ErrOwnerNotFound, "two non-zero candidates cannot be disambiguated")
}

func TestOwner_NotFound(t *testing.T) {
	r := newTestResolver()
	fixture := ownerFixture(99999) // nobody has this accountDBID

	cache, err := r.Resolve(fixture)
	require.NoError(t, err)

	rec, _, err := cache.Owner()
	assert.ErrorIs(t, err, ErrOwnerNotFound)
	assert.Empty(t, rec, "failed resolution degrades to an empty record")
}
