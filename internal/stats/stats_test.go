package stats

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mtreplays/extractor/internal/payload"
)

func newTestNormalizer() *Normalizer {
	return NewNormalizer(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// newTestCache resolves a hand-built [metadata, [results, avatars]]
// payload into a fact cache.
func newTestCache(t *testing.T, root, results, avatars map[string]any) *payload.FactCache {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cache, err := payload.NewResolver(logger).Resolve([]any{root, []any{results, avatars}})
	require.NoError(t, err)
	return cache
}

func ownerRoot() map[string]any {
	return map[string]any{
		"playerID":      12345,
		"playerName":    "tester",
		"playerVehicle": "ussr:R01_IS",
	}
}

// ownerResults wraps a flat personal record in the results block shape.
func ownerResults(personal map[string]any) map[string]any {
	if personal["accountDBID"] == nil {
		personal["accountDBID"] = 12345
	}
	return map[string]any{
		"personal": personal,
		"common":   map[string]any{},
		"players":  map[string]any{},
		"vehicles": map[string]any{},
	}
}
