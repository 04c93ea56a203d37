// Package stats computes derived battle facts from a resolved replay
// payload: the owner's economy report, the per-opponent interaction
// matrix, team outcome, participants, and the flat record handed to
// storage. Every computation is a pure function of the fact cache plus,
// where noted, an injected catalog lookup.
package stats

import (
	"log/slog"
)

// Normalizer derives battle statistics from resolved payloads. It holds
// no state between calls; the logger is used only for soft-omission
// diagnostics.
type Normalizer struct {
	logger *slog.Logger
}

// NewNormalizer returns a normalizer logging through the given logger.
func NewNormalizer(logger *slog.Logger) *Normalizer {
	return &Normalizer{logger: logger}
}
