// Package payload normalizes the two JSON documents extracted from a
// replay container into one canonical in-memory shape, and exposes a
// memoizing view layer (FactCache) over it.
//
// The payload's shape varies across client versions: the owner's personal
// block may be flat or keyed by a vehicle type descriptor, dictionary keys
// may be strings or numbers, and several sub-blocks are optional. All of
// that variance is contained here so downstream statistics code reads one
// stable shape.
package payload

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
)

// Shape violations. The container parsed fine but the content is unusable.
var (
	ErrInvalidJSON     = errors.New("invalid JSON text")
	ErrUnexpectedShape = errors.New("unexpected payload shape")
	ErrNoPlayerID      = errors.New("metadata has no playerID")
	ErrNoVehicle       = errors.New("metadata has no playerVehicle")
	ErrOwnerNotFound   = errors.New("no personal record matches the replay owner")
)

// ShapeError wraps one of the shape sentinels with diagnostic context.
type ShapeError struct {
	Err    error
	Detail string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("%v: %s", e.Err, e.Detail)
}

func (e *ShapeError) Unwrap() error {
	return e.Err
}

func shapeErrf(err error, format string, args ...any) error {
	return &ShapeError{Err: err, Detail: fmt.Sprintf(format, args...)}
}

// Resolver turns raw replay payloads into FactCaches.
// It has zero external dependencies beyond a logger.
type Resolver struct {
	logger *slog.Logger
}

// NewResolver creates a resolver with only a logger dependency.
func NewResolver(logger *slog.Logger) *Resolver {
	return &Resolver{logger: logger}
}

// Resolve accepts raw JSON text ([]byte or string) or an already decoded
// value and returns a FactCache over it. The top-level shape must be an
// exactly-two-element array [object, array-of-2+]; anything else is a
// hard shape error, never silently coerced. Mandatory metadata fields
// (playerID, playerVehicle) are validated here so that a fatal failure
// surfaces before any statistics run.
func (r *Resolver) Resolve(raw any) (*FactCache, error) {
	decoded, err := decode(raw)
	if err != nil {
		return nil, err
	}

	pair, ok := decoded.([]any)
	if !ok {
		return nil, shapeErrf(ErrUnexpectedShape, "top level is %T, want a two-element array", decoded)
	}
	if len(pair) != 2 {
		return nil, shapeErrf(ErrUnexpectedShape, "top level has %d elements, want exactly 2", len(pair))
	}

	root, ok := pair[0].(map[string]any)
	if !ok {
		return nil, shapeErrf(ErrUnexpectedShape, "first element is %T, want an object", pair[0])
	}
	second, ok := pair[1].([]any)
	if !ok {
		return nil, shapeErrf(ErrUnexpectedShape, "second element is %T, want an array", pair[1])
	}
	if len(second) < 2 {
		return nil, shapeErrf(ErrUnexpectedShape, "second element has %d entries, want at least 2", len(second))
	}

	if _, present := root["playerID"]; !present {
		return nil, &ShapeError{Err: ErrNoPlayerID, Detail: "first block carries no owner id"}
	}
	if Str(root, "playerVehicle") == "" {
		return nil, &ShapeError{Err: ErrNoVehicle, Detail: "first block carries no vehicle identifier"}
	}

	return newFactCache(r.logger, root, second), nil
}

func decode(raw any) (any, error) {
	var text []byte
	switch v := raw.(type) {
	case []byte:
		text = v
	case json.RawMessage:
		text = v
	case string:
		text = []byte(v)
	default:
		return raw, nil
	}

	var decoded any
	if err := json.Unmarshal(text, &decoded); err != nil {
		return nil, shapeErrf(ErrInvalidJSON, "%v", err)
	}
	return decoded, nil
}

// ownerStrategy is one way of locating the owner's personal record.
// Strategies are tried in a fixed priority order; each returns a definite
// hit or miss so the shape ambiguity stays contained and testable.
type ownerStrategy struct {
	name    string
	resolve func(personal map[string]any, metaID int64) (map[string]any, int64, bool)
}

var ownerStrategies = []ownerStrategy{
	{name: "flat-record", resolve: resolveFlatOwner},
	{name: "keyed-by-descriptor", resolve: resolveKeyedOwner},
	{name: "sole-nonzero-account", resolve: resolveSoleOwner},
}

// resolveFlatOwner handles the single-player shape where personal is
// itself the owner's record.
func resolveFlatOwner(personal map[string]any, metaID int64) (map[string]any, int64, bool) {
	id, ok := AsInt(personal["accountDBID"])
	if !ok || metaID == 0 || id != metaID {
		return nil, 0, false
	}
	return personal, id, true
}

// resolveKeyedOwner handles the map shape {typeCompDescr: {record}},
// scanning every value for a matching accountDBID. The "avatar" sub-key
// carries account-level totals, not battle stats, and is never a
// candidate even though it also has an accountDBID.
func resolveKeyedOwner(personal map[string]any, metaID int64) (map[string]any, int64, bool) {
	if metaID == 0 {
		return nil, 0, false
	}
	for key, v := range personal {
		if key == "avatar" {
			continue
		}
		rec, ok := v.(map[string]any)
		if !ok {
			continue
		}
		if id, ok := AsInt(rec["accountDBID"]); ok && id == metaID {
			return rec, id, true
		}
	}
	return nil, 0, false
}

// resolveSoleOwner covers the client bug where metadata reports
// playerID 0: if exactly one candidate record carries a valid non-zero
// accountDBID, it is the owner and the id is corrected to that value.
func resolveSoleOwner(personal map[string]any, metaID int64) (map[string]any, int64, bool) {
	if metaID != 0 {
		return nil, 0, false
	}

	var found map[string]any
	var foundID int64
	consider := func(rec map[string]any) bool {
		id, ok := AsInt(rec["accountDBID"])
		if !ok || id == 0 {
			return true
		}
		if found != nil {
			return false // ambiguous, give up
		}
		found, foundID = rec, id
		return true
	}

	if _, flat := personal["accountDBID"]; flat {
		consider(personal)
	} else {
		for key, v := range personal {
			if key == "avatar" {
				continue
			}
			rec, ok := v.(map[string]any)
			if !ok {
				continue
			}
			if !consider(rec) {
				return nil, 0, false
			}
		}
	}

	if found == nil {
		return nil, 0, false
	}
	return found, foundID, true
}
