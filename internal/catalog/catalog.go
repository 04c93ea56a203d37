// Package catalog defines the lookup boundary into reference data owned
// by the storage layer: the vehicle catalog and the achievement catalog.
// The extraction core only ever needs key->record lookups; how the
// catalogs are populated is the implementer's business.
package catalog

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a catalog has no record for a key.
var ErrNotFound = errors.New("catalog: not found")

// VehicleInfo is one entry of the vehicle catalog.
type VehicleInfo struct {
	Tag    string
	Name   string
	Nation string
	Level  int
	Type   string
}

// AchievementInfo is one entry of the achievement catalog.
type AchievementInfo struct {
	ID      int64
	Token   string
	Name    string
	Section string
	Order   int
	Active  bool
}

// Vehicles resolves nation-stripped vehicle tags to catalog records.
//
// Implementations return ErrNotFound for unknown tags; they must not
// fail the lookup for any other reason than a backing-store error.
// Callers are expected to absorb ErrNotFound by synthesizing a
// placeholder via PlaceholderVehicle rather than failing the replay;
// reference data lags behind client releases and an unknown tag is
// routine, not exceptional.
type Vehicles interface {
	LookupVehicle(tag string) (VehicleInfo, error)
}

// Achievements resolves a set of achievement ids to catalog records.
// Unknown ids are silently omitted from the result. With activeOnly set,
// only records still obtainable in the client are returned.
type Achievements interface {
	LookupAchievements(ids []int64, activeOnly bool) ([]AchievementInfo, error)
}

// BattleSections are the achievement sections counted as battle medals.
var BattleSections = []string{"battle", "epic"}

// IsBattleSection reports whether a section counts toward medal totals.
func IsBattleSection(section string) bool {
	for _, s := range BattleSections {
		if s == section {
			return true
		}
	}
	return false
}

// PlaceholderVehicle is the record callers synthesize when a vehicle tag
// misses the catalog.
func PlaceholderVehicle(tag string) VehicleInfo {
	return VehicleInfo{
		Tag:   tag,
		Name:  fmt.Sprintf("Unknown vehicle (%s)", tag),
		Level: 1,
		Type:  "unknown",
	}
}

// ResolveVehicle looks up a tag and falls back to the placeholder on a
// miss. Backing-store errors still propagate.
func ResolveVehicle(c Vehicles, tag string) (VehicleInfo, error) {
	info, err := c.LookupVehicle(tag)
	if errors.Is(err, ErrNotFound) {
		return PlaceholderVehicle(tag), nil
	}
	if err != nil {
		return VehicleInfo{}, fmt.Errorf("vehicle lookup %q: %w", tag, err)
	}
	return info, nil
}
