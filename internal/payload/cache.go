package payload

import (
	"log/slog"
	"strconv"
)

// FactCache is a read-only, memoizing view over one resolved payload.
// Every named view is computed at most once, so downstream statistics can
// ask for the same section repeatedly without re-walking the JSON.
//
// Missing or malformed optional sections degrade to empty maps; only the
// top-level shape check in Resolve is fatal. A FactCache belongs to the
// goroutine that resolved it and is not safe for concurrent use.
type FactCache struct {
	logger *slog.Logger

	root   map[string]any
	second []any

	meta     *Meta
	results  map[string]any
	common   map[string]any
	players  map[string]any
	vehicles map[string]any
	avatars  map[string]any

	personal    map[string]any
	ownerID     int64
	ownerErr    error
	ownerDone   bool
	ownerTeam   int64
	teamDone    bool

	visits map[string]int
}

func newFactCache(logger *slog.Logger, root map[string]any, second []any) *FactCache {
	return &FactCache{
		logger: logger,
		root:   root,
		second: second,
		visits: make(map[string]int),
	}
}

// Visits reports how many times the named view has been computed.
// It exists for tests that pin the one-pass guarantee.
func (c *FactCache) Visits(view string) int {
	return c.visits[view]
}

// Root exposes the raw metadata block for fields no view covers.
func (c *FactCache) Root() map[string]any {
	return c.root
}

// battleResults is the dictionary at second[0] holding common, personal,
// players and vehicles. Internal; the named views read through it.
func (c *FactCache) battleResults() map[string]any {
	if c.results == nil {
		c.results, _ = c.second[0].(map[string]any)
		if c.results == nil {
			c.logger.Warn("battle results block is not an object; downstream views will be empty")
			c.results = map[string]any{}
		}
	}
	return c.results
}

// Common returns the shared battle block (winnerTeam, finishReason,
// duration, arenaCreateTime, bonusType).
func (c *FactCache) Common() map[string]any {
	if c.common == nil {
		c.visits["common"]++
		c.common = Map(c.battleResults(), "common")
	}
	return c.common
}

// Players returns the account directory {accountDBID: {name, clanAbbrev,
// team, ...}}.
func (c *FactCache) Players() map[string]any {
	if c.players == nil {
		c.visits["players"]++
		c.players = Map(c.battleResults(), "players")
	}
	return c.players
}

// Vehicles returns per-avatar vehicle statistics {avatarID: [stats]}.
func (c *FactCache) Vehicles() map[string]any {
	if c.vehicles == nil {
		c.visits["vehicles"]++
		c.vehicles = Map(c.battleResults(), "vehicles")
	}
	return c.vehicles
}

// Avatars returns the battle-local roster at second[1]
// {avatarID: {vehicleType, team, name, ...}}.
func (c *FactCache) Avatars() map[string]any {
	if c.avatars == nil {
		c.visits["avatars"]++
		if m, ok := c.second[1].(map[string]any); ok {
			c.avatars = m
		} else {
			c.logger.Warn("avatar roster block is not an object")
			c.avatars = map[string]any{}
		}
	}
	return c.avatars
}

// Owner locates the replay owner's personal record, trying each
// resolution strategy in priority order, and returns the record together
// with the (possibly corrected) owner account id.
func (c *FactCache) Owner() (map[string]any, int64, error) {
	if !c.ownerDone {
		c.ownerDone = true
		c.visits["personal"]++

		metaID := Int(c.root, "playerID", 0)
		section := Map(c.battleResults(), "personal")

		for _, s := range ownerStrategies {
			if rec, id, ok := s.resolve(section, metaID); ok {
				c.personal, c.ownerID = rec, id
				if id != metaID {
					c.logger.Info("corrected owner id from metadata",
						"metadataID", metaID, "resolvedID", id, "strategy", s.name)
				}
				return c.personal, c.ownerID, nil
			}
		}

		c.personal = map[string]any{}
		c.ownerID = metaID
		c.ownerErr = &ShapeError{
			Err:    ErrOwnerNotFound,
			Detail: "no resolution strategy matched owner id " + strconv.FormatInt(metaID, 10),
		}
	}
	return c.personal, c.ownerID, c.ownerErr
}

// Personal returns the owner's per-battle statistics block, or an empty
// map when no strategy matched. Callers that must fail on a missing
// owner use Owner instead.
func (c *FactCache) Personal() map[string]any {
	rec, _, _ := c.Owner()
	return rec
}

// OwnerID returns the owner's account id, corrected when the metadata
// reported the playerID-zero client bug.
func (c *FactCache) OwnerID() int64 {
	_, id, _ := c.Owner()
	return id
}

// OwnerTeam resolves the owner's team number, preferring the personal
// record and falling back to the player directory.
func (c *FactCache) OwnerTeam() int64 {
	if !c.teamDone {
		c.teamDone = true
		if team, ok := AsInt(c.Personal()["team"]); ok {
			c.ownerTeam = team
		} else if info, ok := c.Players()[strconv.FormatInt(c.OwnerID(), 10)].(map[string]any); ok {
			c.ownerTeam = Int(info, "team", 0)
		} else {
			c.logger.Warn("could not determine owner team", "ownerID", c.OwnerID())
		}
	}
	return c.ownerTeam
}

// Details returns the owner's per-opponent interaction map, keyed by
// stringified (avatarID, slot) pairs.
func (c *FactCache) Details() map[string]any {
	return Map(c.Personal(), "details")
}

// Meta returns the typed metadata view of the first block.
func (c *FactCache) Meta() *Meta {
	if c.meta == nil {
		c.visits["meta"]++
		c.meta = newMeta(c.root, c.Common())
	}
	return c.meta
}
