package stats

import (
	"fmt"
	"sort"

	"github.com/mtreplays/extractor/internal/catalog"
	"github.com/mtreplays/extractor/internal/payload"
)

// Participants assembles one record per combatant. Every avatar entry
// carrying a vehicleType field counts as a participant; statistics come
// from the owner's personal record when the avatar is the owner,
// otherwise from the first element of that avatar's vehicles list, and
// degrade to zeroes when both sources are absent. Spectator and
// disconnected entries exist in real data.
func (n *Normalizer) Participants(c *payload.FactCache, vehicles catalog.Vehicles) ([]Participant, error) {
	vehicleStats := c.Vehicles()
	players := c.Players()
	ownerID := c.OwnerID()

	out := make([]Participant, 0, len(c.Avatars()))
	for avatarID, raw := range c.Avatars() {
		avatar, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		vehicleType := payload.Str(avatar, "vehicleType")
		if vehicleType == "" {
			continue
		}
		nation, tag := payload.SplitVehicleTag(vehicleType)

		stats := participantStats(avatarID, vehicleStats)
		accountID, _ := payload.AsInt(stats["accountDBID"])
		isOwner := ownerID != 0 && accountID == ownerID
		if isOwner {
			stats = c.Personal()
		}

		info, err := catalog.ResolveVehicle(vehicles, tag)
		if err != nil {
			return nil, fmt.Errorf("participant %s: %w", avatarID, err)
		}

		name := payload.Str(avatar, "name")
		if name == "" {
			name = payload.Str(avatar, "fakeName")
		}

		out = append(out, Participant{
			AvatarID:      avatarID,
			Name:          name,
			ClanTag:       clanTag(players, avatarID, accountID),
			Team:          payload.Int(avatar, "team", 0),
			VehicleNation: nation,
			VehicleTag:    tag,
			VehicleName:   info.Name,
			VehicleLevel:  info.Level,
			VehicleType:   info.Type,
			IsAlive:       payload.Int(stats, "deathReason", -1) == -1,
			IsOwner:       isOwner,
			DeathText:     n.deathText(c, stats),
			Stats: ParticipantStats{
				Shots:         payload.Int(stats, "shots", 0),
				DirectHits:    payload.Int(stats, "directHits", 0),
				Piercings:     payload.Int(stats, "piercings", 0),
				DamageDealt:   payload.Int(stats, "damageDealt", 0),
				DamageBlocked: payload.Int(stats, "damageBlockedByArmor", 0),
				Spotted:       payload.Int(stats, "spotted", 0),
				Kills:         payload.Int(stats, "kills", 0),
				Assist:        TotalAssist(stats),
				XP:            payload.Int(stats, "xp", 0),
				Credits:       payload.Int(stats, "credits", 0),
				Achievements:  coerceIDs(payload.List(stats, "achievements")),
			},
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Team != out[j].Team {
			return out[i].Team < out[j].Team
		}
		if out[i].Stats.DamageDealt != out[j].Stats.DamageDealt {
			return out[i].Stats.DamageDealt > out[j].Stats.DamageDealt
		}
		return out[i].AvatarID < out[j].AvatarID
	})
	return out, nil
}

// TeamRosters splits the participant list into the owner's team and
// the opposing team. Ordering within each roster is preserved from
// Participants, so both come back sorted by damage dealt.
func TeamRosters(participants []Participant, ownerTeam int64) (allies, enemies []Participant) {
	for _, p := range participants {
		if p.Team == ownerTeam {
			allies = append(allies, p)
		} else {
			enemies = append(enemies, p)
		}
	}
	return allies, enemies
}

func participantStats(avatarID string, vehicleStats map[string]any) map[string]any {
	list, ok := vehicleStats[avatarID].([]any)
	if !ok || len(list) == 0 {
		return map[string]any{}
	}
	first, ok := list[0].(map[string]any)
	if !ok {
		return map[string]any{}
	}
	return first
}

// clanTag looks up the player's clan abbreviation in the players table,
// first by avatar id, then by scanning for the account id.
func clanTag(players map[string]any, avatarID string, accountID int64) string {
	if p, ok := players[avatarID].(map[string]any); ok {
		return payload.Str(p, "clanAbbrev")
	}
	if accountID == 0 {
		return ""
	}
	for _, raw := range players {
		p, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		if payload.Int(p, "accountDBID", 0) == accountID {
			return payload.Str(p, "clanAbbrev")
		}
	}
	return ""
}
