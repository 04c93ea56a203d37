package payload

import (
	"fmt"
	"strings"
	"time"
)

// battleDateTimeLayout is the client's free-text battle date format.
const battleDateTimeLayout = "02.01.2006 15:04:05"

// Epoch values above this are taken to be milliseconds. The cutover is
// year 5138 in seconds, so no replay will ever sit on the wrong side.
const millisecondThreshold = 1e11

// Meta is the typed view of the first block's metadata fields. All
// fields except PlayerID and the vehicle identifier are optional and
// zero-valued when absent.
type Meta struct {
	PlayerID       int64
	PlayerName     string
	PlayerVehicle  string
	Nation         string
	VehicleTag     string
	BattleTime     time.Time
	MapName        string
	MapDisplayName string
	GameplayID     string
	BattleType     int64
	ArenaUniqueID  int64
	ServerName     string
	ClientVersion  string
	RegionCode     string
}

func newMeta(root, common map[string]any) *Meta {
	nation, tag := SplitVehicleTag(Str(root, "playerVehicle"))
	return &Meta{
		PlayerID:       Int(root, "playerID", 0),
		PlayerName:     Str(root, "playerName"),
		PlayerVehicle:  Str(root, "playerVehicle"),
		Nation:         nation,
		VehicleTag:     tag,
		BattleTime:     resolveBattleTime(root, common),
		MapName:        Str(root, "mapName"),
		MapDisplayName: Str(root, "mapDisplayName"),
		GameplayID:     Str(root, "gameplayID"),
		BattleType:     Int(root, "battleType", 0),
		ArenaUniqueID:  Int(root, "arenaUniqueID", 0),
		ServerName:     Str(root, "serverName"),
		ClientVersion:  Str(root, "clientVersionFromExe"),
		RegionCode:     Str(root, "regionCode"),
	}
}

// SplitVehicleTag splits a nation-prefixed vehicle identifier like
// "ussr:R01_IS" or "uk-GB134_FV242B_Condor" into nation and tag. Both
// separator styles appear in the wild. An unprefixed identifier comes
// back with an empty nation.
func SplitVehicleTag(vehicle string) (nation, tag string) {
	if nation, tag, ok := strings.Cut(vehicle, ":"); ok {
		return nation, tag
	}
	if nation, tag, ok := strings.Cut(vehicle, "-"); ok {
		return nation, tag
	}
	return "", vehicle
}

// resolveBattleTime prefers the arenaCreateTime epoch from the common
// block over the free-text dateTime string: the epoch is unambiguous
// while the string is in client-local time. Second and millisecond
// precision are both tolerated. When no epoch is present the free-text
// string is parsed; when that fails too the time is left zero, since
// the battle timestamp is optional metadata.
func resolveBattleTime(root, common map[string]any) time.Time {
	if ts, ok := AsInt(common["arenaCreateTime"]); ok && ts > 0 {
		if ts > millisecondThreshold {
			return time.UnixMilli(ts)
		}
		return time.Unix(ts, 0)
	}

	if raw := Str(root, "dateTime"); raw != "" {
		if t, err := ParseBattleDateTime(raw); err == nil {
			return t
		}
	}
	return time.Time{}
}

// ParseBattleDateTime parses the client's "DD.MM.YYYY HH:MM:SS" battle
// date. Some replays omit the space between date and time; both forms
// are supported. The string carries no zone, so it is interpreted in
// local time, matching how the client writes it.
func ParseBattleDateTime(s string) (time.Time, error) {
	if !strings.Contains(s, " ") && len(s) == 18 {
		s = s[:10] + " " + s[10:]
	}
	t, err := time.ParseInLocation(battleDateTimeLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("error parsing battle dateTime %q: %w", s, err)
	}
	return t, nil
}
