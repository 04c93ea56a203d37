package stats

import (
	"github.com/mtreplays/extractor/internal/payload"
)

// assistFields are the five assist mechanisms the client reports.
// Missing fields count as zero.
var assistFields = []string{
	"damageAssistedRadio",
	"damageAssistedTrack",
	"damageAssistedStun",
	"damageAssistedSmoke",
	"damageAssistedInspire",
}

// TotalAssist sums the assist damage of one statistics record across
// all mechanisms.
func TotalAssist(record map[string]any) int64 {
	var total int64
	for _, field := range assistFields {
		total += payload.Int(record, field, 0)
	}
	return total
}
