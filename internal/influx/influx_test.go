package influx

import (
	"errors"
	"testing"
	"time"

	influxdb2_write "github.com/influxdata/influxdb-client-go/v2/api/write"
	"github.com/stretchr/testify/assert"

	"github.com/mtreplays/extractor/internal/stats"
)

func TestProcessingPoint(t *testing.T) {
	p := ProcessingPoint("battle.mtreplay", 42*time.Millisecond, nil)
	line := influxdb2_write.PointToLineProtocol(p, time.Nanosecond)
	assert.Contains(t, line, "replay_processed")
	assert.Contains(t, line, "status=ok")
	assert.Contains(t, line, "duration_ms=42i")

	p = ProcessingPoint("battle.mtreplay", time.Millisecond, errors.New("bad magic"))
	line = influxdb2_write.PointToLineProtocol(p, time.Nanosecond)
	assert.Contains(t, line, "status=error")
}

func TestBattlePoint(t *testing.T) {
	p := BattlePoint(stats.Record{
		VehicleTag: "R01_IS",
		MapName:    "05_prokhorovka",
		Outcome:    stats.Outcome{Status: stats.StatusWin},
		Damage:     2000,
		Kills:      2,
		BattleTime: time.Date(2026, 8, 25, 19, 15, 26, 0, time.UTC),
	})
	line := influxdb2_write.PointToLineProtocol(p, time.Nanosecond)
	assert.Contains(t, line, "battle")
	assert.Contains(t, line, "vehicle=R01_IS")
	assert.Contains(t, line, "outcome=win")
	assert.Contains(t, line, "damage=2000i")
}
