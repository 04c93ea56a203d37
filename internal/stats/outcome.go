package stats

import (
	"github.com/mtreplays/extractor/internal/payload"
)

const defaultReason = "Battle ended"

var winReasons = map[int64]string{
	1: "All enemy vehicles destroyed",
	2: "Our team captured the base",
	3: "Time expired",
}

var lossReasons = map[int64]string{
	1: "All our vehicles destroyed",
	2: "Enemy team captured the base",
	3: "Time expired",
}

var drawReasons = map[int64]string{
	3: "Time expired",
}

// Outcome resolves the battle result from the owner's point of view.
// A winner team of 0 or absent means a draw. Unmapped finish reason
// codes fall back to a generic string, never an error.
func (n *Normalizer) Outcome(c *payload.FactCache) Outcome {
	common := c.Common()
	winnerTeam := payload.Int(common, "winnerTeam", 0)
	finishReason := payload.Int(common, "finishReason", 0)
	ownerTeam := c.OwnerTeam()

	out := Outcome{
		WinnerTeam:   winnerTeam,
		OwnerTeam:    ownerTeam,
		FinishReason: finishReason,
	}

	var reasons map[int64]string
	switch {
	case winnerTeam == 0:
		out.Status = StatusDraw
		reasons = drawReasons
	case ownerTeam == winnerTeam:
		out.Status = StatusWin
		reasons = winReasons
	default:
		out.Status = StatusLoss
		reasons = lossReasons
	}

	out.Reason = reasons[finishReason]
	if out.Reason == "" {
		out.Reason = defaultReason
	}
	return out
}
