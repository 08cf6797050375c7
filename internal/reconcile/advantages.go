package reconcile

import (
	"strconv"

	"github.com/riskibarqy/fightcard/internal/domain/fight"
	"github.com/riskibarqy/fightcard/internal/domain/raw"
)

// shares splits 100 between two non-negative values; 50/50 when both are zero.
func shares(left, right float64) (string, string) {
	total := left + right
	if total == 0 {
		return "50%", "50%"
	}
	l := int(raw.Round(left / total * 100))
	r := int(raw.Round(right / total * 100))
	return strconv.Itoa(l) + "%", strconv.Itoa(r) + "%"
}

// Advantages compares two sides on striking output, takedown average,
// striking defense and wins.
func Advantages(left, right fight.Side) fight.Advantages {
	var out fight.Advantages
	out.Left.Striking, out.Right.Striking = shares(val(left.Stats.Strikes.SigPerMinute), val(right.Stats.Strikes.SigPerMinute))
	out.Left.Grappling, out.Right.Grappling = shares(val(left.Stats.Grappling.TakedownAverage), val(right.Stats.Grappling.TakedownAverage))
	out.Left.Defense, out.Right.Defense = shares(val(left.Stats.Strikes.Defense), val(right.Stats.Strikes.Defense))
	out.Left.Experience, out.Right.Experience = shares(float64(left.Totals.Wins), float64(right.Totals.Wins))
	return out
}
