package reconcile

import (
	"github.com/riskibarqy/fightcard/internal/domain/fight"
	"github.com/riskibarqy/fightcard/internal/domain/raw"
	"github.com/riskibarqy/fightcard/internal/platform/oddsmath"
)

// OddsLookup returns static moneylines for a fighter pair, in the order asked.
type OddsLookup interface {
	Lookup(fighter1, fighter2 string) (moneyline1, moneyline2 float64, ok bool)
}

// MoneylineToProbability converts an American moneyline to an implied
// probability. Zero, missing and non-numeric odds yield false.
func MoneylineToProbability(v any) (float64, bool) {
	n, ok := raw.ToNumber(v)
	if !ok || n == 0 {
		return 0, false
	}
	return oddsmath.ImpliedProbability(n), true
}

func impliedPtr(v any) *float64 {
	p, ok := MoneylineToProbability(v)
	if !ok {
		return nil
	}
	return &p
}

// WinProbability splits 100 between the two sides from their implied
// probabilities, falling back to static odds for the pair. Nil when neither
// source has usable odds.
func WinProbability(f fight.Fight, lookup OddsLookup) *fight.WinProbability {
	left, right := f.Fighter1.Odds.Implied, f.Fighter2.Odds.Implied
	source := f.Fighter1.Odds.Source
	if source == "" {
		source = fight.OddsSourceFeed
	}
	if !usableProbability(left) || !usableProbability(right) {
		if lookup == nil {
			return nil
		}
		ml1, ml2, ok := lookup.Lookup(f.Fighter1.Name, f.Fighter2.Name)
		if !ok {
			return nil
		}
		left, right = impliedPtr(ml1), impliedPtr(ml2)
		if left == nil || right == nil {
			return nil
		}
		source = fight.OddsSourceStatic
	}

	l, r, err := oddsmath.NormalizeTwoWay(*left, *right)
	if err != nil {
		return nil
	}
	leftPct := int(raw.Round(l * 100))
	rightPct := int(raw.Round(r * 100))
	if leftPct+rightPct != 100 {
		rightPct = 100 - leftPct
	}
	return &fight.WinProbability{Left: leftPct, Right: rightPct, Source: source}
}

func usableProbability(p *float64) bool {
	return p != nil && *p > 0
}
