package reconcile

import (
	"sort"
	"strings"

	"github.com/riskibarqy/fightcard/internal/domain/fight"
)

func segmentPriority(f fight.Fight) int {
	switch {
	case f.MainEvent:
		return 6
	case f.CoMainEvent:
		return 5
	case f.TitleFight:
		return 4
	}
	segment := strings.ToLower(f.CardSegment)
	switch {
	case strings.Contains(segment, "main"):
		return 3
	case strings.Contains(segment, "feature"):
		return 2
	case strings.Contains(segment, "prelim"):
		return 1
	default:
		return 0
	}
}

// mainCardSize picks how many of the ordered fights headline the event.
func mainCardSize(fights []fight.Fight) int {
	total := len(fights)
	fiveRounders := 0
	for _, f := range fights {
		if f.Rounds == 5 {
			fiveRounders++
		}
	}
	switch {
	case fiveRounders >= 2:
		return min(6, total)
	case fiveRounders == 1:
		return min(5, total)
	default:
		return min(5, (total+1)/2)
	}
}

// SplitCard orders fights by billing (segment priority, then scheduled
// rounds, then input order) and splits them into main card and prelims. The
// first main-card fight is always flagged as the main event with five
// rounds. The input slice is not modified.
func SplitCard(fights []fight.Fight) fight.Card {
	ordered := make([]fight.Fight, len(fights))
	copy(ordered, fights)
	sort.SliceStable(ordered, func(i, j int) bool {
		pi, pj := segmentPriority(ordered[i]), segmentPriority(ordered[j])
		if pi != pj {
			return pi > pj
		}
		return ordered[i].Rounds > ordered[j].Rounds
	})

	size := mainCardSize(ordered)
	card := fight.Card{
		Main:    ordered[:size:size],
		Prelims: ordered[size:],
	}
	if len(card.Main) > 0 && !card.Main[0].MainEvent {
		card.Main[0].MainEvent = true
		if card.Main[0].Rounds < 5 {
			card.Main[0].Rounds = 5
		}
	}
	if card.Main == nil {
		card.Main = []fight.Fight{}
	}
	if card.Prelims == nil {
		card.Prelims = []fight.Fight{}
	}
	return card
}
