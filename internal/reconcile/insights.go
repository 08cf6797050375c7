package reconcile

import (
	"strconv"

	"github.com/riskibarqy/fightcard/internal/domain/fight"
)

// Insights builds the headline tiles for a split card. Title fights are
// counted on the main card only.
func Insights(card fight.Card) []fight.Insight {
	insights := make([]fight.Insight, 0, 3)
	if len(card.Main) > 0 {
		headliner := card.Main[0]
		hint := headliner.WeightClass
		if hint == "" {
			hint = "Headline bout"
		}
		insights = append(insights, fight.Insight{
			Label: "Main Event",
			Value: headliner.Fighter1.Name + " vs " + headliner.Fighter2.Name,
			Hint:  hint,
		})
	}

	total := Unknown
	if n := len(card.Main) + len(card.Prelims); n > 0 {
		total = strconv.Itoa(n)
	}
	insights = append(insights, fight.Insight{
		Label: "Total Fights",
		Value: total,
		Hint:  strconv.Itoa(len(card.Main)) + " main • " + strconv.Itoa(len(card.Prelims)) + " prelim",
	})

	titles := 0
	for _, f := range card.Main {
		if f.TitleFight {
			titles++
		}
	}
	if titles > 0 {
		hint := "Championship bout"
		if titles > 1 {
			hint = "Multiple belts"
		}
		insights = append(insights, fight.Insight{Label: "Title Fights", Value: strconv.Itoa(titles), Hint: hint})
	}
	return insights
}
