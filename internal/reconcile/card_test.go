package reconcile

import (
	"reflect"
	"testing"

	"github.com/riskibarqy/fightcard/internal/domain/fight"
)

func bout(id string, rounds int, mutate ...func(*fight.Fight)) fight.Fight {
	f := fight.Fight{
		ID:       id,
		Rounds:   rounds,
		Fighter1: fight.Side{Name: id + "-red"},
		Fighter2: fight.Side{Name: id + "-blue"},
	}
	for _, m := range mutate {
		m(&f)
	}
	return f
}

func ids(fights []fight.Fight) []string {
	out := make([]string, 0, len(fights))
	for _, f := range fights {
		out = append(out, f.ID)
	}
	return out
}

func TestSplitCardOrdersByBilling(t *testing.T) {
	t.Parallel()

	fights := []fight.Fight{
		bout("p1", 3, func(f *fight.Fight) { f.CardSegment = "prelims" }),
		bout("m1", 3, func(f *fight.Fight) { f.CardSegment = "main" }),
		bout("co", 5, func(f *fight.Fight) { f.CoMainEvent = true }),
		bout("p2", 3, func(f *fight.Fight) { f.CardSegment = "early prelims" }),
		bout("me", 5, func(f *fight.Fight) { f.MainEvent = true }),
		bout("m2", 3, func(f *fight.Fight) { f.CardSegment = "main" }),
		bout("tf", 5, func(f *fight.Fight) { f.TitleFight = true }),
		bout("x1", 3),
	}

	card := SplitCard(fights)

	if got, want := ids(card.Main), []string{"me", "co", "tf", "m1", "m2", "p1"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected main card: %v, want %v", got, want)
	}
	if got, want := ids(card.Prelims), []string{"p2", "x1"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected prelims: %v, want %v", got, want)
	}
	if fights[0].ID != "p1" || fights[4].ID != "me" {
		t.Fatalf("input order must not change")
	}
}

func TestSplitCardForcesMainEvent(t *testing.T) {
	t.Parallel()

	fights := []fight.Fight{bout("a", 3), bout("b", 3), bout("c", 3)}
	card := SplitCard(fights)

	if len(card.Main) != 2 || len(card.Prelims) != 1 {
		t.Fatalf("expected 2 main and 1 prelim, got %d/%d", len(card.Main), len(card.Prelims))
	}
	if !card.Main[0].MainEvent || card.Main[0].Rounds != 5 {
		t.Fatalf("expected headliner promoted to a five-round main event, got %+v", card.Main[0])
	}
	if fights[0].MainEvent || fights[0].Rounds != 3 {
		t.Fatalf("input fights must not be modified")
	}
}

func TestSplitCardSizes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		total      int
		fiveRounds int
		wantMain   int
	}{
		{name: "two five-rounders", total: 12, fiveRounds: 2, wantMain: 6},
		{name: "one five-rounder", total: 12, fiveRounds: 1, wantMain: 5},
		{name: "one five-rounder short card", total: 3, fiveRounds: 1, wantMain: 3},
		{name: "no five-rounders", total: 7, fiveRounds: 0, wantMain: 4},
		{name: "no five-rounders large card", total: 14, fiveRounds: 0, wantMain: 5},
		{name: "single fight", total: 1, fiveRounds: 0, wantMain: 1},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			fights := make([]fight.Fight, 0, tc.total)
			for i := 0; i < tc.total; i++ {
				rounds := 3
				if i < tc.fiveRounds {
					rounds = 5
				}
				fights = append(fights, bout(string(rune('a'+i)), rounds))
			}
			card := SplitCard(fights)
			if len(card.Main) != tc.wantMain || len(card.Main)+len(card.Prelims) != tc.total {
				t.Fatalf("got %d main / %d prelims, want %d main", len(card.Main), len(card.Prelims), tc.wantMain)
			}
		})
	}
}

func TestSplitCardEmpty(t *testing.T) {
	t.Parallel()

	card := SplitCard(nil)
	if card.Main == nil || card.Prelims == nil {
		t.Fatalf("expected empty non-nil slices, got %#v", card)
	}
	if len(card.Main) != 0 || len(card.Prelims) != 0 {
		t.Fatalf("expected empty card")
	}
}

func TestInsights(t *testing.T) {
	t.Parallel()

	card := SplitCard([]fight.Fight{
		bout("a", 5, func(f *fight.Fight) { f.MainEvent, f.TitleFight, f.WeightClass = true, true, "Lightweight" }),
		bout("b", 5, func(f *fight.Fight) { f.TitleFight = true }),
		bout("c", 3),
		bout("d", 3),
		bout("e", 3),
		bout("f", 3),
		bout("g", 3, func(f *fight.Fight) { f.TitleFight = true }),
	})

	got := Insights(card)
	want := []fight.Insight{
		{Label: "Main Event", Value: "a-red vs a-blue", Hint: "Lightweight"},
		{Label: "Total Fights", Value: "7", Hint: "6 main • 1 prelim"},
		{Label: "Title Fights", Value: "3", Hint: "Multiple belts"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected insights:\n got %+v\nwant %+v", got, want)
	}

	empty := Insights(SplitCard(nil))
	if len(empty) != 1 || empty[0].Value != Unknown || empty[0].Hint != "0 main • 0 prelim" {
		t.Fatalf("unexpected empty insights: %+v", empty)
	}

	single := Insights(SplitCard([]fight.Fight{bout("solo", 3)}))
	if single[0].Hint != "Headline bout" {
		t.Fatalf("expected default hint, got %q", single[0].Hint)
	}
}
