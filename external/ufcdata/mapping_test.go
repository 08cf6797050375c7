package ufcdata

import (
	"os"
	"testing"
	"time"

	"github.com/riskibarqy/fightcard/internal/domain/raw"
	"github.com/riskibarqy/fightcard/internal/reconcile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadFixture(t *testing.T, name string) any {
	t.Helper()
	data, err := os.ReadFile("testdata/" + name)
	require.NoError(t, err)
	doc, err := decode(data)
	require.NoError(t, err)
	return doc
}

func TestFromScrape(t *testing.T) {
	t.Parallel()

	doc := loadFixture(t, "scrape.json")
	require.Equal(t, ShapeScrape, DetectShape(doc))

	dataset := FromScrape(document(doc, ShapeScrape))
	require.Len(t, dataset.Events, 1)
	require.Len(t, dataset.Fighters, 2)
	assert.Equal(t, time.Date(2025, 12, 1, 10, 0, 0, 0, time.UTC), dataset.LastUpdated)

	ufc323 := dataset.Events[0]
	assert.Equal(t, "ufc_323-2567", ufc323.ID)
	assert.Equal(t, "UFC 323", ufc323.Name)
	assert.Equal(t, "December 6, 2025", ufc323.Date)
	assert.Equal(t, "T-Mobile Arena, Las Vegas", ufc323.Location)
	require.Len(t, ufc323.Fights, 3)

	headliner := ufc323.Fights[0]
	assert.Equal(t, "dvalishvili_vs_yan-9001", headliner.Get("FightId"))
	corners := headliner.Records("Fighters")
	require.Len(t, corners, 2)
	assert.Equal(t, "merab_dvalishvili-111", corners[0].Get("FighterId"))
	assert.Equal(t, 20.0, corners[0].Get("Wins"), "profile stats are merged into the corner")
	assert.Equal(t, "The Machine", corners[0].Get("Nickname"))
	assert.Equal(t, 1.0, corners[0].Get("Order"))
	assert.Equal(t, "petr_yan-222", corners[1].Get("FighterId"))
	assert.Nil(t, corners[1].Get("Wins"))

	onama := ufc323.Fights[1].Records("Fighters")[1]
	assert.Equal(t, "david_onama-444", onama.Get("FighterId"), "profile found by name when the corner has no url")
	assert.Equal(t, "Uganda", onama.Get("Country"))
}

func TestFromScrapeBuildsCanonicalFights(t *testing.T) {
	t.Parallel()

	dataset := FromScrape(document(loadFixture(t, "scrape.json"), ShapeScrape))
	builder := reconcile.NewBuilder()
	dir := reconcile.BuildDirectory(dataset.Fighters)

	headliner := builder.BuildFight(dataset.Events[0].Fights[0], dir)
	require.NotNil(t, headliner)
	assert.Equal(t, 5, headliner.Rounds)
	assert.True(t, headliner.MainEvent)
	assert.Equal(t, "20-4-0", headliner.Fighter1.Record)
	assert.Len(t, headliner.Fighter1.FightHistory, 1)
	assert.Equal(t, "merab_dvalishvili-111-petr_yan-222", headliner.FightKey)

	second := builder.BuildFight(dataset.Events[0].Fights[1], dir)
	require.NotNil(t, second)
	assert.Equal(t, "Featherweight", second.WeightClass)
	assert.Equal(t, "13-2-0", second.Fighter2.Record)
	assert.Equal(t, "ug", second.Fighter2.FlagCode)

	assert.Nil(t, builder.BuildFight(dataset.Events[0].Fights[2], dir), "one corner is not a fight")
}

func TestFromSportsData(t *testing.T) {
	t.Parallel()

	doc := loadFixture(t, "sportsdata.json")
	require.Equal(t, ShapeSportsData, DetectShape(doc))

	dataset := FromSportsData(document(doc, ShapeSportsData))
	require.Len(t, dataset.Events, 1)

	fightNight := dataset.Events[0]
	assert.Equal(t, "864", fightNight.ID)
	assert.Equal(t, "UFC Fight Night: Garcia vs. Onama", fightNight.Name)
	assert.Equal(t, "2025-11-01", fightNight.Date)
	require.Len(t, fightNight.Fights, 1, "canceled bouts are dropped")
	assert.Equal(t, "Las Vegas, NV, USA", reconcile.FormatLocation(fightNight.Location))

	f := reconcile.NewBuilder().BuildFight(fightNight.Fights[0], reconcile.BuildDirectory(dataset.Fighters))
	require.NotNil(t, f)
	assert.Equal(t, "Steve Garcia", f.Fighter1.Name)
	assert.Equal(t, "14-5-0", f.Fighter1.Record)
	assert.Equal(t, "7-8", f.FightKey)
	assert.Equal(t, "Steve Garcia", f.FavoriteName)
}

func TestDocumentNormalization(t *testing.T) {
	t.Parallel()

	single := map[string]any{"name": "UFC 999", "fights": []any{}}
	doc := document(single, ShapeScrape)
	require.Len(t, doc.Records("events"), 1)

	assert.Equal(t, raw.Record{}, document("not a document", ShapeAuto))
	assert.Equal(t, ShapeScrape, DetectShape(nil))
	assert.Equal(t, ShapeSportsData, DetectShape(map[string]any{"Events": []any{}}))
}

func TestParseShape(t *testing.T) {
	t.Parallel()

	tests := map[string]Shape{"": ShapeAuto, "AUTO": ShapeAuto, " scrape ": ShapeScrape, "sportsdata": ShapeSportsData}
	for in, want := range tests {
		got, err := ParseShape(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := ParseShape("xml")
	assert.Error(t, err)
}

func TestSlug(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"https://gidstats.com/fighters/petr_yan-222.html": "petr_yan-222",
		"https://gidstats.com/events/ufc_323-2567/":       "ufc_323-2567",
		"/fighters/a.html?ref=x#top":                      "a",
		"UFC 323":                                         "UFC 323",
		"":                                                "",
	}
	for in, want := range tests {
		assert.Equal(t, want, slug(in), in)
	}
}
