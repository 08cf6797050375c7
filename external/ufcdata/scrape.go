package ufcdata

import (
	"strings"

	"github.com/riskibarqy/fightcard/internal/domain/event"
	"github.com/riskibarqy/fightcard/internal/domain/raw"
	"github.com/riskibarqy/fightcard/internal/reconcile"
)

// profileFields copies camelCase scrape keys onto the PascalCase names the
// reconciler reads. Keys already present are left alone.
var profileFields = [][2]string{
	{"Name", "name"},
	{"Nickname", "nickname"},
	{"Wins", "wins"},
	{"Losses", "losses"},
	{"Draws", "draws"},
	{"NoContests", "noContests"},
	{"Country", "country"},
	{"Height", "height"},
	{"Weight", "weight"},
	{"Reach", "reach"},
	{"LegReach", "legReach"},
	{"Age", "age"},
	{"BirthDate", "born"},
	{"PhotoUrl", "imageUrl"},
}

var cornerFields = [][2]string{
	{"Name", "name"},
	{"Ranking", "ranking"},
	{"Age", "age"},
	{"Height", "height"},
	{"Reach", "reach"},
	{"LegReach", "legReach"},
	{"Weight", "lastWeighIn"},
	{"Country", "country"},
	{"Moneyline", "odds"},
}

// FromScrape maps the stats-site scrape layout:
//
//	{events: [{url, name, date, location, fights: [{url, weightClass, rounds,
//	  boutFormat, fighter1: {name, url, ...}, fighter2: {...}}]}],
//	 fighters: [{url, name, wins, losses, ..., fightHistory}]}
//
// Corners are enriched with the matching fighter profile, looked up by
// profile url or by name.
func FromScrape(doc raw.Record) event.Dataset {
	profiles := make([]raw.Record, 0)
	for _, item := range raw.AsRecords(doc.First("fighters", "Fighters")) {
		profiles = append(profiles, scrapeProfile(item))
	}
	index := newProfileIndex(profiles)

	events := make([]event.Source, 0)
	for _, item := range raw.AsRecords(doc.First("events", "schedule")) {
		id := slug(item.String("id", "eventId", "url", "name"))
		if id == "" {
			continue
		}
		source := event.Source{
			Summary: event.Summary{
				ID:   id,
				Name: item.String("name", "eventName", "title"),
				Date: item.String("date", "eventDate"),
			},
			Location: item.First("location", "venue"),
		}
		for _, f := range item.Records("fights") {
			source.Fights = append(source.Fights, scrapeFight(f, index))
		}
		events = append(events, source)
	}

	return event.Dataset{
		Events:      events,
		Fighters:    profiles,
		LastUpdated: parseTimestamp(doc.First("lastUpdated", "scrapedAt", "updatedAt")),
	}
}

func scrapeProfile(item raw.Record) raw.Record {
	out := item.Clone()
	setIfAbsent(out, "FighterId", raw.Coalesce(item.Get("FighterId"), slug(item.String("url")), item.Get("id")))
	copyFields(out, item, profileFields)
	return out
}

func scrapeFight(item raw.Record, index profileIndex) raw.Record {
	out := make(raw.Record, len(item)+3)
	for key, value := range item {
		if key == "fighter1" || key == "fighter2" {
			continue
		}
		out[key] = value
	}
	setIfAbsent(out, "FightId", slug(item.String("url", "id")))
	setIfAbsent(out, "WeightClass", item.Get("weightClass"))
	setIfAbsent(out, "Rounds", item.Get("rounds"))

	fighters := make([]any, 0, 2)
	for i, key := range []string{"fighter1", "fighter2"} {
		corner, ok := raw.AsRecord(item.Get(key))
		if !ok {
			continue
		}
		entry := corner.Clone()
		setIfAbsent(entry, "FighterId", slug(corner.String("url", "id")))
		copyFields(entry, corner, cornerFields)
		entry["Order"] = float64(i + 1)

		if profile := index.lookup(corner.String("url"), entry.String("Name")); profile != nil {
			entry = raw.Merge(profile, entry)
		}
		fighters = append(fighters, entry)
	}
	out["Fighters"] = fighters
	return out
}

func copyFields(dst, src raw.Record, pairs [][2]string) {
	for _, pair := range pairs {
		setIfAbsent(dst, pair[0], src.Get(pair[1]))
	}
}

func setIfAbsent(record raw.Record, key string, value any) {
	if raw.Present(record.Get(key)) || !raw.Present(value) {
		return
	}
	record[key] = value
}

// slug turns a profile or event url into a stable id: the last path segment
// without a .html suffix. Plain values come back cleaned.
func slug(value string) string {
	value = strings.TrimSpace(value)
	if i := strings.IndexAny(value, "?#"); i >= 0 {
		value = value[:i]
	}
	value = strings.TrimRight(value, "/")
	if i := strings.LastIndex(value, "/"); i >= 0 {
		value = value[i+1:]
	}
	return strings.TrimSuffix(value, ".html")
}

type profileIndex map[string]raw.Record

func newProfileIndex(profiles []raw.Record) profileIndex {
	index := make(profileIndex, len(profiles)*2)
	for _, profile := range profiles {
		for _, key := range []string{
			reconcile.DirectoryKey(profile.String("FighterId"), "id"),
			reconcile.DirectoryKey(profile.String("Name"), "name"),
		} {
			if key == "" {
				continue
			}
			if _, taken := index[key]; !taken {
				index[key] = profile
			}
		}
	}
	return index
}

func (p profileIndex) lookup(url, name string) raw.Record {
	if key := reconcile.DirectoryKey(slug(url), "id"); key != "" {
		if profile, ok := p[key]; ok {
			return profile
		}
	}
	if key := reconcile.DirectoryKey(name, "name"); key != "" {
		if profile, ok := p[key]; ok {
			return profile
		}
	}
	return nil
}
