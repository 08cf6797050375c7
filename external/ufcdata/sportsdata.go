package ufcdata

import (
	"strings"

	"github.com/riskibarqy/fightcard/internal/domain/event"
	"github.com/riskibarqy/fightcard/internal/domain/raw"
)

// FromSportsData maps the sports-data API layout. Fights already carry a
// PascalCase Fighters list and are passed through; canceled bouts are dropped.
func FromSportsData(doc raw.Record) event.Dataset {
	events := make([]event.Source, 0)
	for _, item := range raw.AsRecords(doc.First("Events", "events", "Schedule")) {
		id := raw.CleanText(item.First("EventId", "EventID", "Id", "ID", "id"))
		if id == "" {
			continue
		}
		source := event.Source{
			Summary: event.Summary{
				ID:   id,
				Name: item.String("Name", "ShortName", "name"),
				Date: dateOnly(item.String("Day", "DateTime", "Date", "date")),
			},
			Location: item.First("Venue", "Location", "location"),
		}
		for _, f := range item.Records("Fights") {
			if canceled(f) {
				continue
			}
			source.Fights = append(source.Fights, f)
		}
		events = append(events, source)
	}

	return event.Dataset{
		Events:      events,
		Fighters:    raw.AsRecords(doc.First("Fighters", "fighters")),
		LastUpdated: parseTimestamp(doc.First("Updated", "LastUpdated", "lastUpdated")),
	}
}

func canceled(f raw.Record) bool {
	switch strings.ToLower(f.String("Status")) {
	case "canceled", "cancelled":
		return true
	}
	if active, ok := f.Get("Active").(bool); ok && !active {
		return true
	}
	return false
}

func dateOnly(value string) string {
	if len(value) >= 10 && value[4] == '-' && value[7] == '-' {
		return value[:10]
	}
	return value
}
