package ufcdata

import (
	"fmt"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/fightcard/internal/domain/raw"
)

// Shape names an upstream document layout.
type Shape string

const (
	ShapeAuto       Shape = "auto"
	ShapeScrape     Shape = "scrape"
	ShapeSportsData Shape = "sportsdata"
)

func ParseShape(value string) (Shape, error) {
	switch Shape(strings.ToLower(strings.TrimSpace(value))) {
	case "", ShapeAuto:
		return ShapeAuto, nil
	case ShapeScrape:
		return ShapeScrape, nil
	case ShapeSportsData:
		return ShapeSportsData, nil
	default:
		return ShapeAuto, fmt.Errorf("unknown data shape %q", value)
	}
}

func decode(data []byte) (any, error) {
	var doc any
	if err := sonic.Unmarshal(data, &doc); err != nil {
		return nil, crerr.Wrap(err, "decode upstream document")
	}
	return doc, nil
}

// document normalizes a decoded payload into a top-level record. A bare list
// is taken as the event list, and a single event object is wrapped in one.
func document(doc any, shape Shape) raw.Record {
	eventsKey := "events"
	if shape == ShapeSportsData {
		eventsKey = "Events"
	}

	switch typed := doc.(type) {
	case []any:
		return raw.Record{eventsKey: typed}
	case map[string]any:
		record := raw.Record(typed)
		if record.Get("events") != nil || record.Get("Events") != nil || record.Get("schedule") != nil {
			return record
		}
		if record.Get("fights") != nil || record.Get("Fights") != nil {
			return raw.Record{eventsKey: []any{typed}}
		}
		return record
	default:
		return raw.Record{}
	}
}

// DetectShape guesses the layout from the first event. PascalCase event keys
// or fights that carry a Fighters list mark the sports-data layout.
func DetectShape(doc any) Shape {
	record := document(doc, ShapeAuto)
	if record.Get("Events") != nil || record.Get("Fighters") != nil {
		return ShapeSportsData
	}
	events := raw.AsRecords(record.First("events", "schedule"))
	if len(events) == 0 {
		return ShapeScrape
	}
	first := events[0]
	if first.Get("EventId") != nil || first.Get("EventID") != nil || first.Get("Fights") != nil {
		return ShapeSportsData
	}
	for _, f := range first.Records("fights") {
		if f.Get("Fighters") != nil {
			return ShapeSportsData
		}
	}
	return ShapeScrape
}

func parseTimestamp(v any) time.Time {
	text := raw.CleanText(v)
	if text == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if parsed, err := time.Parse(layout, text); err == nil {
			return parsed.UTC()
		}
	}
	return time.Time{}
}
