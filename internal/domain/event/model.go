package event

import (
	"fmt"
	"time"

	"github.com/riskibarqy/fightcard/internal/domain/raw"
)

const (
	OfflineEventID   = "offline-event"
	OfflineEventName = "UFC Fight Night (Offline)"
	DefaultEventName = "UFC Event"
	UnknownLocation  = "Location TBA"
)

// Summary is one schedule row.
type Summary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Date string `json:"date"`
}

// Source is one event as delivered by an upstream, with its fights left raw.
// Each fight payload carries a Fighters list plus optional supplemental buckets.
type Source struct {
	Summary
	Location any          `json:"location"`
	Fights   []raw.Record `json:"fights"`
}

// Dataset is everything loaded from upstream in one pass.
type Dataset struct {
	Events      []Source     `json:"events"`
	Fighters    []raw.Record `json:"fighters"`
	LastUpdated time.Time    `json:"lastUpdated"`
}

func (s Source) Validate() error {
	if s.ID == "" {
		return fmt.Errorf("event id is required")
	}
	return nil
}

// Find returns the event with the given id.
func (d Dataset) Find(eventID string) (Source, bool) {
	for _, item := range d.Events {
		if item.ID == eventID {
			return item, true
		}
	}
	return Source{}, false
}

// Version identifies a dataset load for cache keys.
func (d Dataset) Version() string {
	return fmt.Sprintf("%d:%d:%d", d.LastUpdated.UnixNano(), len(d.Events), len(d.Fighters))
}
