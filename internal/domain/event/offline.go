package event

import "github.com/riskibarqy/fightcard/internal/domain/raw"

// Offline returns the always-available fixture event used when upstream data
// is missing.
func Offline() Source {
	return Source{
		Summary: Summary{
			ID:   OfflineEventID,
			Name: OfflineEventName,
			Date: "",
		},
		Location: "UFC APEX, Las Vegas, NV",
		Fights: []raw.Record{
			{
				"FightId":     "offline-garcia-onama",
				"WeightClass": "Featherweight",
				"CardSegment": "Main",
				"Rounds":      3.0,
				"TitleFight":  false,
				"Fighters": []any{
					map[string]any{
						"Name":        "Steve Garcia",
						"FighterId":   "garcia-steve",
						"Record":      "14-5-0",
						"CountryCode": "us",
					},
					map[string]any{
						"Name":        "David Onama",
						"FighterId":   "onama-david",
						"Record":      "13-2-0",
						"CountryCode": "ug",
					},
				},
			},
		},
	}
}
