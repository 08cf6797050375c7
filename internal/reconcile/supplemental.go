package reconcile

import "github.com/riskibarqy/fightcard/internal/domain/raw"

// SupplementalBuckets are the per-fight collections merged into fighter
// entries, in priority order.
var SupplementalBuckets = []string{
	"FighterResults",
	"FighterOdds",
	"FighterProps",
	"FighterStats",
	"FighterTotals",
	"FightStats",
	"Stats",
	"StatLines",
}

var supplementalIDFields = []string{
	"FighterId", "FighterID",
	"EventFighterId", "EventFighterID",
	"PlayerId", "PlayerID",
	"PersonId", "PersonID",
}

// Supplemental maps a fighter key to the fields collected for it.
type Supplemental map[string]raw.Record

// CollectSupplemental gathers supplemental records from a fight payload. When
// two buckets describe the same fighter, a field keeps the first value seen.
func CollectSupplemental(fight raw.Record) Supplemental {
	out := Supplemental{}
	for _, bucket := range SupplementalBuckets {
		for _, item := range fight.Records(bucket) {
			key := NormalizeKey(item.First(supplementalIDFields...))
			if key == "" {
				continue
			}
			existing, ok := out[key]
			if !ok {
				out[key] = item.Clone()
				continue
			}
			for field, value := range item {
				if _, set := existing[field]; !set {
					existing[field] = value
				}
			}
		}
	}
	return out
}

// Lookup returns the supplemental record for entry, or nil.
func (s Supplemental) Lookup(entry raw.Record) raw.Record {
	if len(s) == 0 || entry == nil {
		return nil
	}
	key := NormalizeKey(entry.First(supplementalIDFields...))
	if key == "" {
		return nil
	}
	return s[key]
}

// MergeInto overlays entry on its supplemental record; entry fields win.
func (s Supplemental) MergeInto(entry raw.Record) raw.Record {
	supp := s.Lookup(entry)
	if supp == nil {
		return entry
	}
	return raw.Merge(supp, entry)
}
