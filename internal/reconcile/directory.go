package reconcile

import "github.com/riskibarqy/fightcard/internal/domain/raw"

var (
	profileIDFields = []string{
		"FighterId", "FighterID",
		"GlobalId", "GlobalID",
		"SportsDataId", "SportsDataID",
		"StatsId", "StatsID",
		"PersonId", "PersonID",
	}
	profileNameFields = []string{
		"Name", "FullName", "DisplayName", "ShortName", "PreferredName", "Nickname", "NickName",
	}
	entryIDFields = []string{
		"FighterId", "FighterID",
		"EventFighterId", "EventFighterID",
		"PlayerId", "PlayerID",
		"PersonId", "PersonID",
		"SourceId", "SourceID",
	}
	entryNameFields = []string{
		"Name", "FullName", "DisplayName", "ShortName", "PreferredName", "Nickname", "NickName",
	}
	lastNameFields = []string{"LastName", "Surname"}
)

// Directory indexes fighter profiles by id, name and last name. It is
// immutable once built and safe for concurrent lookups.
type Directory struct {
	byKey map[string]raw.Record
}

// BuildDirectory indexes profiles. The first profile to claim a key keeps it.
func BuildDirectory(profiles []raw.Record) *Directory {
	dir := &Directory{byKey: make(map[string]raw.Record, len(profiles)*4)}
	for _, profile := range profiles {
		if profile == nil {
			continue
		}
		for _, key := range profileKeys(profile) {
			if _, exists := dir.byKey[key]; !exists {
				dir.byKey[key] = profile
			}
		}
	}
	return dir
}

// Len returns the number of indexed keys.
func (d *Directory) Len() int {
	if d == nil {
		return 0
	}
	return len(d.byKey)
}

// Lookup finds the profile for a fight entry: id keys first, then name keys,
// then the last name. Returns nil on a miss.
func (d *Directory) Lookup(entry raw.Record) raw.Record {
	if d == nil || entry == nil {
		return nil
	}
	for _, key := range entryKeys(entry) {
		if profile, ok := d.byKey[key]; ok {
			return profile
		}
	}
	return nil
}

func profileKeys(profile raw.Record) []string {
	keys := make([]string, 0, 16)
	add := func(v any, namespace string) {
		if key := DirectoryKey(v, namespace); key != "" {
			keys = append(keys, key)
		}
	}

	for _, field := range profileIDFields {
		add(profile.Get(field), NamespaceID)
	}
	for _, field := range profileNameFields {
		add(profile.Get(field), NamespaceName)
	}

	first := raw.CleanText(profile.Get("FirstName"))
	last := raw.CleanText(profile.First(lastNameFields...))
	if first != "" && last != "" {
		add(first+" "+last, NamespaceName)
		add(last+" "+first, NamespaceName)
	}
	add(last, NamespaceLastName)
	return keys
}

func entryKeys(entry raw.Record) []string {
	keys := make([]string, 0, 16)
	add := func(v any, namespace string) {
		if key := DirectoryKey(v, namespace); key != "" {
			keys = append(keys, key)
		}
	}

	for _, field := range entryIDFields {
		add(entry.Get(field), NamespaceID)
	}
	for _, field := range entryNameFields {
		add(entry.Get(field), NamespaceName)
	}
	first := raw.CleanText(entry.Get("FirstName"))
	last := raw.CleanText(entry.First(lastNameFields...))
	if first != "" && last != "" {
		add(first+" "+last, NamespaceName)
		add(last+" "+first, NamespaceName)
	}
	add(last, NamespaceLastName)
	return keys
}
