package raw

import (
	"strconv"
	"strings"
)

// Record is one producer record keyed by whatever field names the producer used.
// Values are whatever the JSON decoder produced: string, float64, bool, nil,
// map[string]any or []any.
type Record map[string]any

// Get returns the raw value stored under key, or nil.
func (r Record) Get(key string) any {
	if r == nil {
		return nil
	}
	return r[key]
}

// First returns the first present value among keys, in order.
func (r Record) First(keys ...string) any {
	if r == nil {
		return nil
	}
	for _, key := range keys {
		if v, ok := r[key]; ok && Present(v) {
			return v
		}
	}
	return nil
}

// String returns the cleaned text of the first present value among keys.
func (r Record) String(keys ...string) string {
	return CleanText(r.First(keys...))
}

// Number returns the first present value among keys as a number.
func (r Record) Number(keys ...string) (float64, bool) {
	return ToNumber(r.First(keys...))
}

// Float returns the leading number of the first present value among keys.
func (r Record) Float(keys ...string) (float64, bool) {
	return ParseFloat(r.First(keys...))
}

// Int returns the first present value among keys rounded to an int.
func (r Record) Int(keys ...string) (int, bool) {
	n, ok := ToNumber(r.First(keys...))
	if !ok {
		return 0, false
	}
	return int(Round(n)), true
}

// Bool reports whether any of keys holds a truthy value.
func (r Record) Bool(keys ...string) bool {
	for _, key := range keys {
		if Truthy(r.Get(key)) {
			return true
		}
	}
	return false
}

// Records decodes a nested list of objects stored under key.
func (r Record) Records(key string) []Record {
	return AsRecords(r.Get(key))
}

// Clone returns a shallow copy.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for key, value := range r {
		out[key] = value
	}
	return out
}

// Merge overlays each record on top of the previous ones; later records win.
func Merge(records ...Record) Record {
	size := 0
	for _, record := range records {
		size += len(record)
	}
	out := make(Record, size)
	for _, record := range records {
		for key, value := range record {
			out[key] = value
		}
	}
	return out
}

// AsRecord converts a decoded JSON object into a Record.
func AsRecord(v any) (Record, bool) {
	switch typed := v.(type) {
	case Record:
		return typed, typed != nil
	case map[string]any:
		return Record(typed), typed != nil
	default:
		return nil, false
	}
}

// AsRecords converts a decoded JSON array (or id-keyed object) of objects into
// Records, dropping anything that is not an object.
func AsRecords(v any) []Record {
	switch typed := v.(type) {
	case []Record:
		return typed
	case []map[string]any:
		out := make([]Record, 0, len(typed))
		for _, item := range typed {
			if item != nil {
				out = append(out, Record(item))
			}
		}
		return out
	case []any:
		out := make([]Record, 0, len(typed))
		for _, item := range typed {
			if record, ok := AsRecord(item); ok {
				out = append(out, record)
			}
		}
		return out
	case map[string]any:
		keys := make([]string, 0, len(typed))
		for key := range typed {
			keys = append(keys, key)
		}
		sortStrings(keys)
		out := make([]Record, 0, len(typed))
		for _, key := range keys {
			if record, ok := AsRecord(typed[key]); ok {
				out = append(out, record)
			}
		}
		return out
	default:
		return nil
	}
}

// Truthy reports whether a flag-like value is set. Strings that parse as a
// boolean use that value; other non-empty strings count as set.
func Truthy(v any) bool {
	switch typed := v.(type) {
	case nil:
		return false
	case bool:
		return typed
	case string:
		text := strings.TrimSpace(typed)
		if text == "" {
			return false
		}
		if parsed, err := strconv.ParseBool(text); err == nil {
			return parsed
		}
		switch strings.ToLower(text) {
		case "yes", "y":
			return true
		case "no", "n":
			return false
		}
		return true
	default:
		if n, ok := ToNumber(typed); ok {
			return n != 0
		}
		return true
	}
}
