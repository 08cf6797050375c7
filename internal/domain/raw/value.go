package raw

import (
	"math"
	"sort"
	"strconv"
	"strings"
)

// Present reports whether v carries a value. Nil and the empty string are
// absent; zero, false and whitespace-only strings are present.
func Present(v any) bool {
	switch typed := v.(type) {
	case nil:
		return false
	case string:
		return typed != ""
	case Record:
		return typed != nil
	case map[string]any:
		return typed != nil
	default:
		return true
	}
}

// Coalesce returns the first present value, or nil.
func Coalesce(values ...any) any {
	for _, v := range values {
		if Present(v) {
			return v
		}
	}
	return nil
}

// CleanText renders v as text with whitespace runs collapsed and trimmed.
func CleanText(v any) string {
	return collapseSpaces(Text(v))
}

// Text renders v as text without cleaning. Numbers use the shortest
// representation; lists are joined with ", ".
func Text(v any) string {
	switch typed := v.(type) {
	case nil:
		return ""
	case string:
		return typed
	case float64:
		return FormatNumber(typed)
	case float32:
		return FormatNumber(float64(typed))
	case int:
		return strconv.Itoa(typed)
	case int64:
		return strconv.FormatInt(typed, 10)
	case int32:
		return strconv.FormatInt(int64(typed), 10)
	case bool:
		return strconv.FormatBool(typed)
	case interface{ String() string }:
		return typed.String()
	case []any:
		parts := make([]string, 0, len(typed))
		for _, item := range typed {
			if text := CleanText(item); text != "" {
				parts = append(parts, text)
			}
		}
		return strings.Join(parts, ", ")
	case []string:
		return strings.Join(typed, ", ")
	default:
		return ""
	}
}

// FormatNumber renders a number the shortest way ("14", "2.5").
func FormatNumber(n float64) string {
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return ""
	}
	return strconv.FormatFloat(n, 'f', -1, 64)
}

// ToNumber converts v to a finite number. Strings must parse completely
// after trimming; a leading "+" is accepted.
func ToNumber(v any) (float64, bool) {
	var n float64
	switch typed := v.(type) {
	case nil:
		return 0, false
	case float64:
		n = typed
	case float32:
		n = float64(typed)
	case int:
		n = float64(typed)
	case int64:
		n = float64(typed)
	case int32:
		n = float64(typed)
	case interface{ Float64() (float64, error) }:
		parsed, err := typed.Float64()
		if err != nil {
			return 0, false
		}
		n = parsed
	case string:
		text := strings.TrimSpace(typed)
		if text == "" {
			return 0, false
		}
		parsed, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return 0, false
		}
		n = parsed
	default:
		return 0, false
	}
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return n, true
}

// ParseFloat reads the leading decimal number of v, so "45%" is 45 and
// "5'11\"" is 5. Non-string numbers pass through.
func ParseFloat(v any) (float64, bool) {
	text, ok := v.(string)
	if !ok {
		return ToNumber(v)
	}
	prefix := leadingNumber(strings.TrimSpace(text))
	if prefix == "" {
		return 0, false
	}
	n, err := strconv.ParseFloat(prefix, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return n, true
}

// ParseFloatPtr is ParseFloat returning nil for unknown values.
func ParseFloatPtr(v any) *float64 {
	n, ok := ParseFloat(v)
	if !ok {
		return nil
	}
	return &n
}

// ToNumberPtr is ToNumber returning nil for unknown values.
func ToNumberPtr(v any) *float64 {
	n, ok := ToNumber(v)
	if !ok {
		return nil
	}
	return &n
}

// LeadingInt reads the leading integer of s, so "0 (1 NC)" is 0.
func LeadingInt(s string) (int, bool) {
	s = strings.TrimSpace(s)
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}

// Round rounds half up toward positive infinity.
func Round(x float64) float64 {
	return math.Floor(x + 0.5)
}

func leadingNumber(s string) string {
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	digits := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
		digits++
	}
	if end < len(s) && s[end] == '.' {
		end++
		for end < len(s) && s[end] >= '0' && s[end] <= '9' {
			end++
			digits++
		}
	}
	if digits == 0 {
		return ""
	}
	if end < len(s) && (s[end] == 'e' || s[end] == 'E') {
		exp := end + 1
		if exp < len(s) && (s[exp] == '-' || s[exp] == '+') {
			exp++
		}
		start := exp
		for exp < len(s) && s[exp] >= '0' && s[exp] <= '9' {
			exp++
		}
		if exp > start {
			end = exp
		}
	}
	return s[:end]
}

func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func sortStrings(values []string) {
	sort.Strings(values)
}
