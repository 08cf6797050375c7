package reconcile

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/riskibarqy/fightcard/internal/domain/raw"
)

// Unknown is the display placeholder for a missing value.
const Unknown = "—"

var (
	feetInches   = regexp.MustCompile(`\d'\d+"`)
	minuteClock  = regexp.MustCompile(`^\d+:\d+$`)
	hourClock    = regexp.MustCompile(`^\d+:\d+:\d+$`)
	birthLayouts = []string{
		time.RFC3339,
		"2006-01-02T15:04:05",
		"2006-01-02",
		"2006/01/02",
		"01/02/2006",
		"January 2, 2006",
		"Jan 2, 2006",
		"2 January 2006",
	}
)

// FormatHeight renders inches as F'I". Strings already in feet/inches or
// centimetres pass through.
func FormatHeight(v any) string {
	if text, ok := v.(string); ok {
		trimmed := strings.TrimSpace(text)
		if trimmed == "" {
			return Unknown
		}
		if feetInches.MatchString(trimmed) || strings.Contains(trimmed, "cm") {
			return trimmed
		}
		if n, ok := raw.ToNumber(trimmed); ok {
			return FormatHeight(n)
		}
		return trimmed
	}
	inches, ok := raw.ToNumber(v)
	if !ok || inches <= 0 {
		return Unknown
	}
	feet := math.Floor(inches / 12)
	remainder := raw.Round(math.Mod(inches, 12))
	return fmt.Sprintf("%s'%s\"", raw.FormatNumber(feet), raw.FormatNumber(remainder))
}

// FormatWeight renders pounds as "N lb"; strings with a unit pass through.
func FormatWeight(v any) string {
	return formatWithUnit(v, "lb", "lb", "kg")
}

// FormatReach renders inches as "N in"; strings with a unit pass through.
func FormatReach(v any) string {
	return formatWithUnit(v, "in", "in")
}

func formatWithUnit(v any, unit string, passthrough ...string) string {
	if text, ok := v.(string); ok {
		trimmed := strings.TrimSpace(text)
		if trimmed == "" {
			return Unknown
		}
		lower := strings.ToLower(trimmed)
		for _, marker := range passthrough {
			if strings.Contains(lower, marker) {
				return trimmed
			}
		}
		if n, ok := raw.ToNumber(trimmed); ok {
			return raw.FormatNumber(n) + " " + unit
		}
		return trimmed
	}
	n, ok := raw.ToNumber(v)
	if !ok {
		return Unknown
	}
	return raw.FormatNumber(n) + " " + unit
}

// FormatAge renders an age; numeric values are rounded.
func FormatAge(v any) string {
	if text, ok := v.(string); ok {
		trimmed := strings.TrimSpace(text)
		if trimmed == "" {
			return Unknown
		}
		if n, ok := raw.ToNumber(trimmed); ok {
			return raw.FormatNumber(n)
		}
		return trimmed
	}
	n, ok := raw.ToNumber(v)
	if !ok {
		return Unknown
	}
	return raw.FormatNumber(raw.Round(n))
}

// AgeFromDate returns whole years between a birth date and now.
func AgeFromDate(v any, now time.Time) (int, bool) {
	text := raw.CleanText(v)
	if text == "" {
		return 0, false
	}
	for _, layout := range birthLayouts {
		born, err := time.Parse(layout, text)
		if err != nil {
			continue
		}
		years := now.Sub(born).Hours() / 24 / 365.25
		return int(math.Floor(years)), true
	}
	return 0, false
}

// FormatNumber renders v with at most digits decimals, trimming zeros.
func FormatNumber(v any, digits int) string {
	if !raw.Present(v) {
		return Unknown
	}
	n, ok := raw.ToNumber(v)
	if !ok {
		return raw.CleanText(v)
	}
	return decimal.NewFromFloat(n).Round(int32(digits)).String()
}

// FormatPercentage renders ratios (<= 1) and percentages alike as "N%".
func FormatPercentage(v any, digits int) string {
	if !raw.Present(v) {
		return Unknown
	}
	n, ok := raw.ToNumber(v)
	if !ok {
		return raw.CleanText(v)
	}
	if n <= 1 {
		n *= 100
	}
	return decimal.NewFromFloat(n).StringFixed(int32(digits)) + "%"
}

// FormatSeconds renders a second count as m:ss.
func FormatSeconds(v any) string {
	if !raw.Present(v) {
		return Unknown
	}
	n, ok := raw.ToNumber(v)
	if !ok {
		if text := raw.CleanText(v); text != "" {
			return text
		}
		return Unknown
	}
	total := int(math.Max(0, raw.Round(n)))
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

// FormatClock normalizes "m:ss" clocks and renders bare seconds as m:ss.
func FormatClock(v any) string {
	text, isText := v.(string)
	if !isText {
		if _, ok := raw.ToNumber(v); !ok {
			return Unknown
		}
		return FormatSeconds(v)
	}
	trimmed := strings.TrimSpace(text)
	switch {
	case trimmed == "":
		return Unknown
	case minuteClock.MatchString(trimmed):
		parts := strings.SplitN(trimmed, ":", 2)
		minutes, _ := strconv.Atoi(parts[0])
		seconds := parts[1]
		if len(seconds) < 2 {
			seconds = "0" + seconds
		}
		return strconv.Itoa(minutes) + ":" + seconds
	case hourClock.MatchString(trimmed):
		return trimmed
	}
	if n, ok := raw.ToNumber(trimmed); ok {
		return FormatSeconds(n)
	}
	return trimmed
}

// FormatOdds renders an American moneyline with an explicit plus sign.
func FormatOdds(v any) string {
	if !raw.Present(v) {
		return Unknown
	}
	n, ok := raw.ToNumber(v)
	if !ok {
		return raw.CleanText(v)
	}
	if n > 0 {
		return "+" + raw.FormatNumber(n)
	}
	return raw.FormatNumber(n)
}

// InchesToCm converts inches to centimetres with one decimal.
func InchesToCm(inches float64) (float64, bool) {
	return convertOneDecimal(inches, 2.54)
}

// LbsToKg converts pounds to kilograms with one decimal.
func LbsToKg(lbs float64) (float64, bool) {
	return convertOneDecimal(lbs, 0.453592)
}

func convertOneDecimal(v, factor float64) (float64, bool) {
	if v == 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	out, _ := decimal.NewFromFloat(v).Mul(decimal.NewFromFloat(factor)).Round(1).Float64()
	return out, true
}

// PerFightAverage divides total by fights with two decimals. A zero or
// unknown total yields nil.
func PerFightAverage(total any, fights int) *float64 {
	n, ok := raw.ToNumber(total)
	if !ok || n == 0 || fights == 0 {
		return nil
	}
	avg, _ := decimal.NewFromFloat(n).DivRound(decimal.NewFromInt(int64(fights)), 2).Float64()
	return &avg
}

// FormatRecord renders W-L-D with an optional "(N NC)" suffix. Returns ""
// when wins, losses and draws are all absent.
func FormatRecord(wins, losses, draws, noContests any) string {
	if !raw.Present(wins) && !raw.Present(losses) && !raw.Present(draws) {
		return ""
	}
	count := func(v any) string {
		if n, ok := raw.ToNumber(v); ok {
			return raw.FormatNumber(n)
		}
		return "0"
	}
	record := count(wins) + "-" + count(losses) + "-" + count(draws)
	if nc, ok := raw.ToNumber(noContests); ok && nc > 0 {
		record += " (" + raw.FormatNumber(nc) + " NC)"
	}
	return record
}

// RecordFightCount sums the dash-separated parts of a record. Returns false
// when the record has fewer than two parts.
func RecordFightCount(record string) (int, bool) {
	parts := strings.Split(record, "-")
	if len(parts) < 2 {
		return 0, false
	}
	total := 0
	for _, part := range parts {
		if n, ok := raw.LeadingInt(part); ok {
			total += n
		}
	}
	return total, true
}

// FormatLocation renders a venue string or a {city,state,country} object.
func FormatLocation(v any) string {
	if record, ok := raw.AsRecord(v); ok {
		parts := nonEmpty(
			record.String("city", "City"),
			record.String("state", "State"),
			record.String("country", "Country"),
		)
		if len(parts) == 0 {
			return "Location TBA"
		}
		return strings.Join(parts, ", ")
	}
	if text := raw.CleanText(v); text != "" {
		return text
	}
	return "Location TBA"
}
