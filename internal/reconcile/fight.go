package reconcile

import (
	"regexp"
	"sort"
	"strings"

	"github.com/riskibarqy/fightcard/internal/domain/fight"
	"github.com/riskibarqy/fightcard/internal/domain/raw"
)

// StatusScheduled is the status of a bout with no recorded outcome.
const StatusScheduled = "Scheduled"

var (
	summaryScrambled = regexp.MustCompile(`(?i)\bscrambled\b`)
	summaryRounds    = regexp.MustCompile(`(?i)\b\d+\s*rounds?\b`)
	trailingBullet   = regexp.MustCompile(`\s*•\s*$`)
	leadingBullet    = regexp.MustCompile(`^\s*•\s*`)
	leadingDigits    = regexp.MustCompile(`^(\d+)`)
	anyDigits        = regexp.MustCompile(`(\d+)`)
	nonOrderChars    = regexp.MustCompile(`[^0-9.\-]`)
)

var divisionLimits = []struct {
	maxPounds float64
	name      string
}{
	{115, "Strawweight"},
	{125, "Flyweight"},
	{135, "Bantamweight"},
	{145, "Featherweight"},
	{155, "Lightweight"},
	{170, "Welterweight"},
	{185, "Middleweight"},
	{205, "Light Heavyweight"},
}

var (
	fighterOrderKeys = []string{"Order", "SortOrder", "Sequence", "Number"}
	fightOrderKeys   = []string{
		"Order", "SortOrder", "CardOrder", "CardSequence", "EventOrder", "EventSequence",
		"MatchNumber", "FightNumber", "SequenceNumber", "Sequence",
	}
	winnerIDKeys = []string{"WinnerId", "WinnerID", "WinningFighterId", "WinningFighterID"}
)

// WeightClassFromPounds maps a weight such as "155 lb" to its division. Text
// without "lb" or without digits is returned unchanged.
func WeightClassFromPounds(text string) string {
	if text == "" || !strings.Contains(strings.ToLower(text), "lb") {
		return text
	}
	match := anyDigits.FindString(text)
	if match == "" {
		return text
	}
	pounds, _ := raw.ToNumber(match)
	for _, limit := range divisionLimits {
		if pounds <= limit.maxPounds {
			return limit.name
		}
	}
	return "Heavyweight"
}

// OrderValue returns the first numeric ordering hint among values. Strings
// are stripped to digits, dots and dashes before parsing.
func OrderValue(values ...any) (float64, bool) {
	for _, v := range values {
		switch typed := v.(type) {
		case nil:
			continue
		case string:
			stripped := nonOrderChars.ReplaceAllString(typed, "")
			if stripped == "" {
				continue
			}
			if n, ok := raw.ToNumber(stripped); ok {
				return n, true
			}
		default:
			if n, ok := raw.ToNumber(typed); ok {
				return n, true
			}
		}
	}
	return 0, false
}

func recordValues(r raw.Record, keys []string) []any {
	out := make([]any, len(keys))
	for i, key := range keys {
		out[i] = r.Get(key)
	}
	return out
}

func cleanSummary(text string) string {
	text = summaryScrambled.ReplaceAllString(text, "")
	text = summaryRounds.ReplaceAllString(text, "")
	text = strings.TrimSpace(text)
	text = trailingBullet.ReplaceAllString(text, "")
	text = leadingBullet.ReplaceAllString(text, "")
	return strings.Join(strings.Fields(text), " ")
}

func validRounds(n float64) bool {
	return n > 0 && n <= 5
}

// BuildFight reconciles one fight payload into a canonical fight. It returns
// nil when the payload lists fewer than two fighters.
func (b *Builder) BuildFight(payload raw.Record, dir *Directory) *fight.Fight {
	if payload == nil {
		return nil
	}
	supplemental := CollectSupplemental(payload)

	fighters := payload.Records("Fighters")
	if len(fighters) < 2 {
		return nil
	}
	fighters = append([]raw.Record(nil), fighters...)
	sort.SliceStable(fighters, func(i, j int) bool {
		oi, okI := OrderValue(recordValues(fighters[i], fighterOrderKeys)...)
		oj, okJ := OrderValue(recordValues(fighters[j], fighterOrderKeys)...)
		return okI && okJ && oi < oj
	})

	enriched := make([]raw.Record, len(fighters))
	for i, entry := range fighters {
		enriched[i] = supplemental.MergeInto(entry)
	}
	entry1, entry2 := enriched[0], enriched[1]

	side1 := b.BuildSide(entry1, dir.Lookup(entry1), supplemental.Lookup(entry1))
	side2 := b.BuildSide(entry2, dir.Lookup(entry2), supplemental.Lookup(entry2))
	b.applyStaticOdds(&side1, &side2)

	weightClass := raw.CleanText(payload.First("WeightClass", "weightClass", "WeightClassDescription", "Division"))
	if scrambledText.MatchString(weightClass) {
		weightClass = ""
	}
	weightClass = WeightClassFromPounds(weightClass)

	description := strings.ToLower(raw.CleanText(payload.Get("Description")))
	titleFight := raw.Truthy(payload.Get("TitleFight")) ||
		raw.Truthy(payload.Get("IsTitleFight")) ||
		strings.Contains(strings.ToLower(weightClass), "title") ||
		strings.Contains(description, "title")
	mainEvent := raw.Truthy(payload.Get("MainEvent")) ||
		raw.Truthy(payload.Get("IsMainEvent")) ||
		strings.Contains(strings.ToLower(raw.CleanText(payload.Get("CardSegment"))), "main") ||
		strings.Contains(strings.ToLower(raw.CleanText(payload.Get("Sequence"))), "main")
	coMainEvent := raw.Truthy(payload.Get("CoMainEvent")) ||
		raw.Truthy(payload.Get("IsCoMainEvent")) ||
		strings.Contains(description, "co-main") ||
		strings.Contains(strings.ToLower(raw.CleanText(payload.Get("Name"))), "co-main")

	rounds := inferRounds(payload, side1, side2, titleFight || mainEvent)

	status := raw.CleanText(raw.Coalesce(payload.Get("Status"), payload.Get("FightStatus"), payload.Get("Result"), StatusScheduled))
	method := raw.CleanText(payload.First("Method", "MethodOfVictory", "Outcome", "ResultDescription", "Decision"))
	if isArtifact(method) {
		method = ""
	}

	winnerName := b.winnerName(payload, enriched)

	f := &fight.Fight{
		FightKey:      side1.ID + "-" + side2.ID,
		WeightClass:   weightClass,
		DetailLine:    detailLine(payload, titleFight, weightClass),
		Rounds:        rounds,
		TitleFight:    titleFight,
		MainEvent:     mainEvent,
		CoMainEvent:   coMainEvent,
		CardSegment:   cardSegment(payload, mainEvent || coMainEvent || titleFight),
		Status:        status,
		Method:        method,
		FinishRound:   raw.CleanText(payload.First("EndingRound", "ResultRound", "RoundEnded", "Round")),
		FinishTime:    raw.CleanText(payload.First("EndingTime", "ResultTime", "Time", "TimeElapsed")),
		Referee:       raw.CleanText(payload.First("Referee", "Official", "RefereeName")),
		Judges:        raw.CleanText(payload.First("Judges", "Scorecard", "Scorecards", "DecisionDetails")),
		WinnerName:    winnerName,
		ResultSummary: resultSummary(winnerName, method, status),
		OverUnder:     raw.ToNumberPtr(payload.First("OverUnder", "TotalRounds", "Total")),
		OverOdds:      raw.ToNumberPtr(payload.First("OverOdds", "OverPayout", "OverLine")),
		UnderOdds:     raw.ToNumberPtr(payload.First("UnderOdds", "UnderPayout", "UnderLine")),
		FavoriteName:  favoriteName(side1, side2, winnerName),
		FallbackRank:  fallbackRank(mainEvent, coMainEvent),
	}
	if order, ok := OrderValue(recordValues(payload, fightOrderKeys)...); ok {
		f.OrderRank = &order
	}

	side1.Result = sideResult(side1, winnerName, status)
	side2.Result = sideResult(side2, winnerName, status)
	f.Fighter1, f.Fighter2 = side1, side2

	f.ID = raw.CleanText(payload.First("FightId", "FightID", "EventFightId"))
	if f.ID == "" {
		f.ID = f.FightKey
	}
	return f
}

// applyStaticOdds fills both moneylines from the static board when neither
// side carries feed odds.
func (b *Builder) applyStaticOdds(side1, side2 *fight.Side) {
	if b.odds == nil || side1.Odds.Moneyline != nil || side2.Odds.Moneyline != nil {
		return
	}
	ml1, ml2, ok := b.odds.Lookup(side1.Name, side2.Name)
	if !ok {
		return
	}
	for _, pair := range []struct {
		side      *fight.Side
		moneyline float64
	}{{side1, ml1}, {side2, ml2}} {
		moneyline := pair.moneyline
		pair.side.Odds.Moneyline = &moneyline
		pair.side.Odds.Implied = impliedPtr(moneyline)
		pair.side.Odds.Source = fight.OddsSourceStatic
	}
}

func inferRounds(payload raw.Record, side1, side2 fight.Side, longFight bool) int {
	rounds := func() float64 {
		if n, ok := raw.ToNumber(payload.First("rounds", "Rounds", "NumberOfRounds", "ScheduledRounds")); ok && validRounds(n) {
			return raw.Round(n)
		}
		if format := raw.Text(payload.First("boutFormat", "BoutFormat")); format != "" {
			if m := leadingDigits.FindString(format); m != "" {
				if n, ok := raw.ToNumber(m); ok && validRounds(n) {
					return n
				}
			}
		}
		fromSide := side1.Stats.Matchup.Rounds
		if fromSide == nil || *fromSide == 0 {
			fromSide = side2.Stats.Matchup.Rounds
		}
		if fromSide != nil && validRounds(*fromSide) {
			return raw.Round(*fromSide)
		}
		if longFight {
			return 5
		}
		return 3
	}()
	if rounds < 1 || rounds > 5 {
		return 3
	}
	return int(rounds)
}

func (b *Builder) winnerName(payload raw.Record, entries []raw.Record) string {
	if winnerID := raw.CleanText(payload.First(winnerIDKeys...)); winnerID != "" {
		for _, candidate := range entries {
			if raw.CleanText(candidate.Get("FighterId")) == winnerID || raw.CleanText(candidate.Get("FighterID")) == winnerID {
				if name := raw.CleanText(candidate.Get("Name")); name != "" {
					return name
				}
				break
			}
		}
	}
	return raw.CleanText(payload.First("Winner", "WinningFighter"))
}

func resultSummary(winnerName, method, status string) string {
	var summary string
	switch {
	case winnerName != "" && method != "":
		summary = winnerName + " • " + method
	case method != "":
		summary = method
	case status != "":
		summary = status
	default:
		summary = StatusScheduled
	}
	if cleaned := cleanSummary(summary); cleaned != "" {
		return cleaned
	}
	return StatusScheduled
}

func detailLine(payload raw.Record, titleFight bool, weightClass string) string {
	parts := make([]string, 0, 3)
	if titleFight {
		parts = append(parts, "Championship Bout")
	}
	if weightClass != "" {
		parts = append(parts, weightClass)
	}
	if broadcast := raw.CleanText(payload.First("Broadcast", "TvStation", "Network", "Stream")); broadcast != "" {
		parts = append(parts, broadcast)
	}
	return cleanSummary(strings.Join(parts, " • "))
}

func favoriteName(side1, side2 fight.Side, winnerName string) string {
	if side1.Odds.Implied != nil && side2.Odds.Implied != nil {
		switch {
		case *side1.Odds.Implied > *side2.Odds.Implied:
			return side1.Name
		case *side2.Odds.Implied > *side1.Odds.Implied:
			return side2.Name
		}
	}
	return winnerName
}

func cardSegment(payload raw.Record, featured bool) string {
	segment := strings.ToLower(raw.CleanText(payload.Get("CardSegment")))
	if segment == "" {
		segment = strings.ToLower(raw.CleanText(payload.Get("CardSegmentDescription")))
	}
	if segment == "" && featured {
		segment = "main"
	}
	return segment
}

func fallbackRank(mainEvent, coMainEvent bool) int {
	switch {
	case mainEvent:
		return -10
	case coMainEvent:
		return -5
	default:
		return 100
	}
}

func sideResult(side fight.Side, winnerName, status string) fight.Result {
	result := side.Result
	if result.Label == Unknown {
		switch {
		case winnerName == "":
			result.Label = status
		case winnerName == side.Name:
			result.Label = "Win"
		default:
			result.Label = "Loss"
		}
	}
	result.Winner = winnerName != "" && winnerName == side.Name
	return result
}
