package reconcile

import (
	"regexp"
	"strings"

	"github.com/riskibarqy/fightcard/internal/domain/fight"
	"github.com/riskibarqy/fightcard/internal/domain/raw"
)

// UnknownFighter names a side nothing could identify.
const UnknownFighter = "TBA"

var (
	scrambledText = regexp.MustCompile(`(?i)scrambled`)
	roundsText    = regexp.MustCompile(`(?i)\d+\s*rounds?`)
	clockText     = regexp.MustCompile(`^(\d+):(\d{1,2})$`)
)

func isArtifact(text string) bool {
	return scrambledText.MatchString(text) || roundsText.MatchString(text)
}

// BuildSide assembles one canonical fighter side from the fight entry, the
// directory profile and the supplemental record. Any of them may be nil.
func (b *Builder) BuildSide(entryRecord, profileRecord, suppRecord raw.Record) fight.Side {
	src := newSideSources(entryRecord, profileRecord, suppRecord)

	name := b.sideName(src)
	record := b.sideRecord(src)
	flagCode := b.sideFlagCode(src, name)

	matchup := b.matchup(src)
	strikes := b.strikes(src)
	fights, hasFights := RecordFightCount(record)
	grappling := b.grappling(src, fights, hasFights)
	winMethods := b.winMethods(src)
	totals := b.totals(src)

	side := fight.Side{
		ID:         b.sideID(src, name),
		Name:       name,
		Record:     record,
		FlagCode:   flagCode,
		FlagAssets: b.flags.Assets(flagCode, name, src.values(b.aliases[FieldFlagImage])...),
		Stats: fight.Stats{
			Matchup:    matchup,
			Strikes:    strikes,
			Grappling:  grappling,
			WinMethods: winMethods,
		},
		Result:          b.result(src, strikes, grappling),
		Odds:            b.sideOdds(src),
		Totals:          totals,
		Badges:          b.heuristics.Badges(matchup.Age, strikes, grappling, winMethods, totals),
		AdvancedMetrics: b.heuristics.AdvancedMetrics(strikes, grappling, winMethods, totals),
		FightHistory:    b.history(src),
	}
	side.CardImages = b.imageCandidates(name, src)
	side.FullImages = append([]string(nil), side.CardImages...)
	return side
}

func (b *Builder) sideName(src sideSources) string {
	if name := raw.CleanText(src.first(b.aliases[FieldName])); name != "" {
		return name
	}
	first := raw.CleanText(src.first(b.aliases[FieldFirstName]))
	last := raw.CleanText(src.first(b.aliases[FieldLastName]))
	if combined := strings.Join(nonEmpty(first, last), " "); combined != "" {
		return combined
	}
	if alias := raw.CleanText(src.first(b.aliases[FieldAlias])); alias != "" {
		return alias
	}
	return UnknownFighter
}

func (b *Builder) sideID(src sideSources, name string) string {
	if id := raw.CleanText(src.first(b.aliases[FieldID])); id != "" {
		return id
	}
	return name
}

func (b *Builder) sideRecord(src sideSources) string {
	for _, source := range []raw.Record{src.entry, src.profile, src.supp} {
		if record := recordFrom(source); record != "" {
			return record
		}
	}
	record := FormatRecord(
		src.first(b.aliases[FieldPreFightWins]),
		src.first(b.aliases[FieldPreFightLosses]),
		src.first(b.aliases[FieldPreFightDraws]),
		src.first(b.aliases[FieldPreFightNoContests]),
	)
	if record != "" {
		return record
	}
	return Unknown
}

func recordFrom(source raw.Record) string {
	if source == nil {
		return ""
	}
	if text := raw.CleanText(source.First(recordTextKeys...)); text != "" {
		return text
	}
	return FormatRecord(
		source.First(recordWinsKeys...),
		source.First(recordLossesKeys...),
		source.First(recordDrawsKeys...),
		source.First(recordNCKeys...),
	)
}

func (b *Builder) sideFlagCode(src sideSources, name string) string {
	code := b.flags.ResolveCode(src.values(b.aliases[FieldCountry])...)
	if code != b.flags.DefaultCode() || b.countries == nil {
		return code
	}
	if inferred := strings.ToLower(strings.TrimSpace(b.countries.InferCountry(name))); inferred != "" {
		return inferred
	}
	return code
}

func (b *Builder) imageCandidates(name string, src sideSources) []string {
	out := make([]string, 0, 5)
	seen := make(map[string]struct{}, 5)
	push := func(candidate string) {
		candidate = SanitizeImageURL(candidate)
		if candidate == "" {
			return
		}
		if _, ok := seen[candidate]; ok {
			return
		}
		seen[candidate] = struct{}{}
		out = append(out, candidate)
	}

	if local, ok := b.assets.Resolve(name); ok {
		push(local)
	}
	for _, photo := range src.values(b.aliases[FieldPhoto]) {
		push(raw.CleanText(photo))
	}
	push(ShadowFallbackImage)
	push(DefaultAvatarImage)
	return out
}

func (b *Builder) matchup(src sideSources) fight.Matchup {
	style := raw.CleanText(src.first(b.aliases[FieldStyle]))
	if style == "" {
		style = Unknown
	}
	stance := raw.CleanText(src.first(b.aliases[FieldStance]))
	if stance == "" {
		stance = Unknown
	}
	return fight.Matchup{
		Style:    style,
		Age:      b.age(src),
		Height:   FormatHeight(src.first(b.aliases[FieldHeight])),
		Weight:   FormatWeight(src.first(b.aliases[FieldWeight])),
		Reach:    FormatReach(src.first(b.aliases[FieldReach])),
		LegReach: FormatReach(src.first(b.aliases[FieldLegReach])),
		Stance:   stance,
		Rounds:   raw.ToNumberPtr(src.first(b.aliases[FieldRounds])),
	}
}

func (b *Builder) age(src sideSources) string {
	if v := src.first(b.aliases[FieldAge]); v != nil {
		return FormatAge(v)
	}
	for _, born := range src.values(b.aliases[FieldBirthDate]) {
		if years, ok := AgeFromDate(born, b.now()); ok {
			return FormatAge(float64(years))
		}
	}
	return Unknown
}

func (b *Builder) number(src sideSources, field Field) *float64 {
	return raw.ParseFloatPtr(src.first(b.aliases[field]))
}

func (b *Builder) strikes(src sideSources) fight.Strikes {
	return fight.Strikes{
		SigLanded:        b.number(src, FieldSigLanded),
		SigAttempted:     b.number(src, FieldSigAttempted),
		SigPerMinute:     b.number(src, FieldSigPerMinute),
		TotalLanded:      b.number(src, FieldTotalLanded),
		TotalAttempted:   b.number(src, FieldTotalAttempted),
		Accuracy:         b.number(src, FieldAccuracy),
		Absorbed:         b.number(src, FieldAbsorbed),
		Defense:          b.number(src, FieldDefense),
		Knockdowns:       b.number(src, FieldKnockdowns),
		KnockdownAverage: b.number(src, FieldKnockdownAverage),
	}
}

func (b *Builder) grappling(src sideSources, fights int, hasFights bool) fight.Grappling {
	g := fight.Grappling{
		TakedownsLanded:    b.number(src, FieldTakedownsLanded),
		TakedownsAttempted: b.number(src, FieldTakedownsAttempted),
		TakedownAccuracy:   b.number(src, FieldTakedownAccuracy),
		TakedownDefense:    b.number(src, FieldTakedownDefense),
		Submissions:        b.number(src, FieldSubmissions),
		Reversals:          b.number(src, FieldReversals),
		ControlSeconds:     controlSeconds(src.first(b.aliases[FieldControlSeconds])),
	}

	if v := src.first(b.aliases[FieldTakedownAverage]); v != nil {
		g.TakedownAverage = raw.ParseFloatPtr(v)
	} else if hasFights {
		g.TakedownAverage = PerFightAverage(src.first(b.aliases[FieldTakedownsLanded]), fights)
	}

	if v := src.first(b.aliases[FieldSubmissionAverage]); v != nil {
		g.SubmissionAverage = raw.ParseFloatPtr(v)
	} else if hasFights {
		g.SubmissionAverage = PerFightAverage(src.first(b.aliases[FieldSubmissionAttempts]), fights)
		if g.SubmissionAverage == nil {
			g.SubmissionAverage = PerFightAverage(src.first(b.aliases[FieldWinsBySubmission]), fights)
		}
	}
	return g
}

// controlSeconds accepts plain seconds or an m:ss clock.
func controlSeconds(v any) *float64 {
	if text, ok := v.(string); ok {
		if m := clockText.FindStringSubmatch(strings.TrimSpace(text)); m != nil {
			minutes, _ := raw.ToNumber(m[1])
			seconds, _ := raw.ToNumber(m[2])
			total := minutes*60 + seconds
			return &total
		}
	}
	return raw.ParseFloatPtr(v)
}

func (b *Builder) count(src sideSources, field Field) int {
	n, ok := raw.ParseFloat(src.first(b.aliases[field]))
	if !ok {
		return 0
	}
	return int(raw.Round(n))
}

func (b *Builder) winMethods(src sideSources) fight.WinMethods {
	percent := func(field Field) float64 {
		n, _ := raw.ParseFloat(src.first(b.aliases[field]))
		return n
	}
	return fight.WinMethods{
		KO:         b.count(src, FieldWinsKO),
		Sub:        b.count(src, FieldWinsSub),
		Dec:        b.count(src, FieldWinsDec),
		KOPercent:  percent(FieldKOPercent),
		SubPercent: percent(FieldSubPercent),
		DecPercent: percent(FieldDecPercent),
	}
}

func (b *Builder) totals(src sideSources) fight.Totals {
	return fight.Totals{
		Wins:       b.count(src, FieldWins),
		Losses:     b.count(src, FieldLosses),
		Draws:      b.count(src, FieldDraws),
		NoContests: b.count(src, FieldNoContests),
		LossesKO:   b.count(src, FieldLossesKO),
	}
}

func (b *Builder) result(src sideSources, strikes fight.Strikes, grappling fight.Grappling) fight.Result {
	label := raw.CleanText(src.first(b.aliases[FieldResultLabel]))
	if label == "" {
		label = Unknown
	}
	detail := raw.CleanText(src.first(b.aliases[FieldResultDetail]))
	if isArtifact(detail) {
		detail = ""
	}
	return fight.Result{
		Label:          label,
		Detail:         detail,
		Knockdowns:     strikes.Knockdowns,
		ControlSeconds: grappling.ControlSeconds,
	}
}

func (b *Builder) sideOdds(src sideSources) fight.Odds {
	moneyline := src.first(b.aliases[FieldMoneyline])
	opening := src.first(b.aliases[FieldOpeningMoneyline])
	odds := fight.Odds{
		Moneyline:      raw.ToNumberPtr(moneyline),
		Implied:        impliedPtr(moneyline),
		Opening:        raw.ToNumberPtr(opening),
		OpeningImplied: impliedPtr(opening),
	}
	if odds.Moneyline != nil {
		odds.Source = fight.OddsSourceFeed
	}
	return odds
}

func (b *Builder) history(src sideSources) []fight.HistoryEntry {
	items := raw.AsRecords(src.first(b.aliases[FieldHistory]))
	out := make([]fight.HistoryEntry, 0, len(items))
	for _, item := range items {
		out = append(out, fight.HistoryEntry{
			Result:   item.String("result", "Result", "outcome"),
			Opponent: item.String("opponent", "Opponent", "opponentName"),
			Event:    item.String("event", "Event", "eventName"),
			Date:     item.String("date", "Date", "eventDate"),
			Method:   item.String("method", "Method", "winMethod"),
			Round:    item.String("round", "Round"),
			Time:     item.String("time", "Time"),
		})
	}
	return out
}
