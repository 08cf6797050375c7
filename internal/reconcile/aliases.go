package reconcile

import "github.com/riskibarqy/fightcard/internal/domain/raw"

// Field names a canonical side attribute that is read through an alias list.
type Field string

const (
	FieldID                 Field = "id"
	FieldName               Field = "name"
	FieldFirstName          Field = "firstName"
	FieldLastName           Field = "lastName"
	FieldAlias              Field = "alias"
	FieldCountry            Field = "country"
	FieldFlagImage          Field = "flagImage"
	FieldPhoto              Field = "photo"
	FieldStyle              Field = "style"
	FieldAge                Field = "age"
	FieldBirthDate          Field = "birthDate"
	FieldHeight             Field = "height"
	FieldWeight             Field = "weight"
	FieldReach              Field = "reach"
	FieldLegReach           Field = "legReach"
	FieldStance             Field = "stance"
	FieldRounds             Field = "rounds"
	FieldSigLanded          Field = "sigLanded"
	FieldSigAttempted       Field = "sigAttempted"
	FieldSigPerMinute       Field = "sigPerMinute"
	FieldTotalLanded        Field = "totalLanded"
	FieldTotalAttempted     Field = "totalAttempted"
	FieldAccuracy           Field = "accuracy"
	FieldAbsorbed           Field = "absorbed"
	FieldDefense            Field = "defense"
	FieldKnockdowns         Field = "knockdowns"
	FieldKnockdownAverage   Field = "knockdownAverage"
	FieldTakedownsLanded    Field = "takedownsLanded"
	FieldTakedownsAttempted Field = "takedownsAttempted"
	FieldTakedownAccuracy   Field = "takedownAccuracy"
	FieldTakedownAverage    Field = "takedownAverage"
	FieldTakedownDefense    Field = "takedownDefense"
	FieldSubmissionAttempts Field = "submissionAttempts"
	FieldSubmissions        Field = "submissions"
	FieldSubmissionAverage  Field = "submissionAverage"
	FieldReversals          Field = "reversals"
	FieldControlSeconds     Field = "controlSeconds"
	FieldWinsKO             Field = "winsKO"
	FieldWinsSub            Field = "winsSub"
	FieldWinsBySubmission   Field = "winsBySubmission"
	FieldWinsDec            Field = "winsDec"
	FieldKOPercent          Field = "koPercent"
	FieldSubPercent         Field = "subPercent"
	FieldDecPercent         Field = "decPercent"
	FieldResultLabel        Field = "resultLabel"
	FieldResultDetail       Field = "resultDetail"
	FieldMoneyline          Field = "moneyline"
	FieldOpeningMoneyline   Field = "openingMoneyline"
	FieldWins               Field = "wins"
	FieldLosses             Field = "losses"
	FieldDraws              Field = "draws"
	FieldNoContests         Field = "noContests"
	FieldLossesKO           Field = "lossesKO"
	FieldHistory            Field = "fightHistory"
	FieldPreFightWins       Field = "preFightWins"
	FieldPreFightLosses     Field = "preFightLosses"
	FieldPreFightDraws      Field = "preFightDraws"
	FieldPreFightNoContests Field = "preFightNoContests"
)

type sourceKind uint8

const (
	fromEntry sourceKind = iota
	fromProfile
	fromSupplemental
	fromAll
)

type accessor struct {
	source sourceKind
	key    string
}

// aliasList is an ordered list of source/field pairs; the first present
// value wins.
type aliasList []accessor

func fields(source sourceKind, keys ...string) aliasList {
	out := make(aliasList, 0, len(keys))
	for _, key := range keys {
		out = append(out, accessor{source: source, key: key})
	}
	return out
}

func entry(keys ...string) aliasList   { return fields(fromEntry, keys...) }
func profile(keys ...string) aliasList { return fields(fromProfile, keys...) }
func supp(keys ...string) aliasList    { return fields(fromSupplemental, keys...) }
func all(keys ...string) aliasList     { return fields(fromAll, keys...) }

func chain(lists ...aliasList) aliasList {
	var out aliasList
	for _, list := range lists {
		out = append(out, list...)
	}
	return out
}

var (
	recordTextKeys   = []string{"Record", "record", "PreFightRecord", "FighterRecord"}
	recordWinsKeys   = []string{"Wins", "wins", "RecordWins", "PreFightWins", "FighterWins"}
	recordLossesKeys = []string{"Losses", "losses", "RecordLosses", "PreFightLosses", "FighterLosses"}
	recordDrawsKeys  = []string{"Draws", "draws", "RecordDraws", "PreFightDraws", "FighterDraws"}
	recordNCKeys     = []string{"NoContests", "noContests", "RecordNoContests", "PreFightNoContests", "FighterNoContests"}

	submissionAttemptKeys = []string{"SubmissionAttempts", "submissions", "submissionAttempts"}
	winsBySubmissionKeys  = []string{"WinsSubmission", "WinsBySubmission"}
)

func defaultAliases() map[Field]aliasList {
	return map[Field]aliasList{
		FieldID: chain(entry("FighterId", "FighterID"), profile("FighterId", "FighterID")),
		FieldName: chain(
			entry("Name", "FighterName", "FighterFullName", "FullName", "DisplayName", "KnownAs", "Nickname", "NickName", "PreferredName"),
			profile("Name", "FullName", "DisplayName", "KnownAs", "Nickname"),
		),
		FieldFirstName: chain(
			entry("FighterFirstName", "FirstName", "PreferredFirstName", "PersonFirstName"),
			profile("FirstName", "PreferredFirstName"),
		),
		FieldLastName: chain(
			entry("FighterLastName", "LastName", "PreferredLastName", "PersonLastName"),
			profile("LastName", "PreferredLastName"),
		),
		FieldAlias: chain(entry("FighterAlias"), profile("FighterAlias")),
		FieldCountry: chain(
			entry("Flag", "FlagCode", "CountryCode", "Nationality", "Country", "BirthCountry", "Birthplace", "BirthPlace"),
			profile("Flag", "FlagCode", "CountryCode", "Nationality", "Country", "BirthCountry", "BirthPlace"),
			supp("CountryCode", "Nationality"),
		),
		FieldFlagImage: chain(
			entry("FlagImageUrl", "FlagImageURL", "FlagIcon"),
			profile("FlagImageUrl", "FlagImageURL", "FlagIcon"),
		),
		FieldPhoto: chain(profile("PhotoUrl", "photoUrl"), entry("PhotoUrl", "photoUrl")),

		FieldStyle:     all("style", "Style", "FightingStyle", "fightingStyle", "Discipline"),
		FieldAge:       all("Age", "age"),
		FieldBirthDate: all("BirthDate", "DOB", "dob"),
		FieldHeight:    all("Height", "HeightInches", "heightInches"),
		FieldWeight:    all("Weight", "WeightLbs", "weightLbs"),
		FieldReach:     all("Reach", "ReachInches", "reachInches"),
		FieldLegReach:  all("LegReach", "LegReachInches", "legReachInches"),
		FieldStance:    all("Stance", "stance"),
		FieldRounds:    all("Rounds", "ScheduledRounds"),

		FieldSigLanded:        all("SignificantStrikesLanded", "SigStrikesLanded", "sigStrikesLanded"),
		FieldSigAttempted:     all("SignificantStrikesAttempted", "SigStrikesAttempted", "sigStrikesAttempted"),
		FieldSigPerMinute:     all("SignificantStrikesLandedPerMinute", "SLpM", "slpm", "sigStrikesLandedPerMin"),
		FieldTotalLanded:      all("TotalStrikesLanded", "totalStrikesLanded"),
		FieldTotalAttempted:   all("TotalStrikesAttempted", "totalStrikesAttempted"),
		FieldAccuracy:         all("SignificantStrikesAccuracy", "SignificantStrikingAccuracy", "StrAcc", "strAcc", "strikingAccuracy"),
		FieldAbsorbed:         all("SignificantStrikesAbsorbedPerMinute", "StrikesAbsorbedPerMinute", "SApM", "sapm", "sigStrikesAbsorbedPerMin"),
		FieldDefense:          all("SignificantStrikeDefense", "StrikingDefense", "StrDef", "strDef", "sigStrikeDefense"),
		FieldKnockdowns:       all("Knockdowns", "KnockdownsLanded", "knockdowns"),
		FieldKnockdownAverage: all("KnockdownAverage", "knockdownAvg"),

		FieldTakedownsLanded:    all("TakedownsLanded", "takedownsLanded"),
		FieldTakedownsAttempted: all("TakedownsAttempted", "takedownsAttempted"),
		FieldTakedownAccuracy:   all("TakedownAccuracy", "TdAcc", "tdAcc", "takedownAccuracy"),
		FieldTakedownAverage: all(
			"TakedownsPer15Minutes", "TakedownAveragePer15Minutes", "TakedownAverage", "TakedownsPerFight",
			"TdAvg", "tdAvg", "takedownsPerBout",
		),
		FieldTakedownDefense:    all("TakedownDefense", "TdDef", "tdDef", "takedownDefense"),
		FieldSubmissionAttempts: all(submissionAttemptKeys...),
		FieldSubmissions:        chain(all(submissionAttemptKeys...), all(winsBySubmissionKeys...)),
		FieldSubmissionAverage: all(
			"SubmissionsPer15Minutes", "SubmissionAverage", "SubAvg", "subAvg", "submissionsAvg", "SubmissionsPerFight",
		),
		FieldReversals:      all("Reversals", "reversals"),
		FieldControlSeconds: all("ControlTimeSeconds", "ControlTime", "controlTimeSeconds", "controlTime"),

		FieldWinsKO:           all("WinsKO", "WinsKnockout", "WinsByKO", "winsKO"),
		FieldWinsSub:          all("WinsSub", "WinsSubmission", "WinsBySubmission", "winsSub"),
		FieldWinsBySubmission: all(winsBySubmissionKeys...),
		FieldWinsDec:          all("WinsDec", "WinsDecision", "WinsByDecision", "winsDec"),
		FieldKOPercent:        all("WinMethodKOPercent", "WinMethodKOPercentage", "winMethodKOPercent"),
		FieldSubPercent:       all("WinMethodSubPercent", "WinMethodSubPercentage", "winMethodSubPercent"),
		FieldDecPercent:       all("WinMethodDecPercent", "WinMethodDecPercentage", "winMethodDecPercent"),

		FieldResultLabel:  entry("Result", "Outcome", "ResultType", "Decision"),
		FieldResultDetail: entry("ResultDetail", "ResultDescription", "Method"),

		FieldMoneyline:        chain(entry("Moneyline", "Odds", "Line"), profile("Moneyline"), supp("Moneyline")),
		FieldOpeningMoneyline: chain(entry("OpeningMoneyline", "OpeningLine"), profile("OpeningMoneyline"), supp("OpeningLine")),

		FieldWins:       chain(entry("Wins"), profile("Wins"), entry("PreFightWins"), profile("PreFightWins"), supp("Wins")),
		FieldLosses:     chain(entry("Losses"), profile("Losses"), entry("PreFightLosses"), profile("PreFightLosses"), supp("Losses")),
		FieldDraws:      chain(entry("Draws"), profile("Draws"), entry("PreFightDraws"), profile("PreFightDraws"), supp("Draws")),
		FieldNoContests: chain(entry("NoContests"), profile("NoContests"), entry("PreFightNoContests"), profile("PreFightNoContests"), supp("NoContests")),
		FieldLossesKO:   all("LossesKO", "LossesByKO", "LossesKnockout", "lossesKO"),

		FieldPreFightWins:       chain(entry("PreFightWins"), profile("PreFightWins"), supp("Wins")),
		FieldPreFightLosses:     chain(entry("PreFightLosses"), profile("PreFightLosses"), supp("Losses")),
		FieldPreFightDraws:      chain(entry("PreFightDraws"), profile("PreFightDraws"), supp("Draws")),
		FieldPreFightNoContests: chain(entry("PreFightNoContests"), profile("PreFightNoContests"), supp("NoContests")),

		FieldHistory: all("fightHistory", "FightHistory"),
	}
}

// sideSources is the input of one side build. all is supplemental, then
// profile, then entry overlaid in that order.
type sideSources struct {
	entry   raw.Record
	profile raw.Record
	supp    raw.Record
	all     raw.Record
}

func newSideSources(entry, profile, supp raw.Record) sideSources {
	return sideSources{
		entry:   entry,
		profile: profile,
		supp:    supp,
		all:     raw.Merge(supp, profile, entry),
	}
}

func (s sideSources) record(source sourceKind) raw.Record {
	switch source {
	case fromEntry:
		return s.entry
	case fromProfile:
		return s.profile
	case fromSupplemental:
		return s.supp
	default:
		return s.all
	}
}

// first returns the first present value of list.
func (s sideSources) first(list aliasList) any {
	for _, a := range list {
		if v := s.record(a.source).Get(a.key); raw.Present(v) {
			return v
		}
	}
	return nil
}

// values returns every present value of list, in order.
func (s sideSources) values(list aliasList) []any {
	out := make([]any, 0, len(list))
	for _, a := range list {
		if v := s.record(a.source).Get(a.key); raw.Present(v) {
			out = append(out, v)
		}
	}
	return out
}
