package fight

// Side is one canonical fighter corner of a bout. Numeric stats are nil when
// unknown; counts default to zero.
type Side struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Record          string          `json:"record"`
	FlagCode        string          `json:"flagCode"`
	FlagAssets      []string        `json:"flagAssets"`
	CardImages      []string        `json:"cardImages"`
	FullImages      []string        `json:"fullImages"`
	Stats           Stats           `json:"stats"`
	Result          Result          `json:"result"`
	Odds            Odds            `json:"odds"`
	Totals          Totals          `json:"totals"`
	Badges          Badges          `json:"badges"`
	AdvancedMetrics AdvancedMetrics `json:"advancedMetrics"`
	FightHistory    []HistoryEntry  `json:"fightHistory"`
}

type Stats struct {
	Matchup    Matchup    `json:"matchup"`
	Strikes    Strikes    `json:"strikes"`
	Grappling  Grappling  `json:"grappling"`
	WinMethods WinMethods `json:"winMethods"`
}

// Matchup holds display-ready tale-of-the-tape values; "—" marks unknown.
type Matchup struct {
	Style    string   `json:"style"`
	Age      string   `json:"age"`
	Height   string   `json:"height"`
	Weight   string   `json:"weight"`
	Reach    string   `json:"reach"`
	LegReach string   `json:"legReach"`
	Stance   string   `json:"stance"`
	Rounds   *float64 `json:"rounds"`
}

type Strikes struct {
	SigLanded        *float64 `json:"sigLanded"`
	SigAttempted     *float64 `json:"sigAttempted"`
	SigPerMinute     *float64 `json:"sigPerMinute"`
	TotalLanded      *float64 `json:"totalLanded"`
	TotalAttempted   *float64 `json:"totalAttempted"`
	Accuracy         *float64 `json:"accuracy"`
	Absorbed         *float64 `json:"absorbed"`
	Defense          *float64 `json:"defense"`
	Knockdowns       *float64 `json:"knockdowns"`
	KnockdownAverage *float64 `json:"knockdownAverage"`
}

type Grappling struct {
	TakedownsLanded    *float64 `json:"takedownsLanded"`
	TakedownsAttempted *float64 `json:"takedownsAttempted"`
	TakedownAccuracy   *float64 `json:"takedownAccuracy"`
	TakedownAverage    *float64 `json:"takedownAverage"`
	TakedownDefense    *float64 `json:"takedownDefense"`
	Submissions        *float64 `json:"submissions"`
	SubmissionAverage  *float64 `json:"submissionAverage"`
	Reversals          *float64 `json:"reversals"`
	ControlSeconds     *float64 `json:"controlSeconds"`
}

type WinMethods struct {
	KO         int     `json:"ko"`
	Sub        int     `json:"sub"`
	Dec        int     `json:"dec"`
	KOPercent  float64 `json:"koPercent"`
	SubPercent float64 `json:"subPercent"`
	DecPercent float64 `json:"decPercent"`
}

type Result struct {
	Label          string   `json:"label"`
	Detail         string   `json:"detail"`
	Knockdowns     *float64 `json:"knockdowns"`
	ControlSeconds *float64 `json:"controlSeconds"`
	Winner         bool     `json:"winner"`
}

// OddsSource tells where a moneyline came from.
type OddsSource string

const (
	OddsSourceFeed   OddsSource = "feed"
	OddsSourceStatic OddsSource = "static"
)

type Odds struct {
	Moneyline      *float64   `json:"moneyline"`
	Implied        *float64   `json:"implied"`
	Opening        *float64   `json:"opening"`
	OpeningImplied *float64   `json:"openingImplied"`
	Source         OddsSource `json:"source,omitempty"`
}

type Totals struct {
	Wins       int `json:"wins"`
	Losses     int `json:"losses"`
	Draws      int `json:"draws"`
	NoContests int `json:"noContests"`
	LossesKO   int `json:"lossesKO"`
}

type BadgeKind string

const (
	BadgeFinisher  BadgeKind = "finisher"
	BadgeProspect  BadgeKind = "prospect"
	BadgePrime     BadgeKind = "prime"
	BadgeVeteran   BadgeKind = "veteran"
	BadgeAging     BadgeKind = "aging"
	BadgeStriker   BadgeKind = "striker"
	BadgeGrappler  BadgeKind = "grappler"
	BadgeBalanced  BadgeKind = "balanced"
	BadgePressure  BadgeKind = "pressure"
	BadgeTechnical BadgeKind = "technical"
	BadgeCounter   BadgeKind = "counter"
)

type Badge struct {
	Kind  BadgeKind `json:"kind"`
	Label string    `json:"label"`
	Rate  *int      `json:"rate,omitempty"`
}

type Badges struct {
	FinishRate    *Badge `json:"finishRate"`
	AgeStatus     *Badge `json:"ageStatus"`
	FighterType   *Badge `json:"fighterType"`
	FightingStyle *Badge `json:"fightingStyle"`
}

type FinishProbability struct {
	KO  int `json:"ko"`
	Sub int `json:"sub"`
	Dec int `json:"dec"`
}

type DangerZones struct {
	Standing int `json:"standing"`
	Clinch   int `json:"clinch"`
	Ground   int `json:"ground"`
}

type AdvancedMetrics struct {
	Pace              int                `json:"pace"`
	FinishProbability *FinishProbability `json:"finishProbability"`
	DangerZones       DangerZones        `json:"dangerZones"`
	FightIQ           int                `json:"fightIQ"`
	Durability        int                `json:"durability"`
	XFactors          []string           `json:"xFactors"`
}

// HistoryEntry is one past bout, most recent first in Side.FightHistory.
type HistoryEntry struct {
	Result   string `json:"result"`
	Opponent string `json:"opponent"`
	Event    string `json:"event"`
	Date     string `json:"date"`
	Method   string `json:"method"`
	Round    string `json:"round"`
	Time     string `json:"time"`
}

// Fight is the canonical view of one bout.
type Fight struct {
	ID            string   `json:"id"`
	FightKey      string   `json:"fightKey"`
	Fighter1      Side     `json:"fighter1"`
	Fighter2      Side     `json:"fighter2"`
	WeightClass   string   `json:"weightClass"`
	DetailLine    string   `json:"detailLine"`
	Rounds        int      `json:"rounds"`
	TitleFight    bool     `json:"titleFight"`
	MainEvent     bool     `json:"mainEvent"`
	CoMainEvent   bool     `json:"coMainEvent"`
	CardSegment   string   `json:"cardSegment"`
	Status        string   `json:"status"`
	Method        string   `json:"method"`
	FinishRound   string   `json:"finishRound"`
	FinishTime    string   `json:"finishTime"`
	Referee       string   `json:"referee"`
	Judges        string   `json:"judges"`
	WinnerName    string   `json:"winnerName"`
	ResultSummary string   `json:"resultSummary"`
	OverUnder     *float64 `json:"overUnder"`
	OverOdds      *float64 `json:"overOdds"`
	UnderOdds     *float64 `json:"underOdds"`
	FavoriteName  string   `json:"favoriteName"`
	OrderRank     *float64 `json:"orderRank"`
	FallbackRank  int      `json:"fallbackRank"`
}

// Card is an event's fights split into the main card and the prelims.
type Card struct {
	Main    []Fight `json:"mainCard"`
	Prelims []Fight `json:"prelims"`
}
