package fight

// Insight is one headline tile for an event card.
type Insight struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Hint  string `json:"hint"`
}

// EventMeta describes the event a card belongs to.
type EventMeta struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Date     string `json:"date"`
	Location string `json:"location"`
}

// EventCard is the rendered card of one event.
type EventCard struct {
	Event    EventMeta `json:"event"`
	Main     []Fight   `json:"mainCard"`
	Prelims  []Fight   `json:"prelims"`
	Insights []Insight `json:"insights"`
}

// WinProbability is a normalized two-way split that sums to 100.
type WinProbability struct {
	Left   int        `json:"left"`
	Right  int        `json:"right"`
	Source OddsSource `json:"source"`
}

type Advantage struct {
	Striking   string `json:"striking"`
	Grappling  string `json:"grappling"`
	Defense    string `json:"defense"`
	Experience string `json:"experience"`
}

type Advantages struct {
	Left  Advantage `json:"left"`
	Right Advantage `json:"right"`
}

// Streak describes a current winning run. Nil when the run is shorter than three.
type Streak struct {
	Count       int  `json:"count"`
	AllByKO     bool `json:"allByKO"`
	AllBySub    bool `json:"allBySub"`
	AllFinishes bool `json:"allFinishes"`
	IsOnFire    bool `json:"isOnFire"`
}

type LastFive struct {
	Results []string `json:"results"`
	IsHot   bool     `json:"isHot"`
}

type HotStreak struct {
	Count          int    `json:"count"`
	Method         string `json:"method"`
	IsMethodStreak bool   `json:"isMethodStreak"`
}

// SideAnalysis bundles per-side form indicators.
type SideAnalysis struct {
	Streak    *Streak    `json:"streak"`
	LastFive  LastFive   `json:"lastFive"`
	HotStreak *HotStreak `json:"hotStreak"`
}

// Breakdown is a single fight with its matchup analysis.
type Breakdown struct {
	Event          EventMeta       `json:"event"`
	Fight          Fight           `json:"fight"`
	WinProbability *WinProbability `json:"winProbability"`
	Advantages     Advantages      `json:"advantages"`
	Fighter1       SideAnalysis    `json:"fighter1Analysis"`
	Fighter2       SideAnalysis    `json:"fighter2Analysis"`
}
