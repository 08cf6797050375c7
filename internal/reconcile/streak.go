package reconcile

import (
	"sort"
	"strings"
	"time"

	"github.com/riskibarqy/fightcard/internal/domain/fight"
)

// Normalized finish methods.
const (
	MethodKO         = "KO/TKO"
	MethodSubmission = "Submission"
	MethodDecision   = "Decision"
	methodUnknown    = "N/A"
)

var historyDateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"Jan. 2, 2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"01/02/2006",
}

func isWin(result string) bool {
	switch strings.ToLower(strings.TrimSpace(result)) {
	case "w", "win":
		return true
	default:
		return false
	}
}

func isLoss(result string) bool {
	switch strings.ToLower(strings.TrimSpace(result)) {
	case "l", "loss":
		return true
	default:
		return false
	}
}

// NormalizeMethod folds finish descriptions into KO/TKO, Submission or
// Decision. Anything else is returned unchanged.
func NormalizeMethod(method string) string {
	switch {
	case strings.Contains(method, "KO") || strings.Contains(method, "Knockout"):
		return MethodKO
	case strings.Contains(method, "Sub"):
		return MethodSubmission
	case strings.Contains(method, "Dec"):
		return MethodDecision
	default:
		return method
	}
}

// AnalyzeStreak reports the current win streak of a most-recent-first
// history. Nil when the streak is shorter than three. Bouts with no recorded
// method count toward the KO and finish flags.
func AnalyzeStreak(history []fight.HistoryEntry) *fight.Streak {
	methods := make([]string, 0, len(history))
	for _, entry := range history {
		if !isWin(entry.Result) {
			break
		}
		methods = append(methods, NormalizeMethod(entry.Method))
	}
	count := len(methods)
	if count < 3 {
		return nil
	}

	streak := &fight.Streak{Count: count, AllByKO: true, AllBySub: true, AllFinishes: true, IsOnFire: count >= 5}
	for _, method := range methods {
		unknown := method == "" || method == methodUnknown
		if method != MethodKO && !unknown {
			streak.AllByKO = false
		}
		if method != MethodSubmission {
			streak.AllBySub = false
		}
		if method != MethodKO && method != MethodSubmission && !unknown {
			streak.AllFinishes = false
		}
	}
	return streak
}

// LastFive returns W/L/D letters for the five most recent bouts.
func LastFive(history []fight.HistoryEntry) fight.LastFive {
	limit := min(5, len(history))
	results := make([]string, 0, limit)
	for _, entry := range history[:limit] {
		switch {
		case isWin(entry.Result):
			results = append(results, "W")
		case isLoss(entry.Result):
			results = append(results, "L")
		default:
			results = append(results, "D")
		}
	}
	hot := len(results) == 5
	for _, r := range results {
		if r != "W" {
			hot = false
		}
	}
	return fight.LastFive{Results: results, IsHot: hot}
}

func parseHistoryDate(value string) time.Time {
	value = strings.TrimSpace(value)
	for _, layout := range historyDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	return time.Time{}
}

// DetectHotStreak sorts a history by date and reports a run of three or more
// wins, including whether every win came by the same method.
func DetectHotStreak(history []fight.HistoryEntry) *fight.HotStreak {
	if len(history) < 3 {
		return nil
	}
	sorted := make([]fight.HistoryEntry, len(history))
	copy(sorted, history)
	sort.SliceStable(sorted, func(i, j int) bool {
		return parseHistoryDate(sorted[i].Date).After(parseHistoryDate(sorted[j].Date))
	})

	methods := make([]string, 0, len(sorted))
	for _, entry := range sorted {
		if !isWin(entry.Result) {
			break
		}
		methods = append(methods, NormalizeMethod(entry.Method))
	}
	if len(methods) < 3 {
		return nil
	}

	streak := &fight.HotStreak{Count: len(methods)}
	first := methods[0]
	same := first != ""
	for _, method := range methods[1:] {
		if method != first {
			same = false
			break
		}
	}
	if same {
		streak.Method = first
		streak.IsMethodStreak = true
	}
	return streak
}

// AnalyzeSide bundles the form indicators of one side.
func AnalyzeSide(side fight.Side) fight.SideAnalysis {
	return fight.SideAnalysis{
		Streak:    AnalyzeStreak(side.FightHistory),
		LastFive:  LastFive(side.FightHistory),
		HotStreak: DetectHotStreak(side.FightHistory),
	}
}
