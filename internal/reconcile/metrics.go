package reconcile

import (
	"math"
	"strconv"

	"github.com/riskibarqy/fightcard/internal/domain/fight"
	"github.com/riskibarqy/fightcard/internal/domain/raw"
)

// X-factor labels.
const (
	XFactorPower         = "One-Shot Power"
	XFactorSubSpecialist = "Sub Specialist"
	XFactorEliteDefense  = "Elite Defense"
	XFactorRelentless    = "Relentless Pace"
	XFactorWrestler      = "Elite Wrestler"
)

func val(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}

func roundInt(x float64) int {
	return int(raw.Round(x))
}

func clamp(x, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, x))
}

// Badges derives the side badges. age is the formatted matchup age.
func (h Heuristics) Badges(age string, strikes fight.Strikes, grappling fight.Grappling, wins fight.WinMethods, totals fight.Totals) fight.Badges {
	return fight.Badges{
		FinishRate:    h.finishRateBadge(wins, totals),
		AgeStatus:     h.ageBadge(age),
		FighterType:   h.fighterTypeBadge(strikes, grappling),
		FightingStyle: h.fightingStyleBadge(strikes),
	}
}

func (h Heuristics) finishRateBadge(wins fight.WinMethods, totals fight.Totals) *fight.Badge {
	if totals.Wins == 0 {
		return nil
	}
	rate := roundInt(float64(wins.KO+wins.Sub) / float64(totals.Wins) * 100)
	if float64(rate) < h.FinisherMinRate {
		return nil
	}
	return &fight.Badge{Kind: fight.BadgeFinisher, Label: strconv.Itoa(rate) + "% Finisher", Rate: &rate}
}

func (h Heuristics) ageBadge(age string) *fight.Badge {
	n, ok := raw.ParseFloat(age)
	if !ok {
		return nil
	}
	switch {
	case n < h.ProspectMaxAge:
		return &fight.Badge{Kind: fight.BadgeProspect, Label: "Prospect"}
	case n <= h.PrimeMaxAge:
		return &fight.Badge{Kind: fight.BadgePrime, Label: "Prime"}
	case n <= h.VeteranMaxAge:
		return &fight.Badge{Kind: fight.BadgeVeteran, Label: "Veteran"}
	default:
		return &fight.Badge{Kind: fight.BadgeAging, Label: "Aging"}
	}
}

func (h Heuristics) fighterTypeBadge(strikes fight.Strikes, grappling fight.Grappling) *fight.Badge {
	striking := val(strikes.SigPerMinute) * h.StrikingWeight
	wrestling := val(grappling.TakedownAverage) * h.GrapplingWeight
	switch {
	case striking > wrestling*h.TypeDominance:
		return &fight.Badge{Kind: fight.BadgeStriker, Label: "Striker"}
	case wrestling > striking*h.TypeDominance:
		return &fight.Badge{Kind: fight.BadgeGrappler, Label: "Grappler"}
	default:
		return &fight.Badge{Kind: fight.BadgeBalanced, Label: "Balanced"}
	}
}

func (h Heuristics) fightingStyleBadge(strikes fight.Strikes) *fight.Badge {
	output := val(strikes.SigPerMinute)
	absorbed := val(strikes.Absorbed)
	switch {
	case output > h.PressureMinOutput && absorbed > h.PressureMinAbsorbed:
		return &fight.Badge{Kind: fight.BadgePressure, Label: "Pressure"}
	case output > h.TechnicalMinOutput && absorbed < h.TechnicalMaxAbsorb:
		return &fight.Badge{Kind: fight.BadgeTechnical, Label: "Technical"}
	case output < h.CounterMaxOutput && absorbed < h.CounterMaxAbsorbed:
		return &fight.Badge{Kind: fight.BadgeCounter, Label: "Counter"}
	default:
		return nil
	}
}

// AdvancedMetrics derives pace, finish probability, danger zones, fight IQ,
// durability and x-factors.
func (h Heuristics) AdvancedMetrics(strikes fight.Strikes, grappling fight.Grappling, wins fight.WinMethods, totals fight.Totals) fight.AdvancedMetrics {
	output := val(strikes.SigPerMinute)
	tdAvg := val(grappling.TakedownAverage)

	return fight.AdvancedMetrics{
		Pace:              roundInt(output*h.PaceStrikeWeight + tdAvg*h.PaceTakedownWeight),
		FinishProbability: finishProbability(wins, totals),
		DangerZones:       h.dangerZones(strikes, grappling),
		FightIQ:           h.fightIQ(strikes, grappling, wins, totals),
		Durability:        h.durability(strikes, wins, totals),
		XFactors:          h.xFactors(strikes, grappling, wins, totals),
	}
}

// finishProbability rounds KO and submission shares independently and gives
// the remainder to decisions, so dec can go below zero when rounding pushes
// ko+sub past 100.
func finishProbability(wins fight.WinMethods, totals fight.Totals) *fight.FinishProbability {
	if totals.Wins == 0 {
		return nil
	}
	ko := roundInt(float64(wins.KO) / float64(totals.Wins) * 100)
	sub := roundInt(float64(wins.Sub) / float64(totals.Wins) * 100)
	return &fight.FinishProbability{KO: ko, Sub: sub, Dec: 100 - ko - sub}
}

func (h Heuristics) dangerZones(strikes fight.Strikes, grappling fight.Grappling) fight.DangerZones {
	output := val(strikes.SigPerMinute)
	kdAvg := val(strikes.KnockdownAverage)
	tdAvg := val(grappling.TakedownAverage)
	tdAcc := val(grappling.TakedownAccuracy)
	subAvg := val(grappling.SubmissionAverage)
	subs := val(grappling.Submissions)
	control := val(grappling.ControlSeconds)

	standing := math.Min(100, raw.Round(output/h.StandingOutputScale*h.StandingOutputPoints+kdAvg/h.StandingKnockdownScale*h.StandingKnockdownPts))
	clinch := math.Min(100, raw.Round(tdAvg/h.ClinchTakedownScale*h.ClinchTakedownPoints+tdAcc/100*h.ClinchAccuracyPoints))

	ground := math.Min(h.GroundSubAvgCap, raw.Round(subAvg/h.GroundSubAvgScale*h.GroundSubAvgCap))
	ground += math.Min(h.GroundSubsCap, raw.Round(subs/h.GroundSubsScale*h.GroundSubsCap))
	ground += math.Min(h.GroundControlCap, raw.Round(control/60/h.GroundControlMinutes*h.GroundControlCap))
	ground = math.Min(100, ground)
	if subAvg > 0 || subs > 0 || control > h.GroundControlThreshold {
		ground = math.Max(h.GroundThreatFloor, ground)
	}

	return fight.DangerZones{Standing: int(standing), Clinch: int(clinch), Ground: int(ground)}
}

func (h Heuristics) fightIQ(strikes fight.Strikes, grappling fight.Grappling, wins fight.WinMethods, totals fight.Totals) int {
	iq := h.IQBase
	if val(strikes.Accuracy) > h.IQAccuracyMin && val(strikes.Absorbed) < h.IQAbsorbedMax {
		iq += h.IQStrikingBonus
	}
	if val(grappling.SubmissionAverage) > h.IQSubAvgMin {
		iq += h.IQSubmissionBonus
	}
	if val(grappling.TakedownDefense) > h.IQTakedownDefenseMin {
		iq += h.IQTakedownBonus
	}
	if totals.Wins > 0 && float64(wins.Dec)/float64(totals.Wins) > h.IQDecisionShareMin {
		iq += h.IQDecisionBonus
	}
	return int(math.Min(100, iq))
}

func (h Heuristics) durability(strikes fight.Strikes, wins fight.WinMethods, totals fight.Totals) int {
	score := 100.0
	if totals.Losses > 0 {
		score -= float64(totals.LossesKO) / float64(totals.Losses) * h.DurabilityKOLossPenalty
	}
	if totals.Wins > 0 {
		score += float64(wins.Dec) / float64(totals.Wins) * h.DurabilityDecisionReward
	}
	score -= val(strikes.Absorbed) / h.DurabilityAbsorbedScale * h.DurabilityAbsorbedWeight
	return int(clamp(raw.Round(score), 0, 100))
}

func (h Heuristics) xFactors(strikes fight.Strikes, grappling fight.Grappling, wins fight.WinMethods, totals fight.Totals) []string {
	factors := make([]string, 0, 5)
	if totals.Wins > 0 && float64(wins.KO)/float64(totals.Wins) > h.PowerKOShareMin {
		factors = append(factors, XFactorPower)
	}
	if val(grappling.SubmissionAverage) > h.SubSpecialistAvgMin {
		factors = append(factors, XFactorSubSpecialist)
	}
	if val(strikes.Defense) > h.EliteStrikeDefenseMin && val(grappling.TakedownDefense) > h.EliteTakedownDefense {
		factors = append(factors, XFactorEliteDefense)
	}
	if val(strikes.SigPerMinute) > h.RelentlessOutputMin {
		factors = append(factors, XFactorRelentless)
	}
	if val(grappling.TakedownAverage) > h.EliteWrestlerAvgMin && val(grappling.TakedownAccuracy) > h.EliteWrestlerAccuracy {
		factors = append(factors, XFactorWrestler)
	}
	return factors
}
