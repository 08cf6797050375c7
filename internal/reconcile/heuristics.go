package reconcile

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Heuristics holds the thresholds behind badges and advanced metrics. The
// zero value is not useful; start from DefaultHeuristics.
type Heuristics struct {
	FinisherMinRate float64 `yaml:"finisher_min_rate"`

	ProspectMaxAge float64 `yaml:"prospect_max_age"`
	PrimeMaxAge    float64 `yaml:"prime_max_age"`
	VeteranMaxAge  float64 `yaml:"veteran_max_age"`

	StrikingWeight  float64 `yaml:"striking_weight"`
	GrapplingWeight float64 `yaml:"grappling_weight"`
	TypeDominance   float64 `yaml:"type_dominance"`

	PressureMinOutput   float64 `yaml:"pressure_min_output"`
	PressureMinAbsorbed float64 `yaml:"pressure_min_absorbed"`
	TechnicalMinOutput  float64 `yaml:"technical_min_output"`
	TechnicalMaxAbsorb  float64 `yaml:"technical_max_absorbed"`
	CounterMaxOutput    float64 `yaml:"counter_max_output"`
	CounterMaxAbsorbed  float64 `yaml:"counter_max_absorbed"`

	PaceStrikeWeight   float64 `yaml:"pace_strike_weight"`
	PaceTakedownWeight float64 `yaml:"pace_takedown_weight"`

	StandingOutputScale    float64 `yaml:"standing_output_scale"`
	StandingOutputPoints   float64 `yaml:"standing_output_points"`
	StandingKnockdownScale float64 `yaml:"standing_knockdown_scale"`
	StandingKnockdownPts   float64 `yaml:"standing_knockdown_points"`
	ClinchTakedownScale    float64 `yaml:"clinch_takedown_scale"`
	ClinchTakedownPoints   float64 `yaml:"clinch_takedown_points"`
	ClinchAccuracyPoints   float64 `yaml:"clinch_accuracy_points"`
	GroundSubAvgScale      float64 `yaml:"ground_sub_avg_scale"`
	GroundSubAvgCap        float64 `yaml:"ground_sub_avg_cap"`
	GroundSubsScale        float64 `yaml:"ground_subs_scale"`
	GroundSubsCap          float64 `yaml:"ground_subs_cap"`
	GroundControlMinutes   float64 `yaml:"ground_control_minutes"`
	GroundControlCap       float64 `yaml:"ground_control_cap"`
	GroundThreatFloor      float64 `yaml:"ground_threat_floor"`
	GroundControlThreshold float64 `yaml:"ground_control_threshold_seconds"`

	IQBase               float64 `yaml:"iq_base"`
	IQAccuracyMin        float64 `yaml:"iq_accuracy_min"`
	IQAbsorbedMax        float64 `yaml:"iq_absorbed_max"`
	IQStrikingBonus      float64 `yaml:"iq_striking_bonus"`
	IQSubAvgMin          float64 `yaml:"iq_sub_avg_min"`
	IQSubmissionBonus    float64 `yaml:"iq_submission_bonus"`
	IQTakedownDefenseMin float64 `yaml:"iq_takedown_defense_min"`
	IQTakedownBonus      float64 `yaml:"iq_takedown_bonus"`
	IQDecisionShareMin   float64 `yaml:"iq_decision_share_min"`
	IQDecisionBonus      float64 `yaml:"iq_decision_bonus"`

	DurabilityKOLossPenalty  float64 `yaml:"durability_ko_loss_penalty"`
	DurabilityDecisionReward float64 `yaml:"durability_decision_reward"`
	DurabilityAbsorbedScale  float64 `yaml:"durability_absorbed_scale"`
	DurabilityAbsorbedWeight float64 `yaml:"durability_absorbed_weight"`

	PowerKOShareMin       float64 `yaml:"power_ko_share_min"`
	SubSpecialistAvgMin   float64 `yaml:"sub_specialist_avg_min"`
	EliteStrikeDefenseMin float64 `yaml:"elite_strike_defense_min"`
	EliteTakedownDefense  float64 `yaml:"elite_takedown_defense_min"`
	RelentlessOutputMin   float64 `yaml:"relentless_output_min"`
	EliteWrestlerAvgMin   float64 `yaml:"elite_wrestler_avg_min"`
	EliteWrestlerAccuracy float64 `yaml:"elite_wrestler_accuracy_min"`
}

// DefaultHeuristics returns the stock thresholds.
func DefaultHeuristics() Heuristics {
	return Heuristics{
		FinisherMinRate: 60,

		ProspectMaxAge: 25,
		PrimeMaxAge:    32,
		VeteranMaxAge:  36,

		StrikingWeight:  10,
		GrapplingWeight: 15,
		TypeDominance:   1.5,

		PressureMinOutput:   4.5,
		PressureMinAbsorbed: 3.5,
		TechnicalMinOutput:  4.0,
		TechnicalMaxAbsorb:  3.0,
		CounterMaxOutput:    3.5,
		CounterMaxAbsorbed:  3.0,

		PaceStrikeWeight:   10,
		PaceTakedownWeight: 5,

		StandingOutputScale:    6,
		StandingOutputPoints:   60,
		StandingKnockdownScale: 2,
		StandingKnockdownPts:   40,
		ClinchTakedownScale:    5,
		ClinchTakedownPoints:   60,
		ClinchAccuracyPoints:   40,
		GroundSubAvgScale:      1.5,
		GroundSubAvgCap:        50,
		GroundSubsScale:        5,
		GroundSubsCap:          30,
		GroundControlMinutes:   3,
		GroundControlCap:       20,
		GroundThreatFloor:      15,
		GroundControlThreshold: 60,

		IQBase:               50,
		IQAccuracyMin:        50,
		IQAbsorbedMax:        3.0,
		IQStrikingBonus:      20,
		IQSubAvgMin:          0.5,
		IQSubmissionBonus:    15,
		IQTakedownDefenseMin: 70,
		IQTakedownBonus:      10,
		IQDecisionShareMin:   0.5,
		IQDecisionBonus:      5,

		DurabilityKOLossPenalty:  30,
		DurabilityDecisionReward: 10,
		DurabilityAbsorbedScale:  10,
		DurabilityAbsorbedWeight: 15,

		PowerKOShareMin:       0.4,
		SubSpecialistAvgMin:   1,
		EliteStrikeDefenseMin: 70,
		EliteTakedownDefense:  80,
		RelentlessOutputMin:   5,
		EliteWrestlerAvgMin:   3,
		EliteWrestlerAccuracy: 50,
	}
}

// ParseHeuristics overlays a YAML document on the defaults. Keys that are
// not present keep their default value.
func ParseHeuristics(data []byte) (Heuristics, error) {
	h := DefaultHeuristics()
	if len(data) == 0 {
		return h, nil
	}
	if err := yaml.Unmarshal(data, &h); err != nil {
		return Heuristics{}, fmt.Errorf("parse heuristics: %w", err)
	}
	if h.StandingOutputScale == 0 || h.StandingKnockdownScale == 0 || h.ClinchTakedownScale == 0 ||
		h.GroundSubAvgScale == 0 || h.GroundSubsScale == 0 || h.GroundControlMinutes == 0 ||
		h.DurabilityAbsorbedScale == 0 {
		return Heuristics{}, fmt.Errorf("parse heuristics: scale values must be non-zero")
	}
	return h, nil
}
