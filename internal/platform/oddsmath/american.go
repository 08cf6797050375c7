package oddsmath

import (
	"fmt"
	"math"
)

// AmericanToDecimal converts American odds to decimal odds
// American +150 → Decimal 2.50
// American -150 → Decimal 1.67
func AmericanToDecimal(american float64) (float64, error) {
	if american == 0 || math.IsNaN(american) || math.IsInf(american, 0) {
		return 0, fmt.Errorf("invalid American odds: %v", american)
	}
	if american > 0 {
		return american/100.0 + 1.0, nil
	}
	return 100.0/-american + 1.0, nil
}

// AmericanToImpliedProbability converts American odds to implied probability
// -150 → 0.60, +150 → 0.40
func AmericanToImpliedProbability(american float64) (float64, error) {
	decimal, err := AmericanToDecimal(american)
	if err != nil {
		return 0, err
	}
	return 1.0 / decimal, nil
}

// ImpliedProbability is AmericanToImpliedProbability for callers that have
// already rejected zero odds.
func ImpliedProbability(american float64) float64 {
	p, err := AmericanToImpliedProbability(american)
	if err != nil {
		return 0
	}
	return p
}

// NormalizeTwoWay scales two implied probabilities so they sum to 1.
// Works whether or not the market carries vig.
func NormalizeTwoWay(prob1, prob2 float64) (fair1, fair2 float64, err error) {
	if prob1 <= 0 || prob2 <= 0 {
		return 0, 0, fmt.Errorf("probabilities must be positive")
	}
	total := prob1 + prob2
	return prob1 / total, prob2 / total, nil
}

// VigPercentage reports the overround of a two-way market in percent.
func VigPercentage(prob1, prob2 float64) float64 {
	return (prob1 + prob2 - 1.0) * 100.0
}
