package models

// ParlayCategory partitions parlays by construction strategy.
type ParlayCategory string

const (
	ParlayMultiGame ParlayCategory = "multi_game"
	ParlaySameGame  ParlayCategory = "same_game"
	ParlaySpecialty ParlayCategory = "specialty"
)

// RiskLevel grades a parlay by the average score of its legs.
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// Parlay is a combined multi-leg bet. ExpectedOdds is a display
// string, not a priced sportsbook quote.
type Parlay struct {
	Legs         []UnifiedRecommendation `json:"legs"`
	Category     ParlayCategory          `json:"parlay_category"`
	RiskLevel    RiskLevel               `json:"risk_level"`
	ExpectedOdds string                  `json:"expected_odds"`
	Reasoning    string                  `json:"reasoning"`
	AvgScore     float64                 `json:"avg_score"`
}

// RiskFor grades an average leg score.
func RiskFor(avgScore float64) RiskLevel {
	switch {
	case avgScore >= 7.0:
		return RiskLow
	case avgScore >= 5.5:
		return RiskMedium
	default:
		return RiskHigh
	}
}
