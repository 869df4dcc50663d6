package engine

import (
	"sort"

	"github.com/yourusername/diamond-picks/internal/models"
)

// Label boundaries on the weighted confidence average.
const (
	highConfidenceAvg   = 2.5
	mediumConfidenceAvg = 1.5

	// A group with this many distinct factor tags escalates "medium"
	// to "high". Confluence never lifts "low" straight to "high".
	escalationFactors = 3

	factorBonus = 0.2
)

// Score computes the group's numeric score and confidence label in
// place. Adjustments are applied afterwards by Adjust; the band lookup
// happens last.
func Score(u *models.UnifiedRecommendation) {
	if len(u.Confidences) == 0 {
		u.Confidence = models.ConfidenceLow
		u.Band = models.BandFor(0)
		return
	}

	total := 0.0
	for _, c := range u.Confidences {
		total += c.Weight()
	}
	avg := total / float64(len(u.Confidences))

	label := models.ConfidenceLow
	switch {
	case avg >= highConfidenceAvg:
		label = models.ConfidenceHigh
	case avg >= mediumConfidenceAvg:
		label = models.ConfidenceMedium
	}

	u.NumFactors = len(u.Factors)
	if label == models.ConfidenceMedium && u.DistinctFactors() >= escalationFactors {
		label = models.ConfidenceHigh
	}

	u.Confidence = label
	u.Score = avg + factorBonus*float64(u.NumFactors)
	u.Band = models.BandFor(u.Score)
}

// Adjust applies the expert-trend and odds-value adjustments, already
// capped by their producers, then refreshes the display band.
func Adjust(u *models.UnifiedRecommendation, expertAdj, oddsAdj float64) {
	u.ExpertAdjustment = expertAdj
	u.OddsAdjustment = oddsAdj
	u.Score += expertAdj + oddsAdj
	u.Band = models.BandFor(u.Score)
}

// Rank sorts recommendations by score descending. The sort is stable:
// ties keep aggregation order.
func Rank(recs []models.UnifiedRecommendation) {
	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Score > recs[j].Score
	})
}
