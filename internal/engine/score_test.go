package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yourusername/diamond-picks/internal/models"
)

func TestScoreAverageStaysInRange(t *testing.T) {
	cases := [][]models.Confidence{
		{models.ConfidenceLow},
		{models.ConfidenceHigh, models.ConfidenceHigh, models.ConfidenceHigh},
		{models.ConfidenceLow, models.ConfidenceMedium, models.ConfidenceHigh},
	}
	for _, confs := range cases {
		u := models.UnifiedRecommendation{Confidences: confs}
		Score(&u)
		avg := u.Score - factorBonus*float64(u.NumFactors)
		assert.GreaterOrEqual(t, avg, 1.0)
		assert.LessOrEqual(t, avg, 3.0)
	}
}

func TestScoreBoundariesAreExact(t *testing.T) {
	// high + medium averages exactly 2.5
	u := models.UnifiedRecommendation{
		Confidences: []models.Confidence{models.ConfidenceHigh, models.ConfidenceMedium},
	}
	Score(&u)
	assert.Equal(t, models.ConfidenceHigh, u.Confidence)

	// medium + low averages exactly 1.5
	u = models.UnifiedRecommendation{
		Confidences: []models.Confidence{models.ConfidenceMedium, models.ConfidenceLow},
	}
	Score(&u)
	assert.Equal(t, models.ConfidenceMedium, u.Confidence)

	// just below 1.5
	u = models.UnifiedRecommendation{
		Confidences: []models.Confidence{models.ConfidenceLow, models.ConfidenceLow, models.ConfidenceMedium},
	}
	Score(&u)
	assert.Equal(t, models.ConfidenceLow, u.Confidence)
}

func TestEscalationNeedsThreeDistinctFactors(t *testing.T) {
	medium := []models.Confidence{models.ConfidenceMedium, models.ConfidenceMedium}

	u := models.UnifiedRecommendation{
		Confidences: medium,
		Factors: []models.FactorTag{
			models.FactorTemperatureBoost,
			models.FactorWindBoost,
			models.FactorAltitudeBoost,
		},
	}
	Score(&u)
	assert.Equal(t, models.ConfidenceHigh, u.Confidence)

	// Duplicate tags are not distinct.
	u = models.UnifiedRecommendation{
		Confidences: medium,
		Factors: []models.FactorTag{
			models.FactorTemperatureBoost,
			models.FactorTemperatureBoost,
			models.FactorWindBoost,
		},
	}
	Score(&u)
	assert.Equal(t, models.ConfidenceMedium, u.Confidence)
}

func TestEscalationNeverLiftsLow(t *testing.T) {
	u := models.UnifiedRecommendation{
		Confidences: []models.Confidence{models.ConfidenceLow, models.ConfidenceLow},
		Factors: []models.FactorTag{
			models.FactorTemperatureBoost,
			models.FactorWindBoost,
			models.FactorAltitudeBoost,
		},
	}
	Score(&u)
	assert.Equal(t, models.ConfidenceLow, u.Confidence)
}

func TestScoreCountsDuplicateFactors(t *testing.T) {
	u := models.UnifiedRecommendation{
		Confidences: []models.Confidence{models.ConfidenceMedium, models.ConfidenceMedium},
		Factors: []models.FactorTag{
			models.FactorTemperatureBoost,
			models.FactorTemperatureBoost,
		},
	}
	Score(&u)
	assert.Equal(t, 2, u.NumFactors)
	assert.InDelta(t, 2.0+0.4, u.Score, 1e-9)
}

func TestAdjustAddsCappedTermsAndRefreshesBand(t *testing.T) {
	u := models.UnifiedRecommendation{
		Confidences: []models.Confidence{models.ConfidenceHigh, models.ConfidenceHigh},
		Factors: []models.FactorTag{
			models.FactorAltitudeBoost, models.FactorWindBoost, models.FactorTemperatureBoost,
		},
	}
	Score(&u)
	base := u.Score

	Adjust(&u, 1.0, 0.8)
	assert.InDelta(t, base+1.8, u.Score, 1e-9)
	assert.Equal(t, models.BandFor(u.Score), u.Band)
	assert.Equal(t, 1.0, u.ExpertAdjustment)
	assert.Equal(t, 0.8, u.OddsAdjustment)
}

func TestRankIsStableOnTies(t *testing.T) {
	recs := []models.UnifiedRecommendation{
		{GameID: "a", Score: 3.0},
		{GameID: "b", Score: 5.0},
		{GameID: "c", Score: 3.0},
	}
	Rank(recs)
	assert.Equal(t, "b", recs[0].GameID)
	assert.Equal(t, "a", recs[1].GameID)
	assert.Equal(t, "c", recs[2].GameID)
}
