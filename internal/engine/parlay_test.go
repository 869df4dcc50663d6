package engine

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/diamond-picks/internal/models"
)

func highRec(gameID string, betType models.BetType, score float64) models.UnifiedRecommendation {
	return models.UnifiedRecommendation{
		GameID:     gameID,
		BetType:    betType,
		Score:      score,
		Confidence: models.ConfidenceHigh,
	}
}

func TestMultiGameParlaysHaveDistinctGames(t *testing.T) {
	ranked := []models.UnifiedRecommendation{
		highRec("g1", models.BetOverTotal, 4.0),
		highRec("g1", models.BetHomeML, 3.8),
		highRec("g2", models.BetAwayML, 3.6),
		highRec("g3", models.BetOverTotal, 3.4),
	}

	parlays := BuildParlays(ranked)
	for _, p := range parlays {
		if p.Category != models.ParlayMultiGame {
			continue
		}
		require.Len(t, p.Legs, 2)
		assert.NotEqual(t, p.Legs[0].GameID, p.Legs[1].GameID)
		assert.Equal(t, "+260", p.ExpectedOdds)
	}
}

func TestMultiGamePairingIsBounded(t *testing.T) {
	ranked := make([]models.UnifiedRecommendation, 0, 6)
	for i := 0; i < 6; i++ {
		ranked = append(ranked, highRec(fmt.Sprintf("g%d", i), models.BetHomeML, 5.0-float64(i)*0.1))
	}

	parlays := BuildParlays(ranked)
	multi := 0
	for _, p := range parlays {
		if p.Category == models.ParlayMultiGame {
			multi++
		}
	}
	// Each entry pairs with at most the next two: 2n-3 pairs for n=6,
	// further truncated by the overall cap of 8.
	assert.LessOrEqual(t, multi, 8)
	assert.GreaterOrEqual(t, multi, 5)
}

func TestSameGameParlayNeedsOverAndProp(t *testing.T) {
	ranked := []models.UnifiedRecommendation{
		{GameID: "g1", BetType: models.BetOverTotal, Score: 3.0, Confidence: models.ConfidenceMedium},
		{GameID: "g1", BetType: models.BetPlayerHROver, Score: 2.8, Confidence: models.ConfidenceMedium},
		{GameID: "g1", BetType: models.BetPlayerHitsOver, Score: 2.6, Confidence: models.ConfidenceLow},
		{GameID: "g1", BetType: models.BetPlayerRBIOver, Score: 2.4, Confidence: models.ConfidenceLow},
	}

	parlays := BuildParlays(ranked)
	var sgp *models.Parlay
	for i := range parlays {
		if parlays[i].Category == models.ParlaySameGame {
			sgp = &parlays[i]
		}
	}
	require.NotNil(t, sgp)

	// 1 over leg + at most 2 props.
	require.Len(t, sgp.Legs, 3)
	assert.Equal(t, models.BetOverTotal, sgp.Legs[0].BetType)
	for _, leg := range sgp.Legs {
		assert.Equal(t, "g1", leg.GameID)
	}
	assert.Equal(t, "+600", sgp.ExpectedOdds)
}

func TestSameGameParlaySkippedWithoutProps(t *testing.T) {
	ranked := []models.UnifiedRecommendation{
		{GameID: "g1", BetType: models.BetOverTotal, Confidence: models.ConfidenceMedium},
		{GameID: "g1", BetType: models.BetUnderTotal, Confidence: models.ConfidenceMedium},
	}

	for _, p := range BuildParlays(ranked) {
		assert.NotEqual(t, models.ParlaySameGame, p.Category)
	}
}

func TestSpecialtyParlayBundlesUnders(t *testing.T) {
	ranked := []models.UnifiedRecommendation{
		highRec("g1", models.BetUnderTotal, 4.0),
		highRec("g2", models.BetUnderTotal, 3.8),
		highRec("g3", models.BetUnderTotal, 3.6),
		highRec("g4", models.BetUnderTotal, 3.4),
	}

	parlays := BuildParlays(ranked)
	var specialty *models.Parlay
	for i := range parlays {
		if parlays[i].Category == models.ParlaySpecialty {
			specialty = &parlays[i]
		}
	}
	require.NotNil(t, specialty)
	assert.Len(t, specialty.Legs, 3)
	assert.Equal(t, "+540", specialty.ExpectedOdds)
	assert.Contains(t, specialty.Reasoning, "Pitcher Duel")
}

func TestSpecialtyParlayNeedsTwoUnders(t *testing.T) {
	ranked := []models.UnifiedRecommendation{
		highRec("g1", models.BetUnderTotal, 4.0),
		highRec("g2", models.BetOverTotal, 3.8),
	}

	for _, p := range BuildParlays(ranked) {
		assert.NotEqual(t, models.ParlaySpecialty, p.Category)
	}
}

func TestParlayOutputCappedAtEightWithCategoryPrecedence(t *testing.T) {
	var ranked []models.UnifiedRecommendation
	for i := 0; i < 12; i++ {
		ranked = append(ranked, highRec(fmt.Sprintf("g%d", i), models.BetUnderTotal, 6.0-float64(i)*0.1))
	}

	parlays := BuildParlays(ranked)
	require.Len(t, parlays, maxParlays)
	for _, p := range parlays {
		assert.Equal(t, models.ParlayMultiGame, p.Category)
	}
}

func TestParlayRiskLevels(t *testing.T) {
	p := newParlay([]models.UnifiedRecommendation{
		{Score: 8.0}, {Score: 7.0},
	}, models.ParlayMultiGame, "+260", "r")
	assert.Equal(t, models.RiskLow, p.RiskLevel)
	assert.InDelta(t, 7.5, p.AvgScore, 1e-9)

	p = newParlay([]models.UnifiedRecommendation{
		{Score: 6.0}, {Score: 5.5},
	}, models.ParlayMultiGame, "+260", "r")
	assert.Equal(t, models.RiskMedium, p.RiskLevel)

	p = newParlay([]models.UnifiedRecommendation{
		{Score: 3.0}, {Score: 4.0},
	}, models.ParlayMultiGame, "+260", "r")
	assert.Equal(t, models.RiskHigh, p.RiskLevel)
}
