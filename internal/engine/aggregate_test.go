package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/diamond-picks/internal/models"
)

func TestAggregateGroupsByGameAndBetType(t *testing.T) {
	candidates := []models.Candidate{
		{GameID: "g1", BetType: models.BetOverTotal, Reason: "hot", Confidence: models.ConfidenceMedium, Factor: models.FactorTemperatureBoost},
		{GameID: "g1", BetType: models.BetOverTotal, Reason: "wind out", Confidence: models.ConfidenceMedium, Factor: models.FactorWindBoost},
		{GameID: "g1", BetType: models.BetUnderTotal, Reason: "duel", Confidence: models.ConfidenceHigh, Factor: models.FactorAceDuel},
		{GameID: "g2", BetType: models.BetOverTotal, Reason: "altitude", Confidence: models.ConfidenceHigh, Factor: models.FactorAltitudeBoost},
	}

	unified := Aggregate(candidates)
	require.Len(t, unified, 3)

	over := unified[0]
	assert.Equal(t, "g1", over.GameID)
	assert.Equal(t, models.BetOverTotal, over.BetType)
	assert.Equal(t, []string{"hot", "wind out"}, over.Reasons)
	assert.Len(t, over.Factors, 2)
	assert.Len(t, over.Confidences, 2)
}

func TestAggregateIsIdempotent(t *testing.T) {
	candidates := []models.Candidate{
		{GameID: "g1", BetType: models.BetOverTotal, Reason: "a", Confidence: models.ConfidenceMedium, Factor: models.FactorTemperatureBoost},
		{GameID: "g1", BetType: models.BetOverTotal, Reason: "b", Confidence: models.ConfidenceHigh, Factor: models.FactorWindBoost},
		{GameID: "g2", BetType: models.BetHomeML, Reason: "c", Confidence: models.ConfidenceHigh, Factor: models.FactorAceAdvantage},
	}

	first := Aggregate(candidates)
	second := Aggregate(candidates)
	assert.Equal(t, first, second)
}

func TestAggregatePreservesReasonOrder(t *testing.T) {
	candidates := []models.Candidate{
		{GameID: "g1", BetType: models.BetOverTotal, Reason: "first", Confidence: models.ConfidenceLow},
		{GameID: "g1", BetType: models.BetOverTotal, Reason: "second", Confidence: models.ConfidenceLow},
		{GameID: "g1", BetType: models.BetOverTotal, Reason: "third", Confidence: models.ConfidenceLow},
	}

	unified := Aggregate(candidates)
	require.Len(t, unified, 1)
	assert.Equal(t, []string{"first", "second", "third"}, unified[0].Reasons)
}

func TestAggregateDropsEmptyFactors(t *testing.T) {
	candidates := []models.Candidate{
		{GameID: "g1", BetType: models.BetOverTotal, Reason: "a", Confidence: models.ConfidenceLow, Factor: ""},
		{GameID: "g1", BetType: models.BetOverTotal, Reason: "b", Confidence: models.ConfidenceLow, Factor: models.FactorWindBoost},
	}

	unified := Aggregate(candidates)
	require.Len(t, unified, 1)
	assert.Equal(t, []models.FactorTag{models.FactorWindBoost}, unified[0].Factors)
	assert.Len(t, unified[0].Confidences, 2)
}

func TestAggregateKeepsFirstPlayerAndLine(t *testing.T) {
	candidates := []models.Candidate{
		{GameID: "g1", BetType: models.BetPlayerHROver, Player: "Aaron Judge", PropLine: "0.5", Reason: "a", Confidence: models.ConfidenceMedium},
		{GameID: "g1", BetType: models.BetPlayerHROver, Player: "Someone Else", PropLine: "1.5", Reason: "b", Confidence: models.ConfidenceMedium},
	}

	unified := Aggregate(candidates)
	require.Len(t, unified, 1)
	assert.Equal(t, "Aaron Judge", unified[0].Player)
	assert.Equal(t, "0.5", unified[0].PropLine)
}
