package tracking

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/diamond-picks/internal/models"
)

func resolvedBet(kind models.BetKind, status models.BetStatus, staked, payout float64) models.TrackedBet {
	now := time.Now()
	s := decimal.NewFromFloat(staked)
	p := decimal.NewFromFloat(payout)
	return models.TrackedBet{
		ID:           models.NewBetID(now),
		Kind:         kind,
		Stake:        s,
		Status:       status,
		ResolvedAt:   &now,
		ActualPayout: p,
		Profit:       p.Sub(s),
	}
}

func TestOverallPerformanceCounts(t *testing.T) {
	bets := []models.TrackedBet{
		resolvedBet(models.BetKindTotal, models.BetStatusWon, 100, 190),
		resolvedBet(models.BetKindTotal, models.BetStatusLost, 100, 0),
		resolvedBet(models.BetKindTotal, models.BetStatusWon, 100, 190),
		{ID: "pending", Status: models.BetStatusPending, Stake: decimal.NewFromInt(100)},
	}

	perf := CalculateOverallPerformance(bets)
	assert.Equal(t, 3, perf.TotalBets)
	assert.Equal(t, 2, perf.Wins)
	assert.Equal(t, 1, perf.Losses)
	assert.InDelta(t, 66.67, perf.WinRate, 0.01)

	// (380 - 300) / 300 × 100
	assert.InDelta(t, 26.67, perf.ROI, 0.01)
}

func TestStreaksResetOnOtherStatuses(t *testing.T) {
	bets := []models.TrackedBet{
		resolvedBet(models.BetKindTotal, models.BetStatusWon, 10, 19),
		resolvedBet(models.BetKindTotal, models.BetStatusWon, 10, 19),
		resolvedBet(models.BetKindTotal, models.BetStatusPushed, 10, 10),
		resolvedBet(models.BetKindTotal, models.BetStatusWon, 10, 19),
		resolvedBet(models.BetKindTotal, models.BetStatusLost, 10, 0),
		resolvedBet(models.BetKindTotal, models.BetStatusLost, 10, 0),
		resolvedBet(models.BetKindTotal, models.BetStatusLost, 10, 0),
	}

	perf := CalculateOverallPerformance(bets)
	assert.Equal(t, 2, perf.LongestWinStreak)
	assert.Equal(t, 3, perf.LongestLoseStreak)
}

func TestZeroStakedROIIsZero(t *testing.T) {
	perf := CalculateOverallPerformance(nil)
	assert.Zero(t, perf.ROI)
	assert.Zero(t, perf.WinRate)
}

func TestCalibrationBucketMath(t *testing.T) {
	var bets []models.TrackedBet
	for i := 0; i < 10; i++ {
		status := models.BetStatusWon
		if i >= 7 {
			status = models.BetStatusLost
		}
		b := resolvedBet(models.BetKindTotal, status, 10, 19)
		b.Confidence = 8.4
		bets = append(bets, b)
	}

	buckets := CalculateModelAccuracy(bets)
	require.Len(t, buckets, 1)

	b := buckets[0]
	assert.Equal(t, 8, b.Bucket)
	assert.Equal(t, 80.0, b.Expected)
	assert.InDelta(t, 70.0, b.Actual, 1e-9)
	assert.InDelta(t, 10.0, b.Difference, 1e-9)
	assert.Equal(t, 10, b.SampleSize)
}

func TestCalibrationIgnoresPushesAndPending(t *testing.T) {
	push := resolvedBet(models.BetKindTotal, models.BetStatusPushed, 10, 10)
	push.Confidence = 5
	pending := models.TrackedBet{Status: models.BetStatusPending, Confidence: 5}

	assert.Empty(t, CalculateModelAccuracy([]models.TrackedBet{push, pending}))
}

func TestPerformanceByKindSplitsGroups(t *testing.T) {
	bets := []models.TrackedBet{
		resolvedBet(models.BetKindMoneyline, models.BetStatusWon, 100, 250),
		resolvedBet(models.BetKindTotal, models.BetStatusLost, 100, 0),
	}

	byKind := PerformanceByKind(bets)
	require.Len(t, byKind, 2)
	assert.Equal(t, 1, byKind[models.BetKindMoneyline].Wins)
	assert.Equal(t, 1, byKind[models.BetKindTotal].Losses)
}

func TestRecentTrendWindow(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	old := now.AddDate(0, 0, -45)
	recent := now.AddDate(0, 0, -5)

	oldBet := resolvedBet(models.BetKindTotal, models.BetStatusWon, 10, 19)
	oldBet.ResolvedAt = &old
	recentBet := resolvedBet(models.BetKindTotal, models.BetStatusLost, 10, 0)
	recentBet.ResolvedAt = &recent

	trend := RecentTrend([]models.TrackedBet{oldBet, recentBet}, now)
	assert.Equal(t, 1, trend.TotalBets)
	assert.Equal(t, 1, trend.Losses)
}

func TestAvgOddsOverResolvedBets(t *testing.T) {
	win := resolvedBet(models.BetKindTotal, models.BetStatusWon, 100, 190)
	win.Odds = 150
	loss := resolvedBet(models.BetKindTotal, models.BetStatusLost, 100, 0)
	loss.Odds = -110

	perf := CalculateOverallPerformance([]models.TrackedBet{win, loss})
	assert.InDelta(t, 20.0, perf.AvgOdds, 1e-9)
}

func TestTrendDirection(t *testing.T) {
	overall := Performance{TotalBets: 50, WinRate: 52}

	assert.Equal(t, TrendInsufficientData, Direction(Performance{TotalBets: 4, WinRate: 90}, overall))
	assert.Equal(t, TrendImproving, Direction(Performance{TotalBets: 10, WinRate: 60}, overall))
	assert.Equal(t, TrendDeclining, Direction(Performance{TotalBets: 10, WinRate: 40}, overall))
}

func TestAdvisories(t *testing.T) {
	overall := Performance{TotalBets: 10, WinRate: 42, ROI: -8}
	byKind := map[models.BetKind]Performance{
		models.BetKindMoneyline:  {TotalBets: 5, ROI: 22},
		models.BetKindPlayerProp: {TotalBets: 5, ROI: -35},
		models.BetKindTotal:      {TotalBets: 5, ROI: 4},
	}

	advisories := GenerateAdvisories(overall, byKind)
	require.Len(t, advisories, 4)

	levels := map[AdvisoryLevel]int{}
	for _, a := range advisories {
		levels[a.Level]++
	}
	assert.Equal(t, 3, levels[AdvisoryWarning])
	assert.Equal(t, 1, levels[AdvisoryOpportunity])
}

func TestAdvisoriesQuietWhenHealthy(t *testing.T) {
	overall := Performance{TotalBets: 10, WinRate: 58, ROI: 6}
	assert.Empty(t, GenerateAdvisories(overall, nil))
}
