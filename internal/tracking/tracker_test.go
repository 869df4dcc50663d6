package tracking

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/diamond-picks/internal/models"
)

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetLevel(logrus.PanicLevel)
	return l
}

func newTestTracker(opts TrackerOptions) *Tracker {
	return NewTracker(NewMemoryStore(), quietLogger(), opts)
}

func stake(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v)
}

func TestAddBetComputesPayoutFromPositiveOdds(t *testing.T) {
	tr := newTestTracker(TrackerOptions{})

	bet, err := tr.AddBet(context.Background(), AddBetRequest{
		GameID: "g1", Kind: models.BetKindMoneyline, Odds: 150, Stake: stake(100),
	})
	require.NoError(t, err)

	assert.Equal(t, models.BetStatusPending, bet.Status)
	payout, _ := bet.PotentialPayout.Float64()
	assert.InDelta(t, 250.0, payout, 0.01)
}

func TestAddBetComputesPayoutFromNegativeOdds(t *testing.T) {
	tr := newTestTracker(TrackerOptions{})

	bet, err := tr.AddBet(context.Background(), AddBetRequest{
		GameID: "g1", Kind: models.BetKindTotal, Odds: -150, Stake: stake(100),
	})
	require.NoError(t, err)

	payout, _ := bet.PotentialPayout.Float64()
	assert.InDelta(t, 166.67, payout, 0.01)
}

func TestBetIDsAreUnique(t *testing.T) {
	tr := newTestTracker(TrackerOptions{})
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		bet, err := tr.AddBet(context.Background(), AddBetRequest{
			GameID: "g1", Kind: models.BetKindTotal, Odds: -110, Stake: stake(10),
		})
		require.NoError(t, err)
		assert.False(t, seen[bet.ID])
		seen[bet.ID] = true
	}
}

func TestUpdateBetResultComputesProfitAndROI(t *testing.T) {
	tr := newTestTracker(TrackerOptions{})

	bet, err := tr.AddBet(context.Background(), AddBetRequest{
		GameID: "g1", Kind: models.BetKindMoneyline, Odds: 150, Stake: stake(100),
	})
	require.NoError(t, err)

	resolved, err := tr.UpdateBetResult(context.Background(), bet.ID, models.BetStatusWon, stake(250))
	require.NoError(t, err)

	assert.Equal(t, models.BetStatusWon, resolved.Status)
	profit, _ := resolved.Profit.Float64()
	assert.InDelta(t, 150.0, profit, 0.01)
	assert.InDelta(t, 150.0, resolved.ROI, 0.01)
	require.NotNil(t, resolved.ResolvedAt)
}

func TestUpdateBetResultZeroStakeROI(t *testing.T) {
	tr := newTestTracker(TrackerOptions{})

	bet, err := tr.AddBet(context.Background(), AddBetRequest{
		GameID: "g1", Kind: models.BetKindMoneyline, Odds: 150, Stake: decimal.Zero,
	})
	require.NoError(t, err)

	resolved, err := tr.UpdateBetResult(context.Background(), bet.ID, models.BetStatusWon, stake(10))
	require.NoError(t, err)
	assert.Zero(t, resolved.ROI)
}

func TestUpdateBetResultUnknownIDLeavesCollectionUnchanged(t *testing.T) {
	tr := newTestTracker(TrackerOptions{})

	_, err := tr.AddBet(context.Background(), AddBetRequest{
		GameID: "g1", Kind: models.BetKindTotal, Odds: -110, Stake: stake(50),
	})
	require.NoError(t, err)

	_, err = tr.UpdateBetResult(context.Background(), "bet_missing", models.BetStatusWon, stake(100))
	assert.ErrorIs(t, err, models.ErrNotFound)

	bets, err := tr.Bets(context.Background())
	require.NoError(t, err)
	require.Len(t, bets, 1)
	assert.Equal(t, models.BetStatusPending, bets[0].Status)
}

func TestUpdateBetResultRejectsDoubleResolution(t *testing.T) {
	tr := newTestTracker(TrackerOptions{})

	bet, err := tr.AddBet(context.Background(), AddBetRequest{
		GameID: "g1", Kind: models.BetKindTotal, Odds: -110, Stake: stake(50),
	})
	require.NoError(t, err)

	_, err = tr.UpdateBetResult(context.Background(), bet.ID, models.BetStatusWon, stake(95))
	require.NoError(t, err)

	_, err = tr.UpdateBetResult(context.Background(), bet.ID, models.BetStatusLost, decimal.Zero)
	assert.ErrorIs(t, err, models.ErrAlreadyResolved)

	// Only one feedback record despite the second attempt.
	assert.Len(t, tr.Feedback(models.BetKindTotal), 1)
}

func TestUpdateBetResultRejectsPendingResult(t *testing.T) {
	tr := newTestTracker(TrackerOptions{})

	bet, err := tr.AddBet(context.Background(), AddBetRequest{
		GameID: "g1", Kind: models.BetKindTotal, Odds: -110, Stake: stake(50),
	})
	require.NoError(t, err)

	_, err = tr.UpdateBetResult(context.Background(), bet.ID, models.BetStatusPending, decimal.Zero)
	assert.Error(t, err)
}

func TestFeedbackRingBufferCap(t *testing.T) {
	tr := newTestTracker(TrackerOptions{FeedbackCapacity: 1000})
	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	counter := 0
	tr.now = func() time.Time {
		counter++
		return base.Add(time.Duration(counter) * time.Millisecond)
	}

	ctx := context.Background()
	var firstFive []string
	for i := 0; i < 1005; i++ {
		bet, err := tr.AddBet(ctx, AddBetRequest{
			GameID: "g1", Kind: models.BetKindTotal, Odds: -110, Stake: stake(10),
		})
		require.NoError(t, err)
		if i < 5 {
			firstFive = append(firstFive, bet.ID)
		}
		_, err = tr.UpdateBetResult(ctx, bet.ID, models.BetStatusWon, stake(19))
		require.NoError(t, err)
	}

	buf := tr.Feedback(models.BetKindTotal)
	require.Len(t, buf, 1000)
	for _, record := range buf {
		assert.NotContains(t, firstFive, record.BetID)
	}
}

func TestRecentBetsReturnsLastNInOrder(t *testing.T) {
	tr := newTestTracker(TrackerOptions{})
	ctx := context.Background()

	var ids []string
	for i := 0; i < 5; i++ {
		bet, err := tr.AddBet(ctx, AddBetRequest{GameID: "g1", Kind: models.BetKindTotal, Odds: -110, Stake: stake(10)})
		require.NoError(t, err)
		ids = append(ids, bet.ID)
	}

	recent, err := tr.RecentBets(ctx, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, ids[3], recent[0].ID)
	assert.Equal(t, ids[4], recent[1].ID)

	all, err := tr.RecentBets(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, all, 5)
}

func TestBetsForDateFiltersByCalendarDay(t *testing.T) {
	tr := newTestTracker(TrackerOptions{})
	ctx := context.Background()

	day1 := time.Date(2026, 8, 27, 23, 30, 0, 0, time.UTC)
	day2 := time.Date(2026, 8, 28, 0, 30, 0, 0, time.UTC)
	times := []time.Time{day1, day2, day2.Add(time.Hour)}
	i := 0
	tr.now = func() time.Time {
		ts := times[i]
		i++
		return ts
	}

	for range times {
		_, err := tr.AddBet(ctx, AddBetRequest{GameID: "g1", Kind: models.BetKindTotal, Odds: -110, Stake: stake(10)})
		require.NoError(t, err)
	}

	bets, err := tr.BetsForDate(ctx, time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Len(t, bets, 2)
}

func TestClearResetsState(t *testing.T) {
	tr := newTestTracker(TrackerOptions{})
	ctx := context.Background()

	bet, err := tr.AddBet(ctx, AddBetRequest{GameID: "g1", Kind: models.BetKindTotal, Odds: -110, Stake: stake(10)})
	require.NoError(t, err)
	_, err = tr.UpdateBetResult(ctx, bet.ID, models.BetStatusWon, stake(19))
	require.NoError(t, err)

	require.NoError(t, tr.Clear(ctx))

	bets, err := tr.Bets(ctx)
	require.NoError(t, err)
	assert.Empty(t, bets)
	assert.Empty(t, tr.Feedback(models.BetKindTotal))
}
