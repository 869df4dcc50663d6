package tracking

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	applogger "github.com/yourusername/diamond-picks/internal/logger"
	"github.com/yourusername/diamond-picks/internal/metrics"
	"github.com/yourusername/diamond-picks/internal/models"
)

// DefaultFeedbackCapacity bounds the feedback ring buffer per bet kind.
const DefaultFeedbackCapacity = 1000

// AddBetRequest is the input to AddBet.
type AddBetRequest struct {
	GameID     string
	HomeTeam   string
	AwayTeam   string
	Kind       models.BetKind
	Selection  string
	Odds       int
	Stake      decimal.Decimal
	Confidence float64
	ModelScore float64

	Total      *models.TotalDetail
	Runline    *models.RunlineDetail
	PlayerProp *models.PlayerPropDetail
	Parlay     *models.ParlayDetail

	Notes string
}

// Tracker owns the bet lifecycle and the per-kind feedback buffers.
// Feedback never feeds back into live scoring.
type Tracker struct {
	store    Store
	capacity int
	logger   *logrus.Entry
	audit    *applogger.AuditLogger
	metrics  *metrics.Metrics
	now      func() time.Time

	mu       sync.Mutex
	feedback map[models.BetKind][]models.ModelFeedback
}

// TrackerOptions configures optional tracker collaborators.
type TrackerOptions struct {
	FeedbackCapacity int
	Audit            *applogger.AuditLogger
	Metrics          *metrics.Metrics
}

// NewTracker creates a tracker over the given store.
func NewTracker(store Store, log *logrus.Logger, opts TrackerOptions) *Tracker {
	capacity := opts.FeedbackCapacity
	if capacity <= 0 {
		capacity = DefaultFeedbackCapacity
	}
	return &Tracker{
		store:    store,
		capacity: capacity,
		logger:   applogger.ForComponent(log, "tracker"),
		audit:    opts.Audit,
		metrics:  opts.Metrics,
		now:      time.Now,
		feedback: make(map[models.BetKind][]models.ModelFeedback),
	}
}

// AddBet records a new pending bet, computing its potential payout
// from the American odds.
func (t *Tracker) AddBet(ctx context.Context, req AddBetRequest) (models.TrackedBet, error) {
	if req.Stake.IsNegative() {
		return models.TrackedBet{}, fmt.Errorf("stake must not be negative")
	}

	now := t.now()
	bet := models.TrackedBet{
		ID:              models.NewBetID(now),
		PlacedAt:        now,
		GameID:          req.GameID,
		HomeTeam:        req.HomeTeam,
		AwayTeam:        req.AwayTeam,
		Kind:            req.Kind,
		Selection:       req.Selection,
		Odds:            req.Odds,
		Stake:           req.Stake,
		PotentialPayout: models.CalculatePayout(req.Odds, req.Stake),
		Confidence:      req.Confidence,
		ModelScore:      req.ModelScore,
		Status:          models.BetStatusPending,
		Total:           req.Total,
		Runline:         req.Runline,
		PlayerProp:      req.PlayerProp,
		Parlay:          req.Parlay,
		Notes:           req.Notes,
	}

	if err := t.store.Insert(ctx, bet); err != nil {
		return models.TrackedBet{}, fmt.Errorf("failed to record bet: %w", err)
	}

	if t.metrics != nil {
		t.metrics.IncTrackedBet(string(models.BetStatusPending))
	}
	if t.audit != nil {
		stake, _ := bet.Stake.Float64()
		t.audit.LogBetPlacement(bet.ID, bet.GameID, string(bet.Kind), bet.Selection, stake, bet.Odds, bet.PlacedAt)
	}
	return bet, nil
}

// UpdateBetResult resolves a pending bet. Unknown ids return
// ErrNotFound; re-resolving returns ErrAlreadyResolved and changes
// nothing, so settled outcomes are never double-counted.
func (t *Tracker) UpdateBetResult(ctx context.Context, id string, result models.BetStatus, actualPayout decimal.Decimal) (models.TrackedBet, error) {
	if !result.IsTerminal() {
		return models.TrackedBet{}, fmt.Errorf("result %q is not a terminal status", result)
	}

	bet, err := t.store.Get(ctx, id)
	if err != nil {
		return models.TrackedBet{}, err
	}
	if bet.Status.IsTerminal() {
		return models.TrackedBet{}, models.ErrAlreadyResolved
	}

	resolvedAt := t.now()
	bet.Status = result
	bet.ResolvedAt = &resolvedAt
	bet.ActualPayout = actualPayout
	bet.Profit = actualPayout.Sub(bet.Stake)
	bet.ROI = roiPercent(bet.Profit, bet.Stake)

	if err := t.store.Update(ctx, bet); err != nil {
		return models.TrackedBet{}, fmt.Errorf("failed to update bet: %w", err)
	}

	t.appendFeedback(bet)

	if t.metrics != nil {
		t.metrics.IncTrackedBet(string(result))
	}
	if t.audit != nil {
		payout, _ := bet.ActualPayout.Float64()
		profit, _ := bet.Profit.Float64()
		t.audit.LogBetResolution(bet.ID, string(result), payout, profit, bet.ROI)
	}
	return bet, nil
}

// Bets returns all tracked bets in insertion order.
func (t *Tracker) Bets(ctx context.Context) ([]models.TrackedBet, error) {
	return t.store.List(ctx)
}

// BetsForDate returns bets placed on the given UTC calendar day.
func (t *Tracker) BetsForDate(ctx context.Context, day time.Time) ([]models.TrackedBet, error) {
	bets, err := t.store.List(ctx)
	if err != nil {
		return nil, err
	}

	y, m, d := day.UTC().Date()
	out := make([]models.TrackedBet, 0, len(bets))
	for _, b := range bets {
		by, bm, bd := b.PlacedAt.UTC().Date()
		if by == y && bm == m && bd == d {
			out = append(out, b)
		}
	}
	return out, nil
}

// RecentBets returns the n most recently placed bets, oldest first.
func (t *Tracker) RecentBets(ctx context.Context, n int) ([]models.TrackedBet, error) {
	bets, err := t.store.List(ctx)
	if err != nil {
		return nil, err
	}
	if n < 0 {
		n = 0
	}
	if n < len(bets) {
		bets = bets[len(bets)-n:]
	}
	return bets, nil
}

// Feedback returns a copy of the feedback buffer for a bet kind,
// oldest first.
func (t *Tracker) Feedback(kind models.BetKind) []models.ModelFeedback {
	t.mu.Lock()
	defer t.mu.Unlock()
	buf := t.feedback[kind]
	out := make([]models.ModelFeedback, len(buf))
	copy(out, buf)
	return out
}

// Clear resets the bet collection and feedback buffers. Also the
// recovery path for corrupt persisted state.
func (t *Tracker) Clear(ctx context.Context) error {
	if err := t.store.Clear(ctx); err != nil {
		return err
	}
	t.mu.Lock()
	t.feedback = make(map[models.BetKind][]models.ModelFeedback)
	t.mu.Unlock()
	t.logger.Warn("Tracking state cleared")
	return nil
}

// appendFeedback pushes one record into the kind's ring buffer,
// evicting the oldest past capacity.
func (t *Tracker) appendFeedback(bet models.TrackedBet) {
	record := models.ModelFeedback{
		BetID:      bet.ID,
		GameID:     bet.GameID,
		ResolvedAt: *bet.ResolvedAt,
		Kind:       bet.Kind,
		Selection:  bet.Selection,
		Confidence: bet.Confidence,
		ModelScore: bet.ModelScore,
		Result:     bet.Status,
		Profit:     bet.Profit,
		ROI:        bet.ROI,
		Odds:       bet.Odds,
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	buf := append(t.feedback[bet.Kind], record)
	if len(buf) > t.capacity {
		buf = buf[len(buf)-t.capacity:]
	}
	t.feedback[bet.Kind] = buf
}

func roiPercent(profit, stake decimal.Decimal) float64 {
	if stake.IsZero() {
		return 0
	}
	roi, _ := profit.Div(stake).Mul(decimal.NewFromInt(100)).Float64()
	return roi
}
