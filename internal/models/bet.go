package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BetKind partitions tracked bets by market category.
type BetKind string

const (
	BetKindMoneyline  BetKind = "moneyline"
	BetKindRunline    BetKind = "runline"
	BetKindTotal      BetKind = "total"
	BetKindPlayerProp BetKind = "player_prop"
	BetKindParlay     BetKind = "parlay"
)

// BetKinds lists every kind in reporting order.
var BetKinds = []BetKind{
	BetKindMoneyline,
	BetKindRunline,
	BetKindTotal,
	BetKindPlayerProp,
	BetKindParlay,
}

// BetStatus is the lifecycle state of a tracked bet. A bet is created
// pending and transitions exactly once to a terminal status.
type BetStatus string

const (
	BetStatusPending   BetStatus = "pending"
	BetStatusWon       BetStatus = "won"
	BetStatusLost      BetStatus = "lost"
	BetStatusPushed    BetStatus = "pushed"
	BetStatusCancelled BetStatus = "cancelled"
)

// IsTerminal reports whether the status is a settled outcome.
func (s BetStatus) IsTerminal() bool {
	return s != BetStatusPending
}

// TotalDetail carries fields specific to a total (over/under) bet.
type TotalDetail struct {
	Line      float64 `json:"line" db:"line"`
	OverUnder string  `json:"over_under" db:"over_under"`
}

// RunlineDetail carries fields specific to a run-line bet.
type RunlineDetail struct {
	Spread float64 `json:"spread" db:"spread"`
	Team   string  `json:"team" db:"team"`
}

// PlayerPropDetail carries fields specific to a player prop bet.
type PlayerPropDetail struct {
	Player    string  `json:"player" db:"player"`
	Stat      string  `json:"stat" db:"stat"`
	Line      float64 `json:"line" db:"line"`
	OverUnder string  `json:"over_under" db:"over_under"`
}

// ParlayDetail carries fields specific to a parlay bet.
type ParlayDetail struct {
	Legs       []string       `json:"legs"`
	ParlayType ParlayCategory `json:"parlay_type"`
}

// TrackedBet is a user-recorded bet linked to the recommendation that
// produced it. Exactly the detail struct matching Kind is non-nil.
type TrackedBet struct {
	ID         string    `json:"id" db:"id" validate:"required"`
	PlacedAt   time.Time `json:"placed_at" db:"placed_at"`
	GameID     string    `json:"game_id" db:"game_id"`
	HomeTeam   string    `json:"home_team" db:"home_team"`
	AwayTeam   string    `json:"away_team" db:"away_team"`
	Kind       BetKind   `json:"kind" db:"kind" validate:"required,oneof=moneyline runline total player_prop parlay"`
	Selection  string    `json:"selection" db:"selection"`
	Odds       int       `json:"odds" db:"odds"`

	Stake           decimal.Decimal `json:"stake" db:"stake"`
	PotentialPayout decimal.Decimal `json:"potential_payout" db:"potential_payout"`

	// Model state at prediction time, for calibration.
	Confidence float64 `json:"confidence" db:"confidence"`
	ModelScore float64 `json:"model_score" db:"model_score"`

	Status       BetStatus       `json:"status" db:"status"`
	ResolvedAt   *time.Time      `json:"resolved_at,omitempty" db:"resolved_at"`
	ActualPayout decimal.Decimal `json:"actual_payout" db:"actual_payout"`
	Profit       decimal.Decimal `json:"profit" db:"profit"`
	ROI          float64         `json:"roi" db:"roi"`

	Total      *TotalDetail      `json:"total,omitempty"`
	Runline    *RunlineDetail    `json:"runline,omitempty"`
	PlayerProp *PlayerPropDetail `json:"player_prop,omitempty"`
	Parlay     *ParlayDetail     `json:"parlay,omitempty"`

	Notes string `json:"notes,omitempty" db:"notes"`
}

// NewBetID generates a collision-resistant bet identifier. The
// timestamp keeps IDs sortable; the UUID suffix keeps concurrent
// client sessions from colliding.
func NewBetID(now time.Time) string {
	return fmt.Sprintf("bet_%d_%s", now.UnixMilli(), uuid.NewString()[:8])
}

// CalculatePayout computes the total return (stake included) for a
// stake at American odds. Positive odds pay odds per 100 staked;
// negative odds require |odds| staked per 100 profit.
func CalculatePayout(odds int, stake decimal.Decimal) decimal.Decimal {
	hundred := decimal.NewFromInt(100)
	if odds > 0 {
		profit := stake.Mul(decimal.NewFromInt(int64(odds))).Div(hundred)
		return stake.Add(profit)
	}
	if odds < 0 {
		profit := stake.Mul(hundred).Div(decimal.NewFromInt(int64(-odds)))
		return stake.Add(profit)
	}
	return stake
}

// ModelFeedback is one calibration record per resolved bet. Records
// are retained per bet kind in a bounded ring buffer and are never
// replayed into live scoring.
type ModelFeedback struct {
	BetID      string          `json:"bet_id"`
	GameID     string          `json:"game_id"`
	ResolvedAt time.Time       `json:"resolved_at"`
	Kind       BetKind         `json:"kind"`
	Selection  string          `json:"selection"`
	Confidence float64         `json:"confidence"`
	ModelScore float64         `json:"model_score"`
	Result     BetStatus       `json:"result"`
	Profit     decimal.Decimal `json:"profit"`
	ROI        float64         `json:"roi"`
	Odds       int             `json:"odds"`
}
