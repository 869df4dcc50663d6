package tracking

import (
	"fmt"
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/yourusername/diamond-picks/internal/models"
)

// Advisory thresholds.
const (
	minHealthyWinRate  = 50.0
	kindOpportunityROI = 15.0
	kindWarningROI     = -20.0
)

// Performance summarizes resolved bets.
type Performance struct {
	TotalBets         int             `json:"total_bets"`
	Wins              int             `json:"wins"`
	Losses            int             `json:"losses"`
	Pushes            int             `json:"pushes"`
	WinRate           float64         `json:"win_rate"`
	AvgOdds           float64         `json:"avg_odds"`
	TotalStaked       decimal.Decimal `json:"total_staked"`
	TotalPayout       decimal.Decimal `json:"total_payout"`
	Profit            decimal.Decimal `json:"profit"`
	ROI               float64         `json:"roi"`
	LongestWinStreak  int             `json:"longest_win_streak"`
	LongestLoseStreak int             `json:"longest_lose_streak"`
}

// CalculateOverallPerformance aggregates every non-pending bet.
// Streaks count contiguous runs in insertion order and reset on any
// other status.
func CalculateOverallPerformance(bets []models.TrackedBet) Performance {
	perf := Performance{
		TotalStaked: decimal.Zero,
		TotalPayout: decimal.Zero,
		Profit:      decimal.Zero,
	}

	winRun, loseRun := 0, 0
	oddsSum := 0
	for _, b := range bets {
		if !b.Status.IsTerminal() {
			continue
		}
		perf.TotalBets++
		perf.TotalStaked = perf.TotalStaked.Add(b.Stake)
		perf.TotalPayout = perf.TotalPayout.Add(b.ActualPayout)
		oddsSum += b.Odds

		switch b.Status {
		case models.BetStatusWon:
			perf.Wins++
			winRun++
			loseRun = 0
		case models.BetStatusLost:
			perf.Losses++
			loseRun++
			winRun = 0
		default:
			if b.Status == models.BetStatusPushed {
				perf.Pushes++
			}
			winRun, loseRun = 0, 0
		}
		if winRun > perf.LongestWinStreak {
			perf.LongestWinStreak = winRun
		}
		if loseRun > perf.LongestLoseStreak {
			perf.LongestLoseStreak = loseRun
		}
	}

	if perf.TotalBets > 0 {
		perf.WinRate = float64(perf.Wins) / float64(perf.TotalBets) * 100
		perf.AvgOdds = float64(oddsSum) / float64(perf.TotalBets)
	}
	perf.Profit = perf.TotalPayout.Sub(perf.TotalStaked)
	if !perf.TotalStaked.IsZero() {
		roi, _ := perf.Profit.Div(perf.TotalStaked).Mul(decimal.NewFromInt(100)).Float64()
		perf.ROI = roi
	}
	return perf
}

// PerformanceByKind computes a Performance per bet kind, in reporting
// order, skipping kinds with no resolved bets.
func PerformanceByKind(bets []models.TrackedBet) map[models.BetKind]Performance {
	grouped := make(map[models.BetKind][]models.TrackedBet)
	for _, b := range bets {
		grouped[b.Kind] = append(grouped[b.Kind], b)
	}

	out := make(map[models.BetKind]Performance, len(grouped))
	for kind, group := range grouped {
		perf := CalculateOverallPerformance(group)
		if perf.TotalBets > 0 {
			out[kind] = perf
		}
	}
	return out
}

// PerformanceByBand groups resolved bets by the confidence band of
// their model score at prediction time.
func PerformanceByBand(bets []models.TrackedBet) map[models.BandLabel]Performance {
	grouped := make(map[models.BandLabel][]models.TrackedBet)
	for _, b := range bets {
		grouped[models.BandFor(b.ModelScore)] = append(grouped[models.BandFor(b.ModelScore)], b)
	}

	out := make(map[models.BandLabel]Performance, len(grouped))
	for band, group := range grouped {
		perf := CalculateOverallPerformance(group)
		if perf.TotalBets > 0 {
			out[band] = perf
		}
	}
	return out
}

// CalibrationBucket is one point on the calibration curve.
type CalibrationBucket struct {
	Bucket     int     `json:"bucket"`
	Expected   float64 `json:"expected"`
	Actual     float64 `json:"actual"`
	Difference float64 `json:"difference"`
	SampleSize int     `json:"sample_size"`
}

// CalculateModelAccuracy buckets resolved won/lost bets by
// floor(confidence) and compares actual win rate per bucket against
// the bucket's implied expectation.
func CalculateModelAccuracy(bets []models.TrackedBet) []CalibrationBucket {
	type tally struct{ wins, total int }
	tallies := make(map[int]*tally)

	for _, b := range bets {
		if b.Status != models.BetStatusWon && b.Status != models.BetStatusLost {
			continue
		}
		bucket := int(math.Floor(b.Confidence))
		if bucket < 0 {
			bucket = 0
		}
		if bucket > 10 {
			bucket = 10
		}
		tl, ok := tallies[bucket]
		if !ok {
			tl = &tally{}
			tallies[bucket] = tl
		}
		tl.total++
		if b.Status == models.BetStatusWon {
			tl.wins++
		}
	}

	buckets := make([]CalibrationBucket, 0, len(tallies))
	for bucket := 0; bucket <= 10; bucket++ {
		tl, ok := tallies[bucket]
		if !ok {
			continue
		}
		expected := float64(bucket) * 10
		actual := float64(tl.wins) / float64(tl.total) * 100
		buckets = append(buckets, CalibrationBucket{
			Bucket:     bucket,
			Expected:   expected,
			Actual:     actual,
			Difference: math.Abs(expected - actual),
			SampleSize: tl.total,
		})
	}
	return buckets
}

// RecentTrend summarizes the last 30 days of resolved bets.
func RecentTrend(bets []models.TrackedBet, now time.Time) Performance {
	cutoff := now.AddDate(0, 0, -30)
	recent := make([]models.TrackedBet, 0, len(bets))
	for _, b := range bets {
		if b.ResolvedAt != nil && b.ResolvedAt.After(cutoff) {
			recent = append(recent, b)
		}
	}
	return CalculateOverallPerformance(recent)
}

// TrendDirection labels the recent-window trajectory against the
// all-time baseline.
type TrendDirection string

const (
	TrendImproving        TrendDirection = "improving"
	TrendDeclining        TrendDirection = "declining"
	TrendInsufficientData TrendDirection = "insufficient_data"
)

// minTrendSample is the smallest recent window worth labeling.
const minTrendSample = 5

// Direction compares the recent window against the overall baseline.
func Direction(recent, overall Performance) TrendDirection {
	if recent.TotalBets < minTrendSample {
		return TrendInsufficientData
	}
	if recent.WinRate >= overall.WinRate {
		return TrendImproving
	}
	return TrendDeclining
}

// AdvisoryLevel grades an advisory message.
type AdvisoryLevel string

const (
	AdvisoryWarning     AdvisoryLevel = "warning"
	AdvisoryOpportunity AdvisoryLevel = "opportunity"
)

// Advisory is one actionable takeaway from the performance report.
type Advisory struct {
	Level   AdvisoryLevel `json:"level"`
	Message string        `json:"message"`
}

// GenerateAdvisories emits warnings for weak overall numbers and
// per-kind outliers in either direction.
func GenerateAdvisories(overall Performance, byKind map[models.BetKind]Performance) []Advisory {
	var advisories []Advisory

	if overall.TotalBets > 0 && overall.WinRate < minHealthyWinRate {
		advisories = append(advisories, Advisory{
			Level:   AdvisoryWarning,
			Message: fmt.Sprintf("Overall win rate %.1f%% is below break-even territory", overall.WinRate),
		})
	}
	if overall.TotalBets > 0 && overall.ROI < 0 {
		advisories = append(advisories, Advisory{
			Level:   AdvisoryWarning,
			Message: fmt.Sprintf("Overall ROI is negative (%.1f%%)", overall.ROI),
		})
	}

	for _, kind := range models.BetKinds {
		perf, ok := byKind[kind]
		if !ok {
			continue
		}
		switch {
		case perf.ROI > kindOpportunityROI:
			advisories = append(advisories, Advisory{
				Level:   AdvisoryOpportunity,
				Message: fmt.Sprintf("%s bets are returning %.1f%% ROI, consider increasing allocation", kind, perf.ROI),
			})
		case perf.ROI < kindWarningROI:
			advisories = append(advisories, Advisory{
				Level:   AdvisoryWarning,
				Message: fmt.Sprintf("%s bets are losing %.1f%% ROI, consider reducing exposure", kind, perf.ROI),
			})
		}
	}
	return advisories
}
