package tracking

import (
	"context"
	"encoding/json"
	"time"

	"github.com/yourusername/diamond-picks/internal/models"
)

// Report is the full analytics bundle over the tracked bet history.
type Report struct {
	GeneratedAt time.Time                        `json:"generated_at"`
	Overall     Performance                      `json:"overall"`
	ByKind      map[models.BetKind]Performance   `json:"by_kind"`
	ByBand      map[models.BandLabel]Performance `json:"by_band"`
	Calibration []CalibrationBucket              `json:"calibration"`
	Last30Days  Performance                      `json:"last_30_days"`
	Trend       TrendDirection                   `json:"trend"`
	Advisories  []Advisory                       `json:"advisories"`
}

// BuildReport computes every analytics view over the current bet
// history.
func (t *Tracker) BuildReport(ctx context.Context) (*Report, error) {
	bets, err := t.store.List(ctx)
	if err != nil {
		return nil, err
	}

	now := t.now()
	overall := CalculateOverallPerformance(bets)
	byKind := PerformanceByKind(bets)
	last30 := RecentTrend(bets, now)

	return &Report{
		GeneratedAt: now,
		Overall:     overall,
		ByKind:      byKind,
		ByBand:      PerformanceByBand(bets),
		Calibration: CalculateModelAccuracy(bets),
		Last30Days:  last30,
		Trend:       Direction(last30, overall),
		Advisories:  GenerateAdvisories(overall, byKind),
	}, nil
}

// ExportJSON serializes the full bet history for backup or external
// analysis.
func (t *Tracker) ExportJSON(ctx context.Context) ([]byte, error) {
	bets, err := t.store.List(ctx)
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(struct {
		ExportedAt time.Time           `json:"exported_at"`
		Bets       []models.TrackedBet `json:"bets"`
	}{ExportedAt: t.now(), Bets: bets}, "", "  ")
}
