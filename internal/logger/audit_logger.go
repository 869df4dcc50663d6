// Package logger provides audit logging.
package logger

import (
	"time"

	"github.com/sirupsen/logrus"
)

// AuditLogger provides dedicated audit trail logging for bet tracking
// and analysis runs.
type AuditLogger struct {
	*logrus.Entry
}

// NewAuditLogger creates a new audit logger.
func NewAuditLogger(baseLogger *logrus.Logger) *AuditLogger {
	return &AuditLogger{
		Entry: baseLogger.WithField("component", "audit"),
	}
}

// LogBetPlacement logs a tracked bet creation event.
func (al *AuditLogger) LogBetPlacement(betID, gameID, kind, selection string, stake float64, odds int, placedAt time.Time) {
	al.WithFields(logrus.Fields{
		"bet_id":    betID,
		"game_id":   gameID,
		"kind":      kind,
		"selection": selection,
		"stake":     stake,
		"odds":      odds,
		"placed_at": placedAt.Unix(),
	}).Info("Bet placement recorded")
}

// LogBetResolution logs a bet reaching a terminal status.
func (al *AuditLogger) LogBetResolution(betID, result string, actualPayout, profit, roi float64) {
	al.WithFields(logrus.Fields{
		"bet_id":        betID,
		"result":        result,
		"actual_payout": actualPayout,
		"profit":        profit,
		"roi":           roi,
	}).Info("Bet result recorded")
}

// LogAnalysisRun logs the outcome of one analysis run.
func (al *AuditLogger) LogAnalysisRun(games, candidates, recommendations, parlays int, fallback bool, duration time.Duration) {
	al.WithFields(logrus.Fields{
		"games":           games,
		"candidates":      candidates,
		"recommendations": recommendations,
		"parlays":         parlays,
		"fallback_data":   fallback,
		"duration_ms":     duration.Milliseconds(),
	}).Info("Analysis run completed")
}
