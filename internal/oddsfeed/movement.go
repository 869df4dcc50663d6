package oddsfeed

import (
	"math"
	"sync"
	"time"
)

// Movement thresholds in American cents (moneyline) and runs (totals).
const (
	mlAlertMove     = 20.0
	mlSevereMove    = 50.0
	totalAlertMove  = 0.5
	totalSevereMove = 1.0

	historyPerGame = 50
	alertsCap      = 100
	recentAlerts   = 5
)

// Severity grades how hard a line moved.
type Severity string

const (
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// PricePoint is one observed quote for a game.
type PricePoint struct {
	HomeML     int
	AwayML     int
	TotalPoint float64
	ObservedAt time.Time
}

// MovementAlert records a line move past the alert threshold.
type MovementAlert struct {
	GameID     string
	Market     string
	Delta      float64
	Severity   Severity
	ObservedAt time.Time
}

// MovementTracker keeps a bounded price history per game and raises
// alerts on significant moves. Safe for concurrent use; the stream
// client writes while analysis runs read.
type MovementTracker struct {
	mu      sync.RWMutex
	history map[string][]PricePoint
	alerts  []MovementAlert
}

// NewMovementTracker creates an empty tracker.
func NewMovementTracker() *MovementTracker {
	return &MovementTracker{history: make(map[string][]PricePoint)}
}

// Record appends a price observation and raises alerts for any
// threshold the move crossed. History is capped per game, alerts
// globally, oldest dropped first.
func (mt *MovementTracker) Record(gameID string, point PricePoint) {
	mt.mu.Lock()
	defer mt.mu.Unlock()

	hist := mt.history[gameID]
	if n := len(hist); n > 0 {
		prev := hist[n-1]
		mt.checkMove(gameID, "moneyline_home", float64(point.HomeML-prev.HomeML), mlAlertMove, mlSevereMove, point.ObservedAt)
		mt.checkMove(gameID, "moneyline_away", float64(point.AwayML-prev.AwayML), mlAlertMove, mlSevereMove, point.ObservedAt)
		mt.checkMove(gameID, "total", point.TotalPoint-prev.TotalPoint, totalAlertMove, totalSevereMove, point.ObservedAt)
	}

	hist = append(hist, point)
	if len(hist) > historyPerGame {
		hist = hist[len(hist)-historyPerGame:]
	}
	mt.history[gameID] = hist
}

func (mt *MovementTracker) checkMove(gameID, market string, delta, alertAt, severeAt float64, at time.Time) {
	abs := math.Abs(delta)
	if abs < alertAt {
		return
	}
	sev := SeverityMedium
	if abs >= severeAt {
		sev = SeverityHigh
	}
	mt.alerts = append(mt.alerts, MovementAlert{
		GameID:     gameID,
		Market:     market,
		Delta:      delta,
		Severity:   sev,
		ObservedAt: at,
	})
	if len(mt.alerts) > alertsCap {
		mt.alerts = mt.alerts[len(mt.alerts)-alertsCap:]
	}
}

// History returns a copy of the recorded points for a game.
func (mt *MovementTracker) History(gameID string) []PricePoint {
	mt.mu.RLock()
	defer mt.mu.RUnlock()
	hist := mt.history[gameID]
	out := make([]PricePoint, len(hist))
	copy(out, hist)
	return out
}

// RecentAlerts returns up to the last five alerts for a game, newest
// last.
func (mt *MovementTracker) RecentAlerts(gameID string) []MovementAlert {
	mt.mu.RLock()
	defer mt.mu.RUnlock()

	matched := make([]MovementAlert, 0, recentAlerts)
	for _, a := range mt.alerts {
		if a.GameID == gameID {
			matched = append(matched, a)
		}
	}
	if len(matched) > recentAlerts {
		matched = matched[len(matched)-recentAlerts:]
	}
	return matched
}

// LatestAlert returns the most recent alert raised for a game.
func (mt *MovementTracker) LatestAlert(gameID string) (MovementAlert, bool) {
	mt.mu.RLock()
	defer mt.mu.RUnlock()

	for i := len(mt.alerts) - 1; i >= 0; i-- {
		if mt.alerts[i].GameID == gameID {
			return mt.alerts[i], true
		}
	}
	return MovementAlert{}, false
}
