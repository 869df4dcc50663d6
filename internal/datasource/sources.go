// Package datasource fetches schedule, odds and weather snapshots from
// their upstream APIs, with mock fallbacks when an API is unreachable.
package datasource

import (
	"context"

	"github.com/yourusername/diamond-picks/internal/models"
)

// GameSource provides the day's schedule. The boolean reports whether
// the fallback dataset was substituted.
type GameSource interface {
	FetchToday(ctx context.Context) ([]models.Game, bool, error)
}

// OddsSource provides book prices for today's events.
type OddsSource interface {
	FetchOdds(ctx context.Context) ([]models.OddsEntry, bool, error)
}

// WeatherSource provides current conditions per game venue.
type WeatherSource interface {
	FetchForGames(ctx context.Context, games []models.Game) ([]models.WeatherEntry, bool, error)
}
