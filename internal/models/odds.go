package models

import "time"

// Market keys used by the odds API.
const (
	MarketH2H     = "h2h"
	MarketSpreads = "spreads"
	MarketTotals  = "totals"
)

// OddsOutcome is one side of a market quote. Price is in American
// format; Point is set for spreads and totals.
type OddsOutcome struct {
	Name  string   `json:"name"`
	Price int      `json:"price"`
	Point *float64 `json:"point,omitempty"`
}

// OddsMarket is a bookmaker market with its outcomes.
type OddsMarket struct {
	Key        string        `json:"key"`
	LastUpdate time.Time     `json:"last_update"`
	Outcomes   []OddsOutcome `json:"outcomes"`
}

// Bookmaker is a single book's markets for one event.
type Bookmaker struct {
	Key     string       `json:"key"`
	Title   string       `json:"title"`
	Markets []OddsMarket `json:"markets"`
}

// OddsEntry is one event as returned by the odds API, keyed by team
// names rather than schedule game IDs.
type OddsEntry struct {
	ID           string      `json:"id"`
	SportKey     string      `json:"sport_key"`
	CommenceTime time.Time   `json:"commence_time"`
	HomeTeam     string      `json:"home_team"`
	AwayTeam     string      `json:"away_team"`
	Bookmakers   []Bookmaker `json:"bookmakers"`
}

// ImpliedProbability converts an American price to its implied
// probability in [0,1].
func ImpliedProbability(americanOdds int) float64 {
	if americanOdds > 0 {
		return 100.0 / (float64(americanOdds) + 100.0)
	}
	abs := float64(-americanOdds)
	return abs / (abs + 100.0)
}
