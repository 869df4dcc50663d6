package datasource

import (
	"time"

	"github.com/yourusername/diamond-picks/internal/models"
)

// Fallback datasets substituted when a remote source is unreachable.
// They are deliberately small and stable so downstream analysis stays
// deterministic during outages.

// FallbackGames returns the mock schedule used when the MLB API is down.
func FallbackGames(now time.Time) []models.Game {
	return []models.Game{
		{
			GameID:      "mock-1",
			AwayTeam:    "New York Yankees",
			HomeTeam:    "Boston Red Sox",
			Venue:       "Fenway Park",
			StartTime:   now.Add(3 * time.Hour),
			Status:      "Scheduled",
			AwayPitcher: "Gerrit Cole",
			HomePitcher: "Lucas Giolito",
		},
		{
			GameID:      "mock-2",
			AwayTeam:    "Los Angeles Dodgers",
			HomeTeam:    "San Francisco Giants",
			Venue:       "Oracle Park",
			StartTime:   now.Add(5 * time.Hour),
			Status:      "Scheduled",
			AwayPitcher: "Walker Buehler",
			HomePitcher: "Logan Webb",
		},
		{
			GameID:      "mock-3",
			AwayTeam:    "Atlanta Braves",
			HomeTeam:    "Philadelphia Phillies",
			Venue:       "Citizens Bank Park",
			StartTime:   now.Add(6 * time.Hour),
			Status:      "Scheduled",
			AwayPitcher: "Spencer Strider",
			HomePitcher: "Zack Wheeler",
		},
	}
}

// FallbackOdds returns mock book prices for the given games.
func FallbackOdds(games []models.Game, now time.Time) []models.OddsEntry {
	entries := make([]models.OddsEntry, 0, len(games))
	total := 8.5
	for _, g := range games {
		entries = append(entries, models.OddsEntry{
			ID:           "mock-odds-" + g.GameID,
			SportKey:     "baseball_mlb",
			CommenceTime: g.StartTime,
			HomeTeam:     g.HomeTeam,
			AwayTeam:     g.AwayTeam,
			Bookmakers: []models.Bookmaker{
				{
					Key:   "draftkings",
					Title: "DraftKings",
					Markets: []models.OddsMarket{
						{
							Key:        models.MarketH2H,
							LastUpdate: now,
							Outcomes: []models.OddsOutcome{
								{Name: g.HomeTeam, Price: -110},
								{Name: g.AwayTeam, Price: -110},
							},
						},
						{
							Key:        models.MarketTotals,
							LastUpdate: now,
							Outcomes: []models.OddsOutcome{
								{Name: "Over", Price: -110, Point: ptr(total)},
								{Name: "Under", Price: -110, Point: ptr(total)},
							},
						},
					},
				},
			},
		})
	}
	return entries
}

// FallbackWeather returns neutral conditions for every game.
func FallbackWeather(games []models.Game) []models.WeatherEntry {
	entries := make([]models.WeatherEntry, 0, len(games))
	for _, g := range games {
		entries = append(entries, models.WeatherEntry{
			GameID:        g.GameID,
			Venue:         g.Venue,
			Temperature:   75,
			Condition:     "Clear",
			WindSpeed:     8,
			WindDirection: "SW",
			Humidity:      45,
			Fallback:      true,
		})
	}
	return entries
}

func ptr(f float64) *float64 { return &f }
