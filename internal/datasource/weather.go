package datasource

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/sirupsen/logrus"

	"github.com/yourusername/diamond-picks/internal/models"
	"github.com/yourusername/diamond-picks/internal/refdata"
)

// WeatherAPIClient fetches current conditions per venue city from
// WeatherAPI.
type WeatherAPIClient struct {
	baseURL string
	apiKey  string
	http    *RateLimitedHTTPClient
	cache   *SourceCache
	logger  *logrus.Entry
}

// NewWeatherAPIClient creates a weather client.
func NewWeatherAPIClient(baseURL, apiKey string, httpClient *RateLimitedHTTPClient, cache *SourceCache, logger *logrus.Logger) *WeatherAPIClient {
	return &WeatherAPIClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    httpClient,
		cache:   cache,
		logger:  logger.WithField("source", "weather_api"),
	}
}

type weatherSnapshot struct {
	entries  []models.WeatherEntry
	fallback bool
}

type weatherResponse struct {
	Current struct {
		TempF     float64 `json:"temp_f"`
		WindMph   float64 `json:"wind_mph"`
		WindDir   string  `json:"wind_dir"`
		Humidity  int     `json:"humidity"`
		Condition struct {
			Text string `json:"text"`
		} `json:"condition"`
	} `json:"current"`
}

// FetchForGames returns one weather entry per game. A game whose venue
// lookup fails gets the neutral default; the overall flag is set only
// when every entry fell back.
func (c *WeatherAPIClient) FetchForGames(ctx context.Context, games []models.Game) ([]models.WeatherEntry, bool, error) {
	if cached, ok := c.cache.Get(CacheKeyWeather); ok {
		snap := cached.(weatherSnapshot)
		return snap.entries, snap.fallback, nil
	}

	if c.apiKey == "" {
		c.logger.Warn("No weather API key configured, using fallback weather")
		entries := FallbackWeather(games)
		c.cache.Set(CacheKeyWeather, weatherSnapshot{entries: entries, fallback: true})
		return entries, true, nil
	}

	entries := make([]models.WeatherEntry, 0, len(games))
	fellBack := 0
	for _, g := range games {
		entry, err := c.fetchVenue(ctx, g)
		if err != nil {
			if ctx.Err() != nil {
				return nil, false, ctx.Err()
			}
			c.logger.WithError(err).WithField("venue", g.Venue).Warn("Weather fetch failed, using neutral conditions")
			entry = FallbackWeather([]models.Game{g})[0]
			fellBack++
		}
		entries = append(entries, entry)
	}

	allFallback := len(games) > 0 && fellBack == len(games)
	c.cache.Set(CacheKeyWeather, weatherSnapshot{entries: entries, fallback: allFallback})
	return entries, allFallback, nil
}

func (c *WeatherAPIClient) fetchVenue(ctx context.Context, game models.Game) (models.WeatherEntry, error) {
	city := refdata.CityForVenue(game.Venue)
	endpoint := fmt.Sprintf("%s/current.json?key=%s&q=%s", c.baseURL, c.apiKey, url.QueryEscape(city))

	resp, err := c.http.Get(ctx, endpoint)
	if err != nil {
		return models.WeatherEntry{}, fmt.Errorf("weather request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return models.WeatherEntry{}, fmt.Errorf("weather API returned status %d", resp.StatusCode)
	}

	var payload weatherResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return models.WeatherEntry{}, fmt.Errorf("failed to decode weather response: %w", err)
	}

	return models.WeatherEntry{
		GameID:        game.GameID,
		Venue:         game.Venue,
		Temperature:   payload.Current.TempF,
		Condition:     payload.Current.Condition.Text,
		WindSpeed:     payload.Current.WindMph,
		WindDirection: payload.Current.WindDir,
		Humidity:      payload.Current.Humidity,
	}, nil
}
