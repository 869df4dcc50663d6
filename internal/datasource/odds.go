package datasource

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/yourusername/diamond-picks/internal/models"
)

// OddsAPIClient fetches MLB event prices from The Odds API.
type OddsAPIClient struct {
	baseURL string
	apiKey  string
	http    *RateLimitedHTTPClient
	cache   *SourceCache
	logger  *logrus.Entry
	now     func() time.Time

	// games supplies the schedule used to build fallback odds when the
	// API is unreachable.
	games GameSource
}

// NewOddsAPIClient creates an odds client.
func NewOddsAPIClient(baseURL, apiKey string, httpClient *RateLimitedHTTPClient, cache *SourceCache, games GameSource, logger *logrus.Logger) *OddsAPIClient {
	return &OddsAPIClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    httpClient,
		cache:   cache,
		logger:  logger.WithField("source", "odds_api"),
		now:     time.Now,
		games:   games,
	}
}

type oddsSnapshot struct {
	entries  []models.OddsEntry
	fallback bool
}

// FetchOdds returns current book prices for today's MLB events. A
// missing API key or transport failure yields the fallback dataset.
func (c *OddsAPIClient) FetchOdds(ctx context.Context) ([]models.OddsEntry, bool, error) {
	if cached, ok := c.cache.Get(CacheKeyOdds); ok {
		snap := cached.(oddsSnapshot)
		return snap.entries, snap.fallback, nil
	}

	if c.apiKey == "" {
		c.logger.Warn("No odds API key configured, using fallback odds")
		return c.fallback(ctx)
	}

	entries, err := c.fetchRemote(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return nil, false, ctx.Err()
		}
		c.logger.WithError(err).Warn("Odds fetch failed, using fallback odds")
		return c.fallback(ctx)
	}

	c.cache.Set(CacheKeyOdds, oddsSnapshot{entries: entries})
	return entries, false, nil
}

func (c *OddsAPIClient) fallback(ctx context.Context) ([]models.OddsEntry, bool, error) {
	games, _, err := c.games.FetchToday(ctx)
	if err != nil {
		return nil, false, err
	}
	entries := FallbackOdds(games, c.now())
	c.cache.Set(CacheKeyOdds, oddsSnapshot{entries: entries, fallback: true})
	return entries, true, nil
}

func (c *OddsAPIClient) fetchRemote(ctx context.Context) ([]models.OddsEntry, error) {
	url := fmt.Sprintf(
		"%s/sports/baseball_mlb/odds?apiKey=%s&regions=us&markets=h2h,spreads,totals&oddsFormat=american",
		c.baseURL, c.apiKey,
	)

	resp, err := c.http.Get(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("odds request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("odds API returned status %d", resp.StatusCode)
	}

	var entries []models.OddsEntry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return nil, fmt.Errorf("failed to decode odds response: %w", err)
	}

	c.logger.WithField("events", len(entries)).Debug("Fetched odds")
	return entries, nil
}
