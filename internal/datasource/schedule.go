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

// MLBScheduleClient fetches the daily schedule from the MLB Stats API.
type MLBScheduleClient struct {
	baseURL string
	http    *RateLimitedHTTPClient
	cache   *SourceCache
	logger  *logrus.Entry
	now     func() time.Time
}

// NewMLBScheduleClient creates a schedule client.
func NewMLBScheduleClient(baseURL string, httpClient *RateLimitedHTTPClient, cache *SourceCache, logger *logrus.Logger) *MLBScheduleClient {
	return &MLBScheduleClient{
		baseURL: baseURL,
		http:    httpClient,
		cache:   cache,
		logger:  logger.WithField("source", "mlb_schedule"),
		now:     time.Now,
	}
}

// scheduleResponse mirrors the fields we use from the Stats API.
type scheduleResponse struct {
	Dates []struct {
		Games []struct {
			GamePk   int64  `json:"gamePk"`
			GameDate string `json:"gameDate"`
			Status   struct {
				DetailedState string `json:"detailedState"`
			} `json:"status"`
			Venue struct {
				Name string `json:"name"`
			} `json:"venue"`
			Teams struct {
				Away scheduleSide `json:"away"`
				Home scheduleSide `json:"home"`
			} `json:"teams"`
		} `json:"games"`
	} `json:"dates"`
}

type scheduleSide struct {
	Team struct {
		Name string `json:"name"`
	} `json:"team"`
	ProbablePitcher struct {
		FullName string `json:"fullName"`
	} `json:"probablePitcher"`
}

// FetchToday returns today's games. A valid cached snapshot is served
// as is; on transport failure the mock schedule is substituted and the
// fallback flag set.
func (c *MLBScheduleClient) FetchToday(ctx context.Context) ([]models.Game, bool, error) {
	if cached, ok := c.cache.Get(CacheKeyGames); ok {
		snap := cached.(gamesSnapshot)
		return snap.games, snap.fallback, nil
	}

	games, err := c.fetchRemote(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return nil, false, ctx.Err()
		}
		c.logger.WithError(err).Warn("Schedule fetch failed, using fallback games")
		games = FallbackGames(c.now())
		c.cache.Set(CacheKeyGames, gamesSnapshot{games: games, fallback: true})
		return games, true, nil
	}

	c.cache.Set(CacheKeyGames, gamesSnapshot{games: games})
	return games, false, nil
}

type gamesSnapshot struct {
	games    []models.Game
	fallback bool
}

func (c *MLBScheduleClient) fetchRemote(ctx context.Context) ([]models.Game, error) {
	date := c.now().Format("2006-01-02")
	url := fmt.Sprintf("%s/schedule?sportId=1&date=%s&hydrate=probablePitcher", c.baseURL, date)

	resp, err := c.http.Get(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("schedule request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("schedule API returned status %d", resp.StatusCode)
	}

	var payload scheduleResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode schedule response: %w", err)
	}

	games := make([]models.Game, 0, 16)
	for _, d := range payload.Dates {
		for _, g := range d.Games {
			start, _ := time.Parse(time.RFC3339, g.GameDate)
			games = append(games, models.Game{
				GameID:      fmt.Sprintf("%d", g.GamePk),
				AwayTeam:    g.Teams.Away.Team.Name,
				HomeTeam:    g.Teams.Home.Team.Name,
				Venue:       g.Venue.Name,
				StartTime:   start,
				Status:      g.Status.DetailedState,
				AwayPitcher: pitcherOrTBD(g.Teams.Away.ProbablePitcher.FullName),
				HomePitcher: pitcherOrTBD(g.Teams.Home.ProbablePitcher.FullName),
			})
		}
	}

	c.logger.WithField("games", len(games)).Debug("Fetched schedule")
	return games, nil
}

func pitcherOrTBD(name string) string {
	if name == "" {
		return models.PitcherTBD
	}
	return name
}
