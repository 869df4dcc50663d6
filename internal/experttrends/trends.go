// Package experttrends aggregates expert picks from multiple weighted
// opinion sources into a per-game consensus used to adjust
// recommendation scores.
package experttrends

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/yourusername/diamond-picks/internal/datasource"
	"github.com/yourusername/diamond-picks/internal/models"
)

// TrendFlag marks a notable consensus pattern for a game.
type TrendFlag string

const (
	FlagStrongConsensus TrendFlag = "STRONG_CONSENSUS"
	FlagSharpFade       TrendFlag = "SHARP_FADE"
	FlagHighActivity    TrendFlag = "HIGH_ACTIVITY"
	FlagTrending        TrendFlag = "TRENDING"
	FlagFallbackData    TrendFlag = "FALLBACK_DATA"
)

// Consensus thresholds.
const (
	strongConsensusShare = 0.70
	trendingShare        = 0.65
	highActivityExperts  = 12
)

// GameTrend is the aggregated expert consensus for one game. Support
// shares are weighted fractions in [0,1]; Home+Away and Over+Under
// each sum to 1.
type GameTrend struct {
	GameID       string
	HomeSupport  float64
	AwaySupport  float64
	OverSupport  float64
	UnderSupport float64
	ExpertCount  int
	Flags        []TrendFlag
	Confidence   float64
	Fallback     bool
}

// HasFlag reports whether the trend carries the given flag.
func (t *GameTrend) HasFlag(flag TrendFlag) bool {
	for _, f := range t.Flags {
		if f == flag {
			return true
		}
	}
	return false
}

// Adjustment returns the score bonus this consensus earns, capped at
// +1.0. Flags contribute fixed weights scaled by consensus confidence.
func (t *GameTrend) Adjustment() float64 {
	if t.Fallback {
		return 0
	}
	base := 0.0
	if t.HasFlag(FlagStrongConsensus) {
		base += 0.5
	}
	if t.HasFlag(FlagSharpFade) {
		base += 0.3
	}
	if t.HasFlag(FlagHighActivity) {
		base += 0.2
	}
	return math.Min(base*t.Confidence, 1.0)
}

// Insight is a human-readable takeaway derived from one game's trend.
type Insight struct {
	GameID     string
	Message    string
	Confidence float64
}

// Service aggregates sub-source picks into game trends.
type Service struct {
	sources []SubSource
	cache   *datasource.SourceCache
	logger  *logrus.Entry
}

// NewService creates a trends service over the given sub-sources.
func NewService(sources []SubSource, cache *datasource.SourceCache, logger *logrus.Logger) *Service {
	return &Service{
		sources: sources,
		cache:   cache,
		logger:  logger.WithField("component", "expert_trends"),
	}
}

// NewDefaultService wires the four stock opinion sources.
func NewDefaultService(cache *datasource.SourceCache, logger *logrus.Logger) *Service {
	return NewService(DefaultSubSources(), cache, logger)
}

type trendsSnapshot struct {
	trends   []GameTrend
	fallback bool
}

// FetchTrends returns one consensus per game. Games no source covers
// get a neutral 50/50 trend flagged FALLBACK_DATA.
func (s *Service) FetchTrends(ctx context.Context, games []models.Game) ([]GameTrend, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}

	if cached, ok := s.cache.Get(datasource.CacheKeyTrends); ok {
		snap := cached.(trendsSnapshot)
		return snap.trends, snap.fallback, nil
	}

	trends := make([]GameTrend, 0, len(games))
	fellBack := 0
	for _, g := range games {
		trend := s.aggregateGame(g)
		if trend.Fallback {
			fellBack++
		}
		trends = append(trends, trend)
	}

	allFallback := len(games) > 0 && fellBack == len(games)
	s.cache.Set(datasource.CacheKeyTrends, trendsSnapshot{trends: trends, fallback: allFallback})

	s.logger.WithFields(logrus.Fields{
		"games":    len(games),
		"fallback": fellBack,
	}).Debug("Aggregated expert trends")

	return trends, allFallback, nil
}

// aggregateGame folds every sub-source pick for one game into a single
// weighted consensus, normalizing by the weight actually observed.
func (s *Service) aggregateGame(game models.Game) GameTrend {
	var (
		homeWeighted  float64
		overWeighted  float64
		totalWeight   float64
		totalExperts  int
		sharpHome     float64
		sharpObserved bool
		publicHome    float64
		publicWeight  float64
	)

	for _, src := range s.sources {
		pick, ok := src.Picks(game)
		if !ok {
			continue
		}
		w := src.Weight()
		homeWeighted += pick.HomeSupport * w
		overWeighted += pick.OverSupport * w
		totalWeight += w
		totalExperts += pick.Experts

		if src.Sharp() {
			sharpHome = pick.HomeSupport
			sharpObserved = true
		} else {
			publicHome += pick.HomeSupport * w
			publicWeight += w
		}
	}

	if totalWeight == 0 {
		return fallbackTrend(game.GameID)
	}

	homeSupport := homeWeighted / totalWeight
	overSupport := overWeighted / totalWeight

	trend := GameTrend{
		GameID:       game.GameID,
		HomeSupport:  homeSupport,
		AwaySupport:  1 - homeSupport,
		OverSupport:  overSupport,
		UnderSupport: 1 - overSupport,
		ExpertCount:  totalExperts,
		Confidence:   math.Abs(homeSupport-0.5) * 2,
	}

	if math.Max(homeSupport, 1-homeSupport) > strongConsensusShare {
		trend.Flags = append(trend.Flags, FlagStrongConsensus)
	}
	if sharpObserved && publicWeight > 0 {
		public := publicHome / publicWeight
		// Sharp money leaning against the public side.
		if (sharpHome > 0.5) != (public > 0.5) {
			trend.Flags = append(trend.Flags, FlagSharpFade)
		}
	}
	if totalExperts > highActivityExperts {
		trend.Flags = append(trend.Flags, FlagHighActivity)
	}
	if math.Max(overSupport, 1-overSupport) > trendingShare {
		trend.Flags = append(trend.Flags, FlagTrending)
	}

	return trend
}

func fallbackTrend(gameID string) GameTrend {
	return GameTrend{
		GameID:       gameID,
		HomeSupport:  0.5,
		AwaySupport:  0.5,
		OverSupport:  0.5,
		UnderSupport: 0.5,
		Flags:        []TrendFlag{FlagFallbackData},
		Fallback:     true,
	}
}

// Insights distills trends into messages sorted by consensus
// confidence, strongest first.
func Insights(trends []GameTrend) []Insight {
	insights := make([]Insight, 0, len(trends))
	for _, t := range trends {
		if t.Fallback {
			continue
		}
		side := "home"
		share := t.HomeSupport
		if t.AwaySupport > t.HomeSupport {
			side = "away"
			share = t.AwaySupport
		}
		msg := fmt.Sprintf("%d experts lean %s (%.0f%%)", t.ExpertCount, side, share*100)
		if t.HasFlag(FlagSharpFade) {
			msg += ", sharp money disagrees"
		}
		insights = append(insights, Insight{
			GameID:     t.GameID,
			Message:    msg,
			Confidence: t.Confidence,
		})
	}
	sort.SliceStable(insights, func(i, j int) bool {
		return insights[i].Confidence > insights[j].Confidence
	})
	return insights
}

// TrendFor returns the trend for a game ID, if present.
func TrendFor(trends []GameTrend, gameID string) (GameTrend, bool) {
	for _, t := range trends {
		if t.GameID == gameID {
			return t, true
		}
	}
	return GameTrend{}, false
}
