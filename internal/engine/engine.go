package engine

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/yourusername/diamond-picks/internal/datasource"
	"github.com/yourusername/diamond-picks/internal/experttrends"
	applogger "github.com/yourusername/diamond-picks/internal/logger"
	"github.com/yourusername/diamond-picks/internal/metrics"
	"github.com/yourusername/diamond-picks/internal/models"
	"github.com/yourusername/diamond-picks/internal/oddsfeed"
)

// AnalysisResult is the output of one analysis run.
type AnalysisResult struct {
	Recommendations    []models.UnifiedRecommendation `json:"recommendations"`
	Parlays            []models.Parlay                `json:"parlays"`
	TotalOpportunities int                            `json:"total_opportunities"`
	HighConfidence     int                            `json:"high_confidence"`
	FallbackData       bool                           `json:"fallback_data"`
	Message            string                         `json:"message,omitempty"`
	GeneratedAt        time.Time                      `json:"generated_at"`
	Duration           time.Duration                  `json:"duration"`
}

// Engine orchestrates one full pipeline pass: joined fetches, signal
// extraction, aggregation, scoring, ranking and parlay construction.
type Engine struct {
	games      datasource.GameSource
	odds       datasource.OddsSource
	weather    datasource.WeatherSource
	trends     *experttrends.Service
	movement   *oddsfeed.MovementTracker
	extractors []Extractor
	bookmaker  string
	logger     *logrus.Entry
	audit      *applogger.AuditLogger
	metrics    *metrics.Metrics
}

// Options configures optional engine collaborators.
type Options struct {
	Movement  *oddsfeed.MovementTracker
	Bookmaker string
	Audit     *applogger.AuditLogger
	Metrics   *metrics.Metrics
}

// New creates an engine over the given sources.
func New(games datasource.GameSource, odds datasource.OddsSource, weather datasource.WeatherSource, trends *experttrends.Service, log *logrus.Logger, opts Options) *Engine {
	bookmaker := opts.Bookmaker
	if bookmaker == "" {
		bookmaker = "draftkings"
	}
	return &Engine{
		games:      games,
		odds:       odds,
		weather:    weather,
		trends:     trends,
		movement:   opts.Movement,
		extractors: DefaultExtractors(),
		bookmaker:  bookmaker,
		logger:     applogger.ForComponent(log, "engine"),
		audit:      opts.Audit,
		metrics:    opts.Metrics,
	}
}

// Run executes one analysis pass. A run with zero scheduled games
// returns an empty result with a message, not an error; individual
// source failures are absorbed by their fallbacks.
func (e *Engine) Run(ctx context.Context) (*AnalysisResult, error) {
	start := time.Now()

	games, gamesFallback, err := e.games.FetchToday(ctx)
	if err != nil {
		return nil, fmt.Errorf("schedule fetch: %w", err)
	}
	if len(games) == 0 {
		return &AnalysisResult{
			Message:     "No games scheduled today",
			GeneratedAt: start,
			Duration:    time.Since(start),
		}, nil
	}

	oddsEntries, weatherEntries, trends, fellBack, err := e.fetchSupporting(ctx, games)
	if err != nil {
		return nil, err
	}
	fallback := gamesFallback || fellBack
	if gamesFallback {
		e.countFallback("schedule")
	}

	in := Inputs{
		Games:   games,
		Weather: weatherByGame(weatherEntries),
		Markets: oddsfeed.ProcessOdds(oddsEntries, games, e.bookmaker),
	}

	candidates := e.extract(in)
	recs := Aggregate(candidates)
	for i := range recs {
		Score(&recs[i])
		e.applyAdjustments(&recs[i], trends, in.Markets)
	}
	Rank(recs)
	parlays := BuildParlays(recs)

	high := 0
	for _, r := range recs {
		if r.Confidence == models.ConfidenceHigh {
			high++
		}
	}

	result := &AnalysisResult{
		Recommendations:    recs,
		Parlays:            parlays,
		TotalOpportunities: len(recs),
		HighConfidence:     high,
		FallbackData:       fallback,
		GeneratedAt:        start,
		Duration:           time.Since(start),
	}

	if e.metrics != nil {
		e.metrics.ObserveAnalysisRun(result.Duration, len(recs), len(parlays))
	}
	if e.audit != nil {
		e.audit.LogAnalysisRun(len(games), len(candidates), len(recs), len(parlays), fallback, result.Duration)
	}
	e.logger.WithFields(logrus.Fields{
		"games":           len(games),
		"recommendations": len(recs),
		"high_confidence": high,
		"parlays":         len(parlays),
		"fallback":        fallback,
	}).Info("Analysis run complete")

	return result, nil
}

// fetchSupporting joins the odds, weather and trends fetches. All
// three must resolve before extraction; none depends on another.
func (e *Engine) fetchSupporting(ctx context.Context, games []models.Game) ([]models.OddsEntry, []models.WeatherEntry, []experttrends.GameTrend, bool, error) {
	var (
		wg         sync.WaitGroup
		oddsOut    []models.OddsEntry
		weatherOut []models.WeatherEntry
		trendsOut  []experttrends.GameTrend

		oddsFB, weatherFB, trendsFB    bool
		oddsErr, weatherErr, trendsErr error
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		oddsOut, oddsFB, oddsErr = e.odds.FetchOdds(ctx)
	}()
	go func() {
		defer wg.Done()
		weatherOut, weatherFB, weatherErr = e.weather.FetchForGames(ctx, games)
	}()
	go func() {
		defer wg.Done()
		trendsOut, trendsFB, trendsErr = e.trends.FetchTrends(ctx, games)
	}()
	wg.Wait()

	for _, err := range []error{oddsErr, weatherErr, trendsErr} {
		if err != nil {
			return nil, nil, nil, false, fmt.Errorf("supporting fetch: %w", err)
		}
	}

	if oddsFB {
		e.countFallback("odds")
	}
	if weatherFB {
		e.countFallback("weather")
	}
	if trendsFB {
		e.countFallback("trends")
	}

	return oddsOut, weatherOut, trendsOut, oddsFB || weatherFB || trendsFB, nil
}

// extract runs every extractor in its fixed order. A failing extractor
// contributes zero candidates and never aborts its siblings.
func (e *Engine) extract(in Inputs) []models.Candidate {
	var all []models.Candidate
	for _, ex := range e.extractors {
		candidates, err := e.runExtractor(ex, in)
		if err != nil {
			e.logger.WithError(err).WithField("extractor", ex.Name()).Warn("Extractor failed, skipping")
			if e.metrics != nil {
				e.metrics.IncExtractorFailure(ex.Name())
			}
			continue
		}
		if e.metrics != nil {
			e.metrics.AddExtractorCandidates(ex.Name(), len(candidates))
		}
		all = append(all, candidates...)
	}
	return all
}

func (e *Engine) runExtractor(ex Extractor, in Inputs) (candidates []models.Candidate, err error) {
	defer func() {
		if r := recover(); r != nil {
			candidates = nil
			err = fmt.Errorf("extractor panic: %v", r)
		}
	}()
	return ex.Extract(in)
}

func (e *Engine) applyAdjustments(u *models.UnifiedRecommendation, trends []experttrends.GameTrend, markets map[string]oddsfeed.GameMarket) {
	expertAdj := 0.0
	if trend, ok := experttrends.TrendFor(trends, u.GameID); ok {
		expertAdj = trend.Adjustment()
	}

	oddsAdj := 0.0
	if gm, ok := markets[u.GameID]; ok {
		oddsAdj = oddsfeed.Adjustment(gm, e.movement)
	}

	Adjust(u, expertAdj, oddsAdj)
}

func (e *Engine) countFallback(source string) {
	if e.metrics != nil {
		e.metrics.IncFallback(source)
	}
}

func weatherByGame(entries []models.WeatherEntry) map[string]models.WeatherEntry {
	m := make(map[string]models.WeatherEntry, len(entries))
	for _, w := range entries {
		m[w.GameID] = w
	}
	return m
}
