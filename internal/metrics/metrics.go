// Package metrics exposes Prometheus instrumentation for the analysis
// pipeline and bet tracking.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics bundles the collectors and their registry.
type Metrics struct {
	registry *prometheus.Registry

	analysisRuns        prometheus.Counter
	analysisDuration    prometheus.Histogram
	lastRecommendations prometheus.Gauge
	lastParlays         prometheus.Gauge
	extractorCandidates *prometheus.CounterVec
	extractorFailures   *prometheus.CounterVec
	sourceFallbacks     *prometheus.CounterVec
	trackedBets         *prometheus.CounterVec
}

// New creates and registers all collectors on a fresh registry.
func New() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		analysisRuns: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "diamond_picks_analysis_runs_total",
			Help: "Total completed analysis runs",
		}),
		analysisDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "diamond_picks_analysis_duration_seconds",
			Help:    "Wall-clock duration of analysis runs",
			Buckets: prometheus.DefBuckets,
		}),
		lastRecommendations: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "diamond_picks_last_recommendations",
			Help: "Recommendation count of the most recent run",
		}),
		lastParlays: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "diamond_picks_last_parlays",
			Help: "Parlay count of the most recent run",
		}),
		extractorCandidates: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "diamond_picks_extractor_candidates_total",
			Help: "Candidates produced per extractor",
		}, []string{"extractor"}),
		extractorFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "diamond_picks_extractor_failures_total",
			Help: "Extractor failures absorbed per extractor",
		}, []string{"extractor"}),
		sourceFallbacks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "diamond_picks_source_fallbacks_total",
			Help: "Fallback dataset substitutions per source",
		}, []string{"source"}),
		trackedBets: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "diamond_picks_tracked_bets_total",
			Help: "Tracked bet lifecycle events by status",
		}, []string{"status"}),
	}

	registry.MustRegister(
		m.analysisRuns,
		m.analysisDuration,
		m.lastRecommendations,
		m.lastParlays,
		m.extractorCandidates,
		m.extractorFailures,
		m.sourceFallbacks,
		m.trackedBets,
	)

	return m
}

// ObserveAnalysisRun records one completed run.
func (m *Metrics) ObserveAnalysisRun(d time.Duration, recommendations, parlays int) {
	m.analysisRuns.Inc()
	m.analysisDuration.Observe(d.Seconds())
	m.lastRecommendations.Set(float64(recommendations))
	m.lastParlays.Set(float64(parlays))
}

// AddExtractorCandidates counts candidates produced by one extractor.
func (m *Metrics) AddExtractorCandidates(extractor string, n int) {
	m.extractorCandidates.WithLabelValues(extractor).Add(float64(n))
}

// IncExtractorFailure counts one absorbed extractor failure.
func (m *Metrics) IncExtractorFailure(extractor string) {
	m.extractorFailures.WithLabelValues(extractor).Inc()
}

// IncFallback counts one fallback dataset substitution.
func (m *Metrics) IncFallback(source string) {
	m.sourceFallbacks.WithLabelValues(source).Inc()
}

// IncTrackedBet counts one bet lifecycle event.
func (m *Metrics) IncTrackedBet(status string) {
	m.trackedBets.WithLabelValues(status).Inc()
}

// Registry exposes the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler returns the scrape endpoint handler.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
