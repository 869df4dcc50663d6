// Package main provides the entry point for the analysis service.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"github.com/yourusername/diamond-picks/internal/config"
	"github.com/yourusername/diamond-picks/internal/datasource"
	"github.com/yourusername/diamond-picks/internal/engine"
	"github.com/yourusername/diamond-picks/internal/experttrends"
	"github.com/yourusername/diamond-picks/internal/health"
	applogger "github.com/yourusername/diamond-picks/internal/logger"
	"github.com/yourusername/diamond-picks/internal/metrics"
	"github.com/yourusername/diamond-picks/internal/oddsfeed"
	"github.com/yourusername/diamond-picks/internal/scheduler"
	"github.com/yourusername/diamond-picks/internal/tracking"
)

func main() {
	cfg, err := config.LoadWithDefaults(os.Getenv("CONFIG_PATH"))
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Load AWS secrets if enabled
	if os.Getenv("AWS_SECRETS_ENABLED") == "true" {
		region := os.Getenv("AWS_REGION")
		secretName := os.Getenv("AWS_SECRET_NAME")
		if region == "" || secretName == "" {
			log.Fatalf("AWS_REGION and AWS_SECRET_NAME environment variables must be set when AWS_SECRETS_ENABLED is true")
		}
		if err := config.LoadSecretsFromAWS(cfg, region, secretName); err != nil {
			log.Fatalf("Failed to load secrets: %v", err)
		}
	}

	if err := config.Validate(cfg); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	appLog := applogger.NewLogger(cfg.App.LogLevel)
	appLog.WithFields(logrus.Fields{
		"environment": cfg.App.Environment,
		"log_level":   cfg.App.LogLevel,
	}).Info("Diamond Picks analyzer starting")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Shared source cache and HTTP client
	cache := datasource.NewSourceCache(datasource.CacheTTLs{
		Games:   time.Duration(cfg.Cache.GamesTTLSeconds) * time.Second,
		Odds:    time.Duration(cfg.Cache.OddsTTLSeconds) * time.Second,
		Weather: time.Duration(cfg.Cache.WeatherTTLSeconds) * time.Second,
		Trends:  time.Duration(cfg.Cache.TrendsTTLSeconds) * time.Second,
	})

	httpLogger := log.New(os.Stdout, "datasource: ", log.LstdFlags)
	httpClient := datasource.NewRateLimitedHTTPClient(datasource.HTTPClientConfig{
		Timeout:      time.Duration(cfg.Sources.FetchTimeoutSeconds) * time.Second,
		MaxRetries:   cfg.Sources.MaxRetries,
		RetryWaitMin: 100 * time.Millisecond,
		RetryWaitMax: 2 * time.Second,
		RateLimit:    cfg.Sources.RateLimit,
	}, httpLogger)
	defer func() { _ = httpClient.Close() }()

	// Data sources
	games := datasource.NewMLBScheduleClient(cfg.Sources.ScheduleURL, httpClient, cache, appLog)
	odds := datasource.NewOddsAPIClient(cfg.Sources.OddsURL, cfg.Sources.OddsAPIKey, httpClient, cache, games, appLog)
	weather := datasource.NewWeatherAPIClient(cfg.Sources.WeatherURL, cfg.Sources.WeatherAPIKey, httpClient, cache, appLog)
	trends := experttrends.NewDefaultService(cache, appLog)

	m := metrics.New()
	audit := applogger.NewAuditLogger(appLog)

	// Live odds feed
	movement := oddsfeed.NewMovementTracker()
	if cfg.Feed.Enabled {
		stream := oddsfeed.NewStreamClient(cfg.Feed.URL, movement, appLog)
		go func() {
			if err := stream.Run(ctx); err != nil {
				appLog.WithError(err).Error("Odds feed stopped")
			}
		}()
	}

	eng := engine.New(games, odds, weather, trends, appLog, engine.Options{
		Movement:  movement,
		Bookmaker: cfg.Sources.Bookmaker,
		Audit:     audit,
		Metrics:   m,
	})

	// Bet tracking store
	var (
		store    tracking.Store
		checkers []health.ReadinessChecker
	)
	if cfg.Tracking.Store == "postgres" {
		pool, err := pgxpool.New(ctx, cfg.GetDatabaseDSN())
		if err != nil {
			appLog.WithError(err).Fatal("Failed to connect to database")
		}
		defer pool.Close()

		pgStore := tracking.NewPostgresStore(pool)
		if err := pgStore.EnsureSchema(ctx); err != nil {
			appLog.WithError(err).Fatal("Failed to prepare tracking schema")
		}
		store = pgStore
		checkers = append(checkers, health.NewDatabaseChecker(pool))
		appLog.Info("Database connection established")
	} else {
		store = tracking.NewMemoryStore()
	}

	tracker := tracking.NewTracker(store, appLog, tracking.TrackerOptions{
		FeedbackCapacity: cfg.Tracking.FeedbackCapacity,
		Audit:            audit,
		Metrics:          m,
	})

	// Health and metrics server
	healthCfg := health.Config{
		ServiceName: cfg.App.Name,
		Port:        cfg.Health.Port,
		Logger:      appLog,
		Checkers:    checkers,
	}
	if cfg.Metrics.Enabled {
		healthCfg.MetricsPath = cfg.Metrics.Path
		healthCfg.Metrics = m.Handler()
	}
	healthServer := health.NewServer(healthCfg)
	if err := healthServer.Start(ctx); err != nil {
		appLog.WithError(err).Fatal("Failed to start health server")
	}

	// Scheduled analysis runs
	sched := scheduler.NewScheduler(eng, appLog)
	if err := sched.ScheduleAnalysis(cfg.Analysis.Schedule); err != nil {
		appLog.WithError(err).Fatal("Failed to schedule analysis")
	}
	if err := sched.Start(); err != nil {
		appLog.WithError(err).Fatal("Failed to start scheduler")
	}
	if cfg.Analysis.RunOnStart {
		sched.RunNow()
	}

	healthServer.SetReady(true)
	appLog.WithFields(logrus.Fields{
		"schedule":     cfg.Analysis.Schedule,
		"next_run":     sched.NextRun(),
		"feed_enabled": cfg.Feed.Enabled,
		"store":        cfg.Tracking.Store,
	}).Info("Analyzer is running")

	// Wait for shutdown signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	sig := <-sigChan
	appLog.WithField("signal", sig).Info("Shutdown signal received")

	healthServer.SetReady(false)
	cancel()
	if err := sched.Stop(); err != nil {
		appLog.WithError(err).Error("Error during scheduler shutdown")
	}

	reportCtx, reportCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer reportCancel()
	if report, err := tracker.BuildReport(reportCtx); err == nil && report.Overall.TotalBets > 0 {
		appLog.WithFields(logrus.Fields{
			"total_bets": report.Overall.TotalBets,
			"win_rate":   report.Overall.WinRate,
			"roi":        report.Overall.ROI,
		}).Info("Final performance summary")
	}

	appLog.Info("Diamond Picks analyzer shut down successfully")
}
