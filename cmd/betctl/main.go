package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/yourusername/diamond-picks/internal/config"
	"github.com/yourusername/diamond-picks/internal/datasource"
	"github.com/yourusername/diamond-picks/internal/engine"
	"github.com/yourusername/diamond-picks/internal/experttrends"
	applogger "github.com/yourusername/diamond-picks/internal/logger"
	"github.com/yourusername/diamond-picks/internal/models"
	"github.com/yourusername/diamond-picks/internal/tracking"
)

var (
	configFile string
	logger     *logrus.Logger
	cfg        *config.Config
	pool       *pgxpool.Pool
	tracker    *tracking.Tracker

	addGameID     string
	addHomeTeam   string
	addAwayTeam   string
	addKind       string
	addSelection  string
	addOdds       int
	addStake      float64
	addConfidence float64
	addScore      float64
	addNotes      string

	resolveResult string
	resolvePayout float64
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Path to configuration file")

	addCmd.Flags().StringVar(&addGameID, "game", "", "Game identifier")
	addCmd.Flags().StringVar(&addHomeTeam, "home", "", "Home team abbreviation")
	addCmd.Flags().StringVar(&addAwayTeam, "away", "", "Away team abbreviation")
	addCmd.Flags().StringVar(&addKind, "kind", "moneyline", "Bet kind (moneyline, runline, total, player_prop, parlay)")
	addCmd.Flags().StringVar(&addSelection, "selection", "", "Selected side or line")
	addCmd.Flags().IntVar(&addOdds, "odds", -110, "American odds")
	addCmd.Flags().Float64Var(&addStake, "stake", 0, "Stake amount")
	addCmd.Flags().Float64Var(&addConfidence, "confidence", 0, "Model confidence at placement (0-10)")
	addCmd.Flags().Float64Var(&addScore, "score", 0, "Model score at placement")
	addCmd.Flags().StringVar(&addNotes, "notes", "", "Free-form notes")
	_ = addCmd.MarkFlagRequired("game")
	_ = addCmd.MarkFlagRequired("selection")
	_ = addCmd.MarkFlagRequired("stake")

	resolveCmd.Flags().StringVar(&resolveResult, "result", "", "Terminal result (won, lost, pushed, cancelled)")
	resolveCmd.Flags().Float64Var(&resolvePayout, "payout", 0, "Actual payout received, stake included")
	_ = resolveCmd.MarkFlagRequired("result")
}

var rootCmd = &cobra.Command{
	Use:   "betctl",
	Short: "Manage tracked bets and performance reports",
	Long:  `Record bets against model recommendations, resolve their outcomes, and inspect performance analytics.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := loadConfig(); err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		if err := setupDependencies(cmd.Context()); err != nil {
			return fmt.Errorf("failed to setup dependencies: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if pool != nil {
			pool.Close()
		}
	},
}

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a new pending bet",
	RunE: func(cmd *cobra.Command, args []string) error {
		return addBet(cmd.Context())
	},
}

var resolveCmd = &cobra.Command{
	Use:   "resolve <bet-id>",
	Short: "Resolve a pending bet with its outcome",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return resolveBet(cmd.Context(), args[0])
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List tracked bets",
	RunE: func(cmd *cobra.Command, args []string) error {
		return listBets(cmd.Context())
	},
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print the performance report",
	RunE: func(cmd *cobra.Command, args []string) error {
		return printReport(cmd.Context())
	},
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Dump the full bet history as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := tracker.ExportJSON(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	},
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one analysis pass and print recommendations",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAnalysis(cmd.Context())
	},
}

func main() {
	rootCmd.AddCommand(addCmd, resolveCmd, listCmd, reportCmd, exportCmd, runCmd)

	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func loadConfig() error {
	path := configFile
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}

	var err error
	cfg, err = config.LoadWithDefaults(path)
	if err != nil {
		return err
	}
	return config.Validate(cfg)
}

func setupDependencies(ctx context.Context) error {
	logger = applogger.NewLogger(cfg.App.LogLevel)

	var store tracking.Store
	if cfg.Tracking.Store == "postgres" {
		var err error
		pool, err = pgxpool.New(ctx, cfg.GetDatabaseDSN())
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}

		pgStore := tracking.NewPostgresStore(pool)
		if err := pgStore.EnsureSchema(ctx); err != nil {
			return fmt.Errorf("failed to prepare tracking schema: %w", err)
		}
		store = pgStore
	} else {
		store = tracking.NewMemoryStore()
	}

	tracker = tracking.NewTracker(store, logger, tracking.TrackerOptions{
		FeedbackCapacity: cfg.Tracking.FeedbackCapacity,
		Audit:            applogger.NewAuditLogger(logger),
	})
	return nil
}

func addBet(ctx context.Context) error {
	bet, err := tracker.AddBet(ctx, tracking.AddBetRequest{
		GameID:     addGameID,
		HomeTeam:   addHomeTeam,
		AwayTeam:   addAwayTeam,
		Kind:       models.BetKind(addKind),
		Selection:  addSelection,
		Odds:       addOdds,
		Stake:      decimal.NewFromFloat(addStake),
		Confidence: addConfidence,
		ModelScore: addScore,
		Notes:      addNotes,
	})
	if err != nil {
		return err
	}

	potential, _ := bet.PotentialPayout.Float64()
	fmt.Printf("✓ Recorded bet %s\n", bet.ID)
	fmt.Printf("  %s %s @ %+d, stake %.2f, potential payout %.2f\n",
		bet.Kind, bet.Selection, bet.Odds, addStake, potential)
	return nil
}

func resolveBet(ctx context.Context, id string) error {
	bet, err := tracker.UpdateBetResult(ctx, id, models.BetStatus(resolveResult), decimal.NewFromFloat(resolvePayout))
	if err != nil {
		return err
	}

	profit, _ := bet.Profit.Float64()
	fmt.Printf("✓ Resolved bet %s as %s\n", bet.ID, bet.Status)
	fmt.Printf("  Profit: %.2f  ROI: %.1f%%\n", profit, bet.ROI)
	return nil
}

func listBets(ctx context.Context) error {
	bets, err := tracker.Bets(ctx)
	if err != nil {
		return err
	}
	if len(bets) == 0 {
		fmt.Println("No tracked bets")
		return nil
	}

	for _, bet := range bets {
		stake, _ := bet.Stake.Float64()
		fmt.Printf("%s  %-11s %-8s %-30s %+d  %.2f\n",
			bet.PlacedAt.Format("2006-01-02 15:04"), bet.Kind, bet.Status, bet.Selection, bet.Odds, stake)
	}
	return nil
}

func printReport(ctx context.Context) error {
	report, err := tracker.BuildReport(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("Performance report (%s)\n\n", report.GeneratedAt.Format(time.RFC3339))
	printPerformance("Overall", report.Overall)
	printPerformance("Last 30 days", report.Last30Days)
	fmt.Printf("Trend: %s\n", report.Trend)

	if len(report.ByKind) > 0 {
		fmt.Println("\nBy bet kind:")
		for _, kind := range models.BetKinds {
			perf, ok := report.ByKind[kind]
			if !ok {
				continue
			}
			fmt.Printf("  %-11s %3d bets  win %5.1f%%  ROI %+6.1f%%\n",
				kind, perf.TotalBets, perf.WinRate, perf.ROI)
		}
	}

	if len(report.Calibration) > 0 {
		fmt.Println("\nCalibration:")
		for _, bucket := range report.Calibration {
			fmt.Printf("  confidence %d: expected %.0f%%, actual %.1f%% (n=%d)\n",
				bucket.Bucket, bucket.Expected, bucket.Actual, bucket.SampleSize)
		}
	}

	for _, advisory := range report.Advisories {
		fmt.Printf("\n[%s] %s\n", advisory.Level, advisory.Message)
	}
	return nil
}

func printPerformance(label string, perf tracking.Performance) {
	fmt.Printf("%-13s %d bets, %d-%d-%d, win rate %.1f%%, ROI %+.1f%%\n",
		label+":", perf.TotalBets, perf.Wins, perf.Losses, perf.Pushes, perf.WinRate, perf.ROI)
}

func runAnalysis(ctx context.Context) error {
	cache := datasource.NewSourceCache(datasource.CacheTTLs{
		Games:   time.Duration(cfg.Cache.GamesTTLSeconds) * time.Second,
		Odds:    time.Duration(cfg.Cache.OddsTTLSeconds) * time.Second,
		Weather: time.Duration(cfg.Cache.WeatherTTLSeconds) * time.Second,
		Trends:  time.Duration(cfg.Cache.TrendsTTLSeconds) * time.Second,
	})
	httpClient := datasource.NewRateLimitedHTTPClient(datasource.HTTPClientConfig{
		Timeout:      time.Duration(cfg.Sources.FetchTimeoutSeconds) * time.Second,
		MaxRetries:   cfg.Sources.MaxRetries,
		RetryWaitMin: 100 * time.Millisecond,
		RetryWaitMax: 2 * time.Second,
		RateLimit:    cfg.Sources.RateLimit,
	}, log.New(os.Stderr, "datasource: ", log.LstdFlags))
	defer func() { _ = httpClient.Close() }()

	games := datasource.NewMLBScheduleClient(cfg.Sources.ScheduleURL, httpClient, cache, logger)
	odds := datasource.NewOddsAPIClient(cfg.Sources.OddsURL, cfg.Sources.OddsAPIKey, httpClient, cache, games, logger)
	weather := datasource.NewWeatherAPIClient(cfg.Sources.WeatherURL, cfg.Sources.WeatherAPIKey, httpClient, cache, logger)
	trends := experttrends.NewDefaultService(cache, logger)

	eng := engine.New(games, odds, weather, trends, logger, engine.Options{
		Bookmaker: cfg.Sources.Bookmaker,
	})

	result, err := eng.Run(ctx)
	if err != nil {
		return err
	}

	if result.Message != "" {
		fmt.Println(result.Message)
		return nil
	}

	fmt.Printf("Found %d opportunities (%d high confidence)", result.TotalOpportunities, result.HighConfidence)
	if result.FallbackData {
		fmt.Print(" [fallback data]")
	}
	fmt.Println()

	for _, rec := range result.Recommendations {
		fmt.Printf("\n%s  %s", rec.GameID, rec.BetType)
		if rec.Player != "" {
			fmt.Printf(" (%s %s)", rec.Player, rec.PropLine)
		}
		fmt.Printf("\n  score %.2f  %s  [%s]\n", rec.Score, rec.Confidence, rec.Band)
		for _, reason := range rec.Reasons {
			fmt.Printf("  - %s\n", reason)
		}
	}

	if len(result.Parlays) > 0 {
		fmt.Println("\nParlays:")
		for _, parlay := range result.Parlays {
			fmt.Printf("  %s (%s, est. %s, risk %s)\n", parlay.Reasoning, parlay.Category, parlay.ExpectedOdds, parlay.RiskLevel)
			for _, leg := range parlay.Legs {
				fmt.Printf("    - %s %s\n", leg.GameID, leg.BetType)
			}
		}
	}
	return nil
}
