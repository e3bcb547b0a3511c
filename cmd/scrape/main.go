package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/statfield/nfl-standings/external/nflverse"
	"github.com/statfield/nfl-standings/internal/config"
	"github.com/statfield/nfl-standings/internal/infrastructure/repository/postgres"
	"github.com/statfield/nfl-standings/internal/platform/logging"
	"github.com/statfield/nfl-standings/internal/platform/resilience"
	"github.com/statfield/nfl-standings/internal/usecase"
)

// One-shot refresh for cron or manual runs. Exits non-zero when the
// refresh fails so callers can alert on it.
func main() {
	all := flag.Bool("all", false, "refresh every season in the feed")
	season := flag.Int("season", 0, "refresh a single season (default: current)")
	timeout := flag.Duration("timeout", 10*time.Minute, "overall run timeout")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := logging.NewJSON(cfg.LogLevel)
	logging.SetDefault(logger)
	defer logger.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	db, err := sqlx.ConnectContext(ctx, "postgres", cfg.DBURL)
	if err != nil {
		logger.Error("connect database", "error", err)
		os.Exit(1)
	}
	defer func() {
		_ = db.Close()
	}()

	realignRepo := postgres.NewRealignmentRepository(db)
	scrapeRepo := postgres.NewScrapeLogRepository(db)
	refreshRepo := postgres.NewRefreshRepository(db)

	provider := nflverse.NewClient(nflverse.ClientConfig{
		BaseURL:    cfg.NFLverseBaseURL,
		Timeout:    cfg.NFLverseTimeout,
		MaxRetries: cfg.NFLverseMaxRetries,
		Logger:     logger,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.NFLverseCircuitEnabled,
			FailureThreshold: cfg.NFLverseCircuitFailureCount,
			OpenTimeout:      cfg.NFLverseCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.NFLverseCircuitHalfOpenMaxReq,
		},
	})

	realignSvc := usecase.NewRealignmentService(realignRepo)
	refreshSvc := usecase.NewRefreshService(provider, refreshRepo, realignRepo, scrapeRepo, cfg.RefreshWorkers, logger)

	if seeded, err := realignSvc.EnsureSeeded(ctx); err != nil {
		logger.Error("seed realignment", "error", err)
		os.Exit(1)
	} else if seeded > 0 {
		logger.Info("seeded realignment", "rows", seeded)
	}

	var result usecase.RefreshResult
	switch {
	case *all:
		result = refreshSvc.RefreshAllSeasons(ctx)
	case *season > 0:
		result = refreshSvc.RefreshSeason(ctx, season)
	default:
		result = refreshSvc.RefreshSeason(ctx, nil)
	}

	if !result.Success {
		logger.Error("refresh failed", "seasons", result.Seasons, "error", result.Error)
		os.Exit(1)
	}
	logger.Info("refresh complete", "seasons", result.Seasons, "records_updated", result.RecordsUpdated)
}
