package app

import (
	"fmt"
	"net/http"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"

	"github.com/statfield/nfl-standings/external/jobqueue"
	"github.com/statfield/nfl-standings/external/nflverse"
	"github.com/statfield/nfl-standings/internal/config"
	"github.com/statfield/nfl-standings/internal/infrastructure/repository/postgres"
	"github.com/statfield/nfl-standings/internal/interfaces/httpapi"
	"github.com/statfield/nfl-standings/internal/platform/logging"
	"github.com/statfield/nfl-standings/internal/platform/resilience"
	"github.com/statfield/nfl-standings/internal/usecase"
)

// Application bundles the wired HTTP server, database handle, and the
// background refresh scheduler so cmd/api can manage their lifecycles.
type Application struct {
	Server    *http.Server
	DB        *sqlx.DB
	Scheduler *usecase.RefreshScheduler
}

func New(cfg config.Config, logger *logging.Logger) (*Application, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	db, err := otelsqlx.Connect("postgres", normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary),
		otelsql.WithDBSystem("postgresql"),
		otelsql.WithDBName(dbNameFromURL(cfg.DBURL)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	realignRepo := postgres.NewRealignmentRepository(db)
	outcomeRepo := postgres.NewGameOutcomeRepository(db)
	standingRepo := postgres.NewSeasonStandingRepository(db)
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

	standingsSvc := usecase.NewStandingsService(standingRepo, realignRepo)
	gameScoreSvc := usecase.NewGameScoreService(outcomeRepo)
	realignSvc := usecase.NewRealignmentService(realignRepo)
	refreshSvc := usecase.NewRefreshService(provider, refreshRepo, realignRepo, scrapeRepo, cfg.RefreshWorkers, logger)

	var queue usecase.JobQueue
	if cfg.QStashEnabled {
		queue = jobqueue.NewQStashPublisher(jobqueue.QStashPublisherConfig{
			BaseURL:          cfg.QStashBaseURL,
			Token:            cfg.QStashToken,
			TargetBaseURL:    cfg.QStashTargetBaseURL,
			Retries:          cfg.QStashRetries,
			InternalJobToken: cfg.InternalJobToken,
			CircuitBreaker: resilience.CircuitBreakerConfig{
				Enabled:          cfg.QStashCircuitEnabled,
				FailureThreshold: cfg.QStashCircuitFailureCount,
				OpenTimeout:      cfg.QStashCircuitOpenTimeout,
				HalfOpenMaxReq:   cfg.QStashCircuitHalfOpenMaxReq,
			},
		}, logger)
	}

	var scheduler *usecase.RefreshScheduler
	if cfg.JobRefreshEnabled {
		scheduler = usecase.NewRefreshScheduler(refreshSvc, realignSvc, queue, usecase.RefreshSchedulerConfig{
			Interval: cfg.JobRefreshInterval,
			Timeout:  cfg.JobRefreshTimeout,
		}, logger)
	}

	handler := httpapi.NewHandler(standingsSvc, gameScoreSvc, refreshSvc, realignSvc, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins, cfg.InternalJobToken)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return &Application{
		Server:    server,
		DB:        db,
		Scheduler: scheduler,
	}, nil
}

func (a *Application) Close() error {
	if a == nil || a.DB == nil {
		return nil
	}
	return a.DB.Close()
}
