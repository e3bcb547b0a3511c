package usecase

import (
	"context"
	"time"

	"github.com/sourcegraph/conc"

	"github.com/statfield/nfl-standings/internal/platform/logging"
)

// JobQueue hands refresh work to an external queue that calls back into
// the internal job endpoints.
type JobQueue interface {
	Enqueue(ctx context.Context, path string, payload any, delay time.Duration, deduplicationID string) error
}

type RefreshSchedulerConfig struct {
	Interval time.Duration
	Timeout  time.Duration
}

// RefreshScheduler periodically refreshes the current season. With a queue
// configured it enqueues the internal refresh job; without one it runs the
// refresh inline.
type RefreshScheduler struct {
	refresh  *RefreshService
	realign  *RealignmentService
	queue    JobQueue
	interval time.Duration
	timeout  time.Duration
	logger   *logging.Logger
	now      func() time.Time
}

func NewRefreshScheduler(
	refresh *RefreshService,
	realign *RealignmentService,
	queue JobQueue,
	cfg RefreshSchedulerConfig,
	logger *logging.Logger,
) *RefreshScheduler {
	if cfg.Interval <= 0 {
		cfg.Interval = 6 * time.Hour
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 5 * time.Minute
	}
	if logger == nil {
		logger = logging.Default()
	}

	return &RefreshScheduler{
		refresh:  refresh,
		realign:  realign,
		queue:    queue,
		interval: cfg.Interval,
		timeout:  cfg.Timeout,
		logger:   logger,
		now:      time.Now,
	}
}

// Run blocks until ctx is cancelled, dispatching one refresh immediately
// and then one per interval. Overlapping runs serialize on the refresh
// service's per-season locks.
func (s *RefreshScheduler) Run(ctx context.Context) {
	if s.realign != nil {
		if inserted, err := s.realign.EnsureSeeded(ctx); err != nil {
			s.logger.ErrorContext(ctx, "seed realignment failed", "error", err)
		} else if inserted > 0 {
			s.logger.InfoContext(ctx, "seeded realignment", "rows", inserted)
		}
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	var wg conc.WaitGroup
	defer wg.Wait()

	wg.Go(func() { s.dispatch(ctx) })
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			wg.Go(func() { s.dispatch(ctx) })
		}
	}
}

func (s *RefreshScheduler) dispatch(ctx context.Context) {
	if s.queue != nil {
		dedupID := "refresh-current-" + s.now().UTC().Truncate(s.interval).Format("20060102T150405Z")
		payload := map[string]any{"dispatch_id": dedupID}
		if err := s.queue.Enqueue(ctx, "/v1/internal/jobs/refresh", payload, 0, dedupID); err != nil {
			s.logger.ErrorContext(ctx, "enqueue refresh job failed", "dispatch_id", dedupID, "error", err)
			return
		}
		s.logger.InfoContext(ctx, "enqueued refresh job", "dispatch_id", dedupID)
		return
	}

	runCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	result := s.refresh.RefreshSeason(runCtx, nil)
	if !result.Success {
		s.logger.ErrorContext(ctx, "scheduled refresh failed", "seasons", seasonsLabel(result.Seasons), "error", result.Error)
		return
	}
	s.logger.InfoContext(ctx, "scheduled refresh completed",
		"seasons", seasonsLabel(result.Seasons),
		"records_updated", result.RecordsUpdated,
	)
}
