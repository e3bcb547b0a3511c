package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/statfield/nfl-standings/internal/domain/schedule"
	"github.com/statfield/nfl-standings/internal/platform/logging"
)

type recordingJobQueue struct {
	mu    sync.Mutex
	paths []string
	ids   []string
}

func (q *recordingJobQueue) Enqueue(_ context.Context, path string, _ any, _ time.Duration, deduplicationID string) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.paths = append(q.paths, path)
	q.ids = append(q.ids, deduplicationID)
	return nil
}

func TestRefreshScheduler_DispatchEnqueuesWhenQueueConfigured(t *testing.T) {
	t.Parallel()

	queue := &recordingJobQueue{}
	scheduler := NewRefreshScheduler(nil, nil, queue, RefreshSchedulerConfig{Interval: time.Hour}, logging.NewNop())

	scheduler.dispatch(context.Background())

	if len(queue.paths) != 1 || queue.paths[0] != "/v1/internal/jobs/refresh" {
		t.Fatalf("unexpected enqueued paths: %v", queue.paths)
	}
	if queue.ids[0] == "" {
		t.Fatalf("expected a deduplication id")
	}
}

func TestRefreshScheduler_DispatchRunsInlineWithoutQueue(t *testing.T) {
	t.Parallel()

	provider := &stubScheduleProvider{
		current: []schedule.RawGame{regGame(2024, "KC", "NE", score(27), score(17))},
	}
	store := &stubRefreshStore{}
	refresh := NewRefreshService(provider, store, &stubRealignmentRepository{rows: testRealignRows()}, &stubScrapeLogRepository{}, 2, logging.NewNop())
	scheduler := NewRefreshScheduler(refresh, nil, nil, RefreshSchedulerConfig{Interval: time.Hour, Timeout: time.Minute}, logging.NewNop())

	scheduler.dispatch(context.Background())

	if store.calls != 1 {
		t.Fatalf("expected inline refresh to hit the store once, got %d", store.calls)
	}
}

func TestRefreshScheduler_RunStopsOnContextCancel(t *testing.T) {
	t.Parallel()

	realignRepo := &stubRealignmentRepository{}
	refresh := NewRefreshService(&stubScheduleProvider{}, &stubRefreshStore{}, realignRepo, &stubScrapeLogRepository{}, 1, logging.NewNop())
	scheduler := NewRefreshScheduler(refresh, NewRealignmentService(realignRepo), &recordingJobQueue{}, RefreshSchedulerConfig{Interval: time.Hour}, logging.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		scheduler.Run(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("scheduler did not stop after context cancel")
	}

	if len(realignRepo.rows) != 32 {
		t.Fatalf("expected realignment seeded on startup, got %d rows", len(realignRepo.rows))
	}
}
