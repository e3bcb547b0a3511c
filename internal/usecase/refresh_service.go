package usecase

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/statfield/nfl-standings/internal/domain/gamescore"
	"github.com/statfield/nfl-standings/internal/domain/realignment"
	"github.com/statfield/nfl-standings/internal/domain/schedule"
	"github.com/statfield/nfl-standings/internal/domain/scrapelog"
	"github.com/statfield/nfl-standings/internal/domain/standing"
	"github.com/statfield/nfl-standings/internal/platform/logging"
)

// ScheduleProvider fetches raw games from the upstream schedule feed.
type ScheduleProvider interface {
	FetchSeason(ctx context.Context, season int) ([]schedule.RawGame, error)
	FetchCurrentSeason(ctx context.Context) ([]schedule.RawGame, error)
	FetchAllSeasons(ctx context.Context) ([]schedule.RawGame, error)
}

// RefreshStore persists derived outcomes and standings in one transaction
// and reports how many standings rows were written.
type RefreshStore interface {
	ApplyRefresh(ctx context.Context, outcomes []gamescore.Outcome, standings []standing.SeasonStanding) (int, error)
}

// RefreshResult is the structured outcome of one refresh run. Failures are
// reported through Success and Error rather than a returned error.
type RefreshResult struct {
	Success        bool   `json:"success"`
	RecordsUpdated int    `json:"records_updated"`
	Seasons        []int  `json:"seasons_scraped"`
	Error          string `json:"error,omitempty"`
}

const (
	defaultRefreshWorkers = 4
	defaultRecentScrapes  = 20
	maxRecentScrapesLimit = 100
)

type RefreshService struct {
	provider    ScheduleProvider
	store       RefreshStore
	realignRepo realignment.Repository
	scrapeRepo  scrapelog.Repository
	workers     int
	logger      *logging.Logger
	now         func() time.Time

	mu          sync.Mutex
	seasonLocks map[int]*sync.Mutex
}

func NewRefreshService(
	provider ScheduleProvider,
	store RefreshStore,
	realignRepo realignment.Repository,
	scrapeRepo scrapelog.Repository,
	workers int,
	logger *logging.Logger,
) *RefreshService {
	if workers < 1 {
		workers = defaultRefreshWorkers
	}
	if logger == nil {
		logger = logging.Default()
	}

	return &RefreshService{
		provider:    provider,
		store:       store,
		realignRepo: realignRepo,
		scrapeRepo:  scrapeRepo,
		workers:     workers,
		logger:      logger,
		now:         time.Now,
		seasonLocks: make(map[int]*sync.Mutex),
	}
}

// RefreshSeason re-derives outcomes and standings for one season. A nil
// season refreshes the season currently in progress.
func (s *RefreshService) RefreshSeason(ctx context.Context, season *int) RefreshResult {
	ctx, span := startUsecaseSpan(ctx, "usecase.refresh_season")
	defer span.End()

	var games []schedule.RawGame
	var err error
	fallback := s.now().UTC().Year()
	if season != nil {
		fallback = *season
		games, err = s.provider.FetchSeason(ctx, *season)
	} else {
		games, err = s.provider.FetchCurrentSeason(ctx)
	}
	if err != nil {
		return s.fail(ctx, []int{fallback}, fmt.Errorf("fetch schedule: %w", err))
	}

	seasons := seasonsOf(games)
	if len(seasons) == 0 {
		seasons = []int{fallback}
	}

	unlock := s.lockSeasons(seasons)
	defer unlock()

	return s.apply(ctx, games, seasons)
}

// RefreshAllSeasons re-derives every season the upstream feed publishes.
func (s *RefreshService) RefreshAllSeasons(ctx context.Context) RefreshResult {
	ctx, span := startUsecaseSpan(ctx, "usecase.refresh_all_seasons")
	defer span.End()

	games, err := s.provider.FetchAllSeasons(ctx)
	if err != nil {
		return s.fail(ctx, nil, fmt.Errorf("fetch all schedules: %w", err))
	}

	seasons := seasonsOf(games)
	if len(seasons) == 0 {
		return s.succeed(ctx, 0, nil)
	}

	unlock := s.lockSeasons(seasons)
	defer unlock()

	return s.apply(ctx, games, seasons)
}

// RecentScrapes lists the latest refresh attempts, newest first.
func (s *RefreshService) RecentScrapes(ctx context.Context, limit int) ([]scrapelog.Entry, error) {
	if limit <= 0 {
		limit = defaultRecentScrapes
	}
	if limit > maxRecentScrapesLimit {
		limit = maxRecentScrapesLimit
	}

	entries, err := s.scrapeRepo.ListRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list recent scrapes: %w", err)
	}
	return entries, nil
}

func (s *RefreshService) apply(ctx context.Context, games []schedule.RawGame, seasons []int) RefreshResult {
	lookupRows, err := s.realignRepo.List(ctx)
	if err != nil {
		return s.fail(ctx, seasons, fmt.Errorf("list realignment: %w", err))
	}
	lookup := realignment.BuildLookup(lookupRows)
	now := s.now().UTC()

	bySeason := make(map[int][]schedule.RawGame, len(seasons))
	for _, game := range games {
		bySeason[game.Season] = append(bySeason[game.Season], game)
	}

	workerCount := s.workers
	if workerCount > len(seasons) {
		workerCount = len(seasons)
	}
	if workerCount < 1 {
		workerCount = 1
	}

	pool, err := ants.NewPool(workerCount)
	if err != nil {
		return s.fail(ctx, seasons, fmt.Errorf("create worker pool: %w", err))
	}
	defer pool.Release()

	type seasonDerivation struct {
		outcomes  []gamescore.Outcome
		standings []standing.SeasonStanding
	}

	results := make(chan seasonDerivation, len(seasons))
	var derivedOutcomes atomic.Int64

	var workers sync.WaitGroup
	for _, target := range seasons {
		target := target
		workers.Add(1)
		if submitErr := pool.Submit(func() {
			defer workers.Done()

			outcomes := gamescore.DeriveOutcomes(bySeason[target])
			derivedOutcomes.Add(int64(len(outcomes)))
			results <- seasonDerivation{
				outcomes:  outcomes,
				standings: standing.Aggregate(outcomes, lookup, now),
			}
		}); submitErr != nil {
			workers.Done()
			return s.fail(ctx, seasons, fmt.Errorf("submit season to worker pool: %w", submitErr))
		}
	}

	workers.Wait()
	close(results)

	var outcomes []gamescore.Outcome
	var standings []standing.SeasonStanding
	for item := range results {
		outcomes = append(outcomes, item.outcomes...)
		standings = append(standings, item.standings...)
	}

	records, err := s.store.ApplyRefresh(ctx, outcomes, standings)
	if err != nil {
		return s.fail(ctx, seasons, fmt.Errorf("persist refresh: %w", err))
	}

	s.logger.InfoContext(ctx, "refresh completed",
		"seasons", seasonsLabel(seasons),
		"games", len(games),
		"outcomes", derivedOutcomes.Load(),
		"records_updated", records,
	)

	return s.succeed(ctx, records, seasons)
}

func (s *RefreshService) succeed(ctx context.Context, records int, seasons []int) RefreshResult {
	s.appendScrapeLog(ctx, scrapelog.Entry{
		ScrapeDate:     s.now().UTC(),
		SeasonsScraped: seasonsLabel(seasons),
		Success:        true,
		RecordsUpdated: records,
	})
	return RefreshResult{Success: true, RecordsUpdated: records, Seasons: seasons}
}

func (s *RefreshService) fail(ctx context.Context, seasons []int, err error) RefreshResult {
	s.logger.ErrorContext(ctx, "refresh failed", "seasons", seasonsLabel(seasons), "error", err)
	s.appendScrapeLog(ctx, scrapelog.Entry{
		ScrapeDate:     s.now().UTC(),
		SeasonsScraped: seasonsLabel(seasons),
		Success:        false,
		ErrorMessage:   scrapelog.TruncateError(err.Error()),
	})
	return RefreshResult{Success: false, Seasons: seasons, Error: err.Error()}
}

func (s *RefreshService) appendScrapeLog(ctx context.Context, entry scrapelog.Entry) {
	if s.scrapeRepo == nil {
		return
	}
	if err := s.scrapeRepo.Append(ctx, entry); err != nil {
		s.logger.WarnContext(ctx, "append scrape log failed", "error", err)
	}
}

// lockSeasons takes the per-season mutexes in ascending order so concurrent
// refreshes of overlapping season sets cannot deadlock.
func (s *RefreshService) lockSeasons(seasons []int) func() {
	ordered := append([]int(nil), seasons...)
	sort.Ints(ordered)

	locks := make([]*sync.Mutex, 0, len(ordered))
	for _, season := range ordered {
		locks = append(locks, s.seasonLock(season))
	}
	for _, lock := range locks {
		lock.Lock()
	}

	return func() {
		for i := len(locks) - 1; i >= 0; i-- {
			locks[i].Unlock()
		}
	}
}

func (s *RefreshService) seasonLock(season int) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, ok := s.seasonLocks[season]
	if !ok {
		lock = &sync.Mutex{}
		s.seasonLocks[season] = lock
	}
	return lock
}

func seasonsOf(games []schedule.RawGame) []int {
	seen := make(map[int]struct{}, 4)
	for _, game := range games {
		if game.Season <= 0 {
			continue
		}
		seen[game.Season] = struct{}{}
	}

	seasons := make([]int, 0, len(seen))
	for season := range seen {
		seasons = append(seasons, season)
	}
	sort.Ints(seasons)
	return seasons
}

func seasonsLabel(seasons []int) string {
	if len(seasons) == 0 {
		return ""
	}
	parts := make([]string, 0, len(seasons))
	for _, season := range seasons {
		parts = append(parts, strconv.Itoa(season))
	}
	return strings.Join(parts, ",")
}
