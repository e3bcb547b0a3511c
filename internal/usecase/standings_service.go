package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/statfield/nfl-standings/internal/domain/realignment"
	"github.com/statfield/nfl-standings/internal/domain/standing"
	"github.com/statfield/nfl-standings/internal/platform/cache"
)

// TeamStanding is one team's row in the grouped standings response.
type TeamStanding struct {
	Team             string  `json:"team"`
	Name             string  `json:"name"`
	Wins             int     `json:"wins"`
	Losses           int     `json:"losses"`
	Ties             int     `json:"ties"`
	WinPct           float64 `json:"win_pct"`
	InDivisionWins   int     `json:"in_division_wins"`
	InDivisionLosses int     `json:"in_division_losses"`
	InDivisionTies   int     `json:"in_division_ties"`
	InDivisionWinPct float64 `json:"in_division_win_pct"`
	Season           int     `json:"season"`
}

// GroupedStandings nests teams under conference then division.
type GroupedStandings map[string]map[string][]TeamStanding

// realignmentCacheTTL bounds staleness of the conference/division lookup.
// Assignments only change on league realignment, so minutes is plenty.
const realignmentCacheTTL = 5 * time.Minute

type StandingsService struct {
	standingRepo standing.Repository
	realignRepo  realignment.Repository
	lookupCache  *cache.Store
}

func NewStandingsService(standingRepo standing.Repository, realignRepo realignment.Repository) *StandingsService {
	return &StandingsService{
		standingRepo: standingRepo,
		realignRepo:  realignRepo,
		lookupCache:  cache.NewStore(realignmentCacheTTL),
	}
}

// GetStandings returns grouped standings for a season. When season is nil
// the latest season with stored standings is used. Teams without a
// realignment entry are dropped from the response.
func (s *StandingsService) GetStandings(ctx context.Context, season *int) (int, GroupedStandings, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.get_standings")
	defer span.End()

	target, err := s.resolveSeason(ctx, season)
	if err != nil {
		return 0, nil, err
	}
	if target == 0 {
		return 0, GroupedStandings{}, nil
	}

	rows, err := s.standingRepo.ListBySeason(ctx, target)
	if err != nil {
		return 0, nil, fmt.Errorf("list standings season=%d: %w", target, err)
	}

	lookup, err := s.realignmentLookup(ctx)
	if err != nil {
		return 0, nil, err
	}

	grouped := GroupedStandings{}
	for _, row := range rows {
		alignment, ok := lookup.Get(row.Team)
		if !ok {
			continue
		}

		divisions, ok := grouped[alignment.Conference]
		if !ok {
			divisions = map[string][]TeamStanding{}
			grouped[alignment.Conference] = divisions
		}
		divisions[alignment.Division] = append(divisions[alignment.Division], TeamStanding{
			Team:             row.Team,
			Name:             alignment.Name,
			Wins:             row.Wins,
			Losses:           row.Losses,
			Ties:             row.Ties,
			WinPct:           row.WinPct,
			InDivisionWins:   row.InDivisionWins,
			InDivisionLosses: row.InDivisionLosses,
			InDivisionTies:   row.InDivisionTies,
			InDivisionWinPct: row.InDivisionWinPct,
			Season:           row.Season,
		})
	}

	for _, divisions := range grouped {
		for _, teams := range divisions {
			sortDivision(teams)
		}
	}

	return target, grouped, nil
}

// GetAvailableSeasons returns all seasons with stored standings, newest first.
func (s *StandingsService) GetAvailableSeasons(ctx context.Context) ([]int, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.get_available_seasons")
	defer span.End()

	seasons, err := s.standingRepo.Seasons(ctx)
	if err != nil {
		return nil, fmt.Errorf("list seasons: %w", err)
	}
	return seasons, nil
}

// realignmentLookup serves the lookup from a short-lived cache so the
// standings endpoint does not hit the realignment table on every request.
func (s *StandingsService) realignmentLookup(ctx context.Context) (realignment.Lookup, error) {
	value, err := s.lookupCache.GetOrLoad(ctx, "realignment-lookup", func(ctx context.Context) (any, error) {
		rows, err := s.realignRepo.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("list realignment: %w", err)
		}
		return realignment.BuildLookup(rows), nil
	})
	if err != nil {
		return nil, err
	}

	lookup, ok := value.(realignment.Lookup)
	if !ok {
		return nil, fmt.Errorf("unexpected realignment cache entry %T", value)
	}
	return lookup, nil
}

func (s *StandingsService) resolveSeason(ctx context.Context, season *int) (int, error) {
	if season != nil {
		if *season <= 0 {
			return 0, fmt.Errorf("%w: season must be positive", ErrInvalidInput)
		}
		return *season, nil
	}

	latest, exists, err := s.standingRepo.MaxSeason(ctx)
	if err != nil {
		return 0, fmt.Errorf("resolve latest season: %w", err)
	}
	if !exists {
		return 0, nil
	}
	return latest, nil
}

// sortDivision orders a division best record first, breaking win_pct ties
// with the in-division win_pct and finally the team abbreviation.
func sortDivision(teams []TeamStanding) {
	sort.SliceStable(teams, func(i, j int) bool {
		if teams[i].WinPct != teams[j].WinPct {
			return teams[i].WinPct > teams[j].WinPct
		}
		if teams[i].InDivisionWinPct != teams[j].InDivisionWinPct {
			return teams[i].InDivisionWinPct > teams[j].InDivisionWinPct
		}
		return teams[i].Team < teams[j].Team
	})
}
