package usecase

import (
	"context"
	"fmt"

	"github.com/statfield/nfl-standings/internal/domain/gamescore"
	"github.com/statfield/nfl-standings/internal/domain/realignment"
)

type GameScoreService struct {
	outcomeRepo gamescore.Repository
}

func NewGameScoreService(outcomeRepo gamescore.Repository) *GameScoreService {
	return &GameScoreService{outcomeRepo: outcomeRepo}
}

// ListTeamSeason returns one team's game log for a season, newest game
// first. When season is nil the latest season with recorded games is used.
func (s *GameScoreService) ListTeamSeason(ctx context.Context, team string, season *int) (int, []gamescore.Outcome, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.list_team_game_scores")
	defer span.End()

	team = realignment.NormalizeTeam(team)
	if team == "" {
		return 0, nil, fmt.Errorf("%w: team is required", ErrInvalidInput)
	}

	target, err := s.resolveSeason(ctx, season)
	if err != nil {
		return 0, nil, err
	}
	if target == 0 {
		return 0, []gamescore.Outcome{}, nil
	}

	outcomes, err := s.outcomeRepo.ListByTeamSeason(ctx, team, target)
	if err != nil {
		return 0, nil, fmt.Errorf("list game scores team=%s season=%d: %w", team, target, err)
	}
	return target, outcomes, nil
}

func (s *GameScoreService) resolveSeason(ctx context.Context, season *int) (int, error) {
	if season != nil {
		if *season <= 0 {
			return 0, fmt.Errorf("%w: season must be positive", ErrInvalidInput)
		}
		return *season, nil
	}

	latest, exists, err := s.outcomeRepo.LatestSeason(ctx)
	if err != nil {
		return 0, fmt.Errorf("resolve latest season: %w", err)
	}
	if !exists {
		return 0, nil
	}
	return latest, nil
}
