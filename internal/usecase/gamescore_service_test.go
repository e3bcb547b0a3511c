package usecase

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/statfield/nfl-standings/internal/domain/gamescore"
)

type stubGameScoreRepository struct {
	byTeamSeason map[string][]gamescore.Outcome
	latest       int
	hasLatest    bool
}

func gameScoreKey(team string, season int) string {
	return team + "|" + strconv.Itoa(season)
}

func (s *stubGameScoreRepository) ListBySeason(_ context.Context, _ int) ([]gamescore.Outcome, error) {
	return nil, nil
}

func (s *stubGameScoreRepository) ListByTeamSeason(_ context.Context, team string, season int) ([]gamescore.Outcome, error) {
	return append([]gamescore.Outcome(nil), s.byTeamSeason[gameScoreKey(team, season)]...), nil
}

func (s *stubGameScoreRepository) LatestSeason(_ context.Context) (int, bool, error) {
	return s.latest, s.hasLatest, nil
}

func TestGameScoreService_ListTeamSeason_NormalizesTeamAndDefaultsSeason(t *testing.T) {
	t.Parallel()

	repo := &stubGameScoreRepository{
		latest:    2024,
		hasLatest: true,
		byTeamSeason: map[string][]gamescore.Outcome{
			gameScoreKey("KC", 2024): {
				{Season: 2024, Team: "KC", Opponent: "NE", Score: 27, OpponentScore: 17, IsWin: true},
			},
		},
	}
	service := NewGameScoreService(repo)

	season, outcomes, err := service.ListTeamSeason(context.Background(), " kc ", nil)
	if err != nil {
		t.Fatalf("list team season: %v", err)
	}
	if season != 2024 {
		t.Fatalf("expected latest season 2024, got %d", season)
	}
	if len(outcomes) != 1 || outcomes[0].Opponent != "NE" {
		t.Fatalf("unexpected outcomes: %+v", outcomes)
	}
}

func TestGameScoreService_ListTeamSeason_RequiresTeam(t *testing.T) {
	t.Parallel()

	service := NewGameScoreService(&stubGameScoreRepository{})

	_, _, err := service.ListTeamSeason(context.Background(), "  ", nil)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestGameScoreService_ListTeamSeason_NoRecordedSeasons(t *testing.T) {
	t.Parallel()

	service := NewGameScoreService(&stubGameScoreRepository{})

	season, outcomes, err := service.ListTeamSeason(context.Background(), "KC", nil)
	if err != nil {
		t.Fatalf("list team season: %v", err)
	}
	if season != 0 || len(outcomes) != 0 {
		t.Fatalf("expected empty result, got season=%d outcomes=%+v", season, outcomes)
	}
}
