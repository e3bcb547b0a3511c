package gamescore

import "context"

type Repository interface {
	ListBySeason(ctx context.Context, season int) ([]Outcome, error)
	ListByTeamSeason(ctx context.Context, team string, season int) ([]Outcome, error)
	LatestSeason(ctx context.Context) (int, bool, error)
}
