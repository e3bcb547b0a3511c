package standing

import "context"

type Repository interface {
	ListBySeason(ctx context.Context, season int) ([]SeasonStanding, error)
	Seasons(ctx context.Context) ([]int, error)
	MaxSeason(ctx context.Context) (int, bool, error)
}
