package realignment

import "context"

type Repository interface {
	List(ctx context.Context) ([]TeamRealignment, error)
	Count(ctx context.Context) (int, error)
	SeedBatch(ctx context.Context, rows []TeamRealignment, overwrite bool) (int, error)
}
