package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/statfield/nfl-standings/internal/domain/realignment"
)

// BootstrapSeed loads the default conference and division assignments when
// the realignment table is empty.
func BootstrapSeed(ctx context.Context, db *sqlx.DB) error {
	repo := NewRealignmentRepository(db)

	count, err := repo.Count(ctx)
	if err != nil {
		return fmt.Errorf("count realignment for bootstrap seed: %w", err)
	}
	if count > 0 {
		return nil
	}

	if _, err := repo.SeedBatch(ctx, realignment.DefaultAlignment(), false); err != nil {
		return fmt.Errorf("bootstrap seed realignment: %w", err)
	}
	return nil
}
