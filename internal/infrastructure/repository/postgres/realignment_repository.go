package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/statfield/nfl-standings/internal/domain/realignment"
	qb "github.com/statfield/nfl-standings/internal/platform/querybuilder"
)

type RealignmentRepository struct {
	db *sqlx.DB
}

func NewRealignmentRepository(db *sqlx.DB) *RealignmentRepository {
	return &RealignmentRepository{db: db}
}

func (r *RealignmentRepository) List(ctx context.Context) ([]realignment.TeamRealignment, error) {
	query, args, err := qb.Select("*").From("team_realignment").
		OrderBy("conference", "division", "team").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list realignment query: %w", err)
	}

	var rows []realignmentTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list realignment: %w", err)
	}

	out := make([]realignment.TeamRealignment, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *RealignmentRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(1) FROM team_realignment`); err != nil {
		return 0, fmt.Errorf("count realignment: %w", err)
	}
	return count, nil
}

func (r *RealignmentRepository) SeedBatch(ctx context.Context, rows []realignment.TeamRealignment, overwrite bool) (int, error) {
	if len(rows) == 0 {
		return 0, nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin seed realignment tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	suffix := `ON CONFLICT (team) DO NOTHING`
	if overwrite {
		suffix = `ON CONFLICT (team)
DO UPDATE SET
    conference = EXCLUDED.conference,
    division = EXCLUDED.division,
    name = EXCLUDED.name`
	}

	written := 0
	for _, row := range rows {
		model := realignmentInsertModel{
			Team:       realignment.NormalizeTeam(row.Team),
			Conference: row.Conference,
			Division:   row.Division,
			Name:       row.Name,
		}
		query, args, err := qb.InsertModel("team_realignment", model, suffix)
		if err != nil {
			return 0, fmt.Errorf("build seed realignment query team=%s: %w", row.Team, err)
		}
		result, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return 0, fmt.Errorf("seed realignment team=%s: %w", row.Team, err)
		}
		if affected, err := result.RowsAffected(); err == nil {
			written += int(affected)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit seed realignment tx: %w", err)
	}
	return written, nil
}
