package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/statfield/nfl-standings/internal/domain/standing"
	qb "github.com/statfield/nfl-standings/internal/platform/querybuilder"
)

type SeasonStandingRepository struct {
	db *sqlx.DB
}

func NewSeasonStandingRepository(db *sqlx.DB) *SeasonStandingRepository {
	return &SeasonStandingRepository{db: db}
}

func (r *SeasonStandingRepository) ListBySeason(ctx context.Context, season int) ([]standing.SeasonStanding, error) {
	query, args, err := qb.Select("*").From("season_standings").
		Where(qb.Eq("season", season)).
		OrderBy("win_pct DESC", "in_division_win_pct DESC", "team").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list standings query: %w", err)
	}

	var rows []seasonStandingTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list standings season=%d: %w", season, err)
	}

	out := make([]standing.SeasonStanding, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *SeasonStandingRepository) Seasons(ctx context.Context) ([]int, error) {
	var seasons []int
	if err := r.db.SelectContext(ctx, &seasons, `SELECT DISTINCT season FROM season_standings ORDER BY season DESC`); err != nil {
		return nil, fmt.Errorf("list standing seasons: %w", err)
	}
	return seasons, nil
}

func (r *SeasonStandingRepository) MaxSeason(ctx context.Context) (int, bool, error) {
	var latest sql.NullInt64
	if err := r.db.GetContext(ctx, &latest, `SELECT MAX(season) FROM season_standings`); err != nil {
		if isNotFound(err) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("max standing season: %w", err)
	}
	if !latest.Valid {
		return 0, false, nil
	}
	return int(latest.Int64), true, nil
}
