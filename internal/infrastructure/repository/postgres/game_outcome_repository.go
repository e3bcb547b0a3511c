package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/statfield/nfl-standings/internal/domain/gamescore"
	qb "github.com/statfield/nfl-standings/internal/platform/querybuilder"
)

type GameOutcomeRepository struct {
	db *sqlx.DB
}

func NewGameOutcomeRepository(db *sqlx.DB) *GameOutcomeRepository {
	return &GameOutcomeRepository{db: db}
}

func (r *GameOutcomeRepository) ListBySeason(ctx context.Context, season int) ([]gamescore.Outcome, error) {
	query, args, err := qb.Select("*").From("game_outcomes").
		Where(qb.Eq("season", season)).
		OrderBy("gameday DESC", "team").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list game outcomes query: %w", err)
	}

	var rows []gameOutcomeTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list game outcomes season=%d: %w", season, err)
	}
	return gameOutcomesToDomain(rows), nil
}

func (r *GameOutcomeRepository) ListByTeamSeason(ctx context.Context, team string, season int) ([]gamescore.Outcome, error) {
	query, args, err := qb.Select("*").From("game_outcomes").
		Where(
			qb.Eq("team", team),
			qb.Eq("season", season),
		).
		OrderBy("gameday DESC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list team game outcomes query: %w", err)
	}

	var rows []gameOutcomeTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list game outcomes team=%s season=%d: %w", team, season, err)
	}
	return gameOutcomesToDomain(rows), nil
}

func (r *GameOutcomeRepository) LatestSeason(ctx context.Context) (int, bool, error) {
	var latest sql.NullInt64
	if err := r.db.GetContext(ctx, &latest, `SELECT MAX(season) FROM game_outcomes`); err != nil {
		if isNotFound(err) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("latest game outcome season: %w", err)
	}
	if !latest.Valid {
		return 0, false, nil
	}
	return int(latest.Int64), true, nil
}

func gameOutcomesToDomain(rows []gameOutcomeTableModel) []gamescore.Outcome {
	out := make([]gamescore.Outcome, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out
}
