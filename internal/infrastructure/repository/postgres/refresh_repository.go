package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/statfield/nfl-standings/internal/domain/gamescore"
	"github.com/statfield/nfl-standings/internal/domain/standing"
	qb "github.com/statfield/nfl-standings/internal/platform/querybuilder"
)

const gameOutcomeUpsertSuffix = `ON CONFLICT (season, gameday, team)
DO UPDATE SET
    gametime = EXCLUDED.gametime,
    opponent = EXCLUDED.opponent,
    score = EXCLUDED.score,
    opponent_score = EXCLUDED.opponent_score,
    is_win = EXCLUDED.is_win,
    is_loss = EXCLUDED.is_loss,
    is_tie = EXCLUDED.is_tie`

const seasonStandingUpsertSuffix = `ON CONFLICT (season, team)
DO UPDATE SET
    wins = EXCLUDED.wins,
    losses = EXCLUDED.losses,
    ties = EXCLUDED.ties,
    win_pct = EXCLUDED.win_pct,
    in_division_wins = EXCLUDED.in_division_wins,
    in_division_losses = EXCLUDED.in_division_losses,
    in_division_ties = EXCLUDED.in_division_ties,
    in_division_win_pct = EXCLUDED.in_division_win_pct,
    last_updated = EXCLUDED.last_updated`

// RefreshRepository persists one refresh run, outcomes and standings
// together, in a single transaction.
type RefreshRepository struct {
	db *sqlx.DB
}

func NewRefreshRepository(db *sqlx.DB) *RefreshRepository {
	return &RefreshRepository{db: db}
}

func (r *RefreshRepository) ApplyRefresh(ctx context.Context, outcomes []gamescore.Outcome, standings []standing.SeasonStanding) (int, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin refresh tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, outcome := range outcomes {
		if err := upsertRow(ctx, tx, "game_outcomes", gameOutcomeInsert(outcome), gameOutcomeUpsertSuffix); err != nil {
			return 0, fmt.Errorf("upsert game outcome team=%s season=%d: %w", outcome.Team, outcome.Season, err)
		}
	}

	for _, row := range standings {
		if err := upsertRow(ctx, tx, "season_standings", seasonStandingInsert(row), seasonStandingUpsertSuffix); err != nil {
			return 0, fmt.Errorf("upsert standing team=%s season=%d: %w", row.Team, row.Season, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit refresh tx: %w", err)
	}
	return len(standings), nil
}

func upsertRow(ctx context.Context, tx *sqlx.Tx, table string, model any, suffix string) error {
	query, args, err := qb.InsertModel(table, model, suffix)
	if err != nil {
		return fmt.Errorf("build upsert query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return err
	}
	return nil
}
