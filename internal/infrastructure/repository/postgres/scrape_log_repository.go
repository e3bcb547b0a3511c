package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/statfield/nfl-standings/internal/domain/scrapelog"
	qb "github.com/statfield/nfl-standings/internal/platform/querybuilder"
)

type ScrapeLogRepository struct {
	db *sqlx.DB
}

func NewScrapeLogRepository(db *sqlx.DB) *ScrapeLogRepository {
	return &ScrapeLogRepository{db: db}
}

// Append writes one refresh attempt. The log is append-only; rows are
// never updated or deleted.
func (r *ScrapeLogRepository) Append(ctx context.Context, entry scrapelog.Entry) error {
	if entry.ScrapeDate.IsZero() {
		entry.ScrapeDate = time.Now().UTC()
	}

	model := scrapeLogInsertModel{
		ScrapeDate:     entry.ScrapeDate,
		SeasonsScraped: entry.SeasonsScraped,
		Success:        entry.Success,
		ErrorMessage:   scrapelog.TruncateError(entry.ErrorMessage),
		RecordsUpdated: entry.RecordsUpdated,
	}
	query, args, err := qb.InsertModel("scrape_logs", model, "")
	if err != nil {
		return fmt.Errorf("build append scrape log query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("append scrape log: %w", err)
	}
	return nil
}

func (r *ScrapeLogRepository) ListRecent(ctx context.Context, limit int) ([]scrapelog.Entry, error) {
	if limit <= 0 {
		limit = 20
	}

	query, args, err := qb.Select("*").From("scrape_logs").
		OrderBy("scrape_date DESC", "id DESC").
		Limit(limit).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list scrape logs query: %w", err)
	}

	var rows []scrapeLogTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list scrape logs: %w", err)
	}

	out := make([]scrapelog.Entry, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}
