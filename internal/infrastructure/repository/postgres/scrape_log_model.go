package postgres

import (
	"time"

	"github.com/statfield/nfl-standings/internal/domain/scrapelog"
)

type scrapeLogTableModel struct {
	ID             int64     `db:"id"`
	ScrapeDate     time.Time `db:"scrape_date"`
	SeasonsScraped string    `db:"seasons_scraped"`
	Success        bool      `db:"success"`
	ErrorMessage   string    `db:"error_message"`
	RecordsUpdated int       `db:"records_updated"`
}

type scrapeLogInsertModel struct {
	ScrapeDate     time.Time `db:"scrape_date"`
	SeasonsScraped string    `db:"seasons_scraped"`
	Success        bool      `db:"success"`
	ErrorMessage   string    `db:"error_message"`
	RecordsUpdated int       `db:"records_updated"`
}

func (m scrapeLogTableModel) toDomain() scrapelog.Entry {
	return scrapelog.Entry{
		ID:             m.ID,
		ScrapeDate:     m.ScrapeDate,
		SeasonsScraped: m.SeasonsScraped,
		Success:        m.Success,
		ErrorMessage:   m.ErrorMessage,
		RecordsUpdated: m.RecordsUpdated,
	}
}
