package scrapelog

import "time"

// MaxErrorMessageLength bounds the stored error text for one refresh run.
const MaxErrorMessageLength = 1000

// Entry records one refresh attempt, successful or not.
type Entry struct {
	ID             int64
	ScrapeDate     time.Time
	SeasonsScraped string
	Success        bool
	ErrorMessage   string
	RecordsUpdated int
}

// TruncateError clamps an error message to the persisted column size.
func TruncateError(msg string) string {
	if len(msg) > MaxErrorMessageLength {
		return msg[:MaxErrorMessageLength]
	}
	return msg
}
