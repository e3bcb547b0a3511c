package postgres

import (
	"time"

	"github.com/statfield/nfl-standings/internal/domain/standing"
)

type seasonStandingTableModel struct {
	ID               int64     `db:"id"`
	Season           int       `db:"season"`
	Team             string    `db:"team"`
	Wins             int       `db:"wins"`
	Losses           int       `db:"losses"`
	Ties             int       `db:"ties"`
	WinPct           float64   `db:"win_pct"`
	InDivisionWins   int       `db:"in_division_wins"`
	InDivisionLosses int       `db:"in_division_losses"`
	InDivisionTies   int       `db:"in_division_ties"`
	InDivisionWinPct float64   `db:"in_division_win_pct"`
	LastUpdated      time.Time `db:"last_updated"`
}

type seasonStandingInsertModel struct {
	Season           int       `db:"season"`
	Team             string    `db:"team"`
	Wins             int       `db:"wins"`
	Losses           int       `db:"losses"`
	Ties             int       `db:"ties"`
	WinPct           float64   `db:"win_pct"`
	InDivisionWins   int       `db:"in_division_wins"`
	InDivisionLosses int       `db:"in_division_losses"`
	InDivisionTies   int       `db:"in_division_ties"`
	InDivisionWinPct float64   `db:"in_division_win_pct"`
	LastUpdated      time.Time `db:"last_updated"`
}

func (m seasonStandingTableModel) toDomain() standing.SeasonStanding {
	return standing.SeasonStanding{
		Season:           m.Season,
		Team:             m.Team,
		Wins:             m.Wins,
		Losses:           m.Losses,
		Ties:             m.Ties,
		WinPct:           m.WinPct,
		InDivisionWins:   m.InDivisionWins,
		InDivisionLosses: m.InDivisionLosses,
		InDivisionTies:   m.InDivisionTies,
		InDivisionWinPct: m.InDivisionWinPct,
		LastUpdated:      m.LastUpdated,
	}
}

func seasonStandingInsert(s standing.SeasonStanding) seasonStandingInsertModel {
	return seasonStandingInsertModel{
		Season:           s.Season,
		Team:             s.Team,
		Wins:             s.Wins,
		Losses:           s.Losses,
		Ties:             s.Ties,
		WinPct:           s.WinPct,
		InDivisionWins:   s.InDivisionWins,
		InDivisionLosses: s.InDivisionLosses,
		InDivisionTies:   s.InDivisionTies,
		InDivisionWinPct: s.InDivisionWinPct,
		LastUpdated:      s.LastUpdated,
	}
}
