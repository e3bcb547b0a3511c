package postgres

import (
	"time"

	"github.com/statfield/nfl-standings/internal/domain/gamescore"
)

type gameOutcomeTableModel struct {
	ID            int64     `db:"id"`
	Season        int       `db:"season"`
	Gameday       time.Time `db:"gameday"`
	Gametime      string    `db:"gametime"`
	Team          string    `db:"team"`
	Opponent      string    `db:"opponent"`
	Score         int       `db:"score"`
	OpponentScore int       `db:"opponent_score"`
	IsWin         bool      `db:"is_win"`
	IsLoss        bool      `db:"is_loss"`
	IsTie         bool      `db:"is_tie"`
}

type gameOutcomeInsertModel struct {
	Season        int       `db:"season"`
	Gameday       time.Time `db:"gameday"`
	Gametime      string    `db:"gametime"`
	Team          string    `db:"team"`
	Opponent      string    `db:"opponent"`
	Score         int       `db:"score"`
	OpponentScore int       `db:"opponent_score"`
	IsWin         bool      `db:"is_win"`
	IsLoss        bool      `db:"is_loss"`
	IsTie         bool      `db:"is_tie"`
}

func (m gameOutcomeTableModel) toDomain() gamescore.Outcome {
	return gamescore.Outcome{
		Season:        m.Season,
		Gameday:       m.Gameday,
		Gametime:      m.Gametime,
		Team:          m.Team,
		Opponent:      m.Opponent,
		Score:         m.Score,
		OpponentScore: m.OpponentScore,
		IsWin:         m.IsWin,
		IsLoss:        m.IsLoss,
		IsTie:         m.IsTie,
	}
}

func gameOutcomeInsert(o gamescore.Outcome) gameOutcomeInsertModel {
	return gameOutcomeInsertModel{
		Season:        o.Season,
		Gameday:       o.Gameday,
		Gametime:      o.Gametime,
		Team:          o.Team,
		Opponent:      o.Opponent,
		Score:         o.Score,
		OpponentScore: o.OpponentScore,
		IsWin:         o.IsWin,
		IsLoss:        o.IsLoss,
		IsTie:         o.IsTie,
	}
}
