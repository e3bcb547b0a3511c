package postgres

import "github.com/statfield/nfl-standings/internal/domain/realignment"

type realignmentTableModel struct {
	ID         int64  `db:"id"`
	Team       string `db:"team"`
	Conference string `db:"conference"`
	Division   string `db:"division"`
	Name       string `db:"name"`
}

type realignmentInsertModel struct {
	Team       string `db:"team"`
	Conference string `db:"conference"`
	Division   string `db:"division"`
	Name       string `db:"name"`
}

func (m realignmentTableModel) toDomain() realignment.TeamRealignment {
	return realignment.TeamRealignment{
		Team:       m.Team,
		Conference: m.Conference,
		Division:   m.Division,
		Name:       m.Name,
	}
}
