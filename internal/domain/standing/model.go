package standing

import "time"

// SeasonStanding is one team's aggregated record for a season, including
// the record against teams in the same division.
type SeasonStanding struct {
	Season           int
	Team             string
	Wins             int
	Losses           int
	Ties             int
	WinPct           float64
	InDivisionWins   int
	InDivisionLosses int
	InDivisionTies   int
	InDivisionWinPct float64
	LastUpdated      time.Time
}

// WinPct computes (wins + ties/2) / games, or 0 when no games were played.
func WinPct(wins, losses, ties int) float64 {
	games := wins + losses + ties
	if games == 0 {
		return 0.0
	}
	return (float64(wins) + float64(ties)/2) / float64(games)
}
