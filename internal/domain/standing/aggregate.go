package standing

import (
	"sort"
	"time"

	"github.com/statfield/nfl-standings/internal/domain/gamescore"
	"github.com/statfield/nfl-standings/internal/domain/realignment"
)

// Aggregate folds per-team outcomes into season standings. In-division
// totals only count games where both teams resolve to the same division
// through the realignment lookup.
func Aggregate(outcomes []gamescore.Outcome, lookup realignment.Lookup, now time.Time) []SeasonStanding {
	type key struct {
		season int
		team   string
	}

	totals := make(map[key]*SeasonStanding)
	for _, outcome := range outcomes {
		k := key{season: outcome.Season, team: outcome.Team}
		row, ok := totals[k]
		if !ok {
			row = &SeasonStanding{Season: outcome.Season, Team: outcome.Team, LastUpdated: now}
			totals[k] = row
		}

		switch {
		case outcome.IsWin:
			row.Wins++
		case outcome.IsLoss:
			row.Losses++
		case outcome.IsTie:
			row.Ties++
		}

		if !sameDivision(lookup, outcome.Team, outcome.Opponent) {
			continue
		}
		switch {
		case outcome.IsWin:
			row.InDivisionWins++
		case outcome.IsLoss:
			row.InDivisionLosses++
		case outcome.IsTie:
			row.InDivisionTies++
		}
	}

	standings := make([]SeasonStanding, 0, len(totals))
	for _, row := range totals {
		row.WinPct = WinPct(row.Wins, row.Losses, row.Ties)
		row.InDivisionWinPct = WinPct(row.InDivisionWins, row.InDivisionLosses, row.InDivisionTies)
		standings = append(standings, *row)
	}

	sort.Slice(standings, func(i, j int) bool {
		if standings[i].Season != standings[j].Season {
			return standings[i].Season < standings[j].Season
		}
		return standings[i].Team < standings[j].Team
	})

	return standings
}

func sameDivision(lookup realignment.Lookup, team, opponent string) bool {
	a, ok := lookup.Get(team)
	if !ok {
		return false
	}
	b, ok := lookup.Get(opponent)
	if !ok {
		return false
	}
	return a.Conference == b.Conference && a.Division == b.Division
}
