package gamescore

import "github.com/statfield/nfl-standings/internal/domain/schedule"

// DeriveOutcomes expands completed regular-season games into per-team
// outcome rows. Games without both scores or outside the regular season
// are skipped.
func DeriveOutcomes(games []schedule.RawGame) []Outcome {
	outcomes := make([]Outcome, 0, len(games)*2)
	for _, game := range games {
		if !game.Completed() {
			continue
		}

		home := *game.HomeScore
		away := *game.AwayScore

		outcomes = append(outcomes,
			Outcome{
				Season:        game.Season,
				Gameday:       game.Gameday,
				Gametime:      game.Gametime,
				Team:          game.HomeTeam,
				Opponent:      game.AwayTeam,
				Score:         home,
				OpponentScore: away,
				IsWin:         home > away,
				IsLoss:        home < away,
				IsTie:         home == away,
			},
			Outcome{
				Season:        game.Season,
				Gameday:       game.Gameday,
				Gametime:      game.Gametime,
				Team:          game.AwayTeam,
				Opponent:      game.HomeTeam,
				Score:         away,
				OpponentScore: home,
				IsWin:         away > home,
				IsLoss:        away < home,
				IsTie:         home == away,
			},
		)
	}
	return outcomes
}
