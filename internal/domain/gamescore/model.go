package gamescore

import "time"

// Outcome is one team's view of one completed regular-season game.
// Every game yields two mirrored outcomes, one per participant.
type Outcome struct {
	Season        int
	Gameday       time.Time
	Gametime      string
	Team          string
	Opponent      string
	Score         int
	OpponentScore int
	IsWin         bool
	IsLoss        bool
	IsTie         bool
}
