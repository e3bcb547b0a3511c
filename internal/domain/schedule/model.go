package schedule

import (
	"strings"
	"time"
)

const GameTypeRegular = "REG"

// RawGame is one scheduled game as published by the upstream schedule feed.
// Scores are nil until the game has been played.
type RawGame struct {
	Season    int
	GameType  string
	Gameday   time.Time
	Gametime  string
	HomeTeam  string
	AwayTeam  string
	HomeScore *int
	AwayScore *int
}

// Completed reports whether the game is a finished regular-season game,
// i.e. the only kind that contributes to standings.
func (g RawGame) Completed() bool {
	return NormalizeGameType(g.GameType) == GameTypeRegular &&
		g.HomeScore != nil && g.AwayScore != nil
}

func NormalizeGameType(value string) string {
	return strings.ToUpper(strings.TrimSpace(value))
}
