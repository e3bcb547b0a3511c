package standing

import (
	"testing"
	"time"

	"github.com/statfield/nfl-standings/internal/domain/gamescore"
	"github.com/statfield/nfl-standings/internal/domain/realignment"
)

func testLookup() realignment.Lookup {
	return realignment.BuildLookup([]realignment.TeamRealignment{
		{Team: "CIN", Conference: "Animals", Division: "Cats", Name: "Bengals"},
		{Team: "DET", Conference: "Animals", Division: "Cats", Name: "Lions"},
		{Team: "CHI", Conference: "Animals", Division: "North America", Name: "Bears"},
	})
}

func outcome(season int, team, opponent string, score, oppScore int) gamescore.Outcome {
	return gamescore.Outcome{
		Season:        season,
		Gameday:       time.Date(season, 10, 1, 0, 0, 0, 0, time.UTC),
		Team:          team,
		Opponent:      opponent,
		Score:         score,
		OpponentScore: oppScore,
		IsWin:         score > oppScore,
		IsLoss:        score < oppScore,
		IsTie:         score == oppScore,
	}
}

func findTeam(t *testing.T, standings []SeasonStanding, team string) SeasonStanding {
	t.Helper()
	for _, row := range standings {
		if row.Team == team {
			return row
		}
	}
	t.Fatalf("team %s not found in %+v", team, standings)
	return SeasonStanding{}
}

func TestAggregate_CountsAndWinPct(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 11, 1, 12, 0, 0, 0, time.UTC)
	outcomes := []gamescore.Outcome{
		outcome(2024, "CIN", "DET", 24, 17),
		outcome(2024, "DET", "CIN", 17, 24),
		outcome(2024, "CIN", "CHI", 20, 20),
		outcome(2024, "CHI", "CIN", 20, 20),
	}

	standings := Aggregate(outcomes, testLookup(), now)
	if len(standings) != 3 {
		t.Fatalf("expected 3 teams, got %d", len(standings))
	}

	cin := findTeam(t, standings, "CIN")
	if cin.Wins != 1 || cin.Losses != 0 || cin.Ties != 1 {
		t.Fatalf("unexpected CIN record: %+v", cin)
	}
	if cin.WinPct != 0.75 {
		t.Fatalf("expected CIN win_pct 0.75, got %v", cin.WinPct)
	}
	if cin.InDivisionWins != 1 || cin.InDivisionTies != 0 {
		t.Fatalf("unexpected CIN in-division record: %+v", cin)
	}
	if !cin.LastUpdated.Equal(now) {
		t.Fatalf("expected last_updated %v, got %v", now, cin.LastUpdated)
	}

	chi := findTeam(t, standings, "CHI")
	if chi.Ties != 1 || chi.WinPct != 0.5 {
		t.Fatalf("expected CHI tie with win_pct 0.5, got %+v", chi)
	}
	if chi.InDivisionWins+chi.InDivisionLosses+chi.InDivisionTies != 0 {
		t.Fatalf("cross-division game counted as in-division: %+v", chi)
	}
}

func TestAggregate_InDivisionSubsetOfOverall(t *testing.T) {
	t.Parallel()

	outcomes := []gamescore.Outcome{
		outcome(2023, "DET", "CIN", 31, 28),
		outcome(2023, "DET", "CHI", 14, 21),
		outcome(2023, "DET", "CIN", 10, 10),
	}

	standings := Aggregate(outcomes, testLookup(), time.Now())
	det := findTeam(t, standings, "DET")

	if det.Wins != 1 || det.Losses != 1 || det.Ties != 1 {
		t.Fatalf("unexpected DET record: %+v", det)
	}
	division := det.InDivisionWins + det.InDivisionLosses + det.InDivisionTies
	overall := det.Wins + det.Losses + det.Ties
	if division > overall {
		t.Fatalf("in-division games exceed overall: %+v", det)
	}
	if det.InDivisionWins != 1 || det.InDivisionTies != 1 || det.InDivisionLosses != 0 {
		t.Fatalf("unexpected DET in-division record: %+v", det)
	}
}

func TestAggregate_UnknownOpponentNotInDivision(t *testing.T) {
	t.Parallel()

	outcomes := []gamescore.Outcome{
		outcome(2024, "CIN", "OAK", 27, 10),
		outcome(2024, "OAK", "CIN", 10, 27),
	}

	standings := Aggregate(outcomes, testLookup(), time.Now())

	cin := findTeam(t, standings, "CIN")
	if cin.Wins != 1 || cin.InDivisionWins != 0 {
		t.Fatalf("game against unmapped team counted as in-division: %+v", cin)
	}

	oak := findTeam(t, standings, "OAK")
	if oak.Losses != 1 || oak.InDivisionLosses != 0 {
		t.Fatalf("unmapped team should still get an overall record: %+v", oak)
	}
}

func TestAggregate_SortedBySeasonThenTeam(t *testing.T) {
	t.Parallel()

	outcomes := []gamescore.Outcome{
		outcome(2024, "DET", "CHI", 20, 10),
		outcome(2023, "CIN", "CHI", 13, 6),
		outcome(2024, "CHI", "DET", 10, 20),
	}

	standings := Aggregate(outcomes, testLookup(), time.Now())
	if len(standings) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(standings))
	}
	if standings[0].Season != 2023 || standings[0].Team != "CIN" {
		t.Fatalf("unexpected first row: %+v", standings[0])
	}
	if standings[1].Team != "CHI" || standings[2].Team != "DET" {
		t.Fatalf("rows not sorted by team within season: %+v", standings)
	}
}

func TestWinPct_ZeroGames(t *testing.T) {
	t.Parallel()

	if got := WinPct(0, 0, 0); got != 0.0 {
		t.Fatalf("expected 0.0 for no games, got %v", got)
	}
	if got := WinPct(2, 1, 1); got != 0.625 {
		t.Fatalf("expected 0.625, got %v", got)
	}
}
