package querybuilder

import "testing"

func TestSelect_ToSQL(t *testing.T) {
	t.Parallel()

	query, args, err := Select("season", "team", "wins").
		From("season_standings").
		Where(Eq("season", 2024)).
		OrderBy("win_pct DESC", "team").
		Limit(5).
		ToSQL()
	if err != nil {
		t.Fatalf("build select: %v", err)
	}

	want := "SELECT season, team, wins FROM season_standings WHERE season = $1 ORDER BY win_pct DESC, team LIMIT 5"
	if query != want {
		t.Fatalf("unexpected query:\ngot:  %s\nwant: %s", query, want)
	}
	if len(args) != 1 || args[0] != 2024 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelect_InConditionEmptyValues(t *testing.T) {
	t.Parallel()

	query, args, err := Select("team").
		From("game_outcomes").
		Where(In("season", nil)).
		ToSQL()
	if err != nil {
		t.Fatalf("build select: %v", err)
	}

	want := "SELECT team FROM game_outcomes WHERE 1=0"
	if query != want {
		t.Fatalf("unexpected query: %s", query)
	}
	if len(args) != 0 {
		t.Fatalf("expected no args, got %+v", args)
	}
}

func TestInsert_ToSQLWithSuffix(t *testing.T) {
	t.Parallel()

	query, args, err := InsertInto("team_realignment").
		Columns("team", "conference").
		Values("DAL", "People").
		Suffix("ON CONFLICT (team) DO NOTHING").
		ToSQL()
	if err != nil {
		t.Fatalf("build insert: %v", err)
	}

	want := "INSERT INTO team_realignment (team, conference) VALUES ($1, $2) ON CONFLICT (team) DO NOTHING"
	if query != want {
		t.Fatalf("unexpected query: %s", query)
	}
	if len(args) != 2 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsert_RowLengthMismatch(t *testing.T) {
	t.Parallel()

	if _, _, err := InsertInto("scrape_logs").
		Columns("success", "records_updated").
		Values(true).
		ToSQL(); err == nil {
		t.Fatalf("expected error for row length mismatch")
	}
}

func TestInsertModel_UsesDBTags(t *testing.T) {
	t.Parallel()

	model := struct {
		Team    string `db:"team"`
		Skipped string `db:"-"`
		Wins    int    `db:"wins"`
	}{Team: "KC", Skipped: "x", Wins: 11}

	query, args, err := InsertModel("season_standings", model, "")
	if err != nil {
		t.Fatalf("build insert model: %v", err)
	}

	want := "INSERT INTO season_standings (team, wins) VALUES ($1, $2)"
	if query != want {
		t.Fatalf("unexpected query: %s", query)
	}
	if len(args) != 2 || args[0] != "KC" || args[1] != 11 {
		t.Fatalf("unexpected args: %+v", args)
	}
}
