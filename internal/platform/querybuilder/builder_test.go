package querybuilder

import "testing"

func TestSelect_WhereOrderLimit(t *testing.T) {
	query, args, err := Select("*").
		From("standings").
		Where(Eq("league_key", "449.l.1234"), IsNull("deleted_at")).
		OrderBy("rank", "team_key").
		Limit(12).
		ToSQL()
	if err != nil {
		t.Fatalf("build select: %v", err)
	}

	want := "SELECT * FROM standings WHERE league_key = $1 AND deleted_at IS NULL ORDER BY rank, team_key LIMIT 12"
	if query != want {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", want, query)
	}
	if len(args) != 1 || args[0] != "449.l.1234" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelect_InCondition(t *testing.T) {
	query, args, err := Select("team_key").
		From("teams").
		Where(In("league_key", []any{"449.l.1", "449.l.2"})).
		ToSQL()
	if err != nil {
		t.Fatalf("build select: %v", err)
	}

	want := "SELECT team_key FROM teams WHERE league_key IN ($1, $2)"
	if query != want {
		t.Fatalf("unexpected query: %s", query)
	}
	if len(args) != 2 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelect_EmptyInMatchesNothing(t *testing.T) {
	query, args, err := Select("team_key").
		From("teams").
		Where(In("league_key", nil)).
		ToSQL()
	if err != nil {
		t.Fatalf("build select: %v", err)
	}

	want := "SELECT team_key FROM teams WHERE 1=0"
	if query != want {
		t.Fatalf("unexpected query: %s", query)
	}
	if len(args) != 0 {
		t.Fatalf("expected no args, got %+v", args)
	}
}

func TestInsert_MultiRowWithConflictSuffix(t *testing.T) {
	query, args, err := InsertInto("teams").
		Columns("team_key", "league_key", "name").
		Values("449.l.1234.t.1", "449.l.1234", "Mud Dogs").
		Values("449.l.1234.t.2", "449.l.1234", "Average Joes").
		Suffix("ON CONFLICT (league_key, team_key) DO NOTHING").
		ToSQL()
	if err != nil {
		t.Fatalf("build insert: %v", err)
	}

	want := "INSERT INTO teams (team_key, league_key, name) VALUES ($1, $2, $3), ($4, $5, $6) ON CONFLICT (league_key, team_key) DO NOTHING"
	if query != want {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", want, query)
	}
	if len(args) != 6 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsert_RowWidthMismatch(t *testing.T) {
	_, _, err := InsertInto("teams").
		Columns("team_key", "league_key").
		Values("449.l.1234.t.1").
		ToSQL()
	if err == nil {
		t.Fatal("expected error for row width mismatch")
	}
}

func TestUpdate_SoftDelete(t *testing.T) {
	query, args, err := Update("matchup_entries").
		SetExpr("deleted_at", "NOW()").
		Where(Eq("league_key", "449.l.1234"), IsNull("deleted_at")).
		ToSQL()
	if err != nil {
		t.Fatalf("build update: %v", err)
	}

	want := "UPDATE matchup_entries SET deleted_at = NOW() WHERE league_key = $1 AND deleted_at IS NULL"
	if query != want {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", want, query)
	}
	if len(args) != 1 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestUpdate_SetAndExprPlaceholderNumbering(t *testing.T) {
	query, args, err := Update("leagues").
		Set("name", "Renamed League").
		SetExpr("num_teams", "num_teams + ?", 2).
		Where(Eq("league_key", "449.l.1234")).
		ToSQL()
	if err != nil {
		t.Fatalf("build update: %v", err)
	}

	want := "UPDATE leagues SET name = $1, num_teams = num_teams + $2 WHERE league_key = $3"
	if query != want {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", want, query)
	}
	if len(args) != 3 || args[1] != 2 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertModel(t *testing.T) {
	type row struct {
		TeamKey   string `db:"team_key"`
		LeagueKey string `db:"league_key"`
		Ignored   string `db:"-"`
		NoTag     string
	}

	query, args, err := InsertModel("teams", row{TeamKey: "449.l.1234.t.1", LeagueKey: "449.l.1234", Ignored: "x", NoTag: "y"}, "")
	if err != nil {
		t.Fatalf("build insert from model: %v", err)
	}

	want := "INSERT INTO teams (team_key, league_key) VALUES ($1, $2)"
	if query != want {
		t.Fatalf("unexpected query: %s", query)
	}
	if len(args) != 2 || args[0] != "449.l.1234.t.1" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertModel_NoColumns(t *testing.T) {
	type empty struct {
		NoTag string
	}
	if _, _, err := InsertModel("teams", empty{}, ""); err == nil {
		t.Fatal("expected error for model without db columns")
	}
}
