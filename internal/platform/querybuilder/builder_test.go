package querybuilder

import "testing"

func TestSelectBuilder(t *testing.T) {
	query, args, err := Select("school_public_id", "week").
		From("school_weekly_points").
		Where(Eq("season_public_id", "s2025"), Eq("week", 15)).
		OrderBy("school_public_id").
		Limit(25).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT school_public_id, week FROM school_weekly_points WHERE season_public_id = $1 AND week = $2 ORDER BY school_public_id LIMIT 25"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != "s2025" || args[1] != 15 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilder_RangeConditions(t *testing.T) {
	query, args, err := Select("*").
		From("roster_periods").
		Where(Lte("start_week", 10), IsNull("end_week")).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT * FROM roster_periods WHERE start_week <= $1 AND end_week IS NULL"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 1 || args[0] != 10 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertBuilder_MultiRow(t *testing.T) {
	query, args, err := InsertInto("school_weekly_points").
		Columns("school_public_id", "week", "total").
		Values("bama", 1, 5).
		Values("uga", 1, 2).
		ToSQL()
	if err != nil {
		t.Fatalf("build insert query: %v", err)
	}

	wantQuery := "INSERT INTO school_weekly_points (school_public_id, week, total) VALUES ($1, $2, $3), ($4, $5, $6)"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 6 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertModels(t *testing.T) {
	type row struct {
		SchoolID string `db:"school_public_id"`
		Week     int    `db:"week"`
	}

	query, args, err := InsertModels("school_weekly_points", []row{
		{SchoolID: "bama", Week: 3},
		{SchoolID: "osu", Week: 3},
	}, "")
	if err != nil {
		t.Fatalf("build insert models query: %v", err)
	}

	wantQuery := "INSERT INTO school_weekly_points (school_public_id, week) VALUES ($1, $2), ($3, $4)"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 4 || args[0] != "bama" || args[2] != "osu" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestUpdateBuilder(t *testing.T) {
	query, args, err := Update("fantasy_teams").
		Set("total_points", 42.5).
		SetExpr("updated_at", "NOW()").
		Where(Eq("public_id", "team-1")).
		ToSQL()
	if err != nil {
		t.Fatalf("build update query: %v", err)
	}

	wantQuery := "UPDATE fantasy_teams SET total_points = $1, updated_at = NOW() WHERE public_id = $2"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != 42.5 || args[1] != "team-1" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestDeleteBuilder(t *testing.T) {
	query, args, err := DeleteFrom("school_weekly_points").
		Where(Eq("season_public_id", "s2025"), Eq("week", 17)).
		ToSQL()
	if err != nil {
		t.Fatalf("build delete query: %v", err)
	}

	wantQuery := "DELETE FROM school_weekly_points WHERE season_public_id = $1 AND week = $2"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestDeleteBuilder_RequiresWhere(t *testing.T) {
	if _, _, err := DeleteFrom("school_weekly_points").ToSQL(); err == nil {
		t.Fatal("expected error for delete without conditions")
	}
}
