package relation_test

import (
	"testing"
	"time"

	"github.com/framekit/framekit/core/relation"
)

func TestTableFrom(t *testing.T) {
	if got := relation.Table("sales").From(); got != "sales" {
		t.Errorf("From() = %q, want sales", got)
	}
}

func TestSQLFrom(t *testing.T) {
	got := relation.SQL("SELECT 1 AS x").From()
	if got != "(SELECT 1 AS x)" {
		t.Errorf("From() = %q", got)
	}
}

func TestFileScans(t *testing.T) {
	tests := []struct {
		name string
		rel  relation.Relation
		want string
	}{
		{"csv", relation.CSVFile("data/users.csv"), "read_csv('data/users.csv')"},
		{"parquet", relation.ParquetFile("data/users.parquet"), "read_parquet('data/users.parquet')"},
		{"ndjson", relation.NDJSONFile("data/users.ndjson"), "read_ndjson('data/users.ndjson')"},
		{"json", relation.JSONFile("data/users.json"), "read_json('data/users.json')"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rel.From(); got != tt.want {
				t.Errorf("From() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFileScanQuotesPath(t *testing.T) {
	got := relation.CSVFile("it's.csv").From()
	if got != "read_csv('it''s.csv')" {
		t.Errorf("From() = %q", got)
	}
}

func TestRowsFrom(t *testing.T) {
	rel := relation.Rows(
		[]string{"id", "name"},
		[]any{1, "Alice"},
		[]any{2, nil},
	)
	want := `(VALUES (1, 'Alice'), (2, NULL)) AS rows("id", "name")`
	if got := rel.From(); got != want {
		t.Errorf("From() = %q, want %q", got, want)
	}
}

func TestRowsEmptyFrom(t *testing.T) {
	rel := relation.Rows([]string{"id", "amount"})
	want := `(SELECT NULL AS "id", NULL AS "amount" WHERE false)`
	if got := rel.From(); got != want {
		t.Errorf("From() = %q, want %q", got, want)
	}
}

func TestLiteral(t *testing.T) {
	day := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	stamp := time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)

	tests := []struct {
		name string
		in   any
		want string
	}{
		{"nil", nil, "NULL"},
		{"true", true, "TRUE"},
		{"false", false, "FALSE"},
		{"string", "o'hare", "'o''hare'"},
		{"int", 42, "42"},
		{"negative", int64(-7), "-7"},
		{"float", 2.5, "2.5"},
		{"date", day, "DATE '2024-03-01'"},
		{"timestamp", stamp, "TIMESTAMP '2024-03-01 12:30:00.000000'"},
		{"list", []any{1, 2, 3}, "[1, 2, 3]"},
		{"string list", []string{"a", "b"}, "['a', 'b']"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := relation.Literal(tt.in); got != tt.want {
				t.Errorf("Literal(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestLazyQuery(t *testing.T) {
	l := relation.Select(relation.Table("sales"), `"id"`, `"amount"`).
		Where(`"amount" > 10`).
		Limit(5)

	want := `SELECT "id", "amount" FROM sales WHERE "amount" > 10 LIMIT 5`
	if got := l.Query(); got != want {
		t.Errorf("Query() = %q, want %q", got, want)
	}
}

func TestLazyStarSelect(t *testing.T) {
	l := relation.Select(relation.Table("sales"))
	if got := l.Query(); got != "SELECT * FROM sales" {
		t.Errorf("Query() = %q", got)
	}
}

func TestLazyComposes(t *testing.T) {
	inner := relation.Select(relation.Table("sales"), `"id"`)
	outer := relation.Select(inner)

	want := `SELECT * FROM (SELECT "id" FROM sales)`
	if got := outer.Query(); got != want {
		t.Errorf("Query() = %q, want %q", got, want)
	}
}

func TestLazyWhereDoesNotMutate(t *testing.T) {
	base := relation.Select(relation.Table("sales"))
	a := base.Where(`"x" = 1`)
	b := base.Where(`"y" = 2`)

	if a.Query() == b.Query() {
		t.Errorf("branched filters share state: %q", a.Query())
	}
	if got := base.Query(); got != "SELECT * FROM sales" {
		t.Errorf("base mutated: %q", got)
	}
}
