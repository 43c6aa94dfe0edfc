package layout_test

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/framekit/framekit/config"
	"github.com/framekit/framekit/core/column"
	"github.com/framekit/framekit/core/relation"
	"github.com/framekit/framekit/core/schema"
	"github.com/framekit/framekit/database"
	"github.com/framekit/framekit/layout"
)

func usersSchema() *schema.Schema {
	return schema.New("users",
		schema.F("id", column.New(column.Int64{}, column.PrimaryKey())),
		schema.F("name", column.New(column.String{})),
	)
}

func TestFolderSourceDerivation(t *testing.T) {
	f := layout.NewFolder("Warehouse")
	if got := f.Source(); got != "warehouse" {
		t.Errorf("Source() = %q, want warehouse", got)
	}

	rooted := layout.NewFolder("Warehouse", layout.WithRoot("data"))
	want := filepath.Join("data", "warehouse")
	if got := rooted.Source(); got != want {
		t.Errorf("Source() = %q, want %q", got, want)
	}
}

func TestChildFolderNesting(t *testing.T) {
	root := layout.NewFolder("Warehouse", layout.WithRoot("data"))
	raw := root.Child("Raw")
	daily := raw.Child("Daily")

	want := filepath.Join("data", "warehouse", "raw", "daily")
	if got := daily.Source(); got != want {
		t.Errorf("Source() = %q, want %q", got, want)
	}
}

func TestFilePathDerivation(t *testing.T) {
	f := layout.NewFolder("Warehouse", layout.WithRoot("data"))

	tests := []struct {
		name   string
		format layout.Format
		want   string
	}{
		{"users", layout.CSV, "users.csv"},
		{"users", layout.Parquet, "users.parquet"},
		{"users", layout.NDJSON, "users.ndjson"},
		{"users", layout.JSON, "users.json"},
	}
	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			fl := f.Add(tt.name, tt.format, nil)
			want := filepath.Join("data", "warehouse", tt.want)
			if got := fl.Path(); got != want {
				t.Errorf("Path() = %q, want %q", got, want)
			}
		})
	}
}

func TestAddOverridesInPlace(t *testing.T) {
	f := layout.NewFolder("warehouse")
	f.Add("users", layout.CSV, nil)
	f.Add("events", layout.CSV, nil)
	f.Add("users", layout.Parquet, nil)

	files := f.Files()
	if len(files) != 2 {
		t.Fatalf("files = %d, want 2", len(files))
	}
	if files[0].Name() != "users" || files[0].Format() != layout.Parquet {
		t.Errorf("files[0] = %s %s, want users Parquet", files[0].Name(), files[0].Format())
	}
	if files[1].Name() != "events" {
		t.Errorf("files[1] = %s, want events", files[1].Name())
	}
}

func TestFileScan(t *testing.T) {
	f := layout.NewFolder("warehouse")
	fl := f.Add("users", layout.Parquet, nil)

	want := "read_parquet('" + filepath.Join("warehouse", "users.parquet") + "')"
	if got := fl.Scan().From(); got != want {
		t.Errorf("Scan().From() = %q, want %q", got, want)
	}
}

func TestFileScanCast(t *testing.T) {
	f := layout.NewFolder("warehouse")
	fl := f.Add("users", layout.CSV, usersSchema())

	lazy, err := fl.ScanCast()
	if err != nil {
		t.Fatalf("ScanCast: %v", err)
	}
	q := lazy.Query()
	if !strings.Contains(q, `CAST("id" AS BIGINT) AS "id"`) {
		t.Errorf("cast query = %q", q)
	}
	if !strings.Contains(q, "read_csv(") {
		t.Errorf("cast query does not scan the file: %q", q)
	}
}

func TestFileScanCastWithoutSchema(t *testing.T) {
	f := layout.NewFolder("warehouse")
	fl := f.Add("users", layout.CSV, nil)

	if _, err := fl.ScanCast(); err == nil {
		t.Fatal("ScanCast without a schema did not fail")
	}
}

func TestCopyStmt(t *testing.T) {
	f := layout.NewFolder("warehouse")

	tests := []struct {
		format layout.Format
		opts   string
	}{
		{layout.CSV, "FORMAT CSV, HEADER"},
		{layout.Parquet, "FORMAT PARQUET"},
		{layout.NDJSON, "FORMAT JSON"},
		{layout.JSON, "FORMAT JSON"},
	}
	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			fl := f.Add("users", tt.format, nil)
			got := fl.CopyStmt(relation.Table("users"))
			want := "COPY (SELECT * FROM users) TO '" +
				filepath.Join("warehouse", "users"+tt.format.Ext()) +
				"' (" + tt.opts + ")"
			if got != want {
				t.Errorf("CopyStmt = %q, want %q", got, want)
			}
		})
	}
}

type recordingExecer struct {
	stmts []string
}

func (r *recordingExecer) Exec(_ context.Context, stmt string) error {
	r.stmts = append(r.stmts, stmt)
	return nil
}

func TestWriteCast(t *testing.T) {
	f := layout.NewFolder("warehouse")
	fl := f.Add("users", layout.CSV, usersSchema())

	ex := &recordingExecer{}
	if err := fl.WriteCast(context.Background(), ex, relation.Table("staging")); err != nil {
		t.Fatalf("WriteCast: %v", err)
	}
	if len(ex.stmts) != 1 {
		t.Fatalf("statements = %v, want 1", ex.stmts)
	}
	if !strings.Contains(ex.stmts[0], `CAST("id" AS BIGINT)`) {
		t.Errorf("stmt = %q, missing cast projection", ex.stmts[0])
	}
	if !strings.HasPrefix(ex.stmts[0], "COPY (SELECT * FROM ") {
		t.Errorf("stmt = %q, not a COPY", ex.stmts[0])
	}
}

func TestWriteCastWithoutSchema(t *testing.T) {
	f := layout.NewFolder("warehouse")
	fl := f.Add("users", layout.CSV, nil)

	ex := &recordingExecer{}
	if err := fl.WriteCast(context.Background(), ex, relation.Table("staging")); err == nil {
		t.Fatal("WriteCast without a schema did not fail")
	}
	if len(ex.stmts) != 0 {
		t.Errorf("statements executed despite missing schema: %v", ex.stmts)
	}
}

func TestFromConfig(t *testing.T) {
	cfg := &config.Config{}
	cfg.Source.Root = "data"
	cfg.Database.Suffix = ".duckdb"
	cfg.Logging.Level = "info"
	cfg.Logging.Format = "json"

	f := layout.FromConfig("Warehouse", cfg)
	if got := f.Source(); got != filepath.Join("data", "warehouse") {
		t.Errorf("Source() = %q", got)
	}

	d := f.Database("metrics")
	want := filepath.Join("data", "warehouse", "metrics.duckdb")
	if got := d.Path(); got != want {
		t.Errorf("Path() = %q, want %q", got, want)
	}

	// Children inherit the configured database options.
	c := f.Child("Raw").Database("events")
	want = filepath.Join("data", "warehouse", "raw", "events.duckdb")
	if got := c.Path(); got != want {
		t.Errorf("child Path() = %q, want %q", got, want)
	}
}

func TestFromConfigExplicitOptionWins(t *testing.T) {
	cfg := &config.Config{}
	cfg.Source.Root = "data"
	cfg.Database.Suffix = ".duckdb"

	f := layout.FromConfig("warehouse", cfg)
	d := f.Database("metrics", database.WithSuffix(".ddb"))
	want := filepath.Join("data", "warehouse", "metrics.ddb")
	if got := d.Path(); got != want {
		t.Errorf("Path() = %q, want %q", got, want)
	}
}

func TestDatabaseInheritsFolderSource(t *testing.T) {
	f := layout.NewFolder("Warehouse", layout.WithRoot("data"))
	d := f.Database("metrics")

	want := filepath.Join("data", "warehouse", "metrics.ddb")
	if got := d.Path(); got != want {
		t.Errorf("Path() = %q, want %q", got, want)
	}
}

func TestTree(t *testing.T) {
	root := layout.NewFolder("warehouse")
	root.Add("users", layout.CSV, nil)
	raw := root.Child("raw")
	raw.Add("events", layout.Parquet, nil)

	want := "warehouse/\n" +
		"  users.csv\n" +
		"  raw/\n" +
		"    events.parquet\n"
	if got := root.Tree(); got != want {
		t.Errorf("Tree() = %q, want %q", got, want)
	}
}
