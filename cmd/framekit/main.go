// Package main is the framekit database inspector.
// It runs read-only introspection queries against an embedded database file.
package main

import (
	"database/sql"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/framekit/framekit/adapters/duckdb"
	"github.com/framekit/framekit/config"
	"github.com/framekit/framekit/core/sqlgen"
)

var (
	version   = "dev"
	commit    = "none"
	buildDate = "unknown"
)

func main() {
	configPath := flag.String("config", "", "Path to configuration file")
	dbPath := flag.String("db", "", "Path to the database file")
	showVersion := flag.Bool("version", false, "Show version and exit")
	tables := flag.Bool("tables", false, "List tables")
	describe := flag.String("describe", "", "Describe a table")
	summarize := flag.String("summarize", "", "Summarize a table")
	constraints := flag.String("constraints", "", "Show a table's constraints")
	query := flag.String("query", "", "Run an arbitrary read-only query")
	flag.Parse()

	if *showVersion {
		fmt.Printf("framekit %s (commit: %s, built: %s)\n", version, commit, buildDate)
		os.Exit(0)
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	if *dbPath == "" {
		fmt.Fprintln(os.Stderr, "error: -db is required")
		flag.Usage()
		os.Exit(1)
	}

	settings := cfg.Database.Settings
	settings.ReadOnly = true
	db, err := duckdb.Open(*dbPath, settings)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	stmt := ""
	switch {
	case *tables:
		stmt = sqlgen.ShowTables()
	case *describe != "":
		stmt = sqlgen.Describe(*describe)
	case *summarize != "":
		stmt = sqlgen.Summarize(*summarize)
	case *constraints != "":
		stmt = sqlgen.TableConstraints(*constraints)
	case *query != "":
		stmt = *query
	default:
		fmt.Fprintln(os.Stderr, "error: nothing to do (use -tables, -describe, -summarize, -constraints or -query)")
		flag.Usage()
		os.Exit(1)
	}

	if err := run(db, stmt); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(db *sql.DB, stmt string) error {
	rows, err := db.Query(stmt)
	if err != nil {
		return fmt.Errorf("query: %w", err)
	}
	defer rows.Close()
	return print(rows)
}

func print(rows *sql.Rows) error {
	cols, err := rows.Columns()
	if err != nil {
		return fmt.Errorf("columns: %w", err)
	}
	fmt.Println(strings.Join(cols, "\t"))

	values := make([]any, len(cols))
	ptrs := make([]any, len(cols))
	for i := range values {
		ptrs[i] = &values[i]
	}

	for rows.Next() {
		if err := rows.Scan(ptrs...); err != nil {
			return fmt.Errorf("scan row: %w", err)
		}
		cells := make([]string, len(values))
		for i, v := range values {
			if v == nil {
				cells[i] = "NULL"
				continue
			}
			cells[i] = fmt.Sprintf("%v", v)
		}
		fmt.Println(strings.Join(cells, "\t"))
	}
	return rows.Err()
}
