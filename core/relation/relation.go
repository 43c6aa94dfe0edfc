// Package relation models lazy tabular relations as composable SQL sources.
// A Relation is anything that renders to a FROM-clause fragment for the
// embedded engine; nothing in this package performs I/O.
package relation

import (
	"fmt"
	"strings"
)

// Relation is a tabular data source.
type Relation interface {
	// From returns the FROM-clause fragment referencing this relation.
	From() string
}

type tableRef struct{ name string }

// Table references a database table by name.
func Table(name string) Relation {
	return tableRef{name: name}
}

func (t tableRef) From() string { return t.name }

type rawSQL struct{ query string }

// SQL wraps an arbitrary SELECT statement as a relation.
func SQL(query string) Relation {
	return rawSQL{query: query}
}

func (r rawSQL) From() string { return "(" + r.query + ")" }

type fileScan struct {
	fn   string
	path string
}

// CSVFile scans a CSV file through the engine's reader.
func CSVFile(path string) Relation {
	return fileScan{fn: "read_csv", path: path}
}

// ParquetFile scans a Parquet file through the engine's reader.
func ParquetFile(path string) Relation {
	return fileScan{fn: "read_parquet", path: path}
}

// NDJSONFile scans a newline-delimited JSON file through the engine's reader.
func NDJSONFile(path string) Relation {
	return fileScan{fn: "read_ndjson", path: path}
}

// JSONFile scans a JSON file through the engine's reader.
func JSONFile(path string) Relation {
	return fileScan{fn: "read_json", path: path}
}

func (f fileScan) From() string {
	return fmt.Sprintf("%s(%s)", f.fn, QuoteString(f.path))
}

type rows struct {
	columns []string
	values  [][]any
}

// Rows builds an eager in-memory relation from literal rows. Column order
// fixes the positional meaning of every row; with no rows the relation is a
// zero-row source with the same columns.
func Rows(columns []string, values ...[]any) Relation {
	return rows{columns: columns, values: values}
}

func (r rows) From() string {
	idents := make([]string, len(r.columns))
	for i, c := range r.columns {
		idents[i] = `"` + c + `"`
	}
	if len(r.values) == 0 {
		// VALUES needs at least one tuple; an empty batch becomes a
		// zero-row projection of the same column set.
		cols := make([]string, len(r.columns))
		for i, id := range idents {
			cols[i] = "NULL AS " + id
		}
		return fmt.Sprintf("(SELECT %s WHERE false)", strings.Join(cols, ", "))
	}
	tuples := make([]string, len(r.values))
	for i, row := range r.values {
		cells := make([]string, len(row))
		for j, v := range row {
			cells[j] = Literal(v)
		}
		tuples[i] = "(" + strings.Join(cells, ", ") + ")"
	}
	return fmt.Sprintf("(VALUES %s) AS rows(%s)",
		strings.Join(tuples, ", "), strings.Join(idents, ", "))
}

// QuoteString renders a single-quoted SQL string literal.
func QuoteString(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
