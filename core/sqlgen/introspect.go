package sqlgen

import (
	"fmt"
	"strings"
)

// Read-only introspection queries against the engine's system catalog.

// ShowTables lists the tables in the database.
func ShowTables() string { return "SHOW TABLES" }

// ShowSchemas lists the schemas in the database.
func ShowSchemas() string { return "SELECT * FROM information_schema.schemata" }

// ShowTypes lists all data types, including user-defined ENUMs.
func ShowTypes() string { return "SELECT * FROM duckdb_types()" }

// ShowViews lists the views in the database.
func ShowViews() string { return "SELECT * FROM duckdb_views()" }

// ShowSettings lists the settings of the current session.
func ShowSettings() string { return "SELECT * FROM duckdb_settings()" }

// AllConstraints lists every table constraint in the database.
func AllConstraints() string {
	return "SELECT * FROM information_schema.table_constraints"
}

// Describe returns the column layout of a table.
func Describe(table string) string {
	return fmt.Sprintf("DESCRIBE %s", table)
}

// Summarize returns per-column statistics for a table.
func Summarize(table string) string {
	return fmt.Sprintf("SUMMARIZE %s", table)
}

func quoteLiteral(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// ColumnsSchema returns the information_schema rows for a table's columns.
func ColumnsSchema(table string) string {
	return fmt.Sprintf(
		"SELECT * FROM information_schema.columns WHERE table_name = %s",
		quoteLiteral(table))
}

// TableConstraints returns the declared constraints of a table with the
// columns they cover.
func TableConstraints(table string) string {
	return fmt.Sprintf(
		"SELECT constraint_name, constraint_type, usage.column_name "+
			"FROM information_schema.table_constraints "+
			"JOIN information_schema.key_column_usage AS usage USING (constraint_name, table_name) "+
			"WHERE table_name = %s",
		quoteLiteral(table))
}
