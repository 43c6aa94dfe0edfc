// Package sqlgen generates the SQL statements executed against the embedded
// engine. Everything here is pure string templating: no connection, no I/O.
//
// Column identifiers are double-quoted wherever they are interpolated. Table
// names are not quoted; callers providing table names that need quoting is a
// known, accepted limitation.
package sqlgen

import (
	"fmt"
	"strings"
)

func joinKeys(keys []string) string {
	quoted := make([]string, len(keys))
	for i, k := range keys {
		quoted[i] = `"` + k + `"`
	}
	return strings.Join(quoted, ", ")
}

// Create builds a CREATE TABLE statement from a schema definition list.
func Create(table, schemaSQL string) string {
	return fmt.Sprintf("CREATE TABLE %s (%s)", table, schemaSQL)
}

// CreateIfNotExists builds a CREATE TABLE IF NOT EXISTS statement.
func CreateIfNotExists(table, schemaSQL string) string {
	return fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (%s)", table, schemaSQL)
}

// CreateFrom builds a CTAS statement. Fails at execution if the table exists.
func CreateFrom(table, source string) string {
	return fmt.Sprintf("CREATE TABLE %s AS SELECT * FROM %s", table, source)
}

// CreateOrReplace builds a replacing CTAS statement. CTAS drops declared
// constraints, so callers re-add keys with AddPrimaryKey and AddUnique.
func CreateOrReplace(table, source string) string {
	return fmt.Sprintf("CREATE OR REPLACE TABLE %s AS SELECT * FROM %s", table, source)
}

// AddPrimaryKey builds the ALTER TABLE statement declaring the primary key.
func AddPrimaryKey(table string, keys ...string) string {
	return fmt.Sprintf("ALTER TABLE %s ADD PRIMARY KEY (%s)", table, joinKeys(keys))
}

// AddUnique builds the ALTER TABLE statement declaring a unique constraint.
func AddUnique(table string, keys ...string) string {
	return fmt.Sprintf("ALTER TABLE %s ADD UNIQUE (%s)", table, joinKeys(keys))
}

// InsertInto builds a plain INSERT. Constraint violations surface as engine
// errors.
func InsertInto(table, source string) string {
	return fmt.Sprintf("INSERT INTO %s SELECT * FROM %s", table, source)
}

// InsertOrIgnore builds an INSERT that silently drops conflicting rows.
func InsertOrIgnore(table, source string) string {
	return fmt.Sprintf("INSERT OR IGNORE INTO %s SELECT * FROM %s", table, source)
}

// InsertOrReplace builds an INSERT that replaces conflicting rows using the
// engine's native replace-on-conflict.
func InsertOrReplace(table, source string) string {
	return fmt.Sprintf("INSERT OR REPLACE INTO %s SELECT * FROM %s", table, source)
}

// InsertOnConflictUpdate builds an upsert with an explicit conflict target.
// Every column outside the key set is updated from the incoming row; when
// all columns are keys the statement degrades to DO NOTHING.
func InsertOnConflictUpdate(table, source string, columns, keys []string) string {
	keySet := make(map[string]bool, len(keys))
	for _, k := range keys {
		keySet[k] = true
	}
	var updates []string
	for _, c := range columns {
		if keySet[c] {
			continue
		}
		updates = append(updates, fmt.Sprintf(`"%s" = excluded."%s"`, c, c))
	}
	action := "DO NOTHING"
	if len(updates) > 0 {
		action = "DO UPDATE SET " + strings.Join(updates, ", ")
	}
	return fmt.Sprintf("INSERT INTO %s SELECT * FROM %s ON CONFLICT (%s) %s",
		table, source, joinKeys(keys), action)
}

// InsertIfNotExists builds an INSERT that skips rows whose key values are
// already present. Keys must be non-empty; the caller validates that.
func InsertIfNotExists(table, source string, keys []string) string {
	conds := make([]string, len(keys))
	for i, k := range keys {
		conds[i] = fmt.Sprintf(`%s."%s" = src."%s"`, table, k, k)
	}
	return fmt.Sprintf(
		"INSERT INTO %s SELECT * FROM %s AS src WHERE NOT EXISTS (SELECT 1 FROM %s WHERE %s)",
		table, source, table, strings.Join(conds, " AND "))
}

// Truncate builds a TRUNCATE statement.
func Truncate(table string) string {
	return fmt.Sprintf("TRUNCATE TABLE %s", table)
}

// Drop builds a DROP TABLE statement that fails on a missing table.
func Drop(table string) string {
	return fmt.Sprintf("DROP TABLE %s", table)
}

// DropIfExists builds a DROP TABLE IF EXISTS statement.
func DropIfExists(table string) string {
	return fmt.Sprintf("DROP TABLE IF EXISTS %s", table)
}

// CreateEnumType builds the CREATE TYPE statement for an engine-native ENUM.
func CreateEnumType(name string, categories []string) string {
	quoted := make([]string, len(categories))
	for i, c := range categories {
		quoted[i] = "'" + strings.ReplaceAll(c, "'", "''") + "'"
	}
	return fmt.Sprintf("CREATE TYPE %s AS ENUM (%s)", name, strings.Join(quoted, ", "))
}

// DropType builds the DROP TYPE statement for a custom type. Cascade drops
// dependent objects instead of erroring on them.
func DropType(name string, cascade bool) string {
	modifier := "RESTRICT"
	if cascade {
		modifier = "CASCADE"
	}
	return fmt.Sprintf("DROP TYPE IF EXISTS %s %s", name, modifier)
}
