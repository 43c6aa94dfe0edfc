package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/framekit/framekit/core/relation"
	"github.com/framekit/framekit/core/schema"
	"github.com/framekit/framekit/core/sqlgen"
)

// ErrNoKeys reports an operation that needs declared key columns on a schema
// that has none.
var ErrNoKeys = errors.New("no primary keys defined in schema")

// Table binds a schema to a table in the enclosing database. It borrows the
// database's connection for the connection's lifetime and never owns one.
type Table struct {
	name   string
	schema *schema.Schema
	db     *Database
}

// Name returns the table name.
func (t *Table) Name() string { return t.name }

// Schema returns the bound schema.
func (t *Table) Schema() *schema.Schema { return t.schema }

// Rel returns the table as a composable relation. Pure; needs no connection.
func (t *Table) Rel() relation.Relation {
	return relation.Table(t.name)
}

func (t *Table) exec(ctx context.Context, verb, stmt string) error {
	if t.db.conn == nil {
		return fmt.Errorf("%s on table %s: %w", verb, t.name, ErrNotConnected)
	}
	start := time.Now()
	_, err := t.db.conn.ExecContext(ctx, stmt)
	t.db.metrics.observe(t.db.name, t.name, verb, time.Since(start), err)
	t.db.log.Debug().
		Str("database", t.db.name).
		Str("table", t.name).
		Str("verb", verb).
		Err(err).
		Msg("statement executed")
	if err != nil {
		return fmt.Errorf("%s on table %s: %w", verb, t.name, err)
	}
	return nil
}

func (t *Table) query(ctx context.Context, verb, stmt string) (*sql.Rows, error) {
	if t.db.conn == nil {
		return nil, fmt.Errorf("%s on table %s: %w", verb, t.name, ErrNotConnected)
	}
	start := time.Now()
	rows, err := t.db.conn.QueryContext(ctx, stmt)
	t.db.metrics.observe(t.db.name, t.name, verb, time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("%s on table %s: %w", verb, t.name, err)
	}
	return rows, nil
}

// cast runs the input through the schema's strict cast and returns the
// FROM-clause source for the generated statement.
func (t *Table) cast(rel relation.Relation) string {
	return t.schema.Cast(rel).From()
}

// Scan reads the whole table.
func (t *Table) Scan(ctx context.Context) (*sql.Rows, error) {
	return t.query(ctx, "scan", relation.Select(t.Rel()).Query())
}

// ScanCast reads the whole table through the schema's cast projection.
func (t *Table) ScanCast(ctx context.Context) (*sql.Rows, error) {
	return t.query(ctx, "scan_cast", t.schema.Cast(t.Rel()).Query())
}

// Describe returns the column layout of the table.
func (t *Table) Describe(ctx context.Context) (*sql.Rows, error) {
	return t.query(ctx, "describe", sqlgen.Describe(t.name))
}

// Summarize returns per-column statistics for the table.
func (t *Table) Summarize(ctx context.Context) (*sql.Rows, error) {
	return t.query(ctx, "summarize", sqlgen.Summarize(t.name))
}

// Constraints returns the declared constraints of the table.
func (t *Table) Constraints(ctx context.Context) (*sql.Rows, error) {
	return t.query(ctx, "constraints", sqlgen.TableConstraints(t.name))
}

// CreateFrom creates the table from the relation. Fails if the table
// already exists.
func (t *Table) CreateFrom(ctx context.Context, rel relation.Relation) error {
	return t.exec(ctx, "create_from", sqlgen.CreateFrom(t.name, t.cast(rel)))
}

// CreateOrReplaceFrom creates or replaces the table from the relation, then
// re-declares the schema's primary key and unique constraints, which the
// CTAS form drops.
func (t *Table) CreateOrReplaceFrom(ctx context.Context, rel relation.Relation) error {
	if err := t.exec(ctx, "create_or_replace", sqlgen.CreateOrReplace(t.name, t.cast(rel))); err != nil {
		return err
	}
	keys := t.schema.Keys()
	if len(keys.Primary) > 0 {
		if err := t.exec(ctx, "add_primary_key", sqlgen.AddPrimaryKey(t.name, keys.Primary...)); err != nil {
			return err
		}
	}
	for _, u := range keys.Unique {
		if err := t.exec(ctx, "add_unique", sqlgen.AddUnique(t.name, u)); err != nil {
			return err
		}
	}
	return nil
}

// Append inserts the relation's rows. Fails if the table is missing or on
// any constraint violation; the engine error surfaces unmodified.
func (t *Table) Append(ctx context.Context, rel relation.Relation) error {
	return t.exec(ctx, "append", sqlgen.InsertInto(t.name, t.cast(rel)))
}

// InsertOrIgnore inserts the relation's rows, silently dropping rows that
// conflict on a key.
func (t *Table) InsertOrIgnore(ctx context.Context, rel relation.Relation) error {
	return t.exec(ctx, "insert_or_ignore", sqlgen.InsertOrIgnore(t.name, t.cast(rel)))
}

// InsertOrReplace inserts the relation's rows, replacing rows that conflict
// on a key.
func (t *Table) InsertOrReplace(ctx context.Context, rel relation.Relation) error {
	return t.exec(ctx, "insert_or_replace", sqlgen.InsertOrReplace(t.name, t.cast(rel)))
}

// InsertOnConflictUpdate upserts with an explicit conflict target resolved
// from the schema: primary keys first, unique columns as fallback. Fails
// before touching the engine when neither is declared.
func (t *Table) InsertOnConflictUpdate(ctx context.Context, rel relation.Relation) error {
	keys, err := t.schema.OnConflict(t.name)
	if err != nil {
		return err
	}
	stmt := sqlgen.InsertOnConflictUpdate(t.name, t.cast(rel), t.schema.ColumnNames(), keys)
	return t.exec(ctx, "insert_on_conflict_update", stmt)
}

// InsertIfNotExists inserts only the rows whose primary key values are not
// already present. The schema must declare a primary key.
func (t *Table) InsertIfNotExists(ctx context.Context, rel relation.Relation) error {
	keys := t.schema.Keys().Primary
	if len(keys) == 0 {
		return fmt.Errorf("insert_if_not_exists on table %s: %w", t.name, ErrNoKeys)
	}
	return t.exec(ctx, "insert_if_not_exists", sqlgen.InsertIfNotExists(t.name, t.cast(rel), keys))
}

// Truncate removes all rows, keeping the table definition.
func (t *Table) Truncate(ctx context.Context) error {
	return t.exec(ctx, "truncate", sqlgen.Truncate(t.name))
}

// Drop drops the table. Fails if it does not exist.
func (t *Table) Drop(ctx context.Context) error {
	return t.exec(ctx, "drop", sqlgen.Drop(t.name))
}

// DropIfExists drops the table if it exists.
func (t *Table) DropIfExists(ctx context.Context) error {
	return t.exec(ctx, "drop_if_exists", sqlgen.DropIfExists(t.name))
}
