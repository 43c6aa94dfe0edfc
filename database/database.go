// Package database binds schemas to tables in an embedded analytical
// database and manages the connection lifecycle of the layout.
//
// A Database owns exactly one live connection. It is not safe for concurrent
// use: callers are responsible for not running two operations against the
// same instance at the same time.
package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/framekit/framekit/adapters/duckdb"
	"github.com/framekit/framekit/core/schema"
	"github.com/framekit/framekit/core/sqlgen"
)

// ErrNotConnected reports an operation invoked while the enclosing database
// has no open connection. It signals a programming error: operations never
// open an ad hoc connection on their own.
var ErrNotConnected = errors.New("database not connected")

// Conn is the connection surface the layout needs from a driver.
// *sql.DB satisfies it.
type Conn interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	Close() error
}

// Opener opens the engine database file at path.
type Opener func(path string) (Conn, error)

// Database is a named collection of table entries sharing one connection.
type Database struct {
	name    string
	dir     string
	suffix  string
	path    string
	order   []string
	tables  map[string]*Table
	open    Opener
	log     zerolog.Logger
	metrics *Metrics

	// Connection guard: depth counts nested Connect/With scopes so an
	// inner scope never closes an outer scope's connection.
	depth  int
	conn   Conn
	connID string
}

// Option configures a database layout at construction time.
type Option func(*Database)

// WithDir sets the directory holding the database file.
func WithDir(dir string) Option {
	return func(d *Database) { d.dir = dir }
}

// WithSuffix sets the database file suffix (default: .ddb).
func WithSuffix(suffix string) Option {
	return func(d *Database) { d.suffix = suffix }
}

// WithPath sets the full database file path, overriding the derived one.
func WithPath(path string) Option {
	return func(d *Database) { d.path = path }
}

// WithLogger sets the logger. The default logger is disabled.
func WithLogger(log zerolog.Logger) Option {
	return func(d *Database) { d.log = log }
}

// WithOpener sets the driver opener. The default opens an embedded DuckDB
// file with default settings.
func WithOpener(open Opener) Option {
	return func(d *Database) { d.open = open }
}

// WithSettings sets the engine settings used by the default opener.
func WithSettings(s duckdb.Settings) Option {
	return func(d *Database) {
		d.open = func(path string) (Conn, error) { return duckdb.Open(path, s) }
	}
}

// WithMetrics enables statement metrics.
func WithMetrics(m *Metrics) Option {
	return func(d *Database) { d.metrics = m }
}

// WithTable declares a table entry. Declaration order is preserved; a name
// declared twice keeps its slot and takes the last schema.
func WithTable(name string, s *schema.Schema) Option {
	return func(d *Database) { d.addTable(name, s) }
}

// New builds a database layout. The database file path defaults to
// <name>.ddb in the current directory.
func New(name string, opts ...Option) *Database {
	d := &Database{
		name:   name,
		suffix: ".ddb",
		tables: make(map[string]*Table),
		log:    zerolog.Nop(),
	}
	d.open = func(path string) (Conn, error) {
		return duckdb.Open(path, duckdb.Settings{})
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Extend builds a derived layout: the base's tables come first in their
// original order, re-declared names override in place, new names append.
// Table entries are never shared; each layout binds its own.
func Extend(name string, base *Database, opts ...Option) *Database {
	d := New(name)
	d.dir = base.dir
	d.suffix = base.suffix
	d.open = base.open
	d.log = base.log
	d.metrics = base.metrics
	for _, tn := range base.order {
		d.addTable(tn, base.tables[tn].schema)
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *Database) addTable(name string, s *schema.Schema) {
	if _, exists := d.tables[name]; !exists {
		d.order = append(d.order, name)
	}
	d.tables[name] = &Table{name: name, schema: s, db: d}
}

// Name returns the layout name.
func (d *Database) Name() string { return d.name }

// Path returns the database file path: the explicit path if one was given,
// otherwise <dir>/<name><suffix>.
func (d *Database) Path() string {
	if d.path != "" {
		return d.path
	}
	return filepath.Join(d.dir, d.name+d.suffix)
}

// Table returns the named table entry.
func (d *Database) Table(name string) (*Table, bool) {
	t, ok := d.tables[name]
	return t, ok
}

// Tables returns the table entries in declaration order.
func (d *Database) Tables() []*Table {
	out := make([]*Table, len(d.order))
	for i, name := range d.order {
		out[i] = d.tables[name]
	}
	return out
}

// Connected reports whether the layout holds an open connection.
func (d *Database) Connected() bool { return d.depth > 0 }

// Connect opens the connection, or joins the already-open one. Every
// Connect must be paired with a Close; only the outermost pair actually
// opens and closes the engine connection.
func (d *Database) Connect() error {
	if d.depth > 0 {
		d.depth++
		return nil
	}
	conn, err := d.open(d.Path())
	if err != nil {
		return fmt.Errorf("connect database %s: %w", d.name, err)
	}
	d.conn = conn
	d.connID = uuid.NewString()
	d.depth = 1
	d.log.Debug().
		Str("database", d.name).
		Str("path", d.Path()).
		Str("conn_id", d.connID).
		Msg("connection opened")
	return nil
}

// Close releases one Connect. The engine connection closes when the
// outermost scope exits. Closing an already-closed database is a no-op.
func (d *Database) Close() error {
	if d.depth == 0 {
		return nil
	}
	d.depth--
	if d.depth > 0 {
		return nil
	}
	err := d.conn.Close()
	d.conn = nil
	d.log.Debug().
		Str("database", d.name).
		Str("conn_id", d.connID).
		Msg("connection closed")
	d.connID = ""
	if err != nil {
		return fmt.Errorf("close database %s: %w", d.name, err)
	}
	return nil
}

// With runs fn inside a connection scope. The connection is released on
// every exit path, including a panic or an error from fn; fn's error takes
// precedence, but a failed release surfaces when fn succeeded.
func (d *Database) With(fn func(*Database) error) (err error) {
	if err := d.Connect(); err != nil {
		return err
	}
	defer func() {
		if cerr := d.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return fn(d)
}

// Exec executes a statement on the open connection.
func (d *Database) Exec(ctx context.Context, stmt string) error {
	if d.conn == nil {
		return fmt.Errorf("database %s: %w", d.name, ErrNotConnected)
	}
	start := time.Now()
	_, err := d.conn.ExecContext(ctx, stmt)
	d.metrics.observe(d.name, "", "exec", time.Since(start), err)
	if err != nil {
		return fmt.Errorf("exec on database %s: %w", d.name, err)
	}
	return nil
}

// Query runs a read-only statement and returns its rows.
func (d *Database) Query(ctx context.Context, query string) (*sql.Rows, error) {
	if d.conn == nil {
		return nil, fmt.Errorf("database %s: %w", d.name, ErrNotConnected)
	}
	start := time.Now()
	rows, err := d.conn.QueryContext(ctx, query)
	d.metrics.observe(d.name, "", "query", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("query on database %s: %w", d.name, err)
	}
	return rows, nil
}

// ShowTables lists the tables in the database.
func (d *Database) ShowTables(ctx context.Context) (*sql.Rows, error) {
	return d.Query(ctx, sqlgen.ShowTables())
}

// ShowSchemas lists the schemas in the database.
func (d *Database) ShowSchemas(ctx context.Context) (*sql.Rows, error) {
	return d.Query(ctx, sqlgen.ShowSchemas())
}

// ShowTypes lists all data types, including user-defined ENUMs.
func (d *Database) ShowTypes(ctx context.Context) (*sql.Rows, error) {
	return d.Query(ctx, sqlgen.ShowTypes())
}

// ShowViews lists the views in the database.
func (d *Database) ShowViews(ctx context.Context) (*sql.Rows, error) {
	return d.Query(ctx, sqlgen.ShowViews())
}

// ShowSettings lists the settings of the current session.
func (d *Database) ShowSettings(ctx context.Context) (*sql.Rows, error) {
	return d.Query(ctx, sqlgen.ShowSettings())
}

// AllConstraints lists every table constraint in the database.
func (d *Database) AllConstraints(ctx context.Context) (*sql.Rows, error) {
	return d.Query(ctx, sqlgen.AllConstraints())
}

// DropType drops a user-defined type, typically an ENUM. Cascade drops
// dependent objects instead of erroring on them.
func (d *Database) DropType(ctx context.Context, name string, cascade bool) error {
	return d.Exec(ctx, sqlgen.DropType(name, cascade))
}
