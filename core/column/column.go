package column

import "fmt"

// Column is an immutable typed column descriptor. The name is bound exactly
// once, when the enclosing schema is constructed; a zero name means the
// column has not been placed in a schema yet.
type Column struct {
	name       string
	typ        Type
	primaryKey bool
	unique     bool
	nullable   bool
}

// Option configures a column at construction time.
type Option func(*Column)

// PrimaryKey marks the column as part of the table's primary key.
func PrimaryKey() Option {
	return func(c *Column) { c.primaryKey = true }
}

// Unique adds a uniqueness constraint to the column.
func Unique() Option {
	return func(c *Column) { c.unique = true }
}

// NotNull forbids NULL values in the column.
func NotNull() Option {
	return func(c *Column) { c.nullable = false }
}

// New builds an unnamed column descriptor.
// Columns are nullable unless NotNull is given.
func New(t Type, opts ...Option) Column {
	c := Column{typ: t, nullable: true}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// Named returns a copy of the column bound to name. It is called by the
// schema builder when the column is placed; the receiver is not modified.
func (c Column) Named(name string) Column {
	c.name = name
	return c
}

// Name returns the bound column name.
func (c Column) Name() string { return c.name }

// Type returns the column's logical type.
func (c Column) Type() Type { return c.typ }

// IsPrimaryKey reports whether the column is part of the primary key.
func (c Column) IsPrimaryKey() bool { return c.primaryKey }

// IsUnique reports whether the column carries a uniqueness constraint.
func (c Column) IsUnique() bool { return c.unique }

// IsNullable reports whether the column accepts NULL values.
func (c Column) IsNullable() bool { return c.nullable }

// Ident returns the double-quoted SQL identifier for the column.
func (c Column) Ident() string {
	return `"` + c.name + `"`
}

// Def renders the SQL column definition fragment, including constraint
// keywords derived from the flags.
func (c Column) Def() string {
	def := c.Ident() + " " + c.typ.SQL()
	if c.primaryKey {
		def += " PRIMARY KEY"
	}
	if c.unique {
		def += " UNIQUE"
	}
	if !c.nullable {
		def += " NOT NULL"
	}
	return def
}

// CastExpr renders the cast expression selecting this column at its declared
// type. Strict casts fail on unconvertible values; lenient casts null them.
func (c Column) CastExpr(strict bool) string {
	fn := "CAST"
	if !strict {
		fn = "TRY_CAST"
	}
	return fmt.Sprintf("%s(%s AS %s) AS %s", fn, c.Ident(), c.typ.SQL(), c.Ident())
}
