// Package schema builds named, ordered column registries and derives their
// constraint metadata. Schemas are constructed once and are immutable; a
// derived schema is produced by an explicit Extend, never by mutation.
package schema

import (
	"strings"

	"github.com/framekit/framekit/core/column"
)

// Field is a named column declaration, the unit of schema construction.
type Field struct {
	Name   string
	Column column.Column
}

// F is shorthand for a field declaration.
func F(name string, col column.Column) Field {
	return Field{Name: name, Column: col}
}

// Schema is a named, ordered, immutable mapping from column name to column
// descriptor, with derived key constraints.
type Schema struct {
	name  string
	order []string
	cols  map[string]column.Column
	keys  Keys
}

// Keys holds the constraint column sets derived from a schema. A nil slice
// means no column declared that constraint.
type Keys struct {
	Primary []string
	Unique  []string
}

// New builds a schema from ordered field declarations. A name declared twice
// keeps its first slot and takes the last descriptor, mirroring the merge
// rule used by Extend.
func New(name string, fields ...Field) *Schema {
	s := &Schema{
		name: name,
		cols: make(map[string]column.Column, len(fields)),
	}
	s.merge(fields)
	s.keys = deriveKeys(s)
	return s
}

// Extend builds a derived schema: the base's columns come first in their
// original order, re-declared names override the base descriptor in place,
// and new names append at the end. The base is not modified and no column
// descriptor is shared between the two schemas.
func Extend(name string, base *Schema, fields ...Field) *Schema {
	s := &Schema{
		name:  name,
		order: append([]string(nil), base.order...),
		cols:  make(map[string]column.Column, len(base.cols)+len(fields)),
	}
	for n, c := range base.cols {
		s.cols[n] = c
	}
	s.merge(fields)
	s.keys = deriveKeys(s)
	return s
}

func (s *Schema) merge(fields []Field) {
	for _, f := range fields {
		if _, exists := s.cols[f.Name]; !exists {
			s.order = append(s.order, f.Name)
		}
		s.cols[f.Name] = f.Column.Named(f.Name)
	}
}

func deriveKeys(s *Schema) Keys {
	var k Keys
	for _, name := range s.order {
		c := s.cols[name]
		if c.IsPrimaryKey() {
			k.Primary = append(k.Primary, name)
		}
		if c.IsUnique() {
			k.Unique = append(k.Unique, name)
		}
	}
	return k
}

// Name returns the schema name.
func (s *Schema) Name() string { return s.name }

// Len returns the number of columns.
func (s *Schema) Len() int { return len(s.order) }

// Columns returns the columns in declaration order.
func (s *Schema) Columns() []column.Column {
	out := make([]column.Column, len(s.order))
	for i, name := range s.order {
		out[i] = s.cols[name]
	}
	return out
}

// ColumnNames returns the column names in declaration order.
func (s *Schema) ColumnNames() []string {
	return append([]string(nil), s.order...)
}

// Column returns the named column and whether it exists.
func (s *Schema) Column(name string) (column.Column, bool) {
	c, ok := s.cols[name]
	return c, ok
}

// Keys returns the derived constraint column sets.
func (s *Schema) Keys() Keys { return s.keys }

// SQLSchema renders the comma-joined column definition list used in
// CREATE TABLE statements.
func (s *Schema) SQLSchema() string {
	defs := make([]string, len(s.order))
	for i, name := range s.order {
		defs[i] = s.cols[name].Def()
	}
	return strings.Join(defs, ", ")
}
