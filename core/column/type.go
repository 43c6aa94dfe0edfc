// Package column defines the typed column descriptors that make up a schema.
// Each logical data type knows how to render itself as a DuckDB SQL type and
// as a canonical dtype name; composite types delegate to their inner types.
package column

import (
	"fmt"
	"strings"
)

// Type is a logical column data type.
// Implementations are immutable value types.
type Type interface {
	// SQL returns the DuckDB type name for this type.
	SQL() string

	// String returns the canonical dtype name (lowercase, stable).
	String() string
}

// TimeUnit is the sub-second resolution of a Datetime type.
type TimeUnit string

const (
	Nanoseconds  TimeUnit = "ns"
	Microseconds TimeUnit = "us"
	Milliseconds TimeUnit = "ms"
)

// Bool is a boolean type.
type Bool struct{}

func (Bool) SQL() string    { return "BOOLEAN" }
func (Bool) String() string { return "bool" }

// String is a variable-length text type.
type String struct{}

func (String) SQL() string    { return "VARCHAR" }
func (String) String() string { return "str" }

// Date is a calendar date without a time component.
type Date struct{}

func (Date) SQL() string    { return "DATE" }
func (Date) String() string { return "date" }

// Datetime is a timestamp with optional time zone.
// A zero Unit means microseconds, DuckDB's native resolution.
type Datetime struct {
	Unit TimeUnit
	Zone string
}

func (d Datetime) SQL() string {
	if d.Zone == "" {
		return "TIMESTAMP"
	}
	return "TIMESTAMP WITH TIME ZONE"
}

func (d Datetime) String() string {
	unit := d.Unit
	if unit == "" {
		unit = Microseconds
	}
	if d.Zone == "" {
		return fmt.Sprintf("datetime[%s]", unit)
	}
	return fmt.Sprintf("datetime[%s, %s]", unit, d.Zone)
}

// Float32 is a 32-bit floating point type.
type Float32 struct{}

func (Float32) SQL() string    { return "FLOAT" }
func (Float32) String() string { return "f32" }

// Float64 is a 64-bit floating point type.
type Float64 struct{}

func (Float64) SQL() string    { return "DOUBLE" }
func (Float64) String() string { return "f64" }

// Int8 is a signed 8-bit integer type.
type Int8 struct{}

func (Int8) SQL() string    { return "TINYINT" }
func (Int8) String() string { return "i8" }

// Int16 is a signed 16-bit integer type.
type Int16 struct{}

func (Int16) SQL() string    { return "SMALLINT" }
func (Int16) String() string { return "i16" }

// Int32 is a signed 32-bit integer type.
type Int32 struct{}

func (Int32) SQL() string    { return "INTEGER" }
func (Int32) String() string { return "i32" }

// Int64 is a signed 64-bit integer type.
type Int64 struct{}

func (Int64) SQL() string    { return "BIGINT" }
func (Int64) String() string { return "i64" }

// Int128 is a signed 128-bit integer type.
type Int128 struct{}

func (Int128) SQL() string    { return "HUGEINT" }
func (Int128) String() string { return "i128" }

// UInt8 is an unsigned 8-bit integer type.
type UInt8 struct{}

func (UInt8) SQL() string    { return "UTINYINT" }
func (UInt8) String() string { return "u8" }

// UInt16 is an unsigned 16-bit integer type.
type UInt16 struct{}

func (UInt16) SQL() string    { return "USMALLINT" }
func (UInt16) String() string { return "u16" }

// UInt32 is an unsigned 32-bit integer type.
type UInt32 struct{}

func (UInt32) SQL() string    { return "UINTEGER" }
func (UInt32) String() string { return "u32" }

// UInt64 is an unsigned 64-bit integer type.
type UInt64 struct{}

func (UInt64) SQL() string    { return "UBIGINT" }
func (UInt64) String() string { return "u64" }

// UInt128 is an unsigned 128-bit integer type.
type UInt128 struct{}

func (UInt128) SQL() string    { return "UHUGEINT" }
func (UInt128) String() string { return "u128" }

// Decimal is a fixed-point decimal type. Precision zero renders the bare
// DECIMAL type and leaves precision to the engine.
type Decimal struct {
	Precision int
	Scale     int
}

func (d Decimal) SQL() string {
	if d.Precision == 0 {
		return "DECIMAL"
	}
	return fmt.Sprintf("DECIMAL(%d, %d)", d.Precision, d.Scale)
}

func (d Decimal) String() string {
	if d.Precision == 0 {
		return "decimal"
	}
	return fmt.Sprintf("decimal[%d,%d]", d.Precision, d.Scale)
}

// Array is a fixed-shape array type. Dims holds one extent per dimension;
// the SQL type appends one bracket group per dimension, in order.
type Array struct {
	Inner Type
	Dims  []int
}

// ArrayOf builds a one-dimensional array type.
func ArrayOf(inner Type, size int) Array {
	return Array{Inner: inner, Dims: []int{size}}
}

func (a Array) SQL() string {
	var b strings.Builder
	b.WriteString(a.Inner.SQL())
	for _, d := range a.Dims {
		fmt.Fprintf(&b, "[%d]", d)
	}
	return b.String()
}

func (a Array) String() string {
	dims := make([]string, len(a.Dims))
	for i, d := range a.Dims {
		dims[i] = fmt.Sprintf("%d", d)
	}
	return fmt.Sprintf("array[%s; %s]", a.Inner, strings.Join(dims, ","))
}

// StructField is one named field of a Struct type.
type StructField struct {
	Name string
	Type Type
}

// Struct is a nested record type. Field order is declaration order and is
// preserved in the SQL rendering.
type Struct struct {
	Fields []StructField
}

// StructOf builds a struct type from ordered fields.
func StructOf(fields ...StructField) Struct {
	return Struct{Fields: fields}
}

func (s Struct) SQL() string {
	parts := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		parts[i] = f.Name + " " + f.Type.SQL()
	}
	return "STRUCT(" + strings.Join(parts, ", ") + ")"
}

func (s Struct) String() string {
	parts := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		parts[i] = f.Name + ": " + f.Type.String()
	}
	return "struct{" + strings.Join(parts, ", ") + "}"
}

// List is a variable-length list type. Nested lists accumulate one bracket
// pair per nesting level.
type List struct {
	Inner Type
}

// ListOf builds a list type.
func ListOf(inner Type) List {
	return List{Inner: inner}
}

func (l List) SQL() string    { return l.Inner.SQL() + "[]" }
func (l List) String() string { return "list[" + l.Inner.String() + "]" }

// Categorical is a dictionary-encoded string type. DuckDB has no native
// categorical type, so it is stored as VARCHAR.
type Categorical struct{}

func (Categorical) SQL() string    { return "VARCHAR" }
func (Categorical) String() string { return "cat" }

// Enum is a string type restricted to a fixed category set. A true engine
// ENUM needs a separate CREATE TYPE statement, which is table-level concern,
// so the column type renders as VARCHAR.
type Enum struct {
	Categories []string
}

// EnumOf builds an enum type from the values of any string-kinded constants,
// deduplicated in first-seen order.
func EnumOf[T ~string](categories ...T) Enum {
	seen := make(map[string]bool, len(categories))
	out := make([]string, 0, len(categories))
	for _, c := range categories {
		v := string(c)
		if seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return Enum{Categories: out}
}

func (Enum) SQL() string { return "VARCHAR" }

func (e Enum) String() string {
	return "enum[" + strings.Join(e.Categories, ", ") + "]"
}
