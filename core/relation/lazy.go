package relation

import (
	"fmt"
	"strings"
)

// Lazy is a composed SELECT over a relation. It is itself a Relation, so
// projections and filters stack without executing anything.
type Lazy struct {
	exprs  []string
	source string
	where  []string
	limit  int
}

// Select projects expressions over a relation. With no expressions the
// projection is SELECT *.
func Select(rel Relation, exprs ...string) Lazy {
	return Lazy{exprs: exprs, source: rel.From()}
}

// Where appends a filter condition. Conditions are AND-joined.
func (l Lazy) Where(cond string) Lazy {
	l.where = append(append([]string(nil), l.where...), cond)
	return l
}

// Limit caps the number of rows. Zero means no limit.
func (l Lazy) Limit(n int) Lazy {
	l.limit = n
	return l
}

// Query renders the final SELECT statement.
func (l Lazy) Query() string {
	cols := "*"
	if len(l.exprs) > 0 {
		cols = strings.Join(l.exprs, ", ")
	}
	q := fmt.Sprintf("SELECT %s FROM %s", cols, l.source)
	if len(l.where) > 0 {
		q += " WHERE " + strings.Join(l.where, " AND ")
	}
	if l.limit > 0 {
		q += fmt.Sprintf(" LIMIT %d", l.limit)
	}
	return q
}

// From returns the Lazy as a parenthesized subquery source.
func (l Lazy) From() string { return "(" + l.Query() + ")" }
