package schema

import "github.com/framekit/framekit/core/relation"

// Cast projects the input relation to exactly the schema's declared columns,
// each wrapped in a strict cast to its declared type, in declaration order.
// Extra input columns are dropped by the projection; a missing column or an
// unconvertible value fails at execution time and is propagated unmodified.
func (s *Schema) Cast(rel relation.Relation) relation.Lazy {
	return s.cast(rel, true)
}

// CastLenient is Cast with non-strict semantics: unconvertible or
// out-of-range values become NULL instead of failing. Explicit opt-in only.
func (s *Schema) CastLenient(rel relation.Relation) relation.Lazy {
	return s.cast(rel, false)
}

func (s *Schema) cast(rel relation.Relation, strict bool) relation.Lazy {
	exprs := make([]string, len(s.order))
	for i, name := range s.order {
		exprs[i] = s.cols[name].CastExpr(strict)
	}
	return relation.Select(rel, exprs...)
}
