package schema

import "fmt"

// ConflictError reports that a conflict target could not be resolved for a
// table because its schema declares neither a primary key nor a unique
// column.
type ConflictError struct {
	Table string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf(
		"cannot resolve conflict target for table %q: define a primary key or a single unique column in its schema",
		e.Table)
}

// OnConflict resolves the column set to use as the SQL conflict target for
// upsert operations on the named table. Primary keys win over unique columns
// when both are declared; a composite primary key is returned whole.
func (s *Schema) OnConflict(table string) ([]string, error) {
	if len(s.keys.Primary) > 0 {
		return append([]string(nil), s.keys.Primary...), nil
	}
	if len(s.keys.Unique) > 0 {
		return append([]string(nil), s.keys.Unique...), nil
	}
	return nil, &ConflictError{Table: table}
}
