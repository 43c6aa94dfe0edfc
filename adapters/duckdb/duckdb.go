// Package duckdb opens embedded DuckDB databases through database/sql.
package duckdb

import (
	"database/sql"
	"fmt"

	_ "github.com/marcboeker/go-duckdb/v2"
)

// Settings configures an engine connection. Zero values leave the engine
// defaults in place.
type Settings struct {
	// MemoryLimit caps engine memory, e.g. "4GB".
	MemoryLimit string `yaml:"memory_limit,omitempty"`

	// Threads is the number of worker threads.
	Threads int `yaml:"threads,omitempty"`

	// ReadOnly opens the database file in read-only mode.
	ReadOnly bool `yaml:"read_only,omitempty"`
}

// Open opens the database file at path, creating it if absent, and applies
// the settings to the session.
func Open(path string, s Settings) (*sql.DB, error) {
	dsn := path
	if s.ReadOnly {
		dsn += "?access_mode=read_only"
	}
	db, err := sql.Open("duckdb", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// One live connection per layout instance.
	db.SetMaxOpenConns(1)

	var settings []string
	if s.MemoryLimit != "" {
		settings = append(settings, fmt.Sprintf("SET memory_limit = '%s'", s.MemoryLimit))
	}
	if s.Threads > 0 {
		settings = append(settings, fmt.Sprintf("SET threads = %d", s.Threads))
	}
	for _, stmt := range settings {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("apply setting: %w", err)
		}
	}

	return db, nil
}

// OpenMemory opens a transient in-memory database.
func OpenMemory() (*sql.DB, error) {
	return Open("", Settings{})
}
