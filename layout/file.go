package layout

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/framekit/framekit/core/relation"
	"github.com/framekit/framekit/core/schema"
)

// Format identifies a file entry's on-disk format. The lower-cased name is
// the file extension.
type Format string

const (
	CSV     Format = "CSV"
	Parquet Format = "Parquet"
	NDJSON  Format = "NDJSON"
	JSON    Format = "JSON"
)

// Ext returns the filename extension for the format.
func (f Format) Ext() string {
	return "." + strings.ToLower(string(f))
}

func (f Format) scan(path string) relation.Relation {
	switch f {
	case Parquet:
		return relation.ParquetFile(path)
	case NDJSON:
		return relation.NDJSONFile(path)
	case JSON:
		return relation.JSONFile(path)
	default:
		return relation.CSVFile(path)
	}
}

// copyOptions returns the option list of the COPY TO statement for the
// format.
func (f Format) copyOptions() string {
	switch f {
	case Parquet:
		return "FORMAT PARQUET"
	case NDJSON, JSON:
		return "FORMAT JSON"
	default:
		return "FORMAT CSV, HEADER"
	}
}

// File is a single file entry bound into a folder. Its path is derived from
// the folder's source and its own entry name; the optional schema drives
// cast-on-read and cast-on-write.
type File struct {
	name   string
	path   string
	format Format
	schema *schema.Schema
}

// Add declares a file entry in the folder. Declaration order is preserved;
// re-declaring a name overrides the entry in place.
func (f *Folder) Add(name string, format Format, s *schema.Schema) *File {
	fl := &File{
		name:   name,
		path:   filepath.Join(f.source, name+format.Ext()),
		format: format,
		schema: s,
	}
	if _, exists := f.files[name]; !exists {
		f.order = append(f.order, name)
	}
	f.files[name] = fl
	return fl
}

// Name returns the entry name.
func (f *File) Name() string { return f.name }

// Path returns the derived on-disk path.
func (f *File) Path() string { return f.path }

// Format returns the file format.
func (f *File) Format() Format { return f.format }

// Schema returns the bound schema, if any.
func (f *File) Schema() *schema.Schema { return f.schema }

// Scan returns the lazy relation reading the file through the engine.
func (f *File) Scan() relation.Relation {
	return f.format.scan(f.path)
}

// ScanCast returns the file scan piped through the schema's strict cast.
func (f *File) ScanCast() (relation.Lazy, error) {
	if f.schema == nil {
		return relation.Lazy{}, fmt.Errorf("scan_cast on file %s: no schema bound", f.name)
	}
	return f.schema.Cast(f.Scan()), nil
}

// CopyStmt renders the COPY TO statement writing the relation to the file.
func (f *File) CopyStmt(rel relation.Relation) string {
	return fmt.Sprintf("COPY (SELECT * FROM %s) TO %s (%s)",
		rel.From(), relation.QuoteString(f.path), f.format.copyOptions())
}

// Execer executes a statement; the database layout's engine connection
// satisfies it.
type Execer interface {
	Exec(ctx context.Context, stmt string) error
}

// Write writes the relation to the file through the engine.
func (f *File) Write(ctx context.Context, ex Execer, rel relation.Relation) error {
	if err := ex.Exec(ctx, f.CopyStmt(rel)); err != nil {
		return fmt.Errorf("write file %s: %w", f.path, err)
	}
	return nil
}

// WriteCast casts the relation through the schema before writing.
func (f *File) WriteCast(ctx context.Context, ex Execer, rel relation.Relation) error {
	if f.schema == nil {
		return fmt.Errorf("write_cast on file %s: no schema bound", f.name)
	}
	return f.Write(ctx, ex, f.schema.Cast(rel))
}
