// Package layout derives filesystem locations for file entries and nested
// folders. A folder's source directory is its lower-cased name joined under
// its parent's source, recursively; a file's path is its entry name plus the
// format extension under the enclosing folder's source.
package layout

import (
	"path/filepath"
	"strings"

	"github.com/framekit/framekit/database"
)

// Folder is a named collection of file entries and child folders.
type Folder struct {
	name     string
	source   string
	order    []string
	files    map[string]*File
	children map[string]*Folder

	// dbOpts are prepended to every database built under this folder.
	// Children inherit them.
	dbOpts []database.Option
}

// FolderOption configures a folder at construction time.
type FolderOption func(*Folder)

// WithRoot sets the parent directory the folder's source is derived under.
func WithRoot(dir string) FolderOption {
	return func(f *Folder) { f.source = filepath.Join(dir, strings.ToLower(f.name)) }
}

// NewFolder builds a root folder. Its source defaults to the lower-cased
// folder name in the current directory.
func NewFolder(name string, opts ...FolderOption) *Folder {
	f := &Folder{
		name:     name,
		source:   strings.ToLower(name),
		files:    make(map[string]*File),
		children: make(map[string]*Folder),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Child builds and registers a nested folder whose source is this folder's
// source joined with the child's lower-cased name. The child inherits the
// folder's database options.
func (f *Folder) Child(name string) *Folder {
	c := NewFolder(name, WithRoot(f.source))
	c.dbOpts = f.dbOpts
	if _, exists := f.children[name]; !exists {
		f.order = append(f.order, name)
	}
	f.children[name] = c
	return c
}

// Name returns the folder name.
func (f *Folder) Name() string { return f.name }

// Source returns the folder's derived directory.
func (f *Folder) Source() string { return f.source }

// File returns the named file entry.
func (f *Folder) File(name string) (*File, bool) {
	fl, ok := f.files[name]
	return fl, ok
}

// Files returns the file entries in declaration order.
func (f *Folder) Files() []*File {
	var out []*File
	for _, name := range f.order {
		if fl, ok := f.files[name]; ok {
			out = append(out, fl)
		}
	}
	return out
}

// Database builds a database layout whose file lives in this folder's
// source directory. The folder's database options apply first, so explicit
// opts override them.
func (f *Folder) Database(name string, opts ...database.Option) *database.Database {
	all := make([]database.Option, 0, 1+len(f.dbOpts)+len(opts))
	all = append(all, database.WithDir(f.source))
	all = append(all, f.dbOpts...)
	all = append(all, opts...)
	return database.New(name, all...)
}
