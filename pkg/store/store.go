// Package store persists a movie collection. Every call is a whole-collection
// read or a whole-collection overwrite: there are no partial updates, no
// indexes and no locks. Callers must serialise access to a given resource;
// two writers racing on the same file lose one of the updates.
package store

import (
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/agentstation/moviemap/pkg/logging"
	"github.com/agentstation/moviemap/pkg/movies"
)

// Store is the durable-persistence boundary for a movie collection.
type Store interface {
	// Load reads the full collection. A resource that does not exist yet
	// yields an empty collection and no error.
	Load() (movies.Collection, error)

	// Save replaces the stored collection with c.
	Save(c movies.Collection) error

	// Path names the backing resource.
	Path() string

	// Close releases any resources held by the store.
	Close() error
}

// Option configures a Store.
type Option func(*options)

type options struct {
	logger *zerolog.Logger
}

// WithLogger sets the logger used for load/save diagnostics.
func WithLogger(logger *zerolog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

func newOptions(opts []Option) *options {
	o := &options{logger: logging.Default()}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Open returns the store backend matching the extension of path:
// .db, .sqlite and .sqlite3 open a SQLite store, .yaml and .yml a YAML file
// store, and anything else a JSON file store.
func Open(path string, opts ...Option) (Store, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return NewSQLiteStore(path, opts...), nil
	case ".yaml", ".yml":
		return NewFileStore(path, YAML, opts...), nil
	default:
		return NewFileStore(path, JSON, opts...), nil
	}
}
