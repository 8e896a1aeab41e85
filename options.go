package moviemap

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/moviemap/pkg/catalog"
	"github.com/agentstation/moviemap/pkg/constants"
	"github.com/agentstation/moviemap/pkg/errors"
	"github.com/agentstation/moviemap/pkg/logging"
	"github.com/agentstation/moviemap/pkg/store"
)

// options holds the configuration for a Client.
type options struct {
	databasePath    string
	store           store.Store
	duplicatePolicy catalog.DuplicatePolicy
	logger          *zerolog.Logger
}

// Option is a function that configures a Client.
type Option func(*options) error

// defaults returns the default options.
func defaults() *options {
	return &options{
		databasePath:    constants.DefaultDatabaseFile,
		duplicatePolicy: catalog.DuplicateExact,
		logger:          logging.Default(),
	}
}

// apply applies the given options in order.
func (o *options) apply(opts ...Option) (*options, error) {
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}
	return o, nil
}

// WithDatabasePath sets the file the store is opened from.
func WithDatabasePath(path string) Option {
	return func(o *options) error {
		if path == "" {
			return errors.NewValidationError("database", path, "path cannot be empty")
		}
		o.databasePath = path
		return nil
	}
}

// WithStore uses an existing store instead of opening one. The caller keeps
// ownership of s.
func WithStore(s store.Store) Option {
	return func(o *options) error {
		o.store = s
		return nil
	}
}

// WithDuplicatePolicy sets how AddMovie treats titles already in the catalog.
func WithDuplicatePolicy(p catalog.DuplicatePolicy) Option {
	return func(o *options) error {
		parsed, err := catalog.ParseDuplicatePolicy(string(p))
		if err != nil {
			return err
		}
		o.duplicatePolicy = parsed
		return nil
	}
}

// WithLogger sets the logger shared by the store and the catalog.
func WithLogger(logger *zerolog.Logger) Option {
	return func(o *options) error {
		if logger != nil {
			o.logger = logger
		}
		return nil
	}
}
