// Package app provides the application context and dependency management
// for the moviemap CLI. It centralizes configuration, logging and the
// lifecycle of the moviemap client the commands share.
package app

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/agentstation/moviemap"
	"github.com/agentstation/moviemap/internal/appcontext"
	"github.com/agentstation/moviemap/internal/cmd/output"
	"github.com/agentstation/moviemap/pkg/catalog"
	"github.com/agentstation/moviemap/pkg/errors"
)

// Ensure App implements appcontext.Interface at compile time.
var _ appcontext.Interface = (*App)(nil)

// App represents the moviemap application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	// Configuration
	config *Config

	// Logger
	logger *zerolog.Logger

	// Client instance (lazy-initialized, singleton). clientFor records the
	// database and policy it was built for; it is empty for injected clients.
	mu        sync.RWMutex
	client    moviemap.Client
	clientFor string
}

// New creates a new App instance with the given version information.
// Configuration is loaded from the environment and config files and can be
// replaced with functional options.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
	}

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	if app.config == nil {
		config, err := LoadConfig()
		if err != nil {
			return nil, err
		}
		app.config = config
	}

	if app.logger == nil {
		logger := NewLogger(app.config)
		app.logger = &logger
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string {
	return a.builtBy
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// OutputFormat returns the configured format, or one detected from the
// terminal when none is configured.
func (a *App) OutputFormat() output.Format {
	return output.DetectFormat(a.config.Format)
}

// Quiet reports whether -q or quiet was set.
func (a *App) Quiet() bool {
	return a.config.Quiet
}

// Client returns the moviemap client, creating it lazily if needed.
// This is thread-safe and ensures only one instance is created.
func (a *App) Client() (moviemap.Client, error) {
	a.mu.RLock()
	if a.client != nil {
		c := a.client
		a.mu.RUnlock()
		return c, nil
	}
	a.mu.RUnlock()

	a.mu.Lock()
	defer a.mu.Unlock()

	// Double-check after acquiring write lock
	if a.client != nil {
		return a.client, nil
	}

	policy, err := catalog.ParseDuplicatePolicy(a.config.DuplicatePolicy)
	if err != nil {
		return nil, errors.NewConfigError("duplicate_policy", "expected exact, substring or none", err)
	}

	c, err := moviemap.New(
		moviemap.WithDatabasePath(a.config.Database),
		moviemap.WithDuplicatePolicy(policy),
		moviemap.WithLogger(a.logger),
	)
	if err != nil {
		return nil, err
	}

	a.client = c
	a.clientFor = a.clientKey()
	return c, nil
}

// clientKey identifies the settings a lazily built client depends on.
func (a *App) clientKey() string {
	return a.config.Database + "|" + a.config.DuplicatePolicy
}

// resetStaleClient closes a lazily built client whose database or policy no
// longer matches the config.
func (a *App) resetStaleClient() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.client == nil || a.clientFor == "" || a.clientFor == a.clientKey() {
		return nil
	}
	err := a.client.Close()
	a.client = nil
	a.clientFor = ""
	return err
}

// Catalog returns the catalog of the default client.
func (a *App) Catalog() (*catalog.Catalog, error) {
	c, err := a.Client()
	if err != nil {
		return nil, err
	}
	return c.Catalog(), nil
}

// Shutdown closes the client if one was created.
func (a *App) Shutdown(_ context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.client == nil {
		return nil
	}
	err := a.client.Close()
	a.client = nil
	return err
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration instead of loading one.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		if err := config.Validate(); err != nil {
			return err
		}
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}

// WithClient sets a custom client (useful for testing).
func WithClient(c moviemap.Client) Option {
	return func(a *App) error {
		a.client = c
		return nil
	}
}
