// Package appcontext provides the shared application context interface
// used by all commands, so command packages depend on an interface rather
// than on the concrete App.
package appcontext

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/moviemap"
	"github.com/agentstation/moviemap/internal/cmd/output"
	"github.com/agentstation/moviemap/pkg/catalog"
)

// Interface defines the application context that commands need.
// The App struct from cmd/moviemap/app implements it.
type Interface interface {
	// Client returns the moviemap client, creating it lazily if needed.
	Client() (moviemap.Client, error)

	// Catalog returns the catalog of the default client.
	Catalog() (*catalog.Catalog, error)

	// Logger returns the configured logger instance.
	Logger() *zerolog.Logger

	// OutputFormat returns the resolved output format.
	OutputFormat() output.Format

	// Quiet reports whether informational messages should be suppressed.
	Quiet() bool

	// Version returns the application version string.
	Version() string

	// Commit returns the git commit hash.
	Commit() string

	// Date returns the build date.
	Date() string

	// BuiltBy returns the build system identifier.
	BuiltBy() string
}
