package appcontext

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/moviemap"
	"github.com/agentstation/moviemap/internal/cmd/output"
	"github.com/agentstation/moviemap/pkg/catalog"
	"github.com/agentstation/moviemap/pkg/errors"
	"github.com/agentstation/moviemap/pkg/logging"
)

// Mock provides a mock implementation of Interface for testing.
// Each method can be customized by setting the corresponding field.
// If a field is unset, the method returns a default value.
type Mock struct {
	ClientFunc  func() (moviemap.Client, error)
	LoggerFunc  func() *zerolog.Logger
	Format      output.Format
	QuietMode   bool
	VersionFunc func() string
	CommitFunc  func() string
	DateFunc    func() string
	BuiltByFunc func() string
}

// Client returns a client using the mock function or an error.
func (m *Mock) Client() (moviemap.Client, error) {
	if m.ClientFunc != nil {
		return m.ClientFunc()
	}
	return nil, errors.NewConfigError("client", "no client configured", nil)
}

// Catalog returns the catalog of the mock client.
func (m *Mock) Catalog() (*catalog.Catalog, error) {
	client, err := m.Client()
	if err != nil {
		return nil, err
	}
	return client.Catalog(), nil
}

// Logger returns a logger using the mock function or a no-op logger.
func (m *Mock) Logger() *zerolog.Logger {
	if m.LoggerFunc != nil {
		return m.LoggerFunc()
	}
	return logging.NewNopLogger()
}

// OutputFormat returns Format, defaulting to table.
func (m *Mock) OutputFormat() output.Format {
	if m.Format == "" {
		return output.FormatTable
	}
	return m.Format
}

// Quiet returns QuietMode.
func (m *Mock) Quiet() bool {
	return m.QuietMode
}

// Version returns version using the mock function or "dev".
func (m *Mock) Version() string {
	if m.VersionFunc != nil {
		return m.VersionFunc()
	}
	return "dev"
}

// Commit returns commit using the mock function or "unknown".
func (m *Mock) Commit() string {
	if m.CommitFunc != nil {
		return m.CommitFunc()
	}
	return "unknown"
}

// Date returns date using the mock function or "unknown".
func (m *Mock) Date() string {
	if m.DateFunc != nil {
		return m.DateFunc()
	}
	return "unknown"
}

// BuiltBy returns builtBy using the mock function or "test".
func (m *Mock) BuiltBy() string {
	if m.BuiltByFunc != nil {
		return m.BuiltByFunc()
	}
	return "test"
}

// Ensure Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
