package logging_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/moviemap/pkg/logging"
)

func TestConfigFunctions(t *testing.T) {
	originalLogger := *logging.Default()
	originalLevel := zerolog.GlobalLevel()
	defer func() {
		logging.SetDefault(originalLogger)
		zerolog.SetGlobalLevel(originalLevel)
	}()

	t.Run("DefaultConfig returns sensible defaults", func(t *testing.T) {
		cfg := logging.DefaultConfig()
		assert.Equal(t, "info", cfg.Level)
		assert.Equal(t, "auto", cfg.Format)
		assert.Equal(t, "stderr", cfg.Output)
		assert.False(t, cfg.AddCaller)
	})

	t.Run("NewLoggerFromConfig writes to a file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "moviemap.log")

		logger := logging.NewLoggerFromConfig(&logging.Config{
			Level:  "debug",
			Format: "json",
			Output: path,
			Fields: map[string]any{"app": "moviemap"},
		})
		logger.Info().Msg("test message")

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(content), "test message")
		assert.Contains(t, string(content), `"app":"moviemap"`)
	})

	t.Run("Configure sets the default logger", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "default.log")
		logging.Configure(&logging.Config{Level: "warn", Format: "json", Output: path})

		logging.Info().Msg("hidden")
		logging.Warn().Msg("shown")

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.NotContains(t, string(content), "hidden")
		assert.Contains(t, string(content), "shown")
	})

	t.Run("ConfigureFromEnv reads LOG_ variables", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "env.log")
		t.Setenv("LOG_LEVEL", "error")
		t.Setenv("LOG_FORMAT", "json")
		t.Setenv("LOG_OUTPUT", path)
		t.Setenv("LOG_FIELDS", "env=test, run = 1")

		logging.ConfigureFromEnv()
		logging.Error().Msg("from env")

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(content), `"env":"test"`)
		assert.Contains(t, string(content), `"run":"1"`)
		assert.Equal(t, zerolog.ErrorLevel, zerolog.GlobalLevel())
	})

	t.Run("nil config uses defaults", func(t *testing.T) {
		logger := logging.NewLoggerFromConfig(nil)
		assert.Equal(t, zerolog.InfoLevel, logger.GetLevel())
	})
}
