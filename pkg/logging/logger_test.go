package logging_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/agentstation/moviemap/pkg/logging"
)

func TestDefaultLogger(t *testing.T) {
	original := *logging.Default()
	defer logging.SetDefault(original)

	buf := &bytes.Buffer{}
	logger := zerolog.New(buf).Level(zerolog.DebugLevel).With().Timestamp().Logger()
	logging.SetDefault(logger)

	logging.Info().Msg("info message")
	logging.Warn().Msg("warning message")
	logging.Error().Msg("error message")

	output := buf.String()
	if !strings.Contains(output, "info message") {
		t.Errorf("Expected info message in output, got: %s", output)
	}
	if !strings.Contains(output, "error message") {
		t.Errorf("Expected error message in output, got: %s", output)
	}
}

func TestContextLogger(t *testing.T) {
	testLogger := logging.NewTestLogger(t)

	ctx := logging.WithLogger(context.Background(), testLogger.Logger)
	ctx = logging.WithStore(ctx, "movie_database.json")
	ctx = logging.WithMovie(ctx, "The Godfather")

	logging.FromContext(ctx).Info().Msg("test message")

	testLogger.AssertContains(t, `"store":"movie_database.json"`)
	testLogger.AssertContains(t, `"title":"The Godfather"`)
	testLogger.AssertContains(t, "test message")
}

func TestConfiguration(t *testing.T) {
	originalLevel := zerolog.GlobalLevel()
	defer zerolog.SetGlobalLevel(originalLevel)

	configs := []struct {
		name  string
		cfg   *logging.Config
		check func(t *testing.T, output string)
	}{
		{
			name: "debug level",
			cfg:  &logging.Config{Level: "debug", Format: "json"},
			check: func(t *testing.T, output string) {
				if !strings.Contains(output, `"level":"debug"`) {
					t.Errorf("Expected debug level in output")
				}
			},
		},
		{
			name: "error level only",
			cfg:  &logging.Config{Level: "error", Format: "json"},
			check: func(t *testing.T, output string) {
				if strings.Contains(output, `"level":"info"`) {
					t.Errorf("Should not contain info level when set to error")
				}
				if !strings.Contains(output, `"level":"error"`) {
					t.Errorf("Expected error level in output")
				}
			},
		},
	}

	for _, tc := range configs {
		t.Run(tc.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			logger := logging.NewLoggerFromConfig(tc.cfg).Output(buf)

			logger.Debug().Msg("debug")
			logger.Info().Msg("info")
			logger.Error().Msg("error")

			tc.check(t, buf.String())
		})
	}
}

func TestTestLogger(t *testing.T) {
	tl := logging.NewTestLogger(t)

	tl.Logger.Info().Msg("message 1")
	tl.Logger.Error().Err(nil).Msg("message 2")

	tl.AssertContains(t, "message 1")
	tl.AssertContains(t, "message 2")
	tl.AssertNotContains(t, "message 3")
	tl.AssertCount(t, 2)

	if !tl.ContainsAll("message 1", "message 2") {
		t.Error("Should contain both messages")
	}

	tl.Clear()
	if tl.Count() != 0 {
		t.Error("Should have 0 entries after clear")
	}
}

func TestCaptureLoggingForTest(t *testing.T) {
	tl := logging.CaptureLoggingForTest(t)
	logging.Warn().Str("title", "Heat").Msg("captured")
	tl.AssertContains(t, "captured")
	tl.AssertContains(t, "Heat")
}
