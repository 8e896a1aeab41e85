// Package main provides the entry point for the moviemap CLI tool.
package main

import (
	"context"
	"os"
	"time"

	"github.com/agentstation/moviemap/cmd/moviemap/app"
	"github.com/agentstation/moviemap/pkg/logging"
)

// Version information populated by goreleaser.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
	builtBy = "unknown"
)

func main() {
	// The default logger serves anything that logs before the config is read.
	logging.ConfigureFromEnv()

	application, err := app.New(version, commit, date, builtBy)
	if err != nil {
		app.ExitOnError(err)
	}

	ctx, cancel := app.ContextWithSignals(context.Background())
	err = application.Execute(ctx, os.Args[1:])
	cancel()

	shutdown(application)
	app.ExitOnError(err)
}

// shutdown closes the store with a fresh context since the signal context
// may already be cancelled.
func shutdown(application *app.App) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := application.Shutdown(ctx); err != nil {
		application.Logger().Error().Err(err).Msg("Shutdown error")
	}
}
