// Package query provides the read-only catalog commands: list, stats,
// random, search, sort, filter and histogram. Each loads the collection once
// and hands it to the matching catalog query.
package query

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/moviemap/internal/appcontext"
	"github.com/agentstation/moviemap/internal/cmd/output"
	"github.com/agentstation/moviemap/internal/cmd/table"
	"github.com/agentstation/moviemap/pkg/movies"
)

// load returns the current collection of the app's catalog.
func load(app appcontext.Interface) (movies.Collection, error) {
	cat, err := app.Catalog()
	if err != nil {
		return nil, err
	}
	return cat.Movies()
}

// write renders a result in the app's output format.
func write(cmd *cobra.Command, app appcontext.Interface, tableData table.Data, raw any) error {
	return output.Write(cmd.OutOrStdout(), app.OutputFormat(), tableData, raw)
}

// found reports a result count on stderr unless the app is quiet.
func found(cmd *cobra.Command, app appcontext.Interface, n int) {
	if app.Quiet() {
		return
	}
	noun := "movies"
	if n == 1 {
		noun = "movie"
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Found %d %s\n", n, noun)
}
