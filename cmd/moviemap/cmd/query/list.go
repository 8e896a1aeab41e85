package query

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/moviemap/internal/appcontext"
	"github.com/agentstation/moviemap/internal/cmd/output"
	"github.com/agentstation/moviemap/internal/cmd/table"
)

// NewListCommand creates the list command.
func NewListCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		GroupID: "core",
		Aliases: []string{"ls"},
		Short:   "List every movie in the catalog",
		Example: `  moviemap list
  moviemap list -o wide
  moviemap list -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := load(app)
			if err != nil {
				return err
			}

			found(cmd, app, c.Len())
			wide := app.OutputFormat() == output.FormatWide
			return write(cmd, app, table.MoviesToTableData(c, wide), c)
		},
	}
}
