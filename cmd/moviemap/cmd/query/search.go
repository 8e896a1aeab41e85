package query

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/moviemap/internal/appcontext"
	"github.com/agentstation/moviemap/internal/cmd/table"
	"github.com/agentstation/moviemap/pkg/catalog"
)

// NewSearchCommand creates the search command.
func NewSearchCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:     "search <text>",
		GroupID: "analysis",
		Short:   "Find movies whose title contains text",
		Long: `Search lists every movie whose title contains the given text,
ignoring case, in catalog order.`,
		Example: `  moviemap search godfather`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := load(app)
			if err != nil {
				return err
			}

			matches, err := catalog.Search(c, args[0])
			if err != nil {
				return err
			}
			found(cmd, app, len(matches))
			return write(cmd, app, table.RatedToTableData(matches), matches)
		},
	}
}
