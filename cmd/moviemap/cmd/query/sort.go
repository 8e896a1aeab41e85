package query

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/agentstation/moviemap/internal/appcontext"
	"github.com/agentstation/moviemap/internal/cmd/table"
	"github.com/agentstation/moviemap/pkg/catalog"
	"github.com/agentstation/moviemap/pkg/errors"
	"github.com/agentstation/moviemap/pkg/movies"
)

// Sort keys accepted by the sort command.
const (
	sortByRating = "rating"
	sortByYear   = "year"
)

// NewSortCommand creates the sort command.
func NewSortCommand(app appcontext.Interface) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "sort",
		GroupID: "analysis",
		Short:   "List movies from highest to lowest rating or newest to oldest",
		Example: `  moviemap sort
  moviemap sort --by year`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			by, _ := cmd.Flags().GetString("by")
			by = strings.ToLower(by)
			if by != sortByRating && by != sortByYear {
				return errors.NewValidationError("by", by, "must be rating or year")
			}

			c, err := load(app)
			if err != nil {
				return err
			}

			if by == sortByYear {
				var sorted []movies.DatedTitle
				if sorted, err = catalog.SortByYear(c); err != nil {
					return err
				}
				return write(cmd, app, table.DatedToTableData(sorted), sorted)
			}

			sorted, err := catalog.SortByRating(c)
			if err != nil {
				return err
			}
			return write(cmd, app, table.RatedToTableData(sorted), sorted)
		},
	}
	cmd.Flags().String("by", sortByRating, "sort key: rating or year")
	return cmd
}
