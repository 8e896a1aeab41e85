package query

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/moviemap/internal/appcontext"
	"github.com/agentstation/moviemap/internal/cmd/table"
	"github.com/agentstation/moviemap/pkg/catalog"
)

// NewFilterCommand creates the filter command.
func NewFilterCommand(app appcontext.Interface) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "filter",
		GroupID: "analysis",
		Short:   "List movies within a rating floor and year range",
		Long: `Filter lists the movies matching every bound given. A bound that is not
set does not constrain the result, and an empty result is not an error.`,
		Example: `  moviemap filter --min-rating 8
  moviemap filter --start-year 1990 --end-year 1999
  moviemap filter --min-rating 5 --start-year 2020 --end-year 2020`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			criteria := criteriaFromFlags(cmd)

			c, err := load(app)
			if err != nil {
				return err
			}

			matches := catalog.Filter(c, criteria)
			found(cmd, app, matches.Len())
			return write(cmd, app, table.MoviesToTableData(matches, false), matches)
		},
	}
	cmd.Flags().Float64("min-rating", 0, "lowest rating to include")
	cmd.Flags().Int("start-year", 0, "earliest release year to include")
	cmd.Flags().Int("end-year", 0, "latest release year to include")
	return cmd
}

// criteriaFromFlags builds filter criteria from the flags that were set.
func criteriaFromFlags(cmd *cobra.Command) catalog.Criteria {
	var criteria catalog.Criteria
	flags := cmd.Flags()
	if flags.Changed("min-rating") {
		v, _ := flags.GetFloat64("min-rating")
		criteria = criteria.WithMinRating(v)
	}
	if flags.Changed("start-year") {
		v, _ := flags.GetInt("start-year")
		criteria = criteria.WithStartYear(v)
	}
	if flags.Changed("end-year") {
		v, _ := flags.GetInt("end-year")
		criteria = criteria.WithEndYear(v)
	}
	return criteria
}
