package query

import (
	"math/rand/v2"

	"github.com/spf13/cobra"

	"github.com/agentstation/moviemap/internal/appcontext"
	"github.com/agentstation/moviemap/internal/cmd/table"
	"github.com/agentstation/moviemap/pkg/catalog"
	"github.com/agentstation/moviemap/pkg/constants"
	"github.com/agentstation/moviemap/pkg/movies"
)

// NewStatsCommand creates the stats command.
func NewStatsCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:     "stats",
		GroupID: "analysis",
		Short:   "Show average, median, best and worst ratings",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := load(app)
			if err != nil {
				return err
			}

			stats, err := catalog.Statistics(c)
			if err != nil {
				return err
			}
			return write(cmd, app, table.StatsToTableData(stats), stats)
		},
	}
}

// NewRandomCommand creates the random command.
func NewRandomCommand(app appcontext.Interface) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "random",
		GroupID: "analysis",
		Short:   "Suggest a random movie",
		Example: `  moviemap random
  moviemap random --seed 42   # repeatable pick`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := load(app)
			if err != nil {
				return err
			}

			var m movies.Movie
			if cmd.Flags().Changed("seed") {
				seed, _ := cmd.Flags().GetUint64("seed")
				m, err = catalog.RandomFrom(c, rand.New(rand.NewPCG(seed, seed)))
			} else {
				m, err = catalog.Random(c)
			}
			if err != nil {
				return err
			}
			return write(cmd, app, table.MoviesToTableData(movies.Collection{m}, false), m)
		},
	}
	cmd.Flags().Uint64("seed", 0, "seed the pick for repeatable output")
	return cmd
}

// NewHistogramCommand creates the histogram command.
func NewHistogramCommand(app appcontext.Interface) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "histogram",
		GroupID: "analysis",
		Short:   "Show how ratings are distributed",
		Example: `  moviemap histogram
  moviemap histogram --bins 5`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			bins, _ := cmd.Flags().GetInt("bins")

			c, err := load(app)
			if err != nil {
				return err
			}

			hist, err := catalog.Histogram(c, bins)
			if err != nil {
				return err
			}
			return write(cmd, app, table.HistogramToTableData(hist), hist)
		},
	}
	cmd.Flags().Int("bins", constants.DefaultHistogramBins, "number of equal-width rating bins")
	return cmd
}
