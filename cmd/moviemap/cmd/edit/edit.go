// Package edit provides the commands that change the catalog: add, update
// and delete. Arguments are validated here before the catalog is touched.
package edit

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/agentstation/moviemap/internal/appcontext"
	"github.com/agentstation/moviemap/internal/cmd/table"
	"github.com/agentstation/moviemap/pkg/constants"
	"github.com/agentstation/moviemap/pkg/errors"
	"github.com/agentstation/moviemap/pkg/logging"
)

// NewAddCommand creates the add command.
func NewAddCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:     "add <title> <year> <rating>",
		GroupID: "core",
		Short:   "Add a movie to the catalog",
		Long: `Add appends a movie to the catalog.

The year must be a positive integer and the rating a number between 0 and 10.
Titles already in the catalog are rejected according to the configured
duplicate policy (exact, substring or none).`,
		Example: `  moviemap add "Heat" 1995 8.3
  moviemap add "Alien" 1979 8.5 -d movies.yaml`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			title, err := parseTitle(args[0])
			if err != nil {
				return err
			}
			year, err := parseYear(args[1])
			if err != nil {
				return err
			}
			rating, err := parseRating(args[2])
			if err != nil {
				return err
			}

			cat, err := app.Catalog()
			if err != nil {
				return err
			}
			if err := cat.AddMovie(title, year, rating); err != nil {
				return err
			}

			movieLogger(cmd, app, "add", title).Debug().Msg("Movie added")
			return report(cmd, app, "Movie %q added (%d, %s)", title, year, table.FormatRating(rating))
		},
	}
}

// NewUpdateCommand creates the update command.
func NewUpdateCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:     "update <title> <rating>",
		GroupID: "core",
		Short:   "Change the rating of a movie",
		Long: `Update sets a new rating on the first movie whose title matches exactly.
If several movies share the title only the first one changes.`,
		Example: `  moviemap update "Heat" 8.5`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			title, err := parseTitle(args[0])
			if err != nil {
				return err
			}
			rating, err := parseRating(args[1])
			if err != nil {
				return err
			}

			cat, err := app.Catalog()
			if err != nil {
				return err
			}
			if err := cat.UpdateMovie(title, rating); err != nil {
				return err
			}

			movieLogger(cmd, app, "update", title).Debug().Msg("Movie updated")
			return report(cmd, app, "Movie %q updated to %s", title, table.FormatRating(rating))
		},
	}
}

// NewDeleteCommand creates the delete command.
func NewDeleteCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:     "delete <title>",
		GroupID: "core",
		Aliases: []string{"rm"},
		Short:   "Remove a movie from the catalog",
		Long:    `Delete removes every movie whose title matches exactly.`,
		Example: `  moviemap delete "Heat"`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			title, err := parseTitle(args[0])
			if err != nil {
				return err
			}

			cat, err := app.Catalog()
			if err != nil {
				return err
			}
			if err := cat.DeleteMovie(title); err != nil {
				return err
			}

			movieLogger(cmd, app, "delete", title).Debug().Msg("Movie deleted")
			return report(cmd, app, "Movie %q deleted", title)
		},
	}
}

// movieLogger returns the app logger tagged with the operation and title.
func movieLogger(cmd *cobra.Command, app appcontext.Interface, operation, title string) *zerolog.Logger {
	ctx := logging.WithLogger(cmd.Context(), app.Logger())
	ctx = logging.WithOperation(ctx, operation)
	ctx = logging.WithMovie(ctx, title)
	return logging.FromContext(ctx)
}

// report prints a confirmation unless the app is quiet.
func report(cmd *cobra.Command, app appcontext.Interface, format string, args ...any) error {
	if app.Quiet() {
		return nil
	}
	_, err := fmt.Fprintf(cmd.OutOrStdout(), format+"\n", args...)
	return err
}

func parseTitle(s string) (string, error) {
	if strings.TrimSpace(s) == "" {
		return "", errors.NewValidationError("title", s, "cannot be empty")
	}
	return s, nil
}

func parseYear(s string) (int, error) {
	year, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, errors.WrapValidation("year", err)
	}
	if year <= 0 {
		return 0, errors.NewValidationError("year", year, "must be positive")
	}
	return year, nil
}

func parseRating(s string) (float64, error) {
	rating, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, errors.NewValidationError("rating", s, "must be a number")
	}
	if math.IsNaN(rating) || rating < constants.MinRating || rating > constants.MaxRating {
		return 0, errors.NewValidationError("rating", rating,
			fmt.Sprintf("must be between %g and %g", constants.MinRating, constants.MaxRating))
	}
	return rating, nil
}
