package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/moviemap/cmd/moviemap/cmd/edit"
	"github.com/agentstation/moviemap/cmd/moviemap/cmd/query"
)

// registerCommands registers all subcommands with the root command.
func (a *App) registerCommands(rootCmd *cobra.Command) {
	// Core commands
	rootCmd.AddCommand(query.NewListCommand(a))
	rootCmd.AddCommand(edit.NewAddCommand(a))
	rootCmd.AddCommand(edit.NewUpdateCommand(a))
	rootCmd.AddCommand(edit.NewDeleteCommand(a))

	// Analysis commands
	rootCmd.AddCommand(query.NewStatsCommand(a))
	rootCmd.AddCommand(query.NewRandomCommand(a))
	rootCmd.AddCommand(query.NewSearchCommand(a))
	rootCmd.AddCommand(query.NewSortCommand(a))
	rootCmd.AddCommand(query.NewFilterCommand(a))
	rootCmd.AddCommand(query.NewHistogramCommand(a))

	// Utility commands
	rootCmd.AddCommand(a.NewVersionCommand())
}

// NewVersionCommand creates the version command.
func (a *App) NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "moviemap %s\n", a.version)
			if a.config.Verbose {
				fmt.Fprintf(w, "  commit:   %s\n", a.commit)
				fmt.Fprintf(w, "  built:    %s\n", a.date)
				fmt.Fprintf(w, "  built by: %s\n", a.builtBy)
			}
		},
	}
}
