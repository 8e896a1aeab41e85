package app

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/agentstation/moviemap/pkg/constants"
	"github.com/agentstation/moviemap/pkg/errors"
)

// Execute runs the moviemap CLI application with the given arguments.
// This is the main entry point called from main.go.
func (a *App) Execute(ctx context.Context, args []string) error {
	rootCmd := a.createRootCommand()
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}

// createRootCommand creates the root cobra command with all subcommands.
func (a *App) createRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "moviemap",
		Short:   "Personal movie catalog CLI",
		Version: a.version,
		Long: `Moviemap keeps a personal catalog of movies with their release year and
rating in a single file, and answers questions about it: statistics,
search, sorting, filtering and rating histograms.

The catalog file format follows its extension: .json (default), .yaml/.yml
or .db/.sqlite/.sqlite3 for SQLite.`,
		PersistentPreRunE: a.setupCommand,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "Core Commands:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "analysis",
		Title: "Analysis Commands:",
	})

	// Defaults shown here come from the loaded config; UpdateFromFlags only
	// applies flags the user actually set.
	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default is $HOME/"+constants.DefaultConfigName+".yaml)")
	flags.StringP("database", "d", a.config.Database, "catalog file (.json, .yaml, .db)")
	flags.String("duplicate-policy", a.config.DuplicatePolicy, "duplicate titles rejected by add: exact, substring, none")
	flags.BoolP("verbose", "v", false, "verbose output (shortcut for --log-level=debug)")
	flags.BoolP("quiet", "q", false, "minimal output (shortcut for --log-level=warn)")
	flags.Bool("no-color", false, "disable colored output")
	flags.StringP("format", "o", "", "output format: table, json, yaml, wide")
	flags.String("log-level", "", "log level: trace, debug, info, warn, error (overrides -v/-q)")

	rootCmd.SetVersionTemplate("moviemap {{.Version}}\n")

	a.registerCommands(rootCmd)

	return rootCmd
}

// setupCommand is called before any command runs.
func (a *App) setupCommand(cmd *cobra.Command, _ []string) error {
	if cmd.Flags().Changed("config") {
		path, _ := cmd.Flags().GetString("config")
		config, err := LoadConfigFile(path)
		if err != nil {
			return err
		}
		a.config = config
	}

	if err := a.config.UpdateFromFlags(cmd.Flags()); err != nil {
		return err
	}
	if err := a.resetStaleClient(); err != nil {
		return err
	}

	logger := NewLogger(a.config)
	a.logger = &logger

	a.logger.Debug().
		Str("database", a.config.Database).
		Str("config_file", a.config.ConfigFile).
		Str("command", cmd.Name()).
		Msg("Command setup complete")
	return nil
}

// ExitOnError prints an error and exits. Expected catalog outcomes such as
// a missing title exit with status 1; store and configuration failures exit
// with status 2.
func ExitOnError(err error) {
	if err == nil {
		return
	}
	//nolint:errcheck // Ignoring write error since we're exiting anyway
	_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
	if errors.IsRecoverable(err) {
		os.Exit(1)
	}
	os.Exit(2)
}
