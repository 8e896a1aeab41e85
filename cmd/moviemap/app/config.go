package app

import (
	"errors"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/agentstation/moviemap/internal/cmd/output"
	"github.com/agentstation/moviemap/pkg/catalog"
	"github.com/agentstation/moviemap/pkg/constants"
	pkgerrors "github.com/agentstation/moviemap/pkg/errors"
)

// envPrefix namespaces the environment variables viper reads, so that
// MOVIEMAP_DATABASE sets the database key.
const envPrefix = "moviemap"

// Config holds the application configuration loaded from various sources
// including config files, environment variables, and .env files.
type Config struct {
	// Global flags
	Verbose bool
	Quiet   bool
	NoColor bool
	Format  string

	// Config file
	ConfigFile string

	// Catalog configuration
	Database        string
	DuplicatePolicy string

	// Logging configuration. LogLevel is the explicit level from a flag or
	// the config file; EnvLogLevel is LOG_LEVEL and ranks below -v and -q.
	LogLevel    string
	EnvLogLevel string
	LogFormat   string
	LogOutput   string
}

// LoadConfig loads configuration from all sources in order of precedence:
// 1. Command-line flags (applied later by UpdateFromFlags)
// 2. Environment variables
// 3. .env.local, then .env
// 4. Config file (~/.moviemap.yaml or ./.moviemap.yaml)
// 5. Defaults
func LoadConfig() (*Config, error) {
	return LoadConfigFile("")
}

// LoadConfigFile is LoadConfig with an explicit config file. An explicit
// file must exist; the default locations are optional.
func LoadConfigFile(path string) (*Config, error) {
	// .env files only fill variables that are not already set
	loadEnvFiles()

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetDefault("database", constants.DefaultDatabaseFile)
	v.SetDefault("duplicate_policy", constants.DefaultDuplicatePolicy)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, pkgerrors.NewConfigError("config", "cannot read "+path, err)
		}
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName(constants.DefaultConfigName)

		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, pkgerrors.NewConfigError("config", "cannot parse config file", err)
			}
		}
	}

	config := &Config{
		Verbose: v.GetBool("verbose"),
		Quiet:   v.GetBool("quiet"),
		NoColor: v.GetBool("no-color"),
		Format:  v.GetString("format"),

		ConfigFile: v.ConfigFileUsed(),

		Database:        v.GetString("database"),
		DuplicatePolicy: v.GetString("duplicate_policy"),

		LogLevel:    v.GetString("log_level"),
		EnvLogLevel: os.Getenv("LOG_LEVEL"),
		LogFormat:   getEnvOrDefault("LOG_FORMAT", "auto"),
		LogOutput:   getEnvOrDefault("LOG_OUTPUT", "stderr"),
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks the values that have a fixed set of choices.
func (c *Config) Validate() error {
	if c.Database == "" {
		return pkgerrors.NewConfigError("database", "path cannot be empty", nil)
	}
	if _, err := catalog.ParseDuplicatePolicy(c.DuplicatePolicy); err != nil {
		return pkgerrors.NewConfigError("duplicate_policy", "expected exact, substring or none", err)
	}
	if _, err := output.ParseFormat(c.Format); err != nil {
		return pkgerrors.NewConfigError("format", "expected table, json, yaml or wide", err)
	}
	return nil
}

// UpdateFromFlags overwrites config values with the flags the user set.
// This should be called after cobra parses flags so that flag values take
// precedence over the config file and env vars. Flags left at their
// defaults do not override anything.
func (c *Config) UpdateFromFlags(flags *pflag.FlagSet) error {
	if flags.Changed("verbose") {
		c.Verbose, _ = flags.GetBool("verbose")
	}
	if flags.Changed("quiet") {
		c.Quiet, _ = flags.GetBool("quiet")
	}
	if flags.Changed("no-color") {
		c.NoColor, _ = flags.GetBool("no-color")
	}
	if flags.Changed("format") {
		c.Format, _ = flags.GetString("format")
	}
	if flags.Changed("log-level") {
		c.LogLevel, _ = flags.GetString("log-level")
	}
	if flags.Changed("database") {
		c.Database, _ = flags.GetString("database")
	}
	if flags.Changed("duplicate-policy") {
		c.DuplicatePolicy, _ = flags.GetString("duplicate-policy")
	}
	return c.Validate()
}

// loadEnvFiles loads environment variables from .env files. godotenv never
// overrides a variable that is already set, so .env.local is loaded first
// to take precedence over .env.
func loadEnvFiles() {
	for _, envFile := range []string{".env.local", ".env"} {
		_ = godotenv.Load(envFile)
	}
}

// getEnvOrDefault returns the environment variable value or the default if not set.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
