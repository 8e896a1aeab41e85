// Package constants provides shared constants used throughout the moviemap codebase.
// This includes file permissions, rating bounds, defaults and other values
// that should be consistent across the application.
package constants

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// Rating constants bound the values accepted from interactive input.
// The store itself accepts any number.
const (
	// MinRating is the lowest rating a user may enter
	MinRating = 0.0

	// MaxRating is the highest rating a user may enter
	MaxRating = 10.0

	// DefaultHistogramBins is the number of bins used for rating histograms
	DefaultHistogramBins = 10
)

// Default values
const (
	// DefaultDatabaseFile is the store used when none is configured
	DefaultDatabaseFile = "movie_database.json"

	// DefaultConfigName is the config file name searched in $HOME and the working directory
	DefaultConfigName = ".moviemap"

	// DefaultDuplicatePolicy is the duplicate-title rule applied on insert
	DefaultDuplicatePolicy = "exact"

	// JSONIndent is the indentation used when writing JSON stores
	JSONIndent = "  "
)
