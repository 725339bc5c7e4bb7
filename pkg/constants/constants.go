// Package constants provides shared constants used throughout the petvalues codebase.
// This includes timeouts, limits, file permissions, default paths and other
// values that should be consistent across the application.
package constants

import "time"

// Timeout constants define various timeout durations used in the application
const (
	// DefaultHTTPTimeout is the standard timeout for HTTP requests to value sources
	DefaultHTTPTimeout = 30 * time.Second

	// CommandTimeout is the default timeout for CLI commands
	CommandTimeout = 10 * time.Minute

	// ShutdownTimeout bounds graceful shutdown after a failed command
	ShutdownTimeout = 5 * time.Second
)

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// Limit constants define various limits and capacities
const (
	// MaxConcurrentSources is the maximum number of sources fetched at once
	MaxConcurrentSources = 8

	// MaxResponseBytes caps the body read from a single source response (8 MiB)
	MaxResponseBytes = 8 << 20
)

// Default values
const (
	// DefaultCatalogDir is the directory holding one image per known pet
	DefaultCatalogDir = "pets"

	// DefaultOutputPath is where the merged dataset is written
	DefaultOutputPath = "data/pets.json"

	// DefaultImageExtension is the image extension that qualifies a catalog file
	DefaultImageExtension = ".png"

	// DefaultUserAgent is sent with every source request
	DefaultUserAgent = "Mozilla/5.0"

	// UnknownRarity is used when no source reports a rarity
	UnknownRarity = "Unknown"

	// MethodMedian identifies the median aggregation in the dataset
	MethodMedian = "median"

	// ConfigFileName is the base name of the optional config file
	ConfigFileName = ".petvalues"

	// EnvPrefix prefixes environment variables read by the CLI
	EnvPrefix = "PETVALUES"
)

// Format constants
const (
	// DateFormat is the calendar date format of the dataset "updated" field
	DateFormat = "2006-01-02"
)
