// Package appcontext provides the shared application context interface
// used by all commands. Commands accept this interface rather than the
// concrete App so they can be tested with a Mock.
package appcontext

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/petvalues"
	"github.com/agentstation/petvalues/pkg/sources"
)

// Interface defines what commands need from the application.
type Interface interface {
	// Importer creates an importer from the loaded configuration. Extra
	// options are applied last, so they override configured values.
	Importer(opts ...petvalues.Option) (petvalues.Importer, error)

	// SourceConfigs returns the configured sources in priority order.
	SourceConfigs() []sources.Config

	// DatasetPath returns the configured dataset file path.
	DatasetPath() string

	// Logger returns the configured logger instance.
	Logger() *zerolog.Logger

	// Version returns the application version string.
	Version() string

	// Commit returns the git commit hash.
	Commit() string

	// Date returns the build date.
	Date() string

	// BuiltBy returns the build system identifier.
	BuiltBy() string
}
