// Package app provides the application context and dependency management
// for the petvalues CLI. It centralizes configuration, logging, and the
// construction of importers.
package app

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/petvalues"
	"github.com/agentstation/petvalues/internal/appcontext"
	"github.com/agentstation/petvalues/pkg/errors"
	"github.com/agentstation/petvalues/pkg/sources"
)

// App represents the petvalues application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	// Configuration
	config *Config

	// Logger
	logger *zerolog.Logger
}

// Ensure App implements appcontext.Interface at compile time.
var _ appcontext.Interface = (*App)(nil)

// New creates a new App instance with the given version information.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
	}

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	if app.config == nil {
		config, err := LoadConfig("")
		if err != nil {
			return nil, errors.WrapResource("load", "config", "", err)
		}
		app.config = config
	}

	if app.logger == nil {
		logger := NewLogger(app.config)
		app.logger = &logger
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string {
	return a.builtBy
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// SourceConfigs returns the configured sources in priority order.
func (a *App) SourceConfigs() []sources.Config {
	return a.config.Sources
}

// DatasetPath returns the configured dataset file path.
func (a *App) DatasetPath() string {
	return a.config.Output
}

// Importer creates an importer from the configuration; extra options
// override configured values.
func (a *App) Importer(opts ...petvalues.Option) (petvalues.Importer, error) {
	all := append(a.importerOptions(), opts...)
	imp, err := petvalues.New(all...)
	if err != nil {
		return nil, errors.WrapResource("create", "importer", "", err)
	}
	return imp, nil
}

// importerOptions constructs importer options from the app configuration.
func (a *App) importerOptions() []petvalues.Option {
	opts := []petvalues.Option{
		petvalues.WithCatalogDir(a.config.CatalogDir),
		petvalues.WithOutputPath(a.config.Output),
		petvalues.WithSources(a.config.Sources),
		petvalues.WithHTTPTimeout(a.config.HTTPTimeout),
		petvalues.WithUserAgent(a.config.UserAgent),
	}
	if len(a.config.Extensions) > 0 {
		opts = append(opts, petvalues.WithExtensions(a.config.Extensions...))
	}
	if a.config.ImagePrefix != "" {
		opts = append(opts, petvalues.WithImagePrefix(a.config.ImagePrefix))
	}
	return opts
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}
