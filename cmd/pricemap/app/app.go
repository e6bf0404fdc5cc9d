// Package app provides the application context and dependency management
// for the pricemap CLI. It centralizes configuration, logging and the
// construction of price maps for the commands.
package app

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/pricemap"
	"github.com/agentstation/pricemap/internal/appcontext"
	"github.com/agentstation/pricemap/pkg/errors"
	"github.com/agentstation/pricemap/pkg/sources"
)

// App represents the pricemap application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	config *Config
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

	config, err := LoadConfig()
	if err != nil {
		return nil, errors.WrapResource("load", "config", "", err)
	}
	app.config = config

	logger := NewLogger(config)
	app.logger = &logger

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
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

// OutputFormat returns the configured output format.
func (a *App) OutputFormat() string {
	return a.config.Format
}

// NoColor reports whether colored output is disabled.
func (a *App) NoColor() bool {
	return a.config.NoColor
}

// OutputDir returns the directory reconcile writes to.
func (a *App) OutputDir() string {
	return a.config.OutputDir
}

// PriceMap returns a new price map built from the configuration. Options
// passed here are applied last.
func (a *App) PriceMap(opts ...pricemap.Option) (pricemap.PriceMap, error) {
	pm, err := pricemap.New(append(a.priceMapOptions(), opts...)...)
	if err != nil {
		return nil, errors.WrapResource("create", "pricemap", "", err)
	}
	return pm, nil
}

// priceMapOptions constructs price map options from the app configuration.
func (a *App) priceMapOptions() []pricemap.Option {
	opts := []pricemap.Option{
		pricemap.WithUndercutAmount(a.config.UndercutAmount),
		pricemap.WithFallbackMargin(a.config.FallbackMargin),
	}

	if a.config.CatalogDir != "" {
		opts = append(opts, pricemap.WithCatalogDir(a.config.CatalogDir))
	}

	for _, id := range sources.IDs() {
		if path, ok := a.config.CatalogFiles[id]; ok {
			opts = append(opts, pricemap.WithCatalogFile(id, path))
		}
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
