// Package appcontext provides the shared application context interface
// used by all commands.
package appcontext

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/pricemap"
)

// Interface defines the application context interface that commands need.
// The App struct from cmd/pricemap/app implements it; commands accept this
// interface, or a smaller one of their own, so tests can pass a Mock.
type Interface interface {
	// PriceMap returns a price map built from the configuration, with opts
	// applied after the configured options so they take precedence.
	PriceMap(opts ...pricemap.Option) (pricemap.PriceMap, error)

	// Logger returns the configured logger instance.
	Logger() *zerolog.Logger

	// OutputFormat returns the configured output format (json, yaml, table, wide).
	OutputFormat() string

	// NoColor reports whether colored output is disabled.
	NoColor() bool

	// OutputDir returns the directory reconcile writes its files to.
	OutputDir() string

	// Version returns the application version string.
	Version() string

	// Commit returns the git commit hash.
	Commit() string

	// Date returns the build date.
	Date() string

	// BuiltBy returns the build system identifier.
	BuiltBy() string
}
