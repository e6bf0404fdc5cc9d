package appcontext

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/pricemap"
)

// Mock provides a mock implementation of Interface for testing.
// Each method can be customized by setting the corresponding function field.
// If a function field is nil, the method returns a default value.
type Mock struct {
	PriceMapFunc     func(...pricemap.Option) (pricemap.PriceMap, error)
	LoggerFunc       func() *zerolog.Logger
	OutputFormatFunc func() string
	OutputDirFunc    func() string
	NoColorValue     bool
}

var _ Interface = (*Mock)(nil)

// PriceMap returns a price map using the mock function, or a real one
// reading the given options.
func (m *Mock) PriceMap(opts ...pricemap.Option) (pricemap.PriceMap, error) {
	if m.PriceMapFunc != nil {
		return m.PriceMapFunc(opts...)
	}
	return pricemap.New(opts...)
}

// Logger returns a logger using the mock function or a no-op logger.
func (m *Mock) Logger() *zerolog.Logger {
	if m.LoggerFunc != nil {
		return m.LoggerFunc()
	}
	logger := zerolog.Nop()
	return &logger
}

// OutputFormat returns the format using the mock function or "json".
func (m *Mock) OutputFormat() string {
	if m.OutputFormatFunc != nil {
		return m.OutputFormatFunc()
	}
	return "json"
}

// OutputDir returns the directory using the mock function or ".".
func (m *Mock) OutputDir() string {
	if m.OutputDirFunc != nil {
		return m.OutputDirFunc()
	}
	return "."
}

// NoColor returns NoColorValue.
func (m *Mock) NoColor() bool { return m.NoColorValue }

// Version returns "dev".
func (m *Mock) Version() string { return "dev" }

// Commit returns "unknown".
func (m *Mock) Commit() string { return "unknown" }

// Date returns "unknown".
func (m *Mock) Date() string { return "unknown" }

// BuiltBy returns "unknown".
func (m *Mock) BuiltBy() string { return "unknown" }
