package app

import (
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/rs/zerolog"

	"github.com/agentstation/pricemap/pkg/logging"
)

// cliLevels are the values --log-level accepts.
var cliLevels = []string{"trace", "debug", "info", "warn", "error"}

// NewLogger builds the CLI logger from log_level, log_format and log_output.
// --log-level beats -q, which beats -v; the default is info.
func NewLogger(config *Config) zerolog.Logger {
	level := resolveLogLevel(config, os.Stderr)
	return logging.NewLoggerFromConfig(&logging.Config{
		Level:      level,
		Format:     config.LogFormat,
		Output:     config.LogOutput,
		TimeFormat: "kitchen",
		NoColor:    config.NoColor,
		AddCaller:  logging.ParseLevel(level) <= zerolog.DebugLevel,
	})
}

// resolveLogLevel picks the level name and reports ignored settings on warn.
func resolveLogLevel(config *Config, warn io.Writer) string {
	switch {
	case config.LogLevel != "":
		if slices.Contains(cliLevels, config.LogLevel) {
			return config.LogLevel
		}
		fmt.Fprintf(warn, "Warning: invalid log level %q, using \"info\"\n", config.LogLevel)
		return "info"
	case config.Quiet:
		if config.Verbose {
			fmt.Fprintln(warn, "Warning: both --verbose and --quiet specified, using --quiet")
		}
		return "warn"
	case config.Verbose:
		return "debug"
	}
	return "info"
}
