package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/agentstation/pricemap/pkg/constants"
)

// Config describes how the pricemap CLI logs. The zero value logs info and
// above to stderr, pretty on a terminal and JSON otherwise.
type Config struct {
	Level      string // trace, debug, info, warn, error or off
	Format     string // auto, json or console
	Output     string // stderr, stdout, discard or a file path
	TimeFormat string // kitchen, rfc3339, unix or a Go layout
	NoColor    bool
	AddCaller  bool
}

// DefaultConfig mirrors the CLI defaults for log_format and log_output.
func DefaultConfig() *Config {
	return &Config{
		Level:      "info",
		Format:     FormatAuto,
		Output:     "stderr",
		TimeFormat: "kitchen",
		NoColor:    os.Getenv("NO_COLOR") != "",
	}
}

// Log formats accepted by Config.Format.
const (
	FormatAuto    = "auto"
	FormatJSON    = "json"
	FormatConsole = "console"
)

var levelAliases = map[string]zerolog.Level{
	"warning":  zerolog.WarnLevel,
	"off":      zerolog.Disabled,
	"none":     zerolog.Disabled,
	"disabled": zerolog.Disabled,
}

var timeLayouts = map[string]string{
	"kitchen":     time.Kitchen,
	"rfc3339":     time.RFC3339,
	"rfc3339nano": time.RFC3339Nano,
	"stamp":       time.Stamp,
	"unix":        "",
}

// NewLoggerFromConfig builds a logger and installs its level globally. A
// file Output that cannot be opened falls back to stderr.
func NewLoggerFromConfig(cfg *Config) zerolog.Logger {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	level := ParseLevel(cfg.Level)
	zerolog.SetGlobalLevel(level)

	lc := zerolog.New(cfg.writer()).Level(level).With().Timestamp()
	if cfg.AddCaller || level <= zerolog.DebugLevel {
		lc = lc.Caller()
	}
	return lc.Logger()
}

// ParseLevel maps a level name to zerolog, defaulting to info.
func ParseLevel(name string) zerolog.Level {
	name = strings.ToLower(strings.TrimSpace(name))
	if l, ok := levelAliases[name]; ok {
		return l
	}
	l, err := zerolog.ParseLevel(name)
	if err != nil || name == "" {
		return zerolog.InfoLevel
	}
	return l
}

func (c *Config) writer() io.Writer {
	sink := openSink(c.Output)

	format := strings.ToLower(c.Format)
	if format == "" || format == FormatAuto {
		format = FormatJSON
		if sink == os.Stderr && isTerminal(sink) {
			format = FormatConsole
		}
	}
	if format != FormatConsole && format != "pretty" {
		return sink
	}
	return zerolog.ConsoleWriter{
		Out:        sink,
		TimeFormat: c.timeLayout(),
		NoColor:    c.NoColor,
	}
}

func (c *Config) timeLayout() string {
	if layout, ok := timeLayouts[strings.ToLower(c.TimeFormat)]; ok {
		return layout
	}
	if strings.Contains(c.TimeFormat, "2006") || strings.Contains(c.TimeFormat, "15:04") {
		return c.TimeFormat
	}
	return time.Kitchen
}

func openSink(output string) io.Writer {
	switch strings.ToLower(output) {
	case "", "stderr":
		return os.Stderr
	case "stdout":
		return os.Stdout
	case "discard", "none":
		return io.Discard
	}
	f, err := os.OpenFile(output, os.O_CREATE|os.O_APPEND|os.O_WRONLY, constants.FilePermissions)
	if err != nil {
		return os.Stderr
	}
	return f
}
