// Package logging provides the zerolog setup shared by the pricemap library
// and CLI. Loggers travel through the reconciliation pipeline on the context
// and pick up source, network and operation fields along the way.
//
//	ctx := logging.WithLogger(context.Background(), &log)
//	ctx = logging.WithSource(ctx, "competitor_a")
//	logging.FromContext(ctx).Debug().Msg("attached competitor prices")
package logging

import (
	"io"
	"os"
	"sync"

	goisatty "github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var (
	mu  sync.RWMutex
	std = NewLoggerFromConfig(envConfig())
)

// envConfig seeds the process logger before the CLI has read its config.
func envConfig() *Config {
	cfg := DefaultConfig()
	if lvl := os.Getenv("LOG_LEVEL"); lvl != "" {
		cfg.Level = lvl
	} else if os.Getenv("DEBUG") != "" {
		cfg.Level = "debug"
	}
	if f := os.Getenv("LOG_FORMAT"); f != "" {
		cfg.Format = f
	}
	return cfg
}

// Default returns the process-wide logger.
func Default() *zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	l := std
	return &l
}

// SetDefault replaces the process-wide logger, zerolog's global included.
func SetDefault(logger zerolog.Logger) {
	mu.Lock()
	std = logger
	mu.Unlock()
	log.Logger = logger
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return goisatty.IsTerminal(f.Fd()) || goisatty.IsCygwinTerminal(f.Fd())
}
