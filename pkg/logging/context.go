package logging

import (
	"context"

	"github.com/rs/zerolog"
)

type ctxKey struct{}

// WithLogger attaches logger to ctx. A nil logger attaches the default.
func WithLogger(ctx context.Context, logger *zerolog.Logger) context.Context {
	if logger == nil {
		logger = Default()
	}
	return context.WithValue(ctx, ctxKey{}, logger)
}

// FromContext returns the logger attached to ctx, or the default.
func FromContext(ctx context.Context) *zerolog.Logger {
	if ctx != nil {
		if logger, _ := ctx.Value(ctxKey{}).(*zerolog.Logger); logger != nil {
			return logger
		}
	}
	return Default()
}

// WithSource tags later log lines with the catalog being read.
func WithSource(ctx context.Context, source string) context.Context {
	return withStr(ctx, "source", source)
}

// WithNetwork tags later log lines with the carrier network of a slot.
func WithNetwork(ctx context.Context, network string) context.Context {
	return withStr(ctx, "network", network)
}

// WithOperation tags later log lines with the pipeline stage.
func WithOperation(ctx context.Context, operation string) context.Context {
	return withStr(ctx, "operation", operation)
}

func withStr(ctx context.Context, key, value string) context.Context {
	child := FromContext(ctx).With().Str(key, value).Logger()
	return WithLogger(ctx, &child)
}
