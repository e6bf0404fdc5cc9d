package reconciler

import (
	"math"

	"github.com/agentstation/pricemap/pkg/constants"
	"github.com/agentstation/pricemap/pkg/errors"
	"github.com/agentstation/pricemap/pkg/sources"
)

// options configures a reconciler.
type options struct {
	undercutAmount  float64
	fallbackMargin  float64
	competitorOrder []sources.ID // competitors listed first are attached first
}

func defaultOptions() *options {
	return &options{
		undercutAmount: constants.DefaultUndercutAmount,
		fallbackMargin: constants.DefaultFallbackMargin,
	}
}

// Option is a function that configures a Reconciler.
type Option func(*options) error

func (options *options) apply(opts ...Option) (*options, error) {
	for _, opt := range opts {
		if err := opt(options); err != nil {
			return nil, err
		}
	}
	return options, nil
}

// newOptions returns reconciler options with default values.
func newOptions(opts ...Option) (*options, error) {
	return defaultOptions().apply(opts...)
}

// WithUndercutAmount sets how far below the cheapest competitor to price.
func WithUndercutAmount(amount float64) Option {
	return func(o *options) error {
		if amount < 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
			return &errors.ValidationError{
				Field:   "undercut_amount",
				Value:   amount,
				Message: "must be a finite number >= 0",
			}
		}
		o.undercutAmount = amount
		return nil
	}
}

// WithFallbackMargin sets the cost multiplier used when a slot has neither a
// competitor nor a default price.
func WithFallbackMargin(margin float64) Option {
	return func(o *options) error {
		if margin <= 0 || math.IsNaN(margin) || math.IsInf(margin, 0) {
			return &errors.ValidationError{
				Field:   "fallback_margin",
				Value:   margin,
				Message: "must be a finite number > 0",
			}
		}
		o.fallbackMargin = margin
		return nil
	}
}

// WithCompetitorOrder fixes the order competitor prices are attached to
// records. Competitors not listed follow in the order they were passed.
func WithCompetitorOrder(ids ...sources.ID) Option {
	return func(o *options) error {
		o.competitorOrder = ids
		return nil
	}
}
