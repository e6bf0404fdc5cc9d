// Package reconciler builds the canonical price list from plan catalogs.
//
// The cost catalog defines the slots: one record per (network, size,
// validity) key, taken from its cheapest offer. Default prices are
// left-joined with a swap correction, competitor minimums are attached, and
// every record is priced by undercutting the cheapest competitor without
// dropping below cost.
package reconciler

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/agentstation/pricemap/pkg/catalogs"
	"github.com/agentstation/pricemap/pkg/logging"
	"github.com/agentstation/pricemap/pkg/sources"
)

// Reconciler is the main interface for reconciling plan catalogs.
type Reconciler interface {
	// Sources reconciles the given catalogs. Exactly one must have the cost
	// role; it alone decides which slots exist.
	Sources(ctx context.Context, srcs []sources.Source) (*Result, error)
}

// reconciler is the default implementation of Reconciler.
type reconciler struct {
	policy          Policy
	undercutAmount  float64
	fallbackMargin  float64
	competitorOrder []sources.ID
}

// New creates a new Reconciler with options.
func New(opts ...Option) (Reconciler, error) {
	options, err := newOptions(opts...)
	if err != nil {
		return nil, err
	}

	return &reconciler{
		policy:          NewPolicy(options.undercutAmount, options.fallbackMargin),
		undercutAmount:  options.undercutAmount,
		fallbackMargin:  options.fallbackMargin,
		competitorOrder: options.competitorOrder,
	}, nil
}

// Sources runs the pipeline: slots, defaults, competitors, pricing.
func (r *reconciler) Sources(ctx context.Context, srcs []sources.Source) (*Result, error) {
	cost, err := validateSources(srcs)
	if err != nil {
		return nil, err
	}

	result := NewResult()
	result.Metadata.UndercutAmount = r.undercutAmount
	result.Metadata.FallbackMargin = r.fallbackMargin

	ctx = logging.WithOperation(ctx, "reconcile")
	logger := logging.FromContext(ctx)

	// Step 1: Slots from the cost catalog
	offers, err := cost.Offers(ctx)
	if err != nil {
		return nil, err
	}
	r.read(result, cost.ID(), len(offers))

	slots, unpriced := buildSlots(offers)
	result.Slots = slots
	result.Metadata.Stats.SlotsUnpriced = len(unpriced)
	r.warn(logger, result, unpriced...)
	logger.Debug().
		Int("offers", len(offers)).
		Int("slots", slots.Len()).
		Msg("deduplicated cost catalog")

	// Step 2: Default prices
	var defaults []catalogs.Offer
	for _, src := range roleOf(srcs, sources.RoleDefault) {
		offers, ok := r.offers(ctx, result, src)
		if ok {
			defaults = append(defaults, offers...)
		}
	}
	result.Metadata.Stats.Swaps = mergeDefaults(ctx, slots, minPrices(defaults))

	// Step 3: Competitor minimums
	for _, src := range orderCompetitors(roleOf(srcs, sources.RoleCompetitor), r.competitorOrder) {
		offers, _ := r.offers(ctx, result, src)
		matched := attachCompetitor(slots, src.ID(), minPrices(offers))
		logger.Debug().
			Str("source", src.ID().String()).
			Int("matched", matched).
			Msg("attached competitor prices")
	}

	// Step 4: Pricing
	for _, rec := range slots.List() {
		r.policy.Price(rec)
	}

	result.tally()
	result.Finalize()

	logger.Info().
		Int("slots", result.Metadata.Stats.SlotsReconciled).
		Int("active", result.Metadata.Stats.Active).
		Int("excluded", result.Metadata.Stats.Excluded).
		Int("swaps", result.Metadata.Stats.Swaps).
		Dur("duration", result.Metadata.Duration).
		Msg("reconciliation complete")

	return result, nil
}

// offers reads a non-cost source. A source that fails is logged, counted as
// degraded and treated as empty.
func (r *reconciler) offers(ctx context.Context, result *Result, src sources.Source) ([]catalogs.Offer, bool) {
	logger := logging.FromContext(logging.WithSource(ctx, src.ID().String()))

	offers, err := src.Offers(ctx)
	if err != nil {
		result.Metadata.Stats.SourcesDegraded++
		r.warn(logger, result, fmt.Sprintf("source %s ignored: %v", src.ID(), err))
		r.read(result, src.ID(), 0)
		return nil, false
	}
	r.read(result, src.ID(), len(offers))
	return offers, true
}

func (r *reconciler) read(result *Result, id sources.ID, n int) {
	result.Metadata.Sources = append(result.Metadata.Sources, id)
	result.Metadata.Stats.OffersRead[id] = n
}

func (r *reconciler) warn(logger *zerolog.Logger, result *Result, msgs ...string) {
	for _, msg := range msgs {
		logger.Warn().Msg(msg)
		result.Warnings = append(result.Warnings, msg)
	}
}

func roleOf(srcs []sources.Source, role sources.Role) []sources.Source {
	var out []sources.Source
	for _, src := range srcs {
		if src.Role() == role {
			out = append(out, src)
		}
	}
	return out
}
