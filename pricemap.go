package pricemap

import (
	"context"
	"fmt"
	"sync"

	"github.com/agentstation/pricemap/pkg/reconciler"
)

// PriceMap reconciles the configured catalogs and fires hooks when the
// price list changes between runs
type PriceMap interface {
	// Reconcile loads every catalog and rebuilds the price list
	Reconcile(ctx context.Context) (*reconciler.Result, error)

	// Result returns the most recent successful reconciliation, or nil
	Result() *reconciler.Result

	// OnSlotAdded registers a callback for slots new in a run
	OnSlotAdded(SlotAddedHook)

	// OnSlotUpdated registers a callback for slots whose record changed
	OnSlotUpdated(SlotUpdatedHook)

	// OnSlotRemoved registers a callback for slots gone from a run
	OnSlotRemoved(SlotRemovedHook)
}

// pricemap is the internal implementation of the PriceMap interface
type pricemap struct {
	*hooks

	mu         sync.RWMutex
	config     *config
	reconciler reconciler.Reconciler
	result     *reconciler.Result
}

// New creates a new PriceMap instance with the given options
func New(opts ...Option) (PriceMap, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, fmt.Errorf("applying options: %w", err)
		}
	}

	r, err := reconciler.New(cfg.reconcilerOpts...)
	if err != nil {
		return nil, fmt.Errorf("creating reconciler: %w", err)
	}

	return &pricemap{
		hooks:      newHooks(),
		config:     cfg,
		reconciler: r,
	}, nil
}

// Reconcile loads every catalog and rebuilds the price list
func (p *pricemap) Reconcile(ctx context.Context) (*reconciler.Result, error) {
	srcs, err := p.config.sources(ctx)
	if err != nil {
		return nil, err
	}

	result, err := p.reconciler.Sources(ctx, srcs)
	if err != nil {
		return nil, fmt.Errorf("reconciling catalogs: %w", err)
	}

	p.mu.Lock()
	old := p.result
	p.result = result
	p.mu.Unlock()

	p.triggerResultUpdate(old, result)

	return result, nil
}

// Result returns the most recent successful reconciliation, or nil
func (p *pricemap) Result() *reconciler.Result {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.result
}
