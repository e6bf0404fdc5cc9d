package reconciler

import (
	"fmt"
	"time"

	"github.com/agentstation/pricemap/pkg/catalogs"
	"github.com/agentstation/pricemap/pkg/sources"
)

// Result represents the outcome of a reconciliation run.
type Result struct {
	// Slots holds every reconciled record, active or excluded
	Slots *catalogs.Slots

	// Metadata
	Metadata ResultMetadata

	// Issues that did not stop the run
	Warnings []string
}

// ResultMetadata contains metadata about the reconciliation process.
type ResultMetadata struct {
	// StartTime when reconciliation started
	StartTime time.Time

	// EndTime when reconciliation completed
	EndTime time.Time

	// Duration of the reconciliation
	Duration time.Duration

	// Sources that were reconciled, cost first
	Sources []sources.ID

	// UndercutAmount and FallbackMargin used for pricing
	UndercutAmount float64
	FallbackMargin float64

	// Statistics about the reconciliation
	Stats ResultStatistics
}

// ResultStatistics contains statistics about the reconciliation.
type ResultStatistics struct {
	OffersRead       map[sources.ID]int `json:"offers_read" yaml:"offers_read"`
	SlotsReconciled  int                `json:"slots_reconciled" yaml:"slots_reconciled"`
	SlotsUnpriced    int                `json:"slots_unpriced" yaml:"slots_unpriced"`
	Active           int                `json:"active" yaml:"active"`
	Excluded         int                `json:"excluded" yaml:"excluded"`
	Swaps            int                `json:"swaps" yaml:"swaps"`
	CompetitorPriced int                `json:"competitor_priced" yaml:"competitor_priced"`
	DefaultPriced    int                `json:"default_priced" yaml:"default_priced"`
	FallbackPriced   int                `json:"fallback_priced" yaml:"fallback_priced"`
	SourcesDegraded  int                `json:"sources_degraded" yaml:"sources_degraded"`
	TotalTimeMs      int64              `json:"total_time_ms" yaml:"total_time_ms"`
}

// NewResult creates a new result with defaults.
func NewResult() *Result {
	return &Result{
		Slots:    catalogs.NewSlots(),
		Warnings: []string{},
		Metadata: ResultMetadata{
			StartTime: time.Now(),
			Sources:   []sources.ID{},
			Stats: ResultStatistics{
				OffersRead: make(map[sources.ID]int),
			},
		},
	}
}

// Records returns all records in key order.
func (r *Result) Records() []*catalogs.Record {
	return r.Slots.List()
}

// Active returns the sellable records in key order.
func (r *Result) Active() []*catalogs.Record {
	var active []*catalogs.Record
	for _, rec := range r.Slots.List() {
		if rec.IsActive() {
			active = append(active, rec)
		}
	}
	return active
}

// HasWarnings returns true if any source degraded or a slot had no cost.
func (r *Result) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// Summary returns a human-readable summary of the result.
func (r *Result) Summary() string {
	s := r.Metadata.Stats
	summary := fmt.Sprintf("Reconciled %d slots: %d active, %d excluded, %d swapped, %d fallback-priced",
		s.SlotsReconciled, s.Active, s.Excluded, s.Swaps, s.FallbackPriced)
	if r.HasWarnings() {
		summary += fmt.Sprintf(" (%d warnings)", len(r.Warnings))
	}
	return summary
}

// tally fills the status and basis counters from the records.
func (r *Result) tally() {
	s := &r.Metadata.Stats
	s.SlotsReconciled = r.Slots.Len()
	for _, rec := range r.Slots.List() {
		switch rec.Status {
		case catalogs.StatusActive:
			s.Active++
		case catalogs.StatusExcluded:
			s.Excluded++
		}
		switch rec.Basis {
		case catalogs.BasisCompetitor:
			s.CompetitorPriced++
		case catalogs.BasisDefault:
			s.DefaultPriced++
		case catalogs.BasisFallbackMargin:
			s.FallbackPriced++
		}
	}
}

// Finalize calculates duration and marks completion.
func (r *Result) Finalize() {
	r.Metadata.EndTime = time.Now()
	r.Metadata.Duration = r.Metadata.EndTime.Sub(r.Metadata.StartTime)
	r.Metadata.Stats.TotalTimeMs = r.Metadata.Duration.Milliseconds()
}
