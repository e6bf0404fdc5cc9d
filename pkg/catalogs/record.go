package catalogs

import "slices"

// Status is the publishing state of a reconciled slot.
type Status string

const (
	// StatusActive marks a slot that can be sold at its final price.
	StatusActive Status = "Active"
	// StatusExcluded marks a slot whose profit floor keeps it above the
	// cheapest competitor, or whose cost is unknown.
	StatusExcluded Status = "Excluded"
)

// String returns the status name.
func (s Status) String() string {
	return string(s)
}

// Basis names the rule that produced a final price.
type Basis string

const (
	// BasisCompetitor prices by undercutting the cheapest competitor.
	BasisCompetitor Basis = "competitor"
	// BasisDefault uses the default selling price.
	BasisDefault Basis = "default"
	// BasisFallbackMargin marks up the cost price.
	BasisFallbackMargin Basis = "fallback_margin"
	// BasisNoCost marks a slot that cannot be priced without a cost.
	BasisNoCost Basis = "no_cost"
)

// CompetitorPrice is the cheapest price one competitor asks for a slot.
type CompetitorPrice struct {
	Source string   `json:"source" yaml:"source"`
	Price  *float64 `json:"price,omitempty" yaml:"price,omitempty"`
}

// Record is the reconciled view of one slot. It is created from the cheapest
// cost offer and filled in by later pipeline stages.
type Record struct {
	Key           `yaml:",inline"`
	PlanID        string `json:"plan_id,omitempty" yaml:"plan_id,omitempty"`
	RawSize       string `json:"size" yaml:"size"`
	ValidityLabel string `json:"validity_label" yaml:"validity_label"`

	CostPrice    float64  `json:"cost_price" yaml:"cost_price"`
	CostMissing  bool     `json:"cost_missing,omitempty" yaml:"cost_missing,omitempty"`
	DefaultPrice *float64 `json:"default_price,omitempty" yaml:"default_price,omitempty"`
	Swapped      bool     `json:"swapped,omitempty" yaml:"swapped,omitempty"`

	Competitors           []CompetitorPrice `json:"competitors,omitempty" yaml:"competitors,omitempty"`
	LowestCompetitorPrice *float64          `json:"lowest_competitor_price,omitempty" yaml:"lowest_competitor_price,omitempty"`

	FinalPrice float64 `json:"final_price" yaml:"final_price"`
	Status     Status  `json:"status" yaml:"status"`
	Basis      Basis   `json:"basis" yaml:"basis"`
}

// NewRecord starts a record from the offer that won its slot.
func NewRecord(offer Offer) *Record {
	r := &Record{
		Key:           offer.Key,
		PlanID:        offer.PlanID,
		RawSize:       offer.RawSize,
		ValidityLabel: offer.RawValidity,
	}
	if offer.Price != nil {
		r.CostPrice = *offer.Price
	} else {
		r.CostMissing = true
	}
	return r
}

// Competitor returns the price recorded for a competitor source.
func (r *Record) Competitor(source string) *float64 {
	for _, c := range r.Competitors {
		if c.Source == source {
			return c.Price
		}
	}
	return nil
}

// SetCompetitor records a competitor price, replacing any earlier entry for
// the same source. Entries keep their first insertion order.
func (r *Record) SetCompetitor(source string, price *float64) {
	i := slices.IndexFunc(r.Competitors, func(c CompetitorPrice) bool { return c.Source == source })
	if i >= 0 {
		r.Competitors[i].Price = price
		return
	}
	r.Competitors = append(r.Competitors, CompetitorPrice{Source: source, Price: price})
}

// CompetitorPrices returns the present competitor prices in source order.
func (r *Record) CompetitorPrices() []float64 {
	var prices []float64
	for _, c := range r.Competitors {
		if c.Price != nil {
			prices = append(prices, *c.Price)
		}
	}
	return prices
}

// IsActive reports whether the slot is sellable.
func (r *Record) IsActive() bool {
	return r.Status == StatusActive
}
