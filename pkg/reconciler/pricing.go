package reconciler

import (
	"github.com/shopspring/decimal"

	"github.com/agentstation/pricemap/pkg/catalogs"
	"github.com/agentstation/pricemap/pkg/constants"
)

// Policy holds the pricing parameters.
type Policy struct {
	UndercutAmount decimal.Decimal
	FallbackMargin decimal.Decimal
}

// NewPolicy builds a policy from float parameters.
func NewPolicy(undercutAmount, fallbackMargin float64) Policy {
	return Policy{
		UndercutAmount: decimal.NewFromFloat(undercutAmount),
		FallbackMargin: decimal.NewFromFloat(fallbackMargin),
	}
}

// DefaultPolicy undercuts by 5 and marks up by 20% when nothing else is known.
func DefaultPolicy() Policy {
	return NewPolicy(constants.DefaultUndercutAmount, constants.DefaultFallbackMargin)
}

// Price sets the final price, status, basis and lowest competitor price of a
// record from its cost, default and competitor prices.
//
// With competitors the price is the cheapest competitor minus the undercut.
// Without, it is the default price or, failing that, cost times the fallback
// margin. The result never drops below cost. A slot priced above the
// cheapest competitor is excluded, and so is a slot with no known cost.
func (p Policy) Price(r *catalogs.Record) {
	var minComp *decimal.Decimal
	if comps := r.CompetitorPrices(); len(comps) > 0 {
		m := decimal.NewFromFloat(comps[0])
		for _, c := range comps[1:] {
			m = decimal.Min(m, decimal.NewFromFloat(c))
		}
		minComp = &m
	}

	r.LowestCompetitorPrice = nil
	if minComp != nil {
		lowest := minComp.InexactFloat64()
		r.LowestCompetitorPrice = &lowest
	}

	if r.CostMissing {
		r.FinalPrice = 0
		r.Basis = catalogs.BasisNoCost
		r.Status = catalogs.StatusExcluded
		return
	}

	cost := decimal.NewFromFloat(r.CostPrice)
	var final decimal.Decimal
	switch {
	case minComp != nil:
		final = minComp.Sub(p.UndercutAmount)
		r.Basis = catalogs.BasisCompetitor
	case r.DefaultPrice != nil:
		final = decimal.NewFromFloat(*r.DefaultPrice)
		r.Basis = catalogs.BasisDefault
	default:
		final = cost.Mul(p.FallbackMargin)
		r.Basis = catalogs.BasisFallbackMargin
	}

	if final.LessThan(cost) {
		final = cost
	}
	r.FinalPrice = final.InexactFloat64()

	r.Status = catalogs.StatusActive
	if minComp != nil && final.GreaterThan(*minComp) {
		r.Status = catalogs.StatusExcluded
	}
}
