package reconciler

import (
	"context"

	"github.com/agentstation/pricemap/pkg/catalogs"
	"github.com/agentstation/pricemap/pkg/logging"
)

// mergeDefaults left-joins default prices onto the slots and applies the swap
// correction: when the cost price exceeds the default price the two are
// exchanged, so the lower quote is always treated as cost. It returns the
// number of swaps.
func mergeDefaults(ctx context.Context, slots *catalogs.Slots, defaults map[catalogs.Key]float64) int {
	swaps := 0
	for _, r := range slots.List() {
		price, ok := defaults[r.Key]
		if !ok {
			continue
		}
		r.DefaultPrice = &price

		if !r.CostMissing && r.CostPrice > *r.DefaultPrice {
			cost := r.CostPrice
			r.CostPrice = *r.DefaultPrice
			r.DefaultPrice = &cost
			r.Swapped = true
			swaps++

			logging.FromContext(logging.WithNetwork(ctx, r.Key.Network.String())).Warn().
				Str("slot", r.Key.String()).
				Float64("cost_price", r.CostPrice).
				Float64("default_price", *r.DefaultPrice).
				Msg("cost above default, swapped")
		}
	}
	return swaps
}
