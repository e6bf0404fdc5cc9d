package reconciler

import (
	"cmp"
	"fmt"
	"maps"
	"slices"

	"github.com/agentstation/pricemap/pkg/catalogs"
)

// cheapest keeps the cheapest offer per key. Offers are stably sorted by
// price with unpriced offers last, so ties go to the earliest row.
func cheapest(offers []catalogs.Offer) map[catalogs.Key]catalogs.Offer {
	sorted := slices.Clone(offers)
	slices.SortStableFunc(sorted, func(a, b catalogs.Offer) int {
		switch {
		case a.Price == nil && b.Price == nil:
			return 0
		case a.Price == nil:
			return 1
		case b.Price == nil:
			return -1
		}
		return cmp.Compare(*a.Price, *b.Price)
	})

	winners := make(map[catalogs.Key]catalogs.Offer)
	for _, o := range sorted {
		if _, seen := winners[o.Key]; !seen {
			winners[o.Key] = o
		}
	}
	return winners
}

// minPrices returns the lowest price per key, ignoring unpriced offers.
func minPrices(offers []catalogs.Offer) map[catalogs.Key]float64 {
	prices := make(map[catalogs.Key]float64)
	for key, o := range cheapest(offers) {
		if o.Price != nil {
			prices[key] = *o.Price
		}
	}
	return prices
}

// buildSlots turns cost offers into one record per key. Keys whose offers
// are all unpriced keep a record marked CostMissing and are reported as
// warnings.
func buildSlots(offers []catalogs.Offer) (*catalogs.Slots, []string) {
	winners := cheapest(offers)
	slots := catalogs.NewSlots(catalogs.WithSlotsCapacity(len(winners)))

	var warnings []string
	for _, key := range slices.SortedFunc(maps.Keys(winners), catalogs.Key.Compare) {
		o := winners[key]
		if o.Price == nil {
			warnings = append(warnings, fmt.Sprintf("slot %s excluded: no readable cost price (row %d)", key, o.Row))
		}
		// Keys are unique here so Add cannot fail.
		_ = slots.Add(catalogs.NewRecord(o))
	}
	return slots, warnings
}
