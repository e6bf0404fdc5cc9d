package reconciler

import (
	"slices"

	"github.com/agentstation/pricemap/pkg/catalogs"
	"github.com/agentstation/pricemap/pkg/sources"
)

// attachCompetitor records one competitor's minimum price on every slot.
// Slots the competitor does not sell get an absent price.
func attachCompetitor(slots *catalogs.Slots, source sources.ID, prices map[catalogs.Key]float64) (matched int) {
	for _, r := range slots.List() {
		if price, ok := prices[r.Key]; ok {
			r.SetCompetitor(source.String(), &price)
			matched++
			continue
		}
		r.SetCompetitor(source.String(), nil)
	}
	return matched
}

// orderCompetitors puts the listed IDs first, keeping the rest in their
// original order.
func orderCompetitors(srcs []sources.Source, order []sources.ID) []sources.Source {
	if len(order) == 0 {
		return srcs
	}
	rank := func(s sources.Source) int {
		if i := slices.Index(order, s.ID()); i >= 0 {
			return i
		}
		return len(order)
	}
	ordered := slices.Clone(srcs)
	slices.SortStableFunc(ordered, func(a, b sources.Source) int {
		return rank(a) - rank(b)
	})
	return ordered
}
