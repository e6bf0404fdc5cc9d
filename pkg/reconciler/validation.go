package reconciler

import (
	"fmt"

	"github.com/agentstation/pricemap/pkg/errors"
	"github.com/agentstation/pricemap/pkg/sources"
)

// validateSources checks that exactly one cost catalog is present and that
// no source ID repeats.
func validateSources(srcs []sources.Source) (sources.Source, error) {
	var cost sources.Source
	seen := make(map[sources.ID]bool, len(srcs))
	for _, src := range srcs {
		if src == nil {
			return nil, &errors.ValidationError{
				Field:   "sources",
				Message: "cannot contain nil",
			}
		}
		if seen[src.ID()] {
			return nil, &errors.ValidationError{
				Field:   "sources",
				Value:   src.ID(),
				Message: fmt.Sprintf("duplicate source %s", src.ID()),
			}
		}
		seen[src.ID()] = true

		if src.Role() != sources.RoleCost {
			continue
		}
		if cost != nil {
			return nil, &errors.ValidationError{
				Field:   "sources",
				Value:   src.ID(),
				Message: fmt.Sprintf("more than one cost catalog (%s, %s)", cost.ID(), src.ID()),
			}
		}
		cost = src
	}

	if cost == nil {
		return nil, &errors.ValidationError{
			Field:   "sources",
			Message: "a cost catalog is required",
		}
	}
	return cost, nil
}
