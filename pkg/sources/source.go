// Package sources turns plan catalogs into offers keyed by market slot.
//
// A catalog arrives as a Table of string cells. Two parsers read it: the
// structured parser takes size and validity from their own columns, and the
// plan-name parser mines both from a single free-text column.
//
// Example usage:
//
//	table, err := sources.NewTable(records)
//	if err != nil {
//	    return err
//	}
//	src := sources.NewStructured(sources.CostCatalogID, table)
//	offers, err := src.Offers(ctx)
package sources

import (
	"context"
	"slices"
	"sync"

	"github.com/agentstation/pricemap/pkg/catalogs"
)

// ID represents the identifier of a catalog source.
type ID string

// String returns the string representation of a source ID.
func (id ID) String() string {
	return string(id)
}

// Known source IDs.
const (
	CostCatalogID    ID = "cost_catalog"
	DefaultCatalogID ID = "default_catalog"
	CompetitorAID    ID = "competitor_a"
	CompetitorBID    ID = "competitor_b"
)

// IDs returns all known source IDs in pipeline order.
func IDs() []ID {
	return []ID{
		CostCatalogID,
		DefaultCatalogID,
		CompetitorAID,
		CompetitorBID,
	}
}

// IsValid returns true if the ID is one of the defined constants.
func (id ID) IsValid() bool {
	return slices.Contains(IDs(), id)
}

// Role returns the part a known source plays in reconciliation. Unknown IDs
// are treated as competitors.
func (id ID) Role() Role {
	switch id {
	case CostCatalogID:
		return RoleCost
	case DefaultCatalogID:
		return RoleDefault
	default:
		return RoleCompetitor
	}
}

// Role is the part a catalog plays in reconciliation.
type Role string

const (
	// RoleCost is the wholesale catalog that defines the slots.
	RoleCost Role = "cost"
	// RoleDefault is the internal list of default selling prices.
	RoleDefault Role = "default"
	// RoleCompetitor is a competitor's public price list.
	RoleCompetitor Role = "competitor"
)

// Source represents a catalog that can be read as offers.
type Source interface {
	// ID returns the identifier of this source
	ID() ID

	// Role returns how the reconciler uses this source
	Role() Role

	// Offers parses the catalog. Bad cells degrade to defaults; only a
	// catalog that cannot be read at all returns an error.
	Offers(ctx context.Context) ([]catalogs.Offer, error)
}

// Sources is a thread-safe container for managing catalog sources.
type Sources struct {
	mu      sync.RWMutex
	sources map[ID]Source
	order   []ID
}

// NewSources creates a new Sources instance holding the given sources.
func NewSources(srcs ...Source) *Sources {
	s := &Sources{sources: make(map[ID]Source)}
	for _, src := range srcs {
		s.Set(src)
	}
	return s
}

// Get returns a source by ID.
func (s *Sources) Get(id ID) (Source, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	src, found := s.sources[id]
	return src, found
}

// Set adds a source, replacing any source with the same ID in place.
func (s *Sources) Set(src Source) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.sources[src.ID()]; !exists {
		s.order = append(s.order, src.ID())
	}
	s.sources[src.ID()] = src
}

// Delete deletes a source by ID.
func (s *Sources) Delete(id ID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sources, id)
	s.order = slices.DeleteFunc(s.order, func(o ID) bool { return o == id })
}

// Len returns the number of sources.
func (s *Sources) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sources)
}

// List returns all sources in insertion order.
func (s *Sources) List() []Source {
	s.mu.RLock()
	defer s.mu.RUnlock()
	list := make([]Source, 0, len(s.order))
	for _, id := range s.order {
		list = append(list, s.sources[id])
	}
	return list
}

// ByRole returns the sources with the given role in insertion order.
func (s *Sources) ByRole(role Role) []Source {
	var list []Source
	for _, src := range s.List() {
		if src.Role() == role {
			list = append(list, src)
		}
	}
	return list
}

// IDs returns the IDs of all sources in insertion order.
func (s *Sources) IDs() []ID {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.order)
}
