package reconciler

import (
	"context"

	"github.com/agentstation/pricemap/pkg/catalogs"
	"github.com/agentstation/pricemap/pkg/sources"
)

// mockSource is a test implementation of sources.Source.
type mockSource struct {
	id     sources.ID
	role   sources.Role
	offers []catalogs.Offer
	err    error
}

// NewMockSource creates a source that returns fixed offers. The role is
// derived from the ID.
func NewMockSource(id sources.ID, offers []catalogs.Offer) sources.Source {
	return &mockSource{id: id, role: id.Role(), offers: offers}
}

// NewFailingSource creates a source whose Offers call returns err.
func NewFailingSource(id sources.ID, err error) sources.Source {
	return &mockSource{id: id, role: id.Role(), err: err}
}

// ID returns the source ID.
func (m *mockSource) ID() sources.ID {
	return m.id
}

// Role returns the source role.
func (m *mockSource) Role() sources.Role {
	return m.role
}

// Offers returns the fixed offers or error.
func (m *mockSource) Offers(_ context.Context) ([]catalogs.Offer, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.offers, nil
}

// MockOffer builds a priced offer for a key. A negative price yields an
// unpriced offer.
func MockOffer(network catalogs.Network, sizeGB float64, days int, price float64) catalogs.Offer {
	o := catalogs.Offer{
		Network: network,
		Key:     catalogs.NewKey(network, sizeGB, days),
	}
	if price >= 0 {
		o.Price = &price
	}
	return o
}
