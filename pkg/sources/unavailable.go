package sources

import (
	"context"

	"github.com/agentstation/pricemap/pkg/catalogs"
	"github.com/agentstation/pricemap/pkg/errors"
)

// unavailable is a source whose catalog could not be loaded.
type unavailable struct {
	id  ID
	err error
}

// Unavailable returns a source that reports err from every Offers call.
// It lets a catalog that failed to load still take part in a run, where
// the reconciler decides whether the failure is fatal.
func Unavailable(id ID, err error) Source {
	return &unavailable{id: id, err: err}
}

func (u *unavailable) ID() ID     { return u.id }
func (u *unavailable) Role() Role { return u.id.Role() }

func (u *unavailable) Offers(context.Context) ([]catalogs.Offer, error) {
	return nil, errors.NewSourceError(u.id.String(), u.err)
}
