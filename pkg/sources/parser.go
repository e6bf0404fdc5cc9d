package sources

import (
	"context"
	"regexp"

	"github.com/agentstation/pricemap/pkg/catalogs"
	"github.com/agentstation/pricemap/pkg/errors"
	"github.com/agentstation/pricemap/pkg/logging"
	"github.com/agentstation/pricemap/pkg/normalize"
)

// planNameSize finds the first size with a unit in free text.
var planNameSize = regexp.MustCompile(`(?i)([\d.]+\s*(MB|GB|TB))`)

// tableSource parses a Table into offers.
type tableSource struct {
	id       ID
	role     Role
	table    *Table
	columns  Columns
	planName bool
}

// NewStructured returns a source that reads size and validity from their own
// columns. It serves the cost, default and competitor B catalogs.
func NewStructured(id ID, table *Table, opts ...Option) Source {
	o := newOptions(id, opts...)
	return &tableSource{id: id, role: o.role, table: table, columns: *o.columns}
}

// NewPlanName returns a source that mines size and validity from a single
// free-text plan name column, such as "MTN 1.5GB SME - 30 Days".
func NewPlanName(id ID, table *Table, opts ...Option) Source {
	o := newOptions(id, opts...)
	if o.columns.PlanName == "" {
		o.columns.PlanName = CompetitorAColumns.PlanName
	}
	return &tableSource{id: id, role: o.role, table: table, columns: *o.columns, planName: true}
}

// New returns the parser that matches the column layout of a source.
func New(id ID, table *Table, opts ...Option) Source {
	o := newOptions(id, opts...)
	if o.columns.PlanName != "" {
		return NewPlanName(id, table, opts...)
	}
	return NewStructured(id, table, opts...)
}

func (s *tableSource) ID() ID     { return s.id }
func (s *tableSource) Role() Role { return s.role }

// Offers implements Source.
func (s *tableSource) Offers(ctx context.Context) ([]catalogs.Offer, error) {
	ctx = logging.WithSource(ctx, s.id.String())
	logger := logging.FromContext(ctx)

	if s.table == nil {
		return nil, errors.NewSourceError(string(s.id), errors.ErrEmptyCatalog)
	}

	idx := make(map[string]int, len(s.columns.required()))
	for _, name := range s.columns.required() {
		i, ok := s.table.Column(name)
		if !ok {
			return nil, errors.NewMissingColumnError(string(s.id), name)
		}
		idx[name] = i
	}
	col := func(row []string, name string) string {
		if name == "" {
			return ""
		}
		return cell(row, idx[name])
	}

	offers := make([]catalogs.Offer, 0, s.table.Len())
	for n, row := range s.table.Rows {
		if blank(row) {
			continue
		}
		offer := catalogs.Offer{
			Network:  catalogs.ParseNetwork(col(row, s.columns.Network)),
			PlanID:   col(row, s.columns.PlanID),
			RawPrice: col(row, s.columns.Price),
			Row:      n + 1,
		}

		var sizeGB float64
		var days int
		if s.planName {
			name := col(row, s.columns.PlanName)
			offer.RawValidity = name
			if m := planNameSize.FindStringSubmatch(name); m != nil {
				offer.RawSize = m[1]
				sizeGB = normalize.SizeGB(m[1])
			}
			days = normalize.ValidityDays(name)
		} else {
			offer.RawSize = col(row, s.columns.Size)
			offer.RawValidity = col(row, s.columns.Validity)
			sizeGB = normalize.SizeGB(offer.RawSize)
			days = normalize.ValidityDays(offer.RawValidity)
		}

		offer.Key = catalogs.NewKey(offer.Network, sizeGB, days)
		offer.Price = normalize.Price(offer.RawPrice)
		if offer.Price == nil {
			logger.Debug().
				Int("row", offer.Row).
				Str("price", offer.RawPrice).
				Msg("unreadable price")
		}
		offers = append(offers, offer)
	}

	if len(offers) == 0 {
		return nil, errors.NewSourceError(string(s.id), errors.ErrEmptyCatalog)
	}

	logger.Debug().Int("offers", len(offers)).Msg("parsed catalog")
	return offers, nil
}
