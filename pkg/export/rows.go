// Package export shapes reconciled records for downstream use and writes
// them as CSV, JSON or YAML.
//
// Two shapes are produced from the active records: price rows, which keep
// the full pricing picture, and plans, a flattened projection for plan
// tables keyed by numeric network ID.
package export

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/agentstation/pricemap/pkg/catalogs"
	"github.com/agentstation/pricemap/pkg/constants"
)

// PriceRow is one active slot with its prices.
type PriceRow struct {
	Network               catalogs.Network `json:"network" yaml:"network"`
	PlanID                *string          `json:"plan_id" yaml:"plan_id"`
	SizeGB                float64          `json:"size_gb" yaml:"size_gb"`
	ValidityLabel         string           `json:"validity_label" yaml:"validity_label"`
	CostPrice             float64          `json:"cost_price" yaml:"cost_price"`
	DefaultPrice          *float64         `json:"default_price" yaml:"default_price"`
	LowestCompetitorPrice *float64         `json:"lowest_competitor_price" yaml:"lowest_competitor_price"`
	FinalPrice            float64          `json:"final_price" yaml:"final_price"`
	Status                catalogs.Status  `json:"status" yaml:"status"`
}

// priceHeader is the CSV header of price rows.
var priceHeader = []string{
	"network", "plan_id", "size_gb", "validity_label", "cost_price",
	"default_price", "lowest_competitor_price", "final_price", "status",
}

// Plan is the flattened projection of an active slot.
type Plan struct {
	NetworkID   int     `json:"network_id" yaml:"network_id"`
	PlanID      string  `json:"plan_id" yaml:"plan_id"`
	NetworkName string  `json:"network_name" yaml:"network_name"`
	PlanType    string  `json:"plan_type" yaml:"plan_type"`
	PlanName    string  `json:"plan_name" yaml:"plan_name"`
	Amount      int     `json:"amount" yaml:"amount"`
	CostPrice   float64 `json:"cost_price" yaml:"cost_price"`
	Validity    string  `json:"validity" yaml:"validity"`
}

var planHeader = []string{
	"network_id", "plan_id", "network_name", "plan_type", "plan_name",
	"amount", "cost_price", "validity",
}

// SortRecords returns a copy of records ordered by network, then validity
// days, then cost price. Equal records keep their input order.
func SortRecords(records []*catalogs.Record) []*catalogs.Record {
	sorted := slices.Clone(records)
	slices.SortStableFunc(sorted, func(a, b *catalogs.Record) int {
		if c := cmp.Compare(a.Network, b.Network); c != 0 {
			return c
		}
		if c := cmp.Compare(a.ValidityDays, b.ValidityDays); c != 0 {
			return c
		}
		return cmp.Compare(a.CostPrice, b.CostPrice)
	})
	return sorted
}

// Prices returns the active records as price rows in SortRecords order.
func Prices(records []*catalogs.Record) []PriceRow {
	rows := make([]PriceRow, 0, len(records))
	for _, r := range SortRecords(records) {
		if !r.IsActive() {
			continue
		}
		row := PriceRow{
			Network:               r.Network,
			SizeGB:                r.SizeGB,
			ValidityLabel:         r.ValidityLabel,
			CostPrice:             r.CostPrice,
			DefaultPrice:          r.DefaultPrice,
			LowestCompetitorPrice: r.LowestCompetitorPrice,
			FinalPrice:            r.FinalPrice,
			Status:                r.Status,
		}
		if r.PlanID != "" {
			id := r.PlanID
			row.PlanID = &id
		}
		rows = append(rows, row)
	}
	return rows
}

// Plans projects price rows into plans, keeping their order.
func Plans(rows []PriceRow) []Plan {
	plans := make([]Plan, len(rows))
	for i, r := range rows {
		var planID string
		if r.PlanID != nil {
			planID = *r.PlanID
		}
		plans[i] = Plan{
			NetworkID:   r.Network.ID(),
			PlanID:      planID,
			NetworkName: r.Network.String(),
			PlanType:    constants.PlanTypeAll,
			PlanName:    fmt.Sprintf("%sGB - %s", catalogs.FormatSize(r.SizeGB), r.ValidityLabel),
			Amount:      int(r.FinalPrice),
			CostPrice:   r.CostPrice,
			Validity:    r.ValidityLabel,
		}
	}
	return plans
}
