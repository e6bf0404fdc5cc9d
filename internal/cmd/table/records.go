// Package table converts reconciled data into rows for terminal tables.
package table

import (
	"strconv"

	"github.com/agentstation/pricemap/pkg/catalogs"
	"github.com/agentstation/pricemap/pkg/export"
)

// Align represents column alignment in tables.
type Align int

const (
	// AlignDefault uses the default alignment (skip).
	AlignDefault Align = iota
	// AlignLeft aligns content to the left.
	AlignLeft
	// AlignCenter centers content.
	AlignCenter
	// AlignRight aligns content to the right.
	AlignRight
)

// Data represents table formatting data to avoid import cycles.
type Data struct {
	Headers         []string
	Rows            [][]string
	ColumnAlignment []Align // Optional: column alignment
}

// RecordsToTableData converts reconciled records to table format. Wide adds
// per-competitor prices, the pricing basis and swap marker.
func RecordsToTableData(records []*catalogs.Record, wide bool) Data {
	headers := []string{"Network", "Plan ID", "Size (GB)", "Validity", "Cost", "Default", "Competitor", "Final", "Status"}
	align := []Align{AlignLeft, AlignLeft, AlignRight, AlignLeft, AlignRight, AlignRight, AlignRight, AlignRight, AlignLeft}

	var competitorNames []string
	if wide {
		competitorNames = competitorSources(records)
		for _, name := range competitorNames {
			headers = append(headers, name)
			align = append(align, AlignRight)
		}
		headers = append(headers, "Basis", "Swapped")
		align = append(align, AlignLeft, AlignCenter)
	}

	rows := make([][]string, 0, len(records))
	for _, r := range records {
		cost, final := FormatPrice(r.CostPrice), FormatPrice(r.FinalPrice)
		if r.CostMissing {
			cost, final = "-", "-"
		}
		row := []string{
			r.Network.String(),
			Dash(r.PlanID),
			catalogs.FormatSize(r.SizeGB),
			Dash(r.ValidityLabel),
			cost,
			FormatOptionalPrice(r.DefaultPrice),
			FormatOptionalPrice(r.LowestCompetitorPrice),
			final,
			r.Status.String(),
		}
		if wide {
			for _, name := range competitorNames {
				row = append(row, FormatOptionalPrice(r.Competitor(name)))
			}
			swapped := ""
			if r.Swapped {
				swapped = "✓"
			}
			row = append(row, string(r.Basis), swapped)
		}
		rows = append(rows, row)
	}

	return Data{Headers: headers, Rows: rows, ColumnAlignment: align}
}

// PlansToTableData converts the plan projection to table format.
func PlansToTableData(plans []export.Plan) Data {
	rows := make([][]string, 0, len(plans))
	for _, p := range plans {
		rows = append(rows, []string{
			strconv.Itoa(p.NetworkID),
			Dash(p.PlanID),
			p.NetworkName,
			p.PlanName,
			strconv.Itoa(p.Amount),
			FormatPrice(p.CostPrice),
		})
	}
	return Data{
		Headers:         []string{"Network ID", "Plan ID", "Network", "Plan", "Amount", "Cost"},
		Rows:            rows,
		ColumnAlignment: []Align{AlignRight, AlignLeft, AlignLeft, AlignLeft, AlignRight, AlignRight},
	}
}

// competitorSources lists competitor sources in first-seen order.
func competitorSources(records []*catalogs.Record) []string {
	var names []string
	seen := make(map[string]bool)
	for _, r := range records {
		for _, c := range r.Competitors {
			if !seen[c.Source] {
				seen[c.Source] = true
				names = append(names, c.Source)
			}
		}
	}
	return names
}

// FormatPrice renders a price with two decimals only when it has a fraction.
func FormatPrice(p float64) string {
	if p == float64(int64(p)) {
		return strconv.FormatInt(int64(p), 10)
	}
	return strconv.FormatFloat(p, 'f', 2, 64)
}

// FormatOptionalPrice renders an absent price as a dash.
func FormatOptionalPrice(p *float64) string {
	if p == nil {
		return "-"
	}
	return FormatPrice(*p)
}

// Dash replaces empty strings with a dash.
func Dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
