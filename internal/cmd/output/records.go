package output

import (
	"io"

	"github.com/agentstation/pricemap/internal/cmd/table"
	"github.com/agentstation/pricemap/pkg/catalogs"
	"github.com/agentstation/pricemap/pkg/export"
)

// FormatRecords writes reconciled records. Tables show the summary columns,
// or every competitor column in wide mode; JSON and YAML carry full records.
func FormatRecords(w io.Writer, records []*catalogs.Record, format Format) error {
	var data any = records
	switch format {
	case FormatTable, FormatWide, "":
		data = table.RecordsToTableData(records, format == FormatWide)
	}
	return NewFormatter(format).Format(w, data)
}

// FormatPlans writes the plan projection.
func FormatPlans(w io.Writer, plans []export.Plan, format Format) error {
	var data any = plans
	switch format {
	case FormatTable, FormatWide, "":
		data = table.PlansToTableData(plans)
	}
	return NewFormatter(format).Format(w, data)
}

// FormatAny writes any value, falling back to reflection for tables.
func FormatAny(w io.Writer, data any, format Format) error {
	return NewFormatter(format).Format(w, data)
}
