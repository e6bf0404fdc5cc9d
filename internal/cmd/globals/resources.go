package globals

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/pricemap/pkg/catalogs"
)

// ResourceFlags holds flags for listing reconciled slots.
type ResourceFlags struct {
	Network string
	Limit   int
	All     bool
}

// AddResourceFlags adds listing flags to a command.
func AddResourceFlags(cmd *cobra.Command) *ResourceFlags {
	flags := &ResourceFlags{}

	cmd.Flags().StringVarP(&flags.Network, "network", "n", "",
		"Filter by network (MTN, GLO, AIRTEL, 9MOBILE)")
	cmd.Flags().IntVarP(&flags.Limit, "limit", "l", 0,
		"Limit number of results")
	cmd.Flags().BoolVar(&flags.All, "all", false,
		"Include excluded slots")

	return flags
}

// Filter applies the flags to records, keeping their order.
func (f *ResourceFlags) Filter(records []*catalogs.Record) []*catalogs.Record {
	network := catalogs.ParseNetwork(f.Network)

	var out []*catalogs.Record
	for _, rec := range records {
		if !f.All && !rec.IsActive() {
			continue
		}
		if f.Network != "" && rec.Network != network {
			continue
		}
		out = append(out, rec)
		if f.Limit > 0 && len(out) == f.Limit {
			break
		}
	}
	return out
}
