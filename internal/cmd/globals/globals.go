// Package globals provides shared flag structures and utilities for CLI commands.
package globals

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/pricemap"
	"github.com/agentstation/pricemap/pkg/sources"
)

// CatalogFlags holds the catalog and pricing flags shared by commands that
// run a reconciliation.
type CatalogFlags struct {
	CatalogDir     string
	Embedded       bool
	Files          map[sources.ID]*string
	UndercutAmount float64
	FallbackMargin float64

	cmd *cobra.Command
}

// catalogFlagNames maps each source to the flag that locates it.
var catalogFlagNames = map[sources.ID]string{
	sources.CostCatalogID:    "cost",
	sources.DefaultCatalogID: "default",
	sources.CompetitorAID:    "competitor-a",
	sources.CompetitorBID:    "competitor-b",
}

// AddCatalogFlags adds catalog and pricing flags to a command.
func AddCatalogFlags(cmd *cobra.Command) *CatalogFlags {
	flags := &CatalogFlags{
		Files: make(map[sources.ID]*string),
		cmd:   cmd,
	}

	cmd.Flags().StringVar(&flags.CatalogDir, "catalog-dir", "",
		"Directory holding cost.csv, default.csv, competitor_a.csv and competitor_b.csv")
	cmd.Flags().BoolVar(&flags.Embedded, "embedded", false,
		"Use the embedded sample catalogs, ignoring the configured directory and catalog files")
	for _, id := range sources.IDs() {
		var path string
		flags.Files[id] = &path
		cmd.Flags().StringVar(&path, catalogFlagNames[id], "",
			"Path to the "+id.String()+" CSV")
	}
	cmd.Flags().Float64Var(&flags.UndercutAmount, "undercut", 0,
		"Amount to price below the cheapest competitor")
	cmd.Flags().Float64Var(&flags.FallbackMargin, "fallback-margin", 0,
		"Cost multiplier for slots with no competitor or default price")

	return flags
}

// Options returns price map options for the flags that were set. They are
// meant to be applied after configured options.
func (f *CatalogFlags) Options() []pricemap.Option {
	var opts []pricemap.Option

	if f.Embedded {
		opts = append(opts, pricemap.WithEmbeddedCatalogs())
	} else if f.CatalogDir != "" {
		opts = append(opts, pricemap.WithCatalogDir(f.CatalogDir))
	}

	for _, id := range sources.IDs() {
		if path := f.Files[id]; path != nil && *path != "" {
			opts = append(opts, pricemap.WithCatalogFile(id, *path))
		}
	}

	if f.changed("undercut") {
		opts = append(opts, pricemap.WithUndercutAmount(f.UndercutAmount))
	}
	if f.changed("fallback-margin") {
		opts = append(opts, pricemap.WithFallbackMargin(f.FallbackMargin))
	}

	return opts
}

func (f *CatalogFlags) changed(name string) bool {
	return f.cmd != nil && f.cmd.Flags().Changed(name)
}
