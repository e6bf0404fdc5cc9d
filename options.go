package pricemap

import (
	"github.com/agentstation/pricemap/pkg/errors"
	"github.com/agentstation/pricemap/pkg/reconciler"
	"github.com/agentstation/pricemap/pkg/sources"
)

// Option is a function that configures a PriceMap instance
type Option func(*config) error

// config holds the catalog locations and pricing options of a PriceMap
type config struct {
	// catalogDir holds the four catalogs under their default file names.
	// Empty means the embedded sample catalogs.
	catalogDir string

	// catalogFiles overrides the location of individual catalogs
	catalogFiles map[sources.ID]string

	columns map[sources.ID]sources.Columns

	reconcilerOpts []reconciler.Option
}

func defaultConfig() *config {
	return &config{
		catalogFiles: make(map[sources.ID]string),
		columns:      make(map[sources.ID]sources.Columns),
	}
}

// WithCatalogDir reads catalogs from dir using the default file names
// (cost.csv, default.csv, competitor_a.csv, competitor_b.csv).
func WithCatalogDir(dir string) Option {
	return func(c *config) error {
		if dir == "" {
			return errors.NewValidationError("catalog_dir", dir, "cannot be empty")
		}
		c.catalogDir = dir
		return nil
	}
}

// WithCatalogFile reads one catalog from path, overriding both the catalog
// directory and the embedded samples for that source.
func WithCatalogFile(source sources.ID, path string) Option {
	return func(c *config) error {
		if !source.IsValid() {
			return errors.UnknownSource(source)
		}
		if path == "" {
			return errors.NewValidationError(source.String(), path, "catalog path cannot be empty")
		}
		c.catalogFiles[source] = path
		return nil
	}
}

// WithEmbeddedCatalogs reads every catalog from the compiled-in samples,
// discarding the directory and any files set by earlier options. Catalog
// files set by later options still apply.
func WithEmbeddedCatalogs() Option {
	return func(c *config) error {
		c.catalogDir = ""
		clear(c.catalogFiles)
		return nil
	}
}

// WithColumns overrides the column layout of one catalog
func WithColumns(source sources.ID, columns sources.Columns) Option {
	return func(c *config) error {
		if !source.IsValid() {
			return errors.UnknownSource(source)
		}
		c.columns[source] = columns
		return nil
	}
}

// WithUndercutAmount configures how far below the cheapest competitor slots are priced
func WithUndercutAmount(amount float64) Option {
	return func(c *config) error {
		c.reconcilerOpts = append(c.reconcilerOpts, reconciler.WithUndercutAmount(amount))
		return nil
	}
}

// WithFallbackMargin configures the cost multiplier for slots with no other price
func WithFallbackMargin(margin float64) Option {
	return func(c *config) error {
		c.reconcilerOpts = append(c.reconcilerOpts, reconciler.WithFallbackMargin(margin))
		return nil
	}
}

// WithCompetitorOrder configures the order competitor prices are attached in
func WithCompetitorOrder(ids ...sources.ID) Option {
	return func(c *config) error {
		c.reconcilerOpts = append(c.reconcilerOpts, reconciler.WithCompetitorOrder(ids...))
		return nil
	}
}
