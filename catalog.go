package pricemap

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/agentstation/pricemap/internal/catalogs/files"
	"github.com/agentstation/pricemap/internal/embedded"
	"github.com/agentstation/pricemap/pkg/constants"
	"github.com/agentstation/pricemap/pkg/logging"
	"github.com/agentstation/pricemap/pkg/sources"
)

// CatalogFile returns the file name a source is read from inside a catalog
// directory or the embedded samples.
func CatalogFile(id sources.ID) string {
	switch id {
	case sources.CostCatalogID:
		return constants.CostCatalogFile
	case sources.DefaultCatalogID:
		return constants.DefaultCatalogFile
	case sources.CompetitorAID:
		return constants.CompetitorACatalogFile
	case sources.CompetitorBID:
		return constants.CompetitorBCatalogFile
	}
	return id.String() + ".csv"
}

// sources loads one source per known catalog. A cost catalog that cannot be
// read stops the run; any other catalog is handed on as unavailable.
func (c *config) sources(ctx context.Context) ([]sources.Source, error) {
	logger := logging.FromContext(ctx)

	srcs := make([]sources.Source, 0, len(sources.IDs()))
	for _, id := range sources.IDs() {
		table, origin, err := c.load(id)
		if err != nil {
			if id.Role() == sources.RoleCost {
				return nil, fmt.Errorf("loading %s: %w", id, err)
			}
			srcs = append(srcs, sources.Unavailable(id, err))
			continue
		}

		logger.Debug().
			Str("source", id.String()).
			Str("origin", origin).
			Int("rows", table.Len()).
			Msg("loaded catalog")

		var opts []sources.Option
		if cols, ok := c.columns[id]; ok {
			opts = append(opts, sources.WithColumns(cols))
		}
		srcs = append(srcs, sources.New(id, table, opts...))
	}

	return srcs, nil
}

// load reads a catalog from its explicit file, the catalog directory or the
// embedded samples, in that order.
func (c *config) load(id sources.ID) (*sources.Table, string, error) {
	if path, ok := c.catalogFiles[id]; ok {
		table, err := files.Load(path)
		return table, path, err
	}

	name := CatalogFile(id)
	if c.catalogDir != "" {
		path := filepath.Join(c.catalogDir, name)
		table, err := files.Load(path)
		return table, path, err
	}

	table, err := files.LoadFS(embedded.Catalogs(), name)
	return table, "embedded:" + name, err
}
