// Package list provides commands that print the reconciled price list.
package list

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/agentstation/pricemap"
	"github.com/agentstation/pricemap/internal/cmd/globals"
	"github.com/agentstation/pricemap/pkg/logging"
	"github.com/agentstation/pricemap/pkg/reconciler"
)

// AppContext defines the interface that list commands need from the app.
// This allows for better testability and decoupling from the full app.
type AppContext interface {
	PriceMap(opts ...pricemap.Option) (pricemap.PriceMap, error)
	Logger() *zerolog.Logger
	OutputFormat() string
}

// NewCommand creates the list command with app dependencies.
func NewCommand(app AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list [resource]",
		GroupID: "core",
		Short:   "List reconciled slots",
		Long: `List reconciles the catalogs in memory and prints the result.

Available subcommands:
  prices      - Reconciled slots with their prices
  plans       - Downstream plan projection of the active slots`,
		Example: `  pricemap list prices                  # Active slots
  pricemap list prices --all -o wide    # Every slot, with competitor columns
  pricemap list prices --network mtn    # One network
  pricemap list plans -o json           # Plan projection as JSON`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return fmt.Errorf("unknown resource: %s", args[0])
		},
	}

	cmd.AddCommand(NewPricesCommand(app))
	cmd.AddCommand(NewPlansCommand(app))

	return cmd
}

// reconcile runs a reconciliation with the command's catalog flags.
func reconcile(cmd *cobra.Command, app AppContext, catalogFlags *globals.CatalogFlags) (*reconciler.Result, error) {
	ctx := logging.WithLogger(cmd.Context(), app.Logger())

	pm, err := app.PriceMap(catalogFlags.Options()...)
	if err != nil {
		return nil, err
	}
	return pm.Reconcile(ctx)
}
