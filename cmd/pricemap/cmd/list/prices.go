package list

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/pricemap/internal/cmd/globals"
	"github.com/agentstation/pricemap/internal/cmd/output"
	"github.com/agentstation/pricemap/pkg/export"
)

// NewPricesCommand creates the list prices subcommand.
func NewPricesCommand(app AppContext) *cobra.Command {
	var (
		resourceFlags *globals.ResourceFlags
		catalogFlags  *globals.CatalogFlags
	)

	cmd := &cobra.Command{
		Use:     "prices",
		Aliases: []string{"price", "slots"},
		Short:   "List reconciled slots",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := output.ParseFormat(app.OutputFormat())
			if err != nil {
				return err
			}

			result, err := reconcile(cmd, app, catalogFlags)
			if err != nil {
				return err
			}

			records := resourceFlags.Filter(export.SortRecords(result.Records()))
			return output.FormatRecords(cmd.OutOrStdout(), records, output.DetectFormat(string(format)))
		},
	}

	resourceFlags = globals.AddResourceFlags(cmd)
	catalogFlags = globals.AddCatalogFlags(cmd)

	return cmd
}
