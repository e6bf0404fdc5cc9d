package list

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/pricemap/internal/cmd/globals"
	"github.com/agentstation/pricemap/internal/cmd/output"
	"github.com/agentstation/pricemap/pkg/export"
)

// NewPlansCommand creates the list plans subcommand.
func NewPlansCommand(app AppContext) *cobra.Command {
	var catalogFlags *globals.CatalogFlags

	cmd := &cobra.Command{
		Use:     "plans",
		Aliases: []string{"plan"},
		Short:   "List the plan projection of active slots",
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

			plans := export.Plans(export.Prices(result.Records()))
			return output.FormatPlans(cmd.OutOrStdout(), plans, output.DetectFormat(string(format)))
		},
	}

	catalogFlags = globals.AddCatalogFlags(cmd)

	return cmd
}
