// Package reconcile provides the command that builds the price list and
// writes it to disk.
package reconcile

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/agentstation/pricemap"
	"github.com/agentstation/pricemap/internal/cmd/alerts"
	"github.com/agentstation/pricemap/internal/cmd/globals"
	"github.com/agentstation/pricemap/internal/cmd/output"
	"github.com/agentstation/pricemap/pkg/constants"
	"github.com/agentstation/pricemap/pkg/export"
	"github.com/agentstation/pricemap/pkg/logging"
	"github.com/agentstation/pricemap/pkg/reconciler"
)

// AppContext defines the interface that the reconcile command needs from the app.
type AppContext interface {
	PriceMap(opts ...pricemap.Option) (pricemap.PriceMap, error)
	Logger() *zerolog.Logger
	OutputFormat() string
	OutputDir() string
	NoColor() bool
}

// Flags holds the reconcile command flags.
type Flags struct {
	OutputDir  string
	PricesCSV  string
	PricesJSON string
	PlansCSV   string
	PlansJSON  string
	DryRun     bool
}

// Report is the structured outcome of a run.
type Report struct {
	Summary  string                      `json:"summary" yaml:"summary"`
	Stats    reconciler.ResultStatistics `json:"stats" yaml:"stats"`
	Warnings []string                    `json:"warnings,omitempty" yaml:"warnings,omitempty"`
	Files    []string                    `json:"files,omitempty" yaml:"files,omitempty"`
}

// NewCommand creates the reconcile command with app dependencies.
func NewCommand(app AppContext) *cobra.Command {
	flags := &Flags{}
	var catalogFlags *globals.CatalogFlags

	cmd := &cobra.Command{
		Use:     "reconcile",
		GroupID: "core",
		Short:   "Reconcile catalogs and write the price list",
		Long: `Reconcile reads the four plan catalogs, prices every slot and writes
the active slots as price rows and plans, in CSV and JSON.

Catalogs come from --catalog-dir, per-catalog flags, the config file, or
the embedded samples when none are set.`,
		Example: `  pricemap reconcile                              # Embedded samples, files in .
  pricemap reconcile --catalog-dir ./data -d out  # Read ./data, write to ./out
  pricemap reconcile --undercut 10 --dry-run      # Preview without writing`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, app, flags, catalogFlags)
		},
	}

	cmd.Flags().StringVarP(&flags.OutputDir, "output-dir", "d", "",
		"Directory to write output files to (default from config, then .)")
	cmd.Flags().StringVar(&flags.PricesCSV, "prices-csv", constants.PricesCSVFile, "Price rows CSV file name, empty to skip")
	cmd.Flags().StringVar(&flags.PricesJSON, "prices-json", constants.PricesJSONFile, "Price rows JSON file name, empty to skip")
	cmd.Flags().StringVar(&flags.PlansCSV, "plans-csv", constants.PlansCSVFile, "Plans CSV file name, empty to skip")
	cmd.Flags().StringVar(&flags.PlansJSON, "plans-json", constants.PlansJSONFile, "Plans JSON file name, empty to skip")
	cmd.Flags().BoolVar(&flags.DryRun, "dry-run", false, "Reconcile without writing files")
	catalogFlags = globals.AddCatalogFlags(cmd)

	return cmd
}

func run(cmd *cobra.Command, app AppContext, flags *Flags, catalogFlags *globals.CatalogFlags) error {
	logger := app.Logger()
	ctx := logging.WithLogger(cmd.Context(), logger)

	pm, err := app.PriceMap(catalogFlags.Options()...)
	if err != nil {
		return err
	}

	result, err := pm.Reconcile(ctx)
	if err != nil {
		return err
	}

	report := Report{
		Summary:  result.Summary(),
		Stats:    result.Metadata.Stats,
		Warnings: result.Warnings,
	}

	if !flags.DryRun {
		dir := flags.OutputDir
		if dir == "" {
			dir = app.OutputDir()
		}
		report.Files, err = export.WriteFiles(result.Records(),
			export.WithDir(dir),
			export.WithPricesFiles(flags.PricesCSV, flags.PricesJSON),
			export.WithPlansFiles(flags.PlansCSV, flags.PlansJSON),
		)
		if err != nil {
			return err
		}
		for _, path := range report.Files {
			logger.Debug().Str("path", path).Msg("wrote file")
		}
	}

	logPreview(logger, result)

	format := output.DetectFormat(app.OutputFormat())
	switch format {
	case output.FormatJSON, output.FormatYAML:
		return output.FormatAny(cmd.OutOrStdout(), report, format)
	default:
		return printReport(cmd.OutOrStdout(), report, flags.DryRun, app.NoColor())
	}
}

// logPreview logs the first output records as JSON.
func logPreview(logger *zerolog.Logger, result *reconciler.Result) {
	rows := export.Prices(result.Records())
	if len(rows) > constants.PreviewRecords {
		rows = rows[:constants.PreviewRecords]
	}
	preview, err := json.Marshal(rows)
	if err != nil {
		logger.Warn().Err(err).Msg("encoding preview")
		return
	}
	logger.Info().RawJSON("records", preview).Msg("preview")
}

func printReport(w io.Writer, report Report, dryRun, noColor bool) error {
	msgs := []*alerts.Alert{alerts.NewSuccess(report.Summary)}
	if n := len(report.Warnings); n > 0 {
		msgs = append(msgs, alerts.NewWarning(fmt.Sprintf("%d warnings", n)).WithDetails(report.Warnings...))
	}
	switch {
	case dryRun:
		msgs = append(msgs, alerts.NewInfo("Dry run: no files written"))
	case len(report.Files) > 0:
		msgs = append(msgs, alerts.Infof("Wrote %d files", len(report.Files)).WithDetails(report.Files...))
	}
	return alerts.NewWriter(w, noColor).Write(msgs...)
}
