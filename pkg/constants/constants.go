// Package constants provides shared constants used throughout the pricemap codebase.
// This includes pricing defaults, file permissions, and output file names
// that should be consistent across the application.
package constants

// Pricing defaults
const (
	// DefaultUndercutAmount is how far below the cheapest competitor a slot is priced, in whole currency units
	DefaultUndercutAmount = 5.0

	// DefaultFallbackMargin multiplies cost when a slot has neither a default price nor competitor data
	DefaultFallbackMargin = 1.2

	// DefaultValidityDays is the validity assumed when a label carries no recognisable period
	DefaultValidityDays = 30

	// SizeDecimals is the number of decimal places a normalised size is rounded to
	SizeDecimals = 3

	// MegabytesPerGigabyte converts MB and TB quantities to GB
	MegabytesPerGigabyte = 1024

	// PlanTypeAll is the plan type written to every downstream plan record
	PlanTypeAll = "ALL"
)

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// Output file names written by the reconcile command
const (
	// PricesCSVFile holds the reconciled Active price list as CSV
	PricesCSVFile = "prices.csv"

	// PricesJSONFile holds the reconciled Active price list as a JSON array
	PricesJSONFile = "prices.json"

	// PlansCSVFile holds the downstream plan projection as CSV
	PlansCSVFile = "plans.csv"

	// PlansJSONFile holds the downstream plan projection as a JSON array
	PlansJSONFile = "plans.json"

	// PreviewRecords is how many output records are echoed after a run
	PreviewRecords = 2
)

// Default catalog file names looked up inside a catalog directory
const (
	CostCatalogFile        = "cost.csv"
	DefaultCatalogFile     = "default.csv"
	CompetitorACatalogFile = "competitor_a.csv"
	CompetitorBCatalogFile = "competitor_b.csv"
)
