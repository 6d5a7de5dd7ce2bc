// Package constants provides shared constants for the contractor-calculator application.
package constants

// Financial constants
const (
	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// RatioDisplayPrecision is the precision for ratio display (1 decimal place)
	RatioDisplayPrecision = 10

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0

	// ProfitTolerance is the tolerance for profit conservation comparisons
	ProfitTolerance = 1e-9

	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01
)

// Default deal inputs, expressed in thousands of currency units.
const (
	DefaultPrice           = 200.0
	DefaultAcquisitionCost = 80.0
	DefaultLaborCost       = 40.0
	DefaultMaterialCost    = 40.0
)

// Default slider ranges for the dashboard controls. The cost minimums keep
// the base cost away from zero so the engine never sees a degenerate input
// from the UI.
const (
	DefaultPriceSliderMin = 0.0
	DefaultPriceSliderMax = 500.0

	DefaultAcquisitionSliderMin = 20.0
	DefaultAcquisitionSliderMax = 200.0

	DefaultLaborSliderMin = 10.0
	DefaultLaborSliderMax = 150.0

	DefaultMaterialSliderMin = 10.0
	DefaultMaterialSliderMax = 150.0

	DefaultSliderStep = 5.0
)

// Trend series defaults: sweep the price over [0.5x, 2x] of the total base
// cost in 20 steps, producing 21 sample points.
const (
	DefaultTrendSteps     = 20
	DefaultTrendMinFactor = 0.5
	DefaultTrendMaxFactor = 2.0

	// MaxTrendSteps bounds a single sweep; the step count sizes the
	// result slice, so it must not be attacker-chosen.
	MaxTrendSteps = 1000
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// ExampleConfigFile is the example configuration file name
	ExampleConfigFile = "config.yaml.example"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the web UI
	DefaultServerAddress = ":8080"

	// DefaultMaxRequestSizeBytes is the default maximum request body size for API calls (256 KB)
	DefaultMaxRequestSizeBytes int64 = 256 * 1024
)
