// Package constants provides shared constants for the mortgage-compare application.
package constants

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// CurrencyPlaces is the number of minor-unit digits shown for money
	CurrencyPlaces = 2

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0

	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01

	// DefaultCurrencySymbol is prefixed to rendered monetary amounts
	DefaultCurrencySymbol = "£"
)

// Input bounds
const (
	// MaxTermYears is the longest mortgage term accepted
	MaxTermYears = 40

	// MaxTermMonths is MaxTermYears expressed in months
	MaxTermMonths = MaxTermYears * MonthsPerYear

	// MaxAnnualRatePercent is the highest annual rate accepted
	MaxAnnualRatePercent = 100.0

	// MinAnnualRatePercent is the smallest rate a lender would realistically quote;
	// lower values only raise a warning
	MinAnnualRatePercent = 0.01

	// MinTypicalPrincipal is the smallest principal a lender would realistically
	// offer; lower values only raise a warning
	MinTypicalPrincipal = 1000.0
)

// Default comparison values
const (
	// DefaultFixYears is the fix length used when none is configured
	DefaultFixYears = 5

	// DefaultTermYears is the term used when an offer omits one
	DefaultTermYears = 25
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format (monthly balance trajectory)
	OutputFormatCSV = "csv"

	// OutputFormatJSON is the machine-readable report format
	OutputFormatJSON = "json"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default comparison file name
	DefaultConfigFile = "compare.yaml"

	// ExampleConfigFile is the example comparison file name
	ExampleConfigFile = "compare.yaml.example"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"

	// EnvPrefix namespaces environment overrides (e.g. MORTGAGE_SETTINGS_FIXYEARS)
	EnvPrefix = "MORTGAGE"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the API
	DefaultServerAddress = ":8080"

	// DefaultMaxUploadSizeBytes is the default maximum upload size for YAML configs (64 KB)
	DefaultMaxUploadSizeBytes int64 = 64 * 1024
)
