// Package constants provides shared constants for the mortgage-calc application.
package constants

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// DisplayDecimals is the number of decimals printed for currency amounts
	DisplayDecimals = 2

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0

	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01
)

// Scenario defaults
const (
	// DefaultAnnualRate is the nominal APR assumed when none is given (4.5%)
	DefaultAnnualRate = 0.045

	// DefaultClosingCostRate is the share of the purchase price assumed for closing costs
	DefaultClosingCostRate = 0.07

	// DefaultInsuranceRate is the share of the purchase price assumed for annual insurance
	DefaultInsuranceRate = 0.003

	// DefaultLoanTermYears of zero means a loan term must always be supplied
	DefaultLoanTermYears = 0

	// MaxLoanTermYears bounds the accepted loan term
	MaxLoanTermYears = 100
)

// Configuration file constants
const (
	// DefaultConfigFile is the configuration file looked up when --config is not given
	DefaultConfigFile = "mortgage-calc.yaml"

	// EnvPrefix prefixes environment overrides, e.g. MORTGAGE_DEFAULTS_ANNUALRATE
	EnvPrefix = "MORTGAGE"
)

// Process exit codes
const (
	// ExitOK covers successful runs and --help
	ExitOK = 0

	// ExitFailure is used when the program could not start (config, logger)
	ExitFailure = 1

	// ExitUsage is used for bad flags and inputs that fail to resolve
	ExitUsage = 2
)
