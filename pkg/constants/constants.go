// Package constants provides shared constants for the pension-calculator application.
package constants

// Policy constants
const (
	// ContributionRatio is the assumed average contribution tier used by the
	// basic pension formula.
	ContributionRatio = 0.6

	// PersonalContributionRate is the share of monthly salary paid into the
	// personal account.
	PersonalContributionRate = 0.08

	// BasicPensionAccrual is the per-year accrual applied to the indexed wage
	// in the basic pension formula (1%).
	BasicPensionAccrual = 0.01

	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// MinimumContributionYears is the number of contribution years required
	// to draw a pension.
	MinimumContributionYears = 15

	// FallbackRetirementAge is the retirement age whose payout divisor is used
	// when an age has no table entry.
	FallbackRetirementAge = 60

	// FallbackPayoutMonths is the payout divisor of FallbackRetirementAge.
	FallbackPayoutMonths = 139
)

// Form defaults
const (
	// DefaultMonthlySalary is the salary the form starts with
	DefaultMonthlySalary = 8000.0

	// DefaultContributionYears is the contribution history the form starts with
	DefaultContributionYears = 15

	// DefaultRetirementAge is the retirement age the form starts with
	DefaultRetirementAge = 60

	// DefaultCity is the nationwide average entry of the city table
	DefaultCity = "National Average"

	// CustomCity labels an average salary supplied directly by the user
	CustomCity = "Custom"
)

// Advisory input ranges. Values outside them are accepted but reported.
const (
	MinAdvisorySalary          = 3000.0
	MaxAdvisorySalary          = 30000.0
	SalaryStep                 = 500.0
	MinAdvisoryContributionYrs = 1
	MaxAdvisoryContributionYrs = 40
	MinAdvisoryRetirementAge   = 50
	MaxAdvisoryRetirementAge   = 70
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"

	// OutputFormatJSON is the JSON output format
	OutputFormatJSON = "json"

	// OutputFormatYAML is the YAML output format
	OutputFormatYAML = "yaml"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "pension.yaml"

	// ExampleConfigFile is the example configuration file name
	ExampleConfigFile = "pension.yaml.example"

	// EnvPrefix is the prefix for environment overrides (PENSION_INPUTS_MONTHLYSALARY, ...)
	EnvPrefix = "PENSION"
)

// Presentation constants
const (
	// CurrencySymbol prefixes formatted amounts
	CurrencySymbol = "¥"

	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// CurrencyDecimalPlaces is the number of decimals rendered for amounts
	CurrencyDecimalPlaces = 2

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0
)
