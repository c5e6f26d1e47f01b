// Package constants provides shared constants for mortgage-schedule.
package constants

// DateTimeLayout is the format expected in config files and is also the output
// date format.
const DateTimeLayout = "2006-01-02"

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// CurrencyTolerance is the tolerance for currency comparisons (1 cent);
	// the amortization loop treats a balance at or below this as paid off
	CurrencyTolerance = 0.01

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0

	// AverageDaysPerMonth is the fixed day step used for monthly payment
	// dates; kept for output compatibility with prior schedules even though
	// it drifts from calendar months over long horizons
	AverageDaysPerMonth = 30.44

	// MinimumDownPaymentPercent is the insurance floor; below this the
	// financing cannot be computed
	MinimumDownPaymentPercent = 5.0

	// UninsuredDownPaymentPercent is the threshold at or above which no
	// mortgage default insurance is required
	UninsuredDownPaymentPercent = 20.0
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable table format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"

	// OutputFormatReport is the human-readable document format
	OutputFormatReport = "report"

	// OutputFormatJSON is the machine-readable schedule serialization
	OutputFormatJSON = "json"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address
	DefaultServerAddress = ":8080"

	// DefaultMaxBodySizeBytes is the default maximum request body size for
	// schedule and profile payloads (256 KB)
	DefaultMaxBodySizeBytes int64 = 256 * 1024
)
