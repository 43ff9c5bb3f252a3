// Package constants provides shared constants for the mortgage-compare application.
package constants

// DateTimeLayout is the format expected in config files and is also the output
// date format.
const DateTimeLayout = "2006-01"

// Financial constants
const (
	// PeriodsPerYear is the number of payment periods in a year (monthly compounding)
	PeriodsPerYear = 12

	// CurrencyPlaces is the number of decimal places in the currency minor unit
	CurrencyPlaces = 2
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
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the API server
	DefaultServerAddress = ":8080"

	// DefaultMaxRequestBytes is the default maximum request body size for
	// submitted configurations (256 KB)
	DefaultMaxRequestBytes int64 = 256 * 1024
)
