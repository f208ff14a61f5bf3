// Package constants provides shared constants for the kpi-dashboard application.
package constants

// DateLayout is the format expected in config files and is also the output
// date format.
const DateLayout = "2006-01-02"

// Data generation defaults
const (
	// DefaultSeed is the seed a fresh session starts from
	DefaultSeed int64 = 42

	// DefaultStartDate is the first day of the generated series
	DefaultStartDate = "2025-10-01"

	// DefaultEndDate is the last day of the generated series
	DefaultEndDate = "2025-10-31"

	// DefaultRevenueMin is the inclusive lower revenue bound
	DefaultRevenueMin = 3000

	// DefaultRevenueMax is the exclusive upper revenue bound
	DefaultRevenueMax = 8000

	// DefaultProfitMin is the inclusive lower profit bound
	DefaultProfitMin = 500

	// DefaultProfitMax is the exclusive upper profit bound
	DefaultProfitMax = 2000

	// DefaultConversionMin is the lower conversion rate bound in percent
	DefaultConversionMin = 2.0

	// DefaultConversionMax is the upper conversion rate bound in percent
	DefaultConversionMax = 8.0

	// DecimalPrecision is the precision for rate rounding (2 decimal places)
	DecimalPrecision = 100
)

// Window selection constants
const (
	Window7Days  = "7d"
	Window14Days = "14d"
	Window30Days = "30d"
	WindowAll    = "all"

	// DefaultWindow is the selection used when none is configured
	DefaultWindow = Window30Days
)

// Metric names, also used as CSV column headers
const (
	MetricDate           = "Date"
	MetricRevenue        = "Revenue"
	MetricProfit         = "Profit"
	MetricConversionRate = "Conversion Rate"
)

// Placeholder is shown in place of a KPI value when no snapshot is available.
const Placeholder = "—"

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"

	// OutputFormatXLSX is the spreadsheet output format
	OutputFormatXLSX = "xlsx"

	// ExportFileCSV is the download name of CSV exports
	ExportFileCSV = "kpi_data.csv"

	// ExportFileXLSX is the download name of spreadsheet exports
	ExportFileXLSX = "kpi_data.xlsx"

	// ExportSheetName is the worksheet holding exported rows
	ExportSheetName = "KPI Data"
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
	// DefaultServerAddress is the default HTTP listen address for the web UI
	DefaultServerAddress = ":8080"

	// DefaultMaxSessions caps the number of in-memory session seeds
	DefaultMaxSessions = 1024

	// SessionCookieName names the cookie carrying the session id
	SessionCookieName = "kpi_session"
)
