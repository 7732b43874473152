// Package constants provides shared constants for the loan-analysis application.
package constants

// High-risk thresholds matching the established business rule: a loan is high
// risk when int_rate > 15 OR total_dti > 25 OR delinq_2yrs > 0.
const (
	// DefaultMaxInterestRate is the interest rate threshold in percent.
	DefaultMaxInterestRate = 15.0

	// DefaultMaxDTI is the debt-to-income ratio threshold.
	DefaultMaxDTI = 25.0

	// DefaultMaxDelinquencies is the past-delinquency count threshold.
	DefaultMaxDelinquencies = 0.0
)

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"
)

// Export format constants
const (
	// ExportFormatCSV exports each table view as a delimited-text file
	ExportFormatCSV = "csv"

	// ExportFormatXLSX exports all table views into one workbook
	ExportFormatXLSX = "xlsx"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// ExampleConfigFile is the example configuration file name
	ExampleConfigFile = "config.yaml.example"
)

// Histogram defaults
const (
	// DefaultHistogramBins is the bin count for the interest rate distribution
	DefaultHistogramBins = 30
)

// Export file names retained from the existing download contract.
const (
	// ExportFileAllLoans is the filtered all-loans export file name
	ExportFileAllLoans = "filtered_loans.csv"

	// ExportFileDefaulters is the defaulters export file name
	ExportFileDefaulters = "defaulters.csv"

	// ExportFileCurrent is the current-loans export file name
	ExportFileCurrent = "current_loans.csv"

	// ExportFileFullyPaid is the fully-paid export file name
	ExportFileFullyPaid = "paid_loans.csv"

	// ExportFileHighRisk is the high-risk export file name
	ExportFileHighRisk = "high_risk_loans.csv"

	// ExportFileWorkbook is the all-views workbook export file name
	ExportFileWorkbook = "loan_views.xlsx"
)
