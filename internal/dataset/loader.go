package dataset

import (
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/iwvelando/loan-analysis/pkg/loans"
	"github.com/iwvelando/loan-analysis/pkg/mathutil"
	"go.uber.org/zap"
)

// missingTokens are cell values treated as absent numeric data rather than
// parse failures. Matching is case-insensitive.
var missingTokens = map[string]bool{
	"":     true,
	"na":   true,
	"n/a":  true,
	"nan":  true,
	"null": true,
}

// Load reads the CSV loan dataset at path into a snapshot.
func Load(logger *zap.Logger, path string) (*Snapshot, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset %s: %w", path, err)
	}
	defer f.Close()

	return LoadFromReader(logger, f, path)
}

// LoadFromReader parses CSV loan data from r. The source string labels the
// resulting snapshot and any errors; it does not need to be a real path.
func LoadFromReader(logger *zap.Logger, r io.Reader, source string) (*Snapshot, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	df := dataframe.ReadCSV(r,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
	)
	if df.Err != nil {
		return nil, fmt.Errorf("failed to parse dataset %s: %w", source, df.Err)
	}

	if missing := MissingColumns(df.Names()); len(missing) > 0 {
		names := make([]string, len(missing))
		for i, col := range missing {
			names[i] = string(col)
		}
		return nil, fmt.Errorf("dataset %s is missing required columns: %s",
			source, strings.Join(names, ", "))
	}

	cells := make(map[Column][]string, len(numericColumns)+8)
	for _, col := range RequiredColumns() {
		cells[col] = df.Col(string(col)).Records()
	}

	var unparseable int
	parse := func(cell string) float64 {
		v, ok := parseNumber(cell)
		if !ok {
			unparseable++
		}
		return v
	}

	var derived int
	records := make([]Record, df.Nrow())
	for i := range records {
		rec := Record{
			LoanAmount:     parse(cells[ColumnLoanAmount][i]),
			LoanTerm:       cells[ColumnLoanTerm][i],
			InterestRate:   parse(cells[ColumnInterestRate][i]),
			MonthlyPayment: parse(cells[ColumnMonthlyPayment][i]),
			SubGrade:       cells[ColumnSubGrade][i],
			EmpTitle:       cells[ColumnEmpTitle][i],
			EmpLength:      cells[ColumnEmpLength][i],
			HomeOwnership:  cells[ColumnHomeOwnership][i],
			AnnualIncome:   parse(cells[ColumnAnnualIncome][i]),
			DTI:            parse(cells[ColumnDTI][i]),
			LoanPurpose:    cells[ColumnLoanPurpose][i],
			State:          cells[ColumnState][i],
			Status:         cells[ColumnStatus][i],
			Delinquencies:  parse(cells[ColumnDelinquencies][i]),
			CreditLimit:    parse(cells[ColumnCreditLimit][i]),
		}
		if math.IsNaN(rec.MonthlyPayment) {
			if payment, ok := derivePayment(rec); ok {
				rec.MonthlyPayment = payment
				derived++
			}
		}
		records[i] = rec
	}

	if unparseable > 0 {
		logger.Warn(fmt.Sprintf("%d numeric cells could not be parsed and were treated as missing", unparseable),
			zap.String("op", "dataset.LoadFromReader"),
			zap.String("source", source),
		)
	}
	if derived > 0 {
		logger.Debug(fmt.Sprintf("derived monthly payment for %d records", derived),
			zap.String("op", "dataset.LoadFromReader"),
			zap.String("source", source),
		)
	}
	logger.Debug(fmt.Sprintf("loaded %d loan records", len(records)),
		zap.String("op", "dataset.LoadFromReader"),
		zap.String("source", source),
	)

	return NewSnapshot(records, source), nil
}

// parseNumber converts a cell to a float. Missing tokens map to NaN and count
// as successful parses; anything else unparseable maps to NaN with ok false.
func parseNumber(cell string) (float64, bool) {
	trimmed := strings.TrimSpace(cell)
	if missingTokens[strings.ToLower(trimmed)] {
		return math.NaN(), true
	}
	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return math.NaN(), false
	}
	return v, true
}

// derivePayment computes the amortized monthly payment for records whose
// payment cell was missing, when the amount, rate, and term allow it.
func derivePayment(rec Record) (float64, bool) {
	if math.IsNaN(rec.LoanAmount) || math.IsNaN(rec.InterestRate) {
		return 0, false
	}
	months, err := loans.ParseTermMonths(rec.LoanTerm)
	if err != nil {
		return 0, false
	}
	return mathutil.Round(loans.CalculateMonthlyPayment(rec.LoanAmount, rec.InterestRate, months)), true
}
