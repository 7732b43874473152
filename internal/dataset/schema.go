// Package dataset loads the loan record file into an immutable in-memory
// snapshot and validates it against the explicit column schema up front, so
// that a malformed file fails once at load time rather than on a later query.
package dataset

// Column identifies a loan record field by its header name in the source file.
type Column string

// The full loan record schema. Every column is required at load time.
const (
	ColumnLoanAmount     Column = "loan_amnt"
	ColumnLoanTerm       Column = "loan_term"
	ColumnInterestRate   Column = "int_rate"
	ColumnMonthlyPayment Column = "monthly_payment"
	ColumnSubGrade       Column = "sub_grade"
	ColumnEmpTitle       Column = "emp_title"
	ColumnEmpLength      Column = "emp_length"
	ColumnHomeOwnership  Column = "home_ownership"
	ColumnAnnualIncome   Column = "annual_inc"
	ColumnDTI            Column = "total_dti"
	ColumnLoanPurpose    Column = "loan_purpose"
	ColumnState          Column = "addr_state"
	ColumnStatus         Column = "loan_status"
	ColumnDelinquencies  Column = "delinq_2yrs"
	ColumnCreditLimit    Column = "credit_limit"
)

// Loan lifecycle states with classification significance. Other status values
// may appear in the data and pass through the unclassified cohorts unaffected.
const (
	StatusCurrent     = "Current"
	StatusFullyPaid   = "Fully Paid"
	StatusChargedOff  = "Charged Off"
	StatusLate16To30  = "Late (16-30 days)"
	StatusLate31To120 = "Late (31-120 days)"
)

// KnownStatuses returns the classified lifecycle states.
func KnownStatuses() []string {
	return []string{
		StatusCurrent,
		StatusFullyPaid,
		StatusChargedOff,
		StatusLate16To30,
		StatusLate31To120,
	}
}

// RequiredColumns returns the schema columns in canonical order.
func RequiredColumns() []Column {
	return []Column{
		ColumnLoanAmount,
		ColumnLoanTerm,
		ColumnInterestRate,
		ColumnMonthlyPayment,
		ColumnSubGrade,
		ColumnEmpTitle,
		ColumnEmpLength,
		ColumnHomeOwnership,
		ColumnAnnualIncome,
		ColumnDTI,
		ColumnLoanPurpose,
		ColumnState,
		ColumnStatus,
		ColumnDelinquencies,
		ColumnCreditLimit,
	}
}

// numericColumns are the schema columns carrying numeric values; their cells
// may be missing and parse to NaN.
var numericColumns = map[Column]bool{
	ColumnLoanAmount:     true,
	ColumnInterestRate:   true,
	ColumnMonthlyPayment: true,
	ColumnAnnualIncome:   true,
	ColumnDTI:            true,
	ColumnDelinquencies:  true,
	ColumnCreditLimit:    true,
}

// IsNumeric reports whether the column carries numeric values.
func IsNumeric(col Column) bool {
	return numericColumns[col]
}

// MissingColumns returns the required columns absent from the given header
// set, in canonical order.
func MissingColumns(headers []string) []Column {
	present := make(map[string]bool, len(headers))
	for _, h := range headers {
		present[h] = true
	}

	var missing []Column
	for _, col := range RequiredColumns() {
		if !present[string(col)] {
			missing = append(missing, col)
		}
	}
	return missing
}
