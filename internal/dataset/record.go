package dataset

import (
	"math"

	"github.com/iwvelando/loan-analysis/pkg/format"
)

// Record represents one loan. Numeric fields hold NaN when the source cell
// was missing or unparseable; string fields hold the cell text as-is.
type Record struct {
	LoanAmount     float64
	LoanTerm       string
	InterestRate   float64
	MonthlyPayment float64
	SubGrade       string
	EmpTitle       string
	EmpLength      string
	HomeOwnership  string
	AnnualIncome   float64
	DTI            float64
	LoanPurpose    string
	State          string
	Status         string
	Delinquencies  float64
	CreditLimit    float64
}

// Numeric returns the record's value for a numeric column. The second return
// is false when the column does not carry numeric values.
func (r Record) Numeric(col Column) (float64, bool) {
	switch col {
	case ColumnLoanAmount:
		return r.LoanAmount, true
	case ColumnInterestRate:
		return r.InterestRate, true
	case ColumnMonthlyPayment:
		return r.MonthlyPayment, true
	case ColumnAnnualIncome:
		return r.AnnualIncome, true
	case ColumnDTI:
		return r.DTI, true
	case ColumnDelinquencies:
		return r.Delinquencies, true
	case ColumnCreditLimit:
		return r.CreditLimit, true
	}
	return math.NaN(), false
}

// Value returns the display rendering of the given column; numeric columns go
// through the shared cell formatter so missing values render as empty cells.
func (r Record) Value(col Column) string {
	switch col {
	case ColumnLoanTerm:
		return r.LoanTerm
	case ColumnSubGrade:
		return r.SubGrade
	case ColumnEmpTitle:
		return r.EmpTitle
	case ColumnEmpLength:
		return r.EmpLength
	case ColumnHomeOwnership:
		return r.HomeOwnership
	case ColumnLoanPurpose:
		return r.LoanPurpose
	case ColumnState:
		return r.State
	case ColumnStatus:
		return r.Status
	}
	if v, ok := r.Numeric(col); ok {
		return format.Cell(v)
	}
	return ""
}
