package report

import (
	"github.com/iwvelando/loan-analysis/internal/cohort"
	"github.com/iwvelando/loan-analysis/internal/dataset"
)

// The per-view display columns are part of the external contract; exported
// files and rendered tables must keep these exact layouts.

var allColumns = []dataset.Column{
	dataset.ColumnLoanAmount,
	dataset.ColumnLoanTerm,
	dataset.ColumnInterestRate,
	dataset.ColumnMonthlyPayment,
	dataset.ColumnSubGrade,
	dataset.ColumnEmpTitle,
	dataset.ColumnEmpLength,
	dataset.ColumnHomeOwnership,
	dataset.ColumnAnnualIncome,
	dataset.ColumnDTI,
	dataset.ColumnLoanPurpose,
	dataset.ColumnState,
	dataset.ColumnStatus,
	dataset.ColumnDelinquencies,
	dataset.ColumnCreditLimit,
}

var defaulterColumns = []dataset.Column{
	dataset.ColumnLoanAmount,
	dataset.ColumnInterestRate,
	dataset.ColumnMonthlyPayment,
	dataset.ColumnEmpTitle,
	dataset.ColumnAnnualIncome,
	dataset.ColumnDTI,
	dataset.ColumnHomeOwnership,
	dataset.ColumnLoanPurpose,
	dataset.ColumnState,
	dataset.ColumnStatus,
	dataset.ColumnDelinquencies,
	dataset.ColumnEmpLength,
}

var currentColumns = []dataset.Column{
	dataset.ColumnLoanAmount,
	dataset.ColumnInterestRate,
	dataset.ColumnMonthlyPayment,
	dataset.ColumnEmpTitle,
	dataset.ColumnAnnualIncome,
	dataset.ColumnDTI,
	dataset.ColumnHomeOwnership,
	dataset.ColumnLoanPurpose,
	dataset.ColumnState,
	dataset.ColumnEmpLength,
}

var fullyPaidColumns = []dataset.Column{
	dataset.ColumnLoanAmount,
	dataset.ColumnInterestRate,
	dataset.ColumnMonthlyPayment,
	dataset.ColumnEmpTitle,
	dataset.ColumnAnnualIncome,
	dataset.ColumnDTI,
	dataset.ColumnHomeOwnership,
	dataset.ColumnLoanPurpose,
	dataset.ColumnState,
}

var highRiskColumns = []dataset.Column{
	dataset.ColumnLoanAmount,
	dataset.ColumnInterestRate,
	dataset.ColumnDTI,
	dataset.ColumnEmpTitle,
	dataset.ColumnAnnualIncome,
	dataset.ColumnHomeOwnership,
	dataset.ColumnStatus,
	dataset.ColumnDelinquencies,
	dataset.ColumnLoanPurpose,
	dataset.ColumnEmpLength,
}

// cohortViews lays out the four cohort tabs in display order.
var cohortViews = []struct {
	key     string
	name    cohort.Name
	title   string
	columns []dataset.Column
	sortBy  dataset.Column
}{
	{ViewDefaulters, cohort.Defaulters, "Defaulters", defaulterColumns, dataset.ColumnLoanAmount},
	{ViewCurrent, cohort.Current, "Current", currentColumns, dataset.ColumnLoanAmount},
	{ViewFullyPaid, cohort.FullyPaid, "Fully Paid", fullyPaidColumns, dataset.ColumnLoanAmount},
	{ViewHighRisk, cohort.HighRisk, "High Risk", highRiskColumns, dataset.ColumnInterestRate},
}
