package dataset

import (
	"math"
	"strings"
	"testing"

	"github.com/iwvelando/loan-analysis/pkg/constants"
	"github.com/iwvelando/loan-analysis/pkg/loans"
	"github.com/iwvelando/loan-analysis/pkg/mathutil"
	"go.uber.org/zap"
)

const sampleCSV = `loan_amnt,loan_term,int_rate,monthly_payment,sub_grade,emp_title,emp_length,home_ownership,annual_inc,total_dti,loan_purpose,addr_state,loan_status,delinq_2yrs,credit_limit
10000,36 months,11.99,332.10,B4,Software Engineer,5 years,RENT,85000,14.2,debt_consolidation,CA,Current,0,24000
25000,60 months,17.5,628.13,D2,Truck Driver,10+ years,MORTGAGE,62000,27.8,credit_card,TX,Charged Off,1,31000
5600,36 months,9.2,178.65,B1,,1 year,RENT,NA,8.1,car,OR,Current,0,9000
`

func TestLoadFromReader(t *testing.T) {
	logger := zap.NewNop()

	snap, err := LoadFromReader(logger, strings.NewReader(sampleCSV), "sample")
	if err != nil {
		t.Fatalf("LoadFromReader() error = %v", err)
	}
	if snap.Len() != 3 {
		t.Fatalf("LoadFromReader() loaded %d records, expected 3", snap.Len())
	}

	records := snap.Records()

	first := records[0]
	if first.LoanAmount != 10000 {
		t.Errorf("first record LoanAmount = %v, expected 10000", first.LoanAmount)
	}
	if first.InterestRate != 11.99 {
		t.Errorf("first record InterestRate = %v, expected 11.99", first.InterestRate)
	}
	if first.MonthlyPayment != 332.10 {
		t.Errorf("first record MonthlyPayment = %v, expected 332.10", first.MonthlyPayment)
	}
	if first.EmpTitle != "Software Engineer" {
		t.Errorf("first record EmpTitle = %q, expected %q", first.EmpTitle, "Software Engineer")
	}
	if first.Status != StatusCurrent {
		t.Errorf("first record Status = %q, expected %q", first.Status, StatusCurrent)
	}

	second := records[1]
	if second.Status != StatusChargedOff {
		t.Errorf("second record Status = %q, expected %q", second.Status, StatusChargedOff)
	}
	if second.Delinquencies != 1 {
		t.Errorf("second record Delinquencies = %v, expected 1", second.Delinquencies)
	}

	third := records[2]
	if third.EmpTitle != "" {
		t.Errorf("third record EmpTitle = %q, expected empty", third.EmpTitle)
	}
	if !math.IsNaN(third.AnnualIncome) {
		t.Errorf("third record AnnualIncome = %v, expected NaN", third.AnnualIncome)
	}

	if snap.Source() != "sample" {
		t.Errorf("Source() = %q, expected %q", snap.Source(), "sample")
	}
}

func TestLoadFromReaderMissingColumns(t *testing.T) {
	csv := `loan_amnt,loan_term,int_rate
10000,36 months,11.99
`
	_, err := LoadFromReader(zap.NewNop(), strings.NewReader(csv), "partial")
	if err == nil {
		t.Fatalf("LoadFromReader() expected error for missing columns but got none")
	}
	for _, col := range []string{"monthly_payment", "loan_status", "credit_limit"} {
		if !strings.Contains(err.Error(), col) {
			t.Errorf("LoadFromReader() error %q does not name missing column %s", err.Error(), col)
		}
	}
}

func TestLoadFromReaderMalformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"Empty input", ""},
		{"Ragged row", "loan_amnt,loan_term\n10000,36 months,extra\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFromReader(zap.NewNop(), strings.NewReader(tt.input), "bad")
			if err == nil {
				t.Errorf("LoadFromReader() expected error but got none")
			}
		})
	}
}

func TestLoadFromReaderDerivesPayment(t *testing.T) {
	csv := `loan_amnt,loan_term,int_rate,monthly_payment,sub_grade,emp_title,emp_length,home_ownership,annual_inc,total_dti,loan_purpose,addr_state,loan_status,delinq_2yrs,credit_limit
15000,36 months,13.49,,C1,Teacher,7 years,RENT,54000,19.6,debt_consolidation,NY,Late (31-120 days),2,12000
15000,,13.49,,C1,Teacher,7 years,RENT,54000,19.6,debt_consolidation,NY,Late (31-120 days),2,12000
`
	snap, err := LoadFromReader(zap.NewNop(), strings.NewReader(csv), "derive")
	if err != nil {
		t.Fatalf("LoadFromReader() error = %v", err)
	}

	derived := snap.Records()[0].MonthlyPayment
	expected := mathutil.Round(loans.CalculateMonthlyPayment(15000, 13.49, 36))
	if math.IsNaN(derived) {
		t.Fatalf("first record MonthlyPayment = NaN, expected derived payment")
	}
	if !mathutil.WithinTolerance(derived, expected, constants.CurrencyTolerance) {
		t.Errorf("first record MonthlyPayment = %v, expected %v", derived, expected)
	}

	// Without a parseable term the payment stays missing.
	if !math.IsNaN(snap.Records()[1].MonthlyPayment) {
		t.Errorf("second record MonthlyPayment = %v, expected NaN", snap.Records()[1].MonthlyPayment)
	}
}

func TestLoad(t *testing.T) {
	snap, err := Load(zap.NewNop(), "testdata/loans.csv")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if snap.Len() != 5 {
		t.Errorf("Load() loaded %d records, expected 5", snap.Len())
	}
	if snap.Source() != "testdata/loans.csv" {
		t.Errorf("Source() = %q, expected testdata/loans.csv", snap.Source())
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(zap.NewNop(), "testdata/nonexistent.csv")
	if err == nil {
		t.Errorf("Load() expected error for missing file but got none")
	}
}

func TestParseNumber(t *testing.T) {
	tests := []struct {
		name     string
		cell     string
		expected float64
		nan      bool
		ok       bool
	}{
		{"Integer", "10000", 10000, false, true},
		{"Decimal", "11.99", 11.99, false, true},
		{"Padded", " 42.5 ", 42.5, false, true},
		{"Empty", "", 0, true, true},
		{"NA token", "NA", 0, true, true},
		{"Lowercase nan", "nan", 0, true, true},
		{"Null token", "null", 0, true, true},
		{"Garbage", "abc", 0, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, ok := parseNumber(tt.cell)
			if ok != tt.ok {
				t.Errorf("parseNumber(%q) ok = %v, expected %v", tt.cell, ok, tt.ok)
			}
			if tt.nan {
				if !math.IsNaN(v) {
					t.Errorf("parseNumber(%q) = %v, expected NaN", tt.cell, v)
				}
				return
			}
			if v != tt.expected {
				t.Errorf("parseNumber(%q) = %v, expected %v", tt.cell, v, tt.expected)
			}
		})
	}
}
