// Package loans provides common loan payment utilities.
package loans

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/iwvelando/loan-analysis/pkg/constants"
)

// CalculateMonthlyPayment calculates the monthly payment for a loan using the
// standard amortization formula.
func CalculateMonthlyPayment(principal, annualInterestRate float64, termMonths int) float64 {
	if termMonths <= 0 {
		return math.NaN()
	}
	if annualInterestRate == 0 {
		// For zero interest, simply divide the principal by term
		return principal / float64(termMonths)
	}

	periodicInterestRate := annualInterestRate / (constants.PercentageMultiplier * constants.MonthsPerYear)
	power := math.Pow(1.00+periodicInterestRate, float64(termMonths))
	discountFactor := (power - 1.00) / power
	return principal * periodicInterestRate / discountFactor
}

// ParseTermMonths extracts the month count from a loan term value. Terms
// appear either as a bare number ("36") or with a unit suffix ("36 months").
func ParseTermMonths(term string) (int, error) {
	fields := strings.Fields(term)
	if len(fields) == 0 {
		return 0, fmt.Errorf("empty loan term")
	}

	months, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, fmt.Errorf("unparseable loan term %q", term)
	}
	if months <= 0 {
		return 0, fmt.Errorf("non-positive loan term %q", term)
	}
	return months, nil
}
