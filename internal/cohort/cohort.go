// Package cohort derives named subsets of a loan snapshot using fixed
// business rules or caller-supplied filter criteria. Subsets are pure views;
// they never mutate the records they were derived from.
package cohort

import (
	"github.com/iwvelando/loan-analysis/internal/dataset"
	"github.com/iwvelando/loan-analysis/pkg/constants"
)

// Name identifies one of the fixed rule-defined cohorts.
type Name string

const (
	Defaulters Name = "defaulters"
	Current    Name = "current"
	FullyPaid  Name = "fullyPaid"
	HighRisk   Name = "highRisk"
)

// Names returns the fixed cohorts in display order.
func Names() []Name {
	return []Name{Defaulters, Current, FullyPaid, HighRisk}
}

// defaulterStatuses are the lifecycle states counted as defaulted.
var defaulterStatuses = map[string]bool{
	dataset.StatusChargedOff:  true,
	dataset.StatusLate31To120: true,
	dataset.StatusLate16To30:  true,
}

// IsDefaulter reports whether the record's status marks it as defaulted.
func IsDefaulter(rec dataset.Record) bool {
	return defaulterStatuses[rec.Status]
}

// Thresholds holds the numeric bounds for the high-risk cohort. A record
// exceeding any one of them is high risk.
type Thresholds struct {
	MaxInterestRate  float64
	MaxDTI           float64
	MaxDelinquencies float64
}

// DefaultThresholds returns the standard risk bounds.
func DefaultThresholds() Thresholds {
	return Thresholds{
		MaxInterestRate:  constants.DefaultMaxInterestRate,
		MaxDTI:           constants.DefaultMaxDTI,
		MaxDelinquencies: constants.DefaultMaxDelinquencies,
	}
}

// Criteria is a freeform filter over loan records. Zero-valued fields apply
// no filter; set fields combine with logical AND.
type Criteria struct {
	// JobTitleContains matches employment titles case-insensitively by
	// substring. Records without a title never match a non-empty value.
	JobTitleContains string
	// StatusIn keeps records whose loan status is in the set.
	StatusIn []string
	// StateIn keeps records whose address state is in the set.
	StateIn []string
}

// IsEmpty reports whether the criteria apply no filtering at all.
func (c Criteria) IsEmpty() bool {
	return c.JobTitleContains == "" && len(c.StatusIn) == 0 && len(c.StateIn) == 0
}

// Summary carries the headline aggregates for a record subset. The averages
// are NaN when no record carries the underlying field.
type Summary struct {
	TotalCount      int
	DefaulterCount  int
	DefaulterShare  float64
	AvgLoanAmount   float64
	AvgInterestRate float64
	TotalVolume     float64
}
