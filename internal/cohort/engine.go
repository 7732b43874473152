package cohort

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/iwvelando/loan-analysis/internal/dataset"
	"github.com/iwvelando/loan-analysis/pkg/mathutil"
	"github.com/iwvelando/loan-analysis/pkg/stats"
	"go.uber.org/zap"
)

// Engine classifies and filters loan records. It holds no record state of its
// own; every operation is a pure function over the records it is given.
type Engine struct {
	logger     *zap.Logger
	thresholds Thresholds
}

// NewEngine creates an engine using the given risk thresholds.
func NewEngine(logger *zap.Logger, thresholds Thresholds) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		logger:     logger,
		thresholds: thresholds,
	}
}

// Thresholds returns the risk bounds the engine classifies with.
func (e *Engine) Thresholds() Thresholds {
	return e.thresholds
}

// Summarize computes the headline aggregates for a record subset. Averages
// skip missing values and are NaN when nothing remains to average.
func (e *Engine) Summarize(records []dataset.Record) Summary {
	amounts := make([]float64, len(records))
	rates := make([]float64, len(records))
	defaulters := 0
	for i, rec := range records {
		amounts[i] = rec.LoanAmount
		rates[i] = rec.InterestRate
		if IsDefaulter(rec) {
			defaulters++
		}
	}

	return Summary{
		TotalCount:      len(records),
		DefaulterCount:  defaulters,
		DefaulterShare:  mathutil.CalculatePercentage(float64(defaulters), float64(len(records))),
		AvgLoanAmount:   stats.Mean(amounts),
		AvgInterestRate: stats.Mean(rates),
		TotalVolume:     stats.Sum(amounts),
	}
}

// Filter returns the records matching all set criteria. Empty criteria return
// the input unchanged.
func (e *Engine) Filter(records []dataset.Record, criteria Criteria) []dataset.Record {
	if criteria.IsEmpty() {
		return records
	}

	title := strings.ToLower(criteria.JobTitleContains)
	statuses := toSet(criteria.StatusIn)
	states := toSet(criteria.StateIn)

	matched := make([]dataset.Record, 0, len(records))
	for _, rec := range records {
		if title != "" && !strings.Contains(strings.ToLower(rec.EmpTitle), title) {
			continue
		}
		if statuses != nil && !statuses[rec.Status] {
			continue
		}
		if states != nil && !states[rec.State] {
			continue
		}
		matched = append(matched, rec)
	}

	e.logger.Debug(fmt.Sprintf("filter matched %d of %d records", len(matched), len(records)),
		zap.String("op", "cohort.Engine.Filter"),
	)
	return matched
}

// Cohort returns the members of the named cohort from the given records, in
// input order.
func (e *Engine) Cohort(records []dataset.Record, name Name) ([]dataset.Record, error) {
	predicate, err := e.predicate(name)
	if err != nil {
		return nil, err
	}

	members := make([]dataset.Record, 0, len(records))
	for _, rec := range records {
		if predicate(rec) {
			members = append(members, rec)
		}
	}
	return members, nil
}

// Select returns the members of the named cohort from a full snapshot. The
// status-defined cohorts resolve through the snapshot's status index instead
// of rescanning; the result is identical to Cohort over snap.Records().
func (e *Engine) Select(snap *dataset.Snapshot, name Name) ([]dataset.Record, error) {
	switch name {
	case Defaulters:
		return snap.ByStatus(dataset.StatusChargedOff, dataset.StatusLate31To120, dataset.StatusLate16To30), nil
	case Current:
		return snap.ByStatus(dataset.StatusCurrent), nil
	case FullyPaid:
		return snap.ByStatus(dataset.StatusFullyPaid), nil
	case HighRisk:
		return e.Cohort(snap.Records(), HighRisk)
	}
	return nil, fmt.Errorf("unknown cohort %q", name)
}

// SortDescendingBy returns a copy of the records stably sorted by the given
// numeric column, largest first. Records missing the sort key order last.
func (e *Engine) SortDescendingBy(records []dataset.Record, col dataset.Column) ([]dataset.Record, error) {
	if !dataset.IsNumeric(col) {
		return nil, fmt.Errorf("cannot sort by non-numeric column %q", col)
	}

	sorted := make([]dataset.Record, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		vi, _ := sorted[i].Numeric(col)
		vj, _ := sorted[j].Numeric(col)
		// Missing keys order last; two missing keys keep their input order.
		if math.IsNaN(vi) {
			return false
		}
		if math.IsNaN(vj) {
			return true
		}
		return vi > vj
	})
	return sorted, nil
}

func (e *Engine) predicate(name Name) (func(dataset.Record) bool, error) {
	switch name {
	case Defaulters:
		return IsDefaulter, nil
	case Current:
		return func(rec dataset.Record) bool { return rec.Status == dataset.StatusCurrent }, nil
	case FullyPaid:
		return func(rec dataset.Record) bool { return rec.Status == dataset.StatusFullyPaid }, nil
	case HighRisk:
		return e.isHighRisk, nil
	}
	return nil, fmt.Errorf("unknown cohort %q", name)
}

// isHighRisk applies the three risk clauses with logical OR. NaN comparisons
// are false, so a missing field fails only its own clause.
func (e *Engine) isHighRisk(rec dataset.Record) bool {
	if rec.InterestRate > e.thresholds.MaxInterestRate {
		return true
	}
	if rec.DTI > e.thresholds.MaxDTI {
		return true
	}
	return rec.Delinquencies > e.thresholds.MaxDelinquencies
}

func toSet(values []string) map[string]bool {
	if len(values) == 0 {
		return nil
	}
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}
