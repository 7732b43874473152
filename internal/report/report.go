// Package report assembles the summary metrics, distributions, and tabular
// views derived from a loan snapshot, ready for rendering or export.
package report

import (
	"fmt"
	"time"

	"github.com/iwvelando/loan-analysis/internal/cohort"
	"github.com/iwvelando/loan-analysis/internal/dataset"
	"github.com/iwvelando/loan-analysis/pkg/constants"
	"github.com/iwvelando/loan-analysis/pkg/stats"
	"go.uber.org/zap"
)

// View keys identify the fixed dashboard views.
const (
	ViewAll        = "all"
	ViewDefaulters = "defaulters"
	ViewCurrent    = "current"
	ViewFullyPaid  = "fullyPaid"
	ViewHighRisk   = "highRisk"
)

// View is one tab of the dashboard: a titled, column-scoped record subset in
// display order.
type View struct {
	Key     string
	Title   string
	Columns []dataset.Column
	Records []dataset.Record
}

// Report holds everything derived from one snapshot. The summary,
// distributions, and cohort views cover the full record set; the all-loans
// view narrows to the records matching the criteria.
type Report struct {
	Source             string
	GeneratedAt        time.Time
	TotalRecords       int
	FilteredCount      int
	Thresholds         cohort.Thresholds
	Summary            cohort.Summary
	StatusDistribution []StatusCount
	RateHistogram      []stats.Bin
	Views              []View
}

// View returns the view with the given key, or nil when absent.
func (r *Report) View(key string) *View {
	for i := range r.Views {
		if r.Views[i].Key == key {
			return &r.Views[i]
		}
	}
	return nil
}

// Options adjusts how a report is assembled.
type Options struct {
	// Criteria narrows the all-loans view. The cohort views always cover the
	// full snapshot.
	Criteria cohort.Criteria
	// HistogramBins overrides the interest rate histogram resolution.
	HistogramBins int
}

// GetReport builds the report for a snapshot.
func GetReport(logger *zap.Logger, engine *cohort.Engine, snap *dataset.Snapshot, opts Options) (*Report, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	bins := opts.HistogramBins
	if bins <= 0 {
		bins = constants.DefaultHistogramBins
	}

	base := snap.Records()
	filtered := engine.Filter(base, opts.Criteria)

	result := &Report{
		Source:             snap.Source(),
		GeneratedAt:        time.Now(),
		TotalRecords:       snap.Len(),
		FilteredCount:      len(filtered),
		Thresholds:         engine.Thresholds(),
		Summary:            engine.Summarize(base),
		StatusDistribution: statusDistribution(snap),
		RateHistogram:      rateHistogram(base, bins),
	}

	views := make([]View, 0, len(cohortViews)+1)
	views = append(views, View{
		Key:     ViewAll,
		Title:   "All Loans",
		Columns: allColumns,
		Records: filtered,
	})

	for _, cv := range cohortViews {
		members, err := engine.Select(snap, cv.name)
		if err != nil {
			return nil, err
		}
		sorted, err := engine.SortDescendingBy(members, cv.sortBy)
		if err != nil {
			return nil, err
		}
		views = append(views, View{
			Key:     cv.key,
			Title:   cv.title,
			Columns: cv.columns,
			Records: sorted,
		})
	}
	result.Views = views

	logger.Debug(fmt.Sprintf("report assembled with %d views over %d records", len(views), snap.Len()),
		zap.String("op", "report.GetReport"),
		zap.String("source", snap.Source()),
	)
	return result, nil
}
