// Package output provides utilities for formatting and displaying analysis results.
package output

import (
	"fmt"
	"strings"

	"github.com/iwvelando/loan-analysis/internal/report"
	"github.com/iwvelando/loan-analysis/pkg/format"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// PrettyFormat outputs a human-readable rather than machine-readable report:
// the portfolio summary, the status and rate distributions, and one table per
// view.
func PrettyFormat(result *report.Report) {
	if result == nil {
		return
	}
	p := message.NewPrinter(language.English)

	fmt.Printf("--- Loan analysis for %s ---\n", result.Source)
	_, _ = p.Printf("Total Loans:       %d\n", result.Summary.TotalCount)
	_, _ = p.Printf("Defaulters:        %d (%s)\n", result.Summary.DefaulterCount, format.Percent(result.Summary.DefaulterShare))
	fmt.Printf("Avg Loan Amount:   %s\n", format.WholeCurrency(result.Summary.AvgLoanAmount))
	fmt.Printf("Avg Interest Rate: %s\n", format.Percent(result.Summary.AvgInterestRate))
	fmt.Printf("Total Volume:      %s\n", format.Millions(result.Summary.TotalVolume))

	if len(result.StatusDistribution) > 0 {
		fmt.Printf("\n--- Loan status distribution ---\n")
		width := len("Status")
		for _, entry := range result.StatusDistribution {
			if len(entry.Status) > width {
				width = len(entry.Status)
			}
		}
		fmt.Printf("%-*s | Count\n", width, "Status")
		fmt.Printf("%-*s | _____\n", width, "______")
		for _, entry := range result.StatusDistribution {
			_, _ = p.Printf("%s | %d (%s)\n", fmt.Sprintf("%-*s", width, entry.Status), entry.Count, format.Percent(entry.Share))
		}
	}

	if len(result.RateHistogram) > 0 {
		fmt.Printf("\n--- Interest rate distribution ---\n")
		ranges := make([]string, len(result.RateHistogram))
		width := len("Range")
		for i, bin := range result.RateHistogram {
			ranges[i] = fmt.Sprintf("%.2f%% - %.2f%%", bin.Low, bin.High)
			if len(ranges[i]) > width {
				width = len(ranges[i])
			}
		}
		fmt.Printf("%-*s | Loans\n", width, "Range")
		fmt.Printf("%-*s | _____\n", width, "_____")
		for i, bin := range result.RateHistogram {
			_, _ = p.Printf("%s | %d\n", fmt.Sprintf("%-*s", width, ranges[i]), bin.Count)
		}
	}

	for _, view := range result.Views {
		fmt.Printf("\n--- %s ---\n", view.Title)
		fmt.Printf("%s\n", viewBanner(p, result, view))
		printTable(view)
	}
}

// viewBanner summarizes a view in one line. The all-loans view reports how
// many records survived the filters; the cohorts restate their membership
// rule.
func viewBanner(p *message.Printer, result *report.Report, view report.View) string {
	switch view.Key {
	case report.ViewAll:
		return p.Sprintf("Showing %d of %d loans", len(view.Records), result.TotalRecords)
	case report.ViewDefaulters:
		return p.Sprintf("%d loans are in a default status (Charged Off or Late)", len(view.Records))
	case report.ViewCurrent:
		return p.Sprintf("%d loans are current and performing", len(view.Records))
	case report.ViewFullyPaid:
		return p.Sprintf("%d loans have been fully paid off", len(view.Records))
	case report.ViewHighRisk:
		return p.Sprintf("%d loans have a rate above %s, a DTI above %s, or more than %s past delinquencies",
			len(view.Records),
			format.Percent(result.Thresholds.MaxInterestRate),
			format.Cell(result.Thresholds.MaxDTI),
			format.Cell(result.Thresholds.MaxDelinquencies))
	}
	return p.Sprintf("%d loans", len(view.Records))
}

// printTable renders a view as a column-aligned table with the underscore
// separator row used throughout the CLI output.
func printTable(view report.View) {
	widths := make([]int, len(view.Columns))
	for i, col := range view.Columns {
		widths[i] = len(col)
	}
	rows := make([][]string, len(view.Records))
	for n, rec := range view.Records {
		row := make([]string, len(view.Columns))
		for i, col := range view.Columns {
			row[i] = rec.Value(col)
			if len(row[i]) > widths[i] {
				widths[i] = len(row[i])
			}
		}
		rows[n] = row
	}

	for i, col := range view.Columns {
		if i > 0 {
			fmt.Printf(" | ")
		}
		fmt.Printf("%-*s", widths[i], string(col))
	}
	fmt.Printf("\n")
	for i, col := range view.Columns {
		if i > 0 {
			fmt.Printf(" | ")
		}
		fmt.Printf("%-*s", widths[i], strings.Repeat("_", len(col)))
	}
	fmt.Printf("\n")
	for _, row := range rows {
		for i, cell := range row {
			if i > 0 {
				fmt.Printf(" | ")
			}
			fmt.Printf("%-*s", widths[i], cell)
		}
		fmt.Printf("\n")
	}
}

// CsvFormat outputs the filtered all-loans view in comma-separated value
// format. Cohort views are written by the export package; stdout carries the
// primary table only.
func CsvFormat(result *report.Report) {
	if result == nil {
		return
	}
	view := result.View(report.ViewAll)
	if view == nil {
		return
	}
	for i, col := range view.Columns {
		if i > 0 {
			fmt.Printf(",")
		}
		fmt.Printf(`"%s"`, col)
	}
	fmt.Printf("\n")
	for _, rec := range view.Records {
		for i, col := range view.Columns {
			if i > 0 {
				fmt.Printf(",")
			}
			fmt.Printf(`"%s"`, rec.Value(col))
		}
		fmt.Printf("\n")
	}
}
