package report

import (
	"sort"

	"github.com/iwvelando/loan-analysis/internal/dataset"
	"github.com/iwvelando/loan-analysis/pkg/mathutil"
	"github.com/iwvelando/loan-analysis/pkg/stats"
)

// StatusCount is one slice of the loan status distribution.
type StatusCount struct {
	Status string
	Count  int
	Share  float64
}

// statusDistribution tallies records per status, most frequent first. Equal
// counts order alphabetically so the result is deterministic.
func statusDistribution(snap *dataset.Snapshot) []StatusCount {
	counts := snap.StatusCounts()

	distribution := make([]StatusCount, 0, len(counts))
	for status, count := range counts {
		distribution = append(distribution, StatusCount{
			Status: status,
			Count:  count,
			Share:  mathutil.CalculatePercentage(float64(count), float64(snap.Len())),
		})
	}
	sort.Slice(distribution, func(i, j int) bool {
		if distribution[i].Count != distribution[j].Count {
			return distribution[i].Count > distribution[j].Count
		}
		return distribution[i].Status < distribution[j].Status
	})
	return distribution
}

// rateHistogram bins the interest rates of the given records.
func rateHistogram(records []dataset.Record, bins int) []stats.Bin {
	rates := make([]float64, len(records))
	for i, rec := range records {
		rates[i] = rec.InterestRate
	}
	return stats.Histogram(rates, bins)
}
