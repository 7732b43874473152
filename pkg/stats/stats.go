// Package stats provides descriptive statistics over numeric columns that may
// contain missing values. Missing values are represented as NaN and are
// excluded from every aggregate; they never poison a result.
package stats

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Bin describes one bucket of a histogram. Low is inclusive; High is
// exclusive except for the final bin, which is closed so the maximum
// observation is counted.
type Bin struct {
	Low   float64
	High  float64
	Count int
}

// Valid returns the non-missing values in order.
func Valid(values []float64) []float64 {
	kept := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) {
			kept = append(kept, v)
		}
	}
	return kept
}

// Count returns the number of non-missing values.
func Count(values []float64) int {
	n := 0
	for _, v := range values {
		if !math.IsNaN(v) {
			n++
		}
	}
	return n
}

// Mean returns the arithmetic mean of the non-missing values. An input with
// no valid values yields NaN; callers must check before formatting.
func Mean(values []float64) float64 {
	valid := Valid(values)
	if len(valid) == 0 {
		return math.NaN()
	}
	return stat.Mean(valid, nil)
}

// Sum returns the sum of the non-missing values, 0 for an empty input.
func Sum(values []float64) float64 {
	return floats.Sum(Valid(values))
}

// Histogram buckets the non-missing values into equal-width bins spanning
// [min, max]. It returns nil when there are no valid values and a single
// all-inclusive bin when every value is identical.
func Histogram(values []float64, bins int) []Bin {
	valid := Valid(values)
	if len(valid) == 0 {
		return nil
	}
	if bins < 1 {
		bins = 1
	}

	sort.Float64s(valid)
	min, max := valid[0], valid[len(valid)-1]
	if min == max {
		return []Bin{{Low: min, High: max, Count: len(valid)}}
	}

	edges := floats.Span(make([]float64, bins+1), min, max)

	// stat.Histogram requires the maximum observation to fall strictly below
	// the last divider, so nudge it without disturbing the reported bounds.
	dividers := make([]float64, len(edges))
	copy(dividers, edges)
	dividers[len(dividers)-1] = math.Nextafter(max, math.Inf(1))

	counts := stat.Histogram(make([]float64, bins), dividers, valid, nil)

	result := make([]Bin, bins)
	for i := range result {
		result[i] = Bin{
			Low:   edges[i],
			High:  edges[i+1],
			Count: int(math.Round(counts[i])),
		}
	}
	return result
}
