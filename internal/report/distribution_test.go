package report

import (
	"math"
	"testing"

	"github.com/iwvelando/loan-analysis/internal/dataset"
	"github.com/iwvelando/loan-analysis/pkg/mathutil"
)

func TestStatusDistribution(t *testing.T) {
	snap := dataset.NewSnapshot(reportRecords(), "test")

	distribution := statusDistribution(snap)
	expected := []StatusCount{
		{Status: dataset.StatusCurrent, Count: 2, Share: 33.33},
		{Status: dataset.StatusFullyPaid, Count: 2, Share: 33.33},
		{Status: dataset.StatusChargedOff, Count: 1, Share: 16.67},
		{Status: dataset.StatusLate31To120, Count: 1, Share: 16.67},
	}

	if len(distribution) != len(expected) {
		t.Fatalf("statusDistribution() returned %d entries, expected %d", len(distribution), len(expected))
	}
	for i, want := range expected {
		got := distribution[i]
		if got.Status != want.Status || got.Count != want.Count {
			t.Errorf("statusDistribution()[%d] = %+v, expected %+v", i, got, want)
		}
		if !mathutil.WithinTolerance(got.Share, want.Share, 0.01) {
			t.Errorf("statusDistribution()[%d].Share = %v, expected about %v", i, got.Share, want.Share)
		}
	}
}

func TestStatusDistributionEmpty(t *testing.T) {
	snap := dataset.NewSnapshot(nil, "empty")
	if got := statusDistribution(snap); len(got) != 0 {
		t.Errorf("statusDistribution() returned %d entries, expected 0", len(got))
	}
}

func TestRateHistogramSkipsMissing(t *testing.T) {
	records := []dataset.Record{
		{InterestRate: 10},
		{InterestRate: math.NaN()},
		{InterestRate: 20},
	}

	bins := rateHistogram(records, 2)
	if len(bins) != 2 {
		t.Fatalf("rateHistogram() returned %d bins, expected 2", len(bins))
	}
	if bins[0].Count != 1 || bins[1].Count != 1 {
		t.Errorf("rateHistogram() counts = %d, %d, expected 1, 1", bins[0].Count, bins[1].Count)
	}
}

func TestRateHistogramNoValidRates(t *testing.T) {
	records := []dataset.Record{
		{InterestRate: math.NaN()},
	}
	if bins := rateHistogram(records, 4); bins != nil {
		t.Errorf("rateHistogram() = %v, expected nil without valid rates", bins)
	}
}
