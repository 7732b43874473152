package dataset

import (
	"math"
	"testing"
)

func testRecords() []Record {
	return []Record{
		{LoanAmount: 10000, Status: StatusCurrent, State: "CA"},
		{LoanAmount: 25000, Status: StatusChargedOff, State: "TX"},
		{LoanAmount: 8000, Status: StatusFullyPaid, State: "WA"},
		{LoanAmount: 15000, Status: StatusLate31To120, State: "NY"},
		{LoanAmount: 5600, Status: StatusCurrent, State: "OR"},
	}
}

func TestSnapshotByStatus(t *testing.T) {
	snap := NewSnapshot(testRecords(), "test")

	tests := []struct {
		name     string
		statuses []string
		amounts  []float64
	}{
		{
			name:     "Single status",
			statuses: []string{StatusCurrent},
			amounts:  []float64{10000, 5600},
		},
		{
			name:     "Multiple statuses preserve load order",
			statuses: []string{StatusLate31To120, StatusChargedOff},
			amounts:  []float64{25000, 15000},
		},
		{
			name:     "Unknown status",
			statuses: []string{"Issued"},
			amounts:  nil,
		},
		{
			name:     "No statuses",
			statuses: nil,
			amounts:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := snap.ByStatus(tt.statuses...)
			if len(got) != len(tt.amounts) {
				t.Fatalf("ByStatus(%v) returned %d records, expected %d", tt.statuses, len(got), len(tt.amounts))
			}
			for i, amount := range tt.amounts {
				if got[i].LoanAmount != amount {
					t.Errorf("ByStatus(%v)[%d].LoanAmount = %v, expected %v", tt.statuses, i, got[i].LoanAmount, amount)
				}
			}
		})
	}
}

func TestSnapshotStatusCounts(t *testing.T) {
	snap := NewSnapshot(testRecords(), "test")

	counts := snap.StatusCounts()
	expected := map[string]int{
		StatusCurrent:     2,
		StatusChargedOff:  1,
		StatusFullyPaid:   1,
		StatusLate31To120: 1,
	}

	if len(counts) != len(expected) {
		t.Errorf("StatusCounts() returned %d statuses, expected %d", len(counts), len(expected))
	}
	for status, count := range expected {
		if counts[status] != count {
			t.Errorf("StatusCounts()[%q] = %d, expected %d", status, counts[status], count)
		}
	}
}

func TestSnapshotEmpty(t *testing.T) {
	snap := NewSnapshot(nil, "empty")

	if snap.Len() != 0 {
		t.Errorf("Len() = %d, expected 0", snap.Len())
	}
	if got := snap.ByStatus(StatusCurrent); len(got) != 0 {
		t.Errorf("ByStatus() returned %d records, expected 0", len(got))
	}
	if counts := snap.StatusCounts(); len(counts) != 0 {
		t.Errorf("StatusCounts() returned %d statuses, expected 0", len(counts))
	}
}

func TestStoreSwap(t *testing.T) {
	first := NewSnapshot(testRecords(), "first")
	second := NewSnapshot(testRecords()[:2], "second")

	store := NewStore(first)
	if store.Snapshot() != first {
		t.Fatalf("Snapshot() did not return the seeded snapshot")
	}

	previous := store.Swap(second)
	if previous != first {
		t.Errorf("Swap() returned %v, expected the first snapshot", previous.Source())
	}
	if store.Snapshot() != second {
		t.Errorf("Snapshot() after swap = %v, expected the second snapshot", store.Snapshot().Source())
	}
}

func TestRecordValue(t *testing.T) {
	rec := Record{
		LoanAmount:   10000,
		InterestRate: 11.99,
		EmpTitle:     "Engineer",
		Status:       StatusCurrent,
		AnnualIncome: math.NaN(),
	}

	tests := []struct {
		name     string
		col      Column
		expected string
	}{
		{"String column", ColumnEmpTitle, "Engineer"},
		{"Status column", ColumnStatus, StatusCurrent},
		{"Whole numeric", ColumnLoanAmount, "10000"},
		{"Decimal numeric", ColumnInterestRate, "11.99"},
		{"Missing numeric", ColumnAnnualIncome, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := rec.Value(tt.col); got != tt.expected {
				t.Errorf("Value(%q) = %q, expected %q", tt.col, got, tt.expected)
			}
		})
	}
}
