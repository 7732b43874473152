// Package testutil provides common utility functions for testing.
package testutil

import (
	"github.com/iwvelando/loan-analysis/internal/dataset"
	"github.com/iwvelando/loan-analysis/internal/report"
)

// FindRecord finds a record by employment title in the records slice.
// Returns a pointer to the record if found, nil otherwise.
func FindRecord(records []dataset.Record, empTitle string) *dataset.Record {
	for i := range records {
		if records[i].EmpTitle == empTitle {
			return &records[i]
		}
	}
	return nil
}

// FindStatus finds a status entry by name in a status distribution.
// Returns a pointer to the entry if found, nil otherwise.
func FindStatus(distribution []report.StatusCount, status string) *report.StatusCount {
	for i := range distribution {
		if distribution[i].Status == status {
			return &distribution[i]
		}
	}
	return nil
}
