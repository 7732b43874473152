package dataset

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

func TestWatcherMatches(t *testing.T) {
	w := &Watcher{path: filepath.Clean("/data/loans.csv")}

	tests := []struct {
		name     string
		event    fsnotify.Event
		expected bool
	}{
		{
			name:     "Write to watched file",
			event:    fsnotify.Event{Name: "/data/loans.csv", Op: fsnotify.Write},
			expected: true,
		},
		{
			name:     "Create of watched file",
			event:    fsnotify.Event{Name: "/data/loans.csv", Op: fsnotify.Create},
			expected: true,
		},
		{
			name:     "Write to sibling file",
			event:    fsnotify.Event{Name: "/data/other.csv", Op: fsnotify.Write},
			expected: false,
		},
		{
			name:     "Chmod of watched file",
			event:    fsnotify.Event{Name: "/data/loans.csv", Op: fsnotify.Chmod},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := w.matches(tt.event); got != tt.expected {
				t.Errorf("matches(%v) = %v, expected %v", tt.event, got, tt.expected)
			}
		})
	}
}

func TestWatcherReload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "loans.csv")

	initial := sampleCSV
	if err := os.WriteFile(path, []byte(initial), 0644); err != nil {
		t.Fatalf("failed to write dataset: %v", err)
	}

	snap, err := Load(zap.NewNop(), path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	store := NewStore(snap)

	swapped := make(chan *Snapshot, 1)
	watcher, err := NewWatcher(zap.NewNop(), store, path, func(s *Snapshot) {
		swapped <- s
	})
	if err != nil {
		t.Fatalf("NewWatcher() error = %v", err)
	}
	defer watcher.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go watcher.Run(ctx)

	// Shrink the dataset to a single record and wait for the swap.
	updated := `loan_amnt,loan_term,int_rate,monthly_payment,sub_grade,emp_title,emp_length,home_ownership,annual_inc,total_dti,loan_purpose,addr_state,loan_status,delinq_2yrs,credit_limit
10000,36 months,11.99,332.10,B4,Software Engineer,5 years,RENT,85000,14.2,debt_consolidation,CA,Current,0,24000
`
	if err := os.WriteFile(path, []byte(updated), 0644); err != nil {
		t.Fatalf("failed to update dataset: %v", err)
	}

	select {
	case s := <-swapped:
		if s.Len() != 1 {
			t.Errorf("reloaded snapshot has %d records, expected 1", s.Len())
		}
		if store.Snapshot() != s {
			t.Errorf("store does not hold the reloaded snapshot")
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("timed out waiting for dataset reload")
	}
}

func TestWatcherKeepsSnapshotOnBadReload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "loans.csv")

	if err := os.WriteFile(path, []byte(sampleCSV), 0644); err != nil {
		t.Fatalf("failed to write dataset: %v", err)
	}

	snap, err := Load(zap.NewNop(), path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	store := NewStore(snap)

	w := &Watcher{logger: zap.NewNop(), store: store, path: filepath.Clean(path)}

	// Corrupt the file and reload directly; the original snapshot stays.
	if err := os.WriteFile(path, []byte("loan_amnt\n"), 0644); err != nil {
		t.Fatalf("failed to corrupt dataset: %v", err)
	}
	w.reload()

	if store.Snapshot() != snap {
		t.Errorf("store swapped snapshots after a failed reload")
	}
}
