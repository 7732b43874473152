package dataset

import (
	"sort"
	"sync"
	"time"
)

// Snapshot is an immutable view of a loaded dataset. Queries never mutate it;
// reloads replace the whole snapshot through a Store.
type Snapshot struct {
	records     []Record
	statusIndex map[string][]int
	source      string
	loadedAt    time.Time
}

// NewSnapshot wraps records in a snapshot and builds the status index. The
// caller must not modify records afterwards.
func NewSnapshot(records []Record, source string) *Snapshot {
	index := make(map[string][]int)
	for i, rec := range records {
		index[rec.Status] = append(index[rec.Status], i)
	}
	return &Snapshot{
		records:     records,
		statusIndex: index,
		source:      source,
		loadedAt:    time.Now(),
	}
}

// Records returns all records in load order. Callers must treat the returned
// slice as read-only.
func (s *Snapshot) Records() []Record {
	return s.records
}

// Len returns the number of records in the snapshot.
func (s *Snapshot) Len() int {
	return len(s.records)
}

// Source returns the path or label the snapshot was loaded from.
func (s *Snapshot) Source() string {
	return s.source
}

// LoadedAt returns the time the snapshot was built.
func (s *Snapshot) LoadedAt() time.Time {
	return s.loadedAt
}

// ByStatus returns the records whose status matches any of the given values,
// in load order. Unknown statuses contribute nothing.
func (s *Snapshot) ByStatus(statuses ...string) []Record {
	var indices []int
	for _, status := range statuses {
		indices = append(indices, s.statusIndex[status]...)
	}
	sort.Ints(indices)

	out := make([]Record, len(indices))
	for i, idx := range indices {
		out[i] = s.records[idx]
	}
	return out
}

// StatusCounts returns the number of records per distinct status value.
func (s *Snapshot) StatusCounts() map[string]int {
	counts := make(map[string]int, len(s.statusIndex))
	for status, indices := range s.statusIndex {
		counts[status] = len(indices)
	}
	return counts
}

// Store holds the current snapshot and lets a watcher swap in a replacement
// while queries keep reading the one they started with.
type Store struct {
	mu   sync.RWMutex
	snap *Snapshot
}

// NewStore creates a store seeded with the given snapshot.
func NewStore(snap *Snapshot) *Store {
	return &Store{snap: snap}
}

// Snapshot returns the current snapshot.
func (s *Store) Snapshot() *Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap
}

// Swap installs a new snapshot and returns the one it replaced.
func (s *Store) Swap(snap *Snapshot) *Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	previous := s.snap
	s.snap = snap
	return previous
}
