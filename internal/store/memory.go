package store

import (
	"errors"
	"sync"

	"github.com/rabirubia/marine-card/internal/forecast"
)

var (
	// ErrNotFound is returned before the first run has completed.
	ErrNotFound = errors.New("no run report available yet")
)

// MemoryStore is a concurrency-safe, count-bounded in-memory history of run
// reports. It exists so the API and readiness checks can describe the most
// recent run; nothing is persisted beyond the rendered artifact itself.
type MemoryStore struct {
	mu sync.RWMutex

	reports    []forecast.Report
	maxHistory int // max retained reports; <= 0 means unlimited
}

// NewMemoryStore creates a MemoryStore retaining at most maxHistory reports.
func NewMemoryStore(maxHistory int) *MemoryStore {
	return &MemoryStore{maxHistory: maxHistory}
}

// SaveReport appends a run report and enforces retention.
func (s *MemoryStore) SaveReport(report forecast.Report) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.reports = append(s.reports, report)

	if s.maxHistory > 0 && len(s.reports) > s.maxHistory {
		over := len(s.reports) - s.maxHistory
		s.reports = s.reports[over:]
	}
}

// GetLatest returns the most recent run report.
func (s *MemoryStore) GetLatest() (forecast.Report, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.reports) == 0 {
		return forecast.Report{}, ErrNotFound
	}
	return s.reports[len(s.reports)-1], nil
}

// Len returns the number of retained reports.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.reports)
}
