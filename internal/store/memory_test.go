package store

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rabirubia/marine-card/internal/forecast"
)

func reportWithSynopsis(s string) forecast.Report {
	return forecast.Report{Synopsis: s}
}

func TestGetLatest_EmptyStore(t *testing.T) {
	s := NewMemoryStore(10)

	_, err := s.GetLatest()
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSaveReport_LatestWins(t *testing.T) {
	s := NewMemoryStore(10)
	s.SaveReport(reportWithSynopsis("first"))
	s.SaveReport(reportWithSynopsis("second"))

	latest, err := s.GetLatest()
	require.NoError(t, err)
	assert.Equal(t, "second", latest.Synopsis)
	assert.Equal(t, 2, s.Len())
}

func TestSaveReport_EnforcesRetention(t *testing.T) {
	s := NewMemoryStore(3)
	for i := 0; i < 5; i++ {
		s.SaveReport(reportWithSynopsis(fmt.Sprintf("run-%d", i)))
	}

	assert.Equal(t, 3, s.Len())

	latest, err := s.GetLatest()
	require.NoError(t, err)
	assert.Equal(t, "run-4", latest.Synopsis)
}

func TestSaveReport_ConcurrentWrites(t *testing.T) {
	s := NewMemoryStore(0)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s.SaveReport(reportWithSynopsis(fmt.Sprintf("run-%d", i)))
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 20, s.Len())
}
