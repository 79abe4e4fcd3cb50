// Package memory implements an in-memory run log for tests.
package memory

import (
	"context"
	"sort"
	"sync"

	"genealogycore/internal/runlog/core"
)

// Store keeps runs in process memory.
type Store struct {
	mu   sync.RWMutex
	runs map[string]core.Run
}

// New returns an empty in-memory run log.
func New() *Store { return &Store{runs: make(map[string]core.Run)} }

// Record upserts the run by ID.
func (s *Store) Record(_ context.Context, run core.Run) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.runs[run.ID] = run
	return nil
}

// List returns the recorded runs ordered by start time.
func (s *Store) List(_ context.Context) ([]core.Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]core.Run, 0, len(s.runs))
	for _, run := range s.runs {
		out = append(out, run)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].StartedAt.Equal(out[j].StartedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].StartedAt.Before(out[j].StartedAt)
	})
	return out, nil
}

// Close is a no-op for the in-memory log.
func (s *Store) Close() error { return nil }
