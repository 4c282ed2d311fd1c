package stats

import (
	"context"
	"sync"
)

// MemoryStore implements Store with an in-process map. Suitable for single
// instance deployments and tests; use RedisStore when counters must survive
// restarts or be shared across replicas.
type MemoryStore struct {
	mu   sync.RWMutex
	days map[string]map[Outcome]int64
}

// NewMemoryStore creates an empty in-memory stats store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		days: make(map[string]map[Outcome]int64),
	}
}

// Increment adds one to the counter for the given day and outcome.
func (s *MemoryStore) Increment(_ context.Context, day string, outcome Outcome) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	counters := s.days[day]
	if counters == nil {
		counters = make(map[Outcome]int64)
		s.days[day] = counters
	}
	counters[outcome]++
	return nil
}

// Counts returns a copy of the counters for the given day. Missing days
// yield an empty map, not an error.
func (s *MemoryStore) Counts(_ context.Context, day string) (map[Outcome]int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[Outcome]int64, len(s.days[day]))
	for outcome, n := range s.days[day] {
		out[outcome] = n
	}
	return out, nil
}
