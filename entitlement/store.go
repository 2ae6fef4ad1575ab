package entitlement

import "sync"

// UsageStore persists monthly usage counters. Month keys use the YYYY-MM
// form so counters reset implicitly when the month changes.
type UsageStore interface {
	// Increment adds one to the action's counter for the month
	Increment(action Action, month string) error

	// Count returns the action's counter for the month, zero if absent
	Count(action Action, month string) (int, error)
}

// InMemoryUsageStore implements UsageStore with a mutex-guarded map.
type InMemoryUsageStore struct {
	counts map[string]int
	mu     sync.RWMutex
}

// NewInMemoryUsageStore creates an empty in-memory usage store.
func NewInMemoryUsageStore() *InMemoryUsageStore {
	return &InMemoryUsageStore{
		counts: make(map[string]int),
	}
}

func usageKey(action Action, month string) string {
	return month + "/" + string(action)
}

// Increment adds one to the counter.
func (s *InMemoryUsageStore) Increment(action Action, month string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.counts[usageKey(action, month)]++
	return nil
}

// Count reads the counter, zero when never incremented.
func (s *InMemoryUsageStore) Count(action Action, month string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.counts[usageKey(action, month)], nil
}
