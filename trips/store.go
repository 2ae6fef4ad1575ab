package trips

import (
	"fmt"
	"sort"
	"sync"
	"time"
)

// Store manages trip persistence and retrieval.
type Store interface {
	// Add a new trip
	Add(trip *Trip) error

	// Get a trip by ID
	Get(id string) (*Trip, error)

	// List all trips, newest first
	List() ([]*Trip, error)

	// Update an existing trip
	Update(trip *Trip) error

	// Delete a trip
	Delete(id string) error
}

// InMemoryStore implements Store with a mutex-guarded map.
type InMemoryStore struct {
	trips map[string]*Trip
	mu    sync.RWMutex
}

// NewInMemoryStore creates an empty in-memory trip store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		trips: make(map[string]*Trip),
	}
}

// Add inserts a trip, enforcing unique IDs and setting timestamps.
func (s *InMemoryStore) Add(trip *Trip) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.trips[trip.ID]; exists {
		return fmt.Errorf("trip with ID %s already exists", trip.ID)
	}

	now := time.Now()
	trip.CreatedAt = now
	trip.UpdatedAt = now
	s.trips[trip.ID] = trip
	return nil
}

// Get retrieves a trip by ID.
func (s *InMemoryStore) Get(id string) (*Trip, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	trip, exists := s.trips[id]
	if !exists {
		return nil, fmt.Errorf("trip with ID %s not found", id)
	}
	return trip, nil
}

// List returns all trips, newest first.
func (s *InMemoryStore) List() ([]*Trip, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*Trip, 0, len(s.trips))
	for _, trip := range s.trips {
		out = append(out, trip)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// Update replaces an existing trip, preserving CreatedAt.
func (s *InMemoryStore) Update(trip *Trip) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, exists := s.trips[trip.ID]
	if !exists {
		return fmt.Errorf("trip with ID %s not found", trip.ID)
	}

	trip.CreatedAt = existing.CreatedAt
	trip.UpdatedAt = time.Now()
	s.trips[trip.ID] = trip
	return nil
}

// Delete removes a trip.
func (s *InMemoryStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.trips[id]; !exists {
		return fmt.Errorf("trip with ID %s not found", id)
	}

	delete(s.trips, id)
	return nil
}
