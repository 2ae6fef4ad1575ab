package packing

import (
	"fmt"
	"sync"
)

// RuleStore manages custom-rule persistence and retrieval.
type RuleStore interface {
	// Add a new rule
	Add(rule *CustomRule) error

	// Get a rule by ID
	Get(id string) (*CustomRule, error)

	// List all active rules
	ListActive() ([]*CustomRule, error)

	// Update an existing rule
	Update(rule *CustomRule) error

	// Delete a rule
	Delete(id string) error
}

// InMemoryRuleStore implements RuleStore with a mutex-guarded map. It backs
// deployments that run without a database.
type InMemoryRuleStore struct {
	rules map[string]*CustomRule
	mu    sync.RWMutex
}

// NewInMemoryRuleStore creates an empty in-memory rule store.
func NewInMemoryRuleStore() *InMemoryRuleStore {
	return &InMemoryRuleStore{
		rules: make(map[string]*CustomRule),
	}
}

// Add inserts a rule, enforcing unique IDs.
func (s *InMemoryRuleStore) Add(rule *CustomRule) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.rules[rule.ID]; exists {
		return fmt.Errorf("rule with ID %s already exists", rule.ID)
	}

	s.rules[rule.ID] = rule
	return nil
}

// Get retrieves a rule by ID.
func (s *InMemoryRuleStore) Get(id string) (*CustomRule, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rule, exists := s.rules[id]
	if !exists {
		return nil, fmt.Errorf("rule with ID %s not found", id)
	}
	return rule, nil
}

// ListActive returns all rules with Active set.
func (s *InMemoryRuleStore) ListActive() ([]*CustomRule, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var active []*CustomRule
	for _, rule := range s.rules {
		if rule.Active {
			active = append(active, rule)
		}
	}
	return active, nil
}

// Update replaces an existing rule.
func (s *InMemoryRuleStore) Update(rule *CustomRule) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.rules[rule.ID]; !exists {
		return fmt.Errorf("rule with ID %s not found", rule.ID)
	}

	s.rules[rule.ID] = rule
	return nil
}

// Delete removes a rule.
func (s *InMemoryRuleStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.rules[id]; !exists {
		return fmt.Errorf("rule with ID %s not found", id)
	}

	delete(s.rules, id)
	return nil
}
