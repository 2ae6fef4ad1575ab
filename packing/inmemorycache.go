package packing

import (
	"sync"
	"time"
)

// InMemoryRulesCache is a mutex-guarded in-process RulesCache.
type InMemoryRulesCache struct {
	rules    []*CustomRule
	cachedAt time.Time
	config   CacheConfig
	isValid  bool
	mu       sync.RWMutex
}

// NewInMemoryRulesCache creates an empty cache with the given config.
func NewInMemoryRulesCache(config CacheConfig) *InMemoryRulesCache {
	return &InMemoryRulesCache{config: config}
}

// Get returns the cached rules, or nil when invalid or expired. A copy is
// returned so callers cannot mutate the cached slice.
func (c *InMemoryRulesCache) Get() []*CustomRule {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if !c.isValid {
		return nil
	}

	if c.config.TTL > 0 && time.Since(c.cachedAt) > c.config.TTL {
		return nil
	}

	rulesCopy := make([]*CustomRule, len(c.rules))
	copy(rulesCopy, c.rules)
	return rulesCopy
}

// Set stores a copy of the rules and marks the cache valid.
func (c *InMemoryRulesCache) Set(rules []*CustomRule) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.rules = make([]*CustomRule, len(rules))
	copy(c.rules, rules)
	c.cachedAt = time.Now()
	c.isValid = true
}

// Invalidate clears the cache.
func (c *InMemoryRulesCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.isValid = false
	c.rules = nil
}

// IsValid reports whether the cache holds usable data.
func (c *InMemoryRulesCache) IsValid() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if !c.isValid {
		return false
	}
	if c.config.TTL > 0 {
		return time.Since(c.cachedAt) <= c.config.TTL
	}
	return true
}
