package packing

import "time"

// RulesCache caches the active custom-rule list so generation does not hit
// the store for every item. Implementations must be safe for concurrent use.
type RulesCache interface {
	// Get retrieves cached rules, returns nil on a miss or expiry
	Get() []*CustomRule

	// Set stores rules in the cache
	Set(rules []*CustomRule)

	// Invalidate clears the cache, forcing a refresh on next Get
	Invalidate()

	// IsValid returns true if the cache has valid data
	IsValid() bool
}

// CacheConfig holds configuration for cache behavior.
type CacheConfig struct {
	// TTL is the time-to-live for cached entries.
	// Zero means no expiration (manual invalidation only).
	TTL time.Duration
}

// DefaultCacheConfig returns the defaults used by the rule engine: no TTL,
// invalidate on mutation only.
func DefaultCacheConfig() CacheConfig {
	return CacheConfig{TTL: 0}
}
