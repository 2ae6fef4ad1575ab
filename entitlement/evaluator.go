package entitlement

import (
	"fmt"
	"time"
)

// Evaluator answers entitlement checks against a limits table and a monthly
// usage store. It is safe for concurrent use when its UsageStore is.
type Evaluator struct {
	limits Limits
	usage  UsageStore
	now    func() time.Time
}

// EvaluatorOption configures an Evaluator.
type EvaluatorOption func(*Evaluator)

// WithClock overrides the clock used for expiry checks and month keys.
func WithClock(now func() time.Time) EvaluatorOption {
	return func(e *Evaluator) { e.now = now }
}

// NewEvaluator builds an evaluator over the given limits and usage store.
// A nil limits table falls back to the built-in defaults.
func NewEvaluator(limits Limits, usage UsageStore, opts ...EvaluatorOption) *Evaluator {
	if limits == nil {
		limits = DefaultLimits()
	}
	e := &Evaluator{
		limits: limits,
		usage:  usage,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// EffectiveTier resolves the tier a subscription currently grants. An
// expired subscription falls back to free, as does an unknown tier.
func (e *Evaluator) EffectiveTier(sub Subscription) Tier {
	if _, known := e.limits[sub.Tier]; !known {
		return TierFree
	}
	if sub.ExpiresAt != nil && sub.ExpiresAt.Before(e.now()) {
		return TierFree
	}
	return sub.Tier
}

// CanPerform decides whether the subscription may perform the action this
// month. Unknown actions are denied with zero remaining. The check itself
// never mutates usage.
func (e *Evaluator) CanPerform(sub Subscription, action Action) (Decision, error) {
	tier := e.EffectiveTier(sub)

	limit, known := e.limits[tier][action]
	if !known {
		return Decision{Allowed: false, Remaining: 0}, nil
	}

	if limit == Unlimited {
		return Decision{Allowed: true, Remaining: Unlimited}, nil
	}

	used, err := e.usage.Count(action, e.monthKey())
	if err != nil {
		return Decision{}, fmt.Errorf("failed to read usage for %s: %w", action, err)
	}

	remaining := int(limit) - used
	if remaining < 0 {
		remaining = 0
	}

	return Decision{
		Allowed:   used < int(limit),
		Remaining: Remaining(remaining),
	}, nil
}

// RecordUsage increments the action's counter for the current month. Call it
// only after the gated operation succeeded.
func (e *Evaluator) RecordUsage(action Action) error {
	if err := e.usage.Increment(action, e.monthKey()); err != nil {
		return fmt.Errorf("failed to record usage for %s: %w", action, err)
	}
	return nil
}

// monthKey yields the current counter bucket; rollover to a new month is
// implicit in the key.
func (e *Evaluator) monthKey() string {
	return e.now().Format("2006-01")
}
