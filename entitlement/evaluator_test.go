package entitlement

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

var testNow = time.Date(2025, time.April, 15, 12, 0, 0, 0, time.UTC)

func newTestEvaluator(t *testing.T) (*Evaluator, *InMemoryUsageStore) {
	t.Helper()
	usage := NewInMemoryUsageStore()
	return NewEvaluator(DefaultLimits(), usage, WithClock(fixedClock(testNow))), usage
}

func TestCanPerformBoundedLimit(t *testing.T) {
	eval, _ := newTestEvaluator(t)
	sub := Subscription{Tier: TierFree}

	// Free tier allows 3 trips per month.
	for i := 0; i < 3; i++ {
		decision, err := eval.CanPerform(sub, ActionCreateTrip)
		require.NoError(t, err)
		assert.True(t, decision.Allowed)
		assert.Equal(t, Remaining(3-i), decision.Remaining)

		require.NoError(t, eval.RecordUsage(ActionCreateTrip))
	}

	decision, err := eval.CanPerform(sub, ActionCreateTrip)
	require.NoError(t, err)
	assert.False(t, decision.Allowed)
	assert.Equal(t, Remaining(0), decision.Remaining)
}

func TestCanPerformUnlimited(t *testing.T) {
	eval, _ := newTestEvaluator(t)
	sub := Subscription{Tier: TierElite}

	for i := 0; i < 50; i++ {
		require.NoError(t, eval.RecordUsage(ActionExportPDF))
	}

	decision, err := eval.CanPerform(sub, ActionExportPDF)
	require.NoError(t, err)
	assert.True(t, decision.Allowed)
	assert.Equal(t, Unlimited, decision.Remaining)
}

func TestCanPerformZeroLimit(t *testing.T) {
	eval, _ := newTestEvaluator(t)

	// Free tier has no PDF exports at all.
	decision, err := eval.CanPerform(Subscription{Tier: TierFree}, ActionExportPDF)
	require.NoError(t, err)
	assert.False(t, decision.Allowed)
	assert.Equal(t, Remaining(0), decision.Remaining)
}

func TestCanPerformUnknownActionFailsClosed(t *testing.T) {
	eval, _ := newTestEvaluator(t)

	decision, err := eval.CanPerform(Subscription{Tier: TierElite}, Action("delete_account"))
	require.NoError(t, err)
	assert.False(t, decision.Allowed, "unknown actions must be denied")
	assert.Equal(t, Remaining(0), decision.Remaining)
}

func TestEffectiveTierExpiry(t *testing.T) {
	eval, _ := newTestEvaluator(t)

	expired := testNow.Add(-24 * time.Hour)
	future := testNow.Add(24 * time.Hour)

	testCases := []struct {
		name string
		sub  Subscription
		want Tier
	}{
		{"Active pro", Subscription{Tier: TierPro, ExpiresAt: &future}, TierPro},
		{"Expired pro falls back to free", Subscription{Tier: TierPro, ExpiresAt: &expired}, TierFree},
		{"No expiry never expires", Subscription{Tier: TierElite}, TierElite},
		{"Unknown tier treated as free", Subscription{Tier: Tier("platinum")}, TierFree},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, eval.EffectiveTier(tc.sub))
		})
	}
}

func TestExpiredSubscriptionUsesFreeLimits(t *testing.T) {
	eval, _ := newTestEvaluator(t)

	expired := testNow.Add(-time.Hour)
	sub := Subscription{Tier: TierPro, ExpiresAt: &expired}

	// Pro would be unlimited; expired pro gets the free quota of 3.
	decision, err := eval.CanPerform(sub, ActionCreateTrip)
	require.NoError(t, err)
	assert.True(t, decision.Allowed)
	assert.Equal(t, Remaining(3), decision.Remaining)
}

func TestCanPerformDoesNotMutateUsage(t *testing.T) {
	eval, usage := newTestEvaluator(t)
	sub := Subscription{Tier: TierFree}

	for i := 0; i < 10; i++ {
		_, err := eval.CanPerform(sub, ActionCreateTrip)
		require.NoError(t, err)
	}

	count, err := usage.Count(ActionCreateTrip, testNow.Format("2006-01"))
	require.NoError(t, err)
	assert.Equal(t, 0, count, "checks must not consume quota")
}

func TestMonthRolloverResetsQuota(t *testing.T) {
	usage := NewInMemoryUsageStore()

	april := NewEvaluator(DefaultLimits(), usage, WithClock(fixedClock(testNow)))
	sub := Subscription{Tier: TierFree}

	for i := 0; i < 3; i++ {
		require.NoError(t, april.RecordUsage(ActionCreateTrip))
	}
	decision, err := april.CanPerform(sub, ActionCreateTrip)
	require.NoError(t, err)
	assert.False(t, decision.Allowed)

	// Same store, next month: the counter bucket changes, quota resets.
	may := NewEvaluator(DefaultLimits(), usage, WithClock(fixedClock(testNow.AddDate(0, 1, 0))))
	decision, err = may.CanPerform(sub, ActionCreateTrip)
	require.NoError(t, err)
	assert.True(t, decision.Allowed)
	assert.Equal(t, Remaining(3), decision.Remaining)
}
