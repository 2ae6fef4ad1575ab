package entitlement

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeLimitsFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "limits.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadLimitsOverridesDefaults(t *testing.T) {
	path := writeLimitsFile(t, `
free:
  create_trip: 5
pro:
  export_pdf: unlimited
`)

	limits, err := LoadLimits(path)
	require.NoError(t, err)

	assert.Equal(t, Remaining(5), limits[TierFree][ActionCreateTrip])
	assert.Equal(t, Unlimited, limits[TierPro][ActionExportPDF])

	// Untouched entries keep their defaults.
	assert.Equal(t, DefaultLimits()[TierFree][ActionShareList], limits[TierFree][ActionShareList])
	assert.Equal(t, DefaultLimits()[TierElite][ActionCreateTrip], limits[TierElite][ActionCreateTrip])
}

func TestLoadLimitsUnknownTier(t *testing.T) {
	path := writeLimitsFile(t, `
platinum:
  create_trip: 5
`)

	_, err := LoadLimits(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "platinum")
}

func TestLoadLimitsUnknownAction(t *testing.T) {
	path := writeLimitsFile(t, `
free:
  launch_rocket: 1
`)

	_, err := LoadLimits(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "launch_rocket")
}

func TestLoadLimitsNegativeValue(t *testing.T) {
	path := writeLimitsFile(t, `
free:
  create_trip: -2
`)

	_, err := LoadLimits(path)
	require.Error(t, err)
}

func TestLoadLimitsMissingFile(t *testing.T) {
	_, err := LoadLimits(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestRemainingJSONRoundTrip(t *testing.T) {
	testCases := []struct {
		name  string
		value Remaining
		want  string
	}{
		{"Number", Remaining(3), `3`},
		{"Zero", Remaining(0), `0`},
		{"Unlimited sentinel", Unlimited, `"unlimited"`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			data, err := json.Marshal(tc.value)
			require.NoError(t, err)
			assert.Equal(t, tc.want, string(data))

			var back Remaining
			require.NoError(t, json.Unmarshal(data, &back))
			assert.Equal(t, tc.value, back)
		})
	}
}

func TestDecisionJSONShape(t *testing.T) {
	data, err := json.Marshal(Decision{Allowed: true, Remaining: Unlimited})
	require.NoError(t, err)
	assert.JSONEq(t, `{"allowed":true,"remaining":"unlimited"}`, string(data))

	data, err = json.Marshal(Decision{Allowed: false, Remaining: 0})
	require.NoError(t, err)
	assert.JSONEq(t, `{"allowed":false,"remaining":0}`, string(data))
}
