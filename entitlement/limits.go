package entitlement

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Limits maps tier → action → monthly quota. A quota of Unlimited means the
// action is never metered for the tier.
type Limits map[Tier]map[Action]Remaining

// DefaultLimits returns the built-in tier configuration.
func DefaultLimits() Limits {
	return Limits{
		TierFree: {
			ActionCreateTrip:         3,
			ActionCreateJournalEntry: 10,
			ActionShareList:          1,
			ActionExportPDF:          0,
		},
		TierPro: {
			ActionCreateTrip:         Unlimited,
			ActionCreateJournalEntry: Unlimited,
			ActionShareList:          20,
			ActionExportPDF:          5,
		},
		TierElite: {
			ActionCreateTrip:         Unlimited,
			ActionCreateJournalEntry: Unlimited,
			ActionShareList:          Unlimited,
			ActionExportPDF:          Unlimited,
		},
	}
}

// limitValue lets YAML express a quota as either an integer or the string
// "unlimited".
type limitValue Remaining

func (l *limitValue) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err == nil && s == "unlimited" {
		*l = limitValue(Unlimited)
		return nil
	}
	var n int
	if err := node.Decode(&n); err != nil {
		return fmt.Errorf("limit must be a non-negative integer or %q: %w", "unlimited", err)
	}
	if n < 0 {
		return fmt.Errorf("limit must not be negative, got %d", n)
	}
	*l = limitValue(n)
	return nil
}

// LoadLimits reads a tier-limits YAML file. File entries override the
// defaults per (tier, action); tiers or actions absent from the file keep
// their default quotas. Unknown tier or action names are rejected.
func LoadLimits(path string) (Limits, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read limits file: %w", err)
	}

	var raw map[string]map[string]limitValue
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse limits file: %w", err)
	}

	limits := DefaultLimits()
	for tierName, actions := range raw {
		tier := Tier(tierName)
		if _, known := limits[tier]; !known {
			return nil, fmt.Errorf("unknown tier %q in limits file", tierName)
		}
		for actionName, value := range actions {
			action := Action(actionName)
			if _, known := limits[tier][action]; !known {
				return nil, fmt.Errorf("unknown action %q in limits file", actionName)
			}
			limits[tier][action] = Remaining(value)
		}
	}

	return limits, nil
}
