// Package entitlement decides whether subscription-gated actions are allowed
// given a tier and monthly usage counters. Decisions are synchronous and
// side-effect free; callers record usage only after the gated operation
// actually succeeds.
package entitlement

import (
	"encoding/json"
	"time"
)

// Tier is a subscription level.
type Tier string

const (
	TierFree  Tier = "free"
	TierPro   Tier = "pro"
	TierElite Tier = "elite"
)

// Action is a metered operation.
type Action string

const (
	ActionCreateTrip         Action = "create_trip"
	ActionCreateJournalEntry Action = "create_journal_entry"
	ActionShareList          Action = "share_list"
	ActionExportPDF          Action = "export_pdf"
)

// Remaining is a quota balance. The Unlimited sentinel marshals as the JSON
// string "unlimited"; every other value marshals as a number.
type Remaining int

// Unlimited marks an action with no quota for the tier.
const Unlimited Remaining = -1

// MarshalJSON implements the unlimited sentinel encoding.
func (r Remaining) MarshalJSON() ([]byte, error) {
	if r == Unlimited {
		return json.Marshal("unlimited")
	}
	return json.Marshal(int(r))
}

// UnmarshalJSON accepts either a number or the string "unlimited".
func (r *Remaining) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if s == "unlimited" {
			*r = Unlimited
			return nil
		}
	}
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*r = Remaining(n)
	return nil
}

// Decision is the outcome of an entitlement check.
type Decision struct {
	Allowed   bool      `json:"allowed"`
	Remaining Remaining `json:"remaining"`
}

// Subscription is the caller's current plan. A nil ExpiresAt never expires.
type Subscription struct {
	Tier      Tier       `json:"tier"`
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
}
