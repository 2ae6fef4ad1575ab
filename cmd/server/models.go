package main

import (
	"github.com/tripforge/packlist/entitlement"
	"github.com/tripforge/packlist/packing"
	"github.com/tripforge/packlist/trips"
)

// API request and response models.

// GenerateRequest carries the trip parameters a packing list is generated
// from.
type GenerateRequest struct {
	Trip packing.TripParameters `json:"trip"`
}

// GenerateResponse is the generation result. Warnings list degraded steps;
// the item list is always valid even when warnings are present.
type GenerateResponse struct {
	Items          []packing.Item    `json:"items"`
	Warnings       []packing.Warning `json:"warnings,omitempty"`
	GenerationTime string            `json:"generationTime"`
}

// EntitlementCheckRequest asks whether the subscription may perform an
// action this month.
type EntitlementCheckRequest struct {
	Action       entitlement.Action       `json:"action"`
	Subscription entitlement.Subscription `json:"subscription"`
}

// CreateTripRequest creates a trip. The subscription is checked against the
// create-trip quota before anything is saved.
type CreateTripRequest struct {
	Trip         trips.Trip               `json:"trip"`
	Subscription entitlement.Subscription `json:"subscription"`
}

// CreateRuleRequest creates or updates a custom scoring rule.
type CreateRuleRequest struct {
	Name       string `json:"name"`
	Expression string `json:"expression"`
	Points     int    `json:"points"`
	Active     bool   `json:"active"`
}
