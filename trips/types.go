// Package trips persists the trips packing lists are generated for.
package trips

import (
	"time"

	"github.com/tripforge/packlist/packing"
)

// Trip is a saved trip.
type Trip struct {
	ID             string                `json:"id"`
	Name           string                `json:"name"`
	Destination    string                `json:"destination"`
	TripTypes      []string              `json:"tripTypes"`
	Activities     []packing.ActivityTag `json:"activities"`
	DurationDays   int                   `json:"durationDays"`
	Travelers      int                   `json:"travelers"`
	GenderSplit    packing.Gender        `json:"genderSplit"`
	AdditionalInfo string                `json:"additionalInfo"`
	CreatedAt      time.Time             `json:"createdAt"`
	UpdatedAt      time.Time             `json:"updatedAt"`
}

// Parameters converts the saved trip into generation input.
func (t *Trip) Parameters() packing.TripParameters {
	return packing.TripParameters{
		Destination:    t.Destination,
		TripTypes:      t.TripTypes,
		Activities:     t.Activities,
		DurationDays:   t.DurationDays,
		Travelers:      t.Travelers,
		GenderSplit:    t.GenderSplit,
		AdditionalInfo: t.AdditionalInfo,
	}
}
