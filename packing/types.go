package packing

import "time"

// ClimateTag is a coarse climate classification derived from the destination.
type ClimateTag string

const (
	ClimateTropical      ClimateTag = "tropical"
	ClimateCold          ClimateTag = "cold"
	ClimateArid          ClimateTag = "arid"
	ClimateMediterranean ClimateTag = "mediterranean"
	ClimateTemperate     ClimateTag = "temperate"
)

// ActivityTag identifies a planned trip activity.
type ActivityTag string

const (
	ActivityBeach        ActivityTag = "beach"
	ActivitySwimming     ActivityTag = "swimming"
	ActivityHiking       ActivityTag = "hiking"
	ActivityCamping      ActivityTag = "camping"
	ActivityCycling      ActivityTag = "cycling"
	ActivityRunning      ActivityTag = "running"
	ActivitySkiing       ActivityTag = "skiing"
	ActivityRockClimbing ActivityTag = "rock-climbing"
	ActivitySurfing      ActivityTag = "surfing"
	ActivityFishing      ActivityTag = "fishing"
	ActivityGolf         ActivityTag = "golf"
	ActivityYoga         ActivityTag = "yoga"
	ActivityPhotography  ActivityTag = "photography"
	ActivityBusiness     ActivityTag = "business"
	ActivitySightseeing  ActivityTag = "sightseeing"
	ActivityNightlife    ActivityTag = "nightlife"
)

// Gender restricts an item or describes a traveling group's composition.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderBoth   Gender = "both"
)

// CatalogItem is one candidate entry in the static packing catalog.
// The catalog is defined at process start and is read-only thereafter.
type CatalogItem struct {
	Name         string
	Category     string
	Essential    bool
	Activities   []ActivityTag
	Climates     []ClimateTag
	BusinessTrip bool
	Gender       Gender // empty means unisex
}

// HasActivity reports whether the item is tagged with the given activity.
func (c CatalogItem) HasActivity(a ActivityTag) bool {
	for _, tag := range c.Activities {
		if tag == a {
			return true
		}
	}
	return false
}

// HasClimate reports whether the item is tagged with the given climate.
func (c CatalogItem) HasClimate(climate ClimateTag) bool {
	for _, tag := range c.Climates {
		if tag == climate {
			return true
		}
	}
	return false
}

// TripParameters describes the trip a packing list is generated for.
// Assembled by the caller from user-entered form fields.
type TripParameters struct {
	Destination    string        `json:"destination"`
	TripTypes      []string      `json:"tripTypes"`
	Activities     []ActivityTag `json:"activities"`
	DurationDays   int           `json:"durationDays"`
	Travelers      int           `json:"travelers"`
	GenderSplit    Gender        `json:"genderSplit"`
	AdditionalInfo string        `json:"additionalInfo"`
}

// HasActivity reports whether the trip includes the given activity.
func (t TripParameters) HasActivity(a ActivityTag) bool {
	for _, tag := range t.Activities {
		if tag == a {
			return true
		}
	}
	return false
}

// HasTripType reports whether the trip carries the given trip type.
func (t TripParameters) HasTripType(name string) bool {
	for _, tt := range t.TripTypes {
		if tt == name {
			return true
		}
	}
	return false
}

// Item is a single generated packing-list entry. Once returned it belongs to
// the caller, which may toggle Packed, rename it or reassign its category;
// regeneration produces a fresh list and does not reconcile prior edits.
type Item struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Category      string `json:"category"`
	Packed        bool   `json:"packed"`
	Essential     bool   `json:"essential"`
	CustomAdded   bool   `json:"customAdded"`
	Quantity      int    `json:"quantity"`
	Notes         string `json:"notes,omitempty"`
	PriorityScore int    `json:"priorityScore"`
}

// Facts bundles the resolved inputs a scoring rule may consult.
type Facts struct {
	Trip    TripParameters
	Climate ClimateTag
	Month   time.Month
}

// Warning records a degraded step during generation. Warnings are advisory;
// the returned list is always usable even when warnings are present.
type Warning struct {
	Stage   string `json:"stage"`
	Item    string `json:"item,omitempty"`
	Message string `json:"message"`
}
