package packing

import (
	"strings"
	"time"
)

// An item is included in the generated list only when its score is strictly
// above this value. The cutoff is a tuned product constant, not derived.
const inclusionThreshold = 60

// ScoreRule is one entry in the scoring table. Score returns the points the
// rule contributes for the given item, zero when it does not apply. Rules
// never mutate their inputs.
type ScoreRule struct {
	Name  string
	Score func(item CatalogItem, f Facts) int
}

// fixed builds a rule that awards a constant number of points when the
// predicate holds.
func fixed(name string, points int, applies func(item CatalogItem, f Facts) bool) ScoreRule {
	return ScoreRule{
		Name: name,
		Score: func(item CatalogItem, f Facts) int {
			if applies(item, f) {
				return points
			}
			return 0
		},
	}
}

func nameContains(item CatalogItem, keywords ...string) bool {
	name := strings.ToLower(item.Name)
	for _, kw := range keywords {
		if strings.Contains(name, kw) {
			return true
		}
	}
	return false
}

func infoContains(f Facts, keywords ...string) bool {
	info := strings.ToLower(f.Trip.AdditionalInfo)
	for _, kw := range keywords {
		if strings.Contains(info, kw) {
			return true
		}
	}
	return false
}

// ScoreItem computes the relevance score of a catalog item for the given
// facts using the supplied rule table. Points are additive with no
// normalization; negative totals clamp to zero.
func ScoreItem(item CatalogItem, f Facts, rules []ScoreRule) int {
	score := 0
	for _, rule := range rules {
		score += rule.Score(item, f)
	}
	if score < 0 {
		return 0
	}
	return score
}

// DefaultScoreRules returns the built-in scoring table. The slice is newly
// allocated on each call so callers may append their own rules.
func DefaultScoreRules() []ScoreRule {
	rules := []ScoreRule{
		fixed("essential", 100, func(item CatalogItem, f Facts) bool {
			return item.Essential
		}),
		{Name: "activity-match", Score: func(item CatalogItem, f Facts) int {
			points := 0
			for _, a := range f.Trip.Activities {
				if item.HasActivity(a) {
					points += 60
				}
			}
			return points
		}},
		fixed("climate-match", 70, func(item CatalogItem, f Facts) bool {
			return item.HasClimate(f.Climate)
		}),
		{Name: "gender-fit", Score: func(item CatalogItem, f Facts) int {
			if item.Gender == "" {
				return 0
			}
			if f.Trip.GenderSplit == GenderBoth || item.Gender == f.Trip.GenderSplit {
				return 60
			}
			return -60
		}},
		{Name: "seasonal-bias", Score: seasonalBias},
	}
	rules = append(rules, tripTypeRules()...)
	rules = append(rules, activityKeywordRules()...)
	rules = append(rules, heuristicRules()...)
	return rules
}

// tripTypeRules awards bonuses when a trip type semantically matches an item.
func tripTypeRules() []ScoreRule {
	return []ScoreRule{
		fixed("trip-type/business", 80, func(item CatalogItem, f Facts) bool {
			return item.BusinessTrip && f.Trip.HasTripType("business")
		}),
		fixed("trip-type/family", 30, func(item CatalogItem, f Facts) bool {
			return f.Trip.HasTripType("family") && nameContains(item, "first aid")
		}),
		fixed("trip-type/romantic", 40, func(item CatalogItem, f Facts) bool {
			return f.Trip.HasTripType("romantic") && nameContains(item, "dress", "suit", "evening", "heels")
		}),
		fixed("trip-type/adventure", 50, func(item CatalogItem, f Facts) bool {
			return f.Trip.HasTripType("adventure") && nameContains(item, "hiking", "tent", "sleeping", "headlamp", "climbing", "poles")
		}),
		fixed("trip-type/wellness", 40, func(item CatalogItem, f Facts) bool {
			return f.Trip.HasTripType("wellness") && nameContains(item, "yoga", "spa", "leggings")
		}),
		fixed("trip-type/cultural", 40, func(item CatalogItem, f Facts) bool {
			return f.Trip.HasTripType("cultural") && nameContains(item, "cultural")
		}),
		fixed("trip-type/backpacking", 45, func(item CatalogItem, f Facts) bool {
			return f.Trip.HasTripType("backpacking") && nameContains(item, "backpack", "tent", "sleeping", "camping")
		}),
	}
}

// activityKeywordRules pairs a planned activity with item-name keywords.
func activityKeywordRules() []ScoreRule {
	pairs := []struct {
		activity ActivityTag
		points   int
		keywords []string
	}{
		{ActivitySwimming, 80, []string{"swimsuit"}},
		{ActivitySwimming, 60, []string{"goggles", "snorkel"}},
		{ActivityRockClimbing, 80, []string{"climbing", "harness", "chalk"}},
		{ActivityHiking, 70, []string{"hiking"}},
		{ActivityHiking, 50, []string{"boots", "water bottle"}},
		{ActivitySkiing, 80, []string{"ski"}},
		{ActivitySkiing, 50, []string{"thermal"}},
		{ActivityCycling, 70, []string{"cycling", "helmet"}},
		{ActivityRunning, 60, []string{"running"}},
		{ActivityYoga, 70, []string{"yoga"}},
		{ActivityGolf, 80, []string{"golf"}},
		{ActivityFishing, 70, []string{"fishing"}},
		{ActivityPhotography, 80, []string{"camera", "lens", "tripod"}},
		{ActivitySurfing, 75, []string{"surf", "rash guard"}},
		{ActivityBeach, 55, []string{"beach", "sandals"}},
		{ActivityCamping, 80, []string{"tent", "sleeping bag", "camping"}},
	}

	rules := make([]ScoreRule, 0, len(pairs))
	for _, p := range pairs {
		p := p
		name := "activity-keyword/" + string(p.activity) + "/" + p.keywords[0]
		rules = append(rules, fixed(name, p.points, func(item CatalogItem, f Facts) bool {
			return f.Trip.HasActivity(p.activity) && nameContains(item, p.keywords...)
		}))
	}
	return rules
}

// heuristicRules holds the duration, traveler-count and free-text
// adjustments.
func heuristicRules() []ScoreRule {
	return []ScoreRule{
		fixed("duration/laundry", 40, func(item CatalogItem, f Facts) bool {
			return f.Trip.DurationDays > 7 && nameContains(item, "laundry")
		}),
		fixed("duration/detergent", 30, func(item CatalogItem, f Facts) bool {
			return f.Trip.DurationDays > 7 && nameContains(item, "detergent")
		}),
		fixed("duration/sewing", 25, func(item CatalogItem, f Facts) bool {
			return f.Trip.DurationDays > 14 && nameContains(item, "sewing")
		}),
		fixed("duration/power-bank", 20, func(item CatalogItem, f Facts) bool {
			return f.Trip.DurationDays > 10 && nameContains(item, "power bank")
		}),
		fixed("duration/travel-pillow", 15, func(item CatalogItem, f Facts) bool {
			return f.Trip.DurationDays >= 7 && nameContains(item, "travel pillow")
		}),
		fixed("duration/weekend-day-pack", 20, func(item CatalogItem, f Facts) bool {
			return f.Trip.DurationDays <= 2 && nameContains(item, "day pack")
		}),
		fixed("travelers/first-aid", 25, func(item CatalogItem, f Facts) bool {
			return f.Trip.Travelers > 1 && nameContains(item, "first aid")
		}),
		fixed("travelers/power-strip", 35, func(item CatalogItem, f Facts) bool {
			return f.Trip.Travelers > 2 && nameContains(item, "power strip")
		}),
		fixed("travelers/games", 20, func(item CatalogItem, f Facts) bool {
			return f.Trip.Travelers > 1 && nameContains(item, "games", "cards")
		}),
		fixed("travelers/hand-sanitizer", 20, func(item CatalogItem, f Facts) bool {
			return f.Trip.Travelers > 2 && nameContains(item, "sanitizer")
		}),
		fixed("info/wedding", 90, func(item CatalogItem, f Facts) bool {
			return infoContains(f, "wedding") && nameContains(item, "dress", "suit", "heels", "tie")
		}),
		fixed("info/work", 40, func(item CatalogItem, f Facts) bool {
			return item.BusinessTrip && infoContains(f, "work", "business")
		}),
		fixed("info/rain", 60, func(item CatalogItem, f Facts) bool {
			return infoContains(f, "rain", "monsoon") && nameContains(item, "rain", "umbrella")
		}),
		fixed("info/photography", 50, func(item CatalogItem, f Facts) bool {
			return infoContains(f, "photo") && nameContains(item, "camera", "lens", "tripod")
		}),
		fixed("info/hiking", 45, func(item CatalogItem, f Facts) bool {
			return infoContains(f, "hik", "trek") && nameContains(item, "hiking", "boots", "poles")
		}),
		fixed("info/beach", 45, func(item CatalogItem, f Facts) bool {
			return infoContains(f, "beach", "pool") && nameContains(item, "swimsuit", "beach", "sandals")
		}),
		fixed("info/cold", 40, func(item CatalogItem, f Facts) bool {
			return infoContains(f, "cold", "snow") && nameContains(item, "thermal", "winter", "gloves", "scarf")
		}),
		fixed("info/formal", 60, func(item CatalogItem, f Facts) bool {
			return infoContains(f, "formal", "gala", "dinner") && nameContains(item, "dress", "suit", "heels", "tie")
		}),
		fixed("info/camping", 45, func(item CatalogItem, f Facts) bool {
			return infoContains(f, "camp") && nameContains(item, "tent", "sleeping", "stove", "headlamp")
		}),
		fixed("info/running", 35, func(item CatalogItem, f Facts) bool {
			return infoContains(f, "marathon", "run") && nameContains(item, "running")
		}),
	}
}

// seasonalBias nudges sun protection in summer and winter gear in winter.
// Month comes from the injected clock, not the wall clock.
func seasonalBias(item CatalogItem, f Facts) int {
	switch f.Month {
	case time.June, time.July, time.August:
		if nameContains(item, "sunscreen", "sunglasses", "sun hat") {
			return 30
		}
	case time.December, time.January, time.February:
		if nameContains(item, "thermal", "gloves", "scarf", "winter", "wool hat") {
			return 30
		}
	}
	return 0
}
