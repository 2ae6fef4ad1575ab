package packing

import (
	"math"
	"strings"
)

// ComputeQuantity derives the suggested quantity for a named item. Rules are
// keyed on name substrings; multiplicative adjustments compound within a
// single category. The result is always at least 1.
func ComputeQuantity(itemName string, f Facts) int {
	name := strings.ToLower(itemName)
	trip := f.Trip
	duration := trip.DurationDays
	if duration < 1 {
		duration = 1
	}

	qty := 1
	switch {
	case strings.Contains(name, "underwear") || strings.Contains(name, "socks"):
		qty = ceilMin(float64(duration)*1.2, 14)
		if trip.Travelers > 1 && trip.GenderSplit == GenderBoth {
			qty = int(math.Ceil(float64(qty) * 1.3))
		}

	case strings.Contains(name, "t-shirt") || strings.Contains(name, "shirt") && !strings.Contains(name, "dress shirt"):
		factor := 0.7
		if f.Climate == ClimateTropical {
			factor *= 1.4
		}
		if hasOutdoorActivity(trip) {
			factor *= 1.3
		}
		qty = ceilMin(float64(duration)*factor, 10)

	case strings.Contains(name, "pants") || strings.Contains(name, "jeans") || strings.Contains(name, "trousers"):
		qty = ceilMin(float64(duration)*0.3, 4)
		if duration > 10 {
			qty++
		}

	case strings.Contains(name, "dress") && !strings.Contains(name, "dress shoes") && !strings.Contains(name, "dress shirt"):
		qty = ceilMin(float64(duration)*0.25, 4)

	case strings.Contains(name, "heels") || strings.Contains(name, "skirt"):
		qty = ceilMin(float64(duration)*0.2, 3)

	case strings.Contains(name, "tie") || strings.Contains(name, "belt"):
		qty = ceilMin(float64(duration)*0.2, 3)

	case strings.Contains(name, "suit") || strings.Contains(name, "blazer") || strings.Contains(name, "dress shirt"):
		if trip.HasActivity(ActivityBusiness) || trip.HasTripType("business") {
			qty = ceilMin(float64(duration)*0.8, 7)
		}

	case strings.Contains(name, "first aid") || strings.Contains(name, "sunscreen") || strings.Contains(name, "insect repellent"):
		if trip.Travelers > 2 {
			qty = int(math.Ceil(float64(trip.Travelers) * 0.5))
		}
	}

	if qty < 1 {
		qty = 1
	}
	return qty
}

func ceilMin(v float64, limit int) int {
	q := int(math.Ceil(v))
	if q > limit {
		return limit
	}
	if q < 1 {
		return 1
	}
	return q
}

func hasOutdoorActivity(trip TripParameters) bool {
	for _, a := range []ActivityTag{ActivityHiking, ActivityCycling, ActivityRunning, ActivityRockClimbing, ActivityCamping} {
		if trip.HasActivity(a) {
			return true
		}
	}
	return false
}
