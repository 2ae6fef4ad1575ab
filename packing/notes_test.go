package packing

import (
	"strings"
	"testing"
	"time"
)

func TestGenerateNotesTropicalSunscreen(t *testing.T) {
	facts := Facts{
		Trip:    TripParameters{Destination: "Bangkok, Thailand", DurationDays: 5, Travelers: 1},
		Climate: ClimateTropical,
		Month:   time.April,
	}
	item := CatalogItem{Name: "Sunscreen", Category: CategoryHealth}

	notes := GenerateNotes(item, facts)
	if !strings.Contains(notes, "high SPF") && !strings.Contains(notes, "High SPF") {
		t.Errorf("expected SPF advice for tropical sunscreen, got %q", notes)
	}
}

func TestGenerateNotesJoinsMultiple(t *testing.T) {
	// Long trip underwear in a group gets the laundry note; tropical
	// clothing also gets the fabric note, joined with ". ".
	facts := Facts{
		Trip:    TripParameters{Destination: "Bali", DurationDays: 10, Travelers: 1},
		Climate: ClimateTropical,
		Month:   time.April,
	}
	item := CatalogItem{Name: "Underwear", Category: CategoryClothing}

	notes := GenerateNotes(item, facts)
	if !strings.Contains(notes, ". ") {
		t.Errorf("expected multiple notes joined with %q, got %q", ". ", notes)
	}
	if !strings.Contains(notes, "laundry") {
		t.Errorf("expected laundry note for a 10-day trip, got %q", notes)
	}
}

func TestGenerateNotesEmptyWhenNothingApplies(t *testing.T) {
	facts := Facts{
		Trip:    TripParameters{Destination: "Unknown Place", DurationDays: 3, Travelers: 1},
		Climate: ClimateTemperate,
		Month:   time.April,
	}
	item := CatalogItem{Name: "Phone Charger", Category: CategoryElectronics}

	if notes := GenerateNotes(item, facts); notes != "" {
		t.Errorf("expected no notes, got %q", notes)
	}
}

func TestGenerateNotesGroupFirstAid(t *testing.T) {
	facts := Facts{
		Trip:    TripParameters{Destination: "Unknown Place", DurationDays: 5, Travelers: 4},
		Climate: ClimateTemperate,
		Month:   time.April,
	}
	item := CatalogItem{Name: "First Aid Kit", Category: CategoryHealth}

	notes := GenerateNotes(item, facts)
	if !strings.Contains(notes, "group") {
		t.Errorf("expected group supplies note, got %q", notes)
	}
}
