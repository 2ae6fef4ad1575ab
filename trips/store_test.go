package trips

import (
	"testing"
	"time"

	"github.com/tripforge/packlist/packing"
)

func sampleTrip(id, name string) *Trip {
	return &Trip{
		ID:           id,
		Name:         name,
		Destination:  "Phuket, Thailand",
		TripTypes:    []string{"beach"},
		Activities:   []packing.ActivityTag{packing.ActivityBeach, packing.ActivitySwimming},
		DurationDays: 7,
		Travelers:    2,
		GenderSplit:  packing.GenderBoth,
	}
}

func TestInMemoryStoreAddAndGet(t *testing.T) {
	store := NewInMemoryStore()

	trip := sampleTrip("trip-1", "Summer Break")
	if err := store.Add(trip); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	if trip.CreatedAt.IsZero() || trip.UpdatedAt.IsZero() {
		t.Error("expected Add to set timestamps")
	}

	got, err := store.Get("trip-1")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Name != "Summer Break" {
		t.Errorf("expected name 'Summer Break', got %q", got.Name)
	}
	if got.Destination != "Phuket, Thailand" {
		t.Errorf("expected destination 'Phuket, Thailand', got %q", got.Destination)
	}
}

func TestInMemoryStoreAddDuplicate(t *testing.T) {
	store := NewInMemoryStore()

	if err := store.Add(sampleTrip("trip-1", "First")); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := store.Add(sampleTrip("trip-1", "Second")); err == nil {
		t.Error("expected error adding trip with duplicate ID")
	}
}

func TestInMemoryStoreGetMissing(t *testing.T) {
	store := NewInMemoryStore()

	if _, err := store.Get("nope"); err == nil {
		t.Error("expected error for missing trip")
	}
}

func TestInMemoryStoreListNewestFirst(t *testing.T) {
	store := NewInMemoryStore()

	first := sampleTrip("trip-1", "First")
	if err := store.Add(first); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	// Force distinct CreatedAt values.
	first.CreatedAt = first.CreatedAt.Add(-time.Minute)

	second := sampleTrip("trip-2", "Second")
	if err := store.Add(second); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	list, err := store.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 trips, got %d", len(list))
	}
	if list[0].ID != "trip-2" || list[1].ID != "trip-1" {
		t.Errorf("expected newest first, got [%s, %s]", list[0].ID, list[1].ID)
	}
}

func TestInMemoryStoreUpdatePreservesCreatedAt(t *testing.T) {
	store := NewInMemoryStore()

	trip := sampleTrip("trip-1", "Original")
	if err := store.Add(trip); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	created := trip.CreatedAt

	updated := sampleTrip("trip-1", "Renamed")
	updated.DurationDays = 10
	if err := store.Update(updated); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	got, err := store.Get("trip-1")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Name != "Renamed" {
		t.Errorf("expected name 'Renamed', got %q", got.Name)
	}
	if got.DurationDays != 10 {
		t.Errorf("expected duration 10, got %d", got.DurationDays)
	}
	if !got.CreatedAt.Equal(created) {
		t.Errorf("expected CreatedAt preserved, got %v want %v", got.CreatedAt, created)
	}
}

func TestInMemoryStoreUpdateMissing(t *testing.T) {
	store := NewInMemoryStore()

	if err := store.Update(sampleTrip("nope", "Ghost")); err == nil {
		t.Error("expected error updating missing trip")
	}
}

func TestInMemoryStoreDelete(t *testing.T) {
	store := NewInMemoryStore()

	if err := store.Add(sampleTrip("trip-1", "Doomed")); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := store.Delete("trip-1"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := store.Get("trip-1"); err == nil {
		t.Error("expected trip to be gone after delete")
	}
	if err := store.Delete("trip-1"); err == nil {
		t.Error("expected error deleting missing trip")
	}
}

func TestTripParameters(t *testing.T) {
	trip := sampleTrip("trip-1", "Summer Break")
	trip.AdditionalInfo = "attending a wedding"

	params := trip.Parameters()
	if params.Destination != trip.Destination {
		t.Errorf("expected destination %q, got %q", trip.Destination, params.Destination)
	}
	if len(params.Activities) != 2 {
		t.Errorf("expected 2 activities, got %d", len(params.Activities))
	}
	if params.AdditionalInfo != "attending a wedding" {
		t.Errorf("unexpected additional info %q", params.AdditionalInfo)
	}
	if !params.HasActivity(packing.ActivitySwimming) {
		t.Error("expected swimming activity to carry over")
	}
}
