package trips

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/tripforge/packlist/packing"
)

// PostgresStore implements Store backed by PostgreSQL. Trip types and
// activities are stored as text arrays.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore creates a PostgreSQL-backed trip store.
func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// Add inserts a new trip.
func (s *PostgresStore) Add(trip *Trip) error {
	now := time.Now()
	trip.CreatedAt = now
	trip.UpdatedAt = now

	_, err := s.db.Exec(`
		INSERT INTO trips (id, name, destination, trip_types, activities,
			duration_days, travelers, gender_split, additional_info,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`, trip.ID, trip.Name, trip.Destination,
		pq.Array(trip.TripTypes), pq.Array(activityStrings(trip.Activities)),
		trip.DurationDays, trip.Travelers, string(trip.GenderSplit),
		trip.AdditionalInfo, trip.CreatedAt, trip.UpdatedAt)

	if err != nil {
		return fmt.Errorf("failed to insert trip: %w", err)
	}

	return nil
}

// Get retrieves a trip by ID.
func (s *PostgresStore) Get(id string) (*Trip, error) {
	trip, err := scanTrip(s.db.QueryRow(`
		SELECT id, name, destination, trip_types, activities, duration_days,
			travelers, gender_split, additional_info, created_at, updated_at
		FROM trips
		WHERE id = $1
	`, id))

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("trip %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get trip: %w", err)
	}

	return trip, nil
}

// List returns all trips, newest first.
func (s *PostgresStore) List() ([]*Trip, error) {
	rows, err := s.db.Query(`
		SELECT id, name, destination, trip_types, activities, duration_days,
			travelers, gender_split, additional_info, created_at, updated_at
		FROM trips
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list trips: %w", err)
	}
	defer rows.Close()

	var out []*Trip
	for rows.Next() {
		trip, err := scanTrip(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan trip: %w", err)
		}
		out = append(out, trip)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating trips: %w", err)
	}

	return out, nil
}

// Update modifies an existing trip.
func (s *PostgresStore) Update(trip *Trip) error {
	trip.UpdatedAt = time.Now()

	result, err := s.db.Exec(`
		UPDATE trips
		SET name = $1, destination = $2, trip_types = $3, activities = $4,
			duration_days = $5, travelers = $6, gender_split = $7,
			additional_info = $8, updated_at = $9
		WHERE id = $10
	`, trip.Name, trip.Destination,
		pq.Array(trip.TripTypes), pq.Array(activityStrings(trip.Activities)),
		trip.DurationDays, trip.Travelers, string(trip.GenderSplit),
		trip.AdditionalInfo, trip.UpdatedAt, trip.ID)

	if err != nil {
		return fmt.Errorf("failed to update trip: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("trip %s not found", trip.ID)
	}

	return nil
}

// Delete removes a trip.
func (s *PostgresStore) Delete(id string) error {
	result, err := s.db.Exec(`DELETE FROM trips WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete trip: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("trip %s not found", id)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTrip(row rowScanner) (*Trip, error) {
	var trip Trip
	var tripTypes, activities []string
	var genderSplit string

	err := row.Scan(&trip.ID, &trip.Name, &trip.Destination,
		pq.Array(&tripTypes), pq.Array(&activities), &trip.DurationDays,
		&trip.Travelers, &genderSplit, &trip.AdditionalInfo,
		&trip.CreatedAt, &trip.UpdatedAt)
	if err != nil {
		return nil, err
	}

	trip.TripTypes = tripTypes
	trip.Activities = make([]packing.ActivityTag, len(activities))
	for i, a := range activities {
		trip.Activities[i] = packing.ActivityTag(a)
	}
	trip.GenderSplit = packing.Gender(genderSplit)
	return &trip, nil
}

func activityStrings(tags []packing.ActivityTag) []string {
	out := make([]string, len(tags))
	for i, t := range tags {
		out[i] = string(t)
	}
	return out
}
