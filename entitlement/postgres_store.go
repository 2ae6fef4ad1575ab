package entitlement

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
)

// PostgresUsageStore implements UsageStore backed by PostgreSQL.
type PostgresUsageStore struct {
	db *sql.DB
}

// NewPostgresUsageStore creates a PostgreSQL-backed usage store.
func NewPostgresUsageStore(db *sql.DB) *PostgresUsageStore {
	return &PostgresUsageStore{db: db}
}

// Increment upserts the (action, month) counter.
func (s *PostgresUsageStore) Increment(action Action, month string) error {
	_, err := s.db.Exec(`
		INSERT INTO usage_counters (action, month, count, updated_at)
		VALUES ($1, $2, 1, NOW())
		ON CONFLICT (action, month)
		DO UPDATE SET count = usage_counters.count + 1, updated_at = NOW()
	`, string(action), month)

	if err != nil {
		return fmt.Errorf("failed to increment usage: %w", err)
	}

	return nil
}

// Count reads the counter, zero when the row does not exist.
func (s *PostgresUsageStore) Count(action Action, month string) (int, error) {
	var count int
	err := s.db.QueryRow(`
		SELECT count FROM usage_counters
		WHERE action = $1 AND month = $2
	`, string(action), month).Scan(&count)

	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read usage: %w", err)
	}

	return count, nil
}
