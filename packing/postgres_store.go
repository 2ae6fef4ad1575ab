package packing

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
)

// PostgresRuleStore implements RuleStore backed by PostgreSQL.
type PostgresRuleStore struct {
	db *sql.DB
}

// NewPostgresRuleStore creates a PostgreSQL-backed custom-rule store.
func NewPostgresRuleStore(db *sql.DB) *PostgresRuleStore {
	return &PostgresRuleStore{db: db}
}

// Add inserts a new rule.
func (s *PostgresRuleStore) Add(rule *CustomRule) error {
	var exists bool
	err := s.db.QueryRow(`
		SELECT EXISTS(SELECT 1 FROM custom_rules WHERE id = $1)
	`, rule.ID).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check rule existence: %w", err)
	}
	if exists {
		return fmt.Errorf("rule with ID %s already exists", rule.ID)
	}

	_, err = s.db.Exec(`
		INSERT INTO custom_rules (id, name, expression, points, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
	`, rule.ID, rule.Name, rule.Expression, rule.Points, rule.Active)

	if err != nil {
		return fmt.Errorf("failed to insert rule: %w", err)
	}

	return nil
}

// Get retrieves a rule by ID.
func (s *PostgresRuleStore) Get(id string) (*CustomRule, error) {
	var rule CustomRule
	err := s.db.QueryRow(`
		SELECT id, name, expression, points, active
		FROM custom_rules
		WHERE id = $1
	`, id).Scan(&rule.ID, &rule.Name, &rule.Expression, &rule.Points, &rule.Active)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("rule %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get rule: %w", err)
	}

	return &rule, nil
}

// ListActive returns all active rules.
func (s *PostgresRuleStore) ListActive() ([]*CustomRule, error) {
	rows, err := s.db.Query(`
		SELECT id, name, expression, points, active
		FROM custom_rules
		WHERE active = true
		ORDER BY created_at ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list active rules: %w", err)
	}
	defer rows.Close()

	var rulesList []*CustomRule
	for rows.Next() {
		var r CustomRule
		if err := rows.Scan(&r.ID, &r.Name, &r.Expression, &r.Points, &r.Active); err != nil {
			return nil, fmt.Errorf("failed to scan rule: %w", err)
		}
		rulesList = append(rulesList, &r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rules: %w", err)
	}

	return rulesList, nil
}

// Update modifies an existing rule.
func (s *PostgresRuleStore) Update(rule *CustomRule) error {
	result, err := s.db.Exec(`
		UPDATE custom_rules
		SET name = $1, expression = $2, points = $3, active = $4, updated_at = NOW()
		WHERE id = $5
	`, rule.Name, rule.Expression, rule.Points, rule.Active, rule.ID)

	if err != nil {
		return fmt.Errorf("failed to update rule: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("rule %s not found", rule.ID)
	}

	return nil
}

// Delete removes a rule.
func (s *PostgresRuleStore) Delete(id string) error {
	result, err := s.db.Exec(`
		DELETE FROM custom_rules
		WHERE id = $1
	`, id)

	if err != nil {
		return fmt.Errorf("failed to delete rule: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("rule %s not found", id)
	}

	return nil
}
