//go:build integration
// +build integration

package entitlement_test

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/tripforge/packlist/entitlement"

	_ "github.com/lib/pq"
)

// setupTestDB creates a PostgreSQL container and returns a connection
func setupTestDB(t *testing.T) (*sql.DB, func()) {
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:15-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "test",
			"POSTGRES_PASSWORD": "test",
			"POSTGRES_DB":       "packlist_test",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").WithStartupTimeout(60 * time.Second),
	}

	postgresContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		t.Fatalf("Failed to start PostgreSQL container: %v", err)
	}

	host, err := postgresContainer.Host(ctx)
	if err != nil {
		t.Fatalf("Failed to get container host: %v", err)
	}

	port, err := postgresContainer.MappedPort(ctx, "5432")
	if err != nil {
		t.Fatalf("Failed to get container port: %v", err)
	}

	connStr := fmt.Sprintf("host=%s port=%s user=test password=test dbname=packlist_test sslmode=disable", host, port.Port())

	var db *sql.DB
	for i := 0; i < 30; i++ {
		db, err = sql.Open("postgres", connStr)
		if err == nil {
			err = db.Ping()
			if err == nil {
				break
			}
		}
		time.Sleep(time.Second)
	}
	if err != nil {
		t.Fatalf("Failed to connect to database: %v", err)
	}

	migrationSQL, err := os.ReadFile(filepath.Join("..", "migrations", "000001_initial_schema.up.sql"))
	if err != nil {
		t.Fatalf("Failed to read migration file: %v", err)
	}

	if _, err = db.Exec(string(migrationSQL)); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	cleanup := func() {
		db.Close()
		postgresContainer.Terminate(ctx)
	}

	return db, cleanup
}

func TestPostgresUsageStore_IncrementAndCount(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	store := entitlement.NewPostgresUsageStore(db)

	count, err := store.Count(entitlement.ActionCreateTrip, "2025-04")
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	require.NoError(t, store.Increment(entitlement.ActionCreateTrip, "2025-04"))
	require.NoError(t, store.Increment(entitlement.ActionCreateTrip, "2025-04"))
	require.NoError(t, store.Increment(entitlement.ActionCreateTrip, "2025-05"))
	require.NoError(t, store.Increment(entitlement.ActionExportPDF, "2025-04"))

	count, err = store.Count(entitlement.ActionCreateTrip, "2025-04")
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	count, err = store.Count(entitlement.ActionCreateTrip, "2025-05")
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	count, err = store.Count(entitlement.ActionExportPDF, "2025-04")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestEvaluator_WithDatabase(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	store := entitlement.NewPostgresUsageStore(db)
	eval := entitlement.NewEvaluator(entitlement.DefaultLimits(), store)

	sub := entitlement.Subscription{Tier: entitlement.TierFree}

	// Free tier allows 3 trips per month.
	for i := 0; i < 3; i++ {
		decision, err := eval.CanPerform(sub, entitlement.ActionCreateTrip)
		require.NoError(t, err)
		require.True(t, decision.Allowed, "expected trip %d to be allowed", i+1)
		require.NoError(t, eval.RecordUsage(entitlement.ActionCreateTrip))
	}

	decision, err := eval.CanPerform(sub, entitlement.ActionCreateTrip)
	require.NoError(t, err)
	assert.False(t, decision.Allowed)
	assert.Equal(t, entitlement.Remaining(0), decision.Remaining)

	// Unlimited actions are unaffected by recorded usage.
	decision, err = eval.CanPerform(entitlement.Subscription{Tier: entitlement.TierElite}, entitlement.ActionCreateTrip)
	require.NoError(t, err)
	assert.True(t, decision.Allowed)
	assert.Equal(t, entitlement.Unlimited, decision.Remaining)
}
