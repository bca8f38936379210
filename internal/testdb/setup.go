//go:build integration

package testdb

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/phrazzld/posts-api/internal/config"
	"github.com/phrazzld/posts-api/internal/platform/postgres"
	"github.com/phrazzld/posts-api/internal/redact"
)

const setupTimeout = 30 * time.Second

// SetupPool connects to the test database, applies all migrations and
// registers the pool to be closed when the test ends. Without a configured
// database URL it starts a container when POSTS_TEST_CONTAINER=1 and skips
// the test otherwise.
func SetupPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	if ShouldSkipDatabaseTest() {
		t.Skip("no test database URL set, skipping integration test")
	}

	dbURL := GetTestDatabaseURL()
	if dbURL == "" {
		var err error
		dbURL, err = containerDatabaseURL(context.Background())
		if err != nil {
			t.Skipf("test database container unavailable: %v", err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), setupTimeout)
	defer cancel()

	pool, err := postgres.NewPool(ctx, config.DatabaseConfig{
		URL:               dbURL,
		MaxConns:          10,
		MinConns:          1,
		MaxConnLifetime:   time.Minute,
		MaxConnIdleTime:   time.Minute,
		HealthCheckPeriod: time.Minute,
		ConnectAttempts:   5,
		ConnectBackoff:    200 * time.Millisecond,
	}, nil)
	if err != nil {
		t.Fatalf("failed to connect to test database: %s", redact.Error(err))
	}
	t.Cleanup(pool.Close)

	if err := postgres.Migrate(ctx, pool, "up", nil); err != nil {
		t.Fatalf("failed to migrate test database: %s", redact.Error(err))
	}

	return pool
}

// ResetPosts empties the posts table.
func ResetPosts(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), setupTimeout)
	defer cancel()

	if _, err := pool.Exec(ctx, "TRUNCATE posts"); err != nil {
		t.Fatalf("failed to reset posts table: %s", redact.Error(err))
	}
}
