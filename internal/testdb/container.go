//go:build integration

package testdb

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	containerImage   = "postgres:16-alpine"
	containerStartup = time.Minute
)

// One container serves every test in the binary. The testcontainers reaper
// removes it when the test process exits.
var (
	containerOnce sync.Once
	containerURL  string
	containerErr  error
)

// containerDatabaseURL starts a throwaway PostgreSQL container on first use
// and returns its connection string.
func containerDatabaseURL(ctx context.Context) (string, error) {
	containerOnce.Do(func() {
		ctx, cancel := context.WithTimeout(ctx, containerStartup)
		defer cancel()

		pgContainer, err := tcpostgres.Run(ctx,
			containerImage,
			tcpostgres.WithDatabase("posts_test"),
			tcpostgres.WithUsername("posts"),
			tcpostgres.WithPassword("posts"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(containerStartup),
			),
		)
		if err != nil {
			containerErr = fmt.Errorf("failed to start postgres container: %w", err)
			return
		}

		containerURL, containerErr = pgContainer.ConnectionString(ctx, "sslmode=disable")
	})
	return containerURL, containerErr
}
