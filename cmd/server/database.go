package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/phrazzld/posts-api/internal/config"
	"github.com/phrazzld/posts-api/internal/platform/postgres"
)

// setupDatabase opens the connection pool and, when configured, brings the
// schema up to date before the server starts accepting requests.
func setupDatabase(ctx context.Context, cfg *config.Config, log *slog.Logger) (*pgxpool.Pool, error) {
	pool, err := postgres.NewPool(ctx, cfg.Database, log)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if cfg.Database.MigrateOnStart {
		if err := postgres.Migrate(ctx, pool, "up", log); err != nil {
			pool.Close()
			return nil, fmt.Errorf("failed to apply migrations on start: %w", err)
		}
	}

	return pool, nil
}

// runMigrations executes a single migration command and closes the pool.
func runMigrations(ctx context.Context, cfg *config.Config, log *slog.Logger, command string) error {
	pool, err := postgres.NewPool(ctx, cfg.Database, log)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer pool.Close()

	log.Info("running migration command", slog.String("command", command))
	return postgres.Migrate(ctx, pool, command, log)
}
