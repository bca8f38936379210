// Package main implements the entry point for the posts API server,
// a small JSON service for creating, fetching and listing blog posts
// stored in PostgreSQL.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/phrazzld/posts-api/internal/config"
	"github.com/phrazzld/posts-api/internal/platform/logger"
	"github.com/phrazzld/posts-api/internal/platform/postgres"
)

// main is the entry point for the posts-api server.
// It parses flags, then either runs a one-off migration command or starts
// the HTTP server.
func main() {
	migrateCmd := flag.String("migrate", "",
		"Run a database migration command and exit ("+strings.Join(postgres.MigrationCommands, ", ")+")")
	flag.Parse()

	if err := run(context.Background(), *migrateCmd); err != nil {
		slog.Error("posts-api exited with error", "error", err)
		os.Exit(1)
	}
}

// run loads configuration, sets up logging and the database pool, and hands
// control to either the migration runner or the HTTP server.
func run(ctx context.Context, migrateCmd string) error {
	cfg, log, err := initializeApp()
	if err != nil {
		return err
	}

	if migrateCmd != "" {
		return runMigrations(ctx, cfg, log, migrateCmd)
	}

	pool, err := setupDatabase(ctx, cfg, log)
	if err != nil {
		return err
	}

	app, err := newApplication(cfg, log, pool)
	if err != nil {
		pool.Close()
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return app.startHTTPServer(ctx, app.setupRouter())
}

// initializeApp loads configuration and sets up structured logging.
func initializeApp() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	log.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"migrate_on_start", cfg.Database.MigrateOnStart)

	return cfg, log, nil
}
