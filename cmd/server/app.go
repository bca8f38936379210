package main

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/phrazzld/posts-api/internal/config"
	"github.com/phrazzld/posts-api/internal/platform/postgres"
	"github.com/phrazzld/posts-api/internal/store"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	// Configuration
	config *config.Config

	// Core services
	logger *slog.Logger
	pool   *pgxpool.Pool

	// Stores (using interfaces for proper abstraction)
	postStore store.PostStore

	// healthcheck reports whether the database is reachable.
	healthcheck func(context.Context) error
}

// newApplication creates a new application instance with all dependencies initialized.
// The pool is shared by every request; the application owns it from here on and
// closes it in cleanup.
func newApplication(cfg *config.Config, logger *slog.Logger, pool *pgxpool.Pool) (*application, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if pool == nil {
		return nil, errors.New("database pool cannot be nil")
	}

	return &application{
		config:      cfg,
		logger:      logger,
		pool:        pool,
		postStore:   postgres.NewPostgresPostStore(pool, logger),
		healthcheck: postgres.Healthcheck(pool),
	}, nil
}

// cleanup releases application resources. It is safe to call more than once.
func (app *application) cleanup() {
	if app.pool != nil {
		app.pool.Close()
		app.pool = nil
	}

	app.logger.Info("Application shutdown completed")
}
