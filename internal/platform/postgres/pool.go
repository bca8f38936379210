package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/phrazzld/posts-api/internal/config"
	"github.com/phrazzld/posts-api/internal/redact"
	"github.com/sethvargo/go-retry"
)

const (
	// pingTimeout bounds each connectivity check in NewPool.
	pingTimeout = 5 * time.Second

	defaultConnectBackoff = 500 * time.Millisecond
)

// ErrHealthcheckFailed is returned by the Healthcheck closure when the
// database cannot be reached.
var ErrHealthcheckFailed = errors.New("healthcheck failed, connection is not available")

// NewPool creates a pgx connection pool from the database configuration and
// verifies it with a ping. Failed attempts are retried with exponential
// backoff up to cfg.ConnectAttempts times in total. The caller owns the pool
// and must Close it.
func NewPool(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger) (*pgxpool.Pool, error) {
	if logger == nil {
		logger = slog.Default()
	}

	poolConfig, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database url: %w", err)
	}
	poolConfig.MaxConns = cfg.MaxConns
	poolConfig.MinConns = cfg.MinConns
	poolConfig.MaxConnLifetime = cfg.MaxConnLifetime
	poolConfig.MaxConnIdleTime = cfg.MaxConnIdleTime
	poolConfig.HealthCheckPeriod = cfg.HealthCheckPeriod

	var pool *pgxpool.Pool
	attempt := 0
	err = retry.Do(ctx, connectBackoff(cfg), func(ctx context.Context) error {
		attempt++
		p, err := connect(ctx, poolConfig)
		if err != nil {
			logger.Warn("database connection attempt failed",
				slog.Int("attempt", attempt),
				slog.String("error", redact.Error(err)))
			return retry.RetryableError(err)
		}
		pool = p
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", attempt, err)
	}

	logger.Info("database connection pool established",
		slog.Int("max_conns", int(cfg.MaxConns)),
		slog.Int("min_conns", int(cfg.MinConns)),
		slog.Int("attempts", attempt))
	return pool, nil
}

// connectBackoff returns the retry schedule for NewPool. A zero-valued
// config means a single attempt.
func connectBackoff(cfg config.DatabaseConfig) retry.Backoff {
	base := cfg.ConnectBackoff
	if base <= 0 {
		base = defaultConnectBackoff
	}
	retries := uint64(0)
	if cfg.ConnectAttempts > 1 {
		retries = cfg.ConnectAttempts - 1
	}
	return retry.WithMaxRetries(retries, retry.NewExponential(base))
}

func connect(ctx context.Context, poolConfig *pgxpool.Config) (*pgxpool.Pool, error) {
	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return pool, nil
}

// Pinger is implemented by *pgxpool.Pool.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Healthcheck returns a closure that validates database connectivity for
// health endpoints.
func Healthcheck(db Pinger) func(context.Context) error {
	return func(ctx context.Context) error {
		if err := db.Ping(ctx); err != nil {
			return errors.Join(ErrHealthcheckFailed, err)
		}
		return nil
	}
}
