//go:build integration

package testdb

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// WithTx runs the provided function within a database transaction.
// The transaction is always rolled back after the function completes,
// so tests can write freely without affecting each other.
func WithTx(t *testing.T, pool *pgxpool.Pool, fn func(t *testing.T, tx pgx.Tx)) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), setupTimeout)
	defer cancel()

	tx, err := pool.Begin(ctx)
	if err != nil {
		t.Fatalf("Failed to begin transaction: %v", err)
	}

	defer func() {
		if err := tx.Rollback(context.Background()); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
			t.Logf("Warning: failed to roll back test transaction: %v", err)
		}
	}()

	fn(t, tx)
}
