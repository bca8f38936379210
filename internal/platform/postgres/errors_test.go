package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/phrazzld/posts-api/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestMapError(t *testing.T) {
	tests := []struct {
		name          string
		err           error
		expectedError error
	}{
		{
			name:          "nil_error",
			err:           nil,
			expectedError: nil,
		},
		{
			name:          "pgx_no_rows",
			err:           pgx.ErrNoRows,
			expectedError: store.ErrNotFound,
		},
		{
			name:          "wrapped_pgx_no_rows",
			err:           fmt.Errorf("scanning one: %w", pgx.ErrNoRows),
			expectedError: store.ErrNotFound,
		},
		{
			name:          "sql_no_rows",
			err:           sql.ErrNoRows,
			expectedError: store.ErrNotFound,
		},
		{
			name:          "postgres_server_error",
			err:           &pgconn.PgError{Code: "42P01", Severity: "ERROR", Message: "relation \"posts\" does not exist"},
			expectedError: store.ErrInternal,
		},
		{
			name:          "context_canceled",
			err:           context.Canceled,
			expectedError: store.ErrInternal,
		},
		{
			name:          "generic_error",
			err:           errors.New("conn closed"),
			expectedError: store.ErrInternal,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mapped := MapError(tc.err)
			if tc.expectedError == nil {
				assert.NoError(t, mapped)
				return
			}
			assert.ErrorIs(t, mapped, tc.expectedError)
		})
	}
}

func TestInternalError_NeverNotFound(t *testing.T) {
	mapped := internalError(pgx.ErrNoRows)

	assert.ErrorIs(t, mapped, store.ErrInternal)
	assert.NotErrorIs(t, mapped, store.ErrNotFound)
	assert.NoError(t, internalError(nil))
}

func TestInternalError_DoesNotExposeCauseInChain(t *testing.T) {
	cause := &pgconn.PgError{Code: "08006", Severity: "FATAL"}
	mapped := internalError(cause)

	var pgErr *pgconn.PgError
	assert.False(t, errors.As(mapped, &pgErr), "only the store sentinel is part of the chain")
	assert.Contains(t, mapped.Error(), "08006")
}
