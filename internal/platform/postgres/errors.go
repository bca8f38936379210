package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/phrazzld/posts-api/internal/store"
)

// MapError maps a database error to one of the two store errors.
// Only a genuine "no rows" condition becomes store.ErrNotFound; connection
// acquisition failures, server errors, cancellations and scan failures all
// become store.ErrInternal. The original error text is kept in the message
// for logging but is not part of the error chain.
func MapError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case isNoRows(err):
		return fmt.Errorf("%w: %v", store.ErrNotFound, err)
	default:
		return internalError(err)
	}
}

// internalError folds any error into store.ErrInternal. It is used by
// operations for which "not found" is not a meaningful outcome.
func internalError(err error) error {
	if err == nil {
		return nil
	}

	var (
		pgErr      *pgconn.PgError
		connectErr *pgconn.ConnectError
	)
	switch {
	case errors.As(err, &pgErr):
		return fmt.Errorf("%w: postgres error %s (%s): %v", store.ErrInternal, pgErr.Code, pgErr.Severity, err)
	case errors.As(err, &connectErr):
		return fmt.Errorf("%w: connection failed: %v", store.ErrInternal, err)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%w: interrupted: %v", store.ErrInternal, err)
	default:
		return fmt.Errorf("%w: %v", store.ErrInternal, err)
	}
}

func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows) ||
		errors.Is(err, sql.ErrNoRows) ||
		pgxscan.NotFound(err)
}
