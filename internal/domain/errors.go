package domain

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// PostErrorKind enumerates the handler-facing failure outcomes for posts.
type PostErrorKind int

const (
	// PostNotFound means no post exists for the requested ID.
	PostNotFound PostErrorKind = iota + 1

	// PostInternalServerError covers every other failure. Its message never
	// carries details about the underlying cause.
	PostInternalServerError
)

// String returns the name of the kind, used in logs.
func (k PostErrorKind) String() string {
	switch k {
	case PostNotFound:
		return "not_found"
	case PostInternalServerError:
		return "internal_server_error"
	default:
		return "unknown"
	}
}

// PostError is the domain error returned by post operations. ID is only
// meaningful for PostNotFound.
type PostError struct {
	Kind PostErrorKind
	ID   uuid.UUID
}

// ErrPostInternal is the shared PostInternalServerError value.
var ErrPostInternal = &PostError{Kind: PostInternalServerError}

// NewPostNotFoundError creates a PostNotFound error for the given post ID.
func NewPostNotFoundError(id uuid.UUID) *PostError {
	return &PostError{Kind: PostNotFound, ID: id}
}

// Error implements the error interface.
func (e *PostError) Error() string {
	switch e.Kind {
	case PostNotFound:
		return fmt.Sprintf("The post with id %s has not been found", e.ID)
	default:
		return "Internal Server Error"
	}
}

// Is reports whether target is a PostError of the same kind, so that
// errors.Is(err, ErrPostInternal) matches any internal post error.
func (e *PostError) Is(target error) bool {
	t, ok := target.(*PostError)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// IsPostNotFound reports whether err is, or wraps, a PostNotFound error.
func IsPostNotFound(err error) bool {
	var postErr *PostError
	return errors.As(err, &postErr) && postErr.Kind == PostNotFound
}
