package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/phrazzld/posts-api/internal/api/shared"
	"github.com/phrazzld/posts-api/internal/domain"
)

// NotFoundMessage is the body returned for any unmatched route or method.
const NotFoundMessage = "The requested resource was not found"

// AppErrorKind enumerates failures raised by the HTTP layer itself, before a
// handler gets to talk to the store.
type AppErrorKind int

const (
	// AppInternalServerError is an unexpected failure in the HTTP layer.
	AppInternalServerError AppErrorKind = iota + 1

	// AppBodyParsingError means the request could not be turned into the
	// handler's input: bad JSON, bad path parameter or bad query string.
	AppBodyParsingError
)

// AppError is an HTTP-layer error. Message is client-safe; Err is the
// underlying cause and is only ever logged.
type AppError struct {
	Kind    AppErrorKind
	Message string
	Err     error
}

// NewBodyParsingError creates an AppBodyParsingError with the given
// client-facing message.
func NewBodyParsingError(message string, cause error) *AppError {
	return &AppError{Kind: AppBodyParsingError, Message: message, Err: cause}
}

// NewInternalError creates an AppInternalServerError wrapping cause.
func NewInternalError(cause error) *AppError {
	return &AppError{Kind: AppInternalServerError, Err: cause}
}

// Error implements the error interface.
func (e *AppError) Error() string {
	switch e.Kind {
	case AppBodyParsingError:
		return "Bad request error: " + e.Message
	default:
		return "Internal Server Error"
	}
}

// Unwrap returns the underlying cause.
func (e *AppError) Unwrap() error {
	return e.Err
}

// MapErrorToStatusCode maps HTTP-layer and post errors to status codes.
// Anything it does not recognize is a 500.
func MapErrorToStatusCode(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) {
		if appErr.Kind == AppBodyParsingError {
			return http.StatusBadRequest
		}
		return http.StatusInternalServerError
	}

	var postErr *domain.PostError
	if errors.As(err, &postErr) && postErr.Kind == domain.PostNotFound {
		return http.StatusNotFound
	}

	return http.StatusInternalServerError
}

// GetSafeErrorMessage returns the client-facing message for err. Unknown
// errors never leak their text.
func GetSafeErrorMessage(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Error()
	}

	var postErr *domain.PostError
	if errors.As(err, &postErr) {
		return postErr.Error()
	}

	return "Internal Server Error"
}

// HandleAPIError writes the JSON error response for err and logs cause, if
// any, in redacted form alongside it.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, cause error) {
	if cause == nil {
		var appErr *AppError
		if errors.As(err, &appErr) {
			cause = appErr.Err
		}
	}
	if cause != nil {
		cause = fmt.Errorf("%v: %w", err, cause)
	}

	shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), cause)
}

// NotFoundHandler responds with the fixed plain text 404 used for every
// unmatched route, including known paths hit with an unsupported method.
func NotFoundHandler(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithText(w, r, http.StatusNotFound, NotFoundMessage)
}
