package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"reflect"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/phrazzld/posts-api/internal/api/shared"
	"github.com/phrazzld/posts-api/internal/store"
)

// Client-facing extraction messages.
const (
	msgContentType   = "Expected request with `Content-Type: application/json`"
	msgJSONSyntax    = "Failed to parse the request body as JSON: "
	msgJSONData      = "Failed to deserialize the JSON body into the target type: "
	msgBodyTooLarge  = "Failed to buffer the request body: length limit exceeded"
	msgQueryDecoding = "Failed to deserialize query string: "
)

// WithJSON adapts a handler taking a decoded, validated JSON body of type T.
// Requests that cannot produce a T are rejected with a 400 before next runs.
func WithJSON[T any](next func(http.ResponseWriter, *http.Request, T)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload T
		if appErr := decodeJSONBody(w, r, &payload); appErr != nil {
			HandleAPIError(w, r, appErr, nil)
			return
		}
		next(w, r, payload)
	}
}

// WithPathUUID adapts a handler taking the UUID held in the named chi path
// parameter. A value that is not a UUID is rejected with a 400.
func WithPathUUID(name string, next func(http.ResponseWriter, *http.Request, uuid.UUID)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, appErr := pathUUID(r, name)
		if appErr != nil {
			HandleAPIError(w, r, appErr, nil)
			return
		}
		next(w, r, id)
	}
}

// WithQuery adapts a handler taking a value decoded from the query string.
// A decode failure is rejected with a 400.
func WithQuery[T any](
	decode func(url.Values) (T, error),
	next func(http.ResponseWriter, *http.Request, T),
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		value, err := decode(r.URL.Query())
		if err != nil {
			HandleAPIError(w, r, NewBodyParsingError(msgQueryDecoding+err.Error(), err), nil)
			return
		}
		next(w, r, value)
	}
}

// DecodePostsFilter reads the published and title_contains query parameters.
// Other parameters are ignored.
func DecodePostsFilter(values url.Values) (store.PostsFilter, error) {
	var filter store.PostsFilter

	if raw, ok := values["published"]; ok && len(raw) > 0 {
		switch raw[0] {
		case "true":
			published := true
			filter.Published = &published
		case "false":
			published := false
			filter.Published = &published
		default:
			return store.PostsFilter{}, fmt.Errorf("published: provided string was not `true` or `false`")
		}
	}

	if raw, ok := values["title_contains"]; ok && len(raw) > 0 {
		titleContains := raw[0]
		filter.TitleContains = &titleContains
	}

	return filter, nil
}

func pathUUID(r *http.Request, name string) (uuid.UUID, *AppError) {
	raw := chi.URLParam(r, name)
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, NewBodyParsingError(
			fmt.Sprintf("Invalid URL: Cannot parse `%s` with value `%s` to a `UUID`", name, raw),
			err,
		)
	}
	return id, nil
}

func decodeJSONBody(w http.ResponseWriter, r *http.Request, v interface{}) *AppError {
	if !hasJSONContentType(r) {
		return NewBodyParsingError(msgContentType, nil)
	}

	if err := shared.DecodeJSON(w, r, v); err != nil {
		return classifyDecodeError(err)
	}

	if err := shared.ValidateRequest(v); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return NewBodyParsingError(msgJSONData+describeValidationErrors(verrs), err)
		}
		return NewBodyParsingError(msgJSONData+err.Error(), err)
	}

	return nil
}

func hasJSONContentType(r *http.Request) bool {
	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		return false
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mediaType == "application/json" ||
		(strings.HasPrefix(mediaType, "application/") && strings.HasSuffix(mediaType, "+json"))
}

func classifyDecodeError(err error) *AppError {
	var (
		maxBytesErr *http.MaxBytesError
		syntaxErr   *json.SyntaxError
		typeErr     *json.UnmarshalTypeError
	)

	switch {
	case errors.As(err, &maxBytesErr):
		return NewBodyParsingError(msgBodyTooLarge, err)
	case errors.As(err, &syntaxErr):
		return NewBodyParsingError(
			fmt.Sprintf("%s%s at offset %d", msgJSONSyntax, syntaxErr.Error(), syntaxErr.Offset),
			err,
		)
	case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		return NewBodyParsingError(msgJSONSyntax+"EOF while parsing a value", err)
	case errors.Is(err, shared.ErrTrailingData):
		return NewBodyParsingError(msgJSONSyntax+err.Error(), err)
	case errors.As(err, &typeErr):
		field := typeErr.Field
		if field == "" {
			field = "body"
		}
		return NewBodyParsingError(
			fmt.Sprintf("%s%s: invalid type: %s, expected %s", msgJSONData, field, typeErr.Value, describeType(typeErr.Type)),
			err,
		)
	default:
		return NewBodyParsingError(msgJSONData+err.Error(), err)
	}
}

// describeType names a Go type for a client message without its package path.
func describeType(t reflect.Type) string {
	if t == nil {
		return "a value"
	}
	switch t.Kind() {
	case reflect.Struct:
		return "struct " + t.Name()
	case reflect.Map:
		return "a map"
	case reflect.Slice, reflect.Array:
		return "a sequence"
	}
	if t.PkgPath() != "" {
		return t.Kind().String()
	}
	return t.String()
}

func describeValidationErrors(verrs validator.ValidationErrors) string {
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if fe.Tag() == "required" {
			parts = append(parts, fmt.Sprintf("missing field `%s`", fe.Field()))
			continue
		}
		parts = append(parts, fmt.Sprintf("field `%s` failed on the '%s' rule", fe.Field(), fe.Tag()))
	}
	return strings.Join(parts, ", ")
}
