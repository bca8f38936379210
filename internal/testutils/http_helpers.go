package testutils

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/phrazzld/posts-api/internal/api/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ExecuteRequest runs a request against handler and returns the recorded response.
// A non-empty body is sent with Content-Type application/json unless contentType
// overrides it; an explicit empty contentType sends no header at all.
func ExecuteRequest(
	t *testing.T,
	handler http.Handler,
	method, target, body string,
	contentType ...string,
) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if len(contentType) > 0 {
		if contentType[0] != "" {
			req.Header.Set("Content-Type", contentType[0])
		}
	} else if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

// AssertErrorResponse checks that a response is a JSON error with the expected
// status code and exact message.
func AssertErrorResponse(
	t *testing.T,
	rec *httptest.ResponseRecorder,
	expectedStatus int,
	expectedMessage string,
) {
	t.Helper()

	assert.Equal(t, expectedStatus, rec.Code, "unexpected status code, body: %s", rec.Body.String())
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var errResp shared.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp),
		"Failed to unmarshal error response: %s", rec.Body.String())
	assert.Equal(t, expectedMessage, errResp.Message)
}

// AssertErrorMessagePrefix is like AssertErrorResponse but only checks that
// the message starts with prefix.
func AssertErrorMessagePrefix(
	t *testing.T,
	rec *httptest.ResponseRecorder,
	expectedStatus int,
	prefix string,
) {
	t.Helper()

	assert.Equal(t, expectedStatus, rec.Code, "unexpected status code, body: %s", rec.Body.String())

	var errResp shared.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp),
		"Failed to unmarshal error response: %s", rec.Body.String())
	assert.True(t, strings.HasPrefix(errResp.Message, prefix),
		"message %q should start with %q", errResp.Message, prefix)
}

// DecodeJSONResponse checks the status code and decodes the JSON body into T.
func DecodeJSONResponse[T any](t *testing.T, rec *httptest.ResponseRecorder, expectedStatus int) T {
	t.Helper()

	require.Equal(t, expectedStatus, rec.Code, "unexpected status code, body: %s", rec.Body.String())
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out),
		"Failed to unmarshal response: %s", rec.Body.String())
	return out
}
