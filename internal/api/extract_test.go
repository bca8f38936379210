package api

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"reflect"
	"testing"

	"github.com/phrazzld/posts-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodePostsFilter(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		want    store.PostsFilter
		wantErr bool
	}{
		{name: "no parameters", query: ""},
		{name: "published true", query: "published=true", want: store.PostsFilter{Published: boolPtr(true)}},
		{name: "published false", query: "published=false", want: store.PostsFilter{Published: boolPtr(false)}},
		{name: "title contains", query: "title_contains=Go%20tips", want: store.PostsFilter{TitleContains: strPtr("Go tips")}},
		{name: "empty title contains", query: "title_contains=", want: store.PostsFilter{TitleContains: strPtr("")}},
		{
			name:  "both",
			query: "published=true&title_contains=go",
			want:  store.PostsFilter{Published: boolPtr(true), TitleContains: strPtr("go")},
		},
		{name: "unknown parameters ignored", query: "page=2"},
		{name: "published not a bool", query: "published=yes", wantErr: true},
		{name: "published uppercase", query: "published=TRUE", wantErr: true},
		{name: "published empty", query: "published=", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, err := url.ParseQuery(tt.query)
			require.NoError(t, err)

			got, err := DecodePostsFilter(values)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "published")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHasJSONContentType(t *testing.T) {
	tests := map[string]bool{
		"application/json":                true,
		"application/json; charset=utf-8": true,
		"application/problem+json":        true,
		"text/plain":                      false,
		"application/jsonx":               false,
		"":                                false,
		"not a media type;;":              false,
	}

	for contentType, want := range tests {
		t.Run(contentType, func(t *testing.T) {
			r := newRequestWithContentType(contentType)
			assert.Equal(t, want, hasJSONContentType(r))
		})
	}
}

func newRequestWithContentType(contentType string) *http.Request {
	r := httptest.NewRequest(http.MethodPost, "/", nil)
	if contentType != "" {
		r.Header.Set("Content-Type", contentType)
	}
	return r
}

func TestDescribeType(t *testing.T) {
	type named string

	tests := []struct {
		name string
		typ  reflect.Type
		want string
	}{
		{name: "request struct", typ: reflect.TypeOf(CreatePostRequest{}), want: "struct CreatePostRequest"},
		{name: "builtin", typ: reflect.TypeOf(""), want: "string"},
		{name: "named builtin", typ: reflect.TypeOf(named("")), want: "string"},
		{name: "slice", typ: reflect.TypeOf([]string{}), want: "a sequence"},
		{name: "map", typ: reflect.TypeOf(map[string]string{}), want: "a map"},
		{name: "nil", typ: nil, want: "a value"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := describeType(tt.typ)
			assert.Equal(t, tt.want, got)
			assert.NotContains(t, got, "api.")
		})
	}
}
