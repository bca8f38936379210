package testutils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/phrazzld/posts-api/internal/domain"
)

// PostOption customizes a post built by MustCreatePostForTest.
type PostOption func(*domain.Post)

// WithPostTitle sets the title.
func WithPostTitle(title string) PostOption {
	return func(p *domain.Post) { p.Title = title }
}

// WithPostBody sets the body.
func WithPostBody(body string) PostOption {
	return func(p *domain.Post) { p.Body = body }
}

// WithPostPublished sets the published flag.
func WithPostPublished(published bool) PostOption {
	return func(p *domain.Post) { p.Published = published }
}

// MustCreatePostForTest returns a post with a fresh ID and default content.
func MustCreatePostForTest(t *testing.T, opts ...PostOption) *domain.Post {
	t.Helper()
	post := &domain.Post{
		ID:    uuid.New(),
		Title: "Test post",
		Body:  "Test body",
	}
	for _, opt := range opts {
		opt(post)
	}
	return post
}
