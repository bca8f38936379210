package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/posts-api/internal/domain"
)

// PostsFilter narrows a post listing. A nil field imposes no constraint;
// set fields are combined with AND.
type PostsFilter struct {
	// Published keeps only posts whose published flag equals the value.
	Published *bool

	// TitleContains keeps only posts whose title contains the value,
	// compared case-insensitively.
	TitleContains *string
}

// PostStore defines the interface for post data persistence.
type PostStore interface {
	// Insert saves a new post and returns it with its generated ID.
	// Returns ErrInternal on any failure; it never returns ErrNotFound.
	Insert(ctx context.Context, post domain.NewPost) (*domain.Post, error)

	// Get retrieves a post by its ID.
	// Returns ErrNotFound if no post has this ID, ErrInternal on other failures.
	Get(ctx context.Context, id uuid.UUID) (*domain.Post, error)

	// GetAll retrieves every post matching the filter, in storage order.
	// An empty result is an empty slice, not an error.
	GetAll(ctx context.Context, filter PostsFilter) ([]*domain.Post, error)
}
