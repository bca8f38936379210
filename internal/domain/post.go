package domain

import (
	"github.com/google/uuid"
)

// Post is the single entity managed by the service. ID is assigned by the
// storage layer when the post is first inserted and never changes afterwards.
type Post struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Title     string    `json:"title" db:"title"`
	Body      string    `json:"body" db:"body"`
	Published bool      `json:"published" db:"published"`
}

// NewPost holds the values of a post that has not been stored yet.
type NewPost struct {
	Title     string
	Body      string
	Published bool
}

// NewUnpublishedPost returns the insert payload for a freshly created post.
// Published is always false at creation; there is no way to publish a post
// through the create operation.
func NewUnpublishedPost(title, body string) NewPost {
	return NewPost{
		Title:     title,
		Body:      body,
		Published: false,
	}
}
