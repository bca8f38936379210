package api

import (
	"github.com/google/uuid"
	"github.com/phrazzld/posts-api/internal/domain"
)

// CreatePostRequest defines the payload for the create post endpoint.
// Pointer fields distinguish a missing field from an empty string. A
// published flag sent by the client is not part of the payload.
type CreatePostRequest struct {
	Title *string `json:"title" validate:"required"`
	Body  *string `json:"body"  validate:"required"`
}

// PostResponse is the JSON representation of a stored post.
type PostResponse struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Published bool      `json:"published"`
}

// ListPostsResponse wraps a post listing.
type ListPostsResponse struct {
	Posts []PostResponse `json:"posts"`
}

func postToResponse(post *domain.Post) PostResponse {
	return PostResponse{
		ID:        post.ID,
		Title:     post.Title,
		Body:      post.Body,
		Published: post.Published,
	}
}

func postsToResponse(posts []*domain.Post) ListPostsResponse {
	resp := ListPostsResponse{Posts: make([]PostResponse, 0, len(posts))}
	for _, post := range posts {
		resp.Posts = append(resp.Posts, postToResponse(post))
	}
	return resp
}
