package mocks

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/phrazzld/posts-api/internal/domain"
	"github.com/phrazzld/posts-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockPostStore_Defaults(t *testing.T) {
	post := &domain.Post{ID: uuid.New(), Title: "t"}
	m := &MockPostStore{Post: post, Posts: []*domain.Post{post}}

	got, err := m.Get(context.Background(), post.ID)
	require.NoError(t, err)
	assert.Same(t, post, got)

	all, err := m.GetAll(context.Background(), store.PostsFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 1)

	assert.Equal(t, []uuid.UUID{post.ID}, m.GetCalls())
	assert.Len(t, m.GetAllCalls(), 1)
	assert.Equal(t, 2, m.TotalCalls())
}

func TestMockPostStore_CustomFn(t *testing.T) {
	wantErr := errors.New("boom")
	m := &MockPostStore{
		InsertFn: func(ctx context.Context, post domain.NewPost) (*domain.Post, error) {
			return nil, wantErr
		},
	}

	_, err := m.Insert(context.Background(), domain.NewUnpublishedPost("a", "b"))
	assert.ErrorIs(t, err, wantErr)
	assert.Equal(t, []domain.NewPost{{Title: "a", Body: "b"}}, m.InsertCalls())
}
