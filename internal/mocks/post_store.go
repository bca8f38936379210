package mocks

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/phrazzld/posts-api/internal/domain"
	"github.com/phrazzld/posts-api/internal/store"
)

// MockPostStore implements store.PostStore for testing
type MockPostStore struct {
	// Custom behavior functions
	InsertFn func(ctx context.Context, post domain.NewPost) (*domain.Post, error)
	GetFn    func(ctx context.Context, id uuid.UUID) (*domain.Post, error)
	GetAllFn func(ctx context.Context, filter store.PostsFilter) ([]*domain.Post, error)

	// Default response values
	Post  *domain.Post
	Posts []*domain.Post
	Err   error

	mu          sync.Mutex
	insertCalls []domain.NewPost
	getCalls    []uuid.UUID
	getAllCalls []store.PostsFilter
}

var _ store.PostStore = (*MockPostStore)(nil)

// Insert implements the store.PostStore interface
func (m *MockPostStore) Insert(ctx context.Context, post domain.NewPost) (*domain.Post, error) {
	m.mu.Lock()
	m.insertCalls = append(m.insertCalls, post)
	m.mu.Unlock()

	if m.InsertFn != nil {
		return m.InsertFn(ctx, post)
	}
	return m.Post, m.Err
}

// Get implements the store.PostStore interface
func (m *MockPostStore) Get(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
	m.mu.Lock()
	m.getCalls = append(m.getCalls, id)
	m.mu.Unlock()

	if m.GetFn != nil {
		return m.GetFn(ctx, id)
	}
	return m.Post, m.Err
}

// GetAll implements the store.PostStore interface
func (m *MockPostStore) GetAll(ctx context.Context, filter store.PostsFilter) ([]*domain.Post, error) {
	m.mu.Lock()
	m.getAllCalls = append(m.getAllCalls, filter)
	m.mu.Unlock()

	if m.GetAllFn != nil {
		return m.GetAllFn(ctx, filter)
	}
	return m.Posts, m.Err
}

// InsertCalls returns the payloads passed to Insert, in call order.
func (m *MockPostStore) InsertCalls() []domain.NewPost {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.NewPost(nil), m.insertCalls...)
}

// GetCalls returns the IDs passed to Get, in call order.
func (m *MockPostStore) GetCalls() []uuid.UUID {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]uuid.UUID(nil), m.getCalls...)
}

// GetAllCalls returns the filters passed to GetAll, in call order.
func (m *MockPostStore) GetAllCalls() []store.PostsFilter {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]store.PostsFilter(nil), m.getAllCalls...)
}

// TotalCalls returns how many store methods were invoked.
func (m *MockPostStore) TotalCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.insertCalls) + len(m.getCalls) + len(m.getAllCalls)
}
