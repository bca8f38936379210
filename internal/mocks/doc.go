// Package mocks provides centralized mock implementations for testing.
//
// Mocks use function fields for custom behavior, fall back to default
// response values, and record every call so tests can assert on what reached
// the dependency:
//
//	postStore := &mocks.MockPostStore{
//	    GetFn: func(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
//	        return nil, store.ErrNotFound
//	    },
//	}
package mocks
