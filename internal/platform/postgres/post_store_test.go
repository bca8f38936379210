package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/phrazzld/posts-api/internal/domain"
	"github.com/phrazzld/posts-api/internal/platform/logger"
	"github.com/phrazzld/posts-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const selectPosts = "SELECT id, title, body, published FROM posts"

func newMockStore(t *testing.T) (*PostgresPostStore, pgxmock.PgxPoolIface) {
	t.Helper()
	mockPool, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mockPool.Close)
	return NewPostgresPostStore(mockPool, nil), mockPool
}

func postRows(mockPool pgxmock.PgxPoolIface, posts ...domain.Post) *pgxmock.Rows {
	rows := mockPool.NewRows(postColumns)
	for _, p := range posts {
		rows.AddRow(p.ID, p.Title, p.Body, p.Published)
	}
	return rows
}

func boolPtr(b bool) *bool { return &b }
func strPtr(s string) *string { return &s }

func TestPostgresPostStore_Insert(t *testing.T) {
	t.Run("Should insert post and return generated id", func(t *testing.T) {
		s, mockPool := newMockStore(t)
		id := uuid.New()
		mockPool.ExpectQuery(regexp.QuoteMeta(
			"INSERT INTO posts (title,body,published) VALUES ($1,$2,$3) RETURNING id, title, body, published",
		)).
			WithArgs("Hello", "World", false).
			WillReturnRows(postRows(mockPool, domain.Post{ID: id, Title: "Hello", Body: "World"}))

		post, err := s.Insert(context.Background(), domain.NewUnpublishedPost("Hello", "World"))

		require.NoError(t, err)
		assert.Equal(t, id, post.ID)
		assert.Equal(t, "Hello", post.Title)
		assert.Equal(t, "World", post.Body)
		assert.False(t, post.Published)
		assert.NoError(t, mockPool.ExpectationsWereMet())
	})

	t.Run("Should fold database errors into internal error", func(t *testing.T) {
		s, mockPool := newMockStore(t)
		mockPool.ExpectQuery("INSERT INTO posts").
			WithArgs("Hello", "World", false).
			WillReturnError(&pgconn.PgError{Code: "23502", Severity: "ERROR"})

		post, err := s.Insert(context.Background(), domain.NewUnpublishedPost("Hello", "World"))

		assert.Nil(t, post)
		assert.ErrorIs(t, err, store.ErrInternal)
		assert.NotErrorIs(t, err, store.ErrNotFound)
		assert.NoError(t, mockPool.ExpectationsWereMet())
	})

	t.Run("Should never report not found", func(t *testing.T) {
		s, mockPool := newMockStore(t)
		mockPool.ExpectQuery("INSERT INTO posts").
			WithArgs("Hello", "World", false).
			WillReturnError(pgx.ErrNoRows)

		_, err := s.Insert(context.Background(), domain.NewUnpublishedPost("Hello", "World"))

		assert.ErrorIs(t, err, store.ErrInternal)
		assert.NotErrorIs(t, err, store.ErrNotFound)
	})
}

func TestPostgresPostStore_Get(t *testing.T) {
	t.Run("Should get post by id", func(t *testing.T) {
		s, mockPool := newMockStore(t)
		id := uuid.New()
		mockPool.ExpectQuery(regexp.QuoteMeta(selectPosts + " WHERE id = $1")).
			WithArgs(id).
			WillReturnRows(postRows(mockPool, domain.Post{ID: id, Title: "t", Body: "b", Published: true}))

		post, err := s.Get(context.Background(), id)

		require.NoError(t, err)
		assert.Equal(t, &domain.Post{ID: id, Title: "t", Body: "b", Published: true}, post)
		assert.NoError(t, mockPool.ExpectationsWereMet())
	})

	t.Run("Should return not found when no row matches", func(t *testing.T) {
		s, mockPool := newMockStore(t)
		id := uuid.New()
		mockPool.ExpectQuery(regexp.QuoteMeta(selectPosts + " WHERE id = $1")).
			WithArgs(id).
			WillReturnRows(postRows(mockPool))

		post, err := s.Get(context.Background(), id)

		assert.Nil(t, post)
		assert.ErrorIs(t, err, store.ErrNotFound)
		assert.NoError(t, mockPool.ExpectationsWereMet())
	})

	t.Run("Should return internal error on connection failure", func(t *testing.T) {
		s, mockPool := newMockStore(t)
		id := uuid.New()
		mockPool.ExpectQuery("SELECT (.+) FROM posts").
			WithArgs(id).
			WillReturnError(errors.New("failed to connect to host=db user=app: connection refused"))

		post, err := s.Get(context.Background(), id)

		assert.Nil(t, post)
		assert.ErrorIs(t, err, store.ErrInternal)
		assert.NoError(t, mockPool.ExpectationsWereMet())
	})
}

func TestPostgresPostStore_GetAll(t *testing.T) {
	published := domain.Post{ID: uuid.New(), Title: "Foo bar", Body: "b1", Published: true}
	draft := domain.Post{ID: uuid.New(), Title: "Draft", Body: "b2"}

	tests := []struct {
		name   string
		filter store.PostsFilter
		query  string
		args   []interface{}
		rows   []domain.Post
	}{
		{
			name:  "no filter",
			query: selectPosts,
			rows:  []domain.Post{published, draft},
		},
		{
			name:   "published only",
			filter: store.PostsFilter{Published: boolPtr(true)},
			query:  selectPosts + " WHERE published = $1",
			args:   []interface{}{true},
			rows:   []domain.Post{published},
		},
		{
			name:   "title contains",
			filter: store.PostsFilter{TitleContains: strPtr("foo")},
			query:  selectPosts + " WHERE title ILIKE $1",
			args:   []interface{}{"%foo%"},
			rows:   []domain.Post{published},
		},
		{
			name:   "both filters are combined with AND",
			filter: store.PostsFilter{Published: boolPtr(false), TitleContains: strPtr("dra")},
			query:  selectPosts + " WHERE published = $1 AND title ILIKE $2",
			args:   []interface{}{false, "%dra%"},
			rows:   []domain.Post{draft},
		},
		{
			name:   "like metacharacters are matched literally",
			filter: store.PostsFilter{TitleContains: strPtr(`50%_off\`)},
			query:  selectPosts + " WHERE title ILIKE $1",
			args:   []interface{}{`%50\%\_off\\%`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, mockPool := newMockStore(t)
			expect := mockPool.ExpectQuery("^" + regexp.QuoteMeta(tt.query) + "$")
			if len(tt.args) > 0 {
				expect = expect.WithArgs(tt.args...)
			}
			expect.WillReturnRows(postRows(mockPool, tt.rows...))

			posts, err := s.GetAll(context.Background(), tt.filter)

			require.NoError(t, err)
			require.NotNil(t, posts, "empty results must be an empty slice")
			require.Len(t, posts, len(tt.rows))
			for i, want := range tt.rows {
				assert.Equal(t, want, *posts[i])
			}
			assert.NoError(t, mockPool.ExpectationsWereMet())
		})
	}

	t.Run("Should fold query errors into internal error", func(t *testing.T) {
		s, mockPool := newMockStore(t)
		mockPool.ExpectQuery("SELECT (.+) FROM posts").
			WillReturnError(context.DeadlineExceeded)

		posts, err := s.GetAll(context.Background(), store.PostsFilter{})

		assert.Nil(t, posts)
		assert.ErrorIs(t, err, store.ErrInternal)
		assert.NoError(t, mockPool.ExpectationsWereMet())
	})
}

func TestPostgresPostStore_LogsThroughRequestLogger(t *testing.T) {
	s, mockPool := newMockStore(t)
	id := uuid.New()
	mockPool.ExpectQuery("SELECT (.+) FROM posts").
		WithArgs(id).
		WillReturnRows(postRows(mockPool))

	reqLog, buf := logger.NewTestLogger()
	ctx := logger.WithLogger(context.Background(), reqLog.With("trace_id", "abc123"))

	_, err := s.Get(ctx, id)
	require.ErrorIs(t, err, store.ErrNotFound)

	entries, err := buf.GetLogEntries()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "post not found", entries[0]["msg"])
	assert.Equal(t, "post_store", entries[0]["component"])
	assert.Equal(t, "abc123", entries[0]["trace_id"])
}

func TestNewPostgresPostStore_PanicsOnNilDB(t *testing.T) {
	assert.Panics(t, func() {
		NewPostgresPostStore(nil, nil)
	})
}
