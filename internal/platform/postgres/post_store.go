package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/phrazzld/posts-api/internal/domain"
	"github.com/phrazzld/posts-api/internal/platform/logger"
	"github.com/phrazzld/posts-api/internal/redact"
	"github.com/phrazzld/posts-api/internal/store"
)

const postsTable = "posts"

var postColumns = []string{"id", "title", "body", "published"}

// psql builds statements with PostgreSQL $n placeholders.
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// likeEscaper escapes LIKE metacharacters so a filter value is matched as a
// literal substring. Backslash is PostgreSQL's default LIKE escape character.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// PostgresPostStore implements the store.PostStore interface
// using a PostgreSQL database as the storage backend.
type PostgresPostStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresPostStore creates a new PostgreSQL implementation of the PostStore interface.
// It accepts a connection pool (or any store.DBTX) that is initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresPostStore(db store.DBTX, logger *slog.Logger) *PostgresPostStore {
	if db == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresPostStore{
		db:     db,
		logger: logger,
	}
}

// loggerFor returns the request logger from ctx, falling back to the store's
// logger, tagged with the store component.
func (s *PostgresPostStore) loggerFor(ctx context.Context) *slog.Logger {
	return logger.FromContextOrDefault(ctx, s.logger).With(slog.String("component", "post_store"))
}

// Ensure PostgresPostStore implements store.PostStore interface
var _ store.PostStore = (*PostgresPostStore)(nil)

// Insert implements store.PostStore.Insert.
// The ID is generated by the database and read back with RETURNING.
func (s *PostgresPostStore) Insert(ctx context.Context, newPost domain.NewPost) (*domain.Post, error) {
	log := s.loggerFor(ctx)

	query, args, err := psql.Insert(postsTable).
		Columns("title", "body", "published").
		Values(newPost.Title, newPost.Body, newPost.Published).
		Suffix("RETURNING " + strings.Join(postColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, internalError(fmt.Errorf("building insert query: %w", err))
	}

	var post domain.Post
	if err := pgxscan.Get(ctx, s.db, &post, query, args...); err != nil {
		mapped := internalError(err)
		log.Error("failed to insert post", slog.String("error", redact.Error(err)))
		return nil, mapped
	}

	log.Info("post created", slog.String("post_id", post.ID.String()))
	return &post, nil
}

// Get implements store.PostStore.Get.
// Returns store.ErrNotFound if no row has the given ID.
func (s *PostgresPostStore) Get(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
	log := s.loggerFor(ctx)

	query, args, err := psql.Select(postColumns...).
		From(postsTable).
		Where(squirrel.Expr("id = ?", id)).
		ToSql()
	if err != nil {
		return nil, internalError(fmt.Errorf("building select query: %w", err))
	}

	var post domain.Post
	if err := pgxscan.Get(ctx, s.db, &post, query, args...); err != nil {
		mapped := MapError(err)
		if store.IsNotFoundError(mapped) {
			log.Debug("post not found", slog.String("post_id", id.String()))
		} else {
			log.Error("failed to get post",
				slog.String("error", redact.Error(err)),
				slog.String("post_id", id.String()))
		}
		return nil, mapped
	}

	return &post, nil
}

// GetAll implements store.PostStore.GetAll.
// No ordering is applied; rows come back in storage order.
func (s *PostgresPostStore) GetAll(ctx context.Context, filter store.PostsFilter) ([]*domain.Post, error) {
	log := s.loggerFor(ctx)

	query, args, err := buildListQuery(filter).ToSql()
	if err != nil {
		return nil, internalError(fmt.Errorf("building list query: %w", err))
	}

	var posts []*domain.Post
	if err := pgxscan.Select(ctx, s.db, &posts, query, args...); err != nil {
		log.Error("failed to list posts", slog.String("error", redact.Error(err)))
		return nil, internalError(err)
	}
	if posts == nil {
		posts = []*domain.Post{}
	}

	log.Debug("posts listed", slog.Int("count", len(posts)))
	return posts, nil
}

// buildListQuery starts from an unconstrained select and adds one predicate
// per filter field that is set. squirrel joins Where clauses with AND.
func buildListQuery(filter store.PostsFilter) squirrel.SelectBuilder {
	qb := psql.Select(postColumns...).From(postsTable)

	if filter.Published != nil {
		qb = qb.Where(squirrel.Eq{"published": *filter.Published})
	}
	if filter.TitleContains != nil {
		qb = qb.Where(squirrel.ILike{"title": "%" + likeEscaper.Replace(*filter.TitleContains) + "%"})
	}

	return qb
}
