package api

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/phrazzld/posts-api/internal/api/shared"
	"github.com/phrazzld/posts-api/internal/domain"
	"github.com/phrazzld/posts-api/internal/platform/logger"
	"github.com/phrazzld/posts-api/internal/store"
)

// PostHandler handles post-related HTTP requests.
type PostHandler struct {
	store  store.PostStore
	logger *slog.Logger
}

// NewPostHandler creates a new PostHandler.
func NewPostHandler(postStore store.PostStore, log *slog.Logger) *PostHandler {
	if postStore == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("postStore cannot be nil")
	}
	if log == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil")
	}

	return &PostHandler{
		store:  postStore,
		logger: log,
	}
}

// loggerFor returns the request logger from r, falling back to the
// handler's logger, tagged with the handler component.
func (h *PostHandler) loggerFor(r *http.Request) *slog.Logger {
	return logger.FromContextOrDefault(r.Context(), h.logger).With(slog.String("component", "post_handler"))
}

// CreatePost handles POST /v1/posts. The new post is always unpublished.
func (h *PostHandler) CreatePost(w http.ResponseWriter, r *http.Request, req CreatePostRequest) {
	log := h.loggerFor(r)

	post, err := h.store.Insert(r.Context(), domain.NewUnpublishedPost(*req.Title, *req.Body))
	if err != nil {
		HandleAPIError(w, r, domain.ErrPostInternal, err)
		return
	}

	log.Debug("post created", slog.String("post_id", post.ID.String()))
	shared.RespondWithJSON(w, r, http.StatusOK, postToResponse(post))
}

// GetPost handles GET /v1/posts/{id}.
func (h *PostHandler) GetPost(w http.ResponseWriter, r *http.Request, id uuid.UUID) {
	post, err := h.store.Get(r.Context(), id)
	if err != nil {
		if store.IsNotFoundError(err) {
			HandleAPIError(w, r, domain.NewPostNotFoundError(id), nil)
			return
		}
		HandleAPIError(w, r, domain.ErrPostInternal, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, postToResponse(post))
}

// ListPosts handles GET /v1/posts with optional published and title_contains
// filters. The order of the returned posts is unspecified.
func (h *PostHandler) ListPosts(w http.ResponseWriter, r *http.Request, filter store.PostsFilter) {
	posts, err := h.store.GetAll(r.Context(), filter)
	if err != nil {
		HandleAPIError(w, r, domain.ErrPostInternal, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, postsToResponse(posts))
}

// Routes registers the post endpoints on the given router. Each handler is
// wrapped in the extractor for its input.
func (h *PostHandler) Routes(r Router) {
	r.Post("/v1/posts", WithJSON(h.CreatePost))
	r.Get("/v1/posts", WithQuery(DecodePostsFilter, h.ListPosts))
	r.Get("/v1/posts/{id}", WithPathUUID("id", h.GetPost))
}

// Router is the subset of chi.Router the post routes need.
type Router interface {
	Get(pattern string, h http.HandlerFunc)
	Post(pattern string, h http.HandlerFunc)
}
