package main

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/posts-api/internal/api"
	apiMiddleware "github.com/phrazzld/posts-api/internal/api/middleware"
	"github.com/phrazzld/posts-api/internal/api/shared"
	"github.com/phrazzld/posts-api/internal/redact"
)

const (
	rootMessage        = "Server is running!"
	healthcheckTimeout = 2 * time.Second
)

// setupRouter creates and configures the application router with all routes and middleware.
// Any path or method without a route gets the same plain text 404.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.NewTraceMiddleware(app.logger))

	r.NotFound(api.NotFoundHandler)
	r.MethodNotAllowed(api.NotFoundHandler)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithText(w, r, http.StatusOK, rootMessage)
	})

	postHandler := api.NewPostHandler(app.postStore, app.logger)
	postHandler.Routes(r)

	r.Get("/health", app.handleHealth)

	return r
}

// handleHealth reports readiness: 200 when the database answers a ping,
// 503 otherwise.
func (app *application) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthcheckTimeout)
	defer cancel()

	if err := app.healthcheck(ctx); err != nil {
		app.logger.Warn("health check failed", "error", redact.Error(err))
		shared.RespondWithText(w, r, http.StatusServiceUnavailable, http.StatusText(http.StatusServiceUnavailable))
		return
	}

	shared.RespondWithText(w, r, http.StatusOK, "OK")
}
