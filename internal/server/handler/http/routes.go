// Package http provides HTTP routing and middleware configuration
// for the passmeter service.
package http

import (
	"net/http"

	"github.com/atinyakov/passmeter/internal/middleware"
	"go.uber.org/zap"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

// NewRouter constructs and returns an HTTP handler that serves
// the passmeter API under /api.
//
// Routes:
//
//	POST /api/evaluate      → strengthHandler.Evaluate
//	GET  /api/stats         → strengthHandler.Stats
//	GET  /api/requirements  → strengthHandler.Requirements
//
// Middleware chain (applied in order):
//  1. Recoverer                    : turns panics into 500 responses
//  2. RequestID                    : assigns X-Request-ID
//  3. WithRequestLogging(logger)   : logs each request
//
// POST routes additionally reject bodies that are not application/json.
func NewRouter(strengthHandler *StrengthHandler, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.WithRequestLogging(logger))

	r.Route("/api", func(r chi.Router) {
		r.With(chiMiddleware.AllowContentType("application/json")).
			Post("/evaluate", strengthHandler.Evaluate)

		r.Get("/stats", strengthHandler.Stats)
		r.Get("/requirements", strengthHandler.Requirements)
	})

	return r
}
