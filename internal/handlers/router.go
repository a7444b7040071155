package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/stackscope/core/internal/metrics"
	"github.com/stackscope/core/internal/resolver"
)

// NewRouter wires the API routes and global middleware.
func NewRouter(res *resolver.Resolver, logger *zap.Logger, allowedOrigins []string) http.Handler {
	h := NewHandler(res, logger)

	router := chi.NewRouter()
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)
	router.Use(RequestLogger(logger))

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	}))

	router.Get("/health", h.Health)
	router.Method(http.MethodGet, "/metrics", metrics.Handler())

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/categories", h.Categories)
		r.Post("/options", h.Options)
		r.Post("/compatible", h.Compatible)
	})

	return router
}
