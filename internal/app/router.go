package app

import (
	"github.com/avc-dev/redirector/internal/handler"
	"github.com/avc-dev/redirector/internal/middleware"
	"github.com/avc-dev/redirector/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// newRouter создает и настраивает роутер приложения
func newRouter(h *handler.Handler, authService *service.AuthService, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.GzipMiddleware(logger))

	authMiddleware := middleware.NewAuthMiddleware(authService, logger)

	// Service routes
	r.Get("/ping", h.Ping)
	r.Method("GET", "/metrics", promhttp.Handler())

	// Public routes
	r.Get("/{code}", h.Redirect)
	r.Get("/api/lookup/{code}", h.Lookup)

	// Management API - требует bearer-токен
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware.RequireAuth)

		r.Post("/api/urls", h.CreateLink)
		r.Get("/api/urls", h.GetLinks)
		r.Get("/api/urls/{id}", h.GetLink)
		r.Delete("/api/urls/{id}", h.DeleteLink)
		r.Get("/api/clicks/{id}", h.GetClicks)
		r.Post("/api/clicks/multiple", h.GetClicksForLinks)
	})

	return r
}
