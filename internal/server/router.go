// Package server assembles the HTTP router and server
package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"

	_ "github.com/powerfolio/backend/docs"
	"github.com/powerfolio/backend/internal/config"
	"github.com/powerfolio/backend/internal/handlers"
	"github.com/powerfolio/backend/internal/middlewares"
	"github.com/powerfolio/backend/internal/session"
)

// Handlers groups the route registrars the router mounts
type Handlers struct {
	Auth    *handlers.AuthHandler
	Project *handlers.ProjectHandler
	Admin   *handlers.AdminHandler
}

// NewRouter wires the middleware chain and mounts every handler under /api/v1
func NewRouter(cfg *config.Config, logger *zap.Logger, sessions *session.Manager, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middlewares.RequestID)
	r.Use(middlewares.RequestLogger(logger))
	r.Use(middlewares.Recovery(logger))
	r.Use(middlewares.CORS(cfg.CORS.AllowedOrigins))
	r.Use(httprate.LimitByIP(cfg.RateLimitPerMinute, time.Minute))
	r.Use(middlewares.RequestSizeLimit(1 << 20)) // 1MB
	r.Use(middlewares.Metrics)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://localhost:%d/swagger/doc.json", cfg.Server.Port)),
	))

	r.Route("/api/v1", func(r chi.Router) {
		h.Auth.RegisterRoutes(r)
		h.Project.RegisterRoutes(r)
		r.Group(func(r chi.Router) {
			r.Use(middlewares.RequireAuth(sessions))
			h.Project.RegisterAuthenticatedRoutes(r)
		})
		r.Group(func(r chi.Router) {
			r.Use(middlewares.RequireAdmin(sessions))
			h.Admin.RegisterRoutes(r)
		})
	})

	return r
}

// BuildServer creates an http.Server with the usual timeouts
func BuildServer(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}
