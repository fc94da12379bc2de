// Package httpapi exposes the category directory over a JSON HTTP API.
package httpapi

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/Tanay2920003/sitelink/internal/config"
	"github.com/Tanay2920003/sitelink/internal/ports"
)

// Server wraps the chi router and the http.Server
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	logger     *slog.Logger
}

// NewRouter builds the routes and middleware chain. Editing routes are only
// mounted in development and are rate limited per client.
func NewRouter(ctx context.Context, cfg *config.Config, repo ports.CategoryRepository, logger *slog.Logger) *chi.Mux {
	h := NewHandler(repo, logger)

	r := chi.NewRouter()
	r.Use(chimw.RealIP)
	r.Use(RequestID)
	r.Use(Logger(logger))
	r.Use(Recover)
	r.Use(chimw.CleanPath)

	r.Get("/health", h.health)

	r.Route("/api/v1", func(api chi.Router) {
		api.Get("/categories", h.listCategories)
		api.Get("/categories/{slug}", h.getCategory)
		api.Get("/resources", h.searchResources)
		api.Get("/suggest", h.suggest)
		api.Get("/featured", h.featured)

		if !cfg.IsDevelopment() {
			return
		}

		limiter := NewRateLimiter(cfg.RateLimit, cfg.RateBurst)
		go limiter.Cleanup(ctx, time.Minute)

		api.Group(func(edit chi.Router) {
			edit.Use(limiter.Middleware)
			edit.Get("/files", h.listFiles)
			edit.Post("/files", h.createFile)
			edit.Get("/files/{filename}", h.readFile)
			edit.Put("/files/{filename}", h.writeFile)
			edit.Post("/validate", h.validate)
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		fail(w, http.StatusNotFound, CodeNotFound, "route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		fail(w, http.StatusMethodNotAllowed, CodeBadRequest, "method not allowed")
	})

	return r
}

// NewServer creates a server listening on cfg.HTTPAddr
func NewServer(ctx context.Context, cfg *config.Config, repo ports.CategoryRepository, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	router := NewRouter(ctx, cfg, repo, logger)

	return &Server{
		router: router,
		logger: logger,
		httpServer: &http.Server{
			Addr:              cfg.HTTPAddr,
			Handler:           router,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      15 * time.Second,
			IdleTimeout:       60 * time.Second,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
}

// Handler returns the root handler
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe blocks until the server is closed or fails
func (s *Server) ListenAndServe() error {
	s.logger.Info("server starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown waits for in-flight requests for at most timeout
func (s *Server) Shutdown(timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(ctx)
}
