// Package server exposes the layout engine over HTTP.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/graphtier/graphtier/pkg/layout"
)

// Server wraps one layout engine behind an HTTP API. All requests share the
// engine and therefore its layout cache.
type Server struct {
	cfg    Config
	engine *layout.Engine
	logger *log.Logger
	http   *http.Server
}

// New creates a server from the given config. A nil logger falls back to the
// process default.
func New(cfg Config, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}

	s := &Server{
		cfg:    cfg,
		engine: layout.NewEngine(layout.NewCache(cfg.CacheSize), logger),
		logger: logger,
	}
	s.http = &http.Server{
		Addr:              cfg.Addr,
		Handler:           s.routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

// routes builds the chi router with the full API surface.
func (s *Server) routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/layout", s.handleLayout)
		r.Post("/layout/grid", s.handleGridLayout)
		r.Post("/layout/tiered", s.handleTieredLayout)
		r.Delete("/cache", s.handleClearCache)
	})

	return r
}

// requestLogger logs one line per request with method, path, status, and
// elapsed time.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start).Round(time.Millisecond),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}

// Run starts the server and blocks until ctx is cancelled or the listener
// fails. On cancellation, in-flight requests get the configured shutdown
// timeout to finish.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", "addr", s.cfg.Addr)
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout())
	defer cancel()
	if err := s.http.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}

// Handler exposes the routed handler for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.http.Handler
}
