// Package server exposes the editors as a small JSON API: clients post an
// editor state and receive the generated CSS and preview style.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/alexisbeaulieu97/cssplay/internal/logger"
	"github.com/alexisbeaulieu97/cssplay/internal/presets"
)

// Options configures a Server.
type Options struct {
	Catalog     *presets.Catalog
	Logger      *logger.Logger
	ReadTimeout time.Duration
}

// Server serves the HTTP API. Each request works on its own editor
// session; only the preset catalog is shared.
type Server struct {
	router      chi.Router
	catalog     *presets.Catalog
	logger      *logger.Logger
	readTimeout time.Duration
}

// New builds the router.
func New(opts Options) *Server {
	s := &Server{
		catalog:     opts.Catalog,
		logger:      opts.Logger,
		readTimeout: opts.ReadTimeout,
	}
	if s.catalog == nil {
		s.catalog = presets.Default()
	}
	if s.logger == nil {
		s.logger = logger.Nop()
	}
	if s.readTimeout <= 0 {
		s.readTimeout = 5 * time.Second
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.observe)

	r.Get("/healthz", s.handleHealth)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Get("/presets", s.handleListPresets)
		r.Get("/presets/{editor}", s.handleListEditorPresets)
		r.Get("/presets/{editor}/{name}", s.handleGetPreset)
		r.Post("/gradient/css", s.handleGradientCSS)
		r.Post("/{editor}/css", s.handleEffectCSS)
	})

	s.router = r
	return s
}

// Handler returns the root handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is cancelled.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.router,
		ReadTimeout:       s.readTimeout,
		ReadHeaderTimeout: s.readTimeout,
		WriteTimeout:      2 * s.readTimeout,
		IdleTimeout:       120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()

	s.logger.WithFields(map[string]any{"addr": ln.Addr().String()}).Info("http api listening")

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	s.logger.Info("http api stopped")
	return nil
}

// observe records request metrics and a debug log line per request.
func (s *Server) observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		MetricRequestsTotal.WithLabelValues(route, fmt.Sprint(status)).Inc()
		MetricRequestDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
		s.logger.DebugFields("http request", map[string]any{
			"method":     r.Method,
			"route":      route,
			"status":     status,
			"request_id": middleware.GetReqID(r.Context()),
			"duration":   time.Since(start).String(),
		})
	})
}
