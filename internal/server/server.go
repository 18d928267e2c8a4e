// Package server exposes the layout pipeline over HTTP.
//
// The server accepts graph descriptions, runs them through the external
// layout engine, and returns the resulting geometry as JSON. Rendered
// previews, a named layout store, and prometheus metrics hang off the
// same router.
package server

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/sdankbar/jaqumal-graph/pkg/cache"
	"github.com/sdankbar/jaqumal-graph/pkg/config"
	"github.com/sdankbar/jaqumal-graph/pkg/store"
)

// Options configures a Server. Zero values fall back to safe defaults:
// a discarded logger, a null cache, and no persistent layout store.
type Options struct {
	Config config.Config
	Logger *log.Logger
	Cache  cache.Cache
	Store  store.Store
}

// Server hosts the layout API.
type Server struct {
	cfg    config.Config
	logger *log.Logger
	cache  cache.Cache
	keyer  cache.Keyer
	store  store.Store
}

// New builds a Server from the given options.
func New(opts Options) *Server {
	logger := opts.Logger
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	c := opts.Cache
	if c == nil {
		c = cache.NewNullCache()
	}
	var keyer cache.Keyer = cache.NewDefaultKeyer()
	if opts.Config.Cache.Prefix != "" {
		keyer = cache.NewScopedKeyer(keyer, opts.Config.Cache.Prefix)
	}
	installMetrics()
	return &Server{
		cfg:    opts.Config,
		logger: logger,
		cache:  c,
		keyer:  keyer,
		store:  opts.Store,
	}
}

// Handler returns the HTTP routing tree.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(s.observe)

	r.Get("/healthz", s.handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/layout", s.handleLayout)
		r.Post("/render", s.handleRender)
		r.Route("/layouts", func(r chi.Router) {
			r.Get("/", s.handleListLayouts)
			r.Put("/{name}", s.handleSaveLayout)
			r.Get("/{name}", s.handleGetLayout)
			r.Delete("/{name}", s.handleDeleteLayout)
		})
	})

	return r
}

// Run serves the API until the context is cancelled, then shuts down
// gracefully within the configured timeout.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.cfg.Server.Addr,
		Handler: s.Handler(),
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("server shutting down")
	timeout := s.cfg.Server.ShutdownTimeout.Duration
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
