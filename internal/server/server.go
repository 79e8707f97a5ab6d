// Package server exposes the generation pipeline over HTTP.
//
// The API mirrors the CLI: one POST /generate endpoint runs the full
// pipeline, POST /analyze runs classification only, and a handful of GET
// endpoints expose vocabulary, templates, and stats. Errors carry machine
// codes in the body; validation failures map to 400, missing resources to
// 404, everything else to 500.
package server

import (
	"context"
	"encoding/base64"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"

	"github.com/framesketch/framesketch/pkg/buildinfo"
	"github.com/framesketch/framesketch/pkg/enhance"
	"github.com/framesketch/framesketch/pkg/pipeline"
	"github.com/framesketch/framesketch/pkg/store"
)

// Server wires the pipeline runner, store, and enhancer behind HTTP routes.
type Server struct {
	runner *pipeline.Runner
	store  store.Store
	logger *log.Logger
	addr   string
}

// Option configures a Server.
type Option func(*Server)

// WithStore overrides the default in-memory store.
func WithStore(s store.Store) Option {
	return func(srv *Server) { srv.store = s }
}

// WithAddr sets the listen address.
func WithAddr(addr string) Option {
	return func(srv *Server) { srv.addr = addr }
}

// New creates a server around the given runner.
func New(runner *pipeline.Runner, logger *log.Logger, opts ...Option) *Server {
	if logger == nil {
		logger = log.Default()
	}
	srv := &Server{
		runner: runner,
		store:  store.NewMemory(),
		logger: logger,
		addr:   ":8080",
	}
	for _, opt := range opts {
		opt(srv)
	}
	return srv
}

// Handler builds the route tree.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(10 * time.Minute))

	r.Get("/health", s.handleHealth)
	r.Get("/styles", s.handleStyles)
	r.Get("/archetypes", s.handleArchetypes)
	r.Get("/templates", s.handleTemplates)
	r.Get("/templates/{id}", s.handleTemplate)
	r.Get("/stats", s.handleStats)

	r.Post("/generate", s.handleGenerate)
	r.Post("/analyze", s.handleAnalyze)

	r.Route("/enhancer", func(r chi.Router) {
		r.Get("/status", s.handleEnhancerStatus)
		r.Post("/load", s.handleEnhancerLoad)
		r.Post("/unload", s.handleEnhancerUnload)
	})

	return r
}

// Run serves until the context is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:              s.addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.logger.Info("listening", "addr", s.addr, "version", buildinfo.Version)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		s.logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

// logRequests logs each request with the structured logger.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start))
	})
}

// enhancer returns the runner's enhancer.
func (s *Server) enhancer() enhance.Enhancer {
	return s.runner.Enhancer
}

// encodePNG renders the PNG bytes for JSON transport.
func encodePNG(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}
