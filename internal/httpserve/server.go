// Package httpserve serves a local directory over HTTP.
//
// Routes:
//
//	GET /metrics  Prometheus metrics for this server
//	GET /fs/*     http.FileServerFS over the directory (listings, index.html)
//	GET /*        the raw file at that path; 404 when missing, 400 on traversal
package httpserve

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/mrz1836/rcli/internal/constants"
	"github.com/mrz1836/rcli/internal/errors"
	"github.com/mrz1836/rcli/internal/fileutil"
)

// Config configures a Server.
type Config struct {
	// Dir is the directory to serve.
	Dir string
	// Addr is the listen address, e.g. "0.0.0.0:8080".
	Addr string
	// ReadHeaderTimeout bounds header reads. Zero uses the default.
	ReadHeaderTimeout time.Duration
	// ShutdownTimeout bounds graceful shutdown. Zero uses the default.
	ShutdownTimeout time.Duration
}

// Server is a static file server for one directory.
type Server struct {
	cfg     Config
	root    string
	logger  zerolog.Logger
	metrics *metrics
	router  chi.Router
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the request logger. Defaults to a disabled logger.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Server) {
		s.logger = l
	}
}

// New validates cfg and builds the router.
func New(cfg Config, opts ...Option) (*Server, error) {
	if err := fileutil.VerifyDir(cfg.Dir); err != nil {
		return nil, err
	}
	root, err := filepath.Abs(cfg.Dir)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", cfg.Dir, err)
	}
	if cfg.Addr == "" {
		cfg.Addr = fmt.Sprintf("0.0.0.0:%d", constants.DefaultHTTPPort)
	}
	if cfg.ReadHeaderTimeout <= 0 {
		cfg.ReadHeaderTimeout = constants.DefaultReadHeaderTimeout
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = constants.DefaultShutdownTimeout
	}

	m, err := newMetrics()
	if err != nil {
		return nil, fmt.Errorf("registering metrics: %w", err)
	}

	s := &Server{
		cfg:     cfg,
		root:    root,
		logger:  zerolog.Nop(),
		metrics: m,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.router = s.routes()
	return s, nil
}

// Handler returns the server's router.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Root returns the absolute directory being served.
func (s *Server) Root() string {
	return s.root
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.metrics.instrument)
	r.Use(s.logRequests)

	r.Method(http.MethodGet, "/metrics", s.metrics.handler())
	r.Handle("/fs/*", http.StripPrefix("/fs", http.HandlerFunc(s.serveTree)))
	r.Get("/*", s.serveFile)
	return r
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		s.logger.Info().
			Str("request_id", middleware.GetReqID(r.Context())).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Int("bytes", ww.BytesWritten()).
			Dur("duration", time.Since(start)).
			Msg("http request")
	})
}

// serveFile writes the file at the request path.
func (s *Server) serveFile(w http.ResponseWriter, r *http.Request) {
	rel := strings.TrimPrefix(r.URL.Path, "/")
	if rel == "" {
		http.Redirect(w, r, "/fs/", http.StatusFound)
		return
	}
	if !filepath.IsLocal(filepath.FromSlash(rel)) {
		s.logger.Warn().Str("path", r.URL.Path).Err(errors.ErrPathTraversal).Msg("rejected request")
		http.Error(w, errors.ErrPathTraversal.Error(), http.StatusBadRequest)
		return
	}

	f, err := os.OpenInRoot(s.root, filepath.FromSlash(rel))
	if err != nil {
		http.Error(w, fmt.Sprintf("file %s not found", rel), http.StatusNotFound)
		return
	}
	defer func() { _ = f.Close() }()

	info, err := f.Stat()
	if err != nil || info.IsDir() {
		http.Error(w, fmt.Sprintf("file %s not found", rel), http.StatusNotFound)
		return
	}
	http.ServeContent(w, r, info.Name(), info.ModTime(), f)
}

// serveTree serves listings and files through an os.Root, so symlinks
// cannot resolve outside the directory.
func (s *Server) serveTree(w http.ResponseWriter, r *http.Request) {
	root, err := os.OpenRoot(s.root)
	if err != nil {
		s.logger.Error().Err(err).Str("dir", s.root).Msg("opening served directory")
		http.Error(w, "directory unavailable", http.StatusInternalServerError)
		return
	}
	defer func() { _ = root.Close() }()

	http.FileServerFS(root.FS()).ServeHTTP(w, r)
}

// ListenAndServe listens on cfg.Addr and serves until ctx is canceled.
func (s *Server) ListenAndServe(ctx context.Context) error {
	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", s.cfg.Addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", s.cfg.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is canceled, then shuts down gracefully.
// It returns nil after a clean shutdown.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: s.cfg.ReadHeaderTimeout,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	s.logger.Info().
		Str("addr", ln.Addr().String()).
		Str("dir", s.root).
		Msg("serving directory")

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.Serve(ln); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutting down http server: %w", err)
		}
		s.logger.Info().Msg("http server stopped")
		return nil
	})
	return g.Wait()
}
