package server

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"3tcapital/bluegreen/internal/infrastructure/config"
	httperrors "3tcapital/bluegreen/internal/infrastructure/http"
	"3tcapital/bluegreen/internal/infrastructure/http/middleware"
)

// Server wraps the HTTP server exposing the deployment info endpoints.
type Server struct {
	log             *slog.Logger
	httpServer      *http.Server
	shutdownTimeout time.Duration
}

const defaultShutdownTimeout = 30 * time.Second

// Options groups the dependencies needed to build the server.
type Options struct {
	Config        config.AppConfig
	Logger        *slog.Logger
	PageHandler   http.HandlerFunc
	HealthHandler http.HandlerFunc
	InfoHandler   http.HandlerFunc
}

// New wires the router, middleware chain and handlers.
func New(opts Options) (*Server, error) {
	if opts.Logger == nil {
		return nil, errors.New("logger is required")
	}
	if opts.PageHandler == nil {
		return nil, errors.New("page handler is required")
	}
	if opts.HealthHandler == nil {
		return nil, errors.New("health handler is required")
	}
	if opts.InfoHandler == nil {
		return nil, errors.New("info handler is required")
	}

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Correlation)
	r.Use(middleware.RequestLogger(opts.Logger))
	r.Use(chimw.Recoverer)
	r.Use(middleware.CORS(opts.Config.CORS))

	r.NotFound(httperrors.NotFound)
	r.MethodNotAllowed(httperrors.MethodNotAllowed)

	r.Get("/", opts.PageHandler)
	r.Get("/health", opts.HealthHandler)
	r.Get("/api/info", opts.InfoHandler)

	srv := &http.Server{
		Addr:         opts.Config.HTTP.Address(),
		Handler:      r,
		ReadTimeout:  opts.Config.HTTP.ReadTimeout,
		WriteTimeout: opts.Config.HTTP.WriteTimeout,
		IdleTimeout:  opts.Config.HTTP.IdleTimeout,
	}

	shutdownTimeout := opts.Config.HTTP.ShutdownTimeout
	if shutdownTimeout <= 0 {
		shutdownTimeout = defaultShutdownTimeout
	}

	return &Server{log: opts.Logger, httpServer: srv, shutdownTimeout: shutdownTimeout}, nil
}

// Handler exposes the routed handler.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Run serves until ctx is cancelled, then shuts down gracefully.
// A failure to listen or serve is returned as is.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve is Run on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	errCh := make(chan error, 1)
	go func() {
		s.log.Info("HTTP server started", "addr", ln.Addr().String())
		if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case <-ctx.Done():
		s.log.Info("Shutting down HTTP server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()
		return s.httpServer.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}
