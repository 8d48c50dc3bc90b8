package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"golang.org/x/net/netutil"

	"github.com/nao1215/pwmeter/internal/config"
	"github.com/nao1215/pwmeter/internal/passphrase"
	"github.com/nao1215/pwmeter/internal/strength"
)

// shutdownTimeout bounds graceful shutdown after the context is cancelled.
const shutdownTimeout = 5 * time.Second

// Server serves the HTTP API.
//
// Design decision: The server holds one engine and one generator for its
// whole lifetime. Both are safe for concurrent use, so handlers share them
// without locking.
type Server struct {
	engine         *strength.Engine
	generator      *passphrase.Generator
	logger         *slog.Logger
	maxBodySize    int64
	maxConnections int
	readTimeout    time.Duration
}

// Option configures a Server.
type Option func(*Server)

// WithEngine sets the scoring engine.
func WithEngine(engine *strength.Engine) Option {
	return func(s *Server) {
		if engine != nil {
			s.engine = engine
		}
	}
}

// WithGenerator sets the passphrase generator.
func WithGenerator(generator *passphrase.Generator) Option {
	return func(s *Server) {
		if generator != nil {
			s.generator = generator
		}
	}
}

// WithLogger sets the access and error logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithMaxBodySize limits request bodies to n bytes.
func WithMaxBodySize(n int64) Option {
	return func(s *Server) {
		if n > 0 {
			s.maxBodySize = n
		}
	}
}

// WithMaxConnections caps simultaneous connections.
func WithMaxConnections(n int) Option {
	return func(s *Server) {
		if n > 0 {
			s.maxConnections = n
		}
	}
}

// WithReadTimeout sets the request read timeout.
func WithReadTimeout(d time.Duration) Option {
	return func(s *Server) {
		if d > 0 {
			s.readTimeout = d
		}
	}
}

// New creates a Server with defaults from the config package.
func New(opts ...Option) *Server {
	s := &Server{
		engine:         strength.NewEngine(),
		generator:      passphrase.NewGenerator(),
		logger:         slog.Default(),
		maxBodySize:    config.DefaultMaxBodySize,
		maxConnections: config.DefaultMaxConnections,
		readTimeout:    config.DefaultReadTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handler returns the API handler with middleware applied.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/analyze", s.handleAnalyze)
	mux.HandleFunc("POST /v1/generate", s.handleGenerate)
	mux.HandleFunc("GET /healthz", s.handleHealth)

	return chain(mux,
		s.recovery,
		s.accessLog,
		requestID,
		securityHeaders,
	)
}

// Serve accepts connections on ln until ctx is cancelled, then shuts down
// gracefully. The listener is wrapped with a connection limit.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadTimeout:       s.readTimeout,
		ReadHeaderTimeout: s.readTimeout,
		WriteTimeout:      2 * s.readTimeout,
		IdleTimeout:       4 * s.readTimeout,
		ErrorLog:          slog.NewLogLogger(s.logger.Handler(), slog.LevelWarn),
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(netutil.LimitListener(ln, s.maxConnections))
	}()

	s.logger.Info("server started",
		"address", ln.Addr().String(),
		"max_connections", s.maxConnections,
	)

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	s.logger.Info("shutting down server")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	return nil
}

// ListenAndServe listens on addr and calls Serve.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	return s.Serve(ctx, ln)
}
