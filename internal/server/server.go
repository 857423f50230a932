package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"inode-msd/internal/announce"
	"inode-msd/internal/config"
	"inode-msd/internal/logging"
)

const shutdownTimeout = 5 * time.Second

// Server is the local decode service: an HTTP/WebSocket front end over
// the msd package.
type Server struct {
	cfg        *config.Config
	httpServer *http.Server
	announcer  *announce.Announcer
}

// New creates a Server from the given configuration.
func New(cfg *config.Config) (*Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := logging.Initialize(cfg.LogLevel); err != nil {
		return nil, fmt.Errorf("failed to initialize logging: %w", err)
	}

	s := &Server{cfg: cfg}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/decode", s.handleDecode)
	mux.HandleFunc("GET /api/models", s.handleModels)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /ws", s.handleWebSocket)

	s.httpServer = &http.Server{
		Addr:              cfg.Addr(),
		Handler:           withRequestLogging(mux),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s, nil
}

// Handler exposes the HTTP handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start runs the server and blocks until a shutdown signal arrives or
// the listener fails.
func (s *Server) Start() error {
	logging.Info("Starting iNode decode service",
		zap.String("addr", s.cfg.Addr()),
		zap.String("log_level", s.cfg.LogLevel),
		zap.Bool("announce", s.cfg.Announce.Enabled),
	)

	if s.cfg.Announce.Enabled {
		ann, err := announce.Register(s.cfg.Announce.Instance, s.cfg.Port)
		if err != nil {
			// Announcement is a convenience; the service still works.
			logging.Warn("mDNS announcement failed", zap.Error(err))
		} else {
			s.announcer = ann
		}
	}

	errChan := make(chan error, 1)
	go func() {
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
			return
		}
		errChan <- nil
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case <-sigChan:
		logging.Info("Shutdown signal received, stopping server...")
		return s.Shutdown(context.Background())
	case err := <-errChan:
		return err
	}
}

// Shutdown deregisters the mDNS announcement and drains in-flight
// requests.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.announcer != nil {
		s.announcer.Shutdown()
	}
	ctx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	logging.Info("Server stopped")
	return nil
}

// withRequestLogging logs each HTTP request at debug level.
func withRequestLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logging.Debug("HTTP request",
			zap.String("remote_addr", r.RemoteAddr),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
		)
		next.ServeHTTP(w, r)
	})
}
