// Package server runs the HTTP server with signal-driven graceful shutdown.
package server

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/tahiry-dev/wildlife-atlas/internal/config"
	"github.com/tahiry-dev/wildlife-atlas/internal/logger"
)

// Server wraps the standard http.Server with graceful shutdown handling.
type Server struct {
	server *http.Server
	logger *logger.Logger
}

// NewServer constructs a Server listening on the configured address and
// serving the given handler.
func NewServer(handler http.Handler, cfg config.Server, logger *logger.Logger) *Server {
	logger.Info().Str("address", cfg.Address).Msg("creating new server")

	return &Server{
		server: &http.Server{
			Addr:         cfg.Address,
			Handler:      handler,
			ReadTimeout:  cfg.RequestTimeout,
			WriteTimeout: cfg.RequestTimeout,
		},
		logger: logger,
	}
}

// Run starts the HTTP server and blocks until a termination signal arrives,
// then shuts the server down gracefully.
func (s *Server) Run() error {
	idleConnectionsClosed := make(chan struct{})
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	// listen for stop signals
	go func() {
		<-ctx.Done()
		s.Shutdown()
		close(idleConnectionsClosed)
	}()

	s.logger.Info().Msg("Launching HTTP server")
	go func() {
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.logger.Err(err).Msg("HTTP server ListenAndServe")
		}
	}()

	<-idleConnectionsClosed
	s.logger.Info().Msg("server Shutdown gracefully")

	return nil
}

// Shutdown stops accepting new connections and waits for in-flight requests
// to finish, up to a fixed grace period.
func (s *Server) Shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.server.Shutdown(ctx); err != nil {
		s.logger.Err(err).Msg("HTTP server Shutdown")
	}
}
