/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"golang.org/x/time/rate"

	"github.com/ovpn-tools/ovpncheck/pkg/scanner"
)

// Server exposes the configuration validator over HTTP.
type Server struct {
	name    string
	version string
	config  *Config
	scanner *scanner.Scanner
	limiter *rate.Limiter

	mu    sync.RWMutex
	ready bool
}

// Option is a functional option for configuring Server instances.
type Option func(*Server)

// WithName returns an Option that sets the server name reported on the
// index route.
func WithName(name string) Option {
	return func(s *Server) {
		s.name = name
	}
}

// WithVersion returns an Option that sets the server version string.
func WithVersion(version string) Option {
	return func(s *Server) {
		s.version = version
	}
}

// WithConfig returns an Option that sets the server configuration.
func WithConfig(cfg *Config) Option {
	return func(s *Server) {
		s.config = cfg
	}
}

// WithScanner returns an Option that sets the scanner backing the
// validation endpoint.
func WithScanner(sc *scanner.Scanner) Option {
	return func(s *Server) {
		s.scanner = sc
	}
}

// New creates a Server with the provided options.
func New(opts ...Option) *Server {
	s := &Server{name: "ovpncheck"}
	for _, opt := range opts {
		opt(s)
	}
	if s.config == nil {
		s.config = DefaultConfig()
	}
	if s.scanner == nil {
		s.scanner = scanner.New()
	}
	s.limiter = rate.NewLimiter(s.config.RateLimit, s.config.RateLimitBurst)
	return s
}

// Run starts the HTTP server and blocks until ctx is canceled or the
// listener fails. Shutdown is graceful within the configured timeout.
func (s *Server) Run(ctx context.Context) error {
	addr := fmt.Sprintf("%s:%d", s.config.Address, s.config.Port)

	srv := &http.Server{
		Addr:         addr,
		Handler:      s.setupRoutes(),
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
		IdleTimeout:  s.config.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server listening", "addr", addr, "version", s.version)
		errCh <- srv.ListenAndServe()
	}()

	s.mu.Lock()
	s.ready = true
	s.mu.Unlock()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.mu.Lock()
	s.ready = false
	s.mu.Unlock()

	slog.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}
