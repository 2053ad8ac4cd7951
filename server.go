// Package blogconf holds the site configuration of a personal blog built by
// an external static-site generator: the configuration record, the three
// published revisions of it, a YAML/JSON codec, an opt-in lint and a small
// read-only preview server.
package blogconf

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

const defaultAddr = ":3000"

// Option configures additional Server behavior.
type Option func(*Server)

// WithAddr sets the listen address (default ":3000").
func WithAddr(addr string) Option {
	return func(s *Server) {
		if addr != "" {
			s.addr = addr
		}
	}
}

// WithShutdownTimeout bounds how long Start waits for in-flight requests
// once its context is cancelled (default 5s).
func WithShutdownTimeout(d time.Duration) Option {
	return func(s *Server) {
		s.shutdownTimeout = d
	}
}

// Server exposes one SiteConfig over HTTP for the generator or for a human
// checking what the generator will see.
type Server struct {
	Config SiteConfig
	Echo   *echo.Echo

	addr            string
	shutdownTimeout time.Duration
}

// NewServer creates a preview server for cfg. Routes are registered
// immediately so the Echo instance can be used as an http.Handler.
func NewServer(cfg SiteConfig, opts ...Option) *Server {
	s := &Server{
		Config:          cfg.Clone(),
		Echo:            echo.New(),
		addr:            defaultAddr,
		shutdownTimeout: 5 * time.Second,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.Echo.HideBanner = true
	s.setupMiddleware()
	s.setupRoutes()
	return s
}

// Addr returns the listen address.
func (s *Server) Addr() string {
	return s.addr
}

func (s *Server) setupRoutes() {
	e := s.Echo

	e.GET("/", s.handlePreview)
	e.GET("/config.json", s.handleConfigJSON)
	e.GET("/config.yaml", s.handleConfigYAML)
	e.GET("/links", s.handleLinks)
	e.GET("/social", s.handleSocial)
	e.GET("/feeds", s.handleFeeds)
	e.GET("/healthz", handleHealth)
}

// Start serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	for _, w := range s.Config.Warnings() {
		log.Printf("blogconf: warning: %s", w)
	}

	errCh := make(chan error, 1)
	go func() {
		if err := s.Echo.Start(s.addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("blogconf: serve: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()
	if err := s.Echo.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("blogconf: shutdown: %w", err)
	}
	return <-errCh
}
