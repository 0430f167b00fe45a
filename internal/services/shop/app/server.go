// Package server wires the storefront runtime and HTTP lifecycle.
package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/louisbranch/storefront/internal/services/shop/api/httpapi"
	"github.com/louisbranch/storefront/internal/services/shop/engine"
	shopsqlite "github.com/louisbranch/storefront/internal/services/shop/storage/sqlite"
)

const shutdownTimeout = 5 * time.Second

// Config carries the storefront runtime settings.
type Config struct {
	// Addr is the HTTP listen address, e.g. ":8080".
	Addr string
	// DBPath enables SQLite persistence when non-empty. Blank runs the
	// simulation memory-only with state reset on restart.
	DBPath string
	// RepriceInterval is the cadence of the scheduled price recompute.
	// Zero uses the engine default.
	RepriceInterval time.Duration
}

// Server hosts the storefront HTTP API and storage lifecycle.
type Server struct {
	listener        net.Listener
	httpServer      *http.Server
	engine          *engine.Engine
	store           *shopsqlite.Store
	repriceInterval time.Duration
}

// NewEngine builds a seeded storefront engine, backed by SQLite when
// dbPath is non-empty. The caller owns the returned store handle.
func NewEngine(ctx context.Context, dbPath string) (*engine.Engine, *shopsqlite.Store, error) {
	opts := engine.Options{
		Products: engine.SeedProducts(),
		Users:    engine.SeedUsers(),
	}

	var store *shopsqlite.Store
	if strings.TrimSpace(dbPath) != "" {
		var err error
		store, err = shopsqlite.Open(dbPath)
		if err != nil {
			return nil, nil, fmt.Errorf("open storefront store: %w", err)
		}
		opts.Store = storeAdapter{store: store}
	}

	eng, err := engine.New(ctx, opts)
	if err != nil {
		if store != nil {
			_ = store.Close()
		}
		return nil, nil, fmt.Errorf("build storefront engine: %w", err)
	}
	return eng, store, nil
}

// New creates a configured storefront server listening on cfg.Addr.
func New(ctx context.Context, cfg Config) (*Server, error) {
	addr := strings.TrimSpace(cfg.Addr)
	if addr == "" {
		return nil, fmt.Errorf("listen address is required")
	}
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", addr, err)
	}

	eng, store, err := NewEngine(ctx, cfg.DBPath)
	if err != nil {
		_ = listener.Close()
		return nil, err
	}

	api := httpapi.NewServer(eng)
	return &Server{
		listener:        listener,
		httpServer:      &http.Server{Handler: api.Handler()},
		engine:          eng,
		store:           store,
		repriceInterval: cfg.RepriceInterval,
	}, nil
}

// Addr returns the listener address for the server.
func (s *Server) Addr() string {
	if s == nil || s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Engine exposes the running engine, mainly for tests.
func (s *Server) Engine() *engine.Engine {
	if s == nil {
		return nil
	}
	return s.engine
}

// Run creates and serves a storefront server until context cancellation.
func Run(ctx context.Context, cfg Config) error {
	server, err := New(ctx, cfg)
	if err != nil {
		return err
	}
	return server.Serve(ctx)
}

// Serve starts the HTTP server and the repricing schedule until context
// cancellation.
func (s *Server) Serve(ctx context.Context) error {
	if s == nil {
		return errors.New("server is nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	defer s.Close()

	go s.engine.RunRepricing(ctx, s.repriceInterval)

	log.Printf("storefront server listening at %v", s.listener.Addr())
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.httpServer.Serve(s.listener)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown storefront server: %w", err)
		}
		err := <-serveErr
		if err == nil || errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case err := <-serveErr:
		if err == nil || errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve storefront server: %w", err)
	}
}

// Close releases the listener and storage handles.
func (s *Server) Close() {
	if s == nil {
		return
	}
	if s.httpServer != nil {
		_ = s.httpServer.Close()
	}
	if s.listener != nil {
		_ = s.listener.Close()
	}
	if s.store != nil {
		if err := s.store.Close(); err != nil {
			log.Printf("close storefront store: %v", err)
		}
	}
}
