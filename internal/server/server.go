//-------------------------------------------------------------------------
//
// Lexirank
//
// Portions copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package server provides the HTTP API for managing and querying
// lexirank collections.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/pgEdge/lexirank/internal/config"
	"github.com/pgEdge/lexirank/internal/retriever"
)

// Manager defines the collection operations the HTTP layer depends on.
type Manager interface {
	List() []string
	Reindex(ctx context.Context, name string) error
	Query(name, query string, n int) ([]retriever.Result, error)
	QueryBatch(ctx context.Context, name string, queries []string, n int) ([][]retriever.Result, error)
}

// Server is the HTTP server for the lexirank API.
type Server struct {
	config  *config.Config
	manager Manager
	logger  *slog.Logger
	server  *http.Server
	mux     *http.ServeMux
}

// New creates a new HTTP server wrapping the given collection manager.
func New(cfg *config.Config, m Manager, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{
		config:  cfg,
		manager: m,
		logger:  logger,
		mux:     http.NewServeMux(),
	}

	s.setupRoutes()

	return s
}

// ListenAndServe starts the HTTP server.
func (s *Server) ListenAndServe() error {
	addr := fmt.Sprintf("%s:%d", s.config.Server.ListenAddress, s.config.Server.Port)

	s.server = &http.Server{
		Addr:         addr,
		Handler:      s.applyMiddleware(s.mux),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	s.logger.Info("starting server", "address", addr)

	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	return s.server.Serve(listener)
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down server")

	if s.server != nil {
		return s.server.Shutdown(ctx)
	}

	return nil
}

// Addr returns the server's address. Returns empty string if not started.
func (s *Server) Addr() string {
	if s.server != nil {
		return s.server.Addr
	}
	return ""
}
