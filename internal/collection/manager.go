//-------------------------------------------------------------------------
//
// Lexirank
//
// Portions copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package collection manages the lifecycle of named retriever
// collections, adapted from the RAG server's pipeline.Manager pattern:
// instead of owning LLM providers per named pipeline, a Manager here
// owns one *retriever.Retriever plus the corpus.Source it was built
// from, per named collection.
package collection

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/pgEdge/lexirank/internal/config"
	"github.com/pgEdge/lexirank/internal/corpus"
	"github.com/pgEdge/lexirank/internal/retriever"
)

// ErrNotFound is returned when a requested collection does not exist.
var ErrNotFound = errors.New("collection not found")

// Collection pairs a retriever with the corpus source used to (re)build
// it.
type Collection struct {
	Name   string
	Source corpus.Source
	Ret    *retriever.Retriever
}

// Manager owns a set of named collections. Reindex takes the write
// lock so it never overlaps a concurrent Query/QueryBatch, matching
// spec §5's "mutating operations must not overlap with queries".
type Manager struct {
	mu          sync.RWMutex
	collections map[string]*Collection
	logger      *slog.Logger
}

// NewManager builds a Manager from configuration. Each configured
// collection is indexed once at startup.
func NewManager(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Manager, error) {
	if logger == nil {
		logger = slog.Default()
	}

	m := &Manager{
		collections: make(map[string]*Collection),
		logger:      logger,
	}

	for _, cc := range cfg.Collections {
		src, err := newSource(ctx, cc.Source)
		if err != nil {
			return nil, fmt.Errorf("collection %q: build corpus source: %w", cc.Name, err)
		}

		coll := &Collection{
			Name:   cc.Name,
			Source: src,
			Ret:    retriever.New(cc.K1, cc.B),
		}
		if err := reindex(ctx, coll); err != nil {
			return nil, fmt.Errorf("collection %q: initial index: %w", cc.Name, err)
		}

		m.collections[cc.Name] = coll
		logger.Info("collection indexed",
			"collection", cc.Name,
			"documents", coll.Ret.NDocs(),
			"vocabulary", coll.Ret.VocabSize())
	}

	return m, nil
}

func newSource(ctx context.Context, sc config.SourceConfig) (corpus.Source, error) {
	switch sc.Type {
	case config.SourceTypeFile:
		return &corpus.FileSource{Path: sc.Path}, nil
	case config.SourceTypePostgres:
		pool, err := corpus.NewPostgresPool(ctx, corpus.PostgresConfig{
			Host:     sc.Host,
			Port:     sc.Port,
			Database: sc.Database,
			Username: sc.Username,
			Password: sc.Password,
			SSLMode:  sc.SSLMode,
		})
		if err != nil {
			return nil, err
		}
		return &corpus.PostgresSource{
			Pool:       pool,
			Table:      sc.Table,
			TextColumn: sc.TextColumn,
			IDColumn:   sc.IDColumn,
		}, nil
	default:
		return nil, fmt.Errorf("unknown source type %q", sc.Type)
	}
}

// reindex loads the collection's corpus and rebuilds its retriever.
// This is the only place a full rebuild happens, matching the "no
// incremental update" lifecycle of spec §3.
func reindex(ctx context.Context, c *Collection) error {
	texts, err := c.Source.Load(ctx)
	if err != nil {
		return fmt.Errorf("load corpus: %w", err)
	}
	return c.Ret.Index(texts)
}

// Reindex rebuilds the named collection from its corpus source under
// an exclusive lock.
func (m *Manager) Reindex(ctx context.Context, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	c, ok := m.collections[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return reindex(ctx, c)
}

// Query runs a single top-N query against the named collection under a
// shared (read) lock, so it may run concurrently with other queries
// but never with a Reindex.
func (m *Manager) Query(name, query string, n int) ([]retriever.Result, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	c, ok := m.collections[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return c.Ret.TopN(query, n), nil
}

// QueryBatch runs a batch of queries against the named collection under
// a shared (read) lock.
func (m *Manager) QueryBatch(ctx context.Context, name string, queries []string, n int) ([][]retriever.Result, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	c, ok := m.collections[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return c.Ret.TopNBatched(ctx, queries, n)
}

// List returns the names of all managed collections.
func (m *Manager) List() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	names := make([]string, 0, len(m.collections))
	for name := range m.collections {
		names = append(names, name)
	}
	return names
}

// Add registers a new collection, indexing it immediately. Returns an
// error if a collection with the same name already exists.
func (m *Manager) Add(ctx context.Context, name string, k1, b float64, src corpus.Source) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.collections[name]; exists {
		return fmt.Errorf("collection %q already exists", name)
	}

	c := &Collection{Name: name, Source: src, Ret: retriever.New(k1, b)}
	if err := reindex(ctx, c); err != nil {
		return fmt.Errorf("index collection %q: %w", name, err)
	}

	m.collections[name] = c
	return nil
}
