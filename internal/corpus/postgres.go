//-------------------------------------------------------------------------
//
// Lexirank
//
// Portions copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package corpus

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresConfig describes the database connection a PostgresSource's
// pool is opened with; the table and columns are set on PostgresSource.
type PostgresConfig struct {
	Host     string
	Port     int
	Database string
	Username string
	Password string
	SSLMode  string
}

// DSN builds a PostgreSQL connection string, mirroring the teacher's
// database.buildConnectionString.
func (c PostgresConfig) DSN() string {
	parts := []string{
		fmt.Sprintf("host=%s", c.Host),
		fmt.Sprintf("port=%d", c.Port),
		fmt.Sprintf("dbname=%s", c.Database),
	}
	if c.Username != "" {
		parts = append(parts, fmt.Sprintf("user=%s", c.Username))
	}
	if c.Password != "" {
		parts = append(parts, fmt.Sprintf("password=%s", c.Password))
	}
	if c.SSLMode != "" {
		parts = append(parts, fmt.Sprintf("sslmode=%s", c.SSLMode))
	}
	return strings.Join(parts, " ")
}

// NewPostgresPool opens a pgx connection pool and verifies it with a
// ping, matching the teacher's database.NewPool.
func NewPostgresPool(ctx context.Context, cfg PostgresConfig) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("parse postgres connection string: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create postgres connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	return pool, nil
}

// PostgresSource loads documents from a PostgreSQL table column,
// ordered by an ID column so DocIds stay stable across reindexes of an
// append-only table.
type PostgresSource struct {
	Pool       *pgxpool.Pool
	Table      string
	TextColumn string
	IDColumn   string
}

// Load implements Source. It runs a read-only, ordered SELECT and
// collects the text column into document strings. Table/column names
// come from trusted configuration (spec's corpus sources are operator
// supplied, not end-user request input), matching the teacher's
// distinction between config-level and request-level SQL in
// internal/database/filter.go.
func (p *PostgresSource) Load(ctx context.Context) ([]string, error) {
	query := fmt.Sprintf(
		"SELECT %s FROM %s ORDER BY %s",
		pgx.Identifier{p.TextColumn}.Sanitize(),
		pgx.Identifier{p.Table}.Sanitize(),
		pgx.Identifier{p.IDColumn}.Sanitize(),
	)

	rows, err := p.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query corpus table %s: %w", p.Table, err)
	}
	defer rows.Close()

	var docs []string
	for rows.Next() {
		var text string
		if err := rows.Scan(&text); err != nil {
			return nil, fmt.Errorf("scan corpus row from %s: %w", p.Table, err)
		}
		docs = append(docs, text)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read corpus rows from %s: %w", p.Table, err)
	}

	return docs, nil
}
