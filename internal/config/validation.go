//-------------------------------------------------------------------------
//
// Lexirank
//
// Portions copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package config

import (
	"errors"
	"fmt"
)

// Validate checks the configuration for structural errors, aggregating
// every problem found rather than stopping at the first.
func (c *Config) Validate() error {
	var errs []error

	if c.Server.Port < 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port %d out of range", c.Server.Port))
	}

	seen := make(map[string]bool, len(c.Collections))
	for i, coll := range c.Collections {
		if coll.Name == "" {
			errs = append(errs, fmt.Errorf("collections[%d]: name is required", i))
			continue
		}
		if seen[coll.Name] {
			errs = append(errs, fmt.Errorf("collections[%d]: duplicate collection name %q", i, coll.Name))
		}
		seen[coll.Name] = true

		if err := coll.Source.validate(); err != nil {
			errs = append(errs, fmt.Errorf("collection %q: %w", coll.Name, err))
		}
	}

	return errors.Join(errs...)
}

func (s *SourceConfig) validate() error {
	switch s.Type {
	case SourceTypeFile:
		if s.Path == "" {
			return errors.New("source.path is required for type \"file\"")
		}
	case SourceTypePostgres:
		var missing []string
		if s.Host == "" {
			missing = append(missing, "host")
		}
		if s.Database == "" {
			missing = append(missing, "database")
		}
		if s.Table == "" {
			missing = append(missing, "table")
		}
		if s.TextColumn == "" {
			missing = append(missing, "text_column")
		}
		if s.IDColumn == "" {
			missing = append(missing, "id_column")
		}
		if len(missing) > 0 {
			return fmt.Errorf("source missing required postgres fields: %v", missing)
		}
	default:
		return fmt.Errorf("unknown source type %q (want %q or %q)", s.Type, SourceTypeFile, SourceTypePostgres)
	}
	return nil
}
