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
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads and parses the configuration file at path, applies
// per-collection defaults, and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file %s: %w", path, err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}

	applyDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// applyDefaults fills in k1/b for collections that left them at the
// YAML zero value.
func applyDefaults(cfg *Config) {
	for i := range cfg.Collections {
		c := &cfg.Collections[i]
		if c.K1 == 0 {
			c.K1 = DefaultK1
		}
		if c.B == 0 {
			c.B = DefaultB
		}
		if c.Source.Type == SourceTypePostgres {
			if c.Source.Port == 0 {
				c.Source.Port = 5432
			}
			if c.Source.SSLMode == "" {
				c.Source.SSLMode = "prefer"
			}
		}
	}
}
