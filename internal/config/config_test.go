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
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "lexirank.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_AppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
collections:
  - name: articles
    source:
      type: file
      path: ./corpus.json
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Server.Port)
	}
	if len(cfg.Collections) != 1 {
		t.Fatalf("expected 1 collection, got %d", len(cfg.Collections))
	}
	if cfg.Collections[0].K1 != DefaultK1 {
		t.Errorf("expected default k1 %f, got %f", DefaultK1, cfg.Collections[0].K1)
	}
	if cfg.Collections[0].B != DefaultB {
		t.Errorf("expected default b %f, got %f", DefaultB, cfg.Collections[0].B)
	}
}

func TestLoad_PostgresDefaults(t *testing.T) {
	path := writeConfig(t, `
collections:
  - name: catalog
    source:
      type: postgres
      host: localhost
      database: shop
      table: products
      text_column: description
      id_column: id
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	src := cfg.Collections[0].Source
	if src.Port != 5432 {
		t.Errorf("expected default postgres port 5432, got %d", src.Port)
	}
	if src.SSLMode != "prefer" {
		t.Errorf("expected default ssl_mode 'prefer', got %q", src.SSLMode)
	}
}

func TestLoad_RejectsDuplicateNames(t *testing.T) {
	path := writeConfig(t, `
collections:
  - name: articles
    source: {type: file, path: a.json}
  - name: articles
    source: {type: file, path: b.json}
`)

	if _, err := Load(path); err == nil {
		t.Error("expected error for duplicate collection names")
	}
}

func TestLoad_RejectsUnknownSourceType(t *testing.T) {
	path := writeConfig(t, `
collections:
  - name: articles
    source: {type: carrier-pigeon}
`)

	if _, err := Load(path); err == nil {
		t.Error("expected error for unknown source type")
	}
}

func TestLoad_RejectsMissingPostgresFields(t *testing.T) {
	path := writeConfig(t, `
collections:
  - name: catalog
    source: {type: postgres, host: localhost}
`)

	if _, err := Load(path); err == nil {
		t.Error("expected error for missing postgres fields")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/lexirank.yaml"); err == nil {
		t.Error("expected error for missing config file")
	}
}
