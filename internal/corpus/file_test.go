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
	"os"
	"path/filepath"
	"testing"
)

func TestFileSource_PlainLines(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "corpus.txt")
	content := "sustainable energy development\n\nrenewable energy systems\n   \nfuture cities\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	src := &FileSource{Path: path}
	docs, err := src.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	want := []string{"sustainable energy development", "renewable energy systems", "future cities"}
	if len(docs) != len(want) {
		t.Fatalf("got %v, want %v", docs, want)
	}
	for i := range want {
		if docs[i] != want[i] {
			t.Errorf("doc %d: got %q, want %q", i, docs[i], want[i])
		}
	}
}

func TestFileSource_JSONArray(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "corpus.json")
	content := `["doc one", "doc two", "doc three"]`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	src := &FileSource{Path: path}
	docs, err := src.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(docs) != 3 {
		t.Fatalf("expected 3 docs, got %d", len(docs))
	}
}

func TestFileSource_MissingFile(t *testing.T) {
	src := &FileSource{Path: "/nonexistent/path/corpus.txt"}
	if _, err := src.Load(context.Background()); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestFileSource_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	src := &FileSource{Path: "irrelevant"}
	if _, err := src.Load(ctx); err == nil {
		t.Error("expected error for canceled context")
	}
}
