//-------------------------------------------------------------------------
//
// Lexirank
//
// Portions copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package tokenizer

import "testing"

func TestTokenize_LowercaseAndSplit(t *testing.T) {
	tok := New(WithStopWords(nil))
	got := tok.Tokenize("Modern Cities, Modern Infrastructure!")
	want := []string{"modern", "cities", "modern", "infrastructure"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: got %q, want %q", i, got[i], want[i])
		}
	}
}

func TestTokenize_StopWordsDropped(t *testing.T) {
	tok := New()
	got := tok.Tokenize("the cities and the infrastructure")
	for _, g := range got {
		if DefaultStopWords[g] {
			t.Errorf("stop word %q leaked through", g)
		}
	}
}

func TestTokenize_ShortTokensDropped(t *testing.T) {
	tok := New(WithStopWords(nil))
	got := tok.Tokenize("a i go ab")
	want := []string{"go", "ab"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestTokenize_Stemming(t *testing.T) {
	tok := New(WithStopWords(nil), WithStemming(true))
	got := tok.Tokenize("running runner runs")
	if len(got) != 3 {
		t.Fatalf("expected 3 tokens, got %v", got)
	}
	if got[0] != got[2] {
		t.Errorf("expected 'running' and 'runs' to stem identically, got %q vs %q", got[0], got[2])
	}
}

func TestTokenizeCorpus_AssignsDenseIds(t *testing.T) {
	tok := New(WithStopWords(nil))
	corpus, vocab, _ := tok.TokenizeCorpus([]string{
		"modern cities",
		"cities today",
	})

	if vocab.Len() != 3 {
		t.Fatalf("expected 3 distinct terms, got %d", vocab.Len())
	}
	if len(corpus) != 2 {
		t.Fatalf("expected 2 documents, got %d", len(corpus))
	}

	modernID, ok := vocab.Lookup("modern")
	if !ok {
		t.Fatal("expected 'modern' in vocab")
	}
	citiesID, ok := vocab.Lookup("cities")
	if !ok {
		t.Fatal("expected 'cities' in vocab")
	}
	if modernID == citiesID {
		t.Error("expected distinct TermIds for distinct terms")
	}
	if corpus[0][0] != modernID || corpus[0][1] != citiesID {
		t.Errorf("doc 0 term ids = %v, want [%d %d]", corpus[0], modernID, citiesID)
	}

	for id := 0; id < vocab.Len(); id++ {
		found := false
		for term, tid := range vocab.toID {
			if tid == id {
				found = true
				_ = term
				break
			}
		}
		if !found {
			t.Errorf("TermId %d has no surface form — vocab is not dense in [0, V)", id)
		}
	}
}

func TestTokenizeQuery_MatchesCorpusNormalization(t *testing.T) {
	tok := New()
	_, vocab, _ := tok.TokenizeCorpus([]string{"Sustainable Energy Development"})

	queryTokens := tok.TokenizeQuery("SUSTAINABLE energy")
	for _, qt := range queryTokens {
		if _, ok := vocab.Lookup(qt); !ok {
			t.Errorf("query token %q should resolve against corpus vocabulary", qt)
		}
	}
}

func TestTokenizeQuery_UnknownTokenMisses(t *testing.T) {
	tok := New()
	_, vocab, _ := tok.TokenizeCorpus([]string{"sustainable energy"})

	if _, ok := vocab.Lookup("xyzzy"); ok {
		t.Error("expected 'xyzzy' to miss the vocabulary")
	}
}
