//-------------------------------------------------------------------------
//
// Lexirank
//
// Portions copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package tokenizer implements the tokenizer contract consumed by the
// retriever package: it turns raw document strings into normalized
// surface tokens, and at corpus-indexing time assigns each distinct
// surface form a dense TermId.
package tokenizer

import (
	"strings"
	"unicode"

	"github.com/kljensen/snowball"
)

// TermId is a dense, non-negative term identifier assigned at index time.
type TermId = int

// Vocab maps surface tokens to the TermId assigned to them at index time.
// It is built once by TokenizeCorpus and is immutable afterward.
type Vocab struct {
	toID map[string]TermId
}

// Len returns the vocabulary size V.
func (v *Vocab) Len() int {
	return len(v.toID)
}

// Lookup resolves a surface token to its TermId. Tokens unseen at index
// time are reported as misses; callers drop them.
func (v *Vocab) Lookup(token string) (TermId, bool) {
	id, ok := v.toID[token]
	return id, ok
}

// DefaultStopWords contains common English stop words filtered out of
// both corpus and query tokenization.
var DefaultStopWords = map[string]bool{
	"a": true, "an": true, "and": true, "are": true, "as": true,
	"at": true, "be": true, "by": true, "for": true, "from": true,
	"has": true, "he": true, "in": true, "is": true, "it": true,
	"its": true, "of": true, "on": true, "or": true, "that": true,
	"the": true, "to": true, "was": true, "were": true, "will": true,
	"with": true, "this": true, "but": true, "they": true, "have": true,
	"had": true, "what": true, "when": true, "where": true, "who": true,
	"which": true, "why": true, "how": true, "all": true, "each": true,
}

// Tokenizer splits text into normalized surface tokens. It satisfies the
// retriever's tokenizer contract: corpus tokenization (Tokenize +
// assigning TermIds) and query tokenization (Tokenize alone) share the
// same normalization so that a query term can only ever resolve to a
// vocabulary entry produced by the same rules.
type Tokenizer struct {
	stopWords map[string]bool
	stem      bool
}

// Option configures a Tokenizer.
type Option func(*Tokenizer)

// WithStopWords overrides the default stop-word list. Pass nil to
// disable stop-word filtering entirely.
func WithStopWords(stopWords map[string]bool) Option {
	return func(t *Tokenizer) {
		t.stopWords = stopWords
	}
}

// WithStemming enables Snowball (Porter2) English stemming. Off by
// default: stemming policy is a tokenizer concern the core engine has
// no opinion on.
func WithStemming(enabled bool) Option {
	return func(t *Tokenizer) {
		t.stem = enabled
	}
}

// New creates a Tokenizer with default stop words and stemming disabled.
func New(opts ...Option) *Tokenizer {
	t := &Tokenizer{
		stopWords: DefaultStopWords,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Tokenize splits and normalizes text into surface tokens: lowercased,
// split on runs of non-alphanumeric characters, stop words dropped, and
// (if enabled) stemmed.
func (t *Tokenizer) Tokenize(text string) []string {
	text = strings.ToLower(text)

	var tokens []string
	var cur strings.Builder

	flush := func() {
		if cur.Len() == 0 {
			return
		}
		token := cur.String()
		cur.Reset()
		if len(token) < 2 {
			return
		}
		if t.stopWords != nil && t.stopWords[token] {
			return
		}
		if t.stem {
			if stemmed, err := snowball.Stem(token, "english", true); err == nil && stemmed != "" {
				token = stemmed
			}
		}
		tokens = append(tokens, token)
	}

	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			cur.WriteRune(r)
		} else {
			flush()
		}
	}
	flush()

	return tokens
}

// TokenizeCorpus implements the corpus-tokenization half of the
// tokenizer contract (spec §6): given ordered raw document strings, it
// returns the tokenized corpus (one TermId sequence per document,
// aligned with the input) and the vocabulary assigned while doing so.
// Vocab ownership is entirely the tokenizer's; the retriever treats
// TermIds as opaque dense integers in [0, V).
//
// The error return exists for the contract's sake — this particular
// alphanumeric-splitting/Snowball tokenizer has no failure mode — so that
// retriever.Index can propagate a failure from any tokenizer
// implementation without changing its own signature.
func (t *Tokenizer) TokenizeCorpus(texts []string) ([][]TermId, *Vocab, error) {
	vocab := &Vocab{toID: make(map[string]TermId)}
	corpus := make([][]TermId, len(texts))

	for i, text := range texts {
		surface := t.Tokenize(text)
		ids := make([]TermId, len(surface))
		for j, tok := range surface {
			id, ok := vocab.toID[tok]
			if !ok {
				id = len(vocab.toID)
				vocab.toID[tok] = id
			}
			ids[j] = id
		}
		corpus[i] = ids
	}

	return corpus, vocab, nil
}

// TokenizeQuery implements the query-tokenization half of the tokenizer
// contract: it returns surface tokens to be resolved against a fixed,
// already-built vocabulary. The retriever drops tokens missing from the
// vocabulary; this package has no opinion on that step.
func (t *Tokenizer) TokenizeQuery(query string) []string {
	return t.Tokenize(query)
}
