//-------------------------------------------------------------------------
//
// Lexirank
//
// Portions copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package retriever implements a batch-indexed, read-only BM25 lexical
// retrieval engine: a statistics builder, a column-compressed sparse
// scoring-matrix assembler, and a query evaluator that sums precomputed
// posting contributions and extracts the top-N documents without a
// full sort.
package retriever

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/pgEdge/lexirank/internal/tokenizer"
)

// Tokenizer is the external collaborator contract (spec §6) the
// retriever depends on: corpus tokenization assigns and owns TermIds
// and the vocabulary; query tokenization returns surface tokens to be
// resolved against that fixed vocabulary.
type Tokenizer interface {
	TokenizeCorpus(texts []string) ([][]tokenizer.TermId, *tokenizer.Vocab, error)
	TokenizeQuery(query string) []string
}

// Retriever holds the BM25 hyperparameters, tokenizer, vocabulary, and
// score matrix for one indexed corpus (spec §3 "Retriever state").
// Before the first successful Index call it is self-consistent in its
// empty form: N = 0, empty vocabulary, empty matrix, every query
// returns no results.
type Retriever struct {
	k1 float32
	b  float32

	tok Tokenizer

	vocab  *tokenizer.Vocab
	nDocs  int
	matrix *cscMatrix
}

// New constructs a Retriever with the given BM25 hyperparameters and
// the default tokenizer. Typical values are k1 in [1.2, 2.0] and b in
// [0, 1]; out-of-range values are accepted and simply produce an
// implementation-defined ranking (spec §4.1).
func New(k1, b float64) *Retriever {
	return NewWithTokenizer(k1, b, tokenizer.New())
}

// NewWithTokenizer constructs a Retriever with a caller-supplied
// tokenizer, for swapping in a different normalization/stemming policy
// without touching the scoring core.
func NewWithTokenizer(k1, b float64, tok Tokenizer) *Retriever {
	return &Retriever{
		k1:     float32(k1),
		b:      float32(b),
		tok:    tok,
		vocab:  &tokenizer.Vocab{},
		matrix: &cscMatrix{},
	}
}

// Index replaces any existing index with one built from the ordered
// corpus of raw document strings; DocIds are assigned in input order
// (spec §4.1). It fails only if the tokenizer fails, in which case the
// Retriever is left exactly as it was before the call — there is no
// partial-index state.
func (r *Retriever) Index(texts []string) error {
	corpus, vocab, err := r.tok.TokenizeCorpus(texts)
	if err != nil {
		return err
	}

	freqs := computeFrequencies(corpus)
	idf := computeIDF(vocab.Len(), len(corpus), freqs.docFreq)
	matrix := buildMatrix(idf, freqs, r.k1, r.b, vocab.Len())

	r.vocab = vocab
	r.nDocs = len(corpus)
	r.matrix = matrix

	return nil
}

// TopN returns up to n (DocId, score) pairs ranked by descending score
// (spec §4.4). If the query tokenizes to no in-vocabulary terms, or the
// Retriever has never been successfully indexed, it returns the empty
// slice. n > N is clamped to N; n == 0 returns no results. Results
// within the returned slice are NOT guaranteed to be sorted — callers
// that need descending order must sort the slice themselves.
func (r *Retriever) TopN(query string, n int) []Result {
	if r.nDocs == 0 || n <= 0 {
		return nil
	}

	terms := r.resolveQueryTerms(query)
	if len(terms) == 0 {
		return nil
	}

	scores := make([]float32, r.nDocs)
	for _, t := range terms {
		docs, vals := r.matrix.column(t)
		for i, d := range docs {
			scores[d] += vals[i]
		}
	}

	results := make([]Result, r.nDocs)
	for d, s := range scores {
		results[d] = Result{DocId: d, Score: s}
	}

	k := n
	if k > r.nDocs {
		k = r.nDocs
	}
	selectTopK(results, k)

	return results[:k]
}

// TopNBatched is semantically equivalent to mapping TopN over queries,
// but evaluates them concurrently — each query gets its own
// accumulator over the shared, immutable index — and returns results
// in the same order as the input (spec §4.1/§5).
func (r *Retriever) TopNBatched(ctx context.Context, queries []string, n int) ([][]Result, error) {
	results := make([][]Result, len(queries))

	g, _ := errgroup.WithContext(ctx)
	for i, q := range queries {
		i, q := i, q
		g.Go(func() error {
			results[i] = r.TopN(q, n)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// resolveQueryTerms tokenizes the query and maps each surface token
// through the vocabulary, dropping misses silently; duplicated terms
// are kept (spec §4.4), so repeated query terms contribute their
// posting more than once.
func (r *Retriever) resolveQueryTerms(query string) []tokenizer.TermId {
	surface := r.tok.TokenizeQuery(query)
	terms := make([]tokenizer.TermId, 0, len(surface))
	for _, tok := range surface {
		if id, ok := r.vocab.Lookup(tok); ok {
			terms = append(terms, id)
		}
	}
	return terms
}

// NDocs returns N, the number of documents in the current index.
func (r *Retriever) NDocs() int {
	return r.nDocs
}

// VocabSize returns V, the vocabulary size of the current index.
func (r *Retriever) VocabSize() int {
	return r.vocab.Len()
}
