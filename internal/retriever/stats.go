//-------------------------------------------------------------------------
//
// Lexirank
//
// Portions copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package retriever

import (
	"math"

	"github.com/pgEdge/lexirank/internal/tokenizer"
)

// docTerms holds one document's tally as two parallel slices: the
// distinct TermIds it contains, and their counts (pre-cast to float32
// so the matrix assembler never re-casts).
type docTerms struct {
	terms  []tokenizer.TermId
	counts []float32
}

// frequencies is the output of the statistics builder (spec §4.2).
type frequencies struct {
	docFreq    map[tokenizer.TermId]int // term -> number of documents containing it
	termFreqs  []docTerms               // per document, aligned with docLengths
	docLengths []int                    // token count per document, duplicates included
	avgDocLen  float32
}

// computeFrequencies folds a tokenized corpus into document frequencies,
// per-document term tallies, and document lengths, per spec §4.2.
func computeFrequencies(corpus [][]tokenizer.TermId) *frequencies {
	docFreq := make(map[tokenizer.TermId]int)
	termFreqs := make([]docTerms, len(corpus))
	docLengths := make([]int, len(corpus))

	var totalLen int
	for d, doc := range corpus {
		tally := make(map[tokenizer.TermId]int, len(doc))
		for _, term := range doc {
			tally[term]++
		}

		terms := make([]tokenizer.TermId, 0, len(tally))
		counts := make([]float32, 0, len(tally))
		for term, count := range tally {
			docFreq[term]++
			terms = append(terms, term)
			counts = append(counts, float32(count))
		}

		termFreqs[d] = docTerms{terms: terms, counts: counts}
		docLengths[d] = len(doc)
		totalLen += len(doc)
	}

	var avgDocLen float32
	if len(corpus) > 0 {
		avgDocLen = float32(totalLen) / float32(len(corpus))
	}

	return &frequencies{
		docFreq:    docFreq,
		termFreqs:  termFreqs,
		docLengths: docLengths,
		avgDocLen:  avgDocLen,
	}
}

// computeIDF builds the dense IDF vector of length V (spec §3): for a
// term with document frequency df > 0, idf = ln(N) - ln(df); absent
// terms are left at zero. This is the plain, unsmoothed variant named
// in spec §3/§9 — deliberately not the Lucene-style smoothed form (see
// DESIGN.md).
func computeIDF(nTerms, nDocs int, docFreq map[tokenizer.TermId]int) []float32 {
	idf := make([]float32, nTerms)
	if nDocs == 0 {
		return idf
	}

	logN := float32(math.Log(float64(nDocs)))
	for term, df := range docFreq {
		idf[term] = logN - float32(math.Log(float64(df)))
	}
	return idf
}
