//-------------------------------------------------------------------------
//
// Lexirank
//
// Portions copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package retriever

// cscMatrix is a column-compressed sparse N x V matrix of precomputed
// BM25 posting contributions (spec §3, §4.3). No generic sparse-matrix
// library is used — per the spec's re-architecture note, the engine
// needs only triplet construction, conversion to column-compressed
// form, and raw (colPtr, rowIdx, values) access, so that is exactly
// what this type provides.
type cscMatrix struct {
	colPtr []int     // length V+1; column t occupies [colPtr[t], colPtr[t+1])
	rowIdx []int     // length nnz; DocIds, contiguous per column
	values []float32 // length nnz; precomputed BM25 contributions
}

// column returns the contiguous slice of (DocId, contribution) pairs
// for term t as parallel slices. An out-of-range or never-seen term
// yields an empty slice.
func (m *cscMatrix) column(t int) ([]int, []float32) {
	if t < 0 || t+1 >= len(m.colPtr) {
		return nil, nil
	}
	start, end := m.colPtr[t], m.colPtr[t+1]
	return m.rowIdx[start:end], m.values[start:end]
}

func (m *cscMatrix) nnz() int {
	if len(m.colPtr) == 0 {
		return 0
	}
	return m.colPtr[len(m.colPtr)-1]
}

// buildMatrix assembles the score matrix from the corpus statistics and
// BM25 hyperparameters (spec §4.3).
//
// Step 1: the nonzero count is exactly sum(docFreq), known up front, so
// the triplet buffers are preallocated at that size.
// Step 2: for each document, the BM25 term-frequency component is
// computed elementwise over that document's tally and multiplied by the
// relevant IDF entries, producing one posting per distinct term in the
// document.
// Step 3: the (doc, term, contribution) triplets are converted to
// column-compressed form with a counting-sort scatter keyed by term —
// column counts are already known from docFreq, so this is a single
// linear pass with no comparison sort.
func buildMatrix(idf []float32, freqs *frequencies, k1, b float32, nTerms int) *cscMatrix {
	nnz := 0
	for _, df := range freqs.docFreq {
		nnz += df
	}

	rows := make([]int, nnz)
	cols := make([]int, nnz)
	vals := make([]float32, nnz)

	offset := 0
	for d, dt := range freqs.termFreqs {
		docLen := float32(freqs.docLengths[d])
		var lengthNorm float32
		if freqs.avgDocLen > 0 {
			lengthNorm = 1 - b + b*(docLen/freqs.avgDocLen)
		} else {
			lengthNorm = 1 - b
		}

		for i, term := range dt.terms {
			tf := dt.counts[i]
			tfc := (tf * (k1 + 1)) / (tf + k1*lengthNorm)
			rows[offset] = d
			cols[offset] = term
			vals[offset] = idf[term] * tfc
			offset++
		}
	}

	return tripletsToCSC(rows, cols, vals, nTerms, freqs.docFreq)
}

// tripletsToCSC converts (row, col, value) triplets into column-compressed
// form. colCounts gives the exact number of nonzeros per column (the
// document-frequency map), so colPtr is a plain prefix sum and the
// scatter pass needs no resizing.
func tripletsToCSC(rows, cols []int, vals []float32, nTerms int, colCounts map[int]int) *cscMatrix {
	colPtr := make([]int, nTerms+1)
	for t := 0; t < nTerms; t++ {
		colPtr[t+1] = colPtr[t] + colCounts[t]
	}

	next := make([]int, nTerms)
	copy(next, colPtr[:nTerms])

	rowIdx := make([]int, len(rows))
	values := make([]float32, len(rows))

	for i := range rows {
		c := cols[i]
		pos := next[c]
		rowIdx[pos] = rows[i]
		values[pos] = vals[i]
		next[c]++
	}

	return &cscMatrix{colPtr: colPtr, rowIdx: rowIdx, values: values}
}
