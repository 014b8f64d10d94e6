//-------------------------------------------------------------------------
//
// Lexirank
//
// Portions copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"sort"

	"github.com/pgEdge/lexirank/internal/collection"
	"github.com/pgEdge/lexirank/internal/retriever"
)

// HealthResponse is the response for the health check endpoint.
type HealthResponse struct {
	Status string `json:"status"`
}

// CollectionsResponse is the response for the list collections endpoint.
type CollectionsResponse struct {
	Collections []string `json:"collections"`
}

// QueryRequest is the request body for a single-query search.
type QueryRequest struct {
	Query string `json:"query"`
	N     int    `json:"n"`
}

// QueryBatchRequest is the request body for a batched search.
type QueryBatchRequest struct {
	Queries []string `json:"queries"`
	N       int      `json:"n"`
}

// ScoredDoc is one ranked result in a JSON response. The HTTP layer
// sorts these by descending score before responding; the underlying
// retriever.TopN contract makes no ordering guarantee of its own.
type ScoredDoc struct {
	DocId int     `json:"doc_id"`
	Score float32 `json:"score"`
}

// QueryResponse is the response for a single-query search.
type QueryResponse struct {
	Results []ScoredDoc `json:"results"`
}

// QueryBatchResponse is the response for a batched search.
type QueryBatchResponse struct {
	Results [][]ScoredDoc `json:"results"`
}

// ErrorResponse is the standard error response format.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// handleHealth handles the GET /health endpoint.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, HealthResponse{Status: "healthy"})
}

// handleListCollections handles the GET /collections endpoint.
func (s *Server) handleListCollections(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, CollectionsResponse{Collections: s.manager.List()})
}

// handleReindex handles the POST /collections/{name}/reindex endpoint.
func (s *Server) handleReindex(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")

	if err := s.manager.Reindex(r.Context(), name); err != nil {
		s.respondCollectionError(w, name, err)
		return
	}

	s.respondJSON(w, http.StatusOK, HealthResponse{Status: "reindexed"})
}

// handleQuery handles the POST /collections/{name}/query endpoint.
func (s *Server) handleQuery(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")

	var req QueryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "INVALID_REQUEST", "invalid request body: "+err.Error())
		return
	}
	if req.Query == "" {
		s.respondError(w, http.StatusBadRequest, "INVALID_REQUEST", "query is required")
		return
	}
	if req.N <= 0 {
		req.N = 10
	}

	results, err := s.manager.Query(name, req.Query, req.N)
	if err != nil {
		s.respondCollectionError(w, name, err)
		return
	}

	s.respondJSON(w, http.StatusOK, QueryResponse{Results: toScoredDocs(results)})
}

// handleQueryBatch handles the POST /collections/{name}/query/batch endpoint.
func (s *Server) handleQueryBatch(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")

	var req QueryBatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "INVALID_REQUEST", "invalid request body: "+err.Error())
		return
	}
	if len(req.Queries) == 0 {
		s.respondError(w, http.StatusBadRequest, "INVALID_REQUEST", "queries must be non-empty")
		return
	}
	if req.N <= 0 {
		req.N = 10
	}

	batched, err := s.manager.QueryBatch(r.Context(), name, req.Queries, req.N)
	if err != nil {
		s.respondCollectionError(w, name, err)
		return
	}

	resp := QueryBatchResponse{Results: make([][]ScoredDoc, len(batched))}
	for i, results := range batched {
		resp.Results[i] = toScoredDocs(results)
	}

	s.respondJSON(w, http.StatusOK, resp)
}

// toScoredDocs converts the retriever's unordered top-k slice into a
// response payload sorted by descending score, breaking ties by DocId
// for a deterministic response body.
func toScoredDocs(results []retriever.Result) []ScoredDoc {
	docs := make([]ScoredDoc, len(results))
	for i, r := range results {
		docs[i] = ScoredDoc{DocId: r.DocId, Score: r.Score}
	}
	sort.Slice(docs, func(i, j int) bool {
		if docs[i].Score != docs[j].Score {
			return docs[i].Score > docs[j].Score
		}
		return docs[i].DocId < docs[j].DocId
	})
	return docs
}

// respondCollectionError maps a collection-lookup error to the
// appropriate HTTP status.
func (s *Server) respondCollectionError(w http.ResponseWriter, name string, err error) {
	if errors.Is(err, collection.ErrNotFound) {
		s.respondError(w, http.StatusNotFound, "COLLECTION_NOT_FOUND", "collection not found: "+name)
		return
	}
	s.logger.Error("collection operation failed", "collection", name, "error", err)
	s.respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
}

// respondJSON sends a JSON response.
func (s *Server) respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error("failed to encode response", "error", err)
	}
}

// respondError sends an error response.
func (s *Server) respondError(w http.ResponseWriter, status int, code, message string) {
	s.respondJSON(w, status, ErrorResponse{
		Error: ErrorDetail{
			Code:    code,
			Message: message,
		},
	})
}
