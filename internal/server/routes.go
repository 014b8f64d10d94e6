//-------------------------------------------------------------------------
//
// Lexirank
//
// Portions copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package server

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() {
	s.mux.HandleFunc("GET /health", s.handleHealth)
	s.mux.HandleFunc("GET /collections", s.handleListCollections)
	s.mux.HandleFunc("POST /collections/{name}/reindex", s.handleReindex)
	s.mux.HandleFunc("POST /collections/{name}/query", s.handleQuery)
	s.mux.HandleFunc("POST /collections/{name}/query/batch", s.handleQueryBatch)
}
