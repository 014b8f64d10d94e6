//-------------------------------------------------------------------------
//
// Lexirank
//
// Portions copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package corpus provides pluggable sources of the raw document strings
// fed to a retriever's Index call. The core engine takes no position on
// where documents come from (spec §1 Non-goals: "no disk-resident index
// format... serialization is left to callers"); this package supplies
// the two sources a pgEdge-style deployment needs: a flat file and a
// PostgreSQL table.
package corpus

import "context"

// Source loads an ordered sequence of raw document strings.
type Source interface {
	Load(ctx context.Context) ([]string, error)
}
