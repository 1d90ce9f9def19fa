package search

import (
	"context"

	"github.com/DanielCater/totsearch/internal/domain/facets"
	"github.com/DanielCater/totsearch/internal/domain/query"
)

// Index is the full-text retrieval backend.
type Index interface {
	// Probe runs one full-text query and returns candidates best first.
	Probe(ctx context.Context, queryText string, topK int) ([]query.Candidate, error)
	// FetchRaw returns the stored payload of one document.
	FetchRaw(ctx context.Context, docID string) (string, error)
	// SupportsQueryBoosts reports whether "term"^N weight syntax is honored
	// inside a query string.
	SupportsQueryBoosts(ctx context.Context) bool
}

// Decomposer extracts structured facets from a raw query.
type Decomposer interface {
	Decompose(ctx context.Context, rawQuery string) (facets.Set, error)
}
