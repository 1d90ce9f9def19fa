package index

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/DanielCater/totsearch/internal/db"
	"github.com/DanielCater/totsearch/internal/domain"
	"github.com/DanielCater/totsearch/internal/domain/query"
)

// ContentsField is the hash field holding the document payload and the only
// field the full-text index covers.
const ContentsField = "contents"

// store is the consumer interface for index operations (ISP).
type store interface {
	SearchText(ctx context.Context, q *db.TextQuery) (*db.SearchResult, error)
	HGetAll(ctx context.Context, key string) (map[string]string, error)
}

// Repo implements usecase/search.Index over a full-text document store.
type Repo struct {
	store     store
	indexName string
	keyPrefix string
}

// New creates an index repository bound to one index and key prefix.
func New(s store, indexName, keyPrefix string) *Repo {
	return &Repo{store: s, indexName: indexName, keyPrefix: keyPrefix}
}

// SupportsQueryBoosts reports whether the backend honors per-term weight
// syntax inside a query string. RediSearch does not, so boosted terms must
// be issued as separate weighted probes.
func (r *Repo) SupportsQueryBoosts(_ context.Context) bool {
	return false
}

// Probe runs one full-text probe and returns the candidates in backend rank
// order, best first. Document IDs are returned without the storage key prefix.
func (r *Repo) Probe(ctx context.Context, queryText string, topK int) ([]query.Candidate, error) {
	q := &db.TextQuery{
		IndexName: r.indexName,
		Query:     queryText,
		TopK:      topK,
	}

	sr, err := r.store.SearchText(ctx, q)
	if err != nil {
		if errors.Is(err, db.ErrIndexNotFound) {
			return nil, fmt.Errorf("%w: %w", domain.ErrIndexUnavailable, err)
		}
		return nil, fmt.Errorf("search text: %w", err)
	}

	out := make([]query.Candidate, 0, len(sr.Entries))
	for _, e := range sr.Entries {
		out = append(out, query.Candidate{
			DocID: strings.TrimPrefix(e.Key, r.keyPrefix),
			Score: e.Score,
		})
	}
	return out, nil
}

// FetchRaw returns the stored payload of one document.
func (r *Repo) FetchRaw(ctx context.Context, docID string) (string, error) {
	fields, err := r.store.HGetAll(ctx, r.keyPrefix+docID)
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", docID, err)
	}

	contents, ok := fields[ContentsField]
	if !ok || contents == "" {
		return "", fmt.Errorf("fetch %s: %w", docID, domain.ErrDocumentNotFound)
	}
	return contents, nil
}
