package ingest

import (
	"context"

	"github.com/DanielCater/totsearch/internal/db"
)

// Store is the storage surface needed to load a corpus.
type Store interface {
	HSetMulti(ctx context.Context, items []db.HashSetItem) error
	CreateIndex(ctx context.Context, def *db.IndexDefinition) error
	IndexExists(ctx context.Context, name string) (bool, error)
}
