package ingest

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/DanielCater/totsearch/internal/db"
	"github.com/DanielCater/totsearch/internal/repository/index"
)

// batchSize bounds how many documents go out in one pipelined write.
const batchSize = 100

// maxLineBytes bounds a single corpus line; payloads are short documents,
// not books.
const maxLineBytes = 1 << 20

// Document is one corpus entry: an identifier and the raw payload whose
// first line doubles as the title.
type Document struct {
	ID       string `json:"id"`
	Contents string `json:"contents"`
}

// Service loads a JSONL corpus into the index store.
type Service struct {
	store     Store
	logger    *zap.Logger
	indexName string
	keyPrefix string
}

// New creates an ingest service bound to one index and key prefix.
func New(store Store, logger *zap.Logger, indexName, keyPrefix string) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{store: store, logger: logger, indexName: indexName, keyPrefix: keyPrefix}
}

// EnsureIndex creates the full-text index over the contents field when it
// does not exist yet. Racing creators are tolerated.
func (s *Service) EnsureIndex(ctx context.Context) error {
	exists, err := s.store.IndexExists(ctx, s.indexName)
	if err != nil {
		return fmt.Errorf("check index: %w", err)
	}
	if exists {
		return nil
	}

	def := &db.IndexDefinition{
		Name:        s.indexName,
		StorageType: db.StorageHash,
		Prefixes:    []string{s.keyPrefix},
		Fields: []db.IndexField{
			{Name: index.ContentsField, Type: db.IndexFieldText},
		},
	}
	if err := s.store.CreateIndex(ctx, def); err != nil {
		if errors.Is(err, db.ErrIndexExists) {
			return nil
		}
		return fmt.Errorf("create index: %w", err)
	}

	s.logger.Info("index created", zap.String("index", s.indexName))
	return nil
}

// Load reads a JSONL stream of documents and writes them in batches.
// Returns the number of documents stored. A malformed line aborts the load
// with its line number; everything already flushed stays stored.
func (s *Service) Load(ctx context.Context, r io.Reader) (int, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var (
		batch []db.HashSetItem
		total int
		line  int
	)

	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		if err := s.store.HSetMulti(ctx, batch); err != nil {
			return fmt.Errorf("store batch ending at line %d: %w", line, err)
		}
		total += len(batch)
		batch = batch[:0]
		return nil
	}

	for scanner.Scan() {
		line++
		raw := scanner.Bytes()
		if len(raw) == 0 {
			continue
		}

		var doc Document
		if err := json.Unmarshal(raw, &doc); err != nil {
			return total, fmt.Errorf("line %d: %w", line, err)
		}
		if doc.ID == "" || doc.Contents == "" {
			return total, fmt.Errorf("line %d: id and contents are required", line)
		}

		batch = append(batch, db.HashSetItem{
			Key:    s.keyPrefix + doc.ID,
			Fields: map[string]string{index.ContentsField: doc.Contents},
		})
		if len(batch) == batchSize {
			if err := flush(); err != nil {
				return total, err
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return total, fmt.Errorf("read corpus: %w", err)
	}
	if err := flush(); err != nil {
		return total, err
	}

	s.logger.Info("corpus loaded", zap.Int("documents", total))
	return total, nil
}
