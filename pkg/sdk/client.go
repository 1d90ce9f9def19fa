// Package sdk provides an embedded totsearch client: it talks to the index
// store directly, without going through the HTTP API.
package sdk

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/DanielCater/totsearch/internal/db"
	dbRedis "github.com/DanielCater/totsearch/internal/db/redis"
	"github.com/DanielCater/totsearch/internal/domain/result"
	indexrepo "github.com/DanielCater/totsearch/internal/repository/index"
	openaiTransport "github.com/DanielCater/totsearch/internal/transport/openai"
	decomposeuc "github.com/DanielCater/totsearch/internal/usecase/decompose"
	healthuc "github.com/DanielCater/totsearch/internal/usecase/health"
	ingestuc "github.com/DanielCater/totsearch/internal/usecase/ingest"
	searchuc "github.com/DanielCater/totsearch/internal/usecase/search"
)

const defaultReadinessTimeout = 10 * time.Second

// Internal interfaces so tests can substitute the use cases.
type searchUseCase interface {
	Search(ctx context.Context, rawQuery string, useEnhanced bool) (map[string]result.Record, error)
}

type ingestUseCase interface {
	EnsureIndex(ctx context.Context) error
	Load(ctx context.Context, r io.Reader) (int, error)
}

type healthUseCase interface {
	Check(ctx context.Context) healthuc.Report
}

// Client is the totsearch SDK entry point.
type Client struct {
	store     db.Store
	searchSvc searchUseCase
	ingestSvc ingestUseCase
	healthSvc healthUseCase
}

// New creates a Client and connects to the index store.
// The provided context covers the initial readiness check.
func New(ctx context.Context, opts ...Option) (*Client, error) {
	cfg := defaultClientConfig()
	for _, o := range opts {
		o.apply(&cfg)
	}

	if len(cfg.addrs) == 0 {
		return nil, errors.New("totsearch: database address required (use WithRedis)")
	}

	store, err := dbRedis.NewStore(dbRedis.Config{
		Addrs:    cfg.addrs,
		Username: cfg.username,
		Password: cfg.password,
	})
	if err != nil {
		return nil, fmt.Errorf("totsearch: create store: %w", err)
	}

	if err := store.WaitForReady(ctx, defaultReadinessTimeout); err != nil {
		store.Close()
		return nil, fmt.Errorf("totsearch: database not ready: %w", err)
	}

	idxRepo := indexrepo.New(store, cfg.indexName, cfg.keyPrefix)

	var decomposer searchuc.Decomposer
	var decomposerCheck healthuc.DecomposerChecker
	if cfg.decomposerKey != "" {
		completer := openaiTransport.NewCompleter(&openaiTransport.Config{
			APIKey:  cfg.decomposerKey,
			BaseURL: cfg.decomposerURL,
			Model:   cfg.decomposerModel,
			Logger:  cfg.logger,
		})
		decomposer = decomposeuc.New(completer, cfg.logger)
		decomposerCheck = completer
	}

	return &Client{
		store:     store,
		searchSvc: searchuc.New(idxRepo, decomposer, cfg.logger),
		ingestSvc: ingestuc.New(store, cfg.logger, cfg.indexName, cfg.keyPrefix),
		healthSvc: healthuc.New(store, decomposerCheck),
	}, nil
}

// Search runs the retrieval pipeline and returns hits ordered by rank.
func (c *Client) Search(ctx context.Context, query string, enhanced bool) ([]Result, error) {
	records, err := c.searchSvc.Search(ctx, query, enhanced)
	if err != nil {
		return nil, fmt.Errorf("totsearch: search: %w", err)
	}

	out := make([]Result, 0, len(records))
	for _, r := range records {
		out = append(out, Result{
			DocID:   r.DocID(),
			Rank:    r.Rank(),
			Score:   r.Score(),
			Title:   r.Title(),
			Snippet: r.Snippet(),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Rank < out[j].Rank })
	return out, nil
}

// LoadCorpus ensures the index exists and loads a JSONL document stream.
// Returns the number of documents stored.
func (c *Client) LoadCorpus(ctx context.Context, r io.Reader) (int, error) {
	if err := c.ingestSvc.EnsureIndex(ctx); err != nil {
		return 0, fmt.Errorf("totsearch: ensure index: %w", err)
	}
	n, err := c.ingestSvc.Load(ctx, r)
	if err != nil {
		return n, fmt.Errorf("totsearch: load corpus: %w", err)
	}
	return n, nil
}

// Health reports component availability.
func (c *Client) Health(ctx context.Context) Health {
	report := c.healthSvc.Check(ctx)
	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}
	return Health{Status: string(report.Status), Checks: checks}
}

// Close releases the store connection.
func (c *Client) Close() {
	if c.store != nil {
		c.store.Close()
	}
}
