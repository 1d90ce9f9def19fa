package main

import (
	"time"

	"go.uber.org/zap"

	"github.com/DanielCater/totsearch/internal/config"
	"github.com/DanielCater/totsearch/internal/db"
	indexrepo "github.com/DanielCater/totsearch/internal/repository/index"
	openaiTransport "github.com/DanielCater/totsearch/internal/transport/openai"
	decomposeuc "github.com/DanielCater/totsearch/internal/usecase/decompose"
	healthuc "github.com/DanielCater/totsearch/internal/usecase/health"
	searchuc "github.com/DanielCater/totsearch/internal/usecase/search"
)

// buildSearchService wires the retrieval pipeline: index repository,
// optional facet decomposer, and the search service. The returned checker
// is nil when no decomposer is configured.
func buildSearchService(
	cfg config.Config, store db.Store, logger *zap.Logger,
) (*searchuc.Service, healthuc.DecomposerChecker) {
	idxRepo := indexrepo.New(store, cfg.Search.IndexName, cfg.Search.KeyPrefix)

	// Pass nil interfaces (not typed nil pointers) when the decomposer is
	// not configured; searches then run on the plain query alone.
	var decomposer searchuc.Decomposer
	var decomposerCheck healthuc.DecomposerChecker
	if cfg.Decomposer.APIKey != "" {
		completer := openaiTransport.NewCompleter(&openaiTransport.Config{
			APIKey:  cfg.Decomposer.APIKey,
			BaseURL: cfg.Decomposer.BaseURL,
			Model:   cfg.Decomposer.Model,
			Logger:  logger,
		})
		decomposer = decomposeuc.New(completer, logger)
		decomposerCheck = completer
		logger.Info("Decomposer created", zap.String("model", cfg.Decomposer.Model))
	} else {
		logger.Warn("No decomposer API key configured, facet decomposition disabled")
	}

	svc := searchuc.New(idxRepo, decomposer, logger).
		WithProbeLimits(cfg.Search.CompositeTopK, cfg.Search.SubQueryTopK, cfg.Search.ProbeParallelism).
		WithDecomposeTimeout(time.Duration(cfg.Decomposer.TimeoutSec) * time.Second)

	return svc, decomposerCheck
}
