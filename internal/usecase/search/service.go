package search

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/DanielCater/totsearch/internal/domain/facets"
	"github.com/DanielCater/totsearch/internal/domain/policy"
	"github.com/DanielCater/totsearch/internal/domain/result"
	"github.com/DanielCater/totsearch/internal/metrics"
)

const (
	defaultCompositeTopK    = 100
	defaultSubQueryTopK     = 50
	defaultProbeParallelism = 8
	defaultDecomposeTimeout = 20 * time.Second
)

// Service orchestrates the retrieval pipeline: decompose, build probes,
// fan out, fuse, annotate.
type Service struct {
	index      Index
	decomposer Decomposer
	logger     *zap.Logger

	compositeTopK    int
	subQueryTopK     int
	probeParallelism int
	decomposeTimeout time.Duration
}

// New creates a search service with default probe limits.
func New(index Index, decomposer Decomposer, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		index:            index,
		decomposer:       decomposer,
		logger:           logger,
		compositeTopK:    defaultCompositeTopK,
		subQueryTopK:     defaultSubQueryTopK,
		probeParallelism: defaultProbeParallelism,
		decomposeTimeout: defaultDecomposeTimeout,
	}
}

// WithProbeLimits overrides the probe depths and fan-out parallelism.
// Zero values keep the current setting.
func (s *Service) WithProbeLimits(compositeTopK, subQueryTopK, parallelism int) *Service {
	if compositeTopK > 0 {
		s.compositeTopK = compositeTopK
	}
	if subQueryTopK > 0 {
		s.subQueryTopK = subQueryTopK
	}
	if parallelism > 0 {
		s.probeParallelism = parallelism
	}
	return s
}

// WithDecomposeTimeout bounds how long one search waits for facet
// decomposition before degrading to the plain query.
func (s *Service) WithDecomposeTimeout(d time.Duration) *Service {
	if d > 0 {
		s.decomposeTimeout = d
	}
	return s
}

// Search runs the full pipeline for one query and returns the annotated
// results keyed by document ID. Ranks are 1-based and dense. The pipeline
// degrades rather than fails: decomposition trouble falls back to the plain
// query, failed probes drop out, and documents whose payload cannot be
// fetched are skipped with the remaining ranks renumbered.
func (s *Service) Search(
	ctx context.Context, rawQuery string, useEnhanced bool,
) (map[string]result.Record, error) {
	pol := policy.ForVariant(useEnhanced)

	start := time.Now()
	defer func() {
		metrics.SearchDuration.WithLabelValues(pol.Name).Observe(time.Since(start).Seconds())
	}()

	if strings.TrimSpace(rawQuery) == "" {
		metrics.SearchesTotal.WithLabelValues(pol.Name, "empty").Inc()
		return map[string]result.Record{}, nil
	}

	normalized, tokens := normalizeQuery(rawQuery)

	fs := s.decompose(ctx, rawQuery)
	if pol.FilterFacets {
		fs = filterFacets(fs)
	}

	comp := buildComposite(normalized, fs, pol)
	subs := buildSubQueries(normalized, fs)

	specs := s.planProbes(ctx, comp, subs)
	lists := s.runProbes(ctx, specs)
	fused := fuseRRF(lists, pol.RRFConstant, pol.TopK)

	records := make(map[string]result.Record, len(fused))
	for _, f := range fused {
		if ctx.Err() != nil {
			break
		}
		payload, err := s.index.FetchRaw(ctx, f.DocID)
		if err != nil {
			s.logger.Debug("payload fetch failed, skipping document",
				zap.String("doc_id", f.DocID),
				zap.Error(err),
			)
			continue
		}
		title, snippet := annotate(payload, tokens, pol.Marker)
		records[f.DocID] = result.New(f.DocID, len(records)+1, f.Score, title, snippet)
	}

	metrics.SearchesTotal.WithLabelValues(pol.Name, "ok").Inc()
	s.logger.Info("search completed",
		zap.String("variant", pol.Name),
		zap.Int("probes", len(specs)),
		zap.Int("fused", len(fused)),
		zap.Int("results", len(records)),
		zap.Duration("elapsed", time.Since(start)),
	)
	return records, nil
}

// decompose asks the language-understanding service for facets, bounded by
// the decompose timeout. Any failure degrades to an empty facet set so the
// search proceeds on the plain query alone.
func (s *Service) decompose(ctx context.Context, rawQuery string) facets.Set {
	if s.decomposer == nil {
		return facets.Empty()
	}

	dctx, cancel := context.WithTimeout(ctx, s.decomposeTimeout)
	defer cancel()

	fs, err := s.decomposer.Decompose(dctx, rawQuery)
	if err != nil {
		metrics.DecomposeFallbacksTotal.WithLabelValues("unavailable").Inc()
		s.logger.Warn("decomposition unavailable, using plain query",
			zap.Error(err),
			zap.Bool("timed_out", errors.Is(err, context.DeadlineExceeded)),
		)
		return facets.Empty()
	}
	return fs
}
