package search

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/DanielCater/totsearch/internal/domain/query"
	"github.com/DanielCater/totsearch/internal/metrics"
)

// probeSpec is one planned index probe.
type probeSpec struct {
	Query  query.SubQuery
	TopK   int
	Weight float64
}

// planProbes lays out the fan-out for one search. When the index honors
// boost syntax the composite goes out as a single weighted query string.
// Otherwise the composite splits: the base text probes at weight 1 and each
// boosted term probes separately with its boost as the fusion weight.
func (s *Service) planProbes(ctx context.Context, comp composite, subs []query.SubQuery) []probeSpec {
	specs := make([]probeSpec, 0, 1+len(comp.Terms)+len(subs))

	if s.index.SupportsQueryBoosts(ctx) {
		if text := comp.String(); text != "" {
			specs = append(specs, probeSpec{
				Query:  query.SubQuery{Text: text, Origin: query.OriginComposite},
				TopK:   s.compositeTopK,
				Weight: 1,
			})
		}
	} else {
		if comp.Base != "" {
			specs = append(specs, probeSpec{
				Query:  query.SubQuery{Text: comp.Base, Origin: query.OriginComposite},
				TopK:   s.compositeTopK,
				Weight: 1,
			})
		}
		for _, t := range comp.Terms {
			specs = append(specs, probeSpec{
				Query:  query.SubQuery{Text: t.Term, Origin: query.OriginComposite},
				TopK:   s.compositeTopK,
				Weight: float64(t.Boost),
			})
		}
	}

	for _, sub := range subs {
		specs = append(specs, probeSpec{Query: sub, TopK: s.subQueryTopK, Weight: 1})
	}

	return specs
}

// runProbes executes all probes concurrently, bounded by the configured
// parallelism. Probe goroutines never return an error: a failed probe
// contributes an empty list so one bad probe cannot fail the search or
// cancel its siblings. Output order matches the planned probe order.
func (s *Service) runProbes(ctx context.Context, specs []probeSpec) []query.CandidateList {
	lists := make([]query.CandidateList, len(specs))

	g := new(errgroup.Group)
	g.SetLimit(s.probeParallelism)
	for i, spec := range specs {
		g.Go(func() error {
			lists[i] = query.CandidateList{
				Query:      spec.Query,
				Weight:     spec.Weight,
				Candidates: s.probeOnce(ctx, spec),
			}
			return nil
		})
	}
	_ = g.Wait()

	return lists
}

// probeOnce runs a single probe with one retry on transient failure.
func (s *Service) probeOnce(ctx context.Context, spec probeSpec) []query.Candidate {
	origin := string(spec.Query.Origin)

	start := time.Now()
	cands, err := s.index.Probe(ctx, spec.Query.Text, spec.TopK)
	if err != nil && ctx.Err() == nil {
		cands, err = s.index.Probe(ctx, spec.Query.Text, spec.TopK)
	}
	metrics.ProbeDuration.WithLabelValues(origin).Observe(time.Since(start).Seconds())

	if err != nil {
		metrics.ProbesTotal.WithLabelValues(origin, "failed").Inc()
		s.logger.Warn("probe failed, dropping its list",
			zap.String("origin", origin),
			zap.String("query", spec.Query.Text),
			zap.Error(err),
		)
		return nil
	}

	metrics.ProbesTotal.WithLabelValues(origin, "ok").Inc()
	return cands
}
