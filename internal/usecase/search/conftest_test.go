package search

import (
	"context"
	"sync"
	"testing"

	"go.uber.org/zap"

	"github.com/DanielCater/totsearch/internal/domain/facets"
	"github.com/DanielCater/totsearch/internal/domain/query"
)

// probeCall records one Probe invocation for assertions.
type probeCall struct {
	Text string
	TopK int
}

// mockIndex implements Index for tests. Probe calls are recorded under a
// mutex since the service fans probes out concurrently.
type mockIndex struct {
	mu     sync.Mutex
	probes []probeCall

	probeFn        func(queryText string, topK int) ([]query.Candidate, error)
	fetchRawFn     func(docID string) (string, error)
	supportsBoosts bool
}

func (m *mockIndex) Probe(_ context.Context, queryText string, topK int) ([]query.Candidate, error) {
	m.mu.Lock()
	m.probes = append(m.probes, probeCall{Text: queryText, TopK: topK})
	m.mu.Unlock()

	if m.probeFn != nil {
		return m.probeFn(queryText, topK)
	}
	return nil, nil
}

func (m *mockIndex) FetchRaw(_ context.Context, docID string) (string, error) {
	if m.fetchRawFn != nil {
		return m.fetchRawFn(docID)
	}
	return docID + "\ncontents of " + docID, nil
}

func (m *mockIndex) SupportsQueryBoosts(_ context.Context) bool {
	return m.supportsBoosts
}

func (m *mockIndex) probeTexts() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	texts := make([]string, len(m.probes))
	for i, p := range m.probes {
		texts[i] = p.Text
	}
	return texts
}

// mockDecomposer implements Decomposer for tests.
type mockDecomposer struct {
	set facets.Set
	err error
}

func (m *mockDecomposer) Decompose(_ context.Context, _ string) (facets.Set, error) {
	if m.err != nil {
		return facets.Empty(), m.err
	}
	return m.set.Normalize(), nil
}

func newTestService(t *testing.T, idx *mockIndex, dec *mockDecomposer) *Service {
	t.Helper()
	return New(idx, dec, zap.NewNop())
}

func containsText(texts []string, want string) bool {
	for _, t := range texts {
		if t == want {
			return true
		}
	}
	return false
}
