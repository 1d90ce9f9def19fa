package ingest

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/DanielCater/totsearch/internal/db"
)

// mockStore implements Store for tests.
type mockStore struct {
	batches [][]db.HashSetItem
	setErr  error

	exists    bool
	existsErr error
	created   *db.IndexDefinition
	createErr error
}

func (m *mockStore) HSetMulti(_ context.Context, items []db.HashSetItem) error {
	if m.setErr != nil {
		return m.setErr
	}
	batch := make([]db.HashSetItem, len(items))
	copy(batch, items)
	m.batches = append(m.batches, batch)
	return nil
}

func (m *mockStore) CreateIndex(_ context.Context, def *db.IndexDefinition) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.created = def
	return nil
}

func (m *mockStore) IndexExists(_ context.Context, _ string) (bool, error) {
	return m.exists, m.existsErr
}

func newTestService(ms *mockStore) *Service {
	return New(ms, nil, "totsearch:docs:idx", "totsearch:doc:")
}

func TestEnsureIndex(t *testing.T) {
	t.Run("creates contents text index when absent", func(t *testing.T) {
		ms := &mockStore{}
		if err := newTestService(ms).EnsureIndex(context.Background()); err != nil {
			t.Fatalf("EnsureIndex: %v", err)
		}
		if ms.created == nil {
			t.Fatal("expected index creation")
		}
		if ms.created.Name != "totsearch:docs:idx" {
			t.Errorf("index name: got %q", ms.created.Name)
		}
		if len(ms.created.Prefixes) != 1 || ms.created.Prefixes[0] != "totsearch:doc:" {
			t.Errorf("prefixes: got %v", ms.created.Prefixes)
		}
		if len(ms.created.Fields) != 1 || ms.created.Fields[0].Name != "contents" {
			t.Errorf("fields: got %v", ms.created.Fields)
		}
	})

	t.Run("skips when index exists", func(t *testing.T) {
		ms := &mockStore{exists: true}
		if err := newTestService(ms).EnsureIndex(context.Background()); err != nil {
			t.Fatalf("EnsureIndex: %v", err)
		}
		if ms.created != nil {
			t.Error("index must not be recreated")
		}
	})

	t.Run("tolerates racing creator", func(t *testing.T) {
		ms := &mockStore{createErr: &db.Error{Op: db.OpCreateIndex, Err: db.ErrIndexExists}}
		if err := newTestService(ms).EnsureIndex(context.Background()); err != nil {
			t.Fatalf("EnsureIndex: %v", err)
		}
	})
}

func TestLoad(t *testing.T) {
	t.Run("stores documents under prefixed keys", func(t *testing.T) {
		ms := &mockStore{}
		corpus := `{"id":"movie-1","contents":"The Lighthouse\nTwo keepers."}
{"id":"movie-2","contents":"Fantastic Mr. Fox\nStop motion."}`

		n, err := newTestService(ms).Load(context.Background(), strings.NewReader(corpus))
		if err != nil {
			t.Fatalf("Load: %v", err)
		}
		if n != 2 {
			t.Errorf("expected 2 documents, got %d", n)
		}
		if len(ms.batches) != 1 {
			t.Fatalf("expected 1 batch, got %d", len(ms.batches))
		}
		first := ms.batches[0][0]
		if first.Key != "totsearch:doc:movie-1" {
			t.Errorf("key: got %q", first.Key)
		}
		if !strings.HasPrefix(first.Fields["contents"], "The Lighthouse\n") {
			t.Errorf("contents: got %q", first.Fields["contents"])
		}
	})

	t.Run("splits into batches", func(t *testing.T) {
		var sb strings.Builder
		for i := 0; i < batchSize+5; i++ {
			sb.WriteString(`{"id":"doc-`)
			sb.WriteString(strings.Repeat("x", i%3+1))
			sb.WriteString(string(rune('a'+i%26)) + `","contents":"body"}` + "\n")
		}
		ms := &mockStore{}
		n, err := newTestService(ms).Load(context.Background(), strings.NewReader(sb.String()))
		if err != nil {
			t.Fatalf("Load: %v", err)
		}
		if n != batchSize+5 {
			t.Errorf("expected %d documents, got %d", batchSize+5, n)
		}
		if len(ms.batches) != 2 {
			t.Errorf("expected 2 batches, got %d", len(ms.batches))
		}
		if len(ms.batches[0]) != batchSize {
			t.Errorf("first batch: got %d", len(ms.batches[0]))
		}
	})

	t.Run("blank lines are skipped", func(t *testing.T) {
		ms := &mockStore{}
		corpus := "\n" + `{"id":"a","contents":"b"}` + "\n\n"
		n, err := newTestService(ms).Load(context.Background(), strings.NewReader(corpus))
		if err != nil {
			t.Fatalf("Load: %v", err)
		}
		if n != 1 {
			t.Errorf("expected 1 document, got %d", n)
		}
	})

	t.Run("malformed line reports its number", func(t *testing.T) {
		ms := &mockStore{}
		corpus := `{"id":"a","contents":"b"}` + "\nnot json\n"
		_, err := newTestService(ms).Load(context.Background(), strings.NewReader(corpus))
		if err == nil || !strings.Contains(err.Error(), "line 2") {
			t.Errorf("expected line 2 error, got %v", err)
		}
	})

	t.Run("missing fields rejected", func(t *testing.T) {
		ms := &mockStore{}
		_, err := newTestService(ms).Load(context.Background(),
			strings.NewReader(`{"id":"","contents":"b"}`))
		if err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("store failure propagates with progress", func(t *testing.T) {
		ms := &mockStore{setErr: errors.New("conn reset")}
		n, err := newTestService(ms).Load(context.Background(),
			strings.NewReader(`{"id":"a","contents":"b"}`))
		if err == nil {
			t.Fatal("expected error")
		}
		if n != 0 {
			t.Errorf("expected 0 stored, got %d", n)
		}
	})
}
