package search

import (
	"strings"
	"testing"

	"github.com/DanielCater/totsearch/internal/domain/facets"
	"github.com/DanielCater/totsearch/internal/domain/policy"
	"github.com/DanielCater/totsearch/internal/domain/query"
)

func TestBuildComposite(t *testing.T) {
	t.Run("entities and time are weighted", func(t *testing.T) {
		comp := buildComposite("voice acting", facets.Set{
			Entities: []string{"George Clooney"},
			Time:     []string{"90s"},
		}, policy.Baseline())

		got := comp.String()
		if !strings.HasPrefix(got, "voice acting ") {
			t.Errorf("composite must start with base query, got %q", got)
		}
		if !strings.Contains(got, `"George Clooney"^4`) {
			t.Errorf("composite missing boosted entity: %q", got)
		}
		if !strings.Contains(got, `"90s"^2`) {
			t.Errorf("composite missing boosted time: %q", got)
		}
	})

	t.Run("baseline ignores attributes", func(t *testing.T) {
		comp := buildComposite("base", facets.Set{
			Attributes: []string{"horror"},
		}, policy.Baseline())
		if got := comp.String(); got != "base" {
			t.Errorf("expected bare base, got %q", got)
		}
	})

	t.Run("enhanced boosts attributes by value", func(t *testing.T) {
		comp := buildComposite("base", facets.Set{
			Attributes: []string{"cannes", "R-rated"},
		}, policy.Enhanced())
		got := comp.String()
		if !strings.Contains(got, `"cannes"^3`) {
			t.Errorf("high-value attribute should get ^3: %q", got)
		}
		if !strings.Contains(got, `"R-rated"^2`) {
			t.Errorf("ordinary attribute should get ^2: %q", got)
		}
	})

	t.Run("empty base renders terms only", func(t *testing.T) {
		comp := buildComposite("", facets.Set{
			Entities: []string{"Clooney"},
		}, policy.Baseline())
		if got := comp.String(); got != `"Clooney"^4` {
			t.Errorf("got %q", got)
		}
	})
}

func TestBuildSubQueries(t *testing.T) {
	t.Run("base first then every facet span", func(t *testing.T) {
		subs := buildSubQueries("ghost lighthouse", facets.Set{
			MediaType:    []string{"movie"},
			Entities:     []string{"George Clooney"},
			Attributes:   []string{"horror"},
			Time:         []string{"90s"},
			Descriptions: []string{"keeper loses his mind"},
		})

		if len(subs) != 6 {
			t.Fatalf("expected 6 sub-queries, got %d", len(subs))
		}
		if subs[0].Origin != query.OriginBase || subs[0].Text != "ghost lighthouse" {
			t.Errorf("first sub-query must be the base, got %+v", subs[0])
		}
		origins := map[query.Origin]string{}
		for _, s := range subs {
			origins[s.Origin] = s.Text
		}
		if origins[query.OriginEntity] != "George Clooney" {
			t.Errorf("entity sub-query missing: %v", origins)
		}
		if origins[query.OriginDescription] != "keeper loses his mind" {
			t.Errorf("description sub-query missing: %v", origins)
		}
	})

	t.Run("duplicate spans stay as separate probes", func(t *testing.T) {
		subs := buildSubQueries("base", facets.Set{
			Entities:     []string{"lighthouse"},
			Descriptions: []string{"lighthouse"},
		})
		if len(subs) != 3 {
			t.Fatalf("expected 3 sub-queries, got %d", len(subs))
		}
	})

	t.Run("blank spans are skipped", func(t *testing.T) {
		subs := buildSubQueries("base", facets.Set{
			Entities: []string{"", "  "},
		})
		if len(subs) != 1 {
			t.Fatalf("expected only the base, got %d", len(subs))
		}
	})

	t.Run("empty base with no facets yields none", func(t *testing.T) {
		if subs := buildSubQueries("", facets.Empty()); len(subs) != 0 {
			t.Fatalf("expected no sub-queries, got %d", len(subs))
		}
	})
}
