// Package decompose turns a raw query into a structured facet set by
// prompting the language-understanding service.
package decompose

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/DanielCater/totsearch/internal/domain/facets"
	"github.com/DanielCater/totsearch/internal/metrics"
)

// promptTemplate embeds the query into a fixed instruction with a one-shot
// example. %s is the raw query.
const promptTemplate = `You are an information retrieval assistant.
Decompose the following query into a JSON object with these keys:
- media_type
- entities
- attributes
- time
- descriptions

Guidelines:
- Always return lists for every key (even if empty).
- Extract only short spans (1-3 words) directly from the query.
- Do not repeat the full query in any field.
- Normalize obvious typos (e.g., 'Foriegn Film' -> 'foreign film').
- Prefer distinctive nouns, names, or attributes over generic words.
- Avoid duplicates across fields.
- Keep values lowercase unless they are proper names.

Example:
Query: "George Clooney movie where a woman witnesses a murder"
JSON:
{
"media_type": ["movie"],
"entities": ["George Clooney"],
"attributes": ["murder"],
"time": [],
"descriptions": ["woman witnesses"]
}

Now decompose this query:
Query: "%s"
JSON:
`

// Service decomposes queries via an injected Completer.
type Service struct {
	completer Completer
	logger    *zap.Logger
}

// New creates a decomposition service.
func New(completer Completer, logger *zap.Logger) *Service {
	return &Service{completer: completer, logger: logger}
}

// Decompose extracts a facet set from the raw query.
//
// A malformed model answer (non-JSON, wrong shape) is not an error: the
// service degrades to an empty facet set so retrieval proceeds on the base
// query alone. A transport failure propagates so the caller can apply the
// same fallback and account for it.
func (s *Service) Decompose(ctx context.Context, rawQuery string) (facets.Set, error) {
	prompt := fmt.Sprintf(promptTemplate, rawQuery)

	answer, err := s.completer.Complete(ctx, prompt)
	if err != nil {
		return facets.Empty(), fmt.Errorf("complete decomposition prompt: %w", err)
	}

	fs, ok := parseFacets(answer)
	if !ok {
		s.logger.Warn("malformed decomposition answer, using empty facets",
			zap.String("query", rawQuery),
			zap.Int("answer_len", len(answer)),
		)
		metrics.DecomposeFallbacksTotal.WithLabelValues("malformed").Inc()
		return facets.Empty(), nil
	}

	return fs.Normalize(), nil
}

// parseFacets strips code fences from the model answer and parses it as a
// facet set. Returns ok=false when the answer is not valid JSON.
func parseFacets(answer string) (facets.Set, bool) {
	cleaned := stripCodeFences(answer)

	var fs facets.Set
	if err := json.Unmarshal([]byte(cleaned), &fs); err != nil {
		return facets.Set{}, false
	}
	return fs, true
}

// stripCodeFences removes surrounding ``` markers the model may wrap its
// JSON answer in.
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)

	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")

	return strings.TrimSpace(s)
}
