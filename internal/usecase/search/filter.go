package search

import (
	"strings"

	"github.com/DanielCater/totsearch/internal/domain/facets"
	"github.com/DanielCater/totsearch/internal/lexicon"
)

// filterFacets cleans a decomposed facet set before query construction:
// generic entity nouns are dropped, denylisted attribute and description
// spans are removed, and known attribute spellings are canonicalized.
// Media-type and time spans pass through unchanged.
func filterFacets(fs facets.Set) facets.Set {
	out := facets.Empty()

	out.MediaType = append(out.MediaType, fs.MediaType...)
	out.Time = append(out.Time, fs.Time...)

	for _, e := range fs.Entities {
		if lexicon.IsGenericEntity(e) {
			continue
		}
		out.Entities = append(out.Entities, e)
	}

	for _, a := range fs.Attributes {
		lower := strings.ToLower(a)
		if lexicon.IsDenylisted(lower) {
			continue
		}
		out.Attributes = append(out.Attributes, lexicon.CanonicalAttribute(lower))
	}

	// Single-word descriptions carry too little context to probe for.
	for _, d := range fs.Descriptions {
		if lexicon.IsDenylisted(d) || len(strings.Fields(d)) < 2 {
			continue
		}
		out.Descriptions = append(out.Descriptions, d)
	}

	return out
}
