package search

import (
	"fmt"
	"strings"

	"github.com/DanielCater/totsearch/internal/domain/facets"
	"github.com/DanielCater/totsearch/internal/domain/policy"
	"github.com/DanielCater/totsearch/internal/domain/query"
	"github.com/DanielCater/totsearch/internal/lexicon"
)

// boostedTerm is a facet span carrying its composite-query weight.
type boostedTerm struct {
	Term  string
	Boost int
}

// composite holds the weighted composite probe in both renderings: the
// single boosted query string, and the individual weighted terms for
// backends without boost syntax.
type composite struct {
	Base  string
	Terms []boostedTerm
}

// buildComposite assembles the composite probe from the normalized base
// query and the facet set. Entities and time expressions always contribute;
// attributes only when the policy enables attribute boosting, with the
// stronger weight for the high-value set.
func buildComposite(base string, fs facets.Set, pol policy.Policy) composite {
	var terms []boostedTerm

	for _, e := range fs.Entities {
		terms = append(terms, boostedTerm{Term: e, Boost: pol.EntityBoost})
	}
	for _, t := range fs.Time {
		terms = append(terms, boostedTerm{Term: t, Boost: pol.TimeBoost})
	}
	if pol.BoostAttributes {
		for _, a := range fs.Attributes {
			boost := pol.AttributeBoost
			if lexicon.IsHighValueAttribute(a) {
				boost = pol.AttributeBoostHigh
			}
			terms = append(terms, boostedTerm{Term: a, Boost: boost})
		}
	}

	return composite{Base: base, Terms: terms}
}

// String renders the boosted query string, e.g. `voice acting "George Clooney"^4`.
func (c composite) String() string {
	parts := make([]string, 0, len(c.Terms)+1)
	if c.Base != "" {
		parts = append(parts, c.Base)
	}
	for _, t := range c.Terms {
		parts = append(parts, fmt.Sprintf("%q^%d", t.Term, t.Boost))
	}
	return strings.Join(parts, " ")
}

// buildSubQueries lists the individual probes: the base query first, then
// every facet span. Duplicate spans are kept; each repetition is an
// independent consensus signal for rank fusion.
func buildSubQueries(base string, fs facets.Set) []query.SubQuery {
	subs := make([]query.SubQuery, 0, 1+len(fs.Entities)+len(fs.Time)+
		len(fs.Descriptions)+len(fs.MediaType)+len(fs.Attributes))

	if base != "" {
		subs = append(subs, query.SubQuery{Text: base, Origin: query.OriginBase})
	}

	add := func(spans []string, origin query.Origin) {
		for _, s := range spans {
			if strings.TrimSpace(s) == "" {
				continue
			}
			subs = append(subs, query.SubQuery{Text: s, Origin: origin})
		}
	}
	add(fs.Entities, query.OriginEntity)
	add(fs.Time, query.OriginTime)
	add(fs.Descriptions, query.OriginDescription)
	add(fs.MediaType, query.OriginMediaType)
	add(fs.Attributes, query.OriginAttribute)

	return subs
}
