// Package policy parameterizes the retrieval pipeline. The baseline and
// enhanced search variants share one flow and differ only in these values.
package policy

// Policy holds the variant-specific knobs of the search pipeline.
type Policy struct {
	// Name identifies the variant in logs and metrics.
	Name string

	// RRFConstant is the c in the reciprocal-rank-fusion term 1/(c+rank+1).
	RRFConstant int
	// TopK bounds the fused ranking length.
	TopK int

	// FilterFacets enables the facet cleaning step before query construction.
	FilterFacets bool

	// EntityBoost and TimeBoost weight facet terms in the composite query.
	EntityBoost int
	TimeBoost   int
	// BoostAttributes enables attribute terms in the composite query, with
	// AttributeBoostHigh for the fixed high-value set and AttributeBoost
	// for the rest.
	BoostAttributes    bool
	AttributeBoost     int
	AttributeBoostHigh int

	// Marker wraps each highlighted term occurrence in the snippet.
	// Empty means the matched term is kept bare.
	Marker string
}

// Baseline is the plain retrieval variant: raw facets, no attribute
// boosting, unmarked snippet terms.
func Baseline() Policy {
	return Policy{
		Name:        "baseline",
		RRFConstant: 60,
		TopK:        50,
		EntityBoost: 4,
		TimeBoost:   2,
	}
}

// Enhanced is the AI-enhanced variant: filtered facets, attribute boosting,
// a larger fusion constant, and bold snippet markers.
func Enhanced() Policy {
	return Policy{
		Name:               "enhanced",
		RRFConstant:        100,
		TopK:               50,
		FilterFacets:       true,
		EntityBoost:        4,
		TimeBoost:          2,
		BoostAttributes:    true,
		AttributeBoost:     2,
		AttributeBoostHigh: 3,
		Marker:             "**",
	}
}

// ForVariant returns Enhanced when useEnhanced is set, Baseline otherwise.
func ForVariant(useEnhanced bool) Policy {
	if useEnhanced {
		return Enhanced()
	}
	return Baseline()
}
