// Package query defines the probe-side types of the retrieval pipeline:
// sub-queries sent to the index and the ranked candidates it returns.
package query

// Origin tags a sub-query with the facet field it was derived from.
type Origin string

const (
	// OriginBase is the normalized base query.
	OriginBase Origin = "base"
	// OriginComposite is the weighted composite query.
	OriginComposite Origin = "composite"
	// OriginEntity is an entity facet value.
	OriginEntity Origin = "entity"
	// OriginTime is a time-expression facet value.
	OriginTime Origin = "time"
	// OriginDescription is a description facet value.
	OriginDescription Origin = "description"
	// OriginMediaType is a media-type facet value.
	OriginMediaType Origin = "media_type"
	// OriginAttribute is an attribute facet value.
	OriginAttribute Origin = "attribute"
)

// SubQuery is a single query string issued to the index as one probe.
type SubQuery struct {
	Text   string
	Origin Origin
}

// Candidate is one (document, score) hit from a probe. The score is
// index-native and only comparable within the list it came from.
type Candidate struct {
	DocID string
	Score float64
}

// CandidateList is the ranked output of one probe. Rank is positional,
// 0-based. An empty list means the probe matched nothing.
//
// Weight scales the list's rank-fusion contribution; zero means 1. It stays
// 1 for every list except when the index lacks native query-boost syntax
// and boosted composite terms are issued as separate weighted probes.
type CandidateList struct {
	Query      SubQuery
	Weight     float64
	Candidates []Candidate
}

// Fused is one entry of the final consensus ranking.
type Fused struct {
	DocID string
	Score float64
}
