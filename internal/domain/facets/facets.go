// Package facets defines the structured decomposition of a search query.
package facets

// Set is the structured decomposition of one query. Every field is always a
// list, possibly empty, of short spans (1-3 words) extracted from the query.
// The JSON shape matches what the language-understanding service is prompted
// to return.
type Set struct {
	MediaType    []string `json:"media_type"`
	Entities     []string `json:"entities"`
	Attributes   []string `json:"attributes"`
	Time         []string `json:"time"`
	Descriptions []string `json:"descriptions"`
}

// Empty returns a Set with all five fields as empty lists. It is the
// degrade-to-baseline fallback when decomposition fails.
func Empty() Set {
	return Set{
		MediaType:    []string{},
		Entities:     []string{},
		Attributes:   []string{},
		Time:         []string{},
		Descriptions: []string{},
	}
}

// IsEmpty reports whether no field holds any value.
func (s Set) IsEmpty() bool {
	return len(s.MediaType) == 0 && len(s.Entities) == 0 &&
		len(s.Attributes) == 0 && len(s.Time) == 0 && len(s.Descriptions) == 0
}

// Normalize replaces nil slices with empty ones so callers can range over
// every field without nil checks and JSON output always shows lists.
func (s Set) Normalize() Set {
	if s.MediaType == nil {
		s.MediaType = []string{}
	}
	if s.Entities == nil {
		s.Entities = []string{}
	}
	if s.Attributes == nil {
		s.Attributes = []string{}
	}
	if s.Time == nil {
		s.Time = []string{}
	}
	if s.Descriptions == nil {
		s.Descriptions = []string{}
	}
	return s
}
