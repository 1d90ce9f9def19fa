package db

// TextQuery is the input for a BM25 text search probe.
type TextQuery struct {
	IndexName    string
	Query        string
	TopK         int
	ReturnFields []string
}

// SearchResult is the output of a search probe.
type SearchResult struct {
	Total   int
	Entries []SearchEntry
}

// SearchEntry is a single document hit. Entries arrive in relevance order;
// the positional index within SearchResult.Entries is the probe rank.
type SearchEntry struct {
	Key    string
	Score  float64
	Fields map[string]string
}
