package sdk

// Result is one annotated search hit. Rank is 1-based and dense.
type Result struct {
	DocID   string
	Rank    int
	Score   float64
	Title   string
	Snippet string
}

// Health aggregates component availability.
type Health struct {
	Status string
	Checks map[string]string
}
