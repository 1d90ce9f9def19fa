// Package result defines the annotated output unit of a search.
package result

// Record is one annotated search hit. Rank is 1-based and dense over the
// kept results of a search; Score is the fusion score.
type Record struct {
	docID   string
	rank    int
	score   float64
	title   string
	snippet string
}

// New creates a result record.
func New(docID string, rank int, score float64, title, snippet string) Record {
	return Record{docID: docID, rank: rank, score: score, title: title, snippet: snippet}
}

// DocID returns the document identifier.
func (r *Record) DocID() string { return r.docID }

// Rank returns the 1-based position in the fused ranking.
func (r *Record) Rank() int { return r.rank }

// Score returns the fusion score.
func (r *Record) Score() float64 { return r.score }

// Title returns the document title, the payload up to its first line break.
func (r *Record) Title() string { return r.title }

// Snippet returns the highlighted excerpt.
func (r *Record) Snippet() string { return r.snippet }
