package search

import (
	"sort"

	"github.com/DanielCater/totsearch/internal/domain/query"
)

// fuseRRF merges all probe lists via Reciprocal Rank Fusion.
// score(d) = sum of w_i/(c + rank_i(d) + 1) over every list where d appears,
// with w_i the list weight (1 unless a boosted term was probed separately).
// Ties break on lexicographic document ID so the ranking is deterministic.
func fuseRRF(lists []query.CandidateList, rrfConstant, topK int) []query.Fused {
	scores := make(map[string]float64)

	for _, list := range lists {
		w := list.Weight
		if w == 0 {
			w = 1
		}
		for rank, c := range list.Candidates {
			scores[c.DocID] += w / float64(rrfConstant+rank+1)
		}
	}

	fused := make([]query.Fused, 0, len(scores))
	for id, s := range scores {
		fused = append(fused, query.Fused{DocID: id, Score: s})
	}

	sort.Slice(fused, func(i, j int) bool {
		if fused[i].Score != fused[j].Score {
			return fused[i].Score > fused[j].Score
		}
		return fused[i].DocID < fused[j].DocID
	})

	if len(fused) > topK {
		fused = fused[:topK]
	}

	return fused
}
