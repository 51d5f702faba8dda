package tfidf

import "sort"

// Hit pairs a matrix row index with its similarity score.
type Hit struct {
	// Index is the row (paragraph) index.
	Index int

	// Score is the cosine similarity against the query vector.
	Score float64
}

// Score computes the cosine similarity of the query vector against every
// matrix row, in row order.
func Score(m *Matrix, query Vector) []float64 {
	scores := make([]float64, len(m.Rows))
	for i := range m.Rows {
		scores[i] = m.Rows[i].Dot(query)
	}
	return scores
}

// Rank orders scores descending and returns the first topK hits. The sort
// is stable with respect to row order, so ties resolve to ascending row
// index; a zero query vector (all scores zero) therefore degenerates to
// paragraph insertion order. A topK beyond the row count returns all rows.
func Rank(scores []float64, topK int) []Hit {
	hits := make([]Hit, len(scores))
	for i, s := range scores {
		hits[i] = Hit{Index: i, Score: s}
	}

	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].Score > hits[j].Score
	})

	if topK < 0 {
		topK = 0
	}
	if topK > len(hits) {
		topK = len(hits)
	}
	return hits[:topK]
}
