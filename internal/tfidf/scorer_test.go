package tfidf

import "testing"

func TestScore_OneScorePerRow(t *testing.T) {
	texts := []string{"cats are great", "dogs are great too", "the weather is nice"}
	vocab := mustVocabulary(t, texts)
	m := BuildMatrix(vocab, texts)

	scores := Score(m, Encode(vocab, "cats great"))
	if len(scores) != len(texts) {
		t.Fatalf("expected %d scores, got %d", len(texts), len(scores))
	}

	// Two overlapping terms (one rare) must outscore one common term,
	// which must outscore no overlap.
	if !(scores[0] > scores[1]) {
		t.Errorf("expected paragraph 0 to outscore paragraph 1: %v", scores)
	}
	if !(scores[1] > scores[2]) {
		t.Errorf("expected paragraph 1 to outscore paragraph 2: %v", scores)
	}
	if scores[2] != 0 {
		t.Errorf("expected zero score for disjoint paragraph, got %v", scores[2])
	}
}

func TestRank_DescendingWithStableTies(t *testing.T) {
	scores := []float64{0.2, 0.8, 0.2, 0.5}

	hits := Rank(scores, len(scores))
	wantOrder := []int{1, 3, 0, 2} // tie between rows 0 and 2 keeps row order
	for i, want := range wantOrder {
		if hits[i].Index != want {
			t.Fatalf("rank %d: expected row %d, got %d (hits %v)", i, want, hits[i].Index, hits)
		}
	}
}

func TestRank_ZeroScoresDegenerateToInsertionOrder(t *testing.T) {
	hits := Rank([]float64{0, 0, 0, 0}, 4)
	for i, hit := range hits {
		if hit.Index != i {
			t.Fatalf("expected insertion order for all-zero scores, got %v", hits)
		}
	}
}

func TestRank_TopKBounds(t *testing.T) {
	scores := []float64{0.1, 0.2, 0.3}

	if got := len(Rank(scores, 2)); got != 2 {
		t.Errorf("topK=2: expected 2 hits, got %d", got)
	}
	if got := len(Rank(scores, 10)); got != 3 {
		t.Errorf("topK beyond corpus: expected all 3 hits, got %d", got)
	}
	if got := len(Rank(scores, 0)); got != 0 {
		t.Errorf("topK=0: expected no hits, got %d", got)
	}
}
