package tfidf

import (
	"math"

	"github.com/passim-labs/passim-cli/internal/core/domain"
)

// Vocabulary maps each distinct corpus term to a vector column and carries
// one smoothed IDF weight per column. It is frozen for the lifetime of one
// fit pass and replaced wholesale on refit; every query encoded during that
// interval shares it.
type Vocabulary struct {
	// Index maps a term to its column.
	Index map[string]int

	// IDF holds the inverse-document-frequency weight per column.
	IDF []float64
}

// Size returns the number of distinct terms.
func (v *Vocabulary) Size() int {
	return len(v.Index)
}

// BuildVocabulary scans the paragraph texts once, assigning columns in
// first-seen order (deterministic for a fixed corpus) and computing the
// smoothed IDF idf(t) = ln((1+P)/(1+df(t))) + 1, where P is the paragraph
// count and df(t) the number of paragraphs containing t at least once.
//
// Returns domain.ErrEmptyCorpus when there are no paragraphs or the whole
// corpus tokenises to zero terms; a degenerate zero-size vocabulary is
// never produced.
func BuildVocabulary(texts []string) (*Vocabulary, error) {
	if len(texts) == 0 {
		return nil, domain.ErrEmptyCorpus
	}

	index := make(map[string]int)
	var df []int

	for _, text := range texts {
		seen := make(map[int]struct{})
		for _, term := range Tokenize(text) {
			col, ok := index[term]
			if !ok {
				col = len(index)
				index[term] = col
				df = append(df, 0)
			}
			if _, counted := seen[col]; counted {
				continue
			}
			seen[col] = struct{}{}
			df[col]++
		}
	}

	if len(index) == 0 {
		return nil, domain.ErrEmptyCorpus
	}

	paragraphs := float64(len(texts))
	idf := make([]float64, len(df))
	for col, n := range df {
		idf[col] = math.Log((1+paragraphs)/(1+float64(n))) + 1
	}

	return &Vocabulary{Index: index, IDF: idf}, nil
}
