package tfidf

import (
	"math"
	"sort"
)

// Vector is a sparse weight vector over a vocabulary. Indices holds the
// occupied columns in ascending order; Values holds the matching weights.
type Vector struct {
	Indices []int
	Values  []float64
}

// IsZero reports whether the vector has no non-zero components.
func (v Vector) IsZero() bool {
	return len(v.Indices) == 0
}

// Dot returns the dot product with another sparse vector. For two
// L2-normalised vectors this equals their cosine similarity.
func (v Vector) Dot(other Vector) float64 {
	var sum float64
	i, j := 0, 0
	for i < len(v.Indices) && j < len(other.Indices) {
		switch {
		case v.Indices[i] < other.Indices[j]:
			i++
		case v.Indices[i] > other.Indices[j]:
			j++
		default:
			sum += v.Values[i] * other.Values[j]
			i++
			j++
		}
	}
	return sum
}

// Encode converts text into an L2-normalised TF-IDF vector over the given
// vocabulary. The raw weight per term is count(t) * idf(t); terms outside
// the vocabulary contribute nothing, so an all-out-of-vocabulary text
// yields the zero vector. The zero vector is left unnormalised to avoid
// division by zero.
func Encode(vocab *Vocabulary, text string) Vector {
	counts := make(map[int]int)
	for _, term := range Tokenize(text) {
		if col, ok := vocab.Index[term]; ok {
			counts[col]++
		}
	}
	if len(counts) == 0 {
		return Vector{}
	}

	indices := make([]int, 0, len(counts))
	for col := range counts {
		indices = append(indices, col)
	}
	sort.Ints(indices)

	values := make([]float64, len(indices))
	var sumSquares float64
	for i, col := range indices {
		w := float64(counts[col]) * vocab.IDF[col]
		values[i] = w
		sumSquares += w * w
	}

	norm := math.Sqrt(sumSquares)
	for i := range values {
		values[i] /= norm
	}

	return Vector{Indices: indices, Values: values}
}

// Matrix is the paragraph-by-vocabulary weight matrix. Row i corresponds to
// paragraph i of the fit pass that built it and is never reindexed.
type Matrix struct {
	Rows []Vector
	Cols int
}

// BuildMatrix encodes every paragraph text into a matrix row, preserving
// paragraph order.
func BuildMatrix(vocab *Vocabulary, texts []string) *Matrix {
	rows := make([]Vector, len(texts))
	for i, text := range texts {
		rows[i] = Encode(vocab, text)
	}
	return &Matrix{Rows: rows, Cols: vocab.Size()}
}
