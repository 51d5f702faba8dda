package tfidf

import (
	"errors"
	"math"
	"testing"

	"github.com/passim-labs/passim-cli/internal/core/domain"
)

func TestBuildVocabulary_ColumnsInFirstSeenOrder(t *testing.T) {
	vocab, err := BuildVocabulary([]string{"cats are great", "dogs are great too"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantOrder := map[string]int{"cats": 0, "are": 1, "great": 2, "dogs": 3, "too": 4}
	if vocab.Size() != len(wantOrder) {
		t.Fatalf("expected %d terms, got %d", len(wantOrder), vocab.Size())
	}
	for term, col := range wantOrder {
		if vocab.Index[term] != col {
			t.Errorf("term %q: expected column %d, got %d", term, col, vocab.Index[term])
		}
	}
}

func TestBuildVocabulary_SmoothedIDF(t *testing.T) {
	vocab, err := BuildVocabulary([]string{"cats are great", "dogs are great too"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// P = 2. df(cats) = 1, df(great) = 2.
	wantCats := math.Log(3.0/2.0) + 1
	wantGreat := math.Log(3.0/3.0) + 1

	if got := vocab.IDF[vocab.Index["cats"]]; math.Abs(got-wantCats) > 1e-12 {
		t.Errorf("idf(cats) = %v, want %v", got, wantCats)
	}
	if got := vocab.IDF[vocab.Index["great"]]; math.Abs(got-wantGreat) > 1e-12 {
		t.Errorf("idf(great) = %v, want %v", got, wantGreat)
	}
}

func TestBuildVocabulary_RepeatedTermCountedOncePerParagraph(t *testing.T) {
	vocab, err := BuildVocabulary([]string{"spam spam spam", "eggs"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// df(spam) must be 1 despite three occurrences in one paragraph.
	want := math.Log(3.0/2.0) + 1
	if got := vocab.IDF[vocab.Index["spam"]]; math.Abs(got-want) > 1e-12 {
		t.Errorf("idf(spam) = %v, want %v", got, want)
	}
}

func TestBuildVocabulary_EmptyCorpus(t *testing.T) {
	if _, err := BuildVocabulary(nil); !errors.Is(err, domain.ErrEmptyCorpus) {
		t.Errorf("expected ErrEmptyCorpus for no paragraphs, got %v", err)
	}

	// Paragraphs exist but nothing tokenises to a term.
	if _, err := BuildVocabulary([]string{"? !", "- ."}); !errors.Is(err, domain.ErrEmptyCorpus) {
		t.Errorf("expected ErrEmptyCorpus for term-free corpus, got %v", err)
	}
}
