package segment

import (
	"testing"

	"github.com/passim-labs/passim-cli/internal/core/domain"
)

func TestSplit_BlankLineBoundaries(t *testing.T) {
	docs := []domain.Document{
		{ID: "doc1", Text: "cats are great\n\nDogs are great too"},
		{ID: "doc2", Text: "The weather is nice"},
	}

	paragraphs := Split(docs)
	if len(paragraphs) != 3 {
		t.Fatalf("expected 3 paragraphs, got %d", len(paragraphs))
	}

	want := []struct {
		id    int
		docID string
		text  string
	}{
		{0, "doc1", "cats are great"},
		{1, "doc1", "Dogs are great too"},
		{2, "doc2", "The weather is nice"},
	}
	for i, w := range want {
		p := paragraphs[i]
		if p.ID != w.id || p.DocumentID != w.docID || p.Text != w.text {
			t.Errorf("paragraph %d = {%d %q %q}, want {%d %q %q}",
				i, p.ID, p.DocumentID, p.Text, w.id, w.docID, w.text)
		}
	}
}

func TestSplit_SkipsBlankSegments(t *testing.T) {
	docs := []domain.Document{
		{ID: "doc1", Text: "first\n\n\n\n   \n\nsecond\n\n"},
	}

	paragraphs := Split(docs)
	if len(paragraphs) != 2 {
		t.Fatalf("expected 2 paragraphs, got %d: %v", len(paragraphs), paragraphs)
	}
	// IDs stay contiguous even when segments are skipped.
	if paragraphs[0].ID != 0 || paragraphs[1].ID != 1 {
		t.Errorf("expected contiguous IDs 0,1, got %d,%d", paragraphs[0].ID, paragraphs[1].ID)
	}
}

func TestSplit_PreservesUntrimmedText(t *testing.T) {
	docs := []domain.Document{{ID: "doc1", Text: "  padded paragraph \n\nnext"}}

	paragraphs := Split(docs)
	if paragraphs[0].Text != "  padded paragraph " {
		t.Errorf("expected original untrimmed text, got %q", paragraphs[0].Text)
	}
}

func TestSplit_CopiesDocumentMeta(t *testing.T) {
	meta := map[string]string{"source": "wiki"}
	docs := []domain.Document{{ID: "doc1", Text: "one\n\ntwo", Meta: meta}}

	paragraphs := Split(docs)
	for i := range paragraphs {
		if paragraphs[i].Meta["source"] != "wiki" {
			t.Errorf("paragraph %d missing document meta", i)
		}
	}
}

func TestSplit_EmptyCorpus(t *testing.T) {
	if got := Split(nil); len(got) != 0 {
		t.Errorf("expected no paragraphs for empty corpus, got %v", got)
	}
	if got := Split([]domain.Document{{ID: "doc1", Text: "   \n\n "}}); len(got) != 0 {
		t.Errorf("expected no paragraphs for whitespace-only document, got %v", got)
	}
}

func TestSplit_NoBlankLineStructure(t *testing.T) {
	// Single-newline documents collapse to one paragraph.
	docs := []domain.Document{{ID: "doc1", Text: "line one\nline two\nline three"}}

	paragraphs := Split(docs)
	if len(paragraphs) != 1 {
		t.Fatalf("expected 1 paragraph, got %d", len(paragraphs))
	}
	if paragraphs[0].Text != docs[0].Text {
		t.Errorf("expected whole text as one paragraph, got %q", paragraphs[0].Text)
	}
}
