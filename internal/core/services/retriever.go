package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/passim-labs/passim-cli/internal/core/domain"
	"github.com/passim-labs/passim-cli/internal/core/ports/driven"
	"github.com/passim-labs/passim-cli/internal/core/ports/driving"
	"github.com/passim-labs/passim-cli/internal/segment"
	"github.com/passim-labs/passim-cli/internal/tfidf"
)

// Ensure TfidfRetriever implements the interface.
var _ driving.Retriever = (*TfidfRetriever)(nil)

// index is the immutable state produced by one fit pass. It is built off to
// the side and swapped in as a unit, so a retrieve never observes a
// partially rebuilt index.
type index struct {
	paragraphs []domain.Paragraph
	vocabulary *tfidf.Vocabulary
	matrix     *tfidf.Matrix
}

// TfidfRetriever indexes the corpus by paragraph TF-IDF weight and answers
// queries with the most lexically similar paragraphs. It is typically used
// as a fast pre-filter ahead of a more expensive downstream reader.
type TfidfRetriever struct {
	docStore driven.DocumentStore
	events   driven.EventSink

	mu  sync.RWMutex
	idx *index
}

// NewTfidfRetriever creates a retriever over the given document store.
// The events sink is optional (can be nil). The retriever starts unfitted;
// call Fit before the first Retrieve.
func NewTfidfRetriever(docStore driven.DocumentStore, events driven.EventSink) *TfidfRetriever {
	return &TfidfRetriever{
		docStore: docStore,
		events:   events,
	}
}

// Fit rebuilds the index from the document store. The build runs to
// completion before the new state replaces the old one; on failure the
// previously fitted index (if any) stays in place.
func (r *TfidfRetriever) Fit(ctx context.Context) error {
	if r.docStore == nil {
		return fmt.Errorf("fit: %w", domain.ErrInvalidInput)
	}

	docs, err := r.docStore.GetAllDocuments(ctx)
	if err != nil {
		return fmt.Errorf("fit: loading documents: %w", err)
	}

	paragraphs := segment.Split(docs)
	r.debug("Found %d candidate paragraphs from %d docs", len(paragraphs), len(docs))

	texts := make([]string, len(paragraphs))
	for i := range paragraphs {
		texts[i] = paragraphs[i].Text
	}

	vocabulary, err := tfidf.BuildVocabulary(texts)
	if err != nil {
		return fmt.Errorf("fit: %w", err)
	}

	matrix := tfidf.BuildMatrix(vocabulary, texts)

	r.mu.Lock()
	r.idx = &index{
		paragraphs: paragraphs,
		vocabulary: vocabulary,
		matrix:     matrix,
	}
	r.mu.Unlock()

	r.info("Fitted index: %d paragraphs, %d terms", len(paragraphs), vocabulary.Size())
	return nil
}

// Retrieve encodes the query over the fitted vocabulary, ranks every
// paragraph by cosine similarity, and returns the top-k paragraphs in
// descending relevance order. Scores are used only for ranking and are
// not surfaced in the results.
func (r *TfidfRetriever) Retrieve(
	_ context.Context, query string, opts domain.RetrieveOptions,
) ([]domain.RetrievedDocument, error) {
	if len(opts.Filters) > 0 {
		return nil, domain.ErrUnsupportedFilter
	}
	if opts.Index != "" {
		return nil, domain.ErrUnsupportedIndex
	}

	r.mu.RLock()
	idx := r.idx
	r.mu.RUnlock()

	if idx == nil {
		return nil, domain.ErrNotFitted
	}

	topK := opts.TopK
	if topK <= 0 {
		topK = domain.DefaultTopK
	}

	vector := tfidf.Encode(idx.vocabulary, query)
	if vector.IsZero() {
		// Every query term is out of vocabulary. Valid outcome: all scores
		// are zero and ranking degenerates to paragraph insertion order.
		r.debug("Query %q has no in-vocabulary terms", query)
	}

	scores := tfidf.Score(idx.matrix, vector)
	hits := tfidf.Rank(scores, topK)
	r.debug("Identified %d candidates for query %q", len(hits), query)

	results := make([]domain.RetrievedDocument, len(hits))
	for i, hit := range hits {
		p := idx.paragraphs[hit.Index]
		results[i] = domain.RetrievedDocument{
			ParagraphID: p.ID,
			DocumentID:  p.DocumentID,
			Text:        p.Text,
			Meta:        p.Meta,
		}
	}

	return results, nil
}

// ParagraphCount reports the size of the current index.
func (r *TfidfRetriever) ParagraphCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.idx == nil {
		return 0
	}
	return len(r.idx.paragraphs)
}

func (r *TfidfRetriever) debug(format string, args ...any) {
	if r.events != nil {
		r.events.Debug(format, args...)
	}
}

func (r *TfidfRetriever) info(format string, args ...any) {
	if r.events != nil {
		r.events.Info(format, args...)
	}
}
