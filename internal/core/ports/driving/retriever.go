package driving

import (
	"context"

	"github.com/passim-labs/passim-cli/internal/core/domain"
)

// Retriever indexes the document corpus by paragraph and answers free-text
// queries with the most lexically similar paragraphs.
type Retriever interface {
	// Fit rebuilds the index from the document store. It is a blocking,
	// full rebuild: all held state (paragraphs, vocabulary, IDF weights,
	// weight matrix) is replaced atomically once the build completes.
	// Fails with domain.ErrEmptyCorpus when the store yields no non-empty
	// paragraphs or the corpus tokenises to zero terms.
	Fit(ctx context.Context) error

	// Retrieve returns the top-k paragraphs most similar to the query,
	// ordered by descending relevance. Fails with domain.ErrNotFitted
	// before the first successful Fit, domain.ErrUnsupportedFilter when
	// opts.Filters is non-empty, and domain.ErrUnsupportedIndex when
	// opts.Index is set.
	Retrieve(ctx context.Context, query string, opts domain.RetrieveOptions) ([]domain.RetrievedDocument, error)

	// ParagraphCount reports the number of paragraphs in the current index,
	// or zero before the first fit.
	ParagraphCount() int
}
