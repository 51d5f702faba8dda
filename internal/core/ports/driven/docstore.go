package driven

import (
	"context"

	"github.com/passim-labs/passim-cli/internal/core/domain"
)

// DocumentStore persists documents and supplies the corpus for indexing.
type DocumentStore interface {
	// SaveDocument stores or updates a document.
	SaveDocument(ctx context.Context, doc *domain.Document) error

	// GetDocument retrieves a document by ID.
	GetDocument(ctx context.Context, id string) (*domain.Document, error)

	// GetAllDocuments returns the full corpus as a stable, finite sequence.
	// The order must not change between calls unless the stored documents
	// change; the retriever's paragraph numbering depends on it.
	GetAllDocuments(ctx context.Context) ([]domain.Document, error)

	// DeleteDocument removes a document.
	DeleteDocument(ctx context.Context, id string) error

	// CountDocuments returns the number of stored documents.
	CountDocuments(ctx context.Context) (int, error)
}
