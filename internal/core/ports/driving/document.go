package driving

import (
	"context"

	"github.com/passim-labs/passim-cli/internal/core/domain"
)

// DocumentService manages the stored corpus.
type DocumentService interface {
	// Add stores a new document and returns it with its assigned ID.
	Add(ctx context.Context, title, text string, meta map[string]string) (*domain.Document, error)

	// Get retrieves a document by ID.
	Get(ctx context.Context, id string) (*domain.Document, error)

	// List returns all stored documents in corpus order.
	List(ctx context.Context) ([]domain.Document, error)

	// Remove deletes a document by ID.
	Remove(ctx context.Context, id string) error

	// Count returns the number of stored documents.
	Count(ctx context.Context) (int, error)
}
