package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/passim-labs/passim-cli/internal/core/domain"
	"github.com/passim-labs/passim-cli/internal/core/ports/driven"
	"github.com/passim-labs/passim-cli/internal/core/ports/driving"
)

// Ensure DocumentService implements the interface.
var _ driving.DocumentService = (*DocumentService)(nil)

// DocumentService manages the stored corpus.
type DocumentService struct {
	docStore driven.DocumentStore
}

// NewDocumentService creates a new document service.
func NewDocumentService(docStore driven.DocumentStore) *DocumentService {
	return &DocumentService{docStore: docStore}
}

// Add stores a new document with a generated ID.
func (s *DocumentService) Add(
	ctx context.Context, title, text string, meta map[string]string,
) (*domain.Document, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("document text is empty: %w", domain.ErrInvalidInput)
	}

	now := time.Now().UTC()
	doc := &domain.Document{
		ID:        uuid.New().String(),
		Title:     title,
		Text:      text,
		Meta:      meta,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.docStore.SaveDocument(ctx, doc); err != nil {
		return nil, fmt.Errorf("saving document: %w", err)
	}
	return doc, nil
}

// Get retrieves a document by ID.
func (s *DocumentService) Get(ctx context.Context, id string) (*domain.Document, error) {
	return s.docStore.GetDocument(ctx, id)
}

// List returns all stored documents in corpus order.
func (s *DocumentService) List(ctx context.Context) ([]domain.Document, error) {
	return s.docStore.GetAllDocuments(ctx)
}

// Remove deletes a document by ID.
func (s *DocumentService) Remove(ctx context.Context, id string) error {
	if _, err := s.docStore.GetDocument(ctx, id); err != nil {
		return err
	}
	return s.docStore.DeleteDocument(ctx, id)
}

// Count returns the number of stored documents.
func (s *DocumentService) Count(ctx context.Context) (int, error) {
	return s.docStore.CountDocuments(ctx)
}
