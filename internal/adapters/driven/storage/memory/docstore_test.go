package memory

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/passim-labs/passim-cli/internal/core/domain"
)

func TestDocumentStore_SaveAndGet(t *testing.T) {
	store := NewDocumentStore()
	ctx := context.Background()

	doc := &domain.Document{ID: "doc-1", Title: "First", Text: "hello world"}
	require.NoError(t, store.SaveDocument(ctx, doc))

	got, err := store.GetDocument(ctx, "doc-1")
	require.NoError(t, err)
	assert.Equal(t, "First", got.Title)
	assert.Equal(t, "hello world", got.Text)
}

func TestDocumentStore_GetMissing(t *testing.T) {
	store := NewDocumentStore()

	_, err := store.GetDocument(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDocumentStore_GetAllPreservesInsertionOrder(t *testing.T) {
	store := NewDocumentStore()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		doc := &domain.Document{ID: fmt.Sprintf("doc-%d", i), Text: "text"}
		require.NoError(t, store.SaveDocument(ctx, doc))
	}

	docs, err := store.GetAllDocuments(ctx)
	require.NoError(t, err)
	require.Len(t, docs, 5)
	for i := range docs {
		assert.Equal(t, fmt.Sprintf("doc-%d", i), docs[i].ID)
	}
}

func TestDocumentStore_UpdateKeepsPosition(t *testing.T) {
	store := NewDocumentStore()
	ctx := context.Background()

	require.NoError(t, store.SaveDocument(ctx, &domain.Document{ID: "a", Text: "one"}))
	require.NoError(t, store.SaveDocument(ctx, &domain.Document{ID: "b", Text: "two"}))
	require.NoError(t, store.SaveDocument(ctx, &domain.Document{ID: "a", Text: "updated"}))

	docs, err := store.GetAllDocuments(ctx)
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "a", docs[0].ID)
	assert.Equal(t, "updated", docs[0].Text)
}

func TestDocumentStore_Delete(t *testing.T) {
	store := NewDocumentStore()
	ctx := context.Background()

	require.NoError(t, store.SaveDocument(ctx, &domain.Document{ID: "a", Text: "one"}))
	require.NoError(t, store.SaveDocument(ctx, &domain.Document{ID: "b", Text: "two"}))
	require.NoError(t, store.DeleteDocument(ctx, "a"))

	count, err := store.CountDocuments(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	docs, err := store.GetAllDocuments(ctx)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "b", docs[0].ID)

	// Deleting a missing document is a no-op.
	assert.NoError(t, store.DeleteDocument(ctx, "a"))
}
