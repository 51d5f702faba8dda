package domain

import "time"

// Document represents a stored document as supplied by the document store.
// The retrieval core treats documents as read-only input; it never mutates
// them or writes them back.
type Document struct {
	// ID is the unique identifier for the document.
	ID string

	// Title is the human-readable title.
	Title string

	// Text is the full plain-text content.
	Text string

	// Meta contains arbitrary key-value pairs attached at ingestion time.
	Meta map[string]string

	// CreatedAt is when the document was first stored.
	CreatedAt time.Time

	// UpdatedAt is when the document was last updated.
	UpdatedAt time.Time
}

// Paragraph is a segmented, non-empty unit of document text. Paragraphs are
// the atomic retrieval unit: the index is built over paragraphs, and queries
// return paragraphs.
//
// Paragraphs are immutable once created. The full paragraph set for a fit
// pass is discarded and rebuilt wholesale on the next fit.
type Paragraph struct {
	// ID is assigned in strictly increasing order during segmentation,
	// starting at 0 for each fit pass.
	ID int

	// DocumentID references the owning document.
	DocumentID string

	// Text is the original (untrimmed) paragraph text.
	Text string

	// Meta is copied verbatim from the owning document at segmentation time.
	Meta map[string]string
}

// RetrievedDocument is a single ranked result from a retrieve call.
// Relevance scores are used only for ranking and are not surfaced.
type RetrievedDocument struct {
	// ParagraphID identifies the matched paragraph within the current index.
	ParagraphID int

	// DocumentID references the document the paragraph came from.
	DocumentID string

	// Text is the paragraph text.
	Text string

	// Meta is the owning document's metadata.
	Meta map[string]string
}
