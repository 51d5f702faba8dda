// Package domain defines the core business entities for Passim.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Document: A stored document supplied by the document store
//   - Paragraph: A segmented unit of document text, the atomic retrieval unit
//   - RetrievedDocument: A ranked paragraph returned from a query
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
