// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - DocumentStore: document persistence; the retriever consumes its
//     ordered GetAllDocuments sequence when rebuilding the index
//
// # Optional Interfaces
//
//   - EventSink: structured event emission from core services. A nil sink
//     means events are discarded.
//   - ConfigStore: application configuration
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
