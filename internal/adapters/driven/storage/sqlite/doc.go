// Package sqlite provides a SQLite-backed document store. Documents are the
// only persisted state: the TF-IDF index itself is in-memory and rebuilt
// from this store on every fit.
package sqlite
