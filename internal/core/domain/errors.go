package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates an entity already exists.
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrEmptyCorpus indicates the document store yielded zero non-empty
	// paragraphs, or the whole corpus tokenised to zero distinct terms.
	// Fatal to fit: no partial index is installed.
	ErrEmptyCorpus = errors.New("empty corpus")

	// ErrNotFitted indicates retrieve was called before any successful fit.
	ErrNotFitted = errors.New("index not fitted")

	// ErrUnsupportedFilter indicates metadata filters were supplied.
	// Filters are an explicit capability gap, never silently ignored.
	ErrUnsupportedFilter = errors.New("filters are not supported")

	// ErrUnsupportedIndex indicates an alternative index was requested.
	// Index switching is an explicit capability gap, never silently ignored.
	ErrUnsupportedIndex = errors.New("switching index is not supported")
)
