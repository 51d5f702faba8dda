package domain

// DefaultTopK is the number of paragraphs returned when no limit is given.
const DefaultTopK = 10

// RetrieveOptions configures a retrieve call.
type RetrieveOptions struct {
	// TopK is the maximum number of paragraphs to return.
	// Zero or negative means DefaultTopK.
	TopK int

	// Filters restricts results by metadata. Recognised but not supported:
	// supplying a non-empty map fails with ErrUnsupportedFilter rather than
	// being silently ignored.
	Filters map[string]string

	// Index selects an alternative index. Recognised but not supported:
	// supplying a non-empty value fails with ErrUnsupportedIndex.
	Index string
}
