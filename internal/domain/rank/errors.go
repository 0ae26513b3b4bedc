package rank

import "errors"

// Sentinel kinds for ranking errors.
var (
	// ErrEmptyGraph marks a scope with no rankable matches. Callers skip the
	// scope; it is never fatal.
	ErrEmptyGraph = errors.New("empty graph")
)
