package contract

import "soulful-home-be/pkg/docstore"

var (
	ErrNotFound = docstore.ErrNotFound
	// ErrMalformedState means the backing document exists but cannot be read.
	// It is never treated as empty state.
	ErrMalformedState = docstore.ErrMalformed
)
