// Package docstore keeps whole JSON documents under string keys and offers
// atomic read-modify-write on them. Backends: file, memory, redis, postgres.
package docstore

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned by Get when no document exists for the key.
	ErrNotFound = errors.New("document not found")
	// ErrMalformed is returned when a stored document cannot be decoded.
	ErrMalformed = errors.New("document is malformed")
)

// UpdateFunc receives the current raw document (nil, false when absent) and
// returns the replacement. Returning an error aborts the update and leaves
// the stored document untouched.
type UpdateFunc func(current []byte, exists bool) ([]byte, error)

// Store is the contract every backend implements.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, body []byte) error
	// Update runs fn as one transaction against key. Concurrent Updates on
	// the same key never interleave.
	Update(ctx context.Context, key string, fn UpdateFunc) error
	Close() error
}
