package docstore

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// GetJSON decodes the document at key into out. It reports false with a nil
// error when the document does not exist.
func GetJSON[T any](ctx context.Context, s Store, key string, out *T) (bool, error) {
	raw, err := s.Get(ctx, key)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := Decode(key, raw, out); err != nil {
		return true, err
	}
	return true, nil
}

// PutJSON replaces the document at key with the encoding of v.
func PutJSON[T any](ctx context.Context, s Store, key string, v T) error {
	body, err := Encode(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return s.Put(ctx, key, body)
}

// UpdateJSON loads the document at key (zero value when absent), lets fn
// mutate it and writes the result back in the same transaction.
func UpdateJSON[T any](ctx context.Context, s Store, key string, fn func(doc *T, exists bool) error) error {
	return s.Update(ctx, key, func(current []byte, exists bool) ([]byte, error) {
		var doc T
		if exists {
			if err := Decode(key, current, &doc); err != nil {
				return nil, err
			}
		}
		if err := fn(&doc, exists); err != nil {
			return nil, err
		}
		body, err := Encode(doc)
		if err != nil {
			return nil, fmt.Errorf("encode %s: %w", key, err)
		}
		return body, nil
	})
}

// Decode unmarshals raw into out, wrapping failures in ErrMalformed.
func Decode(key string, raw []byte, out any) error {
	if len(bytes.TrimSpace(raw)) == 0 {
		return fmt.Errorf("%w: %s is empty", ErrMalformed, key)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrMalformed, key, err)
	}
	return nil
}

// Encode is the canonical on-disk encoding: indented JSON.
func Encode(v any) ([]byte, error) {
	return json.MarshalIndent(v, "", "  ")
}
