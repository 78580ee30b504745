// Package storage provides the durable key-value backends GameBox persists
// into. A backend is a flat, synchronous key-value surface; namespacing and
// JSON encoding live one level up in the store package.
package storage

import "context"

// Backend is the minimal persistence contract.
//
// Get returns (nil, nil) when the key is absent; a nil error with a non-nil
// slice means the key exists (possibly with an empty value). Set fully
// replaces prior content. Remove is a no-op for missing keys.
type Backend interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
}
