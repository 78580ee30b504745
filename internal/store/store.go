// Package store implements the namespaced JSON key-value layer every GameBox
// component persists through. Values are marshaled to JSON; reads that hit
// missing or unreadable data degrade to a caller-supplied fallback instead
// of failing.
package store

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/dkarklins/gamebox/internal/storage"
)

// Store wraps a storage.Backend with a key namespace and a mutation lock.
//
// Update is the only sanctioned way to mutate collection-shaped state (user
// lists, score maps): a read followed by a separate Set can lose writes when
// two code paths race, so collections must always go through the single
// read-transform-write cycle Update provides.
type Store struct {
	mu      sync.Mutex
	backend storage.Backend
	ns      string
}

func New(backend storage.Backend, namespace string) *Store {
	return &Store{backend: backend, ns: namespace}
}

func (s *Store) key(name string) string {
	if s.ns == "" {
		return name
	}
	return s.ns + ":" + name
}

// Remove deletes the entry for name. Missing entries are not an error.
func (s *Store) Remove(ctx context.Context, name string) error {
	return s.backend.Remove(ctx, s.key(name))
}

// Get returns the value persisted under name, or fallback when the entry is
// absent, unreadable, or not valid JSON for T. It never fails.
func Get[T any](ctx context.Context, s *Store, name string, fallback T) T {
	raw, err := s.backend.Get(ctx, s.key(name))
	if err != nil || raw == nil {
		return fallback
	}

	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return fallback
	}
	return v
}

// Set persists value under name, fully replacing prior content.
func Set[T any](ctx context.Context, s *Store, name string, value T) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return s.backend.Set(ctx, s.key(name), raw)
}

// Update reads the current value (or fallback), applies the pure transform,
// persists the result, and returns it. The whole cycle runs under the store
// mutex, so concurrent Update calls against the same Store cannot interleave.
func Update[T any](ctx context.Context, s *Store, name string, fallback T, transform func(T) T) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := transform(Get(ctx, s, name, fallback))
	if err := Set(ctx, s, name, next); err != nil {
		return next, err
	}
	return next, nil
}
