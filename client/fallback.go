package client

import (
	"errors"
	"sync"
)

// ErrFallbackNotFound is returned when the fallback store has no record
// matching the requested slug or id.
var ErrFallbackNotFound = errors.New("record not found in fallback store")

// FallbackStore is an in-memory seeded dataset with the same read/write
// surface as the remote service. It exists so callers still get a rendering
// when the network call fails; its contents are never synchronized with the
// real backend and do not survive a restart.
type FallbackStore[T any] struct {
	mu       sync.RWMutex
	items    []T
	id       func(T) string
	slug     func(T) string
	featured func(T) bool
}

// NewFallbackStore creates a store over seed with the accessors needed for
// id and slug lookups. featured may be nil for types without a featured flag.
func NewFallbackStore[T any](seed []T, id, slug func(T) string, featured func(T) bool) *FallbackStore[T] {
	items := make([]T, len(seed))
	copy(items, seed)
	return &FallbackStore[T]{
		items:    items,
		id:       id,
		slug:     slug,
		featured: featured,
	}
}

// All returns a copy of every record.
func (s *FallbackStore[T]) All() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

// Featured returns records with the featured flag set, truncated to limit.
func (s *FallbackStore[T]) Featured(limit int) []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]T, 0, limit)
	for _, item := range s.items {
		if s.featured != nil && s.featured(item) {
			out = append(out, item)
			if len(out) >= limit {
				break
			}
		}
	}
	return out
}

// BySlug returns the first record whose slug matches.
func (s *FallbackStore[T]) BySlug(slug string) (T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, item := range s.items {
		if s.slug(item) == slug {
			return item, nil
		}
	}
	var zero T
	return zero, ErrFallbackNotFound
}

// ByID returns the record with the given id.
func (s *FallbackStore[T]) ByID(id string) (T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, item := range s.items {
		if s.id(item) == id {
			return item, nil
		}
	}
	var zero T
	return zero, ErrFallbackNotFound
}

// Insert appends a record.
func (s *FallbackStore[T]) Insert(item T) {
	s.mu.Lock()
	s.items = append(s.items, item)
	s.mu.Unlock()
}

// Update applies mutate to the record with the given id and returns the
// mutated copy.
func (s *FallbackStore[T]) Update(id string, mutate func(*T)) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.id(s.items[i]) == id {
			mutate(&s.items[i])
			return s.items[i], nil
		}
	}
	var zero T
	return zero, ErrFallbackNotFound
}

// Delete removes the record with the given id.
func (s *FallbackStore[T]) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.id(s.items[i]) == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return nil
		}
	}
	return ErrFallbackNotFound
}

// Len returns the number of records.
func (s *FallbackStore[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}
