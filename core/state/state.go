// Package state provides the application-wide key-value store shared by
// every request context.
//
// A *State is created once by the application and handed out by pointer,
// so a value set while handling one request is visible to all later ones.
// Individual operations are safe for concurrent use; read-modify-write
// sequences spanning several calls need caller-side coordination.
package state

import (
	"maps"
	"slices"
	"sync"
)

// State is a concurrency-safe mapping from string keys to arbitrary values.
// The zero value is ready to use.
type State struct {
	mu     sync.RWMutex
	values map[string]any
}

// New creates an empty State, optionally seeded with initial values.
// The initial map is copied.
func New(initial map[string]any) *State {
	s := &State{values: make(map[string]any, len(initial))}
	maps.Copy(s.values, initial)
	return s
}

// Get returns the value stored under key.
func (s *State) Get(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok
}

// Set stores value under key, replacing any previous value.
func (s *State) Set(key string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.values == nil {
		s.values = make(map[string]any)
	}
	s.values[key] = value
}

// Delete removes key. Deleting a missing key is a no-op.
func (s *State) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
}

// Has reports whether key is present.
func (s *State) Has(key string) bool {
	_, ok := s.Get(key)
	return ok
}

// Len returns the number of stored keys.
func (s *State) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.values)
}

// Keys returns the stored keys in sorted order.
func (s *State) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Sorted(maps.Keys(s.values))
}

// Range calls fn for each entry over a snapshot of the store, so fn may
// modify the State. Iteration stops when fn returns false.
func (s *State) Range(fn func(key string, value any) bool) {
	s.mu.RLock()
	snapshot := maps.Clone(s.values)
	s.mu.RUnlock()

	for _, k := range slices.Sorted(maps.Keys(snapshot)) {
		if !fn(k, snapshot[k]) {
			return
		}
	}
}

// Get returns the value under key asserted to T.
// It reports false when the key is missing or holds another type.
func Get[T any](s *State, key string) (T, bool) {
	var zero T
	v, ok := s.Get(key)
	if !ok {
		return zero, false
	}
	t, ok := v.(T)
	if !ok {
		return zero, false
	}
	return t, true
}

// GetOr returns the value under key asserted to T, or fallback.
func GetOr[T any](s *State, key string, fallback T) T {
	if v, ok := Get[T](s, key); ok {
		return v
	}
	return fallback
}
