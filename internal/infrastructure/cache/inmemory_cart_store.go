// Package cache provides the key-value backing stores behind carts.
package cache

import (
	"context"
	"sync"
)

// InMemoryCartStore keeps cart payloads in a process-local map. Suited
// for development and tests; carts are lost on restart.
type InMemoryCartStore struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewInMemoryCartStore creates an empty in-memory store
func NewInMemoryCartStore() *InMemoryCartStore {
	return &InMemoryCartStore{values: make(map[string]string)}
}

// Get returns the stored payload for key
func (s *InMemoryCartStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok, nil
}

// Set stores the payload, replacing any previous value
func (s *InMemoryCartStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

// Delete removes the payload for key
func (s *InMemoryCartStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	return nil
}

// Len reports the number of stored carts
func (s *InMemoryCartStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.values)
}
