package storage

import (
	"context"
	"fmt"
	"io"
	"sync"
)

// StubStorage keeps blobs in memory. For development and tests.
type StubStorage struct {
	mu      sync.RWMutex
	objects map[string][]byte
	baseURL string
}

// NewStubStorage creates an empty stub
func NewStubStorage() *StubStorage {
	return &StubStorage{
		objects: make(map[string][]byte),
		baseURL: "https://storage.invalid",
	}
}

// Put stores the blob in memory and returns a fake URL
func (s *StubStorage) Put(_ context.Context, key string, body io.Reader, _ string) (string, error) {
	data, err := io.ReadAll(body)
	if err != nil {
		return "", fmt.Errorf("read body for %s: %w", key, err)
	}
	s.mu.Lock()
	s.objects[key] = data
	s.mu.Unlock()
	return fmt.Sprintf("%s/%s", s.baseURL, key), nil
}

// Delete removes the blob
func (s *StubStorage) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	delete(s.objects, key)
	s.mu.Unlock()
	return nil
}

// Object returns a stored blob, for assertions in tests
func (s *StubStorage) Object(key string) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.objects[key]
	return data, ok
}
