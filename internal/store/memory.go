package store

import (
	"context"
	"sync"
)

type memoryStore struct {
	mu   sync.RWMutex
	docs map[string][]byte
}

// NewMemory returns a map-backed Store. Used by tests and by embedders that
// want an ephemeral store without touching disk.
func NewMemory() Store {
	return &memoryStore{docs: make(map[string][]byte)}
}

func (s *memoryStore) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	raw, ok := s.docs[key]
	if !ok {
		return nil, nil
	}
	cp := make([]byte, len(raw))
	copy(cp, raw)
	return cp, nil
}

func (s *memoryStore) Put(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := make([]byte, len(value))
	copy(cp, value)
	s.docs[key] = cp
	return nil
}

func (s *memoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.docs, key)
	return nil
}
