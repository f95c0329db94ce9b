package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

// MemoryStore keeps documents in process memory. Used by tests and as the
// ephemeral backend; every consumer gets an isolated instance rather than
// shared module-level state.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string][]byte
}

// NewMemory creates an empty in-memory store.
func NewMemory() *MemoryStore {
	return &MemoryStore{values: make(map[string][]byte)}
}

// Load decodes the value stored under key into dest.
func (s *MemoryStore) Load(_ context.Context, key string, dest any) error {
	s.mu.RLock()
	raw, ok := s.values[key]
	s.mu.RUnlock()
	if !ok {
		return ErrNotFound
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return fmt.Errorf("decoding value for %q: %w", key, err)
	}
	return nil
}

// Save encodes value and stores it under key.
func (s *MemoryStore) Save(_ context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encoding value for %q: %w", key, err)
	}
	s.mu.Lock()
	s.values[key] = raw
	s.mu.Unlock()
	return nil
}

// Delete removes the value under key.
func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	delete(s.values, key)
	s.mu.Unlock()
	return nil
}
