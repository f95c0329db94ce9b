package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// FileStore persists all keys as a single pretty-printed JSON object in one
// file, mirroring the one-value-per-key layout of browser local storage.
// Writes go through a temp file and rename so a crash mid-write cannot leave
// a truncated document behind. The mutex serializes writers within this
// process only; concurrent processes editing the same file race last-write-wins.
type FileStore struct {
	path string
	mu   sync.Mutex
}

// NewFile creates a file-backed store at path. The file is created lazily on
// first save.
func NewFile(path string) (*FileStore, error) {
	dir := filepath.Dir(path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating store directory: %w", err)
		}
	}
	return &FileStore{path: path}, nil
}

// Load decodes the value stored under key into dest.
func (s *FileStore) Load(_ context.Context, key string, dest any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return err
	}
	raw, ok := doc[key]
	if !ok {
		return ErrNotFound
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return fmt.Errorf("decoding value for %q: %w", key, err)
	}
	return nil
}

// Save encodes value and writes it under key.
func (s *FileStore) Save(_ context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encoding value for %q: %w", key, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	// A corrupted file fails the write rather than being overwritten.
	if err != nil && err != ErrNotFound {
		return err
	}
	if doc == nil {
		doc = make(map[string]json.RawMessage)
	}
	doc[key] = raw
	return s.write(doc)
}

// Delete removes the value under key.
func (s *FileStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err == ErrNotFound {
		return nil
	}
	if err != nil {
		return err
	}
	if _, ok := doc[key]; !ok {
		return nil
	}
	delete(doc, key)
	return s.write(doc)
}

func (s *FileStore) read() (map[string]json.RawMessage, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("reading store file: %w", err)
	}
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing store file %s: %w", s.path, err)
	}
	return doc, nil
}

func (s *FileStore) write(doc map[string]json.RawMessage) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding store file: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".store-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing store file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing store file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replacing store file: %w", err)
	}
	return nil
}
