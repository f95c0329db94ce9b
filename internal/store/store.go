package store

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned when no value exists under the requested key.
	ErrNotFound = errors.New("key not found")
)

// Store persists JSON-encoded documents under string keys. Each managed
// collection (services, team members, settings) lives under one fixed key.
type Store interface {
	// Load decodes the value stored under key into dest. Returns ErrNotFound
	// when the key has never been written.
	Load(ctx context.Context, key string, dest any) error
	// Save encodes value and writes it under key, replacing any prior value.
	Save(ctx context.Context, key string, value any) error
	// Delete removes the value under key. Deleting a missing key is a no-op.
	Delete(ctx context.Context, key string) error
}

// LoadOr decodes the value under key, substituting def when the key is
// missing or the stored value cannot be decoded. It never fails outward;
// callers that need to distinguish failure use Store.Load directly.
func LoadOr[T any](ctx context.Context, s Store, key string, def T) T {
	var v T
	if err := s.Load(ctx, key, &v); err != nil {
		return def
	}
	return v
}
