package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	_ "modernc.org/sqlite"
)

// SQLiteStore persists documents in a single key-value table. Values stay
// JSON-encoded so the stored layout matches the file backend one for one.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite opens (and if needed initializes) a SQLite-backed store at path.
// Use ":memory:" for an ephemeral database.
func NewSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	schema := `
CREATE TABLE IF NOT EXISTS documents (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL,
    updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);
`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Load decodes the value stored under key into dest.
func (s *SQLiteStore) Load(ctx context.Context, key string, dest any) error {
	var raw string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM documents WHERE key = ?`, key).Scan(&raw)
	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to load %q: %w", key, err)
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		return fmt.Errorf("decoding value for %q: %w", key, err)
	}
	return nil
}

// Save encodes value and upserts it under key.
func (s *SQLiteStore) Save(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encoding value for %q: %w", key, err)
	}

	query := `
		INSERT INTO documents (key, value, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			updated_at = CURRENT_TIMESTAMP
	`
	if _, err := s.db.ExecContext(ctx, query, key, string(raw)); err != nil {
		return fmt.Errorf("failed to save %q: %w", key, err)
	}
	return nil
}

// Delete removes the value under key.
func (s *SQLiteStore) Delete(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx,
		`DELETE FROM documents WHERE key = ?`, key); err != nil {
		return fmt.Errorf("failed to delete %q: %w", key, err)
	}
	return nil
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
