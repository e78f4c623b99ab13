// Package sqlite persists the client's local state in a small sqlite
// key/value table, the stand-in for browser localStorage.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"eventconnect/internal/domain"
)

const schema = `
CREATE TABLE IF NOT EXISTS kv (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
);`

// KeyStore is a sqlite-backed domain.KeyStore.
type KeyStore struct {
	db *sqlx.DB
}

// Open opens (creating if needed) the key/value store at path.
func Open(path string) (*KeyStore, error) {
	db, err := sqlx.Connect("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open state store: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize state store: %w", err)
	}
	return &KeyStore{db: db}, nil
}

// NewKeyStore wraps an existing database handle. Mostly useful in tests.
func NewKeyStore(db *sqlx.DB) *KeyStore {
	return &KeyStore{db: db}
}

func (s *KeyStore) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.GetContext(ctx, &value, `SELECT value FROM kv WHERE key = ?`, key)
	if errors.Is(err, sql.ErrNoRows) {
		return "", domain.ErrKeyNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to read key %q: %w", key, err)
	}
	return value, nil
}

// SetMany writes every key in one transaction so a partial write can never
// be observed after a failure.
func (s *KeyStore) SetMany(ctx context.Context, values map[string]string) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin state write: %w", err)
	}
	defer tx.Rollback()

	for key, value := range values {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO kv (key, value) VALUES (?, ?)
			 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
			key, value)
		if err != nil {
			return fmt.Errorf("failed to write key %q: %w", key, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit state write: %w", err)
	}
	return nil
}

// DeleteMany removes the given keys in one transaction. Missing keys are
// not an error.
func (s *KeyStore) DeleteMany(ctx context.Context, keys ...string) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin state delete: %w", err)
	}
	defer tx.Rollback()

	for _, key := range keys {
		if _, err := tx.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, key); err != nil {
			return fmt.Errorf("failed to delete key %q: %w", key, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit state delete: %w", err)
	}
	return nil
}

func (s *KeyStore) Close() error {
	return s.db.Close()
}
