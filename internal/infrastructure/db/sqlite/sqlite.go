// Package sqlite stores the key-value space in a single SQLite table. It is
// the durable device-local backend of the command line client.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/recipebook/recipe-book/internal/infrastructure/store"
)

const schema = `CREATE TABLE IF NOT EXISTS kv (
	key        TEXT PRIMARY KEY,
	value      BLOB NOT NULL,
	updated_at TEXT NOT NULL
)`

// KV implements store.Backend on a *sql.DB.
type KV struct {
	db *sql.DB
}

var _ store.Backend = (*KV)(nil)

// Open opens (creating if needed) the database at path and ensures the
// schema. Use ":memory:" for a throwaway database.
func Open(ctx context.Context, path string) (*KV, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("sqlite open: %w", err)
	}
	// One connection keeps ":memory:" databases alive and serialises writers.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite schema: %w", err)
	}
	return &KV{db: db}, nil
}

func (kv *KV) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := kv.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, store.ErrKeyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("sqlite get %s: %w", key, err)
	}
	return value, nil
}

func (kv *KV) Set(ctx context.Context, key string, value []byte) error {
	query := `INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`
	if _, err := kv.db.ExecContext(ctx, query, key, value, time.Now().UTC().Format(time.RFC3339Nano)); err != nil {
		return fmt.Errorf("sqlite set %s: %w", key, err)
	}
	return nil
}

func (kv *KV) Delete(ctx context.Context, key string) error {
	if _, err := kv.db.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, key); err != nil {
		return fmt.Errorf("sqlite delete %s: %w", key, err)
	}
	return nil
}

func (kv *KV) Ping(ctx context.Context) error {
	return kv.db.PingContext(ctx)
}

func (kv *KV) Close() error {
	return kv.db.Close()
}
