// Package redis backs the key-value space with Redis strings.
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/recipebook/recipe-book/internal/infrastructure/store"
)

const defaultTimeout = 5 * time.Second

// Config captures the settings for establishing a Redis connection.
type Config struct {
	Addr    string
	DB      int
	Timeout time.Duration
	// Prefix is prepended to every namespace key.
	Prefix string
}

// Connect initialises a Redis client and validates connectivity with a ping.
// A default timeout is applied when none is provided.
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	client := redis.NewClient(&redis.Options{
		Addr: cfg.Addr,
		DB:   cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return client, nil
}

// KV implements store.Backend. Values never expire.
type KV struct {
	client *redis.Client
	prefix string
}

var _ store.Backend = (*KV)(nil)

func NewKV(client *redis.Client, prefix string) *KV {
	return &KV{client: client, prefix: prefix}
}

func (kv *KV) Get(ctx context.Context, key string) ([]byte, error) {
	v, err := kv.client.Get(ctx, kv.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, store.ErrKeyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis get %s: %w", key, err)
	}
	return v, nil
}

func (kv *KV) Set(ctx context.Context, key string, value []byte) error {
	return kv.client.Set(ctx, kv.prefix+key, value, 0).Err()
}

func (kv *KV) Delete(ctx context.Context, key string) error {
	return kv.client.Del(ctx, kv.prefix+key).Err()
}

func (kv *KV) Ping(ctx context.Context) error {
	return kv.client.Ping(ctx).Err()
}

func (kv *KV) Close() error {
	return kv.client.Close()
}
