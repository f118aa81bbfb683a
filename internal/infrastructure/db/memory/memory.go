// Package memory is a process-local key-value Backend, used for tests and
// for STORAGE_DRIVER=memory.
package memory

import (
	"context"
	"sync"

	"github.com/recipebook/recipe-book/internal/infrastructure/store"
)

type Backend struct {
	mu   sync.RWMutex
	data map[string][]byte
}

var _ store.Backend = (*Backend)(nil)

func New() *Backend {
	return &Backend{data: make(map[string][]byte)}
}

func (b *Backend) Get(_ context.Context, key string) ([]byte, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	v, ok := b.data[key]
	if !ok {
		return nil, store.ErrKeyNotFound
	}
	return append([]byte(nil), v...), nil
}

func (b *Backend) Set(_ context.Context, key string, value []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.data[key] = append([]byte(nil), value...)
	return nil
}

func (b *Backend) Delete(_ context.Context, key string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.data, key)
	return nil
}

func (b *Backend) Ping(context.Context) error { return nil }
