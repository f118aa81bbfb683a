package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/recipebook/recipe-book/internal/core/domain"
	"github.com/recipebook/recipe-book/internal/core/ports"
	"github.com/recipebook/recipe-book/internal/metrics"
)

// Collection implements ports.Collection as a JSON array under one key.
type Collection[T any] struct {
	store *Store
	key   string
}

var _ ports.Collection[domain.Category] = (*Collection[domain.Category])(nil)

// NewCollection binds a typed collection to key. Collections created for the
// same key share one lock.
func NewCollection[T any](s *Store, key string) *Collection[T] {
	return &Collection[T]{store: s, key: key}
}

// Key returns the namespace key.
func (c *Collection[T]) Key() string {
	return c.key
}

func (c *Collection[T]) Load(ctx context.Context) ([]T, error) {
	l := c.store.lock(c.key)
	l.Lock()
	defer l.Unlock()
	return c.load(ctx)
}

func (c *Collection[T]) Save(ctx context.Context, records []T) error {
	l := c.store.lock(c.key)
	l.Lock()
	defer l.Unlock()
	return c.save(ctx, records)
}

func (c *Collection[T]) Seed(ctx context.Context, defaults []T) (bool, error) {
	l := c.store.lock(c.key)
	l.Lock()
	defer l.Unlock()

	_, err := c.store.backend.Get(ctx, c.key)
	switch {
	case err == nil:
		return false, nil
	case !errors.Is(err, ErrKeyNotFound):
		return false, fmt.Errorf("seed %s: %w", c.key, err)
	}
	if err := c.save(ctx, defaults); err != nil {
		return false, err
	}
	c.store.log.Debug().Str("collection", c.key).Int("records", len(defaults)).Msg("collection seeded")
	return true, nil
}

func (c *Collection[T]) Update(ctx context.Context, fn func([]T) ([]T, error)) error {
	l := c.store.lock(c.key)
	l.Lock()
	defer l.Unlock()

	records, err := c.load(ctx)
	if err != nil {
		return err
	}
	next, err := fn(records)
	if err != nil {
		return err
	}
	return c.save(ctx, next)
}

func (c *Collection[T]) load(ctx context.Context) ([]T, error) {
	raw, err := c.store.backend.Get(ctx, c.key)
	if errors.Is(err, ErrKeyNotFound) {
		return []T{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", c.key, err)
	}

	var records []T
	if err := json.Unmarshal(raw, &records); err != nil {
		metrics.StoreCorruptTotal.WithLabelValues(c.key).Inc()
		if c.store.resetCorrupt {
			c.store.log.Warn().Err(err).Str("collection", c.key).Msg("corrupt collection treated as empty")
			return []T{}, nil
		}
		return nil, fmt.Errorf("load %s: %w: %v", c.key, domain.ErrCorruptStorage, err)
	}
	if records == nil {
		records = []T{}
	}
	return records, nil
}

func (c *Collection[T]) save(ctx context.Context, records []T) error {
	if records == nil {
		records = []T{}
	}
	raw, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encode %s: %w", c.key, err)
	}
	if err := c.store.backend.Set(ctx, c.key, raw); err != nil {
		return fmt.Errorf("save %s: %w", c.key, err)
	}
	return nil
}
