package service

import (
	"context"
	"sync"

	"github.com/recipebook/recipe-book/internal/core/domain"
	"github.com/recipebook/recipe-book/internal/core/ports"
)

type stubCollection[T any] struct {
	mu      sync.Mutex
	records []T
	saves   int
	loadErr error
}

func (c *stubCollection[T]) Load(context.Context) ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.loadErr != nil {
		return nil, c.loadErr
	}
	return append([]T{}, c.records...), nil
}

func (c *stubCollection[T]) Save(_ context.Context, records []T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.records = append([]T{}, records...)
	c.saves++
	return nil
}

func (c *stubCollection[T]) Seed(_ context.Context, defaults []T) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.saves > 0 {
		return false, nil
	}
	c.records = append([]T{}, defaults...)
	c.saves++
	return true, nil
}

func (c *stubCollection[T]) Update(_ context.Context, fn func([]T) ([]T, error)) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.loadErr != nil {
		return c.loadErr
	}
	next, err := fn(append([]T{}, c.records...))
	if err != nil {
		return err
	}
	c.records = append([]T{}, next...)
	c.saves++
	return nil
}

type stubBookmarks struct {
	sets map[string]*stubCollection[string]
}

func newStubBookmarks() *stubBookmarks {
	return &stubBookmarks{sets: make(map[string]*stubCollection[string])}
}

func (b *stubBookmarks) For(owner string) ports.Collection[string] {
	set, ok := b.sets[owner]
	if !ok {
		set = &stubCollection[string]{}
		b.sets[owner] = set
	}
	return set
}

type stubSlot struct {
	sess *domain.Session
}

func (s *stubSlot) Load(context.Context) (*domain.Session, error) {
	if s.sess == nil {
		return nil, nil
	}
	clone := *s.sess
	return &clone, nil
}

func (s *stubSlot) Save(_ context.Context, sess *domain.Session) error {
	clone := *sess
	s.sess = &clone
	return nil
}

func (s *stubSlot) Clear(context.Context) error {
	s.sess = nil
	return nil
}
