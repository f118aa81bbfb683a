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

// SessionSlot stores the single active session as one JSON object.
type SessionSlot struct {
	store *Store
}

var _ ports.SessionSlot = (*SessionSlot)(nil)

func NewSessionSlot(s *Store) *SessionSlot {
	return &SessionSlot{store: s}
}

func (ss *SessionSlot) Load(ctx context.Context) (*domain.Session, error) {
	raw, err := ss.store.backend.Get(ctx, KeySession)
	if errors.Is(err, ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}

	var sess domain.Session
	if err := json.Unmarshal(raw, &sess); err != nil {
		metrics.StoreCorruptTotal.WithLabelValues(KeySession).Inc()
		if ss.store.resetCorrupt {
			ss.store.log.Warn().Err(err).Msg("corrupt session slot cleared")
			return nil, ss.Clear(ctx)
		}
		return nil, fmt.Errorf("load session: %w: %v", domain.ErrCorruptStorage, err)
	}
	return &sess, nil
}

func (ss *SessionSlot) Save(ctx context.Context, sess *domain.Session) error {
	raw, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := ss.store.backend.Set(ctx, KeySession, raw); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (ss *SessionSlot) Clear(ctx context.Context) error {
	if err := ss.store.backend.Delete(ctx, KeySession); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// BookmarkSets hands out bookmark collections keyed by owner.
type BookmarkSets struct {
	store *Store
}

var _ ports.BookmarkSets = (*BookmarkSets)(nil)

func NewBookmarkSets(s *Store) *BookmarkSets {
	return &BookmarkSets{store: s}
}

func (b *BookmarkSets) For(owner string) ports.Collection[string] {
	key := KeyBookmarks
	if owner != "" {
		key += ":" + owner
	}
	return NewCollection[string](b.store, key)
}
