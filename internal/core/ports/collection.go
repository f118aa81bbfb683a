package ports

import (
	"context"

	"github.com/recipebook/recipe-book/internal/core/domain"
)

// Collection is a whole-document persisted sequence of records stored under
// one namespace key.
type Collection[T any] interface {
	// Load returns the stored records, or an empty slice if the namespace
	// was never written.
	Load(ctx context.Context) ([]T, error)
	// Save replaces the stored sequence.
	Save(ctx context.Context, records []T) error
	// Seed writes defaults only when the namespace is absent. It reports
	// whether anything was written.
	Seed(ctx context.Context, defaults []T) (bool, error)
	// Update runs a load-modify-save cycle while holding the collection's
	// lock. Returning an error from fn aborts without saving.
	Update(ctx context.Context, fn func([]T) ([]T, error)) error
}

// BookmarkSets resolves the bookmark id set of an owner. An empty owner
// selects the device-wide set.
type BookmarkSets interface {
	For(owner string) Collection[string]
}

// SessionSlot is the single device-local active session.
type SessionSlot interface {
	// Load returns nil, nil when no session is active.
	Load(ctx context.Context) (*domain.Session, error)
	Save(ctx context.Context, sess *domain.Session) error
	Clear(ctx context.Context) error
}
