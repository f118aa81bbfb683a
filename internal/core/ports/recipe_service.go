package ports

import (
	"context"

	"github.com/recipebook/recipe-book/internal/core/domain"
)

// RecipeService is CRUD over the recipes collection plus bookmarks, images
// and share links. A nil session means no one is logged in.
type RecipeService interface {
	List(ctx context.Context, filter domain.RecipeFilter) ([]domain.Recipe, error)
	Get(ctx context.Context, id string) (*domain.Recipe, error)
	Create(ctx context.Context, sess *domain.Session, draft domain.RecipeDraft) (*domain.Recipe, error)
	Update(ctx context.Context, id string, patch domain.RecipePatch) (*domain.Recipe, error)
	// Delete is a no-op for unknown ids.
	Delete(ctx context.Context, id string) error

	ToggleBookmark(ctx context.Context, sess *domain.Session, id string) (bool, error)
	IsBookmarked(ctx context.Context, sess *domain.Session, id string) (bool, error)
	Bookmarked(ctx context.Context, sess *domain.Session) ([]domain.Recipe, error)

	// AttachImage returns an inline data URL for data; callers persist it
	// through Update.
	AttachImage(ctx context.Context, id string, data []byte) (string, error)
	ShareLink(ctx context.Context, id string) (string, error)
}
