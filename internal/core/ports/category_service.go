package ports

import (
	"context"

	"github.com/recipebook/recipe-book/internal/core/domain"
)

// CategoryService is CRUD over the categories collection.
type CategoryService interface {
	List(ctx context.Context) ([]domain.Category, error)
	Create(ctx context.Context, name, description string) (*domain.Category, error)
	Update(ctx context.Context, id, name, description string) (*domain.Category, error)
	Delete(ctx context.Context, id string) error
}
