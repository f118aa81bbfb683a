package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/recipebook/recipe-book/internal/core/domain"
	"github.com/recipebook/recipe-book/internal/core/ports"
)

type CategoryService struct {
	categories ports.Collection[domain.Category]
	log        zerolog.Logger
}

var _ ports.CategoryService = (*CategoryService)(nil)

func NewCategoryService(categories ports.Collection[domain.Category], log zerolog.Logger) *CategoryService {
	return &CategoryService{categories: categories, log: log}
}

func (s *CategoryService) List(ctx context.Context) ([]domain.Category, error) {
	return s.categories.Load(ctx)
}

// Create always succeeds for a non-empty name; names need not be unique.
func (s *CategoryService) Create(ctx context.Context, name, description string) (*domain.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.InvalidInput("category name is required")
	}

	c := domain.Category{
		ID:          "cat-" + uuid.NewString(),
		Name:        name,
		Description: strings.TrimSpace(description),
	}
	err := s.categories.Update(ctx, func(cs []domain.Category) ([]domain.Category, error) {
		return append(cs, c), nil
	})
	if err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}

	s.log.Info().Str("category_id", c.ID).Str("name", c.Name).Msg("category created")
	return &c, nil
}

func (s *CategoryService) Update(ctx context.Context, id, name, description string) (*domain.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.InvalidInput("category name is required")
	}

	var updated domain.Category
	err := s.categories.Update(ctx, func(cs []domain.Category) ([]domain.Category, error) {
		for i := range cs {
			if cs[i].ID == id {
				cs[i].Name = name
				cs[i].Description = strings.TrimSpace(description)
				updated = cs[i]
				return cs, nil
			}
		}
		return nil, domain.ErrCategoryNotFound
	})
	if err != nil {
		return nil, fmt.Errorf("update category %s: %w", id, err)
	}

	s.log.Info().Str("category_id", id).Msg("category updated")
	return &updated, nil
}

// Delete removes the category. Recipes referencing it keep their categoryId.
func (s *CategoryService) Delete(ctx context.Context, id string) error {
	err := s.categories.Update(ctx, func(cs []domain.Category) ([]domain.Category, error) {
		for i := range cs {
			if cs[i].ID == id {
				return append(cs[:i], cs[i+1:]...), nil
			}
		}
		return nil, domain.ErrCategoryNotFound
	})
	if err != nil {
		return fmt.Errorf("delete category %s: %w", id, err)
	}

	s.log.Info().Str("category_id", id).Msg("category deleted")
	return nil
}
