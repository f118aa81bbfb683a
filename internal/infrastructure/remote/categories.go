package remote

import (
	"context"

	"github.com/recipebook/recipe-book/internal/core/domain"
	"github.com/recipebook/recipe-book/internal/core/ports"
)

type CategoryService struct {
	c *Client
}

var _ ports.CategoryService = (*CategoryService)(nil)

func NewCategoryService(c *Client) *CategoryService {
	return &CategoryService{c: c}
}

type categoryBody struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

func (s *CategoryService) List(ctx context.Context) ([]domain.Category, error) {
	req, err := s.c.request(ctx, "")
	if err != nil {
		return nil, err
	}
	var out []domain.Category
	resp, err := req.SetResult(&out).Get("/categories")
	if err := s.c.check(resp, err); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *CategoryService) Create(ctx context.Context, name, description string) (*domain.Category, error) {
	req, err := s.c.request(ctx, "")
	if err != nil {
		return nil, err
	}
	var out domain.Category
	resp, err := req.SetBody(categoryBody{Name: name, Description: description}).SetResult(&out).Post("/categories")
	if err := s.c.check(resp, err); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *CategoryService) Update(ctx context.Context, id, name, description string) (*domain.Category, error) {
	req, err := s.c.request(ctx, "")
	if err != nil {
		return nil, err
	}
	var out domain.Category
	resp, err := req.
		SetPathParam("id", id).
		SetBody(categoryBody{Name: name, Description: description}).
		SetResult(&out).
		Put("/categories/{id}")
	if err := s.c.check(resp, err); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *CategoryService) Delete(ctx context.Context, id string) error {
	req, err := s.c.request(ctx, "")
	if err != nil {
		return err
	}
	resp, err := req.SetPathParam("id", id).Delete("/categories/{id}")
	return s.c.check(resp, err)
}
