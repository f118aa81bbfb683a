package remote

import (
	"bytes"
	"context"

	"github.com/recipebook/recipe-book/internal/core/domain"
	"github.com/recipebook/recipe-book/internal/core/ports"
)

type RecipeService struct {
	c *Client
}

var _ ports.RecipeService = (*RecipeService)(nil)

func NewRecipeService(c *Client) *RecipeService {
	return &RecipeService{c: c}
}

type bookmarkBody struct {
	Bookmarked bool `json:"bookmarked"`
}

func (s *RecipeService) List(ctx context.Context, filter domain.RecipeFilter) ([]domain.Recipe, error) {
	req, err := s.c.request(ctx, "")
	if err != nil {
		return nil, err
	}
	query := map[string]string{}
	for k, v := range map[string]string{
		"search":     filter.Search,
		"categoryId": filter.CategoryID,
		"difficulty": string(filter.Difficulty),
		"userId":     filter.UserID,
	} {
		if v != "" {
			query[k] = v
		}
	}

	var out []domain.Recipe
	resp, err := req.SetQueryParams(query).SetResult(&out).Get("/recipes")
	if err := s.c.check(resp, err); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *RecipeService) Get(ctx context.Context, id string) (*domain.Recipe, error) {
	req, err := s.c.request(ctx, "")
	if err != nil {
		return nil, err
	}
	var out domain.Recipe
	resp, err := req.SetPathParam("id", id).SetResult(&out).Get("/recipes/{id}")
	if err := s.c.check(resp, err); err != nil {
		return nil, err
	}
	return &out, nil
}

// Create authenticates with sess only; a nil session sends no token and
// leaves the anonymous policy to the server.
func (s *RecipeService) Create(ctx context.Context, sess *domain.Session, draft domain.RecipeDraft) (*domain.Recipe, error) {
	req := s.c.http.R().SetContext(ctx).SetError(newErrorEnvelope())
	if token := sessionToken(sess); token != "" {
		req.SetAuthToken(token)
	}
	var out domain.Recipe
	resp, err := req.SetBody(draft).SetResult(&out).Post("/recipes")
	if err := s.c.check(resp, err); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *RecipeService) Update(ctx context.Context, id string, patch domain.RecipePatch) (*domain.Recipe, error) {
	req, err := s.c.request(ctx, "")
	if err != nil {
		return nil, err
	}
	var out domain.Recipe
	resp, err := req.SetPathParam("id", id).SetBody(patch).SetResult(&out).Put("/recipes/{id}")
	if err := s.c.check(resp, err); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *RecipeService) Delete(ctx context.Context, id string) error {
	req, err := s.c.request(ctx, "")
	if err != nil {
		return err
	}
	resp, err := req.SetPathParam("id", id).Delete("/recipes/{id}")
	return s.c.check(resp, err)
}

func (s *RecipeService) ToggleBookmark(ctx context.Context, sess *domain.Session, id string) (bool, error) {
	if sess == nil {
		return false, domain.ErrUnauthenticated
	}
	req, err := s.c.request(ctx, sess.Token)
	if err != nil {
		return false, err
	}
	var out bookmarkBody
	resp, err := req.SetPathParam("id", id).SetResult(&out).Post("/recipes/{id}/bookmark")
	if err := s.c.check(resp, err); err != nil {
		return false, err
	}
	return out.Bookmarked, nil
}

func (s *RecipeService) IsBookmarked(ctx context.Context, sess *domain.Session, id string) (bool, error) {
	if sess == nil {
		return false, domain.ErrUnauthenticated
	}
	req, err := s.c.request(ctx, sess.Token)
	if err != nil {
		return false, err
	}
	var out bookmarkBody
	resp, err := req.SetPathParam("id", id).SetResult(&out).Get("/recipes/{id}/bookmark")
	if err := s.c.check(resp, err); err != nil {
		return false, err
	}
	return out.Bookmarked, nil
}

func (s *RecipeService) Bookmarked(ctx context.Context, sess *domain.Session) ([]domain.Recipe, error) {
	if sess == nil {
		return nil, domain.ErrUnauthenticated
	}
	req, err := s.c.request(ctx, sess.Token)
	if err != nil {
		return nil, err
	}
	var out []domain.Recipe
	resp, err := req.SetResult(&out).Get("/recipes/saved")
	if err := s.c.check(resp, err); err != nil {
		return nil, err
	}
	return out, nil
}

// AttachImage uploads data; the server stores the data URL on the recipe
// and returns it.
func (s *RecipeService) AttachImage(ctx context.Context, id string, data []byte) (string, error) {
	req, err := s.c.request(ctx, "")
	if err != nil {
		return "", err
	}
	var out struct {
		ImageURL string `json:"imageUrl"`
	}
	resp, err := req.
		SetPathParam("id", id).
		SetFileReader("image", "image", bytes.NewReader(data)).
		SetResult(&out).
		Post("/recipes/{id}/image")
	if err := s.c.check(resp, err); err != nil {
		return "", err
	}
	return out.ImageURL, nil
}

func (s *RecipeService) ShareLink(ctx context.Context, id string) (string, error) {
	req, err := s.c.request(ctx, "")
	if err != nil {
		return "", err
	}
	var out struct {
		ShareURL string `json:"shareUrl"`
	}
	resp, err := req.SetPathParam("id", id).SetResult(&out).Get("/recipes/{id}/share")
	if err := s.c.check(resp, err); err != nil {
		return "", err
	}
	return out.ShareURL, nil
}
