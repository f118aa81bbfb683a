package handler

import (
	"github.com/recipebook/recipe-book/internal/core/domain"
)

type registerRequest struct {
	Name     string `json:"name"     validate:"required"`
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required,min=6,max=72"`
	Email    string `json:"email"    validate:"required,email"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type profileRequest struct {
	Name     string  `json:"name"     validate:"required"`
	Username string  `json:"username" validate:"required"`
	Email    string  `json:"email"    validate:"required,email"`
	Avatar   *string `json:"avatar,omitempty"`
}

// authResponse mirrors domain.Session on the wire.
type authResponse struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
}

type categoryRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description,omitempty"`
}

type createRecipeRequest struct {
	Title        string   `json:"title"        validate:"required"`
	Description  string   `json:"description"`
	CookingTime  int      `json:"cookingTime"  validate:"gt=0"`
	Servings     int      `json:"servings"     validate:"gt=0"`
	Difficulty   string   `json:"difficulty"   validate:"required,oneof=easy medium hard"`
	CategoryID   string   `json:"categoryId"`
	Ingredients  []string `json:"ingredients"`
	Instructions string   `json:"instructions"`
	Image        string   `json:"image,omitempty"`
}

func (r createRecipeRequest) toDraft() domain.RecipeDraft {
	return domain.RecipeDraft{
		Title:        r.Title,
		Description:  r.Description,
		CookingTime:  r.CookingTime,
		Servings:     r.Servings,
		Difficulty:   domain.Difficulty(r.Difficulty),
		CategoryID:   r.CategoryID,
		Ingredients:  r.Ingredients,
		Instructions: r.Instructions,
		Image:        r.Image,
	}
}

// updateRecipeRequest is a partial update; omitted fields keep their value.
type updateRecipeRequest struct {
	Title        *string   `json:"title,omitempty"        validate:"omitempty,min=1"`
	Description  *string   `json:"description,omitempty"`
	CookingTime  *int      `json:"cookingTime,omitempty"  validate:"omitempty,gt=0"`
	Servings     *int      `json:"servings,omitempty"     validate:"omitempty,gt=0"`
	Difficulty   *string   `json:"difficulty,omitempty"   validate:"omitempty,oneof=easy medium hard"`
	CategoryID   *string   `json:"categoryId,omitempty"`
	Ingredients  *[]string `json:"ingredients,omitempty"`
	Instructions *string   `json:"instructions,omitempty"`
	Image        *string   `json:"image,omitempty"`
}

func (r updateRecipeRequest) toPatch() domain.RecipePatch {
	p := domain.RecipePatch{
		Title:        r.Title,
		Description:  r.Description,
		CookingTime:  r.CookingTime,
		Servings:     r.Servings,
		CategoryID:   r.CategoryID,
		Ingredients:  r.Ingredients,
		Instructions: r.Instructions,
		Image:        r.Image,
	}
	if r.Difficulty != nil {
		d := domain.Difficulty(*r.Difficulty)
		p.Difficulty = &d
	}
	return p
}

type bookmarkResponse struct {
	Bookmarked bool `json:"bookmarked"`
}

type shareResponse struct {
	ShareURL string `json:"shareUrl"`
}

type imageResponse struct {
	ImageURL string `json:"imageUrl"`
}
