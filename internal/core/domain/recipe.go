package domain

import (
	"strings"
	"time"
)

// Difficulty is the enumerated effort level of a recipe.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Valid reports whether d is one of the known levels.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// Recipe is the core aggregate. UserID and AuthorName are fixed at creation.
type Recipe struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	CookingTime  int        `json:"cookingTime"`
	Servings     int        `json:"servings"`
	Difficulty   Difficulty `json:"difficulty"`
	CategoryID   string     `json:"categoryId"`
	Ingredients  []string   `json:"ingredients"`
	Instructions string     `json:"instructions"`
	Image        string     `json:"image,omitempty"`
	UserID       string     `json:"userId"`
	AuthorName   string     `json:"authorName"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

// Steps splits the newline-delimited instructions, dropping blank lines.
func (r Recipe) Steps() []string {
	var steps []string
	for _, line := range strings.Split(r.Instructions, "\n") {
		if s := strings.TrimSpace(line); s != "" {
			steps = append(steps, s)
		}
	}
	return steps
}

// RecipeDraft carries the author-supplied content of a new recipe.
type RecipeDraft struct {
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	CookingTime  int        `json:"cookingTime"`
	Servings     int        `json:"servings"`
	Difficulty   Difficulty `json:"difficulty"`
	CategoryID   string     `json:"categoryId"`
	Ingredients  []string   `json:"ingredients"`
	Instructions string     `json:"instructions"`
	Image        string     `json:"image,omitempty"`
}

// Validate checks the invariants every stored recipe must satisfy.
func (d RecipeDraft) Validate() error {
	if strings.TrimSpace(d.Title) == "" {
		return InvalidInput("title is required")
	}
	if d.CookingTime <= 0 {
		return InvalidInput("cookingTime must be a positive number of minutes")
	}
	if d.Servings <= 0 {
		return InvalidInput("servings must be positive")
	}
	if !d.Difficulty.Valid() {
		return InvalidInput("difficulty must be one of: easy medium hard")
	}
	return nil
}

// RecipePatch is a partial update: nil fields keep the stored value, non-nil
// fields overwrite it. Identity, authorship and createdAt are not patchable.
type RecipePatch struct {
	Title        *string     `json:"title,omitempty"`
	Description  *string     `json:"description,omitempty"`
	CookingTime  *int        `json:"cookingTime,omitempty"`
	Servings     *int        `json:"servings,omitempty"`
	Difficulty   *Difficulty `json:"difficulty,omitempty"`
	CategoryID   *string     `json:"categoryId,omitempty"`
	Ingredients  *[]string   `json:"ingredients,omitempty"`
	Instructions *string     `json:"instructions,omitempty"`
	Image        *string     `json:"image,omitempty"`
}

// Apply merges p onto r and returns the result; r is not modified.
func (p RecipePatch) Apply(r Recipe) Recipe {
	if p.Title != nil {
		r.Title = *p.Title
	}
	if p.Description != nil {
		r.Description = *p.Description
	}
	if p.CookingTime != nil {
		r.CookingTime = *p.CookingTime
	}
	if p.Servings != nil {
		r.Servings = *p.Servings
	}
	if p.Difficulty != nil {
		r.Difficulty = *p.Difficulty
	}
	if p.CategoryID != nil {
		r.CategoryID = *p.CategoryID
	}
	if p.Ingredients != nil {
		r.Ingredients = append([]string(nil), (*p.Ingredients)...)
	}
	if p.Instructions != nil {
		r.Instructions = *p.Instructions
	}
	if p.Image != nil {
		r.Image = *p.Image
	}
	return r
}

// Draft extracts the content fields of r.
func (r Recipe) Draft() RecipeDraft {
	return RecipeDraft{
		Title:        r.Title,
		Description:  r.Description,
		CookingTime:  r.CookingTime,
		Servings:     r.Servings,
		Difficulty:   r.Difficulty,
		CategoryID:   r.CategoryID,
		Ingredients:  r.Ingredients,
		Instructions: r.Instructions,
		Image:        r.Image,
	}
}

// RecipeFilter narrows a catalog listing. The zero value matches everything.
type RecipeFilter struct {
	Search     string
	CategoryID string
	Difficulty Difficulty
	UserID     string
}

// Match reports whether r satisfies every non-empty criterion of f.
func (f RecipeFilter) Match(r Recipe) bool {
	if f.Search != "" && !strings.Contains(strings.ToLower(r.Title), strings.ToLower(f.Search)) {
		return false
	}
	if f.CategoryID != "" && r.CategoryID != f.CategoryID {
		return false
	}
	if f.Difficulty != "" && r.Difficulty != f.Difficulty {
		return false
	}
	if f.UserID != "" && r.UserID != f.UserID {
		return false
	}
	return true
}
