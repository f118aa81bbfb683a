package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/recipebook/recipe-book/internal/core/domain"
	"github.com/recipebook/recipe-book/internal/core/ports"
	"github.com/recipebook/recipe-book/internal/metrics"
)

// RecipeOptions carries the policy knobs of the recipe service.
type RecipeOptions struct {
	// AllowAnonymous stamps recipes created without a session with the
	// anonymous author instead of failing with ErrUnauthenticated.
	AllowAnonymous bool
	// PublicOrigin prefixes share links, e.g. https://recipes.example.
	PublicOrigin string
}

type RecipeService struct {
	recipes   ports.Collection[domain.Recipe]
	bookmarks ports.BookmarkSets
	opts      RecipeOptions
	log       zerolog.Logger
	now       func() time.Time
}

var _ ports.RecipeService = (*RecipeService)(nil)

func NewRecipeService(recipes ports.Collection[domain.Recipe], bookmarks ports.BookmarkSets, opts RecipeOptions, log zerolog.Logger) *RecipeService {
	return &RecipeService{
		recipes:   recipes,
		bookmarks: bookmarks,
		opts:      opts,
		log:       log,
		now:       time.Now,
	}
}

func (s *RecipeService) List(ctx context.Context, filter domain.RecipeFilter) ([]domain.Recipe, error) {
	all, err := s.recipes.Load(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Recipe, 0, len(all))
	for _, r := range all {
		if filter.Match(r) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *RecipeService) Get(ctx context.Context, id string) (*domain.Recipe, error) {
	all, err := s.recipes.Load(ctx)
	if err != nil {
		return nil, err
	}
	for _, r := range all {
		if r.ID == id {
			return &r, nil
		}
	}
	return nil, domain.ErrRecipeNotFound
}

func (s *RecipeService) Create(ctx context.Context, sess *domain.Session, draft domain.RecipeDraft) (*domain.Recipe, error) {
	if err := draft.Validate(); err != nil {
		return nil, err
	}

	authorID, authorName := domain.AnonymousUserID, domain.AnonymousUserName
	switch {
	case sess != nil:
		authorID, authorName = sess.User.ID, sess.User.Name
	case !s.opts.AllowAnonymous:
		return nil, domain.ErrUnauthenticated
	}

	now := s.now().UTC()
	r := domain.Recipe{
		ID:           "recipe-" + uuid.NewString(),
		Title:        strings.TrimSpace(draft.Title),
		Description:  draft.Description,
		CookingTime:  draft.CookingTime,
		Servings:     draft.Servings,
		Difficulty:   draft.Difficulty,
		CategoryID:   draft.CategoryID,
		Ingredients:  append([]string{}, draft.Ingredients...),
		Instructions: draft.Instructions,
		Image:        draft.Image,
		UserID:       authorID,
		AuthorName:   authorName,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err := s.recipes.Update(ctx, func(rs []domain.Recipe) ([]domain.Recipe, error) {
		return append(rs, r), nil
	})
	if err != nil {
		return nil, fmt.Errorf("create recipe: %w", err)
	}

	metrics.RecipesCreatedTotal.WithLabelValues(string(r.Difficulty)).Inc()
	s.log.Info().Str("recipe_id", r.ID).Str("user_id", r.UserID).Msg("recipe created")
	return &r, nil
}

// Update merges patch onto the stored recipe. Identity, authorship and
// createdAt never change; updatedAt always moves forward.
func (s *RecipeService) Update(ctx context.Context, id string, patch domain.RecipePatch) (*domain.Recipe, error) {
	var merged domain.Recipe
	err := s.recipes.Update(ctx, func(rs []domain.Recipe) ([]domain.Recipe, error) {
		for i, cur := range rs {
			if cur.ID != id {
				continue
			}
			next := patch.Apply(cur)
			if err := next.Draft().Validate(); err != nil {
				return nil, err
			}
			now := s.now().UTC()
			if !now.After(cur.UpdatedAt) {
				now = cur.UpdatedAt.Add(time.Nanosecond)
			}
			next.UpdatedAt = now
			rs[i] = next
			merged = next
			return rs, nil
		}
		return nil, domain.ErrRecipeNotFound
	})
	if err != nil {
		return nil, fmt.Errorf("update recipe %s: %w", id, err)
	}

	s.log.Info().Str("recipe_id", id).Msg("recipe updated")
	return &merged, nil
}

func (s *RecipeService) Delete(ctx context.Context, id string) error {
	removed := false
	err := s.recipes.Update(ctx, func(rs []domain.Recipe) ([]domain.Recipe, error) {
		before := len(rs)
		rs = slices.DeleteFunc(rs, func(r domain.Recipe) bool { return r.ID == id })
		removed = len(rs) != before
		return rs, nil
	})
	if err != nil {
		return fmt.Errorf("delete recipe %s: %w", id, err)
	}

	if removed {
		s.log.Info().Str("recipe_id", id).Msg("recipe deleted")
	}
	return nil
}

func bookmarkOwner(sess *domain.Session) string {
	if sess == nil {
		return ""
	}
	return sess.User.ID
}

// ToggleBookmark flips membership of id in the caller's bookmark set and
// returns the resulting state.
func (s *RecipeService) ToggleBookmark(ctx context.Context, sess *domain.Session, id string) (bool, error) {
	var saved bool
	err := s.bookmarks.For(bookmarkOwner(sess)).Update(ctx, func(ids []string) ([]string, error) {
		if slices.Contains(ids, id) {
			saved = false
			return slices.DeleteFunc(ids, func(v string) bool { return v == id }), nil
		}
		saved = true
		return append(ids, id), nil
	})
	if err != nil {
		return false, fmt.Errorf("toggle bookmark %s: %w", id, err)
	}

	state := "removed"
	if saved {
		state = "added"
	}
	metrics.BookmarkTogglesTotal.WithLabelValues(state).Inc()
	return saved, nil
}

func (s *RecipeService) IsBookmarked(ctx context.Context, sess *domain.Session, id string) (bool, error) {
	ids, err := s.bookmarks.For(bookmarkOwner(sess)).Load(ctx)
	if err != nil {
		return false, err
	}
	return slices.Contains(ids, id), nil
}

// Bookmarked returns the saved recipes in catalog order. Ids of deleted
// recipes are skipped.
func (s *RecipeService) Bookmarked(ctx context.Context, sess *domain.Session) ([]domain.Recipe, error) {
	ids, err := s.bookmarks.For(bookmarkOwner(sess)).Load(ctx)
	if err != nil {
		return nil, err
	}
	all, err := s.recipes.Load(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Recipe, 0, len(ids))
	for _, r := range all {
		if slices.Contains(ids, r.ID) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *RecipeService) AttachImage(ctx context.Context, id string, data []byte) (string, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return "", err
	}
	if len(data) == 0 {
		return "", fmt.Errorf("%w: empty payload", domain.ErrInvalidImage)
	}

	mt := mimetype.Detect(data)
	if !strings.HasPrefix(mt.String(), "image/") {
		return "", fmt.Errorf("%w: detected %s", domain.ErrInvalidImage, mt.String())
	}
	return "data:" + mt.String() + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

func (s *RecipeService) ShareLink(ctx context.Context, id string) (string, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return "", err
	}
	return strings.TrimRight(s.opts.PublicOrigin, "/") + "/recipes/" + id, nil
}
