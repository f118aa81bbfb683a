package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/rs/zerolog"

	"github.com/recipebook/recipe-book/internal/core/domain"
)

var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0x0d, 'I', 'H', 'D', 'R'}

func newTestRecipes(opts RecipeOptions) (*RecipeService, *stubCollection[domain.Recipe], *stubBookmarks) {
	recipes := &stubCollection[domain.Recipe]{}
	bookmarks := newStubBookmarks()
	svc := NewRecipeService(recipes, bookmarks, opts, zerolog.Nop())
	return svc, recipes, bookmarks
}

// frozenClock returns the same instant on every call.
func frozenClock(at time.Time) func() time.Time {
	return func() time.Time { return at }
}

var testSession = &domain.Session{User: domain.User{ID: "user-1", Name: "Ana"}, Token: "tok"}

func validDraft(title string) domain.RecipeDraft {
	return domain.RecipeDraft{
		Title:        title,
		Description:  "Tasty",
		CookingTime:  20,
		Servings:     2,
		Difficulty:   domain.DifficultyEasy,
		CategoryID:   "cat-1",
		Ingredients:  []string{"eggs", "salt"},
		Instructions: "Whisk\nFry",
	}
}

func mustCreate(t *testing.T, svc *RecipeService, title string) *domain.Recipe {
	t.Helper()
	r, err := svc.Create(context.Background(), testSession, validDraft(title))
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	return r
}

func TestRecipeService_Create_StampsAuthor(t *testing.T) {
	svc, stored, _ := newTestRecipes(RecipeOptions{})
	at := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	svc.now = frozenClock(at)

	r := mustCreate(t, svc, "Omelette")
	if r.UserID != "user-1" || r.AuthorName != "Ana" {
		t.Fatalf("unexpected author %s/%s", r.UserID, r.AuthorName)
	}
	if !r.CreatedAt.Equal(at) || !r.UpdatedAt.Equal(at) {
		t.Fatalf("expected timestamps %v, got %v/%v", at, r.CreatedAt, r.UpdatedAt)
	}
	if diff := cmp.Diff(*r, stored.records[0]); diff != "" {
		t.Fatalf("stored record differs (-returned +stored):\n%s", diff)
	}
}

func TestRecipeService_Create_UniqueIDs(t *testing.T) {
	svc, _, _ := newTestRecipes(RecipeOptions{})

	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		r := mustCreate(t, svc, "Dish")
		if seen[r.ID] {
			t.Fatalf("duplicate id %s", r.ID)
		}
		seen[r.ID] = true
	}
}

func TestRecipeService_Create_Anonymous(t *testing.T) {
	strict, _, _ := newTestRecipes(RecipeOptions{})
	if _, err := strict.Create(context.Background(), nil, validDraft("Toast")); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}

	lenient, _, _ := newTestRecipes(RecipeOptions{AllowAnonymous: true})
	r, err := lenient.Create(context.Background(), nil, validDraft("Toast"))
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if r.UserID != domain.AnonymousUserID || r.AuthorName != domain.AnonymousUserName {
		t.Fatalf("unexpected author %s/%s", r.UserID, r.AuthorName)
	}
}

func TestRecipeService_Create_Validation(t *testing.T) {
	svc, stored, _ := newTestRecipes(RecipeOptions{})

	bad := []func(*domain.RecipeDraft){
		func(d *domain.RecipeDraft) { d.Title = " " },
		func(d *domain.RecipeDraft) { d.CookingTime = 0 },
		func(d *domain.RecipeDraft) { d.Servings = -1 },
		func(d *domain.RecipeDraft) { d.Difficulty = "extreme" },
	}
	for i, mutate := range bad {
		d := validDraft("Soup")
		mutate(&d)
		if _, err := svc.Create(context.Background(), testSession, d); !errors.Is(err, domain.ErrInvalidInput) {
			t.Fatalf("case %d: expected ErrInvalidInput, got %v", i, err)
		}
	}
	if len(stored.records) != 0 {
		t.Fatalf("invalid drafts must not be stored")
	}
}

func TestRecipeService_Update_MergesPatch(t *testing.T) {
	svc, _, _ := newTestRecipes(RecipeOptions{})
	at := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	svc.now = frozenClock(at)

	before := mustCreate(t, svc, "Omelette")

	title := "Spanish omelette"
	servings := 4
	after, err := svc.Update(context.Background(), before.ID, domain.RecipePatch{Title: &title, Servings: &servings})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}

	got, err := svc.Get(context.Background(), before.ID)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if diff := cmp.Diff(after, got); diff != "" {
		t.Fatalf("Get differs from Update result:\n%s", diff)
	}

	want := *before
	want.Title = title
	want.Servings = servings
	if diff := cmp.Diff(want, *got, cmpopts.IgnoreFields(domain.Recipe{}, "UpdatedAt")); diff != "" {
		t.Fatalf("unexpected merge (-want +got):\n%s", diff)
	}
	// The clock did not move, so updatedAt must still advance.
	if !got.UpdatedAt.After(before.UpdatedAt) {
		t.Fatalf("updatedAt %v not after %v", got.UpdatedAt, before.UpdatedAt)
	}
}

func TestRecipeService_Update_Errors(t *testing.T) {
	svc, _, _ := newTestRecipes(RecipeOptions{})

	title := "x"
	if _, err := svc.Update(context.Background(), "recipe-missing", domain.RecipePatch{Title: &title}); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	r := mustCreate(t, svc, "Omelette")
	zero := 0
	if _, err := svc.Update(context.Background(), r.ID, domain.RecipePatch{CookingTime: &zero}); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestRecipeService_Delete(t *testing.T) {
	svc, _, _ := newTestRecipes(RecipeOptions{})
	r := mustCreate(t, svc, "Omelette")

	if err := svc.Delete(context.Background(), r.ID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if _, err := svc.Get(context.Background(), r.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	if err := svc.Delete(context.Background(), r.ID); err != nil {
		t.Fatalf("deleting an absent recipe must succeed, got %v", err)
	}
}

func TestRecipeService_ListFilters(t *testing.T) {
	svc, _, _ := newTestRecipes(RecipeOptions{AllowAnonymous: true})
	ctx := context.Background()

	mustCreate(t, svc, "Tomato Soup")
	d := validDraft("Chocolate cake")
	d.CategoryID = "cat-3"
	d.Difficulty = domain.DifficultyHard
	if _, err := svc.Create(ctx, nil, d); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	cases := []struct {
		name   string
		filter domain.RecipeFilter
		want   []string
	}{
		{"all", domain.RecipeFilter{}, []string{"Tomato Soup", "Chocolate cake"}},
		{"search", domain.RecipeFilter{Search: "SOUP"}, []string{"Tomato Soup"}},
		{"category", domain.RecipeFilter{CategoryID: "cat-3"}, []string{"Chocolate cake"}},
		{"difficulty", domain.RecipeFilter{Difficulty: domain.DifficultyEasy}, []string{"Tomato Soup"}},
		{"user", domain.RecipeFilter{UserID: domain.AnonymousUserID}, []string{"Chocolate cake"}},
		{"none", domain.RecipeFilter{Search: "pizza"}, []string{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := svc.List(ctx, tc.filter)
			if err != nil {
				t.Fatalf("List returned error: %v", err)
			}
			titles := []string{}
			for _, r := range got {
				titles = append(titles, r.Title)
			}
			if diff := cmp.Diff(tc.want, titles); diff != "" {
				t.Fatalf("unexpected titles (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRecipeService_ToggleBookmark(t *testing.T) {
	svc, _, bookmarks := newTestRecipes(RecipeOptions{})
	ctx := context.Background()
	r := mustCreate(t, svc, "Omelette")

	for i, want := range []bool{true, false, true} {
		got, err := svc.ToggleBookmark(ctx, testSession, r.ID)
		if err != nil {
			t.Fatalf("toggle %d: %v", i, err)
		}
		if got != want {
			t.Fatalf("toggle %d: expected %v, got %v", i, want, got)
		}
		is, err := svc.IsBookmarked(ctx, testSession, r.ID)
		if err != nil || is != want {
			t.Fatalf("IsBookmarked after toggle %d = %v, %v", i, is, err)
		}
	}

	if ids := bookmarks.sets["user-1"].records; len(ids) != 1 {
		t.Fatalf("expected one bookmark without duplicates, got %v", ids)
	}
	if is, _ := svc.IsBookmarked(ctx, nil, r.ID); is {
		t.Fatalf("device-wide set must be independent of the user's set")
	}
}

func TestRecipeService_Bookmarked(t *testing.T) {
	svc, _, _ := newTestRecipes(RecipeOptions{})
	ctx := context.Background()
	first := mustCreate(t, svc, "First")
	second := mustCreate(t, svc, "Second")
	gone := mustCreate(t, svc, "Gone")

	for _, id := range []string{second.ID, gone.ID, first.ID} {
		if _, err := svc.ToggleBookmark(ctx, testSession, id); err != nil {
			t.Fatalf("toggle: %v", err)
		}
	}
	if err := svc.Delete(ctx, gone.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	saved, err := svc.Bookmarked(ctx, testSession)
	if err != nil {
		t.Fatalf("Bookmarked returned error: %v", err)
	}
	var ids []string
	for _, r := range saved {
		ids = append(ids, r.ID)
	}
	if diff := cmp.Diff([]string{first.ID, second.ID}, ids); diff != "" {
		t.Fatalf("unexpected saved recipes (-want +got):\n%s", diff)
	}
}

func TestRecipeService_AttachImage(t *testing.T) {
	svc, _, _ := newTestRecipes(RecipeOptions{})
	ctx := context.Background()
	r := mustCreate(t, svc, "Omelette")

	url, err := svc.AttachImage(ctx, r.ID, pngHeader)
	if err != nil {
		t.Fatalf("AttachImage returned error: %v", err)
	}
	if !strings.HasPrefix(url, "data:image/png;base64,") {
		t.Fatalf("unexpected data url %q", url)
	}

	if _, err := svc.AttachImage(ctx, r.ID, []byte("just some text")); !errors.Is(err, domain.ErrInvalidImage) {
		t.Fatalf("expected ErrInvalidImage, got %v", err)
	}
	if _, err := svc.AttachImage(ctx, "recipe-missing", pngHeader); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRecipeService_ShareLink(t *testing.T) {
	svc, _, _ := newTestRecipes(RecipeOptions{PublicOrigin: "https://recipes.example/"})
	r := mustCreate(t, svc, "Omelette")

	link, err := svc.ShareLink(context.Background(), r.ID)
	if err != nil {
		t.Fatalf("ShareLink returned error: %v", err)
	}
	if want := "https://recipes.example/recipes/" + r.ID; link != want {
		t.Fatalf("expected %q, got %q", want, link)
	}
	if _, err := svc.ShareLink(context.Background(), "recipe-missing"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
