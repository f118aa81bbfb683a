package handler

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/recipebook/recipe-book/internal/core/domain"
	"github.com/recipebook/recipe-book/internal/core/ports"
)

// maxImageBytes bounds uploaded recipe images.
const maxImageBytes = 5 << 20

type RecipeHandler struct {
	recipes ports.RecipeService
}

func NewRecipeHandler(recipes ports.RecipeService) *RecipeHandler {
	return &RecipeHandler{recipes: recipes}
}

// List returns the catalog, optionally filtered.
//
// @Summary  List recipes
// @Tags     recipes
// @Produce  json
// @Param    search      query  string  false  "Case-insensitive title search"
// @Param    categoryId  query  string  false  "Category ID"
// @Param    difficulty  query  string  false  "easy, medium or hard"
// @Param    userId      query  string  false  "Author user ID"
// @Success  200  {array}  domain.Recipe
// @Router   /recipes [get]
func (h *RecipeHandler) List(c echo.Context) error {
	filter := domain.RecipeFilter{
		Search:     c.QueryParam("search"),
		CategoryID: c.QueryParam("categoryId"),
		Difficulty: domain.Difficulty(c.QueryParam("difficulty")),
		UserID:     c.QueryParam("userId"),
	}
	if filter.Difficulty != "" && !filter.Difficulty.Valid() {
		return domain.InvalidInput("difficulty must be one of: easy medium hard")
	}

	list, err := h.recipes.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, list)
}

// Mine returns the caller's own recipes.
//
// @Summary   My recipes
// @Tags      recipes
// @Produce   json
// @Security  BearerAuth
// @Success   200  {array}  domain.Recipe
// @Router    /recipes/my [get]
func (h *RecipeHandler) Mine(c echo.Context) error {
	sess, err := requireSession(c)
	if err != nil {
		return err
	}
	list, err := h.recipes.List(c.Request().Context(), domain.RecipeFilter{UserID: sess.User.ID})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, list)
}

// Get returns one recipe.
//
// @Summary  Get recipe
// @Tags     recipes
// @Produce  json
// @Param    id   path      string  true  "Recipe ID"
// @Success  200  {object}  domain.Recipe
// @Failure  404  {object}  api.ErrorResponse
// @Router   /recipes/{id} [get]
func (h *RecipeHandler) Get(c echo.Context) error {
	r, err := h.recipes.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, r)
}

// Create stores a recipe authored by the caller.
//
// @Summary   Create recipe
// @Tags      recipes
// @Accept    json
// @Produce   json
// @Security  BearerAuth
// @Param     body  body      createRecipeRequest  true  "Recipe"
// @Success   201   {object}  domain.Recipe
// @Failure   401   {object}  api.ErrorResponse
// @Failure   422   {object}  api.ErrorResponse
// @Router    /recipes [post]
func (h *RecipeHandler) Create(c echo.Context) error {
	var req createRecipeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	r, err := h.recipes.Create(c.Request().Context(), sessionFrom(c), req.toDraft())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, r)
}

// Update applies a partial update.
//
// @Summary   Update recipe
// @Tags      recipes
// @Accept    json
// @Produce   json
// @Security  BearerAuth
// @Param     id    path      string               true  "Recipe ID"
// @Param     body  body      updateRecipeRequest  true  "Fields to change"
// @Success   200   {object}  domain.Recipe
// @Failure   404   {object}  api.ErrorResponse
// @Router    /recipes/{id} [put]
func (h *RecipeHandler) Update(c echo.Context) error {
	var req updateRecipeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	r, err := h.recipes.Update(c.Request().Context(), c.Param("id"), req.toPatch())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, r)
}

// Delete removes a recipe; unknown ids succeed.
//
// @Summary   Delete recipe
// @Tags      recipes
// @Security  BearerAuth
// @Param     id  path  string  true  "Recipe ID"
// @Success   204
// @Router    /recipes/{id} [delete]
func (h *RecipeHandler) Delete(c echo.Context) error {
	if err := h.recipes.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// ToggleBookmark flips the caller's bookmark on a recipe.
//
// @Summary   Toggle bookmark
// @Tags      bookmarks
// @Produce   json
// @Security  BearerAuth
// @Param     id   path      string  true  "Recipe ID"
// @Success   200  {object}  bookmarkResponse
// @Router    /recipes/{id}/bookmark [post]
func (h *RecipeHandler) ToggleBookmark(c echo.Context) error {
	sess, err := requireSession(c)
	if err != nil {
		return err
	}
	saved, err := h.recipes.ToggleBookmark(c.Request().Context(), sess, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, bookmarkResponse{Bookmarked: saved})
}

// IsBookmarked reports whether the caller bookmarked a recipe.
//
// @Summary   Bookmark state
// @Tags      bookmarks
// @Produce   json
// @Security  BearerAuth
// @Param     id   path      string  true  "Recipe ID"
// @Success   200  {object}  bookmarkResponse
// @Router    /recipes/{id}/bookmark [get]
func (h *RecipeHandler) IsBookmarked(c echo.Context) error {
	sess, err := requireSession(c)
	if err != nil {
		return err
	}
	saved, err := h.recipes.IsBookmarked(c.Request().Context(), sess, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, bookmarkResponse{Bookmarked: saved})
}

// Saved lists the caller's bookmarked recipes.
//
// @Summary   Saved recipes
// @Tags      bookmarks
// @Produce   json
// @Security  BearerAuth
// @Success   200  {array}  domain.Recipe
// @Router    /recipes/saved [get]
func (h *RecipeHandler) Saved(c echo.Context) error {
	sess, err := requireSession(c)
	if err != nil {
		return err
	}
	list, err := h.recipes.Bookmarked(c.Request().Context(), sess)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, list)
}

// Share returns the public link of a recipe.
//
// @Summary  Share link
// @Tags     recipes
// @Produce  json
// @Param    id   path      string  true  "Recipe ID"
// @Success  200  {object}  shareResponse
// @Failure  404  {object}  api.ErrorResponse
// @Router   /recipes/{id}/share [get]
func (h *RecipeHandler) Share(c echo.Context) error {
	link, err := h.recipes.ShareLink(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, shareResponse{ShareURL: link})
}

// UploadImage stores the multipart "image" file on the recipe as a data URL.
//
// @Summary   Upload recipe image
// @Tags      recipes
// @Accept    multipart/form-data
// @Produce   json
// @Security  BearerAuth
// @Param     id     path      string  true  "Recipe ID"
// @Param     image  formData  file    true  "Image file"
// @Success   200    {object}  imageResponse
// @Failure   404    {object}  api.ErrorResponse
// @Failure   422    {object}  api.ErrorResponse
// @Router    /recipes/{id}/image [post]
func (h *RecipeHandler) UploadImage(c echo.Context) error {
	fh, err := c.FormFile("image")
	if err != nil {
		return domain.InvalidInput("multipart field image is required")
	}
	if fh.Size > maxImageBytes {
		return domain.InvalidInput("image exceeds %d bytes", maxImageBytes)
	}

	f, err := fh.Open()
	if err != nil {
		return err
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxImageBytes+1))
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	id := c.Param("id")
	url, err := h.recipes.AttachImage(ctx, id, data)
	if err != nil {
		return err
	}
	if _, err := h.recipes.Update(ctx, id, domain.RecipePatch{Image: &url}); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, imageResponse{ImageURL: url})
}
