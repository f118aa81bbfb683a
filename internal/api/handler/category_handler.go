package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/recipebook/recipe-book/internal/core/ports"
)

type CategoryHandler struct {
	categories ports.CategoryService
}

func NewCategoryHandler(categories ports.CategoryService) *CategoryHandler {
	return &CategoryHandler{categories: categories}
}

// List returns every category.
//
// @Summary  List categories
// @Tags     categories
// @Produce  json
// @Success  200  {array}  domain.Category
// @Router   /categories [get]
func (h *CategoryHandler) List(c echo.Context) error {
	list, err := h.categories.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, list)
}

// Create adds a category.
//
// @Summary   Create category
// @Tags      categories
// @Accept    json
// @Produce   json
// @Security  BearerAuth
// @Param     body  body      categoryRequest  true  "Category"
// @Success   201   {object}  domain.Category
// @Failure   422   {object}  api.ErrorResponse
// @Router    /categories [post]
func (h *CategoryHandler) Create(c echo.Context) error {
	var req categoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	created, err := h.categories.Create(c.Request().Context(), req.Name, req.Description)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

// Update renames a category.
//
// @Summary   Update category
// @Tags      categories
// @Accept    json
// @Produce   json
// @Security  BearerAuth
// @Param     id    path      string           true  "Category ID"
// @Param     body  body      categoryRequest  true  "Category"
// @Success   200   {object}  domain.Category
// @Failure   404   {object}  api.ErrorResponse
// @Router    /categories/{id} [put]
func (h *CategoryHandler) Update(c echo.Context) error {
	var req categoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	updated, err := h.categories.Update(c.Request().Context(), c.Param("id"), req.Name, req.Description)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}

// Delete removes a category.
//
// @Summary   Delete category
// @Tags      categories
// @Security  BearerAuth
// @Param     id   path  string  true  "Category ID"
// @Success   204
// @Failure   404  {object}  api.ErrorResponse
// @Router    /categories/{id} [delete]
func (h *CategoryHandler) Delete(c echo.Context) error {
	if err := h.categories.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
