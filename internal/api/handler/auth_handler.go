package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/recipebook/recipe-book/internal/core/domain"
	"github.com/recipebook/recipe-book/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func toAuthResponse(sess *domain.Session) authResponse {
	return authResponse{Token: sess.Token, User: sess.User.Public()}
}

// Register creates a new user account and returns its first session.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "User registration details"
// @Success      201   {object}  authResponse
// @Failure      409   {object}  api.ErrorResponse
// @Failure      422   {object}  api.ErrorResponse
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	sess, err := h.authService.Register(c.Request().Context(), ports.RegisterInput{
		Name:     req.Name,
		Username: req.Username,
		Password: req.Password,
		Email:    req.Email,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toAuthResponse(sess))
}

// Login authenticates a user and returns a bearer token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  authResponse
// @Failure      401   {object}  api.ErrorResponse
// @Failure      404   {object}  api.ErrorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	sess, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toAuthResponse(sess))
}

// Me returns the identity carried by the bearer token.
//
// @Summary      Current user
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.User
// @Failure      401  {object}  api.ErrorResponse
// @Router       /auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	sess, err := requireSession(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sess.User)
}

// UpdateProfile edits the caller's profile and returns a reissued session.
//
// @Summary      Update profile
// @Tags         auth
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      profileRequest  true  "Profile fields"
// @Success      200   {object}  authResponse
// @Failure      409   {object}  api.ErrorResponse
// @Failure      422   {object}  api.ErrorResponse
// @Router       /auth/profile [put]
func (h *AuthHandler) UpdateProfile(c echo.Context) error {
	sess, err := requireSession(c)
	if err != nil {
		return err
	}

	var req profileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	next, err := h.authService.UpdateProfile(c.Request().Context(), sess, ports.ProfileInput{
		Name:     req.Name,
		Username: req.Username,
		Email:    req.Email,
		Avatar:   req.Avatar,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toAuthResponse(next))
}
