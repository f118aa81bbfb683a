package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/recipebook/recipe-book/internal/core/domain"
)

// Error codes carried in the envelope; the remote client maps them back to
// the domain sentinels.
const (
	CodeNotFound           = "not_found"
	CodeDuplicateIdentity  = "duplicate_identity"
	CodeEmptyResult        = "empty_result"
	CodeCorruptStorage     = "corrupt_storage"
	CodeUnauthenticated    = "unauthenticated"
	CodeInvalidCredentials = "invalid_credentials"
	CodeInvalidInput       = "invalid_input"
	CodeInvalidImage       = "invalid_image"
	CodeInternal           = "internal"
)

// ErrorResponse is the canonical error envelope for all API errors.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that maps domain
// errors to status codes, logs unexpected ones and renders ErrorResponse.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, body := resolveError(err, log, c)
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(status)
			return
		}
		_ = c.JSON(status, body)
	}
}

var domainErrors = []struct {
	target error
	status int
	code   string
}{
	{domain.ErrEmptyResult, http.StatusNotFound, CodeEmptyResult},
	{domain.ErrNotFound, http.StatusNotFound, CodeNotFound},
	{domain.ErrDuplicateIdentity, http.StatusConflict, CodeDuplicateIdentity},
	{domain.ErrUnauthenticated, http.StatusUnauthorized, CodeUnauthenticated},
	{domain.ErrInvalidCredentials, http.StatusUnauthorized, CodeInvalidCredentials},
	{domain.ErrInvalidImage, http.StatusUnprocessableEntity, CodeInvalidImage},
	{domain.ErrInvalidInput, http.StatusUnprocessableEntity, CodeInvalidInput},
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, ErrorResponse) {
	// Echo's own errors (bind failures, 404 from router, auth middleware).
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, ErrorResponse{Error: fmt.Sprintf("%v", he.Message), Code: codeForStatus(he.Code)}
	}

	for _, de := range domainErrors {
		if errors.Is(err, de.target) {
			return de.status, ErrorResponse{Error: err.Error(), Code: de.code}
		}
	}

	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	if errors.Is(err, domain.ErrCorruptStorage) {
		return http.StatusInternalServerError, ErrorResponse{Error: domain.ErrCorruptStorage.Error(), Code: CodeCorruptStorage}
	}
	return http.StatusInternalServerError, ErrorResponse{Error: "internal server error", Code: CodeInternal}
}

func codeForStatus(status int) string {
	switch status {
	case http.StatusNotFound:
		return CodeNotFound
	case http.StatusUnauthorized:
		return CodeUnauthenticated
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return CodeInvalidInput
	case http.StatusConflict:
		return CodeDuplicateIdentity
	}
	return CodeInternal
}
