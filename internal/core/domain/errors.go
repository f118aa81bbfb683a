package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrDuplicateIdentity  = errors.New("a user with this username or email already exists")
	ErrEmptyResult        = errors.New("no recipes match the report selector")
	ErrCorruptStorage     = errors.New("stored data is corrupt")
	ErrUnauthenticated    = errors.New("authentication required")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidImage       = errors.New("payload is not an image")
)

// Entity-specific lookups; each satisfies errors.Is(err, ErrNotFound).
var (
	ErrUserNotFound     = fmt.Errorf("user %w", ErrNotFound)
	ErrCategoryNotFound = fmt.Errorf("category %w", ErrNotFound)
	ErrRecipeNotFound   = fmt.Errorf("recipe %w", ErrNotFound)
)

// InvalidInput wraps ErrInvalidInput with a field-level reason.
func InvalidInput(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}
