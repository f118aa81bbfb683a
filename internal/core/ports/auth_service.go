package ports

import (
	"context"

	"github.com/recipebook/recipe-book/internal/core/domain"
)

// RegisterInput carries the registration form.
type RegisterInput struct {
	Name     string
	Username string
	Password string
	Email    string
}

// ProfileInput carries the editable profile fields of the session user.
// A nil Avatar leaves the stored avatar untouched.
type ProfileInput struct {
	Name     string
	Username string
	Email    string
	Avatar   *string
}

// AuthService is the identity & session contract. Register and Login make the
// returned session the active one; CurrentSession returns nil when logged out.
type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*domain.Session, error)
	Login(ctx context.Context, username, password string) (*domain.Session, error)
	Logout(ctx context.Context) error
	CurrentSession(ctx context.Context) (*domain.Session, error)
	UpdateProfile(ctx context.Context, sess *domain.Session, in ProfileInput) (*domain.Session, error)
}
