package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/recipebook/recipe-book/internal/core/domain"
	"github.com/recipebook/recipe-book/internal/core/ports"
	"github.com/recipebook/recipe-book/internal/metrics"
)

// AuthService implements registration, login and the active session slot.
// A nil slot disables session persistence (the HTTP server is stateless).
type AuthService struct {
	users     ports.Collection[domain.User]
	slot      ports.SessionSlot
	jwtSecret string
	tokenTTL  time.Duration
	log       zerolog.Logger
	now       func() time.Time
}

var _ ports.AuthService = (*AuthService)(nil)

// maxPasswordBytes is the longest input bcrypt accepts.
const maxPasswordBytes = 72

// NewAuthService wires the service. A tokenTTL of zero issues tokens without
// an expiry.
func NewAuthService(users ports.Collection[domain.User], slot ports.SessionSlot, jwtSecret string, tokenTTL time.Duration, log zerolog.Logger) *AuthService {
	return &AuthService{
		users:     users,
		slot:      slot,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
		log:       log,
		now:       time.Now,
	}
}

func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.Session, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.TrimSpace(in.Email)
	if in.Name == "" || in.Username == "" || in.Email == "" || in.Password == "" {
		return nil, domain.InvalidInput("name, username, email and password are required")
	}
	if len(in.Password) > maxPasswordBytes {
		return nil, domain.InvalidInput("password must be at most %d bytes", maxPasswordBytes)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	user := domain.User{
		ID:           "user-" + uuid.NewString(),
		Name:         in.Name,
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = s.users.Update(ctx, func(users []domain.User) ([]domain.User, error) {
		if identityTaken(users, "", user.Username, user.Email) {
			return nil, domain.ErrDuplicateIdentity
		}
		return append(users, user), nil
	})
	if err != nil {
		return nil, fmt.Errorf("register %s: %w", in.Username, err)
	}

	metrics.UsersRegisteredTotal.Inc()
	s.log.Info().Str("user_id", user.ID).Str("username", user.Username).Msg("user registered")

	return s.startSession(ctx, user)
}

func (s *AuthService) Login(ctx context.Context, username, password string) (*domain.Session, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, domain.InvalidInput("username is required")
	}

	users, err := s.users.Load(ctx)
	if err != nil {
		return nil, err
	}

	for _, u := range users {
		if u.Username != username {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
			return nil, domain.ErrInvalidCredentials
		}
		s.log.Info().Str("user_id", u.ID).Msg("user logged in")
		return s.startSession(ctx, u)
	}
	return nil, domain.ErrUserNotFound
}

// Logout clears the active session; it is a no-op when nobody is logged in.
func (s *AuthService) Logout(ctx context.Context) error {
	if s.slot == nil {
		return nil
	}
	return s.slot.Clear(ctx)
}

func (s *AuthService) CurrentSession(ctx context.Context) (*domain.Session, error) {
	if s.slot == nil {
		return nil, nil
	}
	return s.slot.Load(ctx)
}

// UpdateProfile overwrites the editable fields of the session user and
// reissues the session so the token carries the new identity. A nil Avatar
// keeps the stored one.
func (s *AuthService) UpdateProfile(ctx context.Context, sess *domain.Session, in ports.ProfileInput) (*domain.Session, error) {
	if sess == nil {
		return nil, domain.ErrUnauthenticated
	}
	in.Name = strings.TrimSpace(in.Name)
	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.TrimSpace(in.Email)
	if in.Name == "" || in.Username == "" || in.Email == "" {
		return nil, domain.InvalidInput("name, username and email are required")
	}

	var updated domain.User
	err := s.users.Update(ctx, func(users []domain.User) ([]domain.User, error) {
		idx := -1
		for i, u := range users {
			if u.ID == sess.User.ID {
				idx = i
				break
			}
		}
		if idx < 0 {
			return nil, domain.ErrUserNotFound
		}
		if identityTaken(users, sess.User.ID, in.Username, in.Email) {
			return nil, domain.ErrDuplicateIdentity
		}

		u := users[idx]
		u.Name = in.Name
		u.Username = in.Username
		u.Email = in.Email
		if in.Avatar != nil {
			u.Avatar = *in.Avatar
		}
		u.UpdatedAt = s.now().UTC()
		users[idx] = u
		updated = u
		return users, nil
	})
	if err != nil {
		return nil, fmt.Errorf("update profile %s: %w", sess.User.ID, err)
	}

	s.log.Info().Str("user_id", updated.ID).Msg("profile updated")
	return s.startSession(ctx, updated)
}

func (s *AuthService) startSession(ctx context.Context, user domain.User) (*domain.Session, error) {
	token, err := s.generateToken(user)
	if err != nil {
		return nil, err
	}

	sess := &domain.Session{User: user.Public(), Token: token}
	if s.slot != nil {
		if err := s.slot.Save(ctx, sess); err != nil {
			return nil, err
		}
	}
	return sess, nil
}

func (s *AuthService) generateToken(user domain.User) (string, error) {
	now := s.now()
	claims := jwt.MapClaims{
		"sub":      user.ID,
		"username": user.Username,
		"name":     user.Name,
		"email":    user.Email,
		"iat":      now.Unix(),
		"jti":      uuid.NewString(),
	}
	if s.tokenTTL > 0 {
		claims["exp"] = now.Add(s.tokenTTL).Unix()
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

// identityTaken reports whether a user other than exceptID already uses
// username or email.
func identityTaken(users []domain.User, exceptID, username, email string) bool {
	for _, u := range users {
		if u.ID == exceptID {
			continue
		}
		if u.Username == username || u.Email == email {
			return true
		}
	}
	return false
}
