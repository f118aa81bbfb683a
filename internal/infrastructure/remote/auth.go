package remote

import (
	"context"

	"github.com/recipebook/recipe-book/internal/core/domain"
	"github.com/recipebook/recipe-book/internal/core/ports"
)

type AuthService struct {
	c *Client
}

var _ ports.AuthService = (*AuthService)(nil)

func NewAuthService(c *Client) *AuthService {
	return &AuthService{c: c}
}

func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.Session, error) {
	req, err := s.c.request(ctx, "")
	if err != nil {
		return nil, err
	}
	var sess domain.Session
	resp, err := req.
		SetBody(map[string]string{
			"name":     in.Name,
			"username": in.Username,
			"password": in.Password,
			"email":    in.Email,
		}).
		SetResult(&sess).
		Post("/auth/register")
	if err := s.c.check(resp, err); err != nil {
		return nil, err
	}
	return s.activate(ctx, &sess)
}

func (s *AuthService) Login(ctx context.Context, username, password string) (*domain.Session, error) {
	req, err := s.c.request(ctx, "")
	if err != nil {
		return nil, err
	}
	var sess domain.Session
	resp, err := req.
		SetBody(map[string]string{"username": username, "password": password}).
		SetResult(&sess).
		Post("/auth/login")
	if err := s.c.check(resp, err); err != nil {
		return nil, err
	}
	return s.activate(ctx, &sess)
}

// Logout only forgets the local session; tokens are stateless.
func (s *AuthService) Logout(ctx context.Context) error {
	if s.c.slot == nil {
		return nil
	}
	return s.c.slot.Clear(ctx)
}

func (s *AuthService) CurrentSession(ctx context.Context) (*domain.Session, error) {
	if s.c.slot == nil {
		return nil, nil
	}
	return s.c.slot.Load(ctx)
}

func (s *AuthService) UpdateProfile(ctx context.Context, sess *domain.Session, in ports.ProfileInput) (*domain.Session, error) {
	if sess == nil {
		return nil, domain.ErrUnauthenticated
	}
	req, err := s.c.request(ctx, sess.Token)
	if err != nil {
		return nil, err
	}
	body := map[string]string{
		"name":     in.Name,
		"username": in.Username,
		"email":    in.Email,
	}
	if in.Avatar != nil {
		body["avatar"] = *in.Avatar
	}
	var next domain.Session
	resp, err := req.
		SetBody(body).
		SetResult(&next).
		Put("/auth/profile")
	if err := s.c.check(resp, err); err != nil {
		return nil, err
	}
	return s.activate(ctx, &next)
}

func (s *AuthService) activate(ctx context.Context, sess *domain.Session) (*domain.Session, error) {
	if s.c.slot != nil {
		if err := s.c.slot.Save(ctx, sess); err != nil {
			return nil, err
		}
	}
	return sess, nil
}
