package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/recipebook/recipe-book/internal/core/domain"
	"github.com/recipebook/recipe-book/internal/core/ports"
)

type stubAuthService struct {
	registerFn func(ctx context.Context, in ports.RegisterInput) (*domain.Session, error)
	loginFn    func(ctx context.Context, username, password string) (*domain.Session, error)
	profileFn  func(ctx context.Context, sess *domain.Session, in ports.ProfileInput) (*domain.Session, error)
}

func (s *stubAuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.Session, error) {
	return s.registerFn(ctx, in)
}

func (s *stubAuthService) Login(ctx context.Context, username, password string) (*domain.Session, error) {
	return s.loginFn(ctx, username, password)
}

func (s *stubAuthService) Logout(context.Context) error { return nil }

func (s *stubAuthService) CurrentSession(context.Context) (*domain.Session, error) { return nil, nil }

func (s *stubAuthService) UpdateProfile(ctx context.Context, sess *domain.Session, in ports.ProfileInput) (*domain.Session, error) {
	return s.profileFn(ctx, sess, in)
}

func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func jsonContext(e *echo.Echo, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Register_Success(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, in ports.RegisterInput) (*domain.Session, error) {
			if in.Username != "alice" || in.Name != "Alice" || in.Email != "a@example.com" {
				t.Fatalf("unexpected input: %+v", in)
			}
			return &domain.Session{
				User:  domain.User{ID: "user-1", Username: in.Username, PasswordHash: "hash"},
				Token: "token123",
			}, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := jsonContext(newEcho(), http.MethodPost, "/auth/register",
		`{"name":"Alice","username":"alice","password":"secret","email":"a@example.com"}`)
	if err := handler.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["token"] != "token123" {
		t.Fatalf("expected token, got %v", resp["token"])
	}
	user, ok := resp["user"].(map[string]any)
	if !ok || user["username"] != "alice" {
		t.Fatalf("unexpected user payload: %+v", resp["user"])
	}
	if _, leaked := user["passwordHash"]; leaked {
		t.Fatalf("password hash leaked: %+v", user)
	}
	for _, key := range []string{"createdAt", "updatedAt"} {
		if _, ok := user[key]; !ok {
			t.Fatalf("expected %s in user payload: %+v", key, user)
		}
	}
}

func TestAuthHandler_Register_Duplicate(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(context.Context, ports.RegisterInput) (*domain.Session, error) {
			return nil, domain.ErrDuplicateIdentity
		},
	}
	handler := NewAuthHandler(stub)

	c, _ := jsonContext(newEcho(), http.MethodPost, "/auth/register",
		`{"name":"Bob","username":"bob","password":"secret","email":"b@example.com"}`)
	if err := handler.Register(c); !errors.Is(err, domain.ErrDuplicateIdentity) {
		t.Fatalf("expected ErrDuplicateIdentity, got %v", err)
	}
}

func TestAuthHandler_Register_Validation(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(context.Context, ports.RegisterInput) (*domain.Session, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, _ := jsonContext(newEcho(), http.MethodPost, "/auth/register", `{"username":"bob","email":"nope"}`)
	err := handler.Register(c)
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	for _, want := range []string{"name is required", "password is required", "email must be a valid email"} {
		if !strings.Contains(err.Error(), want) {
			t.Fatalf("expected %q in %q", want, err.Error())
		}
	}
}

func TestAuthHandler_Register_PasswordTooLong(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(context.Context, ports.RegisterInput) (*domain.Session, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewAuthHandler(stub)

	body := `{"name":"Long","username":"long","password":"` + strings.Repeat("a", 80) + `","email":"l@example.com"}`
	c, _ := jsonContext(newEcho(), http.MethodPost, "/auth/register", body)
	err := handler.Register(c)
	if !errors.Is(err, domain.ErrInvalidInput) || !strings.Contains(err.Error(), "password must be at most 72 characters") {
		t.Fatalf("expected ErrInvalidInput for long password, got %v", err)
	}
}

func TestAuthHandler_Register_InvalidPayload(t *testing.T) {
	handler := NewAuthHandler(&stubAuthService{})

	c, _ := jsonContext(newEcho(), http.MethodPost, "/auth/register", "not-json")
	var he *echo.HTTPError
	if err := handler.Register(c); !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestAuthHandler_Login(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, username, password string) (*domain.Session, error) {
			switch {
			case username == "ghost":
				return nil, domain.ErrUserNotFound
			case password != "secret":
				return nil, domain.ErrInvalidCredentials
			}
			return &domain.Session{User: domain.User{ID: "user-1", Username: username}, Token: "token123"}, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := jsonContext(newEcho(), http.MethodPost, "/auth/login", `{"username":"alice","password":"secret"}`)
	if err := handler.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "token123") {
		t.Fatalf("unexpected response %d %s", rec.Code, rec.Body.String())
	}

	c, _ = jsonContext(newEcho(), http.MethodPost, "/auth/login", `{"username":"alice","password":"bad"}`)
	if err := handler.Login(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}

	c, _ = jsonContext(newEcho(), http.MethodPost, "/auth/login", `{"username":"ghost","password":"pwd"}`)
	if err := handler.Login(c); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestAuthHandler_MeAndProfileRequireSession(t *testing.T) {
	stub := &stubAuthService{
		profileFn: func(ctx context.Context, sess *domain.Session, in ports.ProfileInput) (*domain.Session, error) {
			return &domain.Session{User: domain.User{ID: sess.User.ID, Username: in.Username}, Token: "fresh"}, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, _ := jsonContext(newEcho(), http.MethodGet, "/auth/me", "")
	if err := handler.Me(c); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}

	c, rec := jsonContext(newEcho(), http.MethodPut, "/auth/profile", `{"name":"A","username":"alice2","email":"a@example.com"}`)
	c.Set(SessionKey, &domain.Session{User: domain.User{ID: "user-1"}, Token: "old"})
	if err := handler.UpdateProfile(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"token":"fresh"`) {
		t.Fatalf("unexpected response %d %s", rec.Code, rec.Body.String())
	}
}

func TestAuthHandler_UpdateProfile_AvatarOptional(t *testing.T) {
	var got []*string
	stub := &stubAuthService{
		profileFn: func(ctx context.Context, sess *domain.Session, in ports.ProfileInput) (*domain.Session, error) {
			got = append(got, in.Avatar)
			return &domain.Session{User: sess.User, Token: "fresh"}, nil
		},
	}
	handler := NewAuthHandler(stub)
	sess := &domain.Session{User: domain.User{ID: "user-1"}, Token: "old"}

	for _, body := range []string{
		`{"name":"A","username":"a","email":"a@example.com"}`,
		`{"name":"A","username":"a","email":"a@example.com","avatar":"https://img.example/a.png"}`,
	} {
		c, _ := jsonContext(newEcho(), http.MethodPut, "/auth/profile", body)
		c.Set(SessionKey, sess)
		if err := handler.UpdateProfile(c); err != nil {
			t.Fatalf("handler error: %v", err)
		}
	}
	if len(got) != 2 || got[0] != nil || got[1] == nil || *got[1] != "https://img.example/a.png" {
		t.Fatalf("unexpected avatars passed: %v", got)
	}
}
