package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/recipebook/recipe-book/internal/api/handler"
	"github.com/recipebook/recipe-book/internal/core/domain"
)

func sign(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func run(t *testing.T, mw echo.MiddlewareFunc, authHeader string, next echo.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := mw(next)(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	token := sign(t, jwt.MapClaims{"sub": "user-1", "username": "alice", "name": "Alice", "email": "a@example.com"})

	called := false
	rec := run(t, Auth("secret"), "Bearer "+token, func(c echo.Context) error {
		called = true
		sess, ok := c.Get(handler.SessionKey).(*domain.Session)
		if !ok {
			t.Fatalf("session not set")
		}
		if sess.User.ID != "user-1" || sess.User.Name != "Alice" || sess.Token != token {
			t.Fatalf("unexpected session: %+v", sess)
		}
		return c.NoContent(http.StatusOK)
	})

	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthMiddleware_Rejections(t *testing.T) {
	expired := sign(t, jwt.MapClaims{"sub": "user-1", "exp": time.Now().Add(-time.Hour).Unix()})
	noSubject := sign(t, jwt.MapClaims{"username": "alice"})

	cases := map[string]string{
		"missing header": "",
		"wrong scheme":   "Token abc",
		"garbage token":  "Bearer not-a-token",
		"expired":        "Bearer " + expired,
		"no subject":     "Bearer " + noSubject,
	}
	for name, header := range cases {
		t.Run(name, func(t *testing.T) {
			rec := run(t, Auth("secret"), header, func(c echo.Context) error {
				t.Fatalf("should not reach next")
				return nil
			})
			if rec.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401, got %d", rec.Code)
			}
		})
	}
}

func TestAuthMiddleware_WrongSecret(t *testing.T) {
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "user-1"}).SignedString([]byte("other"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	rec := run(t, Auth("secret"), "Bearer "+signed, func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestOptionalAuth(t *testing.T) {
	rec := run(t, OptionalAuth("secret"), "", func(c echo.Context) error {
		if c.Get(handler.SessionKey) != nil {
			t.Fatalf("expected no session")
		}
		return c.NoContent(http.StatusNoContent)
	})
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected anonymous request through, got %d", rec.Code)
	}

	rec = run(t, OptionalAuth("secret"), "Bearer not-a-token", func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for a bad token, got %d", rec.Code)
	}
}
