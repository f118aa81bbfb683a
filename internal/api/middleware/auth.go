package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/recipebook/recipe-book/internal/api/handler"
	"github.com/recipebook/recipe-book/internal/core/domain"
)

// Auth requires a valid bearer token and stores the caller's session under
// handler.SessionKey.
func Auth(jwtSecret string) echo.MiddlewareFunc {
	return authenticate(jwtSecret, false)
}

// OptionalAuth attaches a session when a valid bearer token is present and
// lets anonymous requests through. A present but invalid token is rejected.
func OptionalAuth(jwtSecret string) echo.MiddlewareFunc {
	return authenticate(jwtSecret, true)
}

func authenticate(jwtSecret string, optional bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				if optional {
					return next(c)
				}
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			sess, err := ParseSession(parts[1], jwtSecret)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set(handler.SessionKey, sess)
			return next(c)
		}
	}
}

// ParseSession verifies an HS256 token and rebuilds the session it was
// issued for.
func ParseSession(token, jwtSecret string) (*domain.Session, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(jwtSecret), nil
	})
	if err != nil || !tkn.Valid {
		return nil, domain.ErrUnauthenticated
	}

	sub, _ := claims.GetSubject()
	if sub == "" {
		return nil, domain.ErrUnauthenticated
	}
	str := func(key string) string {
		v, _ := claims[key].(string)
		return v
	}

	return &domain.Session{
		User: domain.User{
			ID:       sub,
			Username: str("username"),
			Name:     str("name"),
			Email:    str("email"),
		},
		Token: token,
	}, nil
}
