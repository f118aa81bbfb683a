package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/recipebook/recipe-book/internal/core/domain"
)

// SessionKey is the echo context key under which the auth middleware stores
// the caller's *domain.Session.
const SessionKey = "session"

// sessionFrom returns the caller's session, or nil for anonymous requests.
func sessionFrom(c echo.Context) *domain.Session {
	sess, _ := c.Get(SessionKey).(*domain.Session)
	return sess
}

// requireSession fails fast with ErrUnauthenticated when no middleware
// attached a session.
func requireSession(c echo.Context) (*domain.Session, error) {
	sess := sessionFrom(c)
	if sess == nil {
		return nil, domain.ErrUnauthenticated
	}
	return sess, nil
}
