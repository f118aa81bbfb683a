package domain

import "time"

// Placeholder author stamped on recipes created without a session when
// anonymous authorship is enabled.
const (
	AnonymousUserID   = "anonymous"
	AnonymousUserName = "Anonymous"
)

// User models a registered account.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	Avatar       string    `json:"avatar,omitempty"`
	PasswordHash string    `json:"passwordHash,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Public returns a copy safe to hand to clients (no credential material).
func (u User) Public() User {
	u.PasswordHash = ""
	return u
}

// Session binds a user to the opaque token issued at login or registration.
type Session struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}
