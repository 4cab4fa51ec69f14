package session

import (
	"context"
	"fmt"

	"github.com/dgrijalva/jwt-go"
)

type key int

const (
	SessionKey key = 1
)

// Session is the token payload: the authenticated user's identity plus the
// standard expiry claim. No password material ever enters the token.
type Session struct {
	User *User `json:"user"`
	jwt.StandardClaims
}

type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// SessionFromContext returns the session attached by the auth middleware.
// Anonymous requests have none; handlers that need a current user treat the
// error as "not logged in".
func SessionFromContext(ctx context.Context) (*Session, error) {
	sess, ok := ctx.Value(SessionKey).(*Session)
	if !ok {
		return nil, fmt.Errorf("Session not found")
	}

	return sess, nil
}
