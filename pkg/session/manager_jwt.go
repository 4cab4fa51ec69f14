package session

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/dgrijalva/jwt-go"
)

type SessionManager interface {
	Create(u *User, expiresAt int64) (string, error)
	Check(r *http.Request) (*Session, error)
}

// SessionManagerJWT issues and verifies stateless HS256 tokens with a single
// process-wide secret. Verification is signature plus expiry, no store
// lookup.
type SessionManagerJWT struct {
	secret []byte
}

func NewSessionManagerJWT(secret []byte) (*SessionManagerJWT, error) {
	if len(secret) == 0 {
		return nil, errors.New("empty signing secret")
	}

	return &SessionManagerJWT{secret: secret}, nil
}

func (sm *SessionManagerJWT) Create(user *User, expiresAt int64) (string, error) {
	sess := &Session{
		User: &User{ID: user.ID, Username: user.Username},
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: expiresAt,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, sess)
	signed, err := token.SignedString(sm.secret)
	if err != nil {
		return "", err
	}

	return signed, nil
}

func (sm *SessionManagerJWT) Check(request *http.Request) (*Session, error) {
	authHeader := request.Header.Get("Authorization")
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == "" {
		return nil, errors.New("no token")
	}

	payload := &Session{}
	token, err := jwt.ParseWithClaims(tokenString, payload, func(token *jwt.Token) (interface{}, error) {
		method, ok := token.Method.(*jwt.SigningMethodHMAC)
		if !ok || method.Alg() != "HS256" {
			return nil, fmt.Errorf("bad sign method")
		}
		return sm.secret, nil
	})

	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	if payload.User == nil || payload.User.ID == "" {
		return nil, fmt.Errorf("token carries no user")
	}

	return payload, nil
}
