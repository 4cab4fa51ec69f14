package middleware

import (
	"context"
	"net/http"

	"redditserver/pkg/session"
	"redditserver/pkg/user"

	"go.uber.org/zap"
)

// UserGetter resolves a token subject to an account record.
type UserGetter interface {
	GetByID(id string) (*user.User, error)
}

// Auth runs on every request. A missing, malformed or expired token, and a
// token whose user no longer exists, all degrade to an anonymous request;
// handlers that need a current user reject on their own. This stage never
// writes a response.
func Auth(logger *zap.SugaredLogger, sm session.SessionManager, users UserGetter, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") == "" {
			next.ServeHTTP(w, r)
			return
		}

		sess, err := sm.Check(r)
		if err != nil {
			logger.Warnf("auth: %s", err.Error())
			next.ServeHTTP(w, r)
			return
		}

		u, err := users.GetByID(sess.User.ID)
		if err != nil {
			logger.Errorf("auth lookup: %s", err.Error())
			next.ServeHTTP(w, r)
			return
		}
		if u == nil {
			logger.Warnf("auth: user %s no longer exists", sess.User.ID)
			next.ServeHTTP(w, r)
			return
		}

		// the attached identity comes from the store, not the token body
		sess.User = &session.User{ID: u.ID, Username: u.Username}
		ctx := context.WithValue(r.Context(), session.SessionKey, sess)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
