package middleware

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/pipetrack/pipetrack/internal/infra/session"
)

type userIDKey struct{}

// SessionResolver is what the middleware needs from the session store.
type SessionResolver interface {
	Resolve(token string) (string, bool)
}

// RequireSession rejects requests without a valid session cookie and puts the
// session user's id on the request context for everything downstream.
func RequireSession(sessions SessionResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(session.CookieName)
			if err != nil {
				unauthorized(w)
				return
			}

			userID, ok := sessions.Resolve(cookie.Value)
			if !ok {
				unauthorized(w)
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey{}, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserID returns the session user's id set by RequireSession, or "" when the
// request never passed through it.
func UserID(ctx context.Context) string {
	if v, ok := ctx.Value(userIDKey{}).(string); ok {
		return v
	}
	return ""
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": "authentication required"})
}
