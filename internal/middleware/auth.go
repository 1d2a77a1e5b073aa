// Package middleware provides HTTP middlewares for authentication and logging.
package middleware

import (
	"context"
	"net/http"
	"strings"
)

type ctxKey string

const userKey ctxKey = "user"

// TokenVerifier validates a bearer token and yields the embedded user ID.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// BearerAuth is a middleware that enforces bearer-token authentication.
//
// It reads the token from the Authorization header, accepting either the
// raw token or a "Bearer <token>" form. A missing header short-circuits
// with 401; a token that fails verification short-circuits with 400.
// Resource handlers never run for rejected requests.
//
// On success, the verified user ID is stored in the request context, so it
// can be used downstream as the authenticated subject.
func BearerAuth(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				http.Error(w, "authorization required", http.StatusUnauthorized)
				return
			}

			tok := strings.TrimPrefix(header, "Bearer ")
			userID, err := verifier.Verify(tok)
			if err != nil {
				http.Error(w, "invalid token", http.StatusBadRequest)
				return
			}

			ctx := context.WithValue(r.Context(), userKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUserIDFromContext extracts the authenticated user ID
// from the request context. Returns an empty string if not found.
func GetUserIDFromContext(ctx context.Context) string {
	val := ctx.Value(userKey)
	if s, ok := val.(string); ok {
		return s
	}
	return ""
}
