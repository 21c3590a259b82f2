// Package middleware provides HTTP middleware for Noteloft.
package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/noteloft/noteloft/internal/domain/identity"
)

type identityCtxKey struct{}

// TokenValidator validates a raw bearer token and returns the asserted
// identity. Implemented by service.AuthService.
type TokenValidator interface {
	ValidateToken(raw string) (*identity.Identity, error)
}

// Auth returns middleware that requires a valid `Authorization: Bearer`
// token and injects the verified identity into the request context.
// Handlers behind it never re-validate the token.
func Auth(validator TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				writeAuthError(w, http.StatusUnauthorized, "Authorization token required")
				return
			}

			token := strings.TrimPrefix(authHeader, "Bearer ")
			if token == authHeader || token == "" {
				writeAuthError(w, http.StatusUnauthorized, "Authorization token required")
				return
			}

			id, err := validator.ValidateToken(token)
			if err != nil {
				writeAuthError(w, http.StatusUnauthorized, "Invalid or expired token")
				return
			}

			ctx := context.WithValue(r.Context(), identityCtxKey{}, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// IdentityFromContext returns the authenticated identity from the request
// context, or nil when the request did not pass the Auth middleware.
func IdentityFromContext(ctx context.Context) *identity.Identity {
	id, _ := ctx.Value(identityCtxKey{}).(*identity.Identity)
	return id
}

// WithIdentity returns a context carrying the given identity. Exported for
// handler tests that bypass the middleware.
func WithIdentity(ctx context.Context, id *identity.Identity) context.Context {
	return context.WithValue(ctx, identityCtxKey{}, id)
}

// writeAuthError writes the standard envelope for middleware short-circuits.
func writeAuthError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(`{"success":false,"error":"` + msg + `"}`))
}
