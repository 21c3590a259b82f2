package middleware

import "net/http"

// RequireAdmin returns middleware that restricts access to admin
// identities. It composes after Auth and short-circuits with 403 before
// the handler runs.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := IdentityFromContext(r.Context())
		if id == nil {
			writeAuthError(w, http.StatusUnauthorized, "Authorization token required")
			return
		}

		if !id.IsAdmin() {
			writeAuthError(w, http.StatusForbidden, "Admin access required")
			return
		}

		next.ServeHTTP(w, r)
	})
}
