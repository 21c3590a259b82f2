package http

import (
	"net/http"

	"github.com/noteloft/noteloft/internal/domain/identity"
	"github.com/noteloft/noteloft/internal/middleware"
	"github.com/noteloft/noteloft/internal/service"
)

// Handlers bundles the services behind the HTTP surface.
type Handlers struct {
	Auth    *service.AuthService
	Notes   *service.NoteService
	Tenants *service.TenantService
	Seed    *service.SeedService

	// SeedingAllowed gates POST /seed outside development.
	SeedingAllowed bool
}

// Health handles GET /health.
func (h *Handlers) Health(w http.ResponseWriter, _ *http.Request) {
	writeData(w, http.StatusOK, map[string]string{"status": "ok"})
}

// callerIdentity fetches the verified identity, writing a 401 when the
// request somehow bypassed the auth middleware.
func callerIdentity(w http.ResponseWriter, r *http.Request) *identity.Identity {
	id := middleware.IdentityFromContext(r.Context())
	if id == nil {
		writeError(w, http.StatusUnauthorized, "Authorization token required")
	}
	return id
}
