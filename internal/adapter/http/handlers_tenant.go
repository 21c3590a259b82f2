package http

import "net/http"

// UpgradeTenant handles POST /tenants/{slug}/upgrade (admin only,
// enforced by middleware; the service additionally pins the slug to the
// caller's own tenant).
func (h *Handlers) UpgradeTenant(w http.ResponseWriter, r *http.Request) {
	id := callerIdentity(w, r)
	if id == nil {
		return
	}

	slug := urlParam(r, "slug")
	if slug == "" {
		writeError(w, http.StatusBadRequest, "Tenant slug is required")
		return
	}

	t, err := h.Tenants.Upgrade(r.Context(), id, slug)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeEnvelope(w, http.StatusOK, envelope{
		Success: true,
		Data:    t,
		Message: "Subscription upgraded to Pro successfully",
	})
}
