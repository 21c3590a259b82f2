package http

import (
	"fmt"
	"net/http"
)

// SeedDatabase handles POST /seed. It is open in development and gated
// behind an explicit flag everywhere else.
func (h *Handlers) SeedDatabase(w http.ResponseWriter, r *http.Request) {
	if !h.SeedingAllowed {
		writeError(w, http.StatusForbidden, "Seeding not allowed in production")
		return
	}

	res, err := h.Seed.Seed(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeEnvelope(w, http.StatusOK, envelope{
		Success: true,
		Data:    res,
		Message: fmt.Sprintf("Database seeded successfully. Created %d new users.", res.NewUsersCreated),
	})
}
