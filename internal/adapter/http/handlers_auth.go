package http

import (
	"log/slog"
	"net/http"

	"github.com/noteloft/noteloft/internal/domain/user"
)

// Login handles POST /auth.
func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	req, ok := readJSON[user.LoginRequest](w, r)
	if !ok {
		return
	}

	resp, err := h.Auth.Login(r.Context(), req)
	if err != nil {
		slog.Debug("login failed", "email", req.Email, "error", err)
		writeServiceError(w, err)
		return
	}

	writeData(w, http.StatusOK, resp)
}

// ListUsers handles GET /users (admin only, enforced by middleware).
func (h *Handlers) ListUsers(w http.ResponseWriter, r *http.Request) {
	id := callerIdentity(w, r)
	if id == nil {
		return
	}

	users, err := h.Auth.ListUsers(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	if users == nil {
		users = []user.ListItem{}
	}
	writeData(w, http.StatusOK, users)
}
