package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/noteloft/noteloft/internal/domain"
)

const maxRequestBodySize = 1 << 20 // 1 MB

// envelope is the wire shape of every API response.
type envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
	Code    string `json:"code,omitempty"`
}

// subscriptionLimitCode is the machine-readable code clients special-case
// to show an upgrade prompt.
const subscriptionLimitCode = "SUBSCRIPTION_LIMIT"

// readJSON decodes a JSON request body with a size limit.
func readJSON[T any](w http.ResponseWriter, r *http.Request) (T, bool) {
	var v T
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	if err := json.NewDecoder(r.Body).Decode(&v); err != nil {
		if err.Error() == "http: request body too large" {
			writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
		} else {
			writeError(w, http.StatusBadRequest, "invalid request body")
		}
		return v, false
	}
	return v, true
}

// urlParam is a short alias for chi.URLParam.
func urlParam(r *http.Request, name string) string {
	return chi.URLParam(r, name)
}

func writeEnvelope(w http.ResponseWriter, status int, env envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(env); err != nil {
		slog.Error("failed to write JSON response", "error", err)
	}
}

func writeData(w http.ResponseWriter, status int, data any) {
	writeEnvelope(w, status, envelope{Success: true, Data: data})
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeEnvelope(w, status, envelope{Success: true, Message: msg})
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeEnvelope(w, status, envelope{Success: false, Error: message})
}

// writeServiceError maps domain sentinel errors to HTTP responses. Any
// unexpected error is logged server-side and surfaced as a generic 500;
// no internal detail reaches the client.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, validationMessage(err))
	case errors.Is(err, domain.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, domain.ErrInvalidToken):
		writeError(w, http.StatusUnauthorized, "Invalid or expired token")
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, forbiddenMessage(err))
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "Not found")
	case errors.Is(err, domain.ErrNoteLimit):
		writeEnvelope(w, http.StatusForbidden, envelope{
			Success: false,
			Error:   "Free plan limit reached. Upgrade to Pro for unlimited notes.",
			Code:    subscriptionLimitCode,
		})
	case errors.Is(err, domain.ErrAlreadyOnPlan):
		writeError(w, http.StatusBadRequest, "Tenant is already on Pro plan")
	default:
		slog.Error("request failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// validationMessage strips the sentinel prefix so clients see only the
// human-readable part.
func validationMessage(err error) string {
	return strings.TrimPrefix(err.Error(), domain.ErrValidation.Error()+": ")
}

func forbiddenMessage(err error) string {
	msg := strings.TrimPrefix(err.Error(), domain.ErrForbidden.Error()+": ")
	if msg == domain.ErrForbidden.Error() {
		return "Access denied"
	}
	return "Access denied: " + msg
}

// isNotFound reports whether err maps to a 404.
func isNotFound(err error) bool {
	return errors.Is(err, domain.ErrNotFound)
}
