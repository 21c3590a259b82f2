package http

import (
	"net/http"

	"github.com/noteloft/noteloft/internal/domain/note"
)

// ListNotes handles GET /notes.
func (h *Handlers) ListNotes(w http.ResponseWriter, r *http.Request) {
	id := callerIdentity(w, r)
	if id == nil {
		return
	}

	notes, err := h.Notes.List(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeData(w, http.StatusOK, notes)
}

// CreateNote handles POST /notes.
func (h *Handlers) CreateNote(w http.ResponseWriter, r *http.Request) {
	id := callerIdentity(w, r)
	if id == nil {
		return
	}

	req, ok := readJSON[note.CreateRequest](w, r)
	if !ok {
		return
	}

	n, err := h.Notes.Create(r.Context(), id, req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeData(w, http.StatusCreated, n)
}

// GetNote handles GET /notes/{id}.
func (h *Handlers) GetNote(w http.ResponseWriter, r *http.Request) {
	id := callerIdentity(w, r)
	if id == nil {
		return
	}

	noteID := urlParam(r, "id")
	if noteID == "" {
		writeError(w, http.StatusBadRequest, "Note ID is required")
		return
	}

	n, err := h.Notes.Get(r.Context(), id, noteID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeData(w, http.StatusOK, n)
}

// UpdateNote handles PUT /notes/{id}.
func (h *Handlers) UpdateNote(w http.ResponseWriter, r *http.Request) {
	id := callerIdentity(w, r)
	if id == nil {
		return
	}

	noteID := urlParam(r, "id")
	if noteID == "" {
		writeError(w, http.StatusBadRequest, "Note ID is required")
		return
	}

	req, ok := readJSON[note.UpdateRequest](w, r)
	if !ok {
		return
	}

	n, err := h.Notes.Update(r.Context(), id, noteID, req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeData(w, http.StatusOK, n)
}

// DeleteNote handles DELETE /notes/{id}. The not-found message differs by
// role: an admin's scope is the whole tenant, a member's only their own
// notes, and the message reflects which scope came up empty.
func (h *Handlers) DeleteNote(w http.ResponseWriter, r *http.Request) {
	id := callerIdentity(w, r)
	if id == nil {
		return
	}

	noteID := urlParam(r, "id")
	if noteID == "" {
		writeError(w, http.StatusBadRequest, "Note ID is required")
		return
	}

	if err := h.Notes.Delete(r.Context(), id, noteID); err != nil {
		if isNotFound(err) {
			msg := "Note not found or access denied"
			if id.IsAdmin() {
				msg = "Note not found in your organization"
			}
			writeError(w, http.StatusNotFound, msg)
			return
		}
		writeServiceError(w, err)
		return
	}

	writeMessage(w, http.StatusOK, "Note deleted successfully")
}
