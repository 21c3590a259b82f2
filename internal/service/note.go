package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/noteloft/noteloft/internal/adapter/otel"
	"github.com/noteloft/noteloft/internal/domain"
	"github.com/noteloft/noteloft/internal/domain/identity"
	"github.com/noteloft/noteloft/internal/domain/note"
	"github.com/noteloft/noteloft/internal/port/database"
)

// NoteService implements the tenant- and ownership-scoped note operations.
// Authorization is expressed entirely through identity scopes; the service
// never branches on role directly.
type NoteService struct {
	store   database.Store
	metrics *otel.Metrics
}

// NewNoteService creates a new note service. metrics may be nil.
func NewNoteService(store database.Store, metrics *otel.Metrics) *NoteService {
	return &NoteService{store: store, metrics: metrics}
}

// List returns every note in the caller's tenant, newest first.
func (s *NoteService) List(ctx context.Context, id *identity.Identity) ([]note.Note, error) {
	return s.store.ListNotes(ctx, id.ReadScope())
}

// Get returns a single note in the caller's tenant. A note in another
// tenant is reported as not found, identically to true absence.
func (s *NoteService) Get(ctx context.Context, id *identity.Identity, noteID string) (*note.Note, error) {
	return s.store.GetNote(ctx, noteID, id.ReadScope())
}

// Create inserts a note owned by the caller. Owner and tenant come from
// the verified identity; any client-supplied values are ignored. Free-plan
// tenants are capped at tenant.FreePlanNoteLimit notes, enforced
// atomically in the store.
func (s *NoteService) Create(ctx context.Context, id *identity.Identity, req note.CreateRequest) (*note.Note, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrValidation, err)
	}

	n := &note.Note{
		ID:       uuid.NewString(),
		Title:    req.Title,
		Content:  req.Content,
		UserID:   id.UserID,
		TenantID: id.TenantID,
	}

	if err := s.store.CreateNote(ctx, n); err != nil {
		s.metrics.NoteLimitHit(ctx, err)
		return nil, err
	}

	s.metrics.NoteCreated(ctx)
	return n, nil
}

// Update modifies title and/or content of a note the caller owns. Admins
// get no ownership override on update; the asymmetry with Delete mirrors
// observed production behavior.
func (s *NoteService) Update(ctx context.Context, id *identity.Identity, noteID string, req note.UpdateRequest) (*note.Note, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrValidation, err)
	}
	return s.store.UpdateNote(ctx, noteID, req, id.UpdateScope())
}

// Delete removes a note. Admin callers may delete any note in their
// tenant; members only their own. Out-of-scope rows report as not found.
func (s *NoteService) Delete(ctx context.Context, id *identity.Identity, noteID string) error {
	return s.store.DeleteNote(ctx, noteID, id.DeleteScope())
}
