// Package database defines the persistence port used by the service layer.
package database

import (
	"context"

	"github.com/noteloft/noteloft/internal/domain/identity"
	"github.com/noteloft/noteloft/internal/domain/note"
	"github.com/noteloft/noteloft/internal/domain/tenant"
	"github.com/noteloft/noteloft/internal/domain/user"
)

// Store is the persistence interface backed by PostgreSQL in production
// and by in-memory mocks in tests.
type Store interface {
	// Tenants
	GetTenant(ctx context.Context, id string) (*tenant.Tenant, error)
	GetTenantBySlug(ctx context.Context, slug string) (*tenant.Tenant, error)
	// UpdateTenantPlan sets the plan and returns the updated tenant.
	UpdateTenantPlan(ctx context.Context, id string, plan tenant.Plan) (*tenant.Tenant, error)
	// EnsureTenant creates the tenant if no row with its slug exists and
	// returns the stored row either way. Used by seeding.
	EnsureTenant(ctx context.Context, name, slug string, plan tenant.Plan) (*tenant.Tenant, error)

	// Users
	CreateUser(ctx context.Context, u *user.User) error
	GetUserByEmail(ctx context.Context, email string) (*user.User, error)
	ListUsers(ctx context.Context, tenantID string) ([]user.ListItem, error)
	UserExists(ctx context.Context, email string) (bool, error)

	// Notes
	ListNotes(ctx context.Context, scope identity.Scope) ([]note.Note, error)
	GetNote(ctx context.Context, id string, scope identity.Scope) (*note.Note, error)
	// CreateNote inserts a note. When the owning tenant is on the free
	// plan the note cap is enforced atomically (tenant row locked for the
	// duration of the insert) and domain.ErrNoteLimit is returned once
	// the cap is reached.
	CreateNote(ctx context.Context, n *note.Note) error
	UpdateNote(ctx context.Context, id string, req note.UpdateRequest, scope identity.Scope) (*note.Note, error)
	DeleteNote(ctx context.Context, id string, scope identity.Scope) error
}
