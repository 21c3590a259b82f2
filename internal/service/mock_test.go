package service

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/noteloft/noteloft/internal/domain"
	"github.com/noteloft/noteloft/internal/domain/identity"
	"github.com/noteloft/noteloft/internal/domain/note"
	"github.com/noteloft/noteloft/internal/domain/tenant"
	"github.com/noteloft/noteloft/internal/domain/user"
)

// mockStore is an in-memory database.Store. It mirrors the real store's
// scope semantics and the free-plan note cap so service tests exercise
// the same authorization paths.
type mockStore struct {
	tenants map[string]*tenant.Tenant
	users   map[string]*user.User
	notes   map[string]*note.Note
}

func newMockStore() *mockStore {
	return &mockStore{
		tenants: make(map[string]*tenant.Tenant),
		users:   make(map[string]*user.User),
		notes:   make(map[string]*note.Note),
	}
}

func (m *mockStore) addTenant(slug string, plan tenant.Plan) *tenant.Tenant {
	t := &tenant.Tenant{
		ID:               uuid.NewString(),
		Name:             slug,
		Slug:             slug,
		SubscriptionPlan: plan,
		CreatedAt:        time.Now(),
		UpdatedAt:        time.Now(),
	}
	m.tenants[t.ID] = t
	return t
}

func (m *mockStore) GetTenant(_ context.Context, id string) (*tenant.Tenant, error) {
	t, ok := m.tenants[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return t, nil
}

func (m *mockStore) GetTenantBySlug(_ context.Context, slug string) (*tenant.Tenant, error) {
	for _, t := range m.tenants {
		if t.Slug == slug {
			return t, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *mockStore) UpdateTenantPlan(_ context.Context, id string, plan tenant.Plan) (*tenant.Tenant, error) {
	t, ok := m.tenants[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	t.SubscriptionPlan = plan
	t.UpdatedAt = time.Now()
	return t, nil
}

func (m *mockStore) EnsureTenant(ctx context.Context, name, slug string, plan tenant.Plan) (*tenant.Tenant, error) {
	if t, err := m.GetTenantBySlug(ctx, slug); err == nil {
		return t, nil
	}
	t := m.addTenant(slug, plan)
	t.Name = name
	return t, nil
}

func (m *mockStore) CreateUser(_ context.Context, u *user.User) error {
	if u.CreatedAt.IsZero() {
		now := time.Now().UTC()
		u.CreatedAt = now
		u.UpdatedAt = now
	}
	m.users[u.ID] = u
	return nil
}

func (m *mockStore) GetUserByEmail(_ context.Context, email string) (*user.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *mockStore) ListUsers(_ context.Context, tenantID string) ([]user.ListItem, error) {
	items := []user.ListItem{}
	for _, u := range m.users {
		if u.TenantID == tenantID {
			items = append(items, user.ListItem{
				ID:        u.ID,
				Email:     u.Email,
				Role:      u.Role,
				CreatedAt: u.CreatedAt,
			})
		}
	}
	// Same order as the SQL listing: created_at ascending.
	sort.Slice(items, func(i, j int) bool { return items[i].CreatedAt.Before(items[j].CreatedAt) })
	return items, nil
}

func (m *mockStore) UserExists(_ context.Context, email string) (bool, error) {
	_, err := m.GetUserByEmail(context.Background(), email)
	return err == nil, nil
}

func (m *mockStore) matches(n *note.Note, scope identity.Scope) bool {
	if n.TenantID != scope.TenantID {
		return false
	}
	return scope.UserID == "" || n.UserID == scope.UserID
}

func (m *mockStore) ListNotes(_ context.Context, scope identity.Scope) ([]note.Note, error) {
	notes := []note.Note{}
	for _, n := range m.notes {
		if m.matches(n, scope) {
			notes = append(notes, *n)
		}
	}
	sort.Slice(notes, func(i, j int) bool { return notes[i].CreatedAt.After(notes[j].CreatedAt) })
	return notes, nil
}

func (m *mockStore) GetNote(_ context.Context, id string, scope identity.Scope) (*note.Note, error) {
	n, ok := m.notes[id]
	if !ok || !m.matches(n, scope) {
		return nil, domain.ErrNotFound
	}
	return n, nil
}

func (m *mockStore) CreateNote(_ context.Context, n *note.Note) error {
	t, ok := m.tenants[n.TenantID]
	if !ok {
		return domain.ErrNotFound
	}
	if t.SubscriptionPlan == tenant.PlanFree {
		count := 0
		for _, existing := range m.notes {
			if existing.TenantID == n.TenantID {
				count++
			}
		}
		if count >= tenant.FreePlanNoteLimit {
			return domain.ErrNoteLimit
		}
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now()
		n.UpdatedAt = n.CreatedAt
	}
	m.notes[n.ID] = n
	return nil
}

func (m *mockStore) UpdateNote(_ context.Context, id string, req note.UpdateRequest, scope identity.Scope) (*note.Note, error) {
	n, ok := m.notes[id]
	if !ok || !m.matches(n, scope) {
		return nil, domain.ErrNotFound
	}
	if req.Title != nil {
		n.Title = *req.Title
	}
	if req.Content != nil {
		n.Content = *req.Content
	}
	n.UpdatedAt = time.Now()
	return n, nil
}

func (m *mockStore) DeleteNote(_ context.Context, id string, scope identity.Scope) error {
	n, ok := m.notes[id]
	if !ok || !m.matches(n, scope) {
		return domain.ErrNotFound
	}
	delete(m.notes, id)
	return nil
}
