package postgres

import (
	"context"
	"fmt"

	"github.com/noteloft/noteloft/internal/domain/tenant"
)

const tenantColumns = `id, name, slug, subscription_plan, created_at, updated_at`

func scanTenant(row scannable) (tenant.Tenant, error) {
	var t tenant.Tenant
	err := row.Scan(&t.ID, &t.Name, &t.Slug, &t.SubscriptionPlan, &t.CreatedAt, &t.UpdatedAt)
	return t, err
}

func (s *Store) GetTenant(ctx context.Context, id string) (*tenant.Tenant, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT `+tenantColumns+` FROM tenants WHERE id = $1`, id)

	t, err := scanTenant(row)
	if err != nil {
		return nil, notFoundWrap(err, "get tenant %s", id)
	}
	return &t, nil
}

func (s *Store) GetTenantBySlug(ctx context.Context, slug string) (*tenant.Tenant, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT `+tenantColumns+` FROM tenants WHERE slug = $1`, slug)

	t, err := scanTenant(row)
	if err != nil {
		return nil, notFoundWrap(err, "get tenant by slug %s", slug)
	}
	return &t, nil
}

func (s *Store) UpdateTenantPlan(ctx context.Context, id string, plan tenant.Plan) (*tenant.Tenant, error) {
	row := s.pool.QueryRow(ctx,
		`UPDATE tenants SET subscription_plan = $2, updated_at = now()
		 WHERE id = $1
		 RETURNING `+tenantColumns, id, plan)

	t, err := scanTenant(row)
	if err != nil {
		return nil, notFoundWrap(err, "update tenant plan %s", id)
	}
	return &t, nil
}

// EnsureTenant creates the tenant unless a row with the slug already
// exists, and returns the stored row either way.
func (s *Store) EnsureTenant(ctx context.Context, name, slug string, plan tenant.Plan) (*tenant.Tenant, error) {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO tenants (name, slug, subscription_plan) VALUES ($1, $2, $3)
		 ON CONFLICT (slug) DO NOTHING`, name, slug, plan)
	if err != nil {
		return nil, fmt.Errorf("ensure tenant %s: %w", slug, err)
	}
	return s.GetTenantBySlug(ctx, slug)
}
