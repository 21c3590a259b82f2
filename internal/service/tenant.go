package service

import (
	"context"
	"fmt"

	"github.com/noteloft/noteloft/internal/adapter/otel"
	"github.com/noteloft/noteloft/internal/domain"
	"github.com/noteloft/noteloft/internal/domain/identity"
	"github.com/noteloft/noteloft/internal/domain/tenant"
	"github.com/noteloft/noteloft/internal/port/database"
)

// TenantService implements subscription plan management.
type TenantService struct {
	store   database.Store
	metrics *otel.Metrics
}

// NewTenantService creates a new tenant service. metrics may be nil.
func NewTenantService(store database.Store, metrics *otel.Metrics) *TenantService {
	return &TenantService{store: store, metrics: metrics}
}

// Upgrade moves the tenant identified by slug from the free plan to pro.
// The caller must be an admin of that same tenant: the middleware enforces
// the role, and the slug comparison here stops an admin from upgrading a
// foreign tenant even with a valid token. Upgrading an already-pro tenant
// fails with domain.ErrAlreadyOnPlan. The transition is one-directional.
func (s *TenantService) Upgrade(ctx context.Context, id *identity.Identity, slug string) (*tenant.Tenant, error) {
	if id.TenantSlug != slug {
		return nil, fmt.Errorf("%w: you can only upgrade your own tenant", domain.ErrForbidden)
	}

	t, err := s.store.GetTenantBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	if t.SubscriptionPlan == tenant.PlanPro {
		return nil, domain.ErrAlreadyOnPlan
	}

	updated, err := s.store.UpdateTenantPlan(ctx, t.ID, tenant.PlanPro)
	if err != nil {
		return nil, fmt.Errorf("upgrade tenant %s: %w", slug, err)
	}

	s.metrics.TenantUpgraded(ctx)
	return updated, nil
}
