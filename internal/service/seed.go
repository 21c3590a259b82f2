package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/noteloft/noteloft/internal/domain/tenant"
	"github.com/noteloft/noteloft/internal/domain/user"
	"github.com/noteloft/noteloft/internal/port/database"
)

// SeedPassword is the password every seeded account gets.
const SeedPassword = "password"

// seedTenants are the demo organizations created by Seed.
var seedTenants = []struct {
	name string
	slug string
}{
	{"Acme Corporation", "acme"},
	{"Globex Corporation", "globex"},
}

// SeedResult summarizes what a seeding run created.
type SeedResult struct {
	Tenants         []tenant.Tenant `json:"tenants"`
	NewUsersCreated int             `json:"newUsersCreated"`
	ExistingUsers   int             `json:"existingUsers"`
}

// SeedService creates the demo tenants and accounts used for development
// and manual testing. Seeding is idempotent: existing rows are left alone.
type SeedService struct {
	store database.Store
	auth  *AuthService
}

// NewSeedService creates a new seed service.
func NewSeedService(store database.Store, auth *AuthService) *SeedService {
	return &SeedService{store: store, auth: auth}
}

// Seed ensures the acme and globex tenants exist, each with an admin and
// a member account (admin@<slug>.test / user@<slug>.test, password
// "password").
func (s *SeedService) Seed(ctx context.Context) (*SeedResult, error) {
	res := &SeedResult{}

	for _, st := range seedTenants {
		t, err := s.store.EnsureTenant(ctx, st.name, st.slug, tenant.PlanFree)
		if err != nil {
			return nil, fmt.Errorf("ensure tenant %s: %w", st.slug, err)
		}
		res.Tenants = append(res.Tenants, *t)

		accounts := []struct {
			email string
			role  user.Role
		}{
			{"admin@" + st.slug + ".test", user.RoleAdmin},
			{"user@" + st.slug + ".test", user.RoleMember},
		}

		for _, a := range accounts {
			exists, err := s.store.UserExists(ctx, a.email)
			if err != nil {
				return nil, fmt.Errorf("check user %s: %w", a.email, err)
			}
			if exists {
				res.ExistingUsers++
				continue
			}

			if _, err := s.auth.CreateUser(ctx, &user.CreateRequest{
				Email:    a.email,
				Password: SeedPassword,
				Role:     a.role,
				TenantID: t.ID,
			}); err != nil {
				return nil, fmt.Errorf("seed user %s: %w", a.email, err)
			}
			res.NewUsersCreated++
		}
	}

	slog.Info("database seeded", "new_users", res.NewUsersCreated, "existing_users", res.ExistingUsers)
	return res, nil
}
