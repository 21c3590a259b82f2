// Package tenant defines the tenant domain model for multi-tenancy.
package tenant

import "time"

// Plan is a tenant's subscription plan.
type Plan string

const (
	PlanFree Plan = "free"
	PlanPro  Plan = "pro"
)

// FreePlanNoteLimit is the maximum number of notes a free-plan tenant may hold.
const FreePlanNoteLimit = 3

// Tenant represents an isolated organization. Users and notes of one
// tenant are never visible to another.
type Tenant struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Slug             string    `json:"slug"`
	SubscriptionPlan Plan      `json:"subscription_plan"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
