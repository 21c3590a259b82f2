// Package identity defines the verified caller identity and the
// authorization scopes derived from it.
//
// Every note operation is authorized by a single Scope value computed
// here, instead of role checks scattered through handlers. A Scope is a
// row predicate: it always pins the tenant, and optionally pins the
// owning user.
package identity

import "github.com/noteloft/noteloft/internal/domain/user"

// Identity is the set of verified claims carried by a bearer token.
// It is attached to the request context by the auth middleware.
type Identity struct {
	UserID     string
	Email      string
	Role       user.Role
	TenantID   string
	TenantSlug string
}

// IsAdmin reports whether the identity holds the admin role.
func (id *Identity) IsAdmin() bool {
	return id.Role == user.RoleAdmin
}

// Scope restricts which note rows an operation may touch. TenantID is
// always set. An empty UserID means any row in the tenant.
type Scope struct {
	TenantID string
	UserID   string
}

// ReadScope covers List and Get: any note in the caller's tenant,
// regardless of role.
func (id *Identity) ReadScope() Scope {
	return Scope{TenantID: id.TenantID}
}

// UpdateScope covers Update: only the caller's own notes. Admins get no
// override here; the asymmetry with Delete is deliberate observed
// behavior.
func (id *Identity) UpdateScope() Scope {
	return Scope{TenantID: id.TenantID, UserID: id.UserID}
}

// DeleteScope covers Delete: admins may delete any note in their tenant,
// members only their own.
func (id *Identity) DeleteScope() Scope {
	if id.IsAdmin() {
		return Scope{TenantID: id.TenantID}
	}
	return Scope{TenantID: id.TenantID, UserID: id.UserID}
}
