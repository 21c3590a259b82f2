// Package domain provides shared domain-level sentinel errors.
package domain

import "errors"

// ErrNotFound indicates the requested entity does not exist or is outside
// the caller's tenant/ownership scope. The two cases are deliberately
// indistinguishable to callers.
var ErrNotFound = errors.New("not found")

// ErrValidation indicates malformed or missing request input.
var ErrValidation = errors.New("validation failed")

// ErrInvalidCredentials indicates a failed login. The same error is
// returned for unknown email and wrong password.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrInvalidToken indicates a missing, malformed, badly signed, or
// expired bearer token.
var ErrInvalidToken = errors.New("invalid or expired token")

// ErrForbidden indicates a role or tenant check failed.
var ErrForbidden = errors.New("forbidden")

// ErrNoteLimit indicates the tenant's free-plan note cap was reached.
var ErrNoteLimit = errors.New("free plan note limit reached")

// ErrAlreadyOnPlan indicates an upgrade to a plan the tenant already has.
var ErrAlreadyOnPlan = errors.New("tenant is already on this plan")
