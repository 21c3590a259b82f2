package client

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/noteloft/noteloft/internal/domain/tenant"
	"github.com/noteloft/noteloft/internal/domain/user"
)

func signedToken(t *testing.T, expiresAt time.Time) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	})
	raw, err := tok.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return raw
}

func TestHydrateMissingFile(t *testing.T) {
	store := NewSessionStore(filepath.Join(t.TempDir(), "session.json"))

	s, err := store.Hydrate()
	if err != nil {
		t.Fatalf("Hydrate: %v", err)
	}
	if s.LoggedIn() {
		t.Error("expected logged-out session for missing file")
	}
}

func TestSaveHydrateRoundTrip(t *testing.T) {
	store := NewSessionStore(filepath.Join(t.TempDir(), "session.json"))

	saved := &Session{
		Token: signedToken(t, time.Now().Add(time.Hour)),
		User: user.PublicUser{
			ID:    "u1",
			Email: "admin@acme.test",
			Role:  user.RoleAdmin,
		},
		Tenant: tenant.Tenant{
			ID:               "t1",
			Slug:             "acme",
			SubscriptionPlan: tenant.PlanFree,
		},
	}
	if err := store.Save(saved); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := store.Hydrate()
	if err != nil {
		t.Fatalf("Hydrate: %v", err)
	}
	if !got.LoggedIn() {
		t.Fatal("expected logged-in session")
	}
	if got.User.Email != saved.User.Email {
		t.Errorf("user email = %q, want %q", got.User.Email, saved.User.Email)
	}
	if got.Tenant.Slug != saved.Tenant.Slug {
		t.Errorf("tenant slug = %q, want %q", got.Tenant.Slug, saved.Tenant.Slug)
	}
}

func TestHydrateDiscardsExpiredToken(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	store := NewSessionStore(path)

	saved := &Session{Token: signedToken(t, time.Now().Add(-time.Minute))}
	if err := store.Save(saved); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := store.Hydrate()
	if err != nil {
		t.Fatalf("Hydrate: %v", err)
	}
	if got.LoggedIn() {
		t.Error("expected expired session to be discarded")
	}

	// The stale file is removed so the next hydrate starts clean.
	again, err := store.Hydrate()
	if err != nil {
		t.Fatalf("second Hydrate: %v", err)
	}
	if again.LoggedIn() {
		t.Error("expected session file to stay cleared")
	}
}

func TestHydrateDiscardsMalformedToken(t *testing.T) {
	store := NewSessionStore(filepath.Join(t.TempDir(), "session.json"))

	if err := store.Save(&Session{Token: "not-a-jwt"}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := store.Hydrate()
	if err != nil {
		t.Fatalf("Hydrate: %v", err)
	}
	if got.LoggedIn() {
		t.Error("expected malformed token to be discarded")
	}
}

func TestClearIdempotent(t *testing.T) {
	store := NewSessionStore(filepath.Join(t.TempDir(), "session.json"))

	if err := store.Clear(); err != nil {
		t.Fatalf("Clear on missing file: %v", err)
	}
	if err := store.Save(&Session{Token: signedToken(t, time.Now().Add(time.Hour))}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("second Clear: %v", err)
	}
}
