package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/noteloft/noteloft/internal/domain/tenant"
	"github.com/noteloft/noteloft/internal/domain/user"
)

// Session is the client-side authentication state: the bearer token plus
// denormalized user and tenant snapshots taken at login time. The
// snapshots are a display cache only; the server re-derives everything
// from the token on each request.
type Session struct {
	Token  string          `json:"token"`
	User   user.PublicUser `json:"user"`
	Tenant tenant.Tenant   `json:"tenant"`
}

// LoggedIn reports whether the session carries a token.
func (s *Session) LoggedIn() bool {
	return s.Token != ""
}

// expired reports whether the token's exp claim has passed. The check is
// unverified on purpose: the client cannot know the signing secret, and a
// forged exp only costs one rejected request.
func (s *Session) expired(now time.Time) bool {
	if s.Token == "" {
		return true
	}
	var claims jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(s.Token, &claims); err != nil {
		return true
	}
	if claims.ExpiresAt == nil {
		return true
	}
	return !now.Before(claims.ExpiresAt.Time)
}

// SessionStore persists a Session as a JSON file. The lifecycle is
// explicit: Hydrate at startup, Save after login, Clear on logout.
type SessionStore struct {
	path string
}

// NewSessionStore creates a store writing to path. DefaultSessionPath
// gives the conventional location.
func NewSessionStore(path string) *SessionStore {
	return &SessionStore{path: path}
}

// DefaultSessionPath is <user config dir>/noteloft/session.json.
func DefaultSessionPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(dir, "noteloft", "session.json"), nil
}

// Hydrate loads the persisted session. A missing file or an expired
// token yields an empty logged-out session, never an error; only real
// I/O or decode failures are returned.
func (st *SessionStore) Hydrate() (*Session, error) {
	data, err := os.ReadFile(st.path)
	if errors.Is(err, fs.ErrNotExist) {
		return &Session{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read session: %w", err)
	}

	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}

	if s.expired(time.Now()) {
		if err := st.Clear(); err != nil {
			return nil, err
		}
		return &Session{}, nil
	}
	return &s, nil
}

// Save writes the session to disk, creating the parent directory. The
// file is user-only since it holds a bearer token.
func (st *SessionStore) Save(s *Session) error {
	if err := os.MkdirAll(filepath.Dir(st.path), 0o700); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := os.WriteFile(st.path, data, 0o600); err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	return nil
}

// Clear removes the persisted session. Clearing an absent session is
// not an error.
func (st *SessionStore) Clear() error {
	if err := os.Remove(st.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove session: %w", err)
	}
	return nil
}
