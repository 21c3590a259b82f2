package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/noteloft/noteloft/internal/adapter/otel"
	"github.com/noteloft/noteloft/internal/config"
	"github.com/noteloft/noteloft/internal/domain"
	"github.com/noteloft/noteloft/internal/domain/identity"
	"github.com/noteloft/noteloft/internal/domain/tenant"
	"github.com/noteloft/noteloft/internal/domain/user"
	"github.com/noteloft/noteloft/internal/port/database"
)

// AuthService handles login, password verification, and signed tokens.
type AuthService struct {
	store   database.Store
	cfg     *config.Auth
	secret  []byte
	metrics *otel.Metrics
}

// NewAuthService creates a new authentication service. metrics may be nil.
func NewAuthService(store database.Store, cfg *config.Auth, metrics *otel.Metrics) *AuthService {
	return &AuthService{
		store:   store,
		cfg:     cfg,
		secret:  []byte(cfg.JWTSecret),
		metrics: metrics,
	}
}

// tokenClaims is the JWT payload. Field names are part of the wire
// contract consumed by clients.
type tokenClaims struct {
	UserID     string    `json:"userId"`
	Email      string    `json:"email"`
	Role       user.Role `json:"role"`
	TenantID   string    `json:"tenantId"`
	TenantSlug string    `json:"tenantSlug"`
	jwt.RegisteredClaims
}

// Login authenticates a user by email and password and returns the signed
// token plus user and tenant snapshots. Unknown email and wrong password
// produce the same domain.ErrInvalidCredentials so callers cannot probe
// for accounts.
func (s *AuthService) Login(ctx context.Context, req user.LoginRequest) (*user.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrValidation, err)
	}

	u, err := s.store.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	t, err := s.store.GetTenant(ctx, u.TenantID)
	if err != nil {
		return nil, fmt.Errorf("get tenant: %w", err)
	}

	token, err := s.IssueToken(u, t)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	slog.Debug("login succeeded", "user_id", u.ID, "tenant", t.Slug)
	s.metrics.Login(ctx)

	return &user.LoginResponse{
		Token:  token,
		User:   u.Public(),
		Tenant: *t,
	}, nil
}

// IssueToken signs a token asserting the user's identity within its
// tenant. Validity is cfg.TokenExpiry (24h by default) from issuance.
func (s *AuthService) IssueToken(u *user.User, t *tenant.Tenant) (string, error) {
	now := time.Now()
	claims := tokenClaims{
		UserID:     u.ID,
		Email:      u.Email,
		Role:       u.Role,
		TenantID:   u.TenantID,
		TenantSlug: t.Slug,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.TokenExpiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// ValidateToken verifies a token's signature and expiry and returns the
// asserted identity. All failure modes (bad signature, malformed payload,
// expiry) surface as domain.ErrInvalidToken.
func (s *AuthService) ValidateToken(raw string) (*identity.Identity, error) {
	var claims tokenClaims
	_, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidToken, err)
	}

	return &identity.Identity{
		UserID:     claims.UserID,
		Email:      claims.Email,
		Role:       claims.Role,
		TenantID:   claims.TenantID,
		TenantSlug: claims.TenantSlug,
	}, nil
}

// CreateUser hashes the password and stores a new user. Used by seeding
// and the admin CLI; there is no public registration endpoint.
func (s *AuthService) CreateUser(ctx context.Context, req *user.CreateRequest) (*user.User, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrValidation, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.cfg.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u := &user.User{
		ID:           uuid.NewString(),
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         req.Role,
		TenantID:     req.TenantID,
	}

	if err := s.store.CreateUser(ctx, u); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return u, nil
}

// ListUsers returns the admin user listing for the caller's tenant.
func (s *AuthService) ListUsers(ctx context.Context, id *identity.Identity) ([]user.ListItem, error) {
	return s.store.ListUsers(ctx, id.TenantID)
}
