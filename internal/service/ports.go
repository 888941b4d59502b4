package service

import (
	"context"
	"time"

	"boba-storefront/internal/models"

	"github.com/google/uuid"
)

// Claims is the session principal extracted from an access token.
type Claims struct {
	UserID uuid.UUID
	Email  string
	Role   string
	Exp    time.Time
}

type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

type TokenProvider interface {
	SignAccess(ctx context.Context, sub uuid.UUID, email, role string, ttl time.Duration) (string, time.Time, error)
	ParseAndValidateAccess(ctx context.Context, token string) (*Claims, error)
}

// RoleResolver decides the caller's privilege level from session claims.
// The identity provider is authoritative today (claims-backed resolver); a
// table-backed resolver can replace it without touching guard or services.
type RoleResolver interface {
	Resolve(c *Claims) models.Role
}

// ClaimsRoleResolver reads the role straight from the token claims.
type ClaimsRoleResolver struct{}

func (ClaimsRoleResolver) Resolve(c *Claims) models.Role {
	switch models.Role(c.Role) {
	case models.RoleAdmin:
		return models.RoleAdmin
	case models.RoleSuperAdmin:
		return models.RoleSuperAdmin
	default:
		return models.RoleCustomer
	}
}
