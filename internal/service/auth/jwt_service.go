// Package auth issues and validates the bearer tokens that protect the
// registry's administrative routes.
package auth

import (
	"context"
	"time"

	"github.com/garagemlabs/veiculos-api/internal/domain"
)

// JWTService defines operations for managing JWT authentication tokens.
type JWTService interface {
	// GenerateToken creates a signed token for an administrator whose
	// credentials have already been verified by the store.
	// Returns the compact token string or an error if signing fails.
	GenerateToken(ctx context.Context, admin *domain.Administrator) (string, error)

	// ValidateToken validates the provided token string and extracts the
	// claims. Returns ErrExpiredToken or ErrInvalidToken on failure.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims represents the verified contents of a bearer token.
type Claims struct {
	// Email identifies the administrator the token was issued to.
	Email string

	// Role is the administrator's permission tier ("Adm" or "Editor").
	Role string

	IssuedAt  time.Time
	ExpiresAt time.Time
	ID        string
}
