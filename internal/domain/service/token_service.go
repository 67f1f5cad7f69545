package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the claims carried by an access token issued by the auth provider.
type Claims struct {
	UserID uuid.UUID `json:"-"`
	Email  string    `json:"email"`
	Role   string    `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for validating and issuing session access tokens.
// This abstracts the details of the auth provider's token format from the use cases.
type TokenService interface {
	// ValidateAccessToken verifies signature, audience and expiry and returns the claims.
	ValidateAccessToken(tokenString string) (*Claims, error)

	// IssueAccessToken signs an access token for the identity. Used by tests;
	// production tokens come from the auth provider.
	IssueAccessToken(userID uuid.UUID, email string, ttl time.Duration) (string, error)
}
