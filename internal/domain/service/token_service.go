package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims is the payload of a bearer token. UserID is the caller identity
// used for follow state and personal routes.
type Claims struct {
	UserID uuid.UUID `json:"uid"`
	jwt.RegisteredClaims
}

// TokenService signs and verifies bearer tokens.
type TokenService interface {
	GenerateAccessToken(userID uuid.UUID) (string, error)

	// ValidateAccessToken rejects expired, malformed or foreign-signed tokens.
	ValidateAccessToken(tokenString string) (*Claims, error)
}
