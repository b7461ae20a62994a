package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"marketplace/internal/domain/entity"
)

// Claims defines the custom claims for session tokens.
type Claims struct {
	UserID uuid.UUID   `json:"user_id"`
	Role   entity.Role `json:"role"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// IssueToken creates a signed session token for the user.
	IssueToken(userID uuid.UUID, role entity.Role) (string, error)

	// ValidateToken checks the validity of a token string.
	ValidateToken(tokenString string) (*Claims, error)
}
