// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"marketplace/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Email    string
	Password string
	Phone    string
	Name     string
	Role     entity.Role
	Location *entity.Location
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// AuthOutput returns the account together with a fresh session token.
type AuthOutput struct {
	User  *entity.User
	Token string
}

// UserUsecase defines the interface for account-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)

	// CurrentUser re-reads the caller's record from storage.
	CurrentUser(ctx context.Context, principal entity.Principal) (*entity.User, error)

	// ListDeliveryAgents is restricted to shop owners.
	ListDeliveryAgents(ctx context.Context, principal entity.Principal) ([]*entity.User, error)
}
