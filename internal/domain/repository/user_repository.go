// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateEmail is returned when the email is already taken.
	ErrDuplicateEmail = errors.New("email already exists")
)

// UserRepository defines the standard operations for user persistence.
type UserRepository interface {
	// Create persists a new user. Returns ErrDuplicateEmail when the email is taken.
	Create(ctx context.Context, user *entity.User) error

	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByIDForUpdate retrieves a user and locks the row until the transaction ends.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// ListByRole returns all users holding the role.
	ListByRole(ctx context.Context, role entity.Role) ([]*entity.User, error)

	// UpdateRating overwrites the rating aggregate of a user.
	UpdateRating(ctx context.Context, id uuid.UUID, summary entity.RatingSummary) error
}
