package repository

import (
	"context"
	"time"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrOrderNotFound is returned when an order is not found.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines the interface for order persistence.
type OrderRepository interface {
	// Create persists the order together with its items.
	Create(ctx context.Context, order *entity.Order) error

	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// List returns orders matching the filter, newest first.
	List(ctx context.Context, filter entity.OrderFilter) ([]*entity.Order, error)

	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus, updatedAt time.Time) error

	// AssignDeliveryAgent sets the agent and moves the order to assigned.
	AssignDeliveryAgent(ctx context.Context, id, agentID uuid.UUID, updatedAt time.Time) error
}
