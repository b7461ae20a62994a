package usecase

import (
	"context"

	"github.com/google/uuid"

	"marketplace/internal/domain/entity"
)

// CreateOrderInput carries the customer's item snapshot and delivery details.
type CreateOrderInput struct {
	ShopID           uuid.UUID
	Items            []entity.OrderItem
	DeliveryAddress  string
	DeliveryLocation entity.Location
}

// OrderUsecase defines the order workflow: create, assign, update status.
type OrderUsecase interface {
	CreateOrder(ctx context.Context, principal entity.Principal, input *CreateOrderInput) (*entity.Order, error)

	// ListOrders returns the caller's role-scoped orders, newest first.
	ListOrders(ctx context.Context, principal entity.Principal) ([]*entity.Order, error)

	GetOrder(ctx context.Context, principal entity.Principal, orderID uuid.UUID) (*entity.Order, error)
	UpdateStatus(ctx context.Context, principal entity.Principal, orderID uuid.UUID, status entity.OrderStatus) (*entity.Order, error)
	AssignDeliveryAgent(ctx context.Context, principal entity.Principal, orderID, agentID uuid.UUID) (*entity.Order, error)
}
