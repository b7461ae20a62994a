package repository

import (
	"context"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrProductNotFound is returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines the interface for catalog persistence.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// ListAvailable returns available products, optionally restricted to one shop.
	ListAvailable(ctx context.Context, shopID *uuid.UUID) ([]*entity.Product, error)

	// Update persists the editable fields of an existing product.
	Update(ctx context.Context, product *entity.Product) error
}
