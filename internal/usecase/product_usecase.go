package usecase

import (
	"context"

	"github.com/google/uuid"

	"marketplace/internal/domain/entity"
)

// ProductUsecase defines product catalog operations. Writes require owning the shop.
type ProductUsecase interface {
	CreateProduct(ctx context.Context, principal entity.Principal, shopID uuid.UUID, details entity.ProductDetails) (*entity.Product, error)

	// ListProducts returns available products, optionally scoped to one shop.
	ListProducts(ctx context.Context, shopID *uuid.UUID) ([]*entity.Product, error)

	// UpdateProduct replaces the editable fields of a product.
	UpdateProduct(ctx context.Context, principal entity.Principal, productID uuid.UUID, details entity.ProductDetails) (*entity.Product, error)
}
