package repository

import (
	"context"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrShopNotFound is returned when a shop is not found.
var ErrShopNotFound = errors.New("shop not found")

// ShopRepository defines the interface for shop persistence.
type ShopRepository interface {
	Create(ctx context.Context, shop *entity.Shop) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Shop, error)

	// FindByIDForUpdate retrieves a shop and locks the row until the transaction ends.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Shop, error)

	// ListActive returns every shop with is_active set.
	ListActive(ctx context.Context) ([]*entity.Shop, error)

	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Shop, error)

	// UpdateRating overwrites the rating aggregate of a shop.
	UpdateRating(ctx context.Context, id uuid.UUID, summary entity.RatingSummary) error
}
