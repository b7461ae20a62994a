package usecase

import (
	"context"

	"github.com/google/uuid"

	"marketplace/internal/domain/entity"
)

// CreateShopInput defines the data required to open a shop.
type CreateShopInput struct {
	Name        string
	Description string
	Location    entity.Location
	Address     string
	Phone       string
}

// ShopUsecase defines shop catalog operations.
type ShopUsecase interface {
	CreateShop(ctx context.Context, principal entity.Principal, input *CreateShopInput) (*entity.Shop, error)

	// ListShops returns active shops. When near is set they are ordered by distance from it;
	// nothing is filtered out.
	ListShops(ctx context.Context, near *entity.Location) ([]*entity.Shop, error)

	GetShop(ctx context.Context, id uuid.UUID) (*entity.Shop, error)
	ListMyShops(ctx context.Context, principal entity.Principal) ([]*entity.Shop, error)
}
