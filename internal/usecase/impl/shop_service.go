package impl

import (
	"context"
	"log/slog"
	"slices"
	"time"

	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/policy"
	"marketplace/internal/domain/repository"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type shopService struct {
	shopRepo repository.ShopRepository
	logger   *slog.Logger
	now      func() time.Time
}

// NewShopService creates a new shop service instance
func NewShopService(shopRepo repository.ShopRepository, logger *slog.Logger) usecase.ShopUsecase {
	return &shopService{
		shopRepo: shopRepo,
		logger:   logger,
		now:      time.Now,
	}
}

// CreateShop opens an active shop owned by the caller.
func (s *shopService) CreateShop(ctx context.Context, principal entity.Principal, input *usecase.CreateShopInput) (*entity.Shop, error) {
	if err := policy.Authorize(principal, policy.ActionCreateShop); err != nil {
		return nil, err
	}

	shop := &entity.Shop{
		ID:          uuid.New(),
		OwnerID:     principal.UserID,
		Name:        input.Name,
		Description: input.Description,
		Location:    input.Location,
		Address:     input.Address,
		Phone:       input.Phone,
		IsActive:    true,
		CreatedAt:   s.now().UTC(),
	}

	if err := s.shopRepo.Create(ctx, shop); err != nil {
		return nil, errors.Wrap(err, "failed to create shop")
	}

	deliverycontext.GetLoggerOrDefault(ctx, s.logger).Info("Shop created",
		slog.String("shopID", shop.ID.String()),
		slog.String("ownerID", shop.OwnerID.String()),
	)

	return shop, nil
}

// ListShops returns active shops, nearest first when a reference point is given.
func (s *shopService) ListShops(ctx context.Context, near *entity.Location) ([]*entity.Shop, error) {
	shops, err := s.shopRepo.ListActive(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list active shops")
	}

	if near != nil {
		slices.SortStableFunc(shops, func(a, b *entity.Shop) int {
			da, db := near.DistanceTo(a.Location), near.DistanceTo(b.Location)
			switch {
			case da < db:
				return -1
			case da > db:
				return 1
			default:
				return 0
			}
		})
	}

	return shops, nil
}

// GetShop returns a shop by id whether or not it is active.
func (s *shopService) GetShop(ctx context.Context, id uuid.UUID) (*entity.Shop, error) {
	shop, err := s.shopRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrShopNotFound) {
			return nil, domainerrors.ErrShopNotFound
		}

		return nil, errors.Wrap(err, "failed to find shop")
	}

	return shop, nil
}

// ListMyShops returns every shop owned by the caller.
func (s *shopService) ListMyShops(ctx context.Context, principal entity.Principal) ([]*entity.Shop, error) {
	if err := policy.Authorize(principal, policy.ActionListMyShops); err != nil {
		return nil, err
	}

	shops, err := s.shopRepo.ListByOwner(ctx, principal.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list owned shops")
	}

	return shops, nil
}
