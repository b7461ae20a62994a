package impl

import (
	"context"
	"time"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/policy"
	"marketplace/internal/domain/repository"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type productService struct {
	productRepo repository.ProductRepository
	shopRepo    repository.ShopRepository
	now         func() time.Time
}

// NewProductService creates a new product service instance
func NewProductService(productRepo repository.ProductRepository, shopRepo repository.ShopRepository) usecase.ProductUsecase {
	return &productService{
		productRepo: productRepo,
		shopRepo:    shopRepo,
		now:         time.Now,
	}
}

// CreateProduct adds an available product to a shop the caller owns.
func (s *productService) CreateProduct(ctx context.Context, principal entity.Principal, shopID uuid.UUID, details entity.ProductDetails) (*entity.Product, error) {
	if err := policy.Authorize(principal, policy.ActionManageProduct); err != nil {
		return nil, err
	}
	if err := validateProductDetails(details); err != nil {
		return nil, err
	}

	shop, err := s.shopRepo.FindByID(ctx, shopID)
	if err != nil {
		if errors.Is(err, repository.ErrShopNotFound) {
			return nil, domainerrors.ErrShopNotFound
		}

		return nil, errors.Wrap(err, "failed to find shop")
	}

	if err := policy.AuthorizeShopOwnership(principal, shop); err != nil {
		return nil, err
	}

	product := &entity.Product{
		ID:          uuid.New(),
		ShopID:      shop.ID,
		IsAvailable: true,
		CreatedAt:   s.now().UTC(),
	}
	product.Apply(details)

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to create product")
	}

	return product, nil
}

// ListProducts returns available products, optionally of one shop.
func (s *productService) ListProducts(ctx context.Context, shopID *uuid.UUID) ([]*entity.Product, error) {
	products, err := s.productRepo.ListAvailable(ctx, shopID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

// UpdateProduct replaces the editable fields when the caller owns the product's shop.
func (s *productService) UpdateProduct(ctx context.Context, principal entity.Principal, productID uuid.UUID, details entity.ProductDetails) (*entity.Product, error) {
	if err := policy.Authorize(principal, policy.ActionManageProduct); err != nil {
		return nil, err
	}
	if err := validateProductDetails(details); err != nil {
		return nil, err
	}

	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	shop, err := s.shopRepo.FindByID(ctx, product.ShopID)
	if err != nil {
		// A product whose shop is gone cannot be owned by anyone.
		if errors.Is(err, repository.ErrShopNotFound) {
			return nil, domainerrors.ErrForbidden
		}

		return nil, errors.Wrap(err, "failed to find product shop")
	}

	if err := policy.AuthorizeShopOwnership(principal, shop); err != nil {
		return nil, err
	}

	product.Apply(details)
	if err := s.productRepo.Update(ctx, product); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to update product")
	}

	return product, nil
}

func validateProductDetails(details entity.ProductDetails) error {
	if details.Price <= 0 {
		return domainerrors.ErrValidationFailed.WrapMessage("price must be greater than zero")
	}
	if details.Stock < 0 {
		return domainerrors.ErrValidationFailed.WrapMessage("stock must not be negative")
	}

	return nil
}
