package repository

import (
	"context"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockShopRepository is a mock of repository.ShopRepository.
type MockShopRepository struct {
	mock.Mock
}

// NewMockShopRepository creates a mock and asserts its expectations when the test ends.
func NewMockShopRepository(t testingT) *MockShopRepository {
	m := &MockShopRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockShopRepository) Create(ctx context.Context, shop *entity.Shop) error {
	return m.Called(ctx, shop).Error(0)
}

func (m *MockShopRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Shop, error) {
	args := m.Called(ctx, id)
	shop, _ := args.Get(0).(*entity.Shop)

	return shop, args.Error(1)
}

func (m *MockShopRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Shop, error) {
	args := m.Called(ctx, id)
	shop, _ := args.Get(0).(*entity.Shop)

	return shop, args.Error(1)
}

func (m *MockShopRepository) ListActive(ctx context.Context) ([]*entity.Shop, error) {
	args := m.Called(ctx)
	shops, _ := args.Get(0).([]*entity.Shop)

	return shops, args.Error(1)
}

func (m *MockShopRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Shop, error) {
	args := m.Called(ctx, ownerID)
	shops, _ := args.Get(0).([]*entity.Shop)

	return shops, args.Error(1)
}

func (m *MockShopRepository) UpdateRating(ctx context.Context, id uuid.UUID, summary entity.RatingSummary) error {
	return m.Called(ctx, id, summary).Error(0)
}
