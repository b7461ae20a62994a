// Package usecase holds testify mocks of the application use cases.
package usecase

import (
	"context"

	"marketplace/internal/domain/entity"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

func track[M interface {
	Test(mock.TestingT)
	AssertExpectations(mock.TestingT) bool
}](t testingT, m M) M {
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockUserUsecase is a mock of usecase.UserUsecase.
type MockUserUsecase struct{ mock.Mock }

func NewMockUserUsecase(t testingT) *MockUserUsecase { return track(t, &MockUserUsecase{}) }

func (m *MockUserUsecase) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	args := m.Called(ctx, input)
	out, _ := args.Get(0).(*usecase.AuthOutput)

	return out, args.Error(1)
}

func (m *MockUserUsecase) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	args := m.Called(ctx, input)
	out, _ := args.Get(0).(*usecase.AuthOutput)

	return out, args.Error(1)
}

func (m *MockUserUsecase) CurrentUser(ctx context.Context, principal entity.Principal) (*entity.User, error) {
	args := m.Called(ctx, principal)
	user, _ := args.Get(0).(*entity.User)

	return user, args.Error(1)
}

func (m *MockUserUsecase) ListDeliveryAgents(ctx context.Context, principal entity.Principal) ([]*entity.User, error) {
	args := m.Called(ctx, principal)
	users, _ := args.Get(0).([]*entity.User)

	return users, args.Error(1)
}

// MockShopUsecase is a mock of usecase.ShopUsecase.
type MockShopUsecase struct{ mock.Mock }

func NewMockShopUsecase(t testingT) *MockShopUsecase { return track(t, &MockShopUsecase{}) }

func (m *MockShopUsecase) CreateShop(ctx context.Context, principal entity.Principal, input *usecase.CreateShopInput) (*entity.Shop, error) {
	args := m.Called(ctx, principal, input)
	shop, _ := args.Get(0).(*entity.Shop)

	return shop, args.Error(1)
}

func (m *MockShopUsecase) ListShops(ctx context.Context, near *entity.Location) ([]*entity.Shop, error) {
	args := m.Called(ctx, near)
	shops, _ := args.Get(0).([]*entity.Shop)

	return shops, args.Error(1)
}

func (m *MockShopUsecase) GetShop(ctx context.Context, id uuid.UUID) (*entity.Shop, error) {
	args := m.Called(ctx, id)
	shop, _ := args.Get(0).(*entity.Shop)

	return shop, args.Error(1)
}

func (m *MockShopUsecase) ListMyShops(ctx context.Context, principal entity.Principal) ([]*entity.Shop, error) {
	args := m.Called(ctx, principal)
	shops, _ := args.Get(0).([]*entity.Shop)

	return shops, args.Error(1)
}

// MockProductUsecase is a mock of usecase.ProductUsecase.
type MockProductUsecase struct{ mock.Mock }

func NewMockProductUsecase(t testingT) *MockProductUsecase { return track(t, &MockProductUsecase{}) }

func (m *MockProductUsecase) CreateProduct(ctx context.Context, principal entity.Principal, shopID uuid.UUID, details entity.ProductDetails) (*entity.Product, error) {
	args := m.Called(ctx, principal, shopID, details)
	product, _ := args.Get(0).(*entity.Product)

	return product, args.Error(1)
}

func (m *MockProductUsecase) ListProducts(ctx context.Context, shopID *uuid.UUID) ([]*entity.Product, error) {
	args := m.Called(ctx, shopID)
	products, _ := args.Get(0).([]*entity.Product)

	return products, args.Error(1)
}

func (m *MockProductUsecase) UpdateProduct(ctx context.Context, principal entity.Principal, productID uuid.UUID, details entity.ProductDetails) (*entity.Product, error) {
	args := m.Called(ctx, principal, productID, details)
	product, _ := args.Get(0).(*entity.Product)

	return product, args.Error(1)
}

// MockOrderUsecase is a mock of usecase.OrderUsecase.
type MockOrderUsecase struct{ mock.Mock }

func NewMockOrderUsecase(t testingT) *MockOrderUsecase { return track(t, &MockOrderUsecase{}) }

func (m *MockOrderUsecase) CreateOrder(ctx context.Context, principal entity.Principal, input *usecase.CreateOrderInput) (*entity.Order, error) {
	args := m.Called(ctx, principal, input)
	order, _ := args.Get(0).(*entity.Order)

	return order, args.Error(1)
}

func (m *MockOrderUsecase) ListOrders(ctx context.Context, principal entity.Principal) ([]*entity.Order, error) {
	args := m.Called(ctx, principal)
	orders, _ := args.Get(0).([]*entity.Order)

	return orders, args.Error(1)
}

func (m *MockOrderUsecase) GetOrder(ctx context.Context, principal entity.Principal, orderID uuid.UUID) (*entity.Order, error) {
	args := m.Called(ctx, principal, orderID)
	order, _ := args.Get(0).(*entity.Order)

	return order, args.Error(1)
}

func (m *MockOrderUsecase) UpdateStatus(ctx context.Context, principal entity.Principal, orderID uuid.UUID, status entity.OrderStatus) (*entity.Order, error) {
	args := m.Called(ctx, principal, orderID, status)
	order, _ := args.Get(0).(*entity.Order)

	return order, args.Error(1)
}

func (m *MockOrderUsecase) AssignDeliveryAgent(ctx context.Context, principal entity.Principal, orderID, agentID uuid.UUID) (*entity.Order, error) {
	args := m.Called(ctx, principal, orderID, agentID)
	order, _ := args.Get(0).(*entity.Order)

	return order, args.Error(1)
}

// MockReviewUsecase is a mock of usecase.ReviewUsecase.
type MockReviewUsecase struct{ mock.Mock }

func NewMockReviewUsecase(t testingT) *MockReviewUsecase { return track(t, &MockReviewUsecase{}) }

func (m *MockReviewUsecase) CreateReview(ctx context.Context, principal entity.Principal, input *usecase.CreateReviewInput) (*entity.Review, error) {
	args := m.Called(ctx, principal, input)
	review, _ := args.Get(0).(*entity.Review)

	return review, args.Error(1)
}

func (m *MockReviewUsecase) ListReviews(ctx context.Context, targetID uuid.UUID) ([]*entity.Review, error) {
	args := m.Called(ctx, targetID)
	reviews, _ := args.Get(0).([]*entity.Review)

	return reviews, args.Error(1)
}

func (m *MockReviewUsecase) RecalculateRating(ctx context.Context, target entity.ReviewTarget) (entity.RatingSummary, error) {
	args := m.Called(ctx, target)
	summary, _ := args.Get(0).(entity.RatingSummary)

	return summary, args.Error(1)
}

func (m *MockReviewUsecase) ReconcileRatings(ctx context.Context) (int, error) {
	args := m.Called(ctx)

	return args.Int(0), args.Error(1)
}
