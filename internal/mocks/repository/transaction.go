package repository

import (
	"context"

	"marketplace/internal/domain/repository"
)

// TransactionManager runs the callback directly against the given mocks.
// Rollback is not simulated; the callback's error is returned as is.
type TransactionManager struct {
	Users   *MockUserRepository
	Shops   *MockShopRepository
	Reviews *MockReviewRepository

	// Calls counts Execute invocations.
	Calls int
}

func (m *TransactionManager) Execute(ctx context.Context, fn func(txRepoFactory repository.RepositoryFactory) error) error {
	m.Calls++

	return fn(m)
}

func (m *TransactionManager) NewUserRepository() repository.UserRepository {
	return m.Users
}

func (m *TransactionManager) NewShopRepository() repository.ShopRepository {
	return m.Shops
}

func (m *TransactionManager) NewReviewRepository() repository.ReviewRepository {
	return m.Reviews
}
