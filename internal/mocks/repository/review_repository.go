package repository

import (
	"context"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockReviewRepository is a mock of repository.ReviewRepository.
type MockReviewRepository struct {
	mock.Mock
}

// NewMockReviewRepository creates a mock and asserts its expectations when the test ends.
func NewMockReviewRepository(t testingT) *MockReviewRepository {
	m := &MockReviewRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockReviewRepository) Create(ctx context.Context, review *entity.Review) error {
	return m.Called(ctx, review).Error(0)
}

func (m *MockReviewRepository) ListByTarget(ctx context.Context, targetID uuid.UUID) ([]*entity.Review, error) {
	args := m.Called(ctx, targetID)
	reviews, _ := args.Get(0).([]*entity.Review)

	return reviews, args.Error(1)
}

func (m *MockReviewRepository) ListTargets(ctx context.Context) ([]entity.ReviewTarget, error) {
	args := m.Called(ctx)
	targets, _ := args.Get(0).([]entity.ReviewTarget)

	return targets, args.Error(1)
}
