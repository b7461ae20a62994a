package usecase

import (
	"context"

	"github.com/google/uuid"

	"marketplace/internal/domain/entity"
)

// CreateReviewInput defines a customer's rating of a shop or delivery agent.
type CreateReviewInput struct {
	TargetID   uuid.UUID
	TargetType entity.ReviewTargetType
	Rating     int
	Comment    string
}

// ReviewUsecase defines review submission and rating aggregation.
type ReviewUsecase interface {
	CreateReview(ctx context.Context, principal entity.Principal, input *CreateReviewInput) (*entity.Review, error)
	ListReviews(ctx context.Context, targetID uuid.UUID) ([]*entity.Review, error)

	// RecalculateRating recomputes one target's aggregate from all of its reviews.
	RecalculateRating(ctx context.Context, target entity.ReviewTarget) (entity.RatingSummary, error)

	// ReconcileRatings recalculates every reviewed target and returns how many were updated.
	ReconcileRatings(ctx context.Context) (int, error)
}
