package repository

import (
	"context"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
)

// ReviewRepository defines the interface for review persistence. Reviews are append-only.
type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) error

	// ListByTarget returns every review of the target id regardless of target type.
	ListByTarget(ctx context.Context, targetID uuid.UUID) ([]*entity.Review, error)

	// ListTargets returns the distinct targets that have at least one review.
	ListTargets(ctx context.Context) ([]entity.ReviewTarget, error)
}
