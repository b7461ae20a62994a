package postgres

import (
	"context"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// reviewRepository implements the repository.ReviewRepository interface.
type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository is the constructor for reviewRepository.
func NewReviewRepository(db *gorm.DB) repository.ReviewRepository {
	return &reviewRepository{
		db: db,
	}
}

// Create appends a review.
func (repo *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	reviewM := fromReviewDomain(review)

	if err := repo.db.WithContext(ctx).Create(reviewM).Error; err != nil {
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("rating must be between 1 and 5")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create review")
	}

	review.ID = reviewM.ID
	review.CreatedAt = reviewM.CreatedAt

	return nil
}

// ListByTarget returns the reviews of a target, oldest first.
func (repo *reviewRepository) ListByTarget(ctx context.Context, targetID uuid.UUID) ([]*entity.Review, error) {
	var reviewModels []*model.ReviewModel

	if err := repo.db.WithContext(ctx).
		Where("target_id = ?", targetID).
		Order("created_at ASC").
		Find(&reviewModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list reviews by target")
	}

	reviews := make([]*entity.Review, 0, len(reviewModels))
	for _, reviewM := range reviewModels {
		reviews = append(reviews, toReviewDomain(reviewM))
	}

	return reviews, nil
}

// ListTargets returns every distinct reviewed target.
func (repo *reviewRepository) ListTargets(ctx context.Context) ([]entity.ReviewTarget, error) {
	var rows []struct {
		TargetID   uuid.UUID
		TargetType string
	}

	if err := repo.db.WithContext(ctx).
		Model(&model.ReviewModel{}).
		Distinct("target_id", "target_type").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list review targets")
	}

	targets := make([]entity.ReviewTarget, 0, len(rows))
	for _, row := range rows {
		targets = append(targets, entity.ReviewTarget{ID: row.TargetID, Type: entity.ReviewTargetType(row.TargetType)})
	}

	return targets, nil
}

// --- Mapper Functions ---

func toReviewDomain(data *model.ReviewModel) *entity.Review {
	if data == nil {
		return nil
	}

	return &entity.Review{
		ID:         data.ID,
		ReviewerID: data.ReviewerID,
		TargetID:   data.TargetID,
		TargetType: entity.ReviewTargetType(data.TargetType),
		Rating:     data.Rating,
		Comment:    data.Comment,
		CreatedAt:  data.CreatedAt,
	}
}

func fromReviewDomain(data *entity.Review) *model.ReviewModel {
	if data == nil {
		return nil
	}

	return &model.ReviewModel{
		ID:         data.ID,
		ReviewerID: data.ReviewerID,
		TargetID:   data.TargetID,
		TargetType: string(data.TargetType),
		Rating:     data.Rating,
		Comment:    data.Comment,
		CreatedAt:  data.CreatedAt,
	}
}
