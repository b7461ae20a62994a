package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/policy"
	"marketplace/internal/domain/repository"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type reviewService struct {
	txManager  repository.TransactionManager
	reviewRepo repository.ReviewRepository
	logger     *slog.Logger
	now        func() time.Time
}

// ReviewServiceParams holds dependencies for ReviewService, injected by Fx.
type ReviewServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	ReviewRepo repository.ReviewRepository
	Logger     *slog.Logger
}

// NewReviewService creates a new review service instance
func NewReviewService(params ReviewServiceParams) usecase.ReviewUsecase {
	return &reviewService{
		txManager:  params.TxManager,
		reviewRepo: params.ReviewRepo,
		logger:     params.Logger,
		now:        time.Now,
	}
}

func (s *reviewService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// CreateReview stores the review and recomputes the target's rating in the same
// transaction. The target row stays locked until commit, so concurrent reviews
// of one target are applied one after another.
func (s *reviewService) CreateReview(ctx context.Context, principal entity.Principal, input *usecase.CreateReviewInput) (*entity.Review, error) {
	if err := policy.Authorize(principal, policy.ActionCreateReview); err != nil {
		return nil, err
	}
	if !input.TargetType.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("target_type must be shop or delivery_agent")
	}

	review := &entity.Review{
		ID:         uuid.New(),
		ReviewerID: principal.UserID,
		TargetID:   input.TargetID,
		TargetType: input.TargetType,
		Rating:     input.Rating,
		Comment:    input.Comment,
		CreatedAt:  s.now().UTC(),
	}
	target := entity.ReviewTarget{ID: input.TargetID, Type: input.TargetType}

	var summary entity.RatingSummary
	err := s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		if err := lockTarget(ctx, factory, target); err != nil {
			return err
		}

		if err := factory.NewReviewRepository().Create(ctx, review); err != nil {
			return errors.Wrap(err, "failed to create review")
		}

		var err error
		summary, err = recalculate(ctx, factory, target)

		return err
	})
	if err != nil {
		return nil, err
	}

	s.log(ctx).Info("Review created",
		slog.String("targetID", target.ID.String()),
		slog.String("targetType", string(target.Type)),
		slog.Float64("rating", summary.Average),
		slog.Int("totalReviews", summary.Count),
	)

	return review, nil
}

// ListReviews returns every review of the target.
func (s *reviewService) ListReviews(ctx context.Context, targetID uuid.UUID) ([]*entity.Review, error) {
	reviews, err := s.reviewRepo.ListByTarget(ctx, targetID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reviews")
	}

	return reviews, nil
}

// RecalculateRating rewrites one target's aggregate under the same lock CreateReview takes.
func (s *reviewService) RecalculateRating(ctx context.Context, target entity.ReviewTarget) (entity.RatingSummary, error) {
	var summary entity.RatingSummary
	err := s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		if err := lockTarget(ctx, factory, target); err != nil {
			return err
		}

		var err error
		summary, err = recalculate(ctx, factory, target)

		return err
	})
	if err != nil {
		return entity.RatingSummary{}, err
	}

	return summary, nil
}

// ReconcileRatings recalculates every reviewed target. Targets that no longer
// exist are skipped.
func (s *reviewService) ReconcileRatings(ctx context.Context) (int, error) {
	targets, err := s.reviewRepo.ListTargets(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "failed to list review targets")
	}

	updated := 0
	for _, target := range targets {
		if err := ctx.Err(); err != nil {
			return updated, errors.WithStack(err)
		}

		if _, err := s.RecalculateRating(ctx, target); err != nil {
			if errors.Is(err, domainerrors.ErrReviewTargetNotFound) {
				s.log(ctx).Warn("Skipping rating of missing target",
					slog.String("targetID", target.ID.String()),
					slog.String("targetType", string(target.Type)),
				)

				continue
			}

			return updated, errors.Wrapf(err, "failed to recalculate rating of %s", target.ID)
		}
		updated++
	}

	return updated, nil
}

// lockTarget takes a row lock on the rated shop or delivery agent.
func lockTarget(ctx context.Context, factory repository.RepositoryFactory, target entity.ReviewTarget) error {
	switch target.Type {
	case entity.ReviewTargetShop:
		_, err := factory.NewShopRepository().FindByIDForUpdate(ctx, target.ID)
		if err != nil {
			if errors.Is(err, repository.ErrShopNotFound) {
				return domainerrors.ErrReviewTargetNotFound
			}

			return errors.Wrap(err, "failed to lock shop")
		}
	case entity.ReviewTargetDeliveryAgent:
		user, err := factory.NewUserRepository().FindByIDForUpdate(ctx, target.ID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrReviewTargetNotFound
			}

			return errors.Wrap(err, "failed to lock delivery agent")
		}
		if user.Role != entity.RoleDeliveryAgent {
			return domainerrors.ErrReviewTargetNotFound
		}
	default:
		return domainerrors.ErrValidationFailed.WrapMessage("unknown review target type")
	}

	return nil
}

// recalculate averages all reviews of the target and writes the aggregate back.
func recalculate(ctx context.Context, factory repository.RepositoryFactory, target entity.ReviewTarget) (entity.RatingSummary, error) {
	reviews, err := factory.NewReviewRepository().ListByTarget(ctx, target.ID)
	if err != nil {
		return entity.RatingSummary{}, errors.Wrap(err, "failed to list target reviews")
	}

	summary := entity.Summarize(reviews)

	switch target.Type {
	case entity.ReviewTargetShop:
		err = factory.NewShopRepository().UpdateRating(ctx, target.ID, summary)
	default:
		err = factory.NewUserRepository().UpdateRating(ctx, target.ID, summary)
	}
	if err != nil {
		return entity.RatingSummary{}, errors.Wrap(err, "failed to update rating")
	}

	return summary, nil
}
