package jobs

import (
	"context"
	"log/slog"
	"time"

	"marketplace/internal/usecase"

	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
)

// RatingReconcileJob periodically recalculates every rating aggregate.
type RatingReconcileJob struct {
	reviewUC usecase.ReviewUsecase
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewRatingReconcileJob creates the job. Overlapping runs are skipped.
func NewRatingReconcileJob(reviewUC usecase.ReviewUsecase, schedule string, logger *slog.Logger) *RatingReconcileJob {
	return &RatingReconcileJob{
		reviewUC: reviewUC,
		schedule: schedule,
		cron: cron.New(
			cron.WithSeconds(),
			cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
		),
		logger: logger.With("component", "rating_reconcile_job"),
	}
}

// Start schedules the job and starts the cron runner.
func (j *RatingReconcileJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, j.runOnce); err != nil {
		return errors.Wrapf(err, "invalid rating reconcile schedule %q", j.schedule)
	}

	j.cron.Start()
	j.logger.Info("Rating reconcile job started", slog.String("schedule", j.schedule))

	return nil
}

// Stop stops scheduling and waits for a running reconciliation to finish.
func (j *RatingReconcileJob) Stop(ctx context.Context) {
	select {
	case <-j.cron.Stop().Done():
	case <-ctx.Done():
		j.logger.Warn("Rating reconcile job did not finish before shutdown")
	}
	j.logger.Info("Rating reconcile job stopped")
}

func (j *RatingReconcileJob) runOnce() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if err := j.Run(ctx); err != nil {
		j.logger.ErrorContext(ctx, "Rating reconcile job failed", slog.Any("error", err))
	}
}

// Run performs one reconciliation pass.
func (j *RatingReconcileJob) Run(ctx context.Context) error {
	start := time.Now()

	updated, err := j.reviewUC.ReconcileRatings(ctx)
	if err != nil {
		return errors.Wrapf(err, "reconciled %d targets before failing", updated)
	}

	j.logger.InfoContext(ctx, "Ratings reconciled",
		slog.Int("targets", updated),
		slog.Duration("elapsed", time.Since(start)),
	)

	return nil
}
