package jobs

import (
	"context"
	"log/slog"

	"marketplace/config"
	"marketplace/internal/domain/lifecycle"
	"marketplace/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// JobManagerParams holds dependencies for JobManager, injected by Fx.
type JobManagerParams struct {
	fx.In

	Lc       fx.Lifecycle
	Config   *config.Config
	ReviewUC usecase.ReviewUsecase
	Logger   *slog.Logger
}

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	ratingReconcileJob *RatingReconcileJob
	logger             *slog.Logger
}

// NewJobManager creates the enabled jobs and ties them to the application lifecycle.
func NewJobManager(params JobManagerParams) *JobManager {
	jm := &JobManager{logger: params.Logger}

	if jobCfg := params.Config.Jobs.RatingReconcile; jobCfg != nil && jobCfg.Enabled {
		jm.ratingReconcileJob = NewRatingReconcileJob(params.ReviewUC, jobCfg.Schedule, params.Logger)
	}

	params.Lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			return jm.StartAll()
		},
		OnStop: func(ctx context.Context) error {
			jm.StopAll(ctx)

			return nil
		},
	})

	return jm
}

// StartAll starts all enabled jobs.
func (jm *JobManager) StartAll() error {
	if jm.ratingReconcileJob == nil {
		jm.logger.Info("No scheduled jobs enabled")

		return nil
	}

	if err := jm.ratingReconcileJob.Start(); err != nil {
		return errors.Wrap(err, "failed to start rating reconcile job")
	}

	return nil
}

// StopAll stops all jobs, waiting at most lifecycle.DefaultTimeout.
func (jm *JobManager) StopAll(ctx context.Context) {
	if jm.ratingReconcileJob == nil {
		return
	}

	stopCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	jm.ratingReconcileJob.Stop(stopCtx)
}
