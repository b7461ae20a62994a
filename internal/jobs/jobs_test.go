package jobs

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"marketplace/config"
	mockUC "marketplace/internal/mocks/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRatingReconcileJob_Run(t *testing.T) {
	reviewUC := mockUC.NewMockReviewUsecase(t)
	reviewUC.On("ReconcileRatings", mock.Anything).Return(3, nil).Once()

	job := NewRatingReconcileJob(reviewUC, "0 * * * * *", newDiscardLogger())

	require.NoError(t, job.Run(context.Background()))
}

func TestRatingReconcileJob_RunFailure(t *testing.T) {
	reviewUC := mockUC.NewMockReviewUsecase(t)
	reviewUC.On("ReconcileRatings", mock.Anything).Return(1, errors.New("db down")).Once()

	job := NewRatingReconcileJob(reviewUC, "0 * * * * *", newDiscardLogger())

	err := job.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db down")
}

func TestRatingReconcileJob_InvalidSchedule(t *testing.T) {
	job := NewRatingReconcileJob(mockUC.NewMockReviewUsecase(t), "every minute", newDiscardLogger())

	assert.Error(t, job.Start())
}

func TestJobManager_Lifecycle(t *testing.T) {
	cfg := &config.Config{}
	cfg.Jobs.RatingReconcile = &config.JobConfig{Enabled: true, Schedule: "0 0 0 1 1 *"}

	lc := fxtest.NewLifecycle(t)
	jm := NewJobManager(JobManagerParams{
		Lc:       lc,
		Config:   cfg,
		ReviewUC: mockUC.NewMockReviewUsecase(t),
		Logger:   newDiscardLogger(),
	})
	require.NotNil(t, jm.ratingReconcileJob)

	lc.RequireStart()
	lc.RequireStop()
}

func TestJobManager_Disabled(t *testing.T) {
	cfg := &config.Config{}
	cfg.Jobs.RatingReconcile = &config.JobConfig{Enabled: false, Schedule: "bad"}

	lc := fxtest.NewLifecycle(t)
	jm := NewJobManager(JobManagerParams{
		Lc:       lc,
		Config:   cfg,
		ReviewUC: mockUC.NewMockReviewUsecase(t),
		Logger:   newDiscardLogger(),
	})

	assert.Nil(t, jm.ratingReconcileJob)
	lc.RequireStart()
	lc.RequireStop()
}
