package usecase

import (
	"context"
	"testing"

	"github.com/fadilmartias/job-board/internal/dto"
	"github.com/fadilmartias/job-board/internal/model"
	"github.com/fadilmartias/job-board/internal/repository"
	"github.com/fadilmartias/job-board/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func applicationRequest(jobID uuid.UUID) dto.CreateApplicationRequest {
	return dto.CreateApplicationRequest{
		JobID:       jobID.String(),
		FirstName:   "Ada",
		LastName:    "Lovelace",
		Email:       "ada@example.com",
		Phone:       "555-0100",
		CoverLetter: "I would like to join.",
	}
}

func TestApplicationSubmitAndResolveJob(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	jobs := NewJobUsecase(repository.NewJobRepository(db))
	apps := NewApplicationUsecase(repository.NewApplicationRepository(db))

	job, err := jobs.Create(ctx, jobRequest())
	require.NoError(t, err)

	app, err := apps.Submit(ctx, applicationRequest(job.ID))
	require.NoError(t, err)
	assert.Equal(t, model.ApplicationStatusPending, app.Status)

	orphan, err := apps.Submit(ctx, applicationRequest(uuid.New()))
	require.NoError(t, err)

	got, err := apps.Get(ctx, app.ID)
	require.NoError(t, err)
	assert.Equal(t, "Backend Engineer", got.JobTitle)
	assert.Equal(t, "Acme", got.JobCompany)

	gotOrphan, err := apps.Get(ctx, orphan.ID)
	require.NoError(t, err)
	assert.Equal(t, dto.UnknownJobTitle, gotOrphan.JobTitle)
	assert.Equal(t, dto.UnknownJobCompany, gotOrphan.JobCompany)

	list, err := apps.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	_, err = apps.Get(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrApplicationNotFound)

	_, err = apps.Submit(ctx, dto.CreateApplicationRequest{JobID: "nope"})
	assert.Error(t, err)
}

func TestApplicationUpdateStatusAnyToAny(t *testing.T) {
	ctx := context.Background()
	apps := NewApplicationUsecase(repository.NewApplicationRepository(testutil.NewDB(t)))

	app, err := apps.Submit(ctx, applicationRequest(uuid.New()))
	require.NoError(t, err)

	for _, s := range []model.ApplicationStatus{
		model.ApplicationStatusRejected,
		model.ApplicationStatusApproved,
		model.ApplicationStatusPending,
		model.ApplicationStatusApproved,
	} {
		updated, err := apps.UpdateStatus(ctx, app.ID, s)
		require.NoError(t, err)
		assert.Equal(t, s, updated.Status)
	}

	_, err = apps.UpdateStatus(ctx, app.ID, "archived")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrApplicationNotFound)

	got, err := apps.Get(ctx, app.ID)
	require.NoError(t, err)
	assert.Equal(t, model.ApplicationStatusApproved, got.Status)

	_, err = apps.UpdateStatus(ctx, uuid.New(), model.ApplicationStatusApproved)
	assert.ErrorIs(t, err, ErrApplicationNotFound)
}
