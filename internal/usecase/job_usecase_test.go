package usecase

import (
	"context"
	"testing"

	"github.com/fadilmartias/job-board/internal/dto"
	"github.com/fadilmartias/job-board/internal/repository"
	"github.com/fadilmartias/job-board/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newJobUsecase(t *testing.T) *JobUsecase {
	return NewJobUsecase(repository.NewJobRepository(testutil.NewDB(t)))
}

func ptr[T any](v T) *T {
	return &v
}

func jobRequest() dto.CreateJobRequest {
	return dto.CreateJobRequest{
		Title:       "Backend Engineer",
		Company:     "Acme",
		Location:    "Remote",
		Type:        "full-time",
		Description: "Build APIs",
	}
}

func TestNormalizeSkills(t *testing.T) {
	assert.Equal(t, []string{}, []string(normalizeSkills(nil)))
	assert.Equal(t, []string{"React", "Node.js"},
		[]string(normalizeSkills(&dto.Skills{Values: []string{"React, Node.js, "}, FromString: true})))
	assert.Equal(t, []string{"Go", "SQL"},
		[]string(normalizeSkills(&dto.Skills{Values: []string{"Go", "SQL"}})))
	assert.Equal(t, []string{}, []string(normalizeSkills(&dto.Skills{})))
}

func TestJobCreateDefaults(t *testing.T) {
	ctx := context.Background()
	uc := newJobUsecase(t)

	job, err := uc.Create(ctx, jobRequest())
	require.NoError(t, err)
	assert.True(t, job.IsActive)
	assert.Empty(t, job.Skills)
	assert.NotNil(t, job.Skills)
	assert.Nil(t, job.Salary)

	req := jobRequest()
	req.IsActive = ptr(false)
	req.Salary = ptr("$100k")
	req.Skills = &dto.Skills{Values: []string{"React, Node.js, "}, FromString: true}
	hidden, err := uc.Create(ctx, req)
	require.NoError(t, err)
	assert.False(t, hidden.IsActive)
	assert.Equal(t, "$100k", *hidden.Salary)
	assert.Equal(t, []string{"React", "Node.js"}, []string(hidden.Skills))

	stored, err := uc.Get(ctx, hidden.ID)
	require.NoError(t, err)
	assert.False(t, stored.IsActive)
}

func TestJobVisibility(t *testing.T) {
	ctx := context.Background()
	uc := newJobUsecase(t)

	job, err := uc.Create(ctx, jobRequest())
	require.NoError(t, err)

	public, err := uc.ListActive(ctx, dto.JobListQuery{})
	require.NoError(t, err)
	require.Len(t, public, 1)

	_, err = uc.GetActive(ctx, job.ID)
	require.NoError(t, err)

	toggled, err := uc.ToggleActive(ctx, job.ID)
	require.NoError(t, err)
	assert.False(t, toggled.IsActive)

	public, err = uc.ListActive(ctx, dto.JobListQuery{})
	require.NoError(t, err)
	assert.Empty(t, public)

	all, err := uc.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.False(t, all[0].IsActive)

	_, err = uc.GetActive(ctx, job.ID)
	assert.ErrorIs(t, err, ErrJobNotFound)
	_, err = uc.Get(ctx, job.ID)
	assert.NoError(t, err)

	_, err = uc.ToggleActive(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrJobNotFound)
}

func TestJobUpdatePartial(t *testing.T) {
	ctx := context.Background()
	uc := newJobUsecase(t)

	job, err := uc.Create(ctx, jobRequest())
	require.NoError(t, err)

	updated, err := uc.Update(ctx, job.ID, dto.UpdateJobRequest{
		Location: ptr("Berlin"),
		Skills:   &dto.Skills{Values: []string{"Go"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "Berlin", updated.Location)
	assert.Equal(t, "Backend Engineer", updated.Title)
	assert.Equal(t, []string{"Go"}, []string(updated.Skills))
	assert.True(t, updated.IsActive)

	_, err = uc.Update(ctx, uuid.New(), dto.UpdateJobRequest{Title: ptr("x")})
	assert.ErrorIs(t, err, ErrJobNotFound)
}

func TestJobDelete(t *testing.T) {
	ctx := context.Background()
	uc := newJobUsecase(t)

	job, err := uc.Create(ctx, jobRequest())
	require.NoError(t, err)

	ok, err := uc.Delete(ctx, job.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = uc.Delete(ctx, job.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = uc.Get(ctx, job.ID)
	assert.ErrorIs(t, err, ErrJobNotFound)
}
