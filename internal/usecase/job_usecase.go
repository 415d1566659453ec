package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/fadilmartias/job-board/internal/dto"
	"github.com/fadilmartias/job-board/internal/model"
	"github.com/fadilmartias/job-board/internal/repository"
	"github.com/fadilmartias/job-board/internal/util"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type JobUsecase struct {
	jobRepo *repository.JobRepository
}

func NewJobUsecase(jobRepo *repository.JobRepository) *JobUsecase {
	return &JobUsecase{jobRepo: jobRepo}
}

func normalizeSkills(s *dto.Skills) datatypes.JSONSlice[string] {
	if s == nil {
		return datatypes.JSONSlice[string]{}
	}
	if s.FromString {
		if len(s.Values) == 0 {
			return datatypes.JSONSlice[string]{}
		}
		return util.SplitSkills(s.Values[0])
	}
	if s.Values == nil {
		return datatypes.JSONSlice[string]{}
	}
	return s.Values
}

func (uc *JobUsecase) Create(ctx context.Context, req dto.CreateJobRequest) (*model.Job, error) {
	job := &model.Job{
		Title:       req.Title,
		Company:     req.Company,
		Location:    req.Location,
		Type:        model.JobType(req.Type),
		Description: req.Description,
		Salary:      req.Salary,
		Skills:      normalizeSkills(req.Skills),
		IsActive:    true,
	}
	if req.IsActive != nil {
		job.IsActive = *req.IsActive
	}
	if err := uc.jobRepo.CreateJob(ctx, job); err != nil {
		return nil, fmt.Errorf("create job: %w", err)
	}
	return job, nil
}

// ListActive is the public listing: inactive jobs never appear.
func (uc *JobUsecase) ListActive(ctx context.Context, q dto.JobListQuery) ([]model.Job, error) {
	return uc.jobRepo.GetJobs(ctx, repository.JobFilter{
		ActiveOnly: true,
		Search:     q.Search,
		Location:   q.Location,
		Type:       model.JobType(q.Type),
	})
}

func (uc *JobUsecase) ListAll(ctx context.Context) ([]model.Job, error) {
	return uc.jobRepo.GetJobs(ctx, repository.JobFilter{})
}

func (uc *JobUsecase) Get(ctx context.Context, id uuid.UUID) (*model.Job, error) {
	job, err := uc.jobRepo.FindJobByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrJobNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find job: %w", err)
	}
	return job, nil
}

// GetActive hides inactive jobs behind the same not-found as missing ones.
func (uc *JobUsecase) GetActive(ctx context.Context, id uuid.UUID) (*model.Job, error) {
	job, err := uc.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !job.IsActive {
		return nil, ErrJobNotFound
	}
	return job, nil
}

func (uc *JobUsecase) Update(ctx context.Context, id uuid.UUID, req dto.UpdateJobRequest) (*model.Job, error) {
	fields := map[string]any{}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Company != nil {
		fields["company"] = *req.Company
	}
	if req.Location != nil {
		fields["location"] = *req.Location
	}
	if req.Type != nil {
		fields["type"] = model.JobType(*req.Type)
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Salary != nil {
		fields["salary"] = *req.Salary
	}
	if req.Skills != nil {
		fields["skills"] = normalizeSkills(req.Skills)
	}
	if req.IsActive != nil {
		fields["is_active"] = *req.IsActive
	}

	job, err := uc.jobRepo.UpdateJob(ctx, id, fields)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrJobNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update job: %w", err)
	}
	return job, nil
}

func (uc *JobUsecase) ToggleActive(ctx context.Context, id uuid.UUID) (*model.Job, error) {
	job, err := uc.jobRepo.ToggleJobActive(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrJobNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("toggle job: %w", err)
	}
	return job, nil
}

// Delete hard-deletes the job. Applications that reference it are kept.
func (uc *JobUsecase) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	ok, err := uc.jobRepo.DeleteJob(ctx, id)
	if err != nil {
		return false, fmt.Errorf("delete job: %w", err)
	}
	return ok, nil
}
