package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/fadilmartias/job-board/internal/dto"
	"github.com/fadilmartias/job-board/internal/model"
	"github.com/fadilmartias/job-board/internal/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ApplicationUsecase struct {
	applicationRepo *repository.ApplicationRepository
}

func NewApplicationUsecase(applicationRepo *repository.ApplicationRepository) *ApplicationUsecase {
	return &ApplicationUsecase{applicationRepo: applicationRepo}
}

// Submit stores a public application as pending. The referenced job is not
// checked: submissions stay valid even if the posting is later removed.
func (uc *ApplicationUsecase) Submit(ctx context.Context, req dto.CreateApplicationRequest) (*model.Application, error) {
	jobID, err := uuid.Parse(req.JobID)
	if err != nil {
		return nil, fmt.Errorf("parse job id: %w", err)
	}
	app := &model.Application{
		JobID:        jobID,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Phone:        req.Phone,
		LinkedIn:     req.LinkedIn,
		Portfolio:    req.Portfolio,
		ResumeURL:    req.ResumeURL,
		CoverLetter:  req.CoverLetter,
		Availability: req.Availability,
		Salary:       req.Salary,
		Status:       model.ApplicationStatusPending,
	}
	if err := uc.applicationRepo.CreateApplication(ctx, app); err != nil {
		return nil, fmt.Errorf("create application: %w", err)
	}
	return app, nil
}

func (uc *ApplicationUsecase) List(ctx context.Context) ([]dto.ApplicationDTO, error) {
	rows, err := uc.applicationRepo.GetApplications(ctx)
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}
	out := make([]dto.ApplicationDTO, 0, len(rows))
	for i := range rows {
		out = append(out, dto.NewApplicationDTO(&rows[i]))
	}
	return out, nil
}

func (uc *ApplicationUsecase) Get(ctx context.Context, id uuid.UUID) (*dto.ApplicationDTO, error) {
	row, err := uc.applicationRepo.FindApplicationByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrApplicationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find application: %w", err)
	}
	out := dto.NewApplicationDTO(row)
	return &out, nil
}

// UpdateStatus sets any of the three statuses regardless of the current
// one; there is no transition graph.
func (uc *ApplicationUsecase) UpdateStatus(ctx context.Context, id uuid.UUID, status model.ApplicationStatus) (*model.Application, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("invalid status %q", status)
	}
	app, err := uc.applicationRepo.UpdateApplicationStatus(ctx, id, status)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrApplicationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update application status: %w", err)
	}
	return app, nil
}
