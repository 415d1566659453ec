package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/fadilmartias/job-board/internal/dto"
	"github.com/fadilmartias/job-board/internal/model"
	"github.com/fadilmartias/job-board/internal/repository"
)

type StatsUsecase struct {
	jobRepo         *repository.JobRepository
	applicationRepo *repository.ApplicationRepository
	now             func() time.Time
}

func NewStatsUsecase(jobRepo *repository.JobRepository, applicationRepo *repository.ApplicationRepository) *StatsUsecase {
	return &StatsUsecase{jobRepo: jobRepo, applicationRepo: applicationRepo, now: time.Now}
}

func startOfMonth(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

func (uc *StatsUsecase) Dashboard(ctx context.Context) (*dto.DashboardStatsDTO, error) {
	var (
		stats dto.DashboardStatsDTO
		err   error
	)
	if stats.ActiveJobs, err = uc.jobRepo.CountJobs(ctx, true); err != nil {
		return nil, fmt.Errorf("count active jobs: %w", err)
	}
	if stats.TotalJobs, err = uc.jobRepo.CountJobs(ctx, false); err != nil {
		return nil, fmt.Errorf("count jobs: %w", err)
	}
	if stats.TotalApplications, err = uc.applicationRepo.CountApplications(ctx, "", time.Time{}); err != nil {
		return nil, fmt.Errorf("count applications: %w", err)
	}
	if stats.PendingReview, err = uc.applicationRepo.CountApplications(ctx, model.ApplicationStatusPending, time.Time{}); err != nil {
		return nil, fmt.Errorf("count pending applications: %w", err)
	}
	if stats.ThisMonth, err = uc.applicationRepo.CountApplications(ctx, "", startOfMonth(uc.now())); err != nil {
		return nil, fmt.Errorf("count applications this month: %w", err)
	}
	return &stats, nil
}
