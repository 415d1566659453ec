package repository

import (
	"context"
	"time"

	"github.com/fadilmartias/job-board/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ApplicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{db}
}

// ApplicationWithJob is an application joined to the job it references.
// JobTitle and JobCompany are nil when that job no longer exists.
type ApplicationWithJob struct {
	model.Application
	JobTitle   *string
	JobCompany *string
}

func (r *ApplicationRepository) CreateApplication(ctx context.Context, app *model.Application) error {
	return r.db.WithContext(ctx).Create(app).Error
}

func (r *ApplicationRepository) withJob(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&model.Application{}).
		Select("applications.*, jobs.title AS job_title, jobs.company AS job_company").
		Joins("LEFT JOIN jobs ON jobs.id = applications.job_id")
}

func (r *ApplicationRepository) GetApplications(ctx context.Context) ([]ApplicationWithJob, error) {
	apps := []ApplicationWithJob{}
	err := r.withJob(ctx).Order("applications.created_at DESC").Scan(&apps).Error
	return apps, err
}

func (r *ApplicationRepository) FindApplicationByID(ctx context.Context, id uuid.UUID) (*ApplicationWithJob, error) {
	apps := []ApplicationWithJob{}
	err := r.withJob(ctx).Where("applications.id = ?", id).Limit(1).Scan(&apps).Error
	if err != nil {
		return nil, err
	}
	if len(apps) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &apps[0], nil
}

func (r *ApplicationRepository) UpdateApplicationStatus(ctx context.Context, id uuid.UUID, status model.ApplicationStatus) (*model.Application, error) {
	var a model.Application
	res := r.db.WithContext(ctx).
		Model(&a).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &a, nil
}

// CountApplications counts applications, optionally restricted to a status
// and to those created at or after since.
func (r *ApplicationRepository) CountApplications(ctx context.Context, status model.ApplicationStatus, since time.Time) (int64, error) {
	var n int64
	q := r.db.WithContext(ctx).Model(&model.Application{})
	if status != "" {
		q = q.Where("status = ?", status)
	}
	if !since.IsZero() {
		q = q.Where("created_at >= ?", since)
	}
	err := q.Count(&n).Error
	return n, err
}
