package repository

import (
	"context"
	"strings"

	"github.com/fadilmartias/job-board/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type JobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) *JobRepository {
	return &JobRepository{db}
}

// JobFilter narrows a listing. Zero values match everything.
type JobFilter struct {
	ActiveOnly bool
	Search     string
	Location   string
	Type       model.JobType
}

func (r *JobRepository) CreateJob(ctx context.Context, job *model.Job) error {
	return r.db.WithContext(ctx).Create(job).Error
}

func (r *JobRepository) FindJobByID(ctx context.Context, id uuid.UUID) (*model.Job, error) {
	var j model.Job
	err := r.db.WithContext(ctx).First(&j, "id = ?", id).Error
	return &j, err
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

// containsPattern builds a LIKE pattern matching s literally anywhere.
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}

func (r *JobRepository) GetJobs(ctx context.Context, filter JobFilter) ([]model.Job, error) {
	jobs := []model.Job{}
	q := r.db.WithContext(ctx).Model(&model.Job{})
	if filter.ActiveOnly {
		q = q.Where("is_active = ?", true)
	}
	if s := strings.TrimSpace(filter.Search); s != "" {
		q = q.Where(`LOWER(title) LIKE ? ESCAPE '\'`, containsPattern(strings.ToLower(s)))
	}
	if l := strings.TrimSpace(filter.Location); l != "" {
		q = q.Where(`location LIKE ? ESCAPE '\'`, containsPattern(l))
	}
	if filter.Type != "" {
		q = q.Where("type = ?", filter.Type)
	}
	err := q.Order("created_at DESC").Find(&jobs).Error
	return jobs, err
}

// UpdateJob applies a column patch and returns the row as written.
// An empty patch only checks existence.
func (r *JobRepository) UpdateJob(ctx context.Context, id uuid.UUID, fields map[string]any) (*model.Job, error) {
	if len(fields) == 0 {
		return r.FindJobByID(ctx, id)
	}
	var j model.Job
	res := r.db.WithContext(ctx).
		Model(&j).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		Updates(fields)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &j, nil
}

// ToggleJobActive flips is_active in one statement so concurrent toggles
// never lose a flip.
func (r *JobRepository) ToggleJobActive(ctx context.Context, id uuid.UUID) (*model.Job, error) {
	var j model.Job
	res := r.db.WithContext(ctx).
		Model(&j).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		Update("is_active", gorm.Expr("NOT is_active"))
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &j, nil
}

func (r *JobRepository) DeleteJob(ctx context.Context, id uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&model.Job{}, "id = ?", id)
	return res.RowsAffected > 0, res.Error
}

func (r *JobRepository) CountJobs(ctx context.Context, activeOnly bool) (int64, error) {
	var n int64
	q := r.db.WithContext(ctx).Model(&model.Job{})
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	err := q.Count(&n).Error
	return n, err
}
