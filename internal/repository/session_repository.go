package repository

import (
	"context"
	"errors"
	"time"

	"github.com/fadilmartias/job-board/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SessionRepository persists sessions in the sessions table and satisfies
// fiber.Storage so it can back the fiber session middleware.
type SessionRepository struct {
	db  *gorm.DB
	now func() time.Time
}

func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{db: db, now: func() time.Time { return time.Now().UTC() }}
}

// Get returns nil, nil for unknown or expired keys.
func (r *SessionRepository) Get(key string) ([]byte, error) {
	if key == "" {
		return nil, nil
	}
	var s model.Session
	err := r.db.First(&s, "id = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if s.ExpiresAt != nil && !s.ExpiresAt.After(r.now()) {
		return nil, nil
	}
	return s.Data, nil
}

func (r *SessionRepository) Set(key string, val []byte, exp time.Duration) error {
	if key == "" || len(val) == 0 {
		return nil
	}
	s := model.Session{ID: key, Data: val}
	if exp > 0 {
		expiresAt := r.now().Add(exp)
		s.ExpiresAt = &expiresAt
	}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"data", "expires_at", "updated_at"}),
	}).Create(&s).Error
}

func (r *SessionRepository) Delete(key string) error {
	if key == "" {
		return nil
	}
	return r.db.Delete(&model.Session{}, "id = ?", key).Error
}

func (r *SessionRepository) Reset() error {
	return r.db.Where("1 = 1").Delete(&model.Session{}).Error
}

// Close is a no-op; the connection pool is owned by the caller.
func (r *SessionRepository) Close() error {
	return nil
}

// DeleteExpired removes rows whose expiry has passed and reports how many.
func (r *SessionRepository) DeleteExpired(ctx context.Context) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("expires_at IS NOT NULL AND expires_at <= ?", r.now()).
		Delete(&model.Session{})
	return res.RowsAffected, res.Error
}
