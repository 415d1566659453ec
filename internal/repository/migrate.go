package repository

import (
	"github.com/fadilmartias/job-board/internal/model"
	"gorm.io/gorm"
)

// AutoMigrate creates or updates every table the API reads and writes.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Job{},
		&model.Application{},
		&model.Admin{},
		&model.Session{},
	)
}
