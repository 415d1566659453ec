package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type JobType string

const (
	JobTypeFullTime   JobType = "full-time"
	JobTypePartTime   JobType = "part-time"
	JobTypeContract   JobType = "contract"
	JobTypeInternship JobType = "internship"
)

func (t JobType) Valid() bool {
	switch t {
	case JobTypeFullTime, JobTypePartTime, JobTypeContract, JobTypeInternship:
		return true
	}
	return false
}

type Job struct {
	ID          uuid.UUID                   `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string                      `gorm:"type:varchar(255);not null" json:"title"`
	Company     string                      `gorm:"type:varchar(255);not null" json:"company"`
	Location    string                      `gorm:"type:varchar(255);not null" json:"location"`
	Type        JobType                     `gorm:"type:varchar(50);not null;index" json:"type"`
	Description string                      `gorm:"type:text;not null" json:"description"`
	Salary      *string                     `gorm:"type:varchar(255)" json:"salary,omitempty"`
	Skills      datatypes.JSONSlice[string] `json:"skills"`
	IsActive    bool                        `gorm:"not null;index" json:"isActive"`
	CreatedAt   time.Time                   `json:"createdAt"`
	UpdatedAt   time.Time                   `json:"updatedAt"`
}

func (j *Job) TableName() string {
	return "jobs"
}

func (j *Job) BeforeCreate(tx *gorm.DB) error {
	if j.ID == uuid.Nil {
		j.ID = uuid.New()
	}
	if j.Skills == nil {
		j.Skills = datatypes.JSONSlice[string]{}
	}
	return nil
}
