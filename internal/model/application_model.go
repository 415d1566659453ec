package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ApplicationStatus string

const (
	ApplicationStatusPending  ApplicationStatus = "pending"
	ApplicationStatusApproved ApplicationStatus = "approved"
	ApplicationStatusRejected ApplicationStatus = "rejected"
)

func (s ApplicationStatus) Valid() bool {
	switch s {
	case ApplicationStatusPending, ApplicationStatusApproved, ApplicationStatusRejected:
		return true
	}
	return false
}

// Application is a candidate submission. JobID is a logical reference only;
// the job it points at may have been deleted.
type Application struct {
	ID           uuid.UUID         `gorm:"type:uuid;primaryKey" json:"id"`
	JobID        uuid.UUID         `gorm:"type:uuid;not null;index" json:"jobId"`
	FirstName    string            `gorm:"type:varchar(255);not null" json:"firstName"`
	LastName     string            `gorm:"type:varchar(255);not null" json:"lastName"`
	Email        string            `gorm:"type:varchar(255);not null" json:"email"`
	Phone        string            `gorm:"type:varchar(50);not null" json:"phone"`
	LinkedIn     *string           `gorm:"column:linkedin;type:varchar(500)" json:"linkedin,omitempty"`
	Portfolio    *string           `gorm:"type:varchar(500)" json:"portfolio,omitempty"`
	ResumeURL    *string           `gorm:"column:resume_url;type:varchar(500)" json:"resumeUrl,omitempty"`
	CoverLetter  string            `gorm:"type:text;not null" json:"coverLetter"`
	Availability *string           `gorm:"type:varchar(255)" json:"availability,omitempty"`
	Salary       *string           `gorm:"type:varchar(255)" json:"salary,omitempty"`
	Status       ApplicationStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	CreatedAt    time.Time         `gorm:"index" json:"createdAt"`
	UpdatedAt    time.Time         `json:"updatedAt"`
}

func (a *Application) TableName() string {
	return "applications"
}

func (a *Application) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.Status == "" {
		a.Status = ApplicationStatusPending
	}
	return nil
}
