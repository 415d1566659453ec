package dto

import (
	"github.com/fadilmartias/job-board/internal/model"
	"github.com/fadilmartias/job-board/internal/repository"
)

const (
	UnknownJobTitle   = "Unknown Position"
	UnknownJobCompany = "Unknown Company"
)

type CreateApplicationRequest struct {
	JobID        string  `json:"jobId" validate:"required,uuid"`
	FirstName    string  `json:"firstName" validate:"required"`
	LastName     string  `json:"lastName" validate:"required"`
	Email        string  `json:"email" validate:"required,email"`
	Phone        string  `json:"phone" validate:"required"`
	LinkedIn     *string `json:"linkedin"`
	Portfolio    *string `json:"portfolio"`
	ResumeURL    *string `json:"resumeUrl"`
	CoverLetter  string  `json:"coverLetter" validate:"required"`
	Availability *string `json:"availability"`
	Salary       *string `json:"salary"`
}

type UpdateApplicationStatusRequest struct {
	Status string `json:"status" validate:"required,appstatus"`
}

// ApplicationDTO is an application as the admin panel sees it, with the
// referenced job resolved for display.
type ApplicationDTO struct {
	model.Application
	JobTitle   string `json:"jobTitle"`
	JobCompany string `json:"jobCompany"`
}

func NewApplicationDTO(a *repository.ApplicationWithJob) ApplicationDTO {
	out := ApplicationDTO{
		Application: a.Application,
		JobTitle:    UnknownJobTitle,
		JobCompany:  UnknownJobCompany,
	}
	if a.JobTitle != nil {
		out.JobTitle = *a.JobTitle
	}
	if a.JobCompany != nil {
		out.JobCompany = *a.JobCompany
	}
	return out
}
