package util

import (
	"errors"
	"reflect"
	"strings"

	"github.com/fadilmartias/job-board/internal/model"
	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			name = strings.SplitN(fld.Tag.Get("query"), ",", 2)[0]
		}
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("jobtype", func(fl validator.FieldLevel) bool {
		return model.JobType(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("appstatus", func(fl validator.FieldLevel) bool {
		return model.ApplicationStatus(fl.Field().String()).Valid()
	})
	return v
}

// fieldLabels maps json field names to the label used in messages.
var fieldLabels = map[string]string{
	"username":    "Username",
	"password":    "Password",
	"email":       "Email",
	"title":       "Title",
	"company":     "Company",
	"location":    "Location",
	"type":        "Type",
	"description": "Description",
	"jobId":       "Job ID",
	"firstName":   "First name",
	"lastName":    "Last name",
	"phone":       "Phone",
	"coverLetter": "Cover letter",
	"status":      "Status",
}

// ValidateStruct checks payload against its validate tags and returns the
// first failure as a *FormError, or nil.
func ValidateStruct[T any](payload T) error {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return NewFormError(err.Error(), nil)
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = messageFor(fe)
	}
	return NewFormError(messageFor(verrs[0]), fields)
}

func messageFor(fe validator.FieldError) string {
	label, ok := fieldLabels[fe.Field()]
	if !ok {
		label = fe.Field()
	}
	switch fe.Tag() {
	case "required":
		return label + " is required"
	case "min":
		if fe.Param() == "1" {
			return label + " is required"
		}
		return label + " must be at least " + fe.Param() + " characters"
	case "email":
		return "Invalid email address"
	case "uuid":
		return "Invalid " + strings.ToLower(label[:1]) + label[1:]
	case "jobtype":
		return "Invalid job type"
	case "appstatus":
		return "Invalid status"
	}
	return "Invalid " + label
}
