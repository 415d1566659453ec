package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Skills accepts either a JSON array of strings or a single comma-separated
// string. FromString records which form was sent.
type Skills struct {
	Values     []string
	FromString bool
}

func (s *Skills) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*s = Skills{}
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var raw string
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		*s = Skills{Values: []string{raw}, FromString: true}
		return nil
	}
	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return fmt.Errorf("skills must be a string or a list of strings")
	}
	*s = Skills{Values: list}
	return nil
}

type CreateJobRequest struct {
	Title       string  `json:"title" validate:"required"`
	Company     string  `json:"company" validate:"required"`
	Location    string  `json:"location" validate:"required"`
	Type        string  `json:"type" validate:"required,jobtype"`
	Description string  `json:"description" validate:"required"`
	Salary      *string `json:"salary"`
	Skills      *Skills `json:"skills"`
	IsActive    *bool   `json:"isActive"`
}

// UpdateJobRequest is a partial patch: nil fields are left untouched.
type UpdateJobRequest struct {
	Title       *string `json:"title" validate:"omitnil,min=1"`
	Company     *string `json:"company" validate:"omitnil,min=1"`
	Location    *string `json:"location" validate:"omitnil,min=1"`
	Type        *string `json:"type" validate:"omitnil,jobtype"`
	Description *string `json:"description" validate:"omitnil,min=1"`
	Salary      *string `json:"salary"`
	Skills      *Skills `json:"skills"`
	IsActive    *bool   `json:"isActive"`
}

type JobListQuery struct {
	Search   string `query:"search"`
	Location string `query:"location"`
	Type     string `query:"type" validate:"omitempty,jobtype"`
}
