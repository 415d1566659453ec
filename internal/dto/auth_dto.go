package dto

import (
	"time"

	"github.com/fadilmartias/job-board/internal/model"
	"github.com/google/uuid"
)

type SignupRequest struct {
	Username string `json:"username" validate:"required,min=3"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AdminDTO is the public view of an admin; the password hash never leaves
// the repository layer.
type AdminDTO struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

func NewAdminDTO(a *model.Admin) AdminDTO {
	return AdminDTO{
		ID:        a.ID,
		Username:  a.Username,
		Email:     a.Email,
		CreatedAt: a.CreatedAt,
	}
}

type AuthResponse struct {
	Message string   `json:"message"`
	Admin   AdminDTO `json:"admin"`
}
