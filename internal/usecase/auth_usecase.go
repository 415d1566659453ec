package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/fadilmartias/job-board/internal/dto"
	"github.com/fadilmartias/job-board/internal/model"
	"github.com/fadilmartias/job-board/internal/repository"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// PasswordCost is the bcrypt work factor for admin passwords.
const PasswordCost = 10

type AuthUsecase struct {
	adminRepo *repository.AdminRepository
}

func NewAuthUsecase(adminRepo *repository.AdminRepository) *AuthUsecase {
	return &AuthUsecase{adminRepo: adminRepo}
}

func (uc *AuthUsecase) CreateAdmin(ctx context.Context, req dto.SignupRequest) (*model.Admin, error) {
	_, err := uc.adminRepo.FindAdminByUsername(ctx, req.Username)
	if err == nil {
		return nil, ErrDuplicateUsername
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("lookup admin: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), PasswordCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	admin := &model.Admin{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
	}
	if err := uc.adminRepo.CreateAdmin(ctx, admin); err != nil {
		// lost a race with a concurrent signup for the same name
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateUsername
		}
		return nil, fmt.Errorf("create admin: %w", err)
	}
	return admin, nil
}

// VerifyPassword returns ErrInvalidCredentials for both an unknown username
// and a wrong password.
func (uc *AuthUsecase) VerifyPassword(ctx context.Context, username, password string) (*model.Admin, error) {
	admin, err := uc.adminRepo.FindAdminByUsername(ctx, username)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("lookup admin: %w", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return admin, nil
}

func (uc *AuthUsecase) GetAdmin(ctx context.Context, id uuid.UUID) (*model.Admin, error) {
	admin, err := uc.adminRepo.FindAdminByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrAdminNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("lookup admin: %w", err)
	}
	return admin, nil
}
