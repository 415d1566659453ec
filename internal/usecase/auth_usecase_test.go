package usecase

import (
	"context"
	"testing"

	"github.com/fadilmartias/job-board/internal/dto"
	"github.com/fadilmartias/job-board/internal/repository"
	"github.com/fadilmartias/job-board/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newAuthUsecase(t *testing.T) *AuthUsecase {
	return NewAuthUsecase(repository.NewAdminRepository(testutil.NewDB(t)))
}

func TestCreateAdminHashesPassword(t *testing.T) {
	ctx := context.Background()
	uc := newAuthUsecase(t)

	admin, err := uc.CreateAdmin(ctx, dto.SignupRequest{Username: "alice", Email: "alice@x.com", Password: "secret1"})
	require.NoError(t, err)
	assert.NotEqual(t, "secret1", admin.PasswordHash)

	cost, err := bcrypt.Cost([]byte(admin.PasswordHash))
	require.NoError(t, err)
	assert.Equal(t, PasswordCost, cost)
}

func TestCreateAdminDuplicateUsername(t *testing.T) {
	ctx := context.Background()
	uc := newAuthUsecase(t)

	_, err := uc.CreateAdmin(ctx, dto.SignupRequest{Username: "alice", Email: "alice@x.com", Password: "secret1"})
	require.NoError(t, err)

	_, err = uc.CreateAdmin(ctx, dto.SignupRequest{Username: "alice", Email: "other@x.com", Password: "another"})
	assert.ErrorIs(t, err, ErrDuplicateUsername)
}

func TestVerifyPassword(t *testing.T) {
	ctx := context.Background()
	uc := newAuthUsecase(t)

	created, err := uc.CreateAdmin(ctx, dto.SignupRequest{Username: "alice", Email: "alice@x.com", Password: "secret1"})
	require.NoError(t, err)

	admin, err := uc.VerifyPassword(ctx, "alice", "secret1")
	require.NoError(t, err)
	assert.Equal(t, created.ID, admin.ID)

	_, wrongPassword := uc.VerifyPassword(ctx, "alice", "secret2")
	_, unknownUser := uc.VerifyPassword(ctx, "mallory", "secret1")
	assert.ErrorIs(t, wrongPassword, ErrInvalidCredentials)
	assert.ErrorIs(t, unknownUser, ErrInvalidCredentials)
	assert.Equal(t, wrongPassword.Error(), unknownUser.Error())
}

func TestGetAdmin(t *testing.T) {
	ctx := context.Background()
	uc := newAuthUsecase(t)

	created, err := uc.CreateAdmin(ctx, dto.SignupRequest{Username: "alice", Email: "alice@x.com", Password: "secret1"})
	require.NoError(t, err)

	got, err := uc.GetAdmin(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Username)

	_, err = uc.GetAdmin(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrAdminNotFound)
}
