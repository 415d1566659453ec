package handler

import (
	"errors"

	"github.com/fadilmartias/job-board/internal/dto"
	"github.com/fadilmartias/job-board/internal/middleware"
	"github.com/fadilmartias/job-board/internal/service"
	"github.com/fadilmartias/job-board/internal/usecase"
	"github.com/fadilmartias/job-board/internal/util"
	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	uc       *usecase.AuthUsecase
	sessions service.SessionServiceInterface
}

func NewAuthHandler(uc *usecase.AuthUsecase, sessions service.SessionServiceInterface) *AuthHandler {
	return &AuthHandler{uc: uc, sessions: sessions}
}

func (h *AuthHandler) RegisterRoutes(api fiber.Router, requireAdmin fiber.Handler) {
	auth := api.Group("/auth")
	auth.Post("/signup", h.Signup)
	auth.Post("/login", h.Login)
	auth.Post("/logout", h.Logout)
	auth.Get("/me", requireAdmin, h.Me)
}

func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var req dto.SignupRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}

	admin, err := h.uc.CreateAdmin(c.UserContext(), req)
	if errors.Is(err, usecase.ErrDuplicateUsername) {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "Username already exists",
		})
	}
	if err != nil {
		return internalError(c, "Failed to create admin", err)
	}

	if err := h.sessions.Establish(c, admin.ID); err != nil {
		return internalError(c, "Failed to create admin", err)
	}
	return util.EntityResponse(c, dto.AuthResponse{
		Message: "Admin created successfully",
		Admin:   dto.NewAdminDTO(admin),
	})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}

	admin, err := h.uc.VerifyPassword(c.UserContext(), req.Username, req.Password)
	if errors.Is(err, usecase.ErrInvalidCredentials) {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusUnauthorized,
			Message: "Invalid credentials",
		})
	}
	if err != nil {
		return internalError(c, "Login failed", err)
	}

	if err := h.sessions.Establish(c, admin.ID); err != nil {
		return internalError(c, "Login failed", err)
	}
	return util.EntityResponse(c, dto.AuthResponse{
		Message: "Login successful",
		Admin:   dto.NewAdminDTO(admin),
	})
}

// Logout is idempotent: it succeeds whether or not a session exists.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.sessions.Destroy(c); err != nil {
		return internalError(c, "Logout failed", err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Logout successful",
	})
}

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	adminID, ok := middleware.AdminID(c)
	if !ok {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusUnauthorized,
			Message: "Authentication required",
		})
	}
	admin, err := h.uc.GetAdmin(c.UserContext(), adminID)
	if errors.Is(err, usecase.ErrAdminNotFound) {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusUnauthorized,
			Message: "Authentication required",
		})
	}
	if err != nil {
		return internalError(c, "Failed to get admin info", err)
	}
	return util.EntityResponse(c, dto.NewAdminDTO(admin))
}
